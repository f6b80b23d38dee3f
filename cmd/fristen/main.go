// Command fristen is the local deadline and reminder CLI.
package main

import "github.com/sozialtools/fristenwaechter/internal/interfaces/cli"

func main() {
	cli.Execute()
}
