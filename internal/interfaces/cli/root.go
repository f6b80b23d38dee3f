// Package cli implements the fristen command-line tool.  The CLI runs the
// engine in-process against the file-backed store, so it works offline and
// needs no running API server.
package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	app "github.com/sozialtools/fristenwaechter/internal/application/reminder"
	"github.com/sozialtools/fristenwaechter/internal/domain/clock"
	"github.com/sozialtools/fristenwaechter/internal/infrastructure/monitoring/logging"
	"github.com/sozialtools/fristenwaechter/internal/infrastructure/storage"
)

// Build-time variables injected via ldflags.
var (
	Version   = "dev"
	GitCommit = "unknown"
)

// rootOptions holds the global CLI flags.
type rootOptions struct {
	storePath string
	logLevel  string
	asJSON    bool
}

// cliEnv carries the initialized dependencies through the command tree.
type cliEnv struct {
	opts    *rootOptions
	logger  logging.Logger
	clock   clock.Clock
	service *app.Service
}

// service lazily constructs the reminder service on first use so that
// commands which never touch the store (e.g. fristen berechnen) do not
// create the data file.
func (e *cliEnv) ensureService(cmd *cobra.Command) (*app.Service, error) {
	if e.service != nil {
		return e.service, nil
	}
	repo := storage.NewReminderRepository(storage.NewFileStore(e.opts.storePath), e.logger)
	svc, err := app.NewService(cmd.Context(), repo, e.clock, e.logger, nil)
	if err != nil {
		return nil, err
	}
	e.service = svc
	return svc, nil
}

// printJSON writes v as indented JSON to stdout.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func defaultStorePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "erinnerungen.json"
	}
	return filepath.Join(home, ".fristenwaechter", "erinnerungen.json")
}

// NewRootCommand builds the full command tree.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}
	env := &cliEnv{opts: opts, clock: clock.System()}

	root := &cobra.Command{
		Use:   "fristen",
		Short: "Fristen und Erinnerungen für Sozialleistungsbescheide verwalten",
		Long: `fristen berechnet gesetzliche Fristen (Widerspruch, Klage, Überprüfung)
und verwaltet Erinnerungen mit Vorlaufzeiten, Wiederholungen und Kalenderansicht.`,
		Version:       fmt.Sprintf("%s (%s)", Version, GitCommit),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, err := logging.NewLogger(logging.LogConfig{
				Level:  opts.logLevel,
				Format: "console",
			})
			if err != nil {
				return err
			}
			env.logger = logger
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&opts.storePath, "store", defaultStorePath(), "Pfad zur Erinnerungsdatei")
	pf.StringVar(&opts.logLevel, "log-level", "warn", "Log-Level (debug|info|warn|error)")
	pf.BoolVar(&opts.asJSON, "json", false, "Ausgabe als JSON")

	root.AddCommand(
		newRemindersCommand(env),
		newDeadlineCommand(env),
		newCalendarCommand(env),
		newNotifyCommand(env),
	)
	return root
}

// Execute runs the CLI and exits non-zero on error.
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Fehler:", err)
		os.Exit(1)
	}
}
