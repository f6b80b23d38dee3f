package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	app "github.com/sozialtools/fristenwaechter/internal/application/reminder"
	"github.com/sozialtools/fristenwaechter/internal/infrastructure/notify"
)

func newNotifyCommand(env *cliEnv) *cobra.Command {
	return &cobra.Command{
		Use:   "benachrichtigen",
		Short: "Fällige Erinnerungen einmalig benachrichtigen",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := env.ensureService(cmd)
			if err != nil {
				return err
			}
			dispatcher := app.NewDispatcher(notify.NewLogNotifier(env.logger), env.clock,
				env.logger, nil)
			sent := dispatcher.DispatchDue(cmd.Context(), svc.All())
			fmt.Printf("%d Benachrichtigungen versendet.\n", sent)
			return nil
		},
	}
}
