package cli

import (
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"
)

func newCalendarCommand(env *cliEnv) *cobra.Command {
	var (
		year  int
		month int
	)
	cmd := &cobra.Command{
		Use:   "kalender",
		Short: "Monatsansicht der Fristen anzeigen",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := env.ensureService(cmd)
			if err != nil {
				return err
			}
			today := svc.Today()
			if year == 0 {
				year = today.Year()
			}
			if month == 0 {
				month = int(today.Month())
			}
			if month < 1 || month > 12 {
				return fmt.Errorf("ungültiger Monat %d", month)
			}

			view := svc.MonthView(year, time.Month(month))
			if env.opts.asJSON {
				return printJSON(view)
			}

			fmt.Printf("%s %d — %d Fristen\n\n", monthNameDE(time.Month(month)), year, view.TotalCount)
			days := make([]string, 0, len(view.Days))
			for day := range view.Days {
				days = append(days, day)
			}
			sort.Strings(days)
			for _, day := range days {
				fmt.Println(day)
				for _, e := range view.Days[day] {
					fmt.Printf("  [%s] %s (%s)\n", e.Priority, e.Title, e.Status)
				}
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&year, "jahr", 0, "Jahr (Standard: aktuelles Jahr)")
	cmd.Flags().IntVar(&month, "monat", 0, "Monat 1-12 (Standard: aktueller Monat)")
	return cmd
}

func monthNameDE(m time.Month) string {
	names := [...]string{"Januar", "Februar", "März", "April", "Mai", "Juni",
		"Juli", "August", "September", "Oktober", "November", "Dezember"}
	return names[m-1]
}
