package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	app "github.com/sozialtools/fristenwaechter/internal/application/reminder"
	domain "github.com/sozialtools/fristenwaechter/internal/domain/reminder"
	"github.com/sozialtools/fristenwaechter/pkg/types/common"
)

func newRemindersCommand(env *cliEnv) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "erinnerungen",
		Aliases: []string{"e"},
		Short:   "Erinnerungen auflisten und verwalten",
	}
	cmd.AddCommand(
		newRemindersListCommand(env),
		newRemindersAddCommand(env),
		newRemindersStatusCommand(env),
		newRemindersDeleteCommand(env),
		newRemindersUrgentCommand(env),
		newRemindersNextCommand(env),
	)
	return cmd
}

func newRemindersListCommand(env *cliEnv) *cobra.Command {
	return &cobra.Command{
		Use:   "liste",
		Short: "Alle Erinnerungen nach Frist sortiert anzeigen",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := env.ensureService(cmd)
			if err != nil {
				return err
			}
			entities := svc.All()
			if env.opts.asJSON {
				return printJSON(entities)
			}
			printReminderTable(entities, svc.Today())
			return nil
		},
	}
}

func newRemindersAddCommand(env *cliEnv) *cobra.Command {
	var (
		description string
		category    string
		leadDays    int
		priority    string
		caseRef     string
		interval    string
	)
	cmd := &cobra.Command{
		Use:   "neu <titel> <frist-datum>",
		Short: "Neue Erinnerung anlegen (Datum als JJJJ-MM-TT)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := env.ensureService(cmd)
			if err != nil {
				return err
			}
			deadlineDate, err := common.ParseDate(args[1])
			if err != nil {
				return err
			}
			draft := app.Draft{
				Title:         args[0],
				Description:   description,
				Category:      domain.Category(category),
				DeadlineDate:  deadlineDate,
				Priority:      domain.Priority(priority),
				CaseReference: caseRef,
			}
			if cmd.Flags().Changed("vorlauf") {
				draft.LeadDays = &leadDays
			}
			if interval != "" {
				draft.Recurring = true
				draft.Interval = domain.Interval(interval)
			}
			entity, err := svc.Create(cmd.Context(), draft)
			if err != nil {
				return err
			}
			if env.opts.asJSON {
				return printJSON(entity)
			}
			fmt.Printf("Erinnerung angelegt: %s (Frist %s, Erinnerung ab %s)\n",
				entity.ID, entity.DeadlineDate, entity.TriggerDate)
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&description, "beschreibung", "", "Freitext zur Erinnerung")
	f.StringVar(&category, "typ", string(domain.CategoryOther), "Kategorie der Erinnerung")
	f.IntVar(&leadDays, "vorlauf", 0, "Vorlauftage (Standard je Kategorie)")
	f.StringVar(&priority, "prioritaet", "", "Priorität (niedrig|mittel|hoch|kritisch)")
	f.StringVar(&caseRef, "aktenzeichen", "", "Aktenzeichen des Vorgangs")
	f.StringVar(&interval, "wiederholung", "", "Wiederholungsintervall (monatlich|quartalsweise|halbjaehrlich|jaehrlich)")
	return cmd
}

func newRemindersStatusCommand(env *cliEnv) *cobra.Command {
	return &cobra.Command{
		Use:   "status <id> <status>",
		Short: "Status einer Erinnerung setzen (aktiv|erledigt|stummgeschaltet)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := env.ensureService(cmd)
			if err != nil {
				return err
			}
			entity, err := svc.SetStatus(cmd.Context(), common.ID(args[0]), domain.Status(args[1]))
			if err != nil {
				return err
			}
			if env.opts.asJSON {
				return printJSON(entity)
			}
			fmt.Printf("%s → %s\n", entity.Title, entity.Status)
			return nil
		},
	}
}

func newRemindersDeleteCommand(env *cliEnv) *cobra.Command {
	return &cobra.Command{
		Use:   "loeschen <id>",
		Short: "Erinnerung entfernen",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := env.ensureService(cmd)
			if err != nil {
				return err
			}
			return svc.Remove(cmd.Context(), common.ID(args[0]))
		},
	}
}

func newRemindersUrgentCommand(env *cliEnv) *cobra.Command {
	var horizon int
	cmd := &cobra.Command{
		Use:   "dringend",
		Short: "Dringende Erinnerungen innerhalb des Zeitfensters anzeigen",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := env.ensureService(cmd)
			if err != nil {
				return err
			}
			urgent := svc.Urgent(horizon)
			if env.opts.asJSON {
				return printJSON(urgent)
			}
			if len(urgent) == 0 {
				fmt.Println("Keine dringenden Fristen.")
				return nil
			}
			printReminderTable(urgent, svc.Today())
			return nil
		},
	}
	cmd.Flags().IntVar(&horizon, "tage", 7, "Zeitfenster in Tagen")
	return cmd
}

func newRemindersNextCommand(env *cliEnv) *cobra.Command {
	return &cobra.Command{
		Use:   "naechste <id>",
		Short: "Nächsten Termin einer wiederkehrenden Erinnerung berechnen",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := env.ensureService(cmd)
			if err != nil {
				return err
			}
			next, err := svc.NextOccurrence(common.ID(args[0]))
			if err != nil {
				return err
			}
			if env.opts.asJSON {
				return printJSON(map[string]common.Date{"naechsteFrist": next})
			}
			fmt.Println(next)
			return nil
		},
	}
}

// printReminderTable renders reminders as an aligned table with the countdown
// severity marker in front of each row.
func printReminderTable(entities []*domain.Reminder, today common.Date) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "\tFRIST\tTAGE\tSTATUS\tPRIO\tTITEL\tID")
	for _, e := range entities {
		days := e.DaysUntilDeadline(today)
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\t%s\t%s\n",
			severityMarker(e.SeverityOn(today)), e.DeadlineDate, days,
			e.Status, e.Priority, e.Title, e.ID)
	}
	w.Flush()
}

func severityMarker(s domain.Severity) string {
	switch s {
	case domain.SeverityCritical:
		return "!!"
	case domain.SeverityHigh:
		return "!"
	case domain.SeverityMedium:
		return "~"
	default:
		return " "
	}
}
