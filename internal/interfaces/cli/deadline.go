package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	app "github.com/sozialtools/fristenwaechter/internal/application/reminder"
	"github.com/sozialtools/fristenwaechter/internal/domain/deadline"
	domain "github.com/sozialtools/fristenwaechter/internal/domain/reminder"
	"github.com/sozialtools/fristenwaechter/pkg/types/common"
)

func newDeadlineCommand(env *cliEnv) *cobra.Command {
	var (
		byMail   bool
		save     bool
		title    string
		priority string
		caseRef  string
	)
	cmd := &cobra.Command{
		Use:   "berechnen <kategorie> <bescheid-datum>",
		Short: "Gesetzliche Frist berechnen (Datum als JJJJ-MM-TT)",
		Long: `Berechnet das Fristende für eine Kategorie ab dem Bescheiddatum.
Mit --post gilt der Bescheid drei Tage nach Aufgabe als zugegangen.

Kategorien: widerspruch, klage, berufung, ueberpruefung, eilverfahren,
anhoerung, mitwirkung.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			referenceDate, err := common.ParseDate(args[1])
			if err != nil {
				return err
			}
			result, err := deadline.Compute(referenceDate, deadline.Category(args[0]), byMail)
			if err != nil {
				return err
			}

			if env.opts.asJSON && !save {
				return printJSON(result)
			}
			printResult(env, result)

			if !save {
				return nil
			}
			if result.IsOpenEnded {
				return fmt.Errorf("eilverfahren hat keine Frist, die gespeichert werden könnte")
			}
			svc, err := env.ensureService(cmd)
			if err != nil {
				return err
			}
			if title == "" {
				title = fmt.Sprintf("%s bis %s", result.LegalBasis, result.DeadlineDate)
			}
			entity, err := svc.Create(cmd.Context(), app.Draft{
				Title:         title,
				Category:      reminderCategoryFor(result.Category),
				DeadlineDate:  result.DeadlineDate,
				Priority:      domain.Priority(priority),
				CaseReference: caseRef,
			})
			if err != nil {
				return err
			}
			if env.opts.asJSON {
				return printJSON(entity)
			}
			fmt.Printf("\nErinnerung angelegt: %s (Erinnerung ab %s)\n", entity.ID, entity.TriggerDate)
			return nil
		},
	}
	f := cmd.Flags()
	f.BoolVar(&byMail, "post", false, "Bescheid kam per Post (Drei-Tages-Fiktion)")
	f.BoolVar(&save, "speichern", false, "Erinnerung für die berechnete Frist anlegen")
	f.StringVar(&title, "titel", "", "Titel der angelegten Erinnerung")
	f.StringVar(&priority, "prioritaet", "", "Priorität der angelegten Erinnerung")
	f.StringVar(&caseRef, "aktenzeichen", "", "Aktenzeichen des Vorgangs")
	return cmd
}

func printResult(env *cliEnv, result *deadline.Result) {
	fmt.Printf("Kategorie:      %s (%s)\n", result.Category, result.LegalBasis)
	fmt.Printf("Bescheiddatum:  %s\n", result.ReferenceDate)
	fmt.Printf("Zugang:         %s\n", result.DeemedReceived)
	if result.IsOpenEnded {
		fmt.Println("Frist:          keine (Eilverfahren)")
	} else {
		fmt.Printf("Fristende:      %s (%s)\n", result.DeadlineDate, result.DurationLabel)
		if days := env.clock.Today().DaysUntil(result.DeadlineDate); days >= 0 {
			fmt.Printf("Verbleibend:    %d Tage\n", days)
		} else {
			fmt.Printf("Abgelaufen seit %d Tagen\n", -days)
		}
	}
	fmt.Println("\nHinweise:")
	for _, g := range result.Guidance {
		fmt.Println("  -", g)
	}
}

// reminderCategoryFor maps a computation category to the reminder category the
// saved entity is filed under.
func reminderCategoryFor(cat deadline.Category) domain.Category {
	switch cat {
	case deadline.CategoryObjection:
		return domain.CategoryObjectionPeriod
	case deadline.CategoryLawsuit, deadline.CategoryAppeal:
		return domain.CategoryLawsuitPeriod
	case deadline.CategoryHearing, deadline.CategoryCooperation:
		return domain.CategorySubmission
	default:
		return domain.CategoryOther
	}
}
