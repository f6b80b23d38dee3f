// Package deadline implements the statutory deadline arithmetic for German
// social-law remedies: the delivery fiction for mailed notices, the
// category-specific periods, and the legal-basis metadata attached to each
// computed deadline.
package deadline

// Category identifies the kind of statutory period being computed.
type Category string

const (
	// CategoryObjection is the one-month objection period against an
	// administrative decision (Widerspruchsfrist, § 84 SGG).
	CategoryObjection Category = "widerspruch"

	// CategoryLawsuit is the one-month period to file suit at the social
	// court after an objection decision (Klagefrist, § 87 SGG).
	CategoryLawsuit Category = "klage"

	// CategoryAppeal is the one-month period to appeal a social-court
	// judgment (Berufungsfrist, § 151 SGG).
	CategoryAppeal Category = "berufung"

	// CategoryReview is the four-year retroactive review window for final
	// decisions (Überprüfungsantrag, § 44 SGB X).  Retroactive payment is
	// capped at one year for SGB II benefits; that cap is surfaced as
	// guidance only, never as a second computed date.
	CategoryReview Category = "ueberpruefung"

	// CategoryInterimRelief is expedited interim relief at the social court
	// (Eilverfahren, § 86b SGG).  It has no statutory period; the computation
	// is open-ended and the guidance explains urgency instead of a date.
	CategoryInterimRelief Category = "eilverfahren"

	// CategoryHearing is the typical 14-day period to respond to a hearing
	// notice (Anhörung, § 24 SGB X).
	CategoryHearing Category = "anhoerung"

	// CategoryCooperation is the typical 14-day period to comply with a
	// duty-to-cooperate request (Mitwirkung, §§ 60–67 SGB I).  Real deadlines
	// are case-specific; 14 days is the documented default.
	CategoryCooperation Category = "mitwirkung"
)

// Categories lists every known category in display order.
func Categories() []Category {
	return []Category{
		CategoryObjection,
		CategoryLawsuit,
		CategoryAppeal,
		CategoryReview,
		CategoryInterimRelief,
		CategoryHearing,
		CategoryCooperation,
	}
}

// IsValid reports whether c is a known category.
func (c Category) IsValid() bool {
	_, ok := rules[c]
	return ok
}

// rule describes how a category's deadline is derived from the deemed-received
// date, plus the static legal metadata attached to the result.
type rule struct {
	addMonths     int
	addDays       int
	openEnded     bool
	durationLabel string
	legalBasis    string
	guidance      []string
}

// postalOffsetDays is the delivery fiction for mailed notices: a notice is
// deemed received three days after posting (§ 37 Abs. 2 SGB X).
const postalOffsetDays = 3

var rules = map[Category]rule{
	CategoryObjection: {
		addMonths:     1,
		durationLabel: "1 Monat",
		legalBasis:    "§ 84 SGG",
		guidance: []string{
			"Der Widerspruch muss schriftlich oder zur Niederschrift bei der Behörde eingehen.",
			"Die Frist beginnt mit der Bekanntgabe des Bescheids; bei Postversand gilt die Drei-Tages-Fiktion.",
			"Ein Widerspruch ohne Begründung wahrt die Frist; die Begründung kann nachgereicht werden.",
		},
	},
	CategoryLawsuit: {
		addMonths:     1,
		durationLabel: "1 Monat",
		legalBasis:    "§ 87 SGG",
		guidance: []string{
			"Die Klage ist beim zuständigen Sozialgericht zu erheben; das Verfahren ist gerichtskostenfrei.",
			"Maßgeblich ist der Zugang des Widerspruchsbescheids.",
		},
	},
	CategoryAppeal: {
		addMonths:     1,
		durationLabel: "1 Monat",
		legalBasis:    "§ 151 SGG",
		guidance: []string{
			"Die Berufung ist beim Landessozialgericht einzulegen.",
			"Die Frist läuft ab Zustellung des vollständigen Urteils.",
		},
	},
	CategoryReview: {
		addMonths:     48,
		durationLabel: "4 Jahre",
		legalBasis:    "§ 44 SGB X",
		guidance: []string{
			"Der Überprüfungsantrag kann rückwirkend für bis zu vier Jahre gestellt werden.",
			"Nachzahlungen sind im SGB II auf ein Jahr rückwirkend begrenzt (§ 44 Abs. 4 SGB X i.V.m. § 40 SGB II).",
			"Der Antrag ist an keine Form gebunden; eine schriftliche Stellung ist dennoch ratsam.",
		},
	},
	CategoryInterimRelief: {
		openEnded:     true,
		durationLabel: "keine Frist",
		legalBasis:    "§ 86b SGG",
		guidance: []string{
			"Für den Eilantrag gibt es keine Frist; er setzt besondere Eilbedürftigkeit voraus.",
			"Je länger gewartet wird, desto eher verneint das Gericht die Dringlichkeit.",
			"Der Antrag ist beim Sozialgericht zu stellen, parallel zum Widerspruchs- oder Klageverfahren.",
		},
	},
	CategoryHearing: {
		addDays:       14,
		durationLabel: "14 Tage",
		legalBasis:    "§ 24 SGB X",
		guidance: []string{
			"Die Anhörung gibt Gelegenheit zur Stellungnahme, bevor ein belastender Bescheid ergeht.",
			"Die gesetzte Frist steht im Anhörungsschreiben; 14 Tage sind der übliche Rahmen.",
		},
	},
	CategoryCooperation: {
		addDays:       14,
		durationLabel: "14 Tage (üblich)",
		legalBasis:    "§§ 60–67 SGB I",
		guidance: []string{
			"Die konkrete Frist steht im Aufforderungsschreiben; 14 Tage sind nur der übliche Standardwert.",
			"Bei fehlender Mitwirkung kann die Leistung ganz oder teilweise versagt werden (§ 66 SGB I).",
			"Nachgeholte Mitwirkung kann zur nachträglichen Leistungserbringung führen (§ 67 SGB I).",
		},
	},
}
