package deadline

import (
	"github.com/sozialtools/fristenwaechter/internal/domain/clock"
	"github.com/sozialtools/fristenwaechter/pkg/errors"
	"github.com/sozialtools/fristenwaechter/pkg/types/common"
)

// Result carries a computed deadline and its legal metadata.
type Result struct {
	// Category is the statutory period the result was computed for.
	Category Category `json:"kategorie"`

	// ReferenceDate is the caller-supplied start date (date on the notice).
	ReferenceDate common.Date `json:"bescheidDatum"`

	// DeemedReceived is the date the notice counts as delivered: the
	// reference date, advanced by three days when it was sent by mail.
	DeemedReceived common.Date `json:"zugangsDatum"`

	// DeadlineDate is the computed end of the period.  Zero when IsOpenEnded.
	DeadlineDate common.Date `json:"fristDatum"`

	// IsOpenEnded is true for categories without a statutory period
	// (interim relief); no DeadlineDate is produced for them.
	IsOpenEnded bool `json:"ohneFrist"`

	// DurationLabel is the human-readable length of the period ("1 Monat").
	DurationLabel string `json:"fristDauer"`

	// LegalBasis is the statute the period rests on ("§ 84 SGG").
	LegalBasis string `json:"rechtsgrundlage"`

	// Guidance is the static, category-specific advisory text.
	Guidance []string `json:"hinweise"`
}

// Compute derives the deadline for the given category from referenceDate.
//
// Steps:
//  1. If deliveredByMail, advance the reference date by three calendar days
//     (delivery fiction, § 37 Abs. 2 SGB X) to obtain the deemed-received date.
//  2. Add the category period: whole months clamp to the last valid day of the
//     target month, whole days are ordinary calendar addition.
//  3. Open-ended categories produce no date; guidance explains urgency instead.
//
// Deadlines landing on weekends or public holidays are NOT rolled forward;
// the computed date is the earlier, always-safe one.
//
// Compute is pure: the same inputs always yield the same Result.  An invalid
// (zero) reference date or unknown category is refused — no result is ever
// fabricated.
func Compute(referenceDate common.Date, category Category, deliveredByMail bool) (*Result, error) {
	if referenceDate.IsZero() {
		return nil, errors.New(errors.ErrCodeDeadlineInvalidReference,
			"reference date is required")
	}
	r, ok := rules[category]
	if !ok {
		return nil, errors.Newf(errors.ErrCodeDeadlineUnknownCategory,
			"unknown deadline category %q", category)
	}

	deemed := referenceDate
	if deliveredByMail {
		deemed = deemed.AddDays(postalOffsetDays)
	}

	res := &Result{
		Category:       category,
		ReferenceDate:  referenceDate,
		DeemedReceived: deemed,
		IsOpenEnded:    r.openEnded,
		DurationLabel:  r.durationLabel,
		LegalBasis:     r.legalBasis,
		Guidance:       append([]string(nil), r.guidance...),
	}
	if r.openEnded {
		return res, nil
	}

	d := deemed
	if r.addMonths > 0 {
		d = d.AddMonths(r.addMonths)
	}
	if r.addDays > 0 {
		d = d.AddDays(r.addDays)
	}
	res.DeadlineDate = d
	return res, nil
}

// Calculator binds the pure Compute function to a clock for remaining-days
// derivations.
type Calculator struct {
	clock clock.Clock
}

// NewCalculator constructs a Calculator.
func NewCalculator(clk clock.Clock) *Calculator {
	return &Calculator{clock: clk}
}

// Compute delegates to the package-level Compute function.
func (c *Calculator) Compute(referenceDate common.Date, category Category, deliveredByMail bool) (*Result, error) {
	return Compute(referenceDate, category, deliveredByMail)
}

// RemainingDays returns the whole days from today until the result's deadline.
// Zero means due today, negative means overdue.  The second return value is
// false for open-ended results, which have no deadline to count towards.
func (c *Calculator) RemainingDays(res *Result) (int, bool) {
	if res == nil || res.IsOpenEnded {
		return 0, false
	}
	return c.clock.Today().DaysUntil(res.DeadlineDate), true
}
