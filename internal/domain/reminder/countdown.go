package reminder

import "github.com/sozialtools/fristenwaechter/pkg/types/common"

// Severity is the derived, non-persisted urgency label of a deadline.
// It summarizes how close a deadline is and must be computed identically
// wherever it is rendered — list views, calendar badges, notifications.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityHigh     Severity = "high"
	SeverityMedium   Severity = "medium"
	SeverityNormal   Severity = "normal"
)

// ClassifyDays maps a days-until-deadline count to its Severity:
//
//	days <  0  overdue    → critical
//	days == 0  due today  → critical
//	1..3                  → high
//	4..7                  → medium
//	> 7                   → normal
func ClassifyDays(days int) Severity {
	switch {
	case days <= 0:
		return SeverityCritical
	case days <= 3:
		return SeverityHigh
	case days <= 7:
		return SeverityMedium
	default:
		return SeverityNormal
	}
}

// SeverityOn returns the reminder's severity as of today.
func (r *Reminder) SeverityOn(today common.Date) Severity {
	return ClassifyDays(r.DaysUntilDeadline(today))
}
