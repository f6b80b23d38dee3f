package reminder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sozialtools/fristenwaechter/internal/domain/reminder"
)

func TestClassifyDays_Boundaries(t *testing.T) {
	t.Parallel()

	cases := []struct {
		days int
		want reminder.Severity
	}{
		{-30, reminder.SeverityCritical},
		{-1, reminder.SeverityCritical},
		{0, reminder.SeverityCritical},
		{1, reminder.SeverityHigh},
		{3, reminder.SeverityHigh},
		{4, reminder.SeverityMedium},
		{7, reminder.SeverityMedium},
		{8, reminder.SeverityNormal},
		{365, reminder.SeverityNormal},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, reminder.ClassifyDays(tc.days), "days=%d", tc.days)
	}
}
