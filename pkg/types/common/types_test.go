package common_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sozialtools/fristenwaechter/pkg/types/common"
)

func TestAddMonths_ClampsToShorterTargetMonth(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		start  common.Date
		months int
		want   common.Date
	}{
		{"jan 31 + 1 month leap year", common.NewDate(2024, time.January, 31), 1, common.NewDate(2024, time.February, 29)},
		{"jan 31 + 1 month non-leap", common.NewDate(2023, time.January, 31), 1, common.NewDate(2023, time.February, 28)},
		{"mar 31 + 1 month", common.NewDate(2025, time.March, 31), 1, common.NewDate(2025, time.April, 30)},
		{"jan 31 + 3 months", common.NewDate(2025, time.January, 31), 3, common.NewDate(2025, time.April, 30)},
		{"mid-month needs no clamp", common.NewDate(2025, time.March, 13), 1, common.NewDate(2025, time.April, 13)},
		{"crossing year boundary", common.NewDate(2024, time.December, 31), 2, common.NewDate(2025, time.February, 28)},
		{"negative month add", common.NewDate(2025, time.March, 31), -1, common.NewDate(2025, time.February, 28)},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.True(t, tc.start.AddMonths(tc.months).Equal(tc.want),
				"got %s, want %s", tc.start.AddMonths(tc.months), tc.want)
		})
	}
}

func TestAddYears_Feb29ClampsInNonLeapYears(t *testing.T) {
	t.Parallel()

	start := common.NewDate(2024, time.February, 29)
	assert.Equal(t, "2025-02-28", start.AddYears(1).String())
	assert.Equal(t, "2028-02-29", start.AddYears(4).String())
}

func TestDaysUntil_IsSignedWholeDays(t *testing.T) {
	t.Parallel()

	a := common.NewDate(2025, time.April, 10)
	b := common.NewDate(2025, time.April, 13)

	assert.Equal(t, 3, a.DaysUntil(b))
	assert.Equal(t, -3, b.DaysUntil(a))
	assert.Equal(t, 0, a.DaysUntil(a))
}

func TestParseDate_RejectsMalformedInput(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"", "2025-13-01", "31.01.2025", "2025-02-30", "not-a-date"} {
		_, err := common.ParseDate(s)
		assert.Error(t, err, "input %q", s)
	}
}

func TestDate_JSONRoundTrip(t *testing.T) {
	t.Parallel()

	d := common.NewDate(2025, time.January, 31)
	raw, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2025-01-31"`, string(raw))

	var back common.Date
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.True(t, back.Equal(d))
}

func TestDate_ZeroValueMarshalsToNull(t *testing.T) {
	t.Parallel()

	raw, err := json.Marshal(common.Date{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(raw))

	var back common.Date
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.True(t, back.IsZero())
}

func TestNewID_IsUnique(t *testing.T) {
	t.Parallel()

	seen := make(map[common.ID]struct{})
	for i := 0; i < 100; i++ {
		id := common.NewID()
		_, dup := seen[id]
		require.False(t, dup)
		seen[id] = struct{}{}
	}
}
