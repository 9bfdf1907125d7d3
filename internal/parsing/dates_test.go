package parsing

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)

func TestParseDateToken(t *testing.T) {
	tests := []struct {
		token     string
		wantYear  int
		wantMonth time.Month
		wantErr   bool
	}{
		{"Jan 2020", 2020, time.January, false},
		{"March 2019", 2019, time.March, false},
		{"Sept, 2018", 2018, time.September, false},
		{"Dec. 2021", 2021, time.December, false},
		{"03/2019", 2019, time.March, false},
		{"7-2022", 2022, time.July, false},
		{"2019", 2019, time.January, false},
		{"13/2019", 0, 0, true},
		{"Q3 2019", 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got, err := parseDateToken(tt.token)
			if tt.wantErr {
				require.Error(t, err)
				var dateErr *DateParseError
				assert.True(t, errors.As(err, &dateErr))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantYear, got.Year())
			assert.Equal(t, tt.wantMonth, got.Month())
		})
	}
}

func TestFindDateRanges(t *testing.T) {
	text := "Jan 2020 - Dec 2021\nJan 2022 - Present"

	ranges, skipped := FindDateRanges(text, fixedNow)
	require.Len(t, ranges, 2)
	assert.Empty(t, skipped)

	assert.Equal(t, 23, ranges[0].Months())
	assert.False(t, ranges[0].Present)
	assert.Equal(t, 29, ranges[1].Months())
	assert.True(t, ranges[1].Present)
}

func TestFindDateRanges_SeparatorsAndForms(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		wantMonths int
	}{
		{"en dash", "Jun 2019 – Aug 2019", 2},
		{"to", "2018 to 2020", 24},
		{"numeric", "01/2021 - 07/2021", 6},
		{"till date", "March 2023 till date", 15},
		{"current", "2023 - Current", 17},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ranges, skipped := FindDateRanges(tt.text, fixedNow)
			require.Len(t, ranges, 1)
			assert.Empty(t, skipped)
			assert.Equal(t, tt.wantMonths, ranges[0].Months())
		})
	}
}

func TestFindDateRanges_MalformedRangesAreSkipped(t *testing.T) {
	ranges, skipped := FindDateRanges("Dec 2021 - Jan 2020\n13/2019 - 2020\nJan 2022 - Mar 2022", fixedNow)

	require.Len(t, ranges, 1)
	assert.Equal(t, 2, ranges[0].Months())
	require.Len(t, skipped, 2)
	for _, err := range skipped {
		var dateErr *DateParseError
		assert.True(t, errors.As(err, &dateErr))
	}
}

func TestIsDateRangeLine(t *testing.T) {
	assert.True(t, isDateRangeLine("Jan 2020 - Present"))
	assert.True(t, isDateRangeLine("(2019 - 2021)"))
	assert.True(t, isDateRangeLine("• Jun 2019 – Aug 2019"))
	assert.False(t, isDateRangeLine("Software Engineer, Jan 2020 - Present"))
	assert.False(t, isDateRangeLine("Graduated in 2020"))
}

func TestMonthsToYears(t *testing.T) {
	assert.InDelta(t, 4.3, monthsToYears(52), 1e-9)
	assert.InDelta(t, 1.0, monthsToYears(12), 1e-9)
	assert.InDelta(t, 0.0, monthsToYears(0), 1e-9)
}
