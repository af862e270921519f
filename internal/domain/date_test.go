package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mzielinski/travel-agency/internal/domain"
)

func TestDateInt(t *testing.T) {
	d := time.Date(2024, 5, 1, 13, 45, 12, 0, time.UTC)

	// Time of day is discarded; only the calendar date matters.
	assert.Equal(t, 20240501, domain.DateInt(d))
}

func TestDateInt_SingleDigitMonthAndDay(t *testing.T) {
	d := time.Date(2026, 1, 9, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 20260109, domain.DateInt(d))
}

// TestParseFlexibleDate_AllLayouts verifies that every accepted layout for the
// same calendar date encodes to the same stored integer.
func TestParseFlexibleDate_AllLayouts(t *testing.T) {
	for _, input := range []string{"2024-05-01", "20240501", "05/01/2024", "01.05.2024"} {
		parsed, err := domain.ParseFlexibleDate(input)
		require.NoError(t, err, "input %q", input)
		assert.Equal(t, 20240501, domain.DateInt(parsed), "input %q", input)
	}
}

func TestParseFlexibleDate_Unparseable(t *testing.T) {
	for _, input := range []string{"not-a-date", "2024/05/01", "01-05-2024", "1 May 2024"} {
		_, err := domain.ParseFlexibleDate(input)
		assert.Error(t, err, "input %q should not parse", input)
	}
}
