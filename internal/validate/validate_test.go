package validate_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avstrong/vacaystar/internal/validate"
)

func TestName(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"Ana Silva", true},
		{"José Álvarez", true},
		{"Zoë", true},
		{"Иван Петров", true},
		{"", false},
		{"   ", false},
		{"R2D2", false},
		{"Ana-Silva", false},
		{"Ana, Silva", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, validate.Name(tt.in), "name %q", tt.in)
	}
}

func TestUKPhone(t *testing.T) {
	assert.True(t, validate.UKPhone("07911123456"))
	assert.False(t, validate.UKPhone("7911123456"), "10 digits")
	assert.False(t, validate.UKPhone("071234"), "too short")
	assert.False(t, validate.UKPhone("17911123456"), "leading digit not 0")
	assert.False(t, validate.UKPhone("0791112345a"))
}

func TestNormalizeUKPhone(t *testing.T) {
	assert.Equal(t, "07911123456", validate.NormalizeUKPhone("07911-123456"))
	assert.Equal(t, "07911123456", validate.NormalizeUKPhone("7911123456"))
	assert.Equal(t, "07911123456", validate.NormalizeUKPhone("(07911) 123 456"))
	assert.Equal(t, "071234", validate.NormalizeUKPhone("071234"), "short numbers are left for UKPhone to reject")

	assert.True(t, validate.UKPhone(validate.NormalizeUKPhone("7911123456")))
}

func TestEmail(t *testing.T) {
	assert.True(t, validate.Email("ana@example.com"))
	assert.True(t, validate.Email("ana.silva-1@mail.example.co.uk"))
	assert.False(t, validate.Email("ana@example"))
	assert.False(t, validate.Email("ana@example.c"))
	assert.False(t, validate.Email("@example.com"))
	assert.False(t, validate.Email("ana example.com"))
	assert.False(t, validate.Email("ana@example.c0m"))
}

func TestParseDate_Formats(t *testing.T) {
	now := time.Date(2024, time.March, 1, 15, 0, 0, 0, time.UTC)
	want := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)

	for _, in := range []string{"01/06/2025", "01062025", "01-06-2025", "01.06.2025", "01 06 2025"} {
		got, err := validate.ParseDate(in, true, now)
		require.NoError(t, err, in)
		assert.True(t, want.Equal(got), in)
	}
}

func TestParseDate_Invalid(t *testing.T) {
	now := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)

	for _, in := range []string{"", "1/6/2025", "2025-06-01", "32/01/2025", "31/02/2025", "0106202", "tomorrow"} {
		_, err := validate.ParseDate(in, false, now)
		assert.ErrorIs(t, err, validate.ErrDateFormat, in)
	}
}

func TestParseDate_ImpossibleDayIsNotRolledOver(t *testing.T) {
	now := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)

	for _, in := range []string{"31/02/2025", "29/02/2025", "31/04/2025", "31022025"} {
		got, err := validate.ParseDate(in, false, now)
		require.ErrorIs(t, err, validate.ErrDateFormat, in)
		assert.True(t, got.IsZero(), "%s must not resolve to %s", in, got)
	}

	got, err := validate.ParseDate("29/02/2028", false, now)
	require.NoError(t, err)
	assert.Equal(t, time.February, got.Month())
}

func TestParseDate_MustBeFuture(t *testing.T) {
	// GIVEN: today is 18 Oct 2026
	now := time.Date(2026, time.October, 18, 9, 30, 0, 0, time.UTC)

	// WHEN: a past date is parsed with the future check
	got, err := validate.ParseDate("01012025", true, now)

	// THEN: the date parses but the past signal is returned, distinct from a format error
	assert.ErrorIs(t, err, validate.ErrDateInPast)
	assert.NotErrorIs(t, err, validate.ErrDateFormat)
	assert.Equal(t, time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC), got)

	_, err = validate.ParseDate("01012025", false, now)
	assert.NoError(t, err, "past dates are fine without the future check")

	_, err = validate.ParseDate("18/10/2026", true, now)
	assert.NoError(t, err, "today is not in the past")
}

func TestDaysBetween(t *testing.T) {
	in := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	out := time.Date(2025, time.June, 20, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 19, validate.DaysBetween(in, out))
	assert.Equal(t, 1, validate.DaysBetween(in, in.AddDate(0, 0, 1)))
}
