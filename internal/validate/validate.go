// Package validate holds the stateless checks applied to booking input.
package validate

import (
	"errors"
	"regexp"
	"strings"
	"time"
)

// DateLayout is the dd/mm/yyyy layout used for input and for the ledger.
const DateLayout = "02/01/2006"

var (
	ErrDateFormat = errors.New("invalid date format")
	ErrDateInPast = errors.New("date cannot be in the past")
)

var (
	nameRe      = regexp.MustCompile(`^[\p{L}\s]+$`)
	ukPhoneRe   = regexp.MustCompile(`^0\d{10}$`)
	emailRe     = regexp.MustCompile(`^[\w.-]+@[\w.-]+\.[a-zA-Z]{2,}$`)
	compactRe   = regexp.MustCompile(`^\d{8}$`)
	separatorRe = regexp.MustCompile(`[-.\s]`)
	nonDigitRe  = regexp.MustCompile(`[^0-9]`)
)

// Name reports whether s is a non-blank run of letters (any script) and whitespace.
func Name(s string) bool {
	if strings.TrimSpace(s) == "" {
		return false
	}

	return nameRe.MatchString(s)
}

// UKPhone reports whether s is exactly 11 digits starting with 0.
func UKPhone(s string) bool {
	return ukPhoneRe.MatchString(s)
}

// NormalizeUKPhone strips every non-digit and restores a dropped leading 0 on
// 10-digit numbers. The result still has to pass UKPhone.
func NormalizeUKPhone(raw string) string {
	digits := nonDigitRe.ReplaceAllString(raw, "")
	if len(digits) == 10 && !strings.HasPrefix(digits, "0") {
		digits = "0" + digits
	}

	return digits
}

func Email(s string) bool {
	return emailRe.MatchString(s)
}

// ParseDate accepts dd/mm/yyyy or ddmmyyyy; '-', '.' and whitespace are read
// as '/'. The returned date is midnight UTC. With mustBeFuture set, a date
// before the calendar day of now yields ErrDateInPast together with the
// parsed date.
func ParseDate(s string, mustBeFuture bool, now time.Time) (time.Time, error) {
	if compactRe.MatchString(s) {
		s = s[0:2] + "/" + s[2:4] + "/" + s[4:8]
	}

	s = separatorRe.ReplaceAllString(s, "/")

	date, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, ErrDateFormat
	}

	if mustBeFuture && date.Before(Day(now)) {
		return date, ErrDateInPast
	}

	return date, nil
}

// Day truncates t to its calendar date at midnight UTC.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()

	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the whole days from in to out.
func DaysBetween(in, out time.Time) int {
	return int(Day(out).Sub(Day(in)).Hours() / 24) //nolint:gomnd
}
