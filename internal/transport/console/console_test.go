package console_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/avstrong/vacaystar/internal/admin"
	"github.com/avstrong/vacaystar/internal/booking"
	"github.com/avstrong/vacaystar/internal/idgen/session"
	"github.com/avstrong/vacaystar/internal/logger"
	"github.com/avstrong/vacaystar/internal/storage/memory"
	"github.com/avstrong/vacaystar/internal/transport/console"
)

// =============================================================================
// TEST SETUP
// =============================================================================

type brokenLedger struct{}

func (brokenLedger) Append(context.Context, booking.Record) error {
	return errors.New("permission denied")
}

type panickingGate struct{}

func (panickingGate) Authorize(string, string) bool {
	panic("gate exploded")
}

type harness struct {
	db  *memory.DB
	out *bytes.Buffer
	srv *console.Server
}

type options struct {
	bookingLedger interface {
		Append(ctx context.Context, record booking.Record) error
	}
	gate admin.Gate
}

func newHarness(t *testing.T, script []string, opts options, seed ...string) *harness {
	t.Helper()

	l := logger.New(log.New(io.Discard, "", 0))
	db := memory.New(memory.Config{L: l})

	for _, name := range seed {
		require.NoError(t, db.Append(context.Background(), booking.Record{
			Name:     name,
			CheckIn:  time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC),
			CheckOut: time.Date(2025, time.June, 3, 0, 0, 0, 0, time.UTC),
			Days:     2,
		}))
	}

	ledger := opts.bookingLedger
	if ledger == nil {
		ledger = db
	}

	gate := opts.gate
	if gate == nil {
		var err error

		gate, err = admin.NewPasswordGate("admin", "1234", bcrypt.MinCost)
		require.NoError(t, err)
	}

	now := func() time.Time { return time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC) }
	out := &bytes.Buffer{}
	in := strings.NewReader(strings.Join(script, "\n") + "\n")

	srv := console.New(
		console.Conf{L: l, In: in, Out: out},
		booking.New(l, ledger, session.New(), booking.DefaultCatalog(), now),
		admin.New(l, db),
		gate,
	)

	return &harness{db: db, out: out, srv: srv}
}

func (h *harness) names(t *testing.T) []string {
	t.Helper()

	entries, err := h.db.List(context.Background())
	if errors.Is(err, booking.ErrNoData) {
		return nil
	}

	require.NoError(t, err)

	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Record.Name)
	}

	return out
}

// =============================================================================
// MAIN MENU
// =============================================================================

func TestServer_Booking_EndToEnd(t *testing.T) {
	h := newHarness(t, []string{
		"1",
		"Ana Silva", "07911-123456", "ana@example.com", "3", "01/06/2025", "20/06/2025",
		"Y",
		"3",
	}, options{})

	require.NoError(t, h.srv.Run(context.Background()))

	output := h.out.String()
	assert.Contains(t, output, "Booking Summary")
	assert.Contains(t, output, "Great! You earned a discount")
	assert.Contains(t, output, "Booking saved successfully!")
	assert.Contains(t, output, "See you soon!")

	entries, err := h.db.List(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "07911123456", entries[0].Record.Contact)
	assert.Equal(t, "4154.95", entries[0].Record.Total.StringFixed(2))
}

func TestServer_Booking_RepromptsAndNavigatesBack(t *testing.T) {
	h := newHarness(t, []string{
		"1",
		"Ana 1", "Ana Silva",
		"123", "00", "Ana Silva", "07911123456",
		"bad-email", "ana@example.com",
		"x", "9", "1",
		"01/01/2020", "01/06/2025",
		"01/06/2025", "31/05/2025", "00", "02/06/2025", "04/06/2025",
		"maybe", "N", "02/06/2025", "05/06/2025", "y",
		"3",
	}, options{})

	require.NoError(t, h.srv.Run(context.Background()))

	output := h.out.String()
	assert.Contains(t, output, "Invalid name")
	assert.Contains(t, output, "Invalid UK phone number")
	assert.Contains(t, output, "Invalid email format")
	assert.Contains(t, output, "invalid accommodation")
	assert.Contains(t, output, "Date cannot be in the past")
	assert.Contains(t, output, "please add at least one day")
	assert.Contains(t, output, "Check-out date must be after check-in date")
	assert.Contains(t, output, "Did you know?")
	assert.Contains(t, output, "Invalid option.")

	entries, err := h.db.List(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Imperial Lodge", entries[0].Record.Accommodation)
	assert.Equal(t, 3, entries[0].Record.Days)
}

func TestServer_Booking_Cancelled(t *testing.T) {
	h := newHarness(t, []string{"1", "0", "3"}, options{})

	require.NoError(t, h.srv.Run(context.Background()))

	assert.Contains(t, h.out.String(), "Booking cancelled")
	assert.Empty(t, h.names(t))
}

func TestServer_Booking_SaveFailureIsReported(t *testing.T) {
	// GIVEN: a ledger that rejects every write
	h := newHarness(t, []string{
		"1",
		"Ana Silva", "07911123456", "ana@example.com", "3", "01/06/2025", "20/06/2025",
		"Y",
	}, options{bookingLedger: brokenLedger{}})

	// WHEN: the booking is confirmed and input then ends
	require.NoError(t, h.srv.Run(context.Background()))

	// THEN: the failure is shown and no success message is printed
	output := h.out.String()
	assert.Contains(t, output, "Error saving booking: permission denied")
	assert.Contains(t, output, "NOT saved")
	assert.NotContains(t, output, "Booking saved successfully!")
}

func TestServer_InvalidMainOptions(t *testing.T) {
	h := newHarness(t, []string{"abc", "9", "3"}, options{})

	require.NoError(t, h.srv.Run(context.Background()))

	output := h.out.String()
	assert.Contains(t, output, "Please enter a number")
	assert.Contains(t, output, "Try again with 1, 2 or 3.")
}

func TestServer_Booking_OversizedLineIsRejected(t *testing.T) {
	// GIVEN: a name far longer than any input line the console accepts
	h := newHarness(t, []string{
		"1",
		strings.Repeat("a", 70*1024),
		"Ana Silva", "07911123456", "ana@example.com", "3", "01/06/2025", "20/06/2025",
		"Y",
		"3",
	}, options{})

	// WHEN: the dialogue is run
	require.NoError(t, h.srv.Run(context.Background()))

	// THEN: the long line is dropped and the next name is used
	output := h.out.String()
	assert.Contains(t, output, "Input is too long")
	assert.Contains(t, output, "Booking saved successfully!")
	assert.Equal(t, []string{"Ana Silva"}, h.names(t))
}

func TestServer_LastLineWithoutNewline(t *testing.T) {
	l := logger.New(log.New(io.Discard, "", 0))
	db := memory.New(memory.Config{L: l})

	gate, err := admin.NewPasswordGate("admin", "1234", bcrypt.MinCost)
	require.NoError(t, err)

	out := &bytes.Buffer{}
	srv := console.New(
		console.Conf{L: l, In: strings.NewReader("9\n3"), Out: out},
		booking.New(l, db, session.New(), booking.DefaultCatalog(), nil),
		admin.New(l, db),
		gate,
	)

	require.NoError(t, srv.Run(context.Background()))
	assert.Contains(t, out.String(), "See you soon!")
}

func TestServer_EndOfInput(t *testing.T) {
	h := newHarness(t, nil, options{})

	assert.NoError(t, h.srv.Run(context.Background()))
}

// =============================================================================
// ADMIN AREA
// =============================================================================

func TestServer_Admin_WrongPassword(t *testing.T) {
	h := newHarness(t, []string{"2", "admin", "wrong", "3"}, options{}, "Ana Silva")

	require.NoError(t, h.srv.Run(context.Background()))

	assert.Contains(t, h.out.String(), "Incorrect username or password.")
	assert.Equal(t, []string{"Ana Silva"}, h.names(t))
}

func TestServer_Admin_ViewBookings(t *testing.T) {
	h := newHarness(t, []string{"2", "admin", "1234", "1", "4", "3"}, options{}, "Ana Silva", "Bo Chen")

	require.NoError(t, h.srv.Run(context.Background()))

	output := h.out.String()
	assert.Contains(t, output, "Admin login successful!")
	assert.Contains(t, output, "Ana Silva")
	assert.Contains(t, output, "Bo Chen")
}

func TestServer_Admin_ViewEmpty(t *testing.T) {
	h := newHarness(t, []string{"2", "admin", "1234", "1", "4", "3"}, options{})

	require.NoError(t, h.srv.Run(context.Background()))

	assert.Contains(t, h.out.String(), "No bookings to display")
}

func TestServer_Admin_DeleteByNumber(t *testing.T) {
	h := newHarness(t, []string{
		"2", "admin", "1234",
		"3", "7", // out of range
		"3", "2", "N", // declined
		"3", "2", "Y",
		"4", "3",
	}, options{}, "Ana Silva", "Bo Chen", "Cy Diaz")

	require.NoError(t, h.srv.Run(context.Background()))

	output := h.out.String()
	assert.Contains(t, output, "Invalid number.")
	assert.Contains(t, output, "Operation cancelled.")
	assert.Contains(t, output, "Booking number 2 deleted successfully!")
	assert.Equal(t, []string{"Ana Silva", "Cy Diaz"}, h.names(t))
}

func TestServer_Admin_DeleteByNumber_ZeroCancels(t *testing.T) {
	h := newHarness(t, []string{"2", "admin", "1234", "3", "0", "4", "3"}, options{}, "Ana Silva")

	require.NoError(t, h.srv.Run(context.Background()))

	assert.Contains(t, h.out.String(), "Operation cancelled.")
	assert.Equal(t, []string{"Ana Silva"}, h.names(t))
}

func TestServer_Admin_DeleteAll(t *testing.T) {
	h := newHarness(t, []string{
		"2", "admin", "1234",
		"2", "n",
		"2", "Y",
		"4", "3",
	}, options{}, "Ana Silva", "Bo Chen")

	require.NoError(t, h.srv.Run(context.Background()))

	output := h.out.String()
	assert.Contains(t, output, "Operation cancelled.")
	assert.Contains(t, output, "All bookings deleted.")
	assert.Empty(t, h.names(t))
}

func TestServer_CommandPanic_Recovered(t *testing.T) {
	h := newHarness(t, []string{"2", "admin", "1234", "3"}, options{gate: panickingGate{}})

	require.NoError(t, h.srv.Run(context.Background()))

	output := h.out.String()
	assert.Contains(t, output, "Something went wrong")
	assert.Contains(t, output, "See you soon!", "the main menu keeps running after a panic")
}
