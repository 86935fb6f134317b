package booking

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownAccommodation = errors.New("unknown accommodation")
	ErrMalformedRecord      = errors.New("malformed ledger record")
	ErrIncompleteBooking    = errors.New("booking is incomplete")
	ErrSessionID            = errors.New("get session id from generator")
	ErrNoData               = errors.New("no bookings in ledger")
	ErrPositionOutOfRange   = errors.New("booking number out of range")
)

// PersistError is returned when a confirmed booking could not be written to
// the ledger. The booking stays in the confirmation stage.
type PersistError struct {
	Record Record
	err    error
}

func newPersistError(record Record, err error) *PersistError {
	return &PersistError{Record: record, err: err}
}

func IsPersistError(err error) *PersistError {
	if err == nil {
		return nil
	}

	var persistError *PersistError

	if errors.As(err, &persistError) {
		return persistError
	}

	return nil
}

func (e *PersistError) Error() string {
	return fmt.Sprintf("save booking for %q: %v", e.Record.Name, e.err)
}

func (e *PersistError) Unwrap() error {
	return e.err
}
