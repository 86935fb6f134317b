package booking

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.opentelemetry.io/otel/trace"

	"github.com/avstrong/vacaystar/internal/logger"
	"github.com/avstrong/vacaystar/internal/pricing"
	"github.com/avstrong/vacaystar/internal/validate"
)

const (
	cancelInput = "0"
	backInput   = "00"
)

type idGenerator interface {
	GetID(ctx context.Context) (trace.TraceID, error)
}

type ledger interface {
	Append(ctx context.Context, record Record) error
}

// Prompter is the console side of a session: it reads one line for a state
// and shows the outcome of each transition.
type Prompter interface {
	Prompt(ctx context.Context, state State, bc *Context) (string, error)
	Notify(ctx context.Context, tr Transition, bc *Context)
}

type Manager struct {
	l           *logger.Logger
	ledger      ledger
	idGenerator idGenerator
	catalog     Catalog
	now         func() time.Time
}

func New(l *logger.Logger, ledger ledger, idGenerator idGenerator, catalog Catalog, now func() time.Time) *Manager {
	if now == nil {
		now = time.Now
	}

	return &Manager{
		l:           l,
		ledger:      ledger,
		idGenerator: idGenerator,
		catalog:     catalog,
		now:         now,
	}
}

func (m *Manager) Catalog() Catalog {
	return m.catalog
}

// Run drives one booking session until it is done or cancelled. A prompter
// error ends the session as cancelled and is returned.
func (m *Manager) Run(ctx context.Context, p Prompter) (State, error) {
	id, err := m.idGenerator.GetID(ctx)
	if err != nil {
		return StateCancelled, fmt.Errorf("%w: %w", ErrSessionID, err)
	}

	ctx = NewContextWithSession(ctx, id)
	m.l.LogInfoCtx(ctx, "Booking session started")

	bc := &Context{}
	state := StateGettingName

	for !state.Terminal() {
		if err := ctx.Err(); err != nil {
			m.l.LogInfoCtx(ctx, "Booking session interrupted in %s", state)

			return StateCancelled, fmt.Errorf("booking session: %w", err)
		}

		line, err := p.Prompt(ctx, state, bc)
		if err != nil {
			m.l.LogInfoCtx(ctx, "Booking session lost its input in %s", state)

			return StateCancelled, fmt.Errorf("read input for %s: %w", state, err)
		}

		tr := m.Step(ctx, state, bc, line)
		p.Notify(ctx, tr, bc)

		state = tr.Next
	}

	m.l.LogInfoCtx(ctx, "Booking session finished as %s", state)

	return state, nil
}

// Step is the transition function: it applies one line of input to state,
// updating bc, and returns the next state.
func (m *Manager) Step(ctx context.Context, state State, bc *Context, line string) Transition {
	line = strings.TrimSpace(line)

	switch state {
	case StateGettingName:
		return m.stepName(bc, line)
	case StateGettingPhone:
		return m.stepPhone(bc, line)
	case StateGettingEmail:
		return m.stepEmail(bc, line)
	case StateSelectingAccommodation:
		return m.stepAccommodation(bc, line)
	case StateGettingCheckIn:
		return m.stepCheckIn(bc, line)
	case StateGettingCheckOut:
		return m.stepCheckOut(bc, line)
	case StateConfirmingBooking:
		return m.stepConfirm(ctx, bc, line)
	case StateDone, StateCancelled:
		return Transition{Next: state, Event: EventNone}
	default:
		return Transition{Next: StateCancelled, Event: EventCancelled}
	}
}

func (m *Manager) stepName(bc *Context, line string) Transition {
	if line == cancelInput {
		return Transition{Next: StateCancelled, Event: EventCancelled}
	}

	if !validate.Name(line) {
		return Transition{Next: StateGettingName, Event: EventInvalidName}
	}

	bc.Name = line

	return Transition{Next: StateGettingPhone, Event: EventAdvanced}
}

func (m *Manager) stepPhone(bc *Context, line string) Transition {
	if line == backInput {
		return Transition{Next: StateGettingName, Event: EventBack}
	}

	phone := validate.NormalizeUKPhone(line)
	if !validate.UKPhone(phone) {
		return Transition{Next: StateGettingPhone, Event: EventInvalidPhone}
	}

	bc.Contact = phone

	return Transition{Next: StateGettingEmail, Event: EventAdvanced}
}

func (m *Manager) stepEmail(bc *Context, line string) Transition {
	if line == backInput {
		return Transition{Next: StateGettingPhone, Event: EventBack}
	}

	if !validate.Email(line) {
		return Transition{Next: StateGettingEmail, Event: EventInvalidEmail}
	}

	bc.Email = line

	return Transition{Next: StateSelectingAccommodation, Event: EventAdvanced}
}

func (m *Manager) stepAccommodation(bc *Context, line string) Transition {
	if line == backInput {
		return Transition{Next: StateGettingEmail, Event: EventBack}
	}

	index, err := strconv.Atoi(line)
	if err != nil {
		return Transition{Next: StateSelectingAccommodation, Event: EventNotANumber}
	}

	entry, err := m.catalog.Lookup(index)
	if err != nil {
		return Transition{Next: StateSelectingAccommodation, Event: EventUnknownAccommodation, Err: err}
	}

	bc.AccommodationIndex = index
	bc.AccommodationName = entry.Name

	return Transition{Next: StateGettingCheckIn, Event: EventAdvanced}
}

func (m *Manager) stepCheckIn(bc *Context, line string) Transition {
	if line == backInput {
		return Transition{Next: StateSelectingAccommodation, Event: EventBack}
	}

	checkIn, err := validate.ParseDate(line, true, m.now())
	if err != nil {
		return Transition{Next: StateGettingCheckIn, Event: dateEvent(err), Err: err}
	}

	bc.clearDates()
	bc.CheckIn = checkIn

	return Transition{Next: StateGettingCheckOut, Event: EventAdvanced}
}

func (m *Manager) stepCheckOut(bc *Context, line string) Transition {
	if line == backInput {
		return Transition{Next: StateGettingCheckIn, Event: EventBack}
	}

	checkOut, err := validate.ParseDate(line, false, m.now())
	if err != nil {
		return Transition{Next: StateGettingCheckOut, Event: dateEvent(err), Err: err}
	}

	if checkOut.Equal(bc.CheckIn) {
		return Transition{Next: StateGettingCheckOut, Event: EventSameDay}
	}

	if !checkOut.After(bc.CheckIn) {
		return Transition{Next: StateGettingCheckOut, Event: EventCheckOutBeforeCheckIn}
	}

	bc.CheckOut = checkOut
	bc.StayLengthDays = validate.DaysBetween(bc.CheckIn, bc.CheckOut)

	return Transition{Next: StateConfirmingBooking, Event: EventAdvanced}
}

func (m *Manager) stepConfirm(ctx context.Context, bc *Context, line string) Transition {
	switch strings.ToUpper(line) {
	case "Y":
		record, err := m.save(ctx, bc)
		if err != nil {
			m.l.LogErrorCtx(ctx, "Could not save booking: %v", err.Error())

			return Transition{Next: StateConfirmingBooking, Event: EventSaveFailed, Err: err}
		}

		m.l.LogInfoCtx(ctx, "Booking saved: %s, %s, %d days, total %s",
			record.Name, record.Accommodation, record.Days, record.Total.StringFixed(2))

		return Transition{Next: StateDone, Event: EventBookingSaved}
	case "N", backInput:
		return Transition{Next: StateGettingCheckIn, Event: EventBack}
	default:
		return Transition{Next: StateConfirmingBooking, Event: EventInvalidConfirmation}
	}
}

// Quote prices the booking collected so far.
func (m *Manager) Quote(bc *Context) (pricing.Quote, error) {
	if !bc.datesSet() || bc.StayLengthDays < 1 {
		return pricing.Quote{}, ErrIncompleteBooking
	}

	entry, err := m.catalog.Lookup(bc.AccommodationIndex)
	if err != nil {
		return pricing.Quote{}, err
	}

	return pricing.Calculate(bc.StayLengthDays, entry.ProcessingFee, entry.NightlyRate, entry.DiscountRate), nil
}

func (m *Manager) save(ctx context.Context, bc *Context) (Record, error) {
	quote, err := m.Quote(bc)
	if err != nil {
		return Record{}, fmt.Errorf("price booking: %w", err)
	}

	record := Record{
		Name:          bc.Name,
		Contact:       bc.Contact,
		Email:         bc.Email,
		Accommodation: bc.AccommodationName,
		Days:          bc.StayLengthDays,
		CheckIn:       bc.CheckIn,
		CheckOut:      bc.CheckOut,
		Discount:      quote.Discount.Round(2),
		Total:         quote.Total.Round(2),
	}

	if err := m.ledger.Append(ctx, record); err != nil {
		return record, newPersistError(record, err)
	}

	return record, nil
}

func dateEvent(err error) Event {
	if errors.Is(err, validate.ErrDateInPast) {
		return EventDateInPast
	}

	return EventInvalidDate
}
