package booking

type State int

const (
	StateGettingName State = iota + 1
	StateGettingPhone
	StateGettingEmail
	StateSelectingAccommodation
	StateGettingCheckIn
	StateGettingCheckOut
	StateConfirmingBooking
	StateDone
	StateCancelled
)

func (s State) String() string {
	switch s {
	case StateGettingName:
		return "GettingName"
	case StateGettingPhone:
		return "GettingPhone"
	case StateGettingEmail:
		return "GettingEmail"
	case StateSelectingAccommodation:
		return "SelectingAccommodation"
	case StateGettingCheckIn:
		return "GettingCheckIn"
	case StateGettingCheckOut:
		return "GettingCheckOut"
	case StateConfirmingBooking:
		return "ConfirmingBooking"
	case StateDone:
		return "Done"
	case StateCancelled:
		return "Cancelled"
	default:
		return "Unknown"
	}
}

// Stage groups the two date sub-stages under GettingDates.
func (s State) Stage() string {
	if s == StateGettingCheckIn || s == StateGettingCheckOut {
		return "GettingDates"
	}

	return s.String()
}

func (s State) Terminal() bool {
	return s == StateDone || s == StateCancelled
}

// Event tells a presenter what a transition did with the input.
type Event int

const (
	EventNone Event = iota
	EventAdvanced
	EventBack
	EventCancelled
	EventInvalidName
	EventInvalidPhone
	EventInvalidEmail
	EventNotANumber
	EventUnknownAccommodation
	EventInvalidDate
	EventDateInPast
	EventSameDay
	EventCheckOutBeforeCheckIn
	EventInvalidConfirmation
	EventBookingSaved
	EventSaveFailed
)

// Rejected reports whether the input was refused and the state re-prompts.
func (e Event) Rejected() bool {
	switch e {
	case EventInvalidName, EventInvalidPhone, EventInvalidEmail, EventNotANumber,
		EventUnknownAccommodation, EventInvalidDate, EventDateInPast, EventSameDay,
		EventCheckOutBeforeCheckIn, EventInvalidConfirmation, EventSaveFailed:
		return true
	default:
		return false
	}
}

type Transition struct {
	Next  State
	Event Event
	Err   error
}
