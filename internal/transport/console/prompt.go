package console

import (
	"context"
	"errors"
	"strconv"

	"github.com/avstrong/vacaystar/internal/booking"
	"github.com/avstrong/vacaystar/internal/pricing"
	"github.com/avstrong/vacaystar/internal/validate"
)

// Prompt implements booking.Prompter.
func (s *Server) Prompt(_ context.Context, state booking.State, bc *booking.Context) (string, error) {
	switch state {
	case booking.StateGettingName:
		s.section("Enter your name (or 0 to cancel):")
	case booking.StateGettingPhone:
		s.section("Enter your UK phone number (or 00 to go back):")
	case booking.StateGettingEmail:
		s.section("Enter your email (or 00 to go back):")
	case booking.StateSelectingAccommodation:
		s.accommodationMenu()
	case booking.StateGettingCheckIn:
		s.section("Enter check-in date (dd/mm/yyyy or ddmmyyyy) or 00 to go back:")
	case booking.StateGettingCheckOut:
		s.section("Enter check-out date (dd/mm/yyyy or ddmmyyyy) or 00 to go back:")
	case booking.StateConfirmingBooking:
		s.summary(bc)
		s.print("Confirm booking? (Y = yes, N = change dates): ")
	case booking.StateDone, booking.StateCancelled:
	}

	return s.readLine()
}

// Notify implements booking.Prompter.
func (s *Server) Notify(_ context.Context, tr booking.Transition, _ *booking.Context) {
	switch tr.Event {
	case booking.EventInvalidName:
		s.banner("Invalid name. Please use only letters and spaces.")
	case booking.EventInvalidPhone:
		s.banner("Invalid UK phone number.", "Please enter a valid 11 digit number starting with 0.")
	case booking.EventInvalidEmail:
		s.banner("Invalid email format. Please enter a valid email address.")
	case booking.EventNotANumber:
		s.banner("Oops! Looks like you chose an invalid input.", "Try again. Please enter a number")
	case booking.EventUnknownAccommodation:
		s.banner("Oops! Looks like you chose an invalid accommodation.",
			"Please enter a number from 1 to "+strconv.Itoa(len(s.bManager.Catalog())))
	case booking.EventInvalidDate:
		s.banner("Invalid date format.", "Please use dd/mm/yyyy or ddmmyyyy.")
	case booking.EventDateInPast:
		s.banner("Enter a valid date.", "Date cannot be in the past.")
	case booking.EventSameDay:
		s.banner("Incorrect checkout date, please add at least one day.")
	case booking.EventCheckOutBeforeCheckIn:
		s.banner("Check-out date must be after check-in date.")
	case booking.EventInvalidConfirmation:
		s.println("Invalid option.")
	case booking.EventBookingSaved:
		s.banner("Booking saved successfully!")
	case booking.EventSaveFailed:
		s.saveFailed(tr.Err)
	case booking.EventNone, booking.EventAdvanced, booking.EventBack, booking.EventCancelled:
	}
}

func (s *Server) saveFailed(err error) {
	reason := "unknown error"
	if err != nil {
		reason = err.Error()
	}

	if persistErr := booking.IsPersistError(err); persistErr != nil {
		reason = errors.Unwrap(persistErr).Error()
	}

	s.banner("Error saving booking: "+reason,
		"Your booking was NOT saved.",
		"Enter Y to try again or N to change dates.")
}

func (s *Server) section(title string) {
	s.println("\n" + rule)
	s.println(title)
	s.println(rule)
}

func (s *Server) accommodationMenu() {
	s.println("\n" + rule)
	s.println(center("Select Accommodation", len(rule)))
	s.println(center("Please choose an option (or 00 to go back):", len(rule)))
	s.println(rule)

	for i, entry := range s.bManager.Catalog() {
		s.printf("%d. %-18s (%s/day, card fee %s, %s%% discount for %d+ days)\n",
			i+1, entry.Name, s.money(entry.NightlyRate), s.money(entry.ProcessingFee),
			entry.DiscountRate.Shift(2).StringFixed(0), pricing.LongStayDays)
	}

	s.println(rule)
	s.print("Your choice: ")
}

func (s *Server) summary(bc *booking.Context) {
	s.println("\n" + rule)
	s.println(center("Booking Summary", len(rule)))
	s.println(rule)
	s.println("Name: " + bc.Name)
	s.println("Contact: " + bc.Contact)
	s.println("Email: " + bc.Email)
	s.println("Accommodation: " + bc.AccommodationName)
	s.println("Check-in: " + bc.CheckIn.Format(validate.DateLayout))
	s.println("Check-out: " + bc.CheckOut.Format(validate.DateLayout))
	s.println("Days: " + strconv.Itoa(bc.StayLengthDays))

	quote, err := s.bManager.Quote(bc)
	if err != nil {
		s.println("Price unavailable: " + err.Error())

		return
	}

	if quote.DiscountEarned() {
		s.println("Great! You earned a discount of: " + s.money(quote.Discount))
	} else {
		s.println("Did you know?")
		s.printf("Get a special discount when you book %d days or more!\n", pricing.LongStayDays)
	}

	s.println("Total price: " + s.money(quote.Total))
	s.println(rule)
}
