package console

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/avstrong/vacaystar/internal/booking"
	"github.com/avstrong/vacaystar/internal/validate"
)

const (
	optionBooking = 1
	optionAdmin   = 2
	optionExit    = 3
)

const (
	adminView = iota + 1
	adminDeleteAll
	adminDeleteOne
	adminReturn
)

type command func(ctx context.Context) error

func (s *Server) mainCommands() map[int]command {
	return map[int]command{
		optionBooking: s.applyMiddlewares("booking", s.makeBooking, s.loggerMiddleware(), s.recoverMiddleware()),
		optionAdmin:   s.applyMiddlewares("admin", s.adminArea, s.loggerMiddleware(), s.recoverMiddleware()),
	}
}

func (s *Server) mainMenu() {
	s.println(rule)
	s.println(center("Main Menu", len(rule)))
	s.println(rule)
	s.println("1. Make a Booking")
	s.println("2. Admin Area")
	s.println("3. Exit")
	s.println(rule)
	s.print("Choose an option: ")
}

func (s *Server) makeBooking(ctx context.Context) error {
	state, err := s.bManager.Run(ctx, s)
	if err != nil {
		return err
	}

	if state == booking.StateCancelled {
		s.banner("Booking cancelled. Returning to main menu.")
	}

	return nil
}

func (s *Server) adminArea(ctx context.Context) error {
	s.banner("Admin Login")
	s.print("Admin username: ")

	user, err := s.readLine()
	if err != nil {
		return err
	}

	s.print("Admin password: ")

	password, err := s.readLine()
	if err != nil {
		return err
	}

	if !s.gate.Authorize(user, password) {
		s.l.LogInfo("Admin login rejected for user %q", user)
		s.println("\nIncorrect username or password.")

		return nil
	}

	s.l.LogInfo("Admin login for user %q", user)
	s.println("\nAdmin login successful!")

	return s.adminMenu(ctx)
}

func (s *Server) adminMenu(ctx context.Context) error {
	for {
		s.println("\n" + rule)
		s.println(center("Admin Menu", len(rule)))
		s.println(rule)
		s.println("1. View All Bookings")
		s.println("2. Delete All Bookings")
		s.println("3. Delete a Booking by Number")
		s.println("4. Return to Main Menu")
		s.print("Choose an option: ")

		option, err := s.readInt()
		if err != nil {
			return err
		}

		switch option {
		case adminView:
			s.viewBookings(ctx)
		case adminDeleteAll:
			err = s.deleteAllBookings(ctx)
		case adminDeleteOne:
			err = s.deleteBooking(ctx)
		case adminReturn:
			return nil
		default:
			s.println("Invalid option. Try again.")
		}

		if err != nil {
			return err
		}
	}
}

// viewBookings prints the ledger and reports whether any booking was shown.
func (s *Server) viewBookings(ctx context.Context) bool {
	s.banner("All Bookings")

	entries, err := s.aManager.Bookings(ctx)
	if errors.Is(err, booking.ErrNoData) {
		s.println("No bookings to display. Please make a booking first.")

		return false
	}

	if err != nil {
		s.println("Could not read the bookings: " + err.Error())

		return false
	}

	const format = "%-3v | %-20s | %-13s | %-30s | %-16s | %-4v | %-10s | %-10s | %-14s | %-14s\n"

	line := strings.Repeat("-", 165) //nolint:gomnd

	s.println(line)
	s.printf(format, "Nr.", "Name", "Contact", "Email", "Accommodation", "Days", "Check-in", "Check-out", "Discount", "Total Price")
	s.println(line)

	for _, e := range entries {
		r := e.Record
		s.printf(format, e.Position, r.Name, r.Contact, r.Email, r.Accommodation, r.Days,
			r.CheckIn.Format(validate.DateLayout), r.CheckOut.Format(validate.DateLayout), s.money(r.Discount), s.money(r.Total))
	}

	s.println(line)

	return true
}

func (s *Server) deleteAllBookings(ctx context.Context) error {
	s.banner("Delete All Bookings")

	ok, err := s.confirm("Are you sure you want to DELETE ALL bookings?")
	if err != nil {
		return err
	}

	if !ok {
		s.println("\nOperation cancelled.")

		return nil
	}

	if err := s.aManager.DeleteAll(ctx); err != nil {
		s.println("\nCould not delete the bookings: " + err.Error())

		return nil
	}

	s.println("\nAll bookings deleted.")

	return nil
}

func (s *Server) deleteBooking(ctx context.Context) error {
	s.banner("Delete a Specific Booking")

	if !s.viewBookings(ctx) {
		return nil
	}

	rows, err := s.aManager.Rows(ctx)
	if err != nil {
		s.println("Could not read the bookings: " + err.Error())

		return nil
	}

	s.print("\nEnter the booking number to delete or 0 to cancel: ")

	position, err := s.readInt()
	if err != nil {
		return err
	}

	if position == 0 {
		s.println("\nOperation cancelled.")

		return nil
	}

	if position < 1 || position > rows {
		s.println("\nInvalid number.")

		return nil
	}

	ok, err := s.confirm("\nAre you sure you want to delete booking number " + strconv.Itoa(position) + "?")
	if err != nil {
		return err
	}

	if !ok {
		s.println("\nOperation cancelled.")

		return nil
	}

	if err := s.aManager.Delete(ctx, position); err != nil {
		s.println("\nCould not delete the booking: " + err.Error())

		return nil
	}

	s.println("\nBooking number " + strconv.Itoa(position) + " deleted successfully!")

	return nil
}
