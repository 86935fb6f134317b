package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/avstrong/vacaystar/internal/admin"
	"github.com/avstrong/vacaystar/internal/booking"
	"github.com/avstrong/vacaystar/internal/logger"
)

const (
	rule = "=============================================================="

	// maxLineLength bounds one input line; longer lines are discarded.
	maxLineLength = 4096
)

type Server struct {
	l        *logger.Logger
	in       *bufio.Reader
	out      io.Writer
	printer  *message.Printer
	bManager *booking.Manager
	aManager *admin.Manager
	gate     admin.Gate
}

type Conf struct {
	L   *logger.Logger
	In  io.Reader
	Out io.Writer
}

func New(conf Conf, bookingManager *booking.Manager, adminManager *admin.Manager, gate admin.Gate) *Server {
	return &Server{
		l:        conf.L,
		in:       bufio.NewReaderSize(conf.In, maxLineLength),
		out:      conf.Out,
		printer:  message.NewPrinter(language.BritishEnglish),
		bManager: bookingManager,
		aManager: adminManager,
		gate:     gate,
	}
}

// Run shows the main menu until the user exits or input ends.
func (s *Server) Run(ctx context.Context) error {
	s.banner("VacayStar", "Welcome to the Booking System!")

	commands := s.mainCommands()

	for {
		s.mainMenu()

		option, err := s.readInt()
		if err != nil {
			return s.inputEnded(ctx, err)
		}

		if option == optionExit {
			s.banner("Thank you for using the Booking System!", "See you soon!")

			return nil
		}

		cmd, ok := commands[option]
		if !ok {
			s.banner("Oops! Looks like you chose an invalid option.", "Try again with 1, 2 or 3.")

			continue
		}

		if err := cmd(ctx); err != nil {
			if errors.Is(err, io.EOF) || ctx.Err() != nil {
				return s.inputEnded(ctx, err)
			}

			s.l.LogErrorf("Command %d failed: %v", option, err.Error())
			s.println("\nSomething went wrong: " + err.Error())
		}
	}
}

func (s *Server) inputEnded(ctx context.Context, err error) error {
	if errors.Is(err, io.EOF) || ctx.Err() != nil {
		s.l.LogInfo("Input closed, leaving main menu")

		return nil
	}

	return fmt.Errorf("read input: %w", err)
}

// readLine returns the next input line without its line terminator.
// Lines longer than maxLineLength are dropped and the user is asked again.
func (s *Server) readLine() (string, error) {
	for {
		line, tooLong, err := s.nextLine()
		if err != nil {
			return "", err
		}

		if !tooLong {
			return line, nil
		}

		s.l.LogWarnf("Discarded input line longer than %d bytes", maxLineLength)
		s.print("Input is too long. Please try again: ")
	}
}

func (s *Server) nextLine() (string, bool, error) {
	var (
		line    []byte
		tooLong bool
	)

	for {
		chunk, err := s.in.ReadSlice('\n')

		if !tooLong {
			if len(line)+len(chunk) > maxLineLength+len("\r\n") {
				tooLong = true
				line = nil
			} else {
				line = append(line, chunk...)
			}
		}

		switch {
		case errors.Is(err, bufio.ErrBufferFull):
			continue
		case err == nil:
		case errors.Is(err, io.EOF) && (len(line) > 0 || tooLong):
		default:
			return "", false, err
		}

		return strings.TrimRight(string(line), "\r\n"), tooLong, nil
	}
}

// readInt re-prompts until the line is an integer.
func (s *Server) readInt() (int, error) {
	for {
		line, err := s.readLine()
		if err != nil {
			return 0, err
		}

		n, err := strconv.Atoi(strings.TrimSpace(line))
		if err == nil {
			return n, nil
		}

		s.banner("Oops! Looks like you chose an invalid input.", "Try again. Please enter a number")
	}
}

// confirm asks a Y/N question; anything but Y is a no.
func (s *Server) confirm(question string) (bool, error) {
	s.print(question + " (Y/N): ")

	line, err := s.readLine()
	if err != nil {
		return false, err
	}

	return strings.EqualFold(strings.TrimSpace(line), "Y"), nil
}

func (s *Server) money(d decimal.Decimal) string {
	return s.printer.Sprintf("%v %v", currency.GBP, number.Decimal(d.InexactFloat64(), number.Scale(2)))
}

func (s *Server) print(text string) {
	fmt.Fprint(s.out, text)
}

func (s *Server) println(text string) {
	fmt.Fprintln(s.out, text)
}

func (s *Server) printf(format string, v ...any) {
	fmt.Fprintf(s.out, format, v...)
}

func (s *Server) banner(lines ...string) {
	s.println("\n" + rule)

	for _, line := range lines {
		s.println(center(line, len(rule)))
	}

	s.println(rule + "\n")
}

func center(text string, width int) string {
	pad := (width - len([]rune(text))) / 2 //nolint:gomnd
	if pad <= 0 {
		return text
	}

	return strings.Repeat(" ", pad) + text
}
