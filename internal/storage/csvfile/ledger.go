// Package csvfile stores confirmed bookings in a comma-separated flat file.
//
// The first line of a non-empty file is booking.Header; every other line is
// one booking. A booking's position is its 1-based line number after the
// header. Malformed rows are not listed but keep their position, so the
// numbers shown by List are the numbers Delete accepts.
//
// Every call reopens the file; nothing is cached between calls. Delete and
// Clear rewrite the whole file.
package csvfile

import (
	"bufio"
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"sync"

	"github.com/avstrong/vacaystar/internal/booking"
	"github.com/avstrong/vacaystar/internal/logger"
)

const filePerm = 0o644

type Config struct {
	L    *logger.Logger
	Path string
}

type Ledger struct {
	mu   sync.Mutex
	l    *logger.Logger
	path string
}

func New(conf Config) *Ledger {
	//nolint:exhaustruct
	return &Ledger{
		l:    conf.L,
		path: conf.Path,
	}
}

func (lg *Ledger) Path() string {
	return lg.path
}

// Append adds one row, writing the header first if the file is empty.
func (lg *Ledger) Append(_ context.Context, record booking.Record) (err error) {
	lg.mu.Lock()
	defer lg.mu.Unlock()

	f, err := os.OpenFile(lg.path, os.O_RDWR|os.O_APPEND|os.O_CREATE, filePerm)
	if err != nil {
		return fmt.Errorf("open ledger %s: %w", lg.path, err)
	}

	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close ledger %s: %w", lg.path, closeErr)
		}
	}()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("stat ledger %s: %w", lg.path, err)
	}

	var buf bytes.Buffer

	if info.Size() == 0 {
		if err := writeRow(&buf, booking.Header); err != nil {
			return err
		}
	} else if !endsWithNewline(f, info.Size()) {
		buf.WriteByte('\n')
	}

	if err := writeRow(&buf, record.Fields()); err != nil {
		return err
	}

	if _, err := f.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("write ledger %s: %w", lg.path, err)
	}

	return nil
}

// List returns the well-formed bookings with their positions. A missing file
// or one without data rows yields booking.ErrNoData.
func (lg *Ledger) List(_ context.Context) ([]booking.Entry, error) {
	lg.mu.Lock()
	defer lg.mu.Unlock()

	lines, err := lg.dataLines()
	if err != nil {
		return nil, err
	}

	entries := make([]booking.Entry, 0, len(lines))

	for i, line := range lines {
		position := i + 1

		record, err := decodeRecord(line)
		if err != nil {
			lg.l.LogWarnf("Skipping ledger %s row %d: %v", lg.path, position, err.Error())

			continue
		}

		entries = append(entries, booking.Entry{Position: position, Record: record})
	}

	return entries, nil
}

// Rows returns the number of data rows, malformed ones included. Valid
// positions are 1..Rows.
func (lg *Ledger) Rows(_ context.Context) (int, error) {
	lg.mu.Lock()
	defer lg.mu.Unlock()

	lines, err := lg.dataLines()
	if errors.Is(err, booking.ErrNoData) {
		return 0, nil
	}

	if err != nil {
		return 0, err
	}

	return len(lines), nil
}

// Clear truncates the file and leaves only the header.
func (lg *Ledger) Clear(_ context.Context) error {
	lg.mu.Lock()
	defer lg.mu.Unlock()

	return lg.rewrite(nil)
}

// Delete removes the booking at position; later bookings move up by one.
func (lg *Ledger) Delete(_ context.Context, position int) error {
	lg.mu.Lock()
	defer lg.mu.Unlock()

	lines, err := lg.dataLines()
	if err != nil {
		return err
	}

	if position < 1 || position > len(lines) {
		return fmt.Errorf("delete %d of %d: %w", position, len(lines), booking.ErrPositionOutOfRange)
	}

	kept := make([]string, 0, len(lines)-1)
	kept = append(kept, lines[:position-1]...)
	kept = append(kept, lines[position:]...)

	return lg.rewrite(kept)
}

// dataLines returns the raw lines after the header.
func (lg *Ledger) dataLines() ([]string, error) {
	lines, err := lg.readLines()
	if errors.Is(err, fs.ErrNotExist) {
		return nil, booking.ErrNoData
	}

	if err != nil {
		return nil, err
	}

	if len(lines) <= 1 {
		return nil, booking.ErrNoData
	}

	return lines[1:], nil
}

func (lg *Ledger) readLines() (_ []string, err error) {
	f, err := os.Open(lg.path)
	if err != nil {
		return nil, fmt.Errorf("open ledger %s: %w", lg.path, err)
	}

	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close ledger %s: %w", lg.path, closeErr)
		}
	}()

	var lines []string

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read ledger %s: %w", lg.path, err)
	}

	return lines, nil
}

// rewrite replaces the file with the header followed by dataLines.
func (lg *Ledger) rewrite(dataLines []string) (err error) {
	f, err := os.OpenFile(lg.path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, filePerm)
	if err != nil {
		return fmt.Errorf("open ledger %s: %w", lg.path, err)
	}

	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close ledger %s: %w", lg.path, closeErr)
		}
	}()

	w := bufio.NewWriter(f)

	if err := writeRow(w, booking.Header); err != nil {
		return err
	}

	for _, line := range dataLines {
		if _, err := w.WriteString(line + "\n"); err != nil {
			return fmt.Errorf("write ledger %s: %w", lg.path, err)
		}
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("write ledger %s: %w", lg.path, err)
	}

	return nil
}

func writeRow(w io.Writer, fields []string) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(fields); err != nil {
		return fmt.Errorf("encode ledger row: %w", err)
	}

	cw.Flush()

	if err := cw.Error(); err != nil {
		return fmt.Errorf("encode ledger row: %w", err)
	}

	return nil
}

func decodeRecord(line string) (booking.Record, error) {
	r := csv.NewReader(strings.NewReader(line))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	fields, err := r.Read()
	if err != nil {
		return booking.Record{}, fmt.Errorf("decode row: %w: %w", booking.ErrMalformedRecord, err)
	}

	return booking.ParseRecord(fields)
}

func endsWithNewline(f *os.File, size int64) bool {
	last := make([]byte, 1)
	if _, err := f.ReadAt(last, size-1); err != nil {
		return true
	}

	return last[0] == '\n'
}
