package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/avstrong/vacaystar/internal/booking"
	"github.com/avstrong/vacaystar/internal/logger"
)

type Config struct {
	L *logger.Logger
}

// DB is a ledger kept in process memory. Positions follow insertion order
// and shift on delete, as in the file ledger.
type DB struct {
	mu      sync.Mutex
	l       *logger.Logger
	records []booking.Record
}

func New(conf Config) *DB {
	//nolint:exhaustruct
	return &DB{
		l: conf.L,
	}
}

func (db *DB) Append(_ context.Context, record booking.Record) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	db.records = append(db.records, record)

	return nil
}

func (db *DB) List(_ context.Context) ([]booking.Entry, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	if len(db.records) == 0 {
		return nil, booking.ErrNoData
	}

	entries := make([]booking.Entry, 0, len(db.records))
	for i, record := range db.records {
		entries = append(entries, booking.Entry{Position: i + 1, Record: record})
	}

	return entries, nil
}

func (db *DB) Rows(_ context.Context) (int, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	return len(db.records), nil
}

func (db *DB) Clear(_ context.Context) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	db.records = nil
	db.l.LogInfo("In-memory ledger cleared")

	return nil
}

func (db *DB) Delete(_ context.Context, position int) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	if len(db.records) == 0 {
		return booking.ErrNoData
	}

	if position < 1 || position > len(db.records) {
		return fmt.Errorf("delete %d of %d: %w", position, len(db.records), booking.ErrPositionOutOfRange)
	}

	db.records = append(db.records[:position-1], db.records[position:]...)
	db.l.LogInfo("In-memory ledger booking %d deleted", position)

	return nil
}
