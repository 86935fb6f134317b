package admin

import (
	"context"
	"fmt"

	"github.com/avstrong/vacaystar/internal/booking"
	"github.com/avstrong/vacaystar/internal/logger"
)

type storage interface {
	List(ctx context.Context) ([]booking.Entry, error)
	Rows(ctx context.Context) (int, error)
	Clear(ctx context.Context) error
	Delete(ctx context.Context, position int) error
}

// Manager exposes the ledger maintenance available behind the admin gate.
type Manager struct {
	l       *logger.Logger
	storage storage
}

func New(l *logger.Logger, storage storage) *Manager {
	return &Manager{
		l:       l,
		storage: storage,
	}
}

// Bookings returns the listable bookings; booking.ErrNoData when there are none.
func (m *Manager) Bookings(ctx context.Context) ([]booking.Entry, error) {
	entries, err := m.storage.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	return entries, nil
}

// Rows is the highest position Delete accepts.
func (m *Manager) Rows(ctx context.Context) (int, error) {
	rows, err := m.storage.Rows(ctx)
	if err != nil {
		return 0, fmt.Errorf("count bookings: %w", err)
	}

	return rows, nil
}

func (m *Manager) DeleteAll(ctx context.Context) error {
	if err := m.storage.Clear(ctx); err != nil {
		m.l.LogErrorf("Could not clear bookings: %v", err.Error())

		return fmt.Errorf("clear bookings: %w", err)
	}

	m.l.LogInfo("All bookings deleted")

	return nil
}

func (m *Manager) Delete(ctx context.Context, position int) error {
	if err := m.storage.Delete(ctx, position); err != nil {
		m.l.LogErrorf("Could not delete booking %d: %v", position, err.Error())

		return fmt.Errorf("delete booking %d: %w", position, err)
	}

	m.l.LogInfo("Booking %d deleted", position)

	return nil
}
