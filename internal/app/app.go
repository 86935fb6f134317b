package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/avstrong/vacaystar/internal/admin"
	"github.com/avstrong/vacaystar/internal/booking"
	"github.com/avstrong/vacaystar/internal/config"
	"github.com/avstrong/vacaystar/internal/idgen/session"
	"github.com/avstrong/vacaystar/internal/logger"
	"github.com/avstrong/vacaystar/internal/storage/csvfile"
	"github.com/avstrong/vacaystar/internal/storage/memory"
	"github.com/avstrong/vacaystar/internal/transport/console"
)

const shutdownTimeout = 4 * time.Second

type ledger interface {
	Append(ctx context.Context, record booking.Record) error
	List(ctx context.Context) ([]booking.Entry, error)
	Rows(ctx context.Context) (int, error)
	Clear(ctx context.Context) error
	Delete(ctx context.Context, position int) error
}

// Run wires the booking tool to stdin/stdout and blocks until the user exits,
// input ends or the process is interrupted.
func Run(l *logger.Logger, conf config.Config) error {
	ctx, cancel := signal.NotifyContext(
		context.Background(),
		syscall.SIGINT,
		syscall.SIGTERM,
		syscall.SIGHUP,
	)
	defer cancel()

	store, err := newLedger(l, conf)
	if err != nil {
		return err
	}

	gate, err := admin.NewPasswordGate(conf.AdminUser, conf.AdminPassword, bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("init admin gate: %w", err)
	}

	bookManager := booking.New(l, store, session.New(), booking.DefaultCatalog(), time.Now)
	adminManager := admin.New(l, store)

	srv := console.New(console.Conf{
		L:   l,
		In:  os.Stdin,
		Out: os.Stdout,
	}, bookManager, adminManager, gate)

	done := make(chan struct{})
	defer close(done)

	go func() {
		select {
		case <-done:
			return
		case <-ctx.Done():
		}

		l.LogInfo("Interrupt received, stopping console")

		// A pending stdin read only returns once the file is closed.
		if err := os.Stdin.Close(); err != nil {
			l.LogErrorf("Failed to close input: %v", err.Error())
		}

		select {
		case <-done:
		case <-time.After(shutdownTimeout):
			l.LogErrorf("Console did not stop within %s, exiting", shutdownTimeout)
			os.Exit(1)
		}
	}()

	l.LogInfo("Application is running, ledger %s (%s backend)", conf.LedgerPath, conf.LedgerBackend)

	if err := srv.Run(ctx); err != nil {
		return fmt.Errorf("run console: %w", err)
	}

	l.LogInfo("Application stopped gracefully")

	return nil
}

func newLedger(l *logger.Logger, conf config.Config) (ledger, error) {
	switch conf.LedgerBackend {
	case config.BackendCSV:
		return csvfile.New(csvfile.Config{L: l, Path: conf.LedgerPath}), nil
	case config.BackendMemory:
		return memory.New(memory.Config{L: l}), nil
	default:
		return nil, fmt.Errorf("ledger backend %q: %w", conf.LedgerBackend, ErrUnknownBackend)
	}
}
