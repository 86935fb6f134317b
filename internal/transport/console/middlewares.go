package console

import (
	"context"
	"fmt"
	"time"
)

func (s *Server) loggerMiddleware() func(name string, next command) command {
	return func(name string, next command) command {
		return func(ctx context.Context) error {
			start := time.Now().UTC()

			err := next(ctx)

			s.l.LogInfo("type: command, name: %s, failed: %t, latency: %s", name, err != nil, time.Since(start))

			return err
		}
	}
}

// recoverMiddleware turns a panic inside a command into an error so the main
// menu keeps running.
func (s *Server) recoverMiddleware() func(name string, next command) command {
	return func(name string, next command) command {
		return func(ctx context.Context) (err error) {
			defer func() {
				if re := recover(); re != nil {
					recovered, ok := re.(error)
					if !ok {
						recovered = fmt.Errorf("%v: %w", re, ErrPanic)
					} else {
						recovered = fmt.Errorf("%w: %w", ErrPanic, recovered)
					}

					s.l.LogErrorf("type: panic, command: %s, error: %v", name, recovered)

					err = recovered
				}
			}()

			return next(ctx)
		}
	}
}

func (s *Server) applyMiddlewares(name string, cmd command, middlewares ...func(string, command) command) command {
	for _, middleware := range middlewares {
		cmd = middleware(name, cmd)
	}

	return cmd
}
