// Package state defines shared program state.
package state

import (
	"context"
	"errors"
	"fmt"
	"syscall"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"cssb/config"
)

type envKey struct{}

// LocalEnv keeps everything program needs in a single place.
type LocalEnv struct {
	Cfg *config.Config
	Log *zap.Logger

	start         time.Time
	restoreStdLog func()
}

func newLocalEnv() *LocalEnv {
	return &LocalEnv{
		start: time.Now(),
		Log:   zap.NewNop(),
	}
}

func EnvFromContext(ctx context.Context) *LocalEnv {
	if env, ok := ctx.Value(envKey{}).(*LocalEnv); ok {
		return env
	}
	// this should never happen
	panic("localenv not found in context")
}

func ContextWithEnv(ctx context.Context) context.Context {
	return context.WithValue(ctx, envKey{}, newLocalEnv())
}

func (e *LocalEnv) Uptime() time.Duration {
	return time.Since(e.start)
}

func (e *LocalEnv) RedirectStdLog() {
	if e.Log == nil {
		return
	}
	e.restoreStdLog = zap.RedirectStdLog(e.Log)
}

// RestoreStdLog flushes program logger and returns standard library logger to
// its original state. Returned error combines all sync failures except those
// reported by console streams which cannot be synced.
func (e *LocalEnv) RestoreStdLog() (err error) {
	if e.Log != nil {
		for _, er := range multierr.Errors(e.Log.Sync()) {
			if errors.Is(er, syscall.EINVAL) || errors.Is(er, syscall.ENOTTY) {
				continue
			}
			err = multierr.Append(err, fmt.Errorf("unable to sync log: %w", er))
		}
	}
	if e.restoreStdLog != nil {
		e.restoreStdLog()
		e.restoreStdLog = nil
	}
	return err
}
