package state

import (
	"bytes"
	"context"
	"errors"
	"log"
	"os"
	"strings"
	"syscall"
	"testing"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// syncer is a log sink whose Sync fails with err.
type syncer struct {
	err error
}

func (s syncer) Write(p []byte) (int, error) { return len(p), nil }
func (s syncer) Sync() error                 { return s.err }

func syncerCore(err error) zapcore.Core {
	enc := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	return zapcore.NewCore(enc, syncer{err: err}, zap.DebugLevel)
}

// captureStdLog points standard logger at a buffer for the duration of the test.
func captureStdLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := log.Writer()
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(prev) })
	return &buf
}

func TestContextWithEnv(t *testing.T) {
	env := EnvFromContext(ContextWithEnv(context.Background()))
	if env.start.IsZero() {
		t.Error("Environment start time not set")
	}
	if env.Cfg != nil {
		t.Error("Configuration must not be present before it is loaded")
	}
	if env.Log == nil {
		t.Fatal("expected non-nil default logger")
	}
	// default logger must be usable before configuration is loaded
	env.Log.Warn("not visible")
	if err := env.RestoreStdLog(); err != nil {
		t.Errorf("RestoreStdLog() on default env error = %v", err)
	}
}

func TestEnvFromContext_Missing(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic when env not in context")
		}
	}()
	EnvFromContext(context.Background())
}

func TestRedirectStdLog(t *testing.T) {
	buf := captureStdLog(t)
	core, logs := observer.New(zap.DebugLevel)
	env := &LocalEnv{Log: zap.New(core)}

	env.RedirectStdLog()
	log.Print("from standard logger")
	if err := env.RestoreStdLog(); err != nil {
		t.Fatalf("RestoreStdLog() error = %v", err)
	}

	if n := logs.FilterMessage("from standard logger").Len(); n != 1 {
		t.Errorf("expected redirected message to reach zap once, got %d", n)
	}
	if buf.Len() != 0 {
		t.Errorf("redirected message leaked to original output: %q", buf.String())
	}
	// zap puts standard logger back onto stderr
	if log.Writer() != os.Stderr {
		t.Error("standard logger output was not restored")
	}
}

func TestRedirectStdLog_NilLogger(t *testing.T) {
	buf := captureStdLog(t)
	env := &LocalEnv{}

	env.RedirectStdLog()
	log.Print("untouched")
	if err := env.RestoreStdLog(); err != nil {
		t.Errorf("RestoreStdLog() error = %v", err)
	}
	if !strings.Contains(buf.String(), "untouched") {
		t.Error("standard logger must stay as is without program logger")
	}
}

func TestRestoreStdLog_SyncErrors(t *testing.T) {
	diskFull := errors.New("disk full")
	console := &os.PathError{Op: "sync", Path: "/dev/stdout", Err: syscall.EINVAL}
	tty := &os.PathError{Op: "sync", Path: "/dev/stderr", Err: syscall.ENOTTY}

	tests := []struct {
		name  string
		cores []zapcore.Core
		want  []error
	}{
		{"clean", []zapcore.Core{syncerCore(nil)}, nil},
		{"console only", []zapcore.Core{syncerCore(console), syncerCore(tty)}, nil},
		{"file failure", []zapcore.Core{syncerCore(diskFull)}, []error{diskFull}},
		{"file failure among console", []zapcore.Core{syncerCore(console), syncerCore(diskFull)}, []error{diskFull}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := &LocalEnv{Log: zap.New(zapcore.NewTee(tt.cores...))}
			env.RedirectStdLog()

			err := env.RestoreStdLog()
			errs := multierr.Errors(err)
			if len(errs) != len(tt.want) {
				t.Fatalf("RestoreStdLog() = %v, want %d errors", err, len(tt.want))
			}
			for i, w := range tt.want {
				if !errors.Is(errs[i], w) {
					t.Errorf("error #%d = %v, want %v", i, errs[i], w)
				}
			}
		})
	}
}

func TestRedirectAndRestore_Cycles(t *testing.T) {
	captureStdLog(t)
	core, logs := observer.New(zap.InfoLevel)
	env := &LocalEnv{Log: zap.New(core)}

	for range 3 {
		env.RedirectStdLog()
		log.Print("cycle")
		if err := env.RestoreStdLog(); err != nil {
			t.Fatalf("RestoreStdLog() error = %v", err)
		}
	}
	// second restore without redirect is harmless
	if err := env.RestoreStdLog(); err != nil {
		t.Errorf("RestoreStdLog() error = %v", err)
	}

	if n := logs.FilterMessage("cycle").Len(); n != 3 {
		t.Errorf("expected 3 redirected messages, got %d", n)
	}
	if log.Writer() != os.Stderr {
		t.Error("standard logger output was not restored")
	}
}
