package xmain

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"testing"

	"cdr.dev/slog/sloggers/slogtest"

	"oss.terrastruct.com/cmdlog"
	"oss.terrastruct.com/xos"

	ctxlog "oss.terrastruct.com/deck/lib/log"
)

// TestState runs a RunFunc in process with buffered stdio so tests can drive
// the CLI without spawning a binary.
type TestState struct {
	Run  RunFunc
	Env  *xos.Env
	Args []string
	PWD  string

	Stdin  io.Reader
	Stdout *Buffer
	Stderr *Buffer

	cancel context.CancelFunc
	sigs   chan os.Signal
	done   chan struct{}
	err    error
}

func (ts *TestState) Start(tb testing.TB, ctx context.Context) {
	tb.Helper()

	if ts.Env == nil {
		ts.Env = xos.NewEnv(nil)
	}
	if ts.Stdin == nil {
		ts.Stdin = strings.NewReader("")
	}
	if ts.Stdout == nil {
		ts.Stdout = &Buffer{}
	}
	if ts.Stderr == nil {
		ts.Stderr = &Buffer{}
	}

	name := ""
	args := []string(nil)
	if len(ts.Args) > 0 {
		name = ts.Args[0]
		args = ts.Args[1:]
	}

	ms := &State{
		Name: name,
		PWD:  ts.PWD,

		Stdin:  ts.Stdin,
		Stdout: ts.Stdout,
		Stderr: ts.Stderr,

		Env: ts.Env,
	}
	ms.Log = cmdlog.New(ms.Env, ms.Stderr)
	ms.Opts = NewOpts(ms.Env, ms.Log, args)

	ctx = ctxlog.WithTB(ctx, tb, &slogtest.Options{IgnoreErrors: true})
	ctx, ts.cancel = context.WithCancel(ctx)
	ts.sigs = make(chan os.Signal)
	ts.done = make(chan struct{})
	go func() {
		defer close(ts.done)
		ts.err = ms.Main(ctx, ts.sigs, ts.Run)
	}()
}

func (ts *TestState) Wait(ctx context.Context) error {
	select {
	case <-ts.done:
		if ts.err != nil {
			return fmt.Errorf("failed to wait xmain test: %w", ts.err)
		}
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Signal delivers sig as if the process received it.
func (ts *TestState) Signal(ctx context.Context, sig os.Signal) {
	select {
	case ts.sigs <- sig:
	case <-ctx.Done():
	}
}

func (ts *TestState) Cleanup(tb testing.TB) {
	tb.Helper()

	ts.cancel()
	<-ts.done
}

// Buffer is a goroutine safe io.WriteCloser that ignores Close so output
// written to - stays readable after the command exits.
type Buffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *Buffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *Buffer) Close() error {
	return nil
}

func (b *Buffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}
