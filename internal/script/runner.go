package script

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/dshills/linedit/internal/engine"
)

// DefaultTimeout bounds a script run unless WithTimeout says otherwise.
const DefaultTimeout = 5 * time.Second

// Runner executes Lua scripts against a Session.
type Runner struct {
	session *engine.Session
	timeout time.Duration
	out     io.Writer
}

// Option configures a Runner.
type Option func(*Runner)

// WithTimeout sets the time limit for one run; zero disables it.
func WithTimeout(d time.Duration) Option {
	return func(r *Runner) {
		r.timeout = d
	}
}

// WithOutput sets where print writes. Defaults to os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(r *Runner) {
		r.out = w
	}
}

// NewRunner creates a runner for session.
func NewRunner(session *engine.Session, opts ...Option) *Runner {
	r := &Runner{
		session: session,
		timeout: DefaultTimeout,
		out:     os.Stdout,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// RunFile executes the Lua file at path.
func (r *Runner) RunFile(ctx context.Context, path string) error {
	code, err := os.ReadFile(path)
	if err != nil {
		return &Error{Script: path, Err: err}
	}
	return r.run(ctx, filepath.Base(path), string(code))
}

// RunString executes code; name identifies it in errors and history.
func (r *Runner) RunString(ctx context.Context, name, code string) error {
	return r.run(ctx, name, code)
}

func (r *Runner) run(ctx context.Context, name, code string) error {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	L := newState(r.out)
	defer L.Close()
	L.SetContext(ctx)

	mod := &edModule{session: r.session}
	mod.register(L)

	err := r.session.Transaction("Script "+name, func() error {
		err := doWithRecovery(func() error {
			return L.DoString(code)
		})
		switch {
		case err == nil:
			return nil
		case ctx.Err() != nil:
			return fmt.Errorf("%w: %v", ErrTimeout, ctx.Err())
		}
		if cause := mod.cause(err); cause != nil {
			return cause
		}
		return err
	})
	if err != nil {
		return &Error{Script: name, Err: err}
	}
	return nil
}

// doWithRecovery executes a function with panic recovery.
func doWithRecovery(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("lua panic: %v", r)
		}
	}()
	return fn()
}
