package loader

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/studydash/internal/client/credentials"
	"github.com/dmitrijs2005/studydash/internal/client/report"
	"github.com/dmitrijs2005/studydash/internal/logging"
)

// DefaultTimeout bounds a single fetch.
const DefaultTimeout = 10 * time.Second

// FetchFunc performs the authenticated read for one view.
type FetchFunc[T any] func(ctx context.Context, token string) (T, error)

type settings struct {
	key      string
	timeout  time.Duration
	reporter report.Reporter
	log      logging.Logger
}

// Option configures a Loader.
type Option func(*settings)

// WithCredentialKey overrides the credential store key (credentials.TokenKey).
func WithCredentialKey(key string) Option {
	return func(s *settings) { s.key = key }
}

// WithTimeout bounds each fetch. Zero or negative disables the bound.
func WithTimeout(d time.Duration) Option {
	return func(s *settings) { s.timeout = d }
}

// WithReporter sets the external failure sink.
func WithReporter(r report.Reporter) Option {
	return func(s *settings) { s.reporter = r }
}

// WithLogger sets the logger used for lifecycle debug lines.
func WithLogger(l logging.Logger) Option {
	return func(s *settings) { s.log = l }
}

// Loader owns the State of one view instance. It is safe for concurrent use.
type Loader[T any] struct {
	view  string
	store credentials.Store
	fetch FetchFunc[T]
	settings

	mu     sync.Mutex
	gen    uint64
	cancel context.CancelFunc
	state  State[T]
}

// New returns a Loader for the named view ("dashboard", "notes"). The view
// name appears in failure messages: "Failed to load <view>: <reason>".
func New[T any](view string, store credentials.Store, fetch FetchFunc[T], opts ...Option) *Loader[T] {
	s := settings{
		key:      credentials.TokenKey,
		timeout:  DefaultTimeout,
		reporter: report.Nop,
		log:      logging.Nop(),
	}
	for _, opt := range opts {
		opt(&s)
	}
	s.log = s.log.With("view", view)

	return &Loader[T]{
		view:     view,
		store:    store,
		fetch:    fetch,
		settings: s,
		state:    State[T]{Phase: Loading},
	}
}

// View returns the view name.
func (l *Loader[T]) View() string { return l.view }

// State returns the current snapshot.
func (l *Loader[T]) State() State[T] {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

// Activation is a started, not yet settled load.
type Activation struct {
	Generation uint64
	ctx        context.Context
	cancel     context.CancelFunc
}

// Begin starts a new activation: the state becomes Loading under a fresh
// generation and any in-flight activation is cancelled.
func (l *Loader[T]) Begin(ctx context.Context) Activation {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.cancel != nil {
		l.cancel()
	}
	l.gen++
	actx, cancel := context.WithCancel(ctx)
	l.cancel = cancel
	l.state = State[T]{Phase: Loading, Generation: l.gen}

	l.log.Debug(ctx, "activation started", "generation", l.gen)
	return Activation{Generation: l.gen, ctx: actx, cancel: cancel}
}

// Run settles the activation into Error or Ready. The result is committed
// and reported only if a is still the latest activation; committed tells
// which. A panic inside the fetch function is turned into an Error state.
func (l *Loader[T]) Run(a Activation) (st State[T], committed bool) {
	defer func() {
		if p := recover(); p != nil {
			st = l.failure(a.Generation, fmt.Errorf("panic: %v", p))
		}
		a.cancel()

		committed = l.commit(a.Generation, st)
		if !committed {
			l.log.Debug(a.ctx, "stale result discarded", "generation", a.Generation, "phase", st.Phase)
			return
		}
		if st.Phase == Error {
			l.reporter.Report(context.WithoutCancel(a.ctx), st.Message)
		}
	}()

	token, ok, err := l.store.Get(a.ctx, l.key)
	if err != nil {
		l.log.Warn(a.ctx, "credential store read failed", "error", err)
	}
	if err != nil || !ok {
		st = State[T]{Phase: Error, Generation: a.Generation, Message: AuthMissingMessage, Err: ErrAuthMissing}
		if err != nil {
			st.Err = fmt.Errorf("%w: %w", ErrAuthMissing, err)
		}
		return
	}

	fctx := a.ctx
	if l.timeout > 0 {
		var cancel context.CancelFunc
		fctx, cancel = context.WithTimeout(a.ctx, l.timeout)
		defer cancel()
	}

	payload, err := l.fetch(fctx, token)
	if err != nil {
		if errors.Is(fctx.Err(), context.DeadlineExceeded) && a.ctx.Err() == nil {
			err = fmt.Errorf("request timed out after %s: %w", l.timeout, context.DeadlineExceeded)
		}
		st = l.failure(a.Generation, err)
		return
	}

	st = State[T]{Phase: Ready, Generation: a.Generation, Payload: payload}
	return
}

// Load runs a whole activation synchronously and returns the resulting
// state. If a newer activation started meanwhile, its current state is
// returned instead.
func (l *Loader[T]) Load(ctx context.Context) State[T] {
	st, ok := l.Run(l.Begin(ctx))
	if !ok {
		return l.State()
	}
	return st
}

// Close cancels any in-flight activation and makes its result stale. The
// state is left as it was.
func (l *Loader[T]) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.cancel != nil {
		l.cancel()
		l.cancel = nil
	}
	l.gen++
}

func (l *Loader[T]) failure(gen uint64, cause error) State[T] {
	return State[T]{
		Phase:      Error,
		Generation: gen,
		Message:    fmt.Sprintf("Failed to load %s: %s", l.view, cause.Error()),
		Err:        fmt.Errorf("%w: %w", ErrRequestFailed, cause),
	}
}

func (l *Loader[T]) commit(gen uint64, st State[T]) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if gen != l.gen {
		return false
	}
	l.state = st
	l.cancel = nil
	return true
}
