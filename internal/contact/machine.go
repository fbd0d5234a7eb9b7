package contact

import (
	"errors"
	"sync"
	"time"

	"github.com/Zachkp/portfolio/internal/clock"
)

// State is a step of the submission cycle.
type State int

const (
	Idle State = iota
	Submitting
	Submitted
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Submitting:
		return "submitting"
	case Submitted:
		return "submitted"
	default:
		return "unknown"
	}
}

const (
	DefaultSubmitDelay = 2 * time.Second
	DefaultResetDelay  = 3 * time.Second
)

var (
	// ErrBusy is returned when a submission is already in flight.
	ErrBusy = errors.New("contact: submission in progress")
	// ErrClosed is returned after Close.
	ErrClosed = errors.New("contact: form closed")
)

// Options tunes a Machine. Zero values take the defaults.
type Options struct {
	Clock       clock.Clock
	SubmitDelay time.Duration
	ResetDelay  time.Duration
	// OnSubmitted receives the fields of each completed submission. It runs
	// on the timer goroutine without the machine's lock held.
	OnSubmitted func(Fields)
}

// Machine cycles Idle → Submitting → Submitted → Idle. It is safe for
// concurrent use.
type Machine struct {
	mu     sync.Mutex
	opts   Options
	state  State
	fields Fields
	timer  clock.Timer
	closed bool
}

// NewMachine returns an idle machine.
func NewMachine(opts Options) *Machine {
	if opts.Clock == nil {
		opts.Clock = clock.Real()
	}
	if opts.SubmitDelay <= 0 {
		opts.SubmitDelay = DefaultSubmitDelay
	}
	if opts.ResetDelay <= 0 {
		opts.ResetDelay = DefaultResetDelay
	}
	return &Machine{opts: opts}
}

func (m *Machine) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Fields returns the form's current values.
func (m *Machine) Fields() Fields {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.fields
}

// Update replaces the form's values while the form is editable.
func (m *Machine) Update(f Fields) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state == Idle && !m.closed {
		m.fields = f
	}
}

// CanSubmit reports whether the submit control is enabled.
func (m *Machine) CanSubmit() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state == Idle && !m.closed
}

// Submit starts a mock submission of f. Blank fields leave the machine idle
// and return a *FieldError.
func (m *Machine) Submit(f Fields) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	switch {
	case m.closed:
		return ErrClosed
	case m.state != Idle:
		return ErrBusy
	}
	m.fields = f
	if err := f.Validate(); err != nil {
		return err
	}
	m.state = Submitting
	m.timer = m.opts.Clock.AfterFunc(m.opts.SubmitDelay, m.complete)
	return nil
}

func (m *Machine) complete() {
	m.mu.Lock()
	if m.closed || m.state != Submitting {
		m.mu.Unlock()
		return
	}
	sent := m.fields
	m.fields = Fields{}
	m.state = Submitted
	m.timer = m.opts.Clock.AfterFunc(m.opts.ResetDelay, m.reset)
	hook := m.opts.OnSubmitted
	m.mu.Unlock()

	if hook != nil {
		hook(sent)
	}
}

func (m *Machine) reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed || m.state != Submitted {
		return
	}
	m.state = Idle
	m.timer = nil
}

// Close cancels any pending transition. Timer callbacks that race with Close
// see the closed flag and do nothing.
func (m *Machine) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	if m.timer != nil {
		m.timer.Stop()
		m.timer = nil
	}
}
