// Package typewriter animates a fixed rotation of phrases, typing each one
// out a character at a time, holding it, deleting it, and moving on to the
// next phrase forever.
//
// An Animator owns all of its state. It writes the visible text to a Display
// and asks a Scheduler to call it back after each delay, so the same
// animator can be driven by real timers, an event loop, or a fake clock.
package typewriter

import (
	"errors"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
)

var (
	ErrNoPhrases   = errors.New("typewriter: phrase list is empty")
	ErrEmptyPhrase = errors.New("typewriter: phrase is empty")
	ErrRunning     = errors.New("typewriter: animator already started")
)

// Mode is the direction the animator is currently moving in.
type Mode int

const (
	Typing Mode = iota
	Deleting
)

func (m Mode) String() string {
	switch m {
	case Typing:
		return "typing"
	case Deleting:
		return "deleting"
	default:
		return "unknown"
	}
}

// State is a snapshot of the animator's counters. Visible counts runes of
// the phrase at PhraseIndex and always stays within [0, len(phrase)].
type State struct {
	PhraseIndex int
	Visible     int
	Mode        Mode
}

// Timing holds the delays between steps.
type Timing struct {
	Type       time.Duration // between typed characters
	Delete     time.Duration // between deleted characters
	Hold       time.Duration // after a phrase is fully typed
	NextPhrase time.Duration // after a phrase is fully deleted
}

func DefaultTiming() Timing {
	return Timing{
		Type:       100 * time.Millisecond,
		Delete:     50 * time.Millisecond,
		Hold:       2000 * time.Millisecond,
		NextPhrase: 500 * time.Millisecond,
	}
}

// Scale multiplies every delay by factor. Non-positive factors leave the
// timing unchanged.
func (t Timing) Scale(factor float64) Timing {
	if factor <= 0 {
		return t
	}
	scale := func(d time.Duration) time.Duration {
		return time.Duration(float64(d) * factor)
	}
	return Timing{
		Type:       scale(t.Type),
		Delete:     scale(t.Delete),
		Hold:       scale(t.Hold),
		NextPhrase: scale(t.NextPhrase),
	}
}

// Display receives the visible text after every step. Nothing else should
// write to the same target while the animator is running.
type Display interface {
	SetText(text string)
}

// DisplayFunc adapts a plain function to Display.
type DisplayFunc func(text string)

func (f DisplayFunc) SetText(text string) { f(text) }

// Timer is a pending callback returned by a Scheduler.
type Timer interface {
	Stop() bool
}

// Scheduler runs f once after d has elapsed.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// ClockScheduler schedules callbacks on a clock.Clock, so a mock clock can
// drive the animation in tests.
type ClockScheduler struct {
	Clock clock.Clock
}

func (s ClockScheduler) AfterFunc(d time.Duration, f func()) Timer {
	return s.Clock.AfterFunc(d, f)
}

// SystemScheduler schedules callbacks on the wall clock.
func SystemScheduler() ClockScheduler {
	return ClockScheduler{Clock: clock.New()}
}

// Option configures an Animator.
type Option func(*Animator)

func WithTiming(t Timing) Option {
	return func(a *Animator) { a.timing = t }
}

func WithDisplay(d Display) Option {
	return func(a *Animator) { a.display = d }
}

// Animator cycles through its phrases. Create one with New.
type Animator struct {
	phrases [][]rune
	timing  Timing
	display Display

	mu      sync.Mutex
	state   State
	text    string
	sched   Scheduler
	timer   Timer
	running bool
	// seq identifies the most recently scheduled callback; older
	// callbacks that fire late are ignored.
	seq uint64
}

// New returns an animator positioned at the start of the first phrase. The
// phrase list is copied. Every phrase must be non-empty.
func New(phrases []string, opts ...Option) (*Animator, error) {
	if len(phrases) == 0 {
		return nil, ErrNoPhrases
	}
	a := &Animator{
		phrases: make([][]rune, len(phrases)),
		timing:  DefaultTiming(),
	}
	for i, p := range phrases {
		if p == "" {
			return nil, ErrEmptyPhrase
		}
		a.phrases[i] = []rune(p)
	}
	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

// Phrases returns a copy of the phrase rotation.
func (a *Animator) Phrases() []string {
	out := make([]string, len(a.phrases))
	for i, p := range a.phrases {
		out[i] = string(p)
	}
	return out
}

func (a *Animator) State() State {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state
}

// Text returns the text most recently written to the display.
func (a *Animator) Text() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.text
}

func (a *Animator) Running() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.running
}

// Advance performs a single step without scheduling anything and returns
// the delay before the next step. It is meant for hosts that run their own
// loop; do not mix it with Start.
func (a *Animator) Advance() time.Duration {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.advanceLocked()
}

// Step advances the animation and, while the animator is running, schedules
// the following step. Any step already pending is replaced.
func (a *Animator) Step() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.stepLocked()
}

// Start schedules the first step immediately on s.
func (a *Animator) Start(s Scheduler) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.running {
		return ErrRunning
	}
	a.sched = s
	a.running = true
	a.scheduleLocked(0)
	return nil
}

// Stop cancels the pending step. Once Stop returns the display is not
// written again until the next Start. Stop is safe to call more than once.
func (a *Animator) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if !a.running {
		return
	}
	a.running = false
	a.seq++
	if a.timer != nil {
		a.timer.Stop()
		a.timer = nil
	}
}

func (a *Animator) fire(seq uint64) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if seq != a.seq {
		return
	}
	a.stepLocked()
}

func (a *Animator) stepLocked() {
	delay := a.advanceLocked()
	if !a.running {
		return
	}
	if a.timer != nil {
		a.timer.Stop()
	}
	a.scheduleLocked(delay)
}

func (a *Animator) scheduleLocked(d time.Duration) {
	a.seq++
	seq := a.seq
	a.timer = a.sched.AfterFunc(d, func() { a.fire(seq) })
}

func (a *Animator) advanceLocked() time.Duration {
	phrase := a.phrases[a.state.PhraseIndex]
	if a.state.Mode == Deleting {
		a.state.Visible--
	} else {
		a.state.Visible++
	}
	a.text = string(phrase[:a.state.Visible])
	if a.display != nil {
		a.display.SetText(a.text)
	}

	switch {
	case a.state.Mode == Typing && a.state.Visible == len(phrase):
		a.state.Mode = Deleting
		return a.timing.Hold
	case a.state.Mode == Deleting && a.state.Visible == 0:
		a.state.Mode = Typing
		a.state.PhraseIndex = (a.state.PhraseIndex + 1) % len(a.phrases)
		return a.timing.NextPhrase
	case a.state.Mode == Deleting:
		return a.timing.Delete
	default:
		return a.timing.Type
	}
}
