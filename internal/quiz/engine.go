package quiz

import (
	"fmt"
	"math/rand/v2"
	"sync"

	"github.com/golang/glog"

	"github.com/abhisek/quizdeck/internal/bank"
)

// Options configures an Engine.
type Options struct {
	DrawSize   int
	Thresholds Thresholds

	// Rand drives question sampling. Nil uses the global source.
	Rand *rand.Rand

	// Bank is the initial bank. Nil starts with the bundled sample.
	Bank bank.Bank
}

// Engine owns the active question bank and the quiz session. It is the
// single entry point for the UI and is safe for concurrent use.
type Engine struct {
	mu      sync.Mutex
	bank    bank.Bank
	session *Session
	rng     *rand.Rand
}

// NewEngine creates an idle engine.
func NewEngine(opts Options) *Engine {
	th := opts.Thresholds
	if th == (Thresholds{}) {
		th = DefaultThresholds()
	}
	b := opts.Bank
	if b == nil {
		b = bank.Sample()
	}
	return &Engine{
		bank:    b.Clone(),
		session: NewSession(opts.DrawSize, th),
		rng:     opts.Rand,
	}
}

// LoadText parses delimited text and replaces the bank on success. On
// failure the current bank is kept.
func (e *Engine) LoadText(text string) (int, error) {
	b, err := bank.LoadText(text)
	if err != nil {
		return 0, err
	}
	return e.replace(b, "text"), nil
}

// LoadFile reads a bank file and replaces the bank on success.
func (e *Engine) LoadFile(path string) (int, error) {
	b, err := bank.ReadFile(path)
	if err != nil {
		return 0, err
	}
	return e.replace(b, path), nil
}

// LoadSample restores the bundled sample bank.
func (e *Engine) LoadSample() int {
	return e.replace(bank.Sample(), "sample")
}

// SetBank replaces the bank with b. An empty bank is rejected.
func (e *Engine) SetBank(b bank.Bank) (int, error) {
	if len(b) == 0 {
		return 0, bank.ErrNoValidRows
	}
	return e.replace(b.Clone(), "direct"), nil
}

func (e *Engine) replace(b bank.Bank, source string) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.bank = b
	glog.Infof("question bank loaded from %s: %d questions", source, len(b))
	return len(b)
}

// Bank returns a copy of the active bank.
func (e *Engine) Bank() bank.Bank {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.bank.Clone()
}

// BankSize returns the number of questions in the active bank.
func (e *Engine) BankSize() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.bank)
}

// Start draws a new quiz from the active bank.
func (e *Engine) Start() (Snapshot, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.session.Start(e.bank, e.rng); err != nil {
		return Snapshot{}, fmt.Errorf("start quiz: %w", err)
	}
	snap := e.session.Snapshot()
	glog.Infof("quiz %s started: %d of %d questions", snap.SessionID, snap.Total, len(e.bank))
	return snap, nil
}

// Answer applies choice to the current question. It reports false and
// changes nothing when no quiz is running.
func (e *Engine) Answer(choice int) (Outcome, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	out, ok := e.session.Answer(choice)
	if ok && out.Finished {
		glog.Infof("quiz %s finished: %d/%d (%s)", e.session.id, out.Score, out.Total, out.Tier)
	}
	return out, ok
}

// Retry abandons the current result and returns to idle.
func (e *Engine) Retry() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.session.Retry()
}

// Snapshot returns the current session state.
func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.session.Snapshot()
}

// Generation returns the session generation; see Session.Generation.
func (e *Engine) Generation() uint64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.session.Generation()
}
