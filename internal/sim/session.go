package sim

import (
	"errors"
	"math/rand"

	"github.com/mgirault/plotlab/internal/config"
	"github.com/mgirault/plotlab/internal/expr"
)

// Phase is the session state within one level.
type Phase int

const (
	// PhaseAwaitingInput is the initial phase: the player is still
	// editing an expression that has not matched.
	PhaseAwaitingInput Phase = iota
	// PhaseMatched means the current input matched the target; points
	// have been awarded and Advance moves to the next level.
	PhaseMatched
	// PhaseSkipped means the player gave up on this level; the penalty
	// has been deducted and Advance moves on.
	PhaseSkipped
)

func (p Phase) String() string {
	switch p {
	case PhaseAwaitingInput:
		return "awaiting_input"
	case PhaseMatched:
		return "matched"
	case PhaseSkipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// Session holds one play session: level and score progression, the
// hidden target, and the player's in-progress expression. All mutation
// happens through its methods on the single control goroutine; there
// is no internal locking.
type Session struct {
	cfg    config.Config
	rng    *rand.Rand
	domain Domain

	level     int
	score     int
	hintsLeft int
	phase     Phase

	target    string // Hidden target formula for the current level
	targetSet SampleSet

	input     string
	inputErr  error // Compile error for the current input; nil when valid or empty
	playerSet SampleSet
	result    Result
}

// NewSession starts a session at level 1 with a freshly drawn target.
// The seed fixes the template draw sequence for reproducible runs.
func NewSession(cfg config.Config, seed int64) *Session {
	s := &Session{
		cfg:       cfg,
		rng:       rand.New(rand.NewSource(seed)),
		domain:    DomainFromConfig(cfg.Domain),
		level:     1,
		hintsLeft: cfg.Gameplay.InitialHints,
	}
	s.newLevel()
	return s
}

// newLevel draws a target for the current level and resets per-level
// state.
func (s *Session) newLevel() {
	tier := s.Tier()
	s.target = PickTemplate(tier, s.rng)

	// Templates are compile-checked at config load; a failure here
	// means the config was never validated.
	e, err := expr.Compile(s.target)
	if err != nil {
		s.targetSet = make(SampleSet, s.domain.Len())
	} else {
		s.targetSet = Sample(e, s.domain)
	}

	s.input = ""
	s.inputErr = nil
	s.playerSet = nil
	s.result = Result{}
	s.phase = PhaseAwaitingInput
}

// Tier returns the difficulty tier for the current level.
func (s *Session) Tier() config.TierConfig {
	return TierForLevel(s.cfg.Tiers, s.level)
}

// SetInput replaces the player's expression and rescores. It is a
// no-op outside PhaseAwaitingInput: once a level is matched or skipped
// only Advance moves the session forward.
//
// An expression that fails to compile flags the input as invalid and
// clears the player curve; it never costs points and never aborts the
// session.
func (s *Session) SetInput(text string) {
	if s.phase != PhaseAwaitingInput {
		return
	}

	s.input = text
	s.result = Result{}

	e, err := expr.Compile(text)
	if err != nil {
		if errors.Is(err, expr.ErrEmpty) {
			// Nothing typed: distinct from a broken expression.
			s.inputErr = nil
		} else {
			s.inputErr = err
		}
		s.playerSet = nil
		return
	}

	s.inputErr = nil
	s.playerSet = Sample(e, s.domain)

	tier := s.Tier()
	s.result = Score(s.targetSet, s.playerSet, tier.Tolerance)
	if s.result.Matched {
		s.score += Award(tier.Points, s.result.Error, tier.Tolerance, s.cfg.Gameplay.BonusFactor)
		s.phase = PhaseMatched
	}
}

// Skip abandons the current level, deducting the skip penalty. The
// total score is floored at zero. No-op unless awaiting input.
func (s *Session) Skip() {
	if s.phase != PhaseAwaitingInput {
		return
	}
	s.score -= s.cfg.Gameplay.SkipPenalty
	if s.score < 0 {
		s.score = 0
	}
	s.phase = PhaseSkipped
}

// Advance moves to the next level after a match or a skip. It reports
// whether the session actually advanced.
func (s *Session) Advance() bool {
	if s.phase != PhaseMatched && s.phase != PhaseSkipped {
		return false
	}
	s.level++
	s.newLevel()
	return true
}

// Hint reveals one ingredient of the target formula, consuming one of
// the session's hints. ok is false once hints are exhausted; the count
// never goes negative.
func (s *Session) Hint() (hint string, ok bool) {
	if s.hintsLeft <= 0 {
		return "", false
	}
	s.hintsLeft--
	return hintFor(s.target, s.rng), true
}

// PlotRange returns the y-range for plotting: the target curve's range
// padded by the configured margin, falling back to -5..5 when the
// target is undefined everywhere.
func (s *Session) PlotRange() (yMin, yMax float64) {
	mn, mx, ok := s.targetSet.YRange()
	if !ok {
		return -5, 5
	}
	span := mx - mn
	if span == 0 {
		span = 1
	}
	margin := span * s.cfg.Gameplay.YRangeMargin
	return mn - margin, mx + margin
}

// Accessors. The TUI reads these every frame; none of them mutate.

func (s *Session) Level() int             { return s.level }
func (s *Session) Score() int             { return s.score }
func (s *Session) HintsLeft() int         { return s.hintsLeft }
func (s *Session) Phase() Phase           { return s.phase }
func (s *Session) Input() string          { return s.input }
func (s *Session) InputErr() error        { return s.inputErr }
func (s *Session) Target() string         { return s.target }
func (s *Session) TargetCurve() SampleSet { return s.targetSet }
func (s *Session) PlayerCurve() SampleSet { return s.playerSet }
func (s *Session) LastResult() Result     { return s.result }
func (s *Session) Domain() Domain         { return s.domain }

// Valid reports whether the current input compiles. Empty input counts
// as valid-but-absent, not as an error.
func (s *Session) Valid() bool {
	return s.inputErr == nil
}
