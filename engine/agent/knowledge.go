// Package agent implements per-seat belief tracking and the strategies that
// sit at an engine.Table: the convention-driven ConventionPlayer and two
// simple collaborators that ignore card knowledge.
package agent

import (
	"strings"

	engine "github.com/edwin-thomson/Hanabi/engine"
)

// PossibilityMatrix is the set of identities one hidden hand slot could still
// hold. It starts with all 25 and only ever shrinks. An operation that would
// leave it empty panics with *engine.InvariantError.
type PossibilityMatrix struct {
	cells engine.CardSet

	// Memoized facts, valid while !stale.
	stale     bool
	colour    engine.Colour
	hasColour bool
	rank      engine.Rank
	hasRank   bool
}

// NewPossibilityMatrix returns a matrix admitting every identity.
func NewPossibilityMatrix() *PossibilityMatrix {
	return &PossibilityMatrix{cells: engine.AllCards, stale: true}
}

// restrict intersects the matrix with s and reports whether anything changed.
func (m *PossibilityMatrix) restrict(s engine.CardSet) bool {
	next := m.cells.Intersect(s)
	if next == m.cells {
		return false
	}
	if next.Empty() {
		engine.Invariantf("restricting %v to %v leaves no possibilities", m.cells, s)
	}
	m.cells = next
	m.stale = true
	return true
}

// SetColour keeps only identities of colour c.
func (m *PossibilityMatrix) SetColour(c engine.Colour) bool {
	return m.restrict(engine.ColourSet(c))
}

// SetNumber keeps only identities of rank r.
func (m *PossibilityMatrix) SetNumber(r engine.Rank) bool {
	return m.restrict(engine.RankSet(r))
}

// SetCard collapses the matrix to exactly card.
func (m *PossibilityMatrix) SetCard(card engine.Card) bool {
	return m.restrict(engine.SetOf(card))
}

// EliminateColour removes every identity of colour c.
func (m *PossibilityMatrix) EliminateColour(c engine.Colour) bool {
	return m.restrict(engine.AllCards.Minus(engine.ColourSet(c)))
}

// EliminateNumber removes every identity of rank r.
func (m *PossibilityMatrix) EliminateNumber(r engine.Rank) bool {
	return m.restrict(engine.AllCards.Minus(engine.RankSet(r)))
}

// EliminateCard removes a single identity.
func (m *PossibilityMatrix) EliminateCard(card engine.Card) bool {
	return m.restrict(engine.AllCards.Remove(card))
}

// SetIsOneOf keeps only identities in s.
func (m *PossibilityMatrix) SetIsOneOf(s engine.CardSet) bool {
	return m.restrict(s)
}

// SetIsNotOneOf removes every identity in s.
func (m *PossibilityMatrix) SetIsNotOneOf(s engine.CardSet) bool {
	return m.restrict(engine.AllCards.Minus(s))
}

// ApplyClue applies the literal meaning of a clue to this slot: a positive
// constraint when the slot was touched, a negative one otherwise.
func (m *PossibilityMatrix) ApplyClue(c engine.Clue, touched bool) bool {
	switch {
	case c.Dimension == engine.ByColour && touched:
		return m.SetColour(engine.Colour(c.Value))
	case c.Dimension == engine.ByColour:
		return m.EliminateColour(engine.Colour(c.Value))
	case touched:
		return m.SetNumber(engine.Rank(c.Value))
	default:
		return m.EliminateNumber(engine.Rank(c.Value))
	}
}

func (m *PossibilityMatrix) CouldBe(card engine.Card) bool   { return m.cells.Has(card) }
func (m *PossibilityMatrix) CouldBeIn(s engine.CardSet) bool { return m.cells.Overlaps(s) }
func (m *PossibilityMatrix) MustBeIn(s engine.CardSet) bool  { return m.cells.SubsetOf(s) }

// Possibilities returns the identities still admitted.
func (m *PossibilityMatrix) Possibilities() engine.CardSet { return m.cells }

// Count returns how many identities are still admitted.
func (m *PossibilityMatrix) Count() int { return m.cells.Len() }

// KnownColour reports the colour shared by every remaining possibility.
func (m *PossibilityMatrix) KnownColour() (engine.Colour, bool) {
	m.refresh()
	return m.colour, m.hasColour
}

// KnownRank reports the rank shared by every remaining possibility.
func (m *PossibilityMatrix) KnownRank() (engine.Rank, bool) {
	m.refresh()
	return m.rank, m.hasRank
}

// KnownCard reports the identity when only one remains.
func (m *PossibilityMatrix) KnownCard() (engine.Card, bool) {
	m.refresh()
	if m.hasColour && m.hasRank {
		return engine.NewCard(m.colour, m.rank), true
	}
	return engine.EmptyCard, false
}

func (m *PossibilityMatrix) refresh() {
	if !m.stale {
		return
	}
	m.stale = false
	m.hasColour, m.hasRank = false, false

	cards := m.cells.Cards()
	if len(cards) == 0 {
		return
	}
	m.colour, m.rank = cards[0].Colour(), cards[0].Rank()
	m.hasColour, m.hasRank = true, true
	for _, c := range cards[1:] {
		if c.Colour() != m.colour {
			m.hasColour = false
		}
		if c.Rank() != m.rank {
			m.hasRank = false
		}
	}
}

// Clone returns an independent copy.
func (m *PossibilityMatrix) Clone() *PossibilityMatrix {
	cp := *m
	return &cp
}

// String renders the grid one colour per row, X for a possible identity.
func (m *PossibilityMatrix) String() string {
	var b strings.Builder
	b.WriteString("   12345\n")
	for c := engine.Colour(0); c < engine.NumColours; c++ {
		b.WriteString(c.String()[:1])
		b.WriteString("  ")
		for r := engine.Rank(1); r <= engine.MaxRank; r++ {
			if m.CouldBe(engine.NewCard(c, r)) {
				b.WriteByte('X')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
