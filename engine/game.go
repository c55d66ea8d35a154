// Package engine implements the rules of a cooperative firework-building
// card game with hidden hands.
//
// GameState is a flat value type: fixed-size arrays, no pointers, an inline
// xorshift generator seeded at construction. The same seed and the same
// sequence of actions always reproduce the same game.
package engine

const (
	MaxSeats    = 5
	MaxHandSize = 5
	DeckSize    = 50
	NumColours  = 5
	MaxRank     = 5
	MaxScore    = NumColours * MaxRank
)

// Hand holds one seat's cards. Slot 0 is the oldest card; drawn cards are
// appended at the end and removing a slot shifts later slots down.
type Hand struct {
	Cards [MaxHandSize]Card
	Len   uint8
}

// Slice returns a copy of the live cards.
func (h *Hand) Slice() []Card {
	out := make([]Card, h.Len)
	copy(out, h.Cards[:h.Len])
	return out
}

func (h *Hand) removeAt(slot uint8) Card {
	c := h.Cards[slot]
	copy(h.Cards[slot:h.Len], h.Cards[slot+1:h.Len])
	h.Len--
	h.Cards[h.Len] = EmptyCard
	return c
}

func (h *Hand) push(c Card) {
	h.Cards[h.Len] = c
	h.Len++
}

// LastActionInfo records the most recently applied action and its outcome,
// with the acting seat in absolute numbering.
type LastActionInfo struct {
	Seat    uint8
	Action  Action
	Outcome Outcome
}

// GameState holds the complete true state of one game.
type GameState struct {
	Hands      [MaxSeats]Hand
	Deck       [DeckSize]Card // drawn from the end
	DeckLen    uint8
	Discards   [DeckSize]Card
	DiscardLen uint8
	Fireworks  [NumColours]uint8
	Clues      uint8
	Lives      uint8
	Score      uint8

	CurrentSeat uint8
	TurnNumber  uint16
	FinalTurns  uint8 // turns left once the deck is empty
	Status      Status
	LastAction  LastActionInfo
	RNG         uint64
	Rules       Rules
}

// ---------------------------------------------------------------------------
// xorshift64 RNG, inline with no interface
// ---------------------------------------------------------------------------

func (g *GameState) nextRand() uint64 {
	x := g.RNG
	x ^= x << 13
	x ^= x >> 7
	x ^= x << 17
	g.RNG = x
	return x
}

// randN returns a random number in [0, n).
func (g *GameState) randN(n uint64) uint64 {
	return g.nextRand() % n
}

// ---------------------------------------------------------------------------
// NewGame and Deal
// ---------------------------------------------------------------------------

// NewGame initializes a GameState with the given seed and rules.
// The deck is built in order but not yet shuffled or dealt.
func NewGame(seed uint64, rules Rules) GameState {
	var g GameState
	g.RNG = seed
	if g.RNG == 0 {
		g.RNG = 1 // xorshift can't start at 0
	}
	g.Rules = rules
	g.Clues = rules.MaxClues
	g.Lives = rules.MaxLives
	g.FinalTurns = rules.NumSeats

	idx := 0
	for c := Colour(0); c < NumColours; c++ {
		for r := Rank(1); r <= MaxRank; r++ {
			for k := 0; k < Copies(r); k++ {
				g.Deck[idx] = NewCard(c, r)
				idx++
			}
		}
	}
	g.DeckLen = uint8(idx)
	for p := range g.Hands {
		for i := range g.Hands[p].Cards {
			g.Hands[p].Cards[i] = EmptyCard
		}
	}
	return g
}

// Deal shuffles the deck and gives each seat a full hand, seat by seat.
func (g *GameState) Deal() {
	// Fisher-Yates shuffle.
	for i := int(g.DeckLen) - 1; i > 0; i-- {
		j := int(g.randN(uint64(i + 1)))
		g.Deck[i], g.Deck[j] = g.Deck[j], g.Deck[i]
	}

	for p := uint8(0); p < g.Rules.NumSeats; p++ {
		for c := uint8(0); c < g.Rules.HandSize; c++ {
			g.Hands[p].push(g.draw())
		}
	}
	g.CurrentSeat = 0
	g.Status = StatusRunning
}

// draw pops the top card of the deck. The caller checks DeckLen.
func (g *GameState) draw() Card {
	g.DeckLen--
	c := g.Deck[g.DeckLen]
	g.Deck[g.DeckLen] = EmptyCard
	return c
}

// ---------------------------------------------------------------------------
// Query methods
// ---------------------------------------------------------------------------

// NumSeats returns the number of seats at the table.
func (g *GameState) NumSeats() uint8 { return g.Rules.NumSeats }

// HandLen returns the number of cards in the given seat's hand.
func (g *GameState) HandLen(seat uint8) uint8 { return g.Hands[seat].Len }

// NextSeat returns the seat after current in turn order.
func (g *GameState) NextSeat(current uint8) uint8 {
	return (current + 1) % g.Rules.NumSeats
}

// RelativeSeat converts an absolute seat into viewer's numbering, where the
// viewer is 0 and the next seat to act after it is 1.
func (g *GameState) RelativeSeat(actual, viewer uint8) int {
	n := int(g.Rules.NumSeats)
	return (n + int(actual) - int(viewer)) % n
}

// AbsoluteSeat converts viewer-relative numbering back to an absolute seat.
func (g *GameState) AbsoluteSeat(relative int, viewer uint8) uint8 {
	n := int(g.Rules.NumSeats)
	return uint8(((relative%n)+n+int(viewer)) % n)
}

// DiscardPile returns a copy of the discard pile, oldest first.
func (g *GameState) DiscardPile() []Card {
	out := make([]Card, g.DiscardLen)
	copy(out, g.Discards[:g.DiscardLen])
	return out
}

// StateHash returns an FNV-1a hash of the table. Two games with the same
// seed, rules and action sequence hash identically.
func (g *GameState) StateHash() uint64 {
	h := uint64(14695981039346656037) // FNV-1a offset basis
	const prime = uint64(1099511628211)

	for p := uint8(0); p < g.Rules.NumSeats; p++ {
		for i := uint8(0); i < g.Hands[p].Len; i++ {
			h ^= uint64(g.Hands[p].Cards[i])
			h *= prime
		}
		h ^= uint64(g.Hands[p].Len) << 8
		h *= prime
	}
	for i := uint8(0); i < g.DeckLen; i++ {
		h ^= uint64(g.Deck[i])
		h *= prime
	}
	for i := uint8(0); i < g.DiscardLen; i++ {
		h ^= uint64(g.Discards[i]) << 8
		h *= prime
	}
	for c := 0; c < NumColours; c++ {
		h ^= uint64(g.Fireworks[c]) << (16 + 3*c)
		h *= prime
	}
	h ^= uint64(g.Clues)<<40 | uint64(g.Lives)<<48 | uint64(g.Score)<<56
	h *= prime
	h ^= uint64(g.TurnNumber)<<32 | uint64(g.CurrentSeat)
	h *= prime
	return h
}
