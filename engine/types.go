package engine

import (
	"fmt"
	"math/bits"
	"strings"
)

// Colour is one of the five firework colours.
type Colour uint8

const (
	Red Colour = iota
	Yellow
	Green
	Blue
	White
)

var colourNames = [NumColours]string{"Red", "Yellow", "Green", "Blue", "White"}

func (c Colour) String() string {
	if int(c) < NumColours {
		return colourNames[c]
	}
	return fmt.Sprintf("Colour(%d)", uint8(c))
}

// Rank is a card number, 1 through MaxRank.
type Rank uint8

// rankCopies is the number of physical copies of each rank per colour.
var rankCopies = [MaxRank + 1]uint8{0, 3, 2, 2, 2, 1}

// Copies returns how many copies of a card with rank r exist in one colour.
func Copies(r Rank) int {
	if r == 0 || r > MaxRank {
		return 0
	}
	return int(rankCopies[r])
}

// Card is a packed uint8: upper 4 bits = colour, lower 4 bits = rank.
type Card uint8

// EmptyCard represents the absence of a card.
const EmptyCard Card = 0xFF

// NewCard constructs a Card from colour and rank.
func NewCard(c Colour, r Rank) Card {
	return Card((uint8(c) << 4) | (uint8(r) & 0x0F))
}

// Colour returns the colour bits (upper 4).
func (c Card) Colour() Colour { return Colour(uint8(c) >> 4) }

// Rank returns the rank bits (lower 4).
func (c Card) Rank() Rank { return Rank(uint8(c) & 0x0F) }

// Valid reports whether the card names one of the 25 identities.
func (c Card) Valid() bool {
	return c != EmptyCard && int(c.Colour()) < NumColours && c.Rank() >= 1 && c.Rank() <= MaxRank
}

// index maps a card to its position in the 5×5 identity grid.
func (c Card) index() uint {
	return uint(c.Colour())*MaxRank + uint(c.Rank()-1)
}

func cardAt(idx uint) Card {
	return NewCard(Colour(idx/MaxRank), Rank(idx%MaxRank+1))
}

func (c Card) String() string {
	if !c.Valid() {
		return "[--]"
	}
	return fmt.Sprintf("[%s %d]", c.Colour(), c.Rank())
}

// ---------------------------------------------------------------------------
// CardSet: a set of card identities packed into 25 bits.
// ---------------------------------------------------------------------------

// CardSet is a set of card identities (not physical cards).
// Bit colour*5 + (rank-1) is set when that identity is a member.
type CardSet uint32

// AllCards contains every one of the 25 identities.
const AllCards CardSet = 1<<(NumColours*MaxRank) - 1

// SetOf builds a CardSet from the given cards.
func SetOf(cards ...Card) CardSet {
	var s CardSet
	for _, c := range cards {
		s = s.Add(c)
	}
	return s
}

// ColourSet returns every identity of colour c.
func ColourSet(c Colour) CardSet {
	return CardSet(0x1F) << (uint(c) * MaxRank)
}

// RankSet returns every identity of rank r.
func RankSet(r Rank) CardSet {
	var s CardSet
	for c := Colour(0); c < NumColours; c++ {
		s = s.Add(NewCard(c, r))
	}
	return s
}

func (s CardSet) Add(c Card) CardSet    { return s | 1<<c.index() }
func (s CardSet) Remove(c Card) CardSet { return s &^ (1 << c.index()) }
func (s CardSet) Has(c Card) bool       { return c.Valid() && s&(1<<c.index()) != 0 }
func (s CardSet) Len() int              { return bits.OnesCount32(uint32(s)) }
func (s CardSet) Empty() bool           { return s == 0 }

func (s CardSet) Union(o CardSet) CardSet     { return s | o }
func (s CardSet) Intersect(o CardSet) CardSet { return s & o }
func (s CardSet) Minus(o CardSet) CardSet     { return s &^ o }

// SubsetOf reports whether every member of s is also in o.
func (s CardSet) SubsetOf(o CardSet) bool { return s&^o == 0 }

// Overlaps reports whether s and o share at least one identity.
func (s CardSet) Overlaps(o CardSet) bool { return s&o != 0 }

// Cards lists the members in colour-major order.
func (s CardSet) Cards() []Card {
	out := make([]Card, 0, s.Len())
	for w := uint32(s); w != 0; w &= w - 1 {
		out = append(out, cardAt(uint(bits.TrailingZeros32(w))))
	}
	return out
}

func (s CardSet) String() string {
	cards := s.Cards()
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.String()
	}
	return "{" + strings.Join(parts, " ") + "}"
}

// ---------------------------------------------------------------------------
// SlotSet: a set of hand positions packed into one byte.
// ---------------------------------------------------------------------------

// SlotSet holds hand slot indices (0..MaxHandSize-1).
type SlotSet uint8

func (s SlotSet) Add(slot int) SlotSet { return s | 1<<uint(slot) }
func (s SlotSet) Has(slot int) bool    { return slot >= 0 && slot < 8 && s&(1<<uint(slot)) != 0 }
func (s SlotSet) Len() int             { return bits.OnesCount8(uint8(s)) }
func (s SlotSet) Empty() bool          { return s == 0 }

// Slots lists the members in ascending (oldest first) order.
func (s SlotSet) Slots() []int {
	out := make([]int, 0, s.Len())
	for w := uint8(s); w != 0; w &= w - 1 {
		out = append(out, bits.TrailingZeros8(w))
	}
	return out
}

// ---------------------------------------------------------------------------
// Actions
// ---------------------------------------------------------------------------

// ActionKind distinguishes the three action shapes.
type ActionKind uint8

const (
	ActionPlay ActionKind = iota
	ActionDiscard
	ActionClue
)

func (k ActionKind) String() string {
	switch k {
	case ActionPlay:
		return "play"
	case ActionDiscard:
		return "discard"
	case ActionClue:
		return "clue"
	}
	return fmt.Sprintf("ActionKind(%d)", uint8(k))
}

// Action is one of Play, Discard or Clue.
type Action interface {
	Kind() ActionKind
	String() string
	isAction()
}

// Play plays the card in the acting seat's hand at Slot.
type Play struct {
	Slot int
}

// Discard discards the card in the acting seat's hand at Slot.
type Discard struct {
	Slot int
}

// Dimension selects which attribute a clue reveals.
type Dimension uint8

const (
	ByColour Dimension = iota
	ByRank
)

func (d Dimension) String() string {
	if d == ByColour {
		return "colour"
	}
	return "rank"
}

// Clue reveals to Target which of its cards share Value along Dimension.
// Target is relative to whoever holds the action: 1 is the next seat, and 0
// (the holder itself) is never a legal target.
type Clue struct {
	Target    int
	Dimension Dimension
	Value     uint8
}

// ColourClue builds a colour clue for the seat at relative offset target.
func ColourClue(target int, c Colour) Clue {
	return Clue{Target: target, Dimension: ByColour, Value: uint8(c)}
}

// RankClue builds a rank clue for the seat at relative offset target.
func RankClue(target int, r Rank) Clue {
	return Clue{Target: target, Dimension: ByRank, Value: uint8(r)}
}

// Matches reports whether card is touched by the clue.
func (c Clue) Matches(card Card) bool {
	if c.Dimension == ByColour {
		return uint8(card.Colour()) == c.Value
	}
	return uint8(card.Rank()) == c.Value
}

// Cards returns every identity the clue touches.
func (c Clue) Cards() CardSet {
	if c.Dimension == ByColour {
		return ColourSet(Colour(c.Value))
	}
	return RankSet(Rank(c.Value))
}

// Retarget returns the clue with its target re-expressed for another seat.
func (c Clue) Retarget(target int) Clue {
	c.Target = target
	return c
}

func (Play) Kind() ActionKind    { return ActionPlay }
func (Discard) Kind() ActionKind { return ActionDiscard }
func (Clue) Kind() ActionKind    { return ActionClue }

func (a Play) String() string    { return fmt.Sprintf("play(%d)", a.Slot) }
func (a Discard) String() string { return fmt.Sprintf("discard(%d)", a.Slot) }
func (c Clue) String() string {
	if c.Dimension == ByColour {
		return fmt.Sprintf("clue(+%d %s)", c.Target, Colour(c.Value))
	}
	return fmt.Sprintf("clue(+%d %d)", c.Target, c.Value)
}

func (Play) isAction()    {}
func (Discard) isAction() {}
func (Clue) isAction()    {}

// ---------------------------------------------------------------------------
// Outcomes
// ---------------------------------------------------------------------------

// Outcome is the public result of an applied action. Its concrete type always
// matches the action: PlayOutcome, DiscardOutcome or ClueOutcome.
type Outcome interface {
	isOutcome()
}

// PlayOutcome reveals the played card and whether it extended its firework.
type PlayOutcome struct {
	Card     Card
	Accepted bool
	Drew     bool // a replacement card was appended to the hand
}

// DiscardOutcome reveals the discarded card.
type DiscardOutcome struct {
	Card Card
	Drew bool
}

// ClueOutcome lists which slots of the target hand the clue touched.
// An empty set is legal.
type ClueOutcome struct {
	Matched SlotSet
}

func (PlayOutcome) isOutcome()    {}
func (DiscardOutcome) isOutcome() {}
func (ClueOutcome) isOutcome()    {}
