package agent

import engine "github.com/edwin-thomson/Hanabi/engine"

// slot is one tracked card in a hand. The id stays with the card while later
// cards shift down around it.
type slot struct {
	id   uint32
	know *PossibilityMatrix
}

// pendingPlay is a convention instruction to play a specific card.
type pendingPlay struct {
	seat int
	id   uint32
}

// tracker is one seat's model of every hand at the table, indexed by seat in
// the owner's relative numbering (0 is the owner).
type tracker struct {
	hands   [][]slot
	pending []pendingPlay
	nextID  uint32
}

func (t *tracker) reset(v engine.View) {
	t.hands = make([][]slot, v.NumSeats())
	t.pending = t.pending[:0]
	for seat := range t.hands {
		for i := 0; i < v.HandLen(seat); i++ {
			t.addSlot(seat)
		}
	}
}

// ---------------------------------------------------------------------------
// Hand manipulation helpers
// ---------------------------------------------------------------------------

// addSlot appends an unknown card to the end of a hand.
func (t *tracker) addSlot(seat int) {
	t.nextID++
	t.hands[seat] = append(t.hands[seat], slot{id: t.nextID, know: NewPossibilityMatrix()})
}

// removeSlot drops the card at index and any instruction that referred to it.
func (t *tracker) removeSlot(seat, index int) {
	gone := t.hands[seat][index].id
	t.hands[seat] = append(t.hands[seat][:index], t.hands[seat][index+1:]...)

	kept := t.pending[:0]
	for _, pp := range t.pending {
		if pp.seat != seat || pp.id != gone {
			kept = append(kept, pp)
		}
	}
	t.pending = kept
}

func (t *tracker) group(seat int) DeductionGroup {
	g := make(DeductionGroup, len(t.hands[seat]))
	for i, s := range t.hands[seat] {
		g[i] = s.know
	}
	return g
}

func (t *tracker) knowledge(seat, index int) *PossibilityMatrix {
	return t.hands[seat][index].know
}

// ---------------------------------------------------------------------------
// Pending plays
// ---------------------------------------------------------------------------

func (t *tracker) isPending(seat, index int) bool {
	id := t.hands[seat][index].id
	for _, pp := range t.pending {
		if pp.seat == seat && pp.id == id {
			return true
		}
	}
	return false
}

func (t *tracker) addPending(seat, index int) {
	t.pending = append(t.pending, pendingPlay{seat: seat, id: t.hands[seat][index].id})
}

// indexOf returns the current position of a card, or -1.
func (t *tracker) indexOf(seat int, id uint32) int {
	for i, s := range t.hands[seat] {
		if s.id == id {
			return i
		}
	}
	return -1
}

// firstPending returns the current index of the oldest instruction for seat.
func (t *tracker) firstPending(seat int) (int, bool) {
	for _, pp := range t.pending {
		if pp.seat == seat {
			if i := t.indexOf(seat, pp.id); i >= 0 {
				return i, true
			}
		}
	}
	return 0, false
}

// PendingSlot is a pending play at its current position.
type PendingSlot struct {
	Seat int // relative to the tracking seat
	Slot int
}

// pendingSlots lists every instruction in queue order.
func (t *tracker) pendingSlots() []PendingSlot {
	out := make([]PendingSlot, 0, len(t.pending))
	for _, pp := range t.pending {
		if i := t.indexOf(pp.seat, pp.id); i >= 0 {
			out = append(out, PendingSlot{Seat: pp.seat, Slot: i})
		}
	}
	return out
}
