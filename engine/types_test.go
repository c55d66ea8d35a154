package engine

import "testing"

// TestCardPacking verifies colour/rank round-trip through the packed byte.
func TestCardPacking(t *testing.T) {
	for col := Colour(0); col < NumColours; col++ {
		for r := Rank(1); r <= MaxRank; r++ {
			card := NewCard(col, r)
			if card.Colour() != col || card.Rank() != r {
				t.Errorf("NewCard(%d, %d) unpacked to (%d, %d)", col, r, card.Colour(), card.Rank())
			}
			if !card.Valid() {
				t.Errorf("%v reported invalid", card)
			}
			if cardAt(card.index()) != card {
				t.Errorf("index round trip failed for %v", card)
			}
		}
	}
	if EmptyCard.Valid() {
		t.Error("EmptyCard reported valid")
	}
	if got := NewCard(Blue, 4).String(); got != "[Blue 4]" {
		t.Errorf("String() = %q", got)
	}
}

func TestCopies(t *testing.T) {
	want := map[Rank]int{0: 0, 1: 3, 2: 2, 3: 2, 4: 2, 5: 1, 6: 0}
	total := 0
	for r, n := range want {
		if Copies(r) != n {
			t.Errorf("Copies(%d) = %d, want %d", r, Copies(r), n)
		}
		total += n
	}
	if total*NumColours != DeckSize {
		t.Errorf("deck size %d, want %d", total*NumColours, DeckSize)
	}
}

// TestCardSet exercises the set algebra used by knowledge tracking.
func TestCardSet(t *testing.T) {
	if AllCards.Len() != 25 {
		t.Fatalf("AllCards.Len() = %d", AllCards.Len())
	}
	reds := ColourSet(Red)
	ones := RankSet(1)
	if reds.Len() != 5 || ones.Len() != 5 {
		t.Fatalf("colour/rank sets have %d/%d members", reds.Len(), ones.Len())
	}
	both := reds.Intersect(ones)
	if both.Len() != 1 || !both.Has(NewCard(Red, 1)) {
		t.Errorf("Red ∩ 1 = %v", both)
	}
	if reds.Union(ones).Len() != 9 {
		t.Errorf("Red ∪ 1 has %d members, want 9", reds.Union(ones).Len())
	}
	if !both.SubsetOf(reds) || reds.SubsetOf(both) {
		t.Error("SubsetOf wrong")
	}
	if reds.Minus(ones).Has(NewCard(Red, 1)) {
		t.Error("Minus kept removed card")
	}
	if reds.Overlaps(ColourSet(Blue)) {
		t.Error("Red overlaps Blue")
	}
	if reds.Has(EmptyCard) {
		t.Error("set claims to hold EmptyCard")
	}

	s := SetOf(NewCard(Green, 2), NewCard(Red, 5))
	cards := s.Cards()
	if len(cards) != 2 || cards[0] != NewCard(Red, 5) || cards[1] != NewCard(Green, 2) {
		t.Errorf("Cards() = %v, want colour-major order", cards)
	}
	if s.Remove(NewCard(Red, 5)).Remove(NewCard(Green, 2)) != 0 {
		t.Error("Remove did not empty the set")
	}
	if !CardSet(0).Empty() {
		t.Error("zero set not empty")
	}
}

func TestSlotSet(t *testing.T) {
	var s SlotSet
	s = s.Add(3).Add(0).Add(3)
	if s.Len() != 2 || !s.Has(0) || !s.Has(3) || s.Has(1) || s.Has(-1) {
		t.Errorf("unexpected membership for %08b", s)
	}
	got := s.Slots()
	if len(got) != 2 || got[0] != 0 || got[1] != 3 {
		t.Errorf("Slots() = %v, want [0 3]", got)
	}
}

func TestClueMatchesAndCards(t *testing.T) {
	cl := ColourClue(2, Green)
	if !cl.Matches(NewCard(Green, 4)) || cl.Matches(NewCard(Blue, 4)) {
		t.Error("colour clue matched wrongly")
	}
	if cl.Cards() != ColourSet(Green) {
		t.Error("colour clue cards")
	}
	rc := RankClue(1, 5)
	if !rc.Matches(NewCard(Red, 5)) || rc.Matches(NewCard(Red, 4)) {
		t.Error("rank clue matched wrongly")
	}
	if rc.Retarget(3).Target != 3 || rc.Target != 1 {
		t.Error("Retarget should return a modified copy")
	}
	if rc.String() != "clue(+1 5)" || cl.String() != "clue(+2 Green)" {
		t.Errorf("String() = %q / %q", rc.String(), cl.String())
	}
}
