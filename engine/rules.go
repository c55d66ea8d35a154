package engine

import "fmt"

// Rules holds the table configuration. The deck composition is fixed.
type Rules struct {
	NumSeats uint8 // 2–5
	HandSize uint8 // cards dealt to each seat
	MaxClues uint8 // clue tokens at start and cap
	MaxLives uint8 // life tokens at start
}

// DefaultRules returns the standard four-seat table.
func DefaultRules() Rules {
	return Rules{
		NumSeats: 4,
		HandSize: 4,
		MaxClues: 8,
		MaxLives: 3,
	}
}

// Validate reports whether the rules describe a playable table.
func (r Rules) Validate() error {
	if r.NumSeats < 2 || r.NumSeats > MaxSeats {
		return fmt.Errorf("seats must be between 2 and %d, got %d", MaxSeats, r.NumSeats)
	}
	if r.HandSize < 1 || r.HandSize > MaxHandSize {
		return fmt.Errorf("hand size must be between 1 and %d, got %d", MaxHandSize, r.HandSize)
	}
	if int(r.NumSeats)*int(r.HandSize) >= DeckSize {
		return fmt.Errorf("dealing %d×%d cards exhausts the %d-card deck", r.NumSeats, r.HandSize, DeckSize)
	}
	if r.MaxClues == 0 {
		return fmt.Errorf("max clues must be positive")
	}
	if r.MaxLives == 0 {
		return fmt.Errorf("max lives must be positive")
	}
	return nil
}
