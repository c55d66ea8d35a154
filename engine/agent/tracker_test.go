package agent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTracker(sizes ...int) *tracker {
	t := &tracker{hands: make([][]slot, len(sizes))}
	for seat, n := range sizes {
		for i := 0; i < n; i++ {
			t.addSlot(seat)
		}
	}
	return t
}

// TestPendingFollowsCard checks instructions survive earlier removals and
// vanish with their own card.
func TestPendingFollowsCard(t *testing.T) {
	tr := newTracker(4, 4, 4)
	tr.addPending(2, 3)
	tr.addPending(2, 1)
	tr.addPending(1, 0)
	require.Equal(t, []PendingSlot{{2, 3}, {2, 1}, {1, 0}}, tr.pendingSlots())

	tr.removeSlot(2, 0)
	tr.addSlot(2)
	assert.Equal(t, []PendingSlot{{2, 2}, {2, 0}, {1, 0}}, tr.pendingSlots())
	assert.True(t, tr.isPending(2, 2))
	assert.False(t, tr.isPending(2, 3), "the new card is not pending")

	tr.removeSlot(2, 0)
	assert.Equal(t, []PendingSlot{{2, 1}, {1, 0}}, tr.pendingSlots())

	i, ok := tr.firstPending(2)
	assert.True(t, ok)
	assert.Equal(t, 1, i)
	_, ok = tr.firstPending(0)
	assert.False(t, ok)
}

func TestSlotIDsAreUnique(t *testing.T) {
	tr := newTracker(3, 3)
	seen := map[uint32]bool{}
	for _, hand := range tr.hands {
		for _, s := range hand {
			assert.False(t, seen[s.id])
			seen[s.id] = true
		}
	}
	tr.removeSlot(0, 1)
	tr.addSlot(0)
	assert.False(t, seen[tr.hands[0][2].id], "a new card reused an id")
	assert.Len(t, tr.group(0), 3)
}
