package book

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"matchbook/domain"
)

func TestSpreadReflectsBothSidesAtomically(t *testing.T) {
	ob, clock := newTestBook()

	ob.Submit(domain.NewLimit(clock, 1, domain.SideBuy, 10, 9000))
	ob.Submit(domain.NewLimit(clock, 2, domain.SideSell, 10, 9100))

	bid, ask, bidOk, askOk := ob.Spread()
	require.True(t, bidOk)
	require.True(t, askOk)
	assert.Equal(t, int64(9000), bid)
	assert.Equal(t, int64(9100), ask)
}

func TestCancelRemovesFromIndexAndTree(t *testing.T) {
	ob, clock := newTestBook()

	ob.Submit(domain.NewLimit(clock, 1, domain.SideSell, 10, 9100))
	require.Equal(t, 1, ob.Size())

	ob.Submit(domain.NewCancel(clock, 1))
	assert.Equal(t, 0, ob.Size())

	_, ok := ob.BestAsk()
	assert.False(t, ok, "expected ask side empty after cancel")
}

func TestReinsertAfterPartialFillKeepsOrderAtTreeMinimum(t *testing.T) {
	ob, clock := newTestBook()

	ob.Submit(domain.NewLimit(clock, 1, domain.SideSell, 100, 9100))
	ob.Submit(domain.NewMarket(clock, 2, domain.SideBuy, 40))

	ask, ok := ob.BestAsk()
	require.True(t, ok)
	assert.Equal(t, int64(9100), ask)
	assert.Equal(t, 1, ob.Size())

	trades := ob.Trades()
	require.Len(t, trades, 1)
	assert.Equal(t, int64(40), trades[0].Size)
}

func TestSnapshotListsRestingOrdersBestFirst(t *testing.T) {
	ob, clock := newTestBook()

	ob.Submit(domain.NewLimit(clock, 1, domain.SideBuy, 10, 9000))
	ob.Submit(domain.NewLimit(clock, 2, domain.SideBuy, 10, 9100))

	snap := ob.Snapshot()
	assert.Contains(t, snap, "bids:")
	assert.Contains(t, snap, "asks:")
	assert.Contains(t, snap, "id=2")
	assert.Less(t, strings.Index(snap, "id=2"), strings.Index(snap, "id=1"), "best bid (id=2 at 9100) should be listed first")
}
