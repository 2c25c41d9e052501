package domain

import "testing"

func mkKey(id ID, ts, remaining, price int64) Key {
	return Key{Price: price, Ts: ts, Remaining: remaining, ID: id}
}

func TestLessPriceOrderingBuyDescending(t *testing.T) {
	better := mkKey(1, 1, 10, 10100)
	worse := mkKey(2, 1, 10, 10000)

	if !Less(SideBuy, better, worse) {
		t.Error("expected higher-priced buy to have priority")
	}
	if Less(SideBuy, worse, better) {
		t.Error("lower-priced buy must not outrank a higher-priced one")
	}
}

func TestLessPriceOrderingSellAscending(t *testing.T) {
	better := mkKey(1, 1, 10, 10000)
	worse := mkKey(2, 1, 10, 10100)

	if !Less(SideSell, better, worse) {
		t.Error("expected lower-priced sell to have priority")
	}
}

func TestLessTimestampTiebreak(t *testing.T) {
	earlier := mkKey(1, 10, 10, 10000)
	later := mkKey(2, 20, 10, 10000)

	if !Less(SideBuy, earlier, later) {
		t.Error("expected earlier timestamp to have priority at equal price")
	}
}

func TestLessSizeTertiaryTiebreak(t *testing.T) {
	smaller := mkKey(1, 5, 10, 10000)
	larger := mkKey(2, 5, 50, 10000)

	if !Less(SideBuy, smaller, larger) {
		t.Error("expected smaller remaining to have priority when price and ts tie")
	}
}

func TestCompareMatchesLess(t *testing.T) {
	a := mkKey(1, 5, 10, 10000)
	b := mkKey(2, 5, 10, 10000) // ties on everything but id

	if got := Compare(SideBuy, a, b); got != -1 {
		t.Errorf("expected a < b (id tiebreak), got %d", got)
	}
	if got := Compare(SideBuy, a, a); got != 0 {
		t.Errorf("expected equal key to compare 0, got %d", got)
	}
}
