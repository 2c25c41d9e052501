package domain

import "testing"

func TestNewLimitPanicsOnNonPositiveSize(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on zero size")
		}
	}()
	c := NewClock()
	NewLimit(c, 1, SideBuy, 0, 100)
}

func TestNewLimitPanicsOnNonPositivePrice(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on zero price")
		}
	}()
	c := NewClock()
	NewLimit(c, 1, SideBuy, 10, 0)
}

func TestSideAccessorPanicsOnCancel(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic reading Side() on a Cancel request")
		}
	}()
	c := NewClock()
	req := NewCancel(c, 1)
	_ = req.Side()
}

func TestPriceAccessorPanicsOnMarket(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic reading Price() on a Market request")
		}
	}()
	c := NewClock()
	req := NewMarket(c, 1, SideBuy, 10)
	_ = req.Price()
}

func TestFillTransitionsStatus(t *testing.T) {
	c := NewClock()
	req := NewLimit(c, 1, SideBuy, 100, 9900)
	req.Rest()
	if req.Status() != StatusResting {
		t.Fatalf("expected resting, got %v", req.Status())
	}

	req.Fill(40)
	if req.Status() != StatusPartiallyFilled {
		t.Fatalf("expected partially_filled, got %v", req.Status())
	}
	if req.Remaining() != 60 {
		t.Fatalf("expected remaining 60, got %d", req.Remaining())
	}

	req.Fill(60)
	if req.Status() != StatusFilled {
		t.Fatalf("expected filled, got %v", req.Status())
	}
	if req.Remaining() != 0 {
		t.Fatalf("expected remaining 0, got %d", req.Remaining())
	}
}

func TestNewMarketSetsKindAndSizing(t *testing.T) {
	c := NewClock()
	req := NewMarket(c, 1, SideSell, 10)
	if req.Kind != KindMarket {
		t.Fatalf("expected KindMarket, got %v", req.Kind)
	}
	if req.OriginalSize() != 10 || req.Remaining() != 10 {
		t.Fatalf("unexpected sizing: original=%d remaining=%d", req.OriginalSize(), req.Remaining())
	}
}
