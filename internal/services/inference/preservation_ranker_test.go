package inference

import (
	"context"
	"testing"

	"AgriChain/internal/domain/models"
)

func TestRankReturnsThreeContiguousRanks(t *testing.T) {
	p := NewPreservationRanker(testLogger(t))

	actions, err := p.Rank(context.Background(), "tomato", models.StorageNone, 50)
	if err != nil {
		t.Fatalf("rank: %v", err)
	}
	if len(actions) != 3 {
		t.Fatalf("expected 3 actions, got %d", len(actions))
	}
	for i, a := range actions {
		if a.Rank != i+1 {
			t.Fatalf("rank at position %d is %d", i, a.Rank)
		}
	}
}

func TestRankFreeActionsFirst(t *testing.T) {
	p := NewPreservationRanker(testLogger(t))

	actions, err := p.Rank(context.Background(), "tomato", models.StorageNone, 50)
	if err != nil {
		t.Fatalf("rank: %v", err)
	}
	if actions[0].CostValue != 0 {
		t.Fatalf("top action should be free, got cost %v (%s)", actions[0].CostValue, actions[0].Title)
	}

	// Effectiveness per rupee must be non-increasing down the list.
	value := func(a models.PreservationAction) float64 {
		return float64(a.Effectiveness) * 10 / (a.CostValue + 1)
	}
	for i := 1; i < len(actions); i++ {
		if value(actions[i]) > value(actions[i-1]) {
			t.Fatalf("actions not sorted by cost-effectiveness at position %d", i)
		}
	}
}

func TestRankResidualRiskMonotonic(t *testing.T) {
	p := NewPreservationRanker(testLogger(t))

	actions, err := p.Rank(context.Background(), "tomato", models.StorageNone, 50)
	if err != nil {
		t.Fatalf("rank: %v", err)
	}
	prev := 50
	for _, a := range actions {
		if a.SpoilageAfter > prev {
			t.Fatalf("residual risk increased: %d after %d", a.SpoilageAfter, prev)
		}
		if a.SpoilageAfter < 5 {
			t.Fatalf("residual risk below floor: %d", a.SpoilageAfter)
		}
		prev = a.SpoilageAfter
	}
}

func TestRankResidualRiskFloor(t *testing.T) {
	p := NewPreservationRanker(testLogger(t))

	actions, err := p.Rank(context.Background(), "tomato", models.StorageCold, 8)
	if err != nil {
		t.Fatalf("rank: %v", err)
	}
	for _, a := range actions {
		if a.SpoilageAfter != 5 {
			t.Fatalf("low starting risk should pin residual at 5, got %d", a.SpoilageAfter)
		}
	}
}

func TestRankPoolMatchesPerishability(t *testing.T) {
	p := NewPreservationRanker(testLogger(t))

	grain, err := p.Rank(context.Background(), "wheat", models.StorageWarehouse, 20)
	if err != nil {
		t.Fatalf("rank: %v", err)
	}
	if grain[0].Title != "Dry grain to <14% moisture before storage" {
		t.Fatalf("grain crop got wrong pool, top action %q", grain[0].Title)
	}

	bulb, err := p.Rank(context.Background(), "onion", models.StorageHome, 30)
	if err != nil {
		t.Fatalf("rank: %v", err)
	}
	if bulb[0].Title != "Cure produce before storage (7-10 days in shade)" {
		t.Fatalf("medium-perishability crop got wrong pool, top action %q", bulb[0].Title)
	}
}
