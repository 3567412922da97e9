package knowledge

import (
	"reflect"
	"testing"

	"AgriChain/internal/domain/models"
)

func TestProfileForConstants(t *testing.T) {
	cases := []struct {
		crop          string
		perishability models.Perishability
		humidityTol   float64
		windowDays    int
	}{
		{"tomato", models.PerishabilityHigh, 65, 4},
		{"wheat", models.PerishabilityLow, 14, 5},
		{"onion", models.PerishabilityMedium, 60, 5},
		{"potato", models.PerishabilityMedium, 70, 6},
		{"cotton", models.PerishabilityLow, 55, 7},
	}
	for _, c := range cases {
		p := ProfileFor(c.crop)
		if p.Name != c.crop {
			t.Fatalf("ProfileFor(%s).Name = %s", c.crop, p.Name)
		}
		if p.Perishability != c.perishability {
			t.Fatalf("%s perishability = %s, want %s", c.crop, p.Perishability, c.perishability)
		}
		if p.HumidityTolerance != c.humidityTol {
			t.Fatalf("%s humidity tolerance = %v, want %v", c.crop, p.HumidityTolerance, c.humidityTol)
		}
		if p.HarvestWindowDays != c.windowDays {
			t.Fatalf("%s window days = %d, want %d", c.crop, p.HarvestWindowDays, c.windowDays)
		}
	}
}

func TestProfileForUnknownFallsBackToTomato(t *testing.T) {
	p := ProfileFor("dragonfruit")
	if p.Name != DefaultCrop {
		t.Fatalf("unknown crop resolved to %s, want %s", p.Name, DefaultCrop)
	}
	if KnownCrop("dragonfruit") {
		t.Fatal("dragonfruit must not be a known crop")
	}
	if ProfileFor("  WHEAT  ").Name != "wheat" {
		t.Fatal("lookup must trim and lowercase")
	}
}

func TestCommodityKeywords(t *testing.T) {
	if got := CommodityKeywords("chickpea"); !reflect.DeepEqual(got, []string{"bengal gram", "chickpea"}) {
		t.Fatalf("chickpea keywords = %v", got)
	}
	if got := CommodityKeywords("rice"); !reflect.DeepEqual(got, []string{"paddy", "rice"}) {
		t.Fatalf("rice keywords = %v", got)
	}
	if got := CommodityKeywords("Guava"); !reflect.DeepEqual(got, []string{"guava"}) {
		t.Fatalf("unknown crop must match on its own name, got %v", got)
	}
}

func TestSpoilageBaseTables(t *testing.T) {
	if PerishabilityBaseRisk[models.PerishabilityHigh] != 35 ||
		PerishabilityBaseRisk[models.PerishabilityMedium] != 20 ||
		PerishabilityBaseRisk[models.PerishabilityLow] != 10 {
		t.Fatalf("base risk table drifted: %v", PerishabilityBaseRisk)
	}
	if StorageSpoilageFactor[models.StorageCold] != 0.4 ||
		StorageSpoilageFactor[models.StorageNone] != 1.3 {
		t.Fatalf("storage factor table drifted: %v", StorageSpoilageFactor)
	}
}

func TestActionPoolFor(t *testing.T) {
	high := ActionPoolFor(models.PerishabilityHigh)
	if len(high) != 4 || high[0].CostDisplay != "FREE" {
		t.Fatalf("high-perishability pool = %d actions, first cost %q", len(high), high[0].CostDisplay)
	}
	if len(ActionPoolFor(models.PerishabilityLow)) != 3 {
		t.Fatal("low-perishability pool must hold 3 actions")
	}
	if len(ActionPoolFor(models.Perishability("weird"))) != 3 {
		t.Fatal("unknown class must fall back to the medium pool")
	}
}
