package pricing

import (
	"context"
	"testing"

	"github.com/google/uuid"
)

func calcItem(t *testing.T, entry PriceListEntry, item Item, global *GlobalModifiers) CalculatedItemPrice {
	t.Helper()
	got, err := NewCalculator(nil).CalculateItem(context.Background(), item, entry, global)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return got
}

func TestComputeTotalsEmptyOrder(t *testing.T) {
	totals := ComputeTotals(nil, &GlobalModifiers{UrgencyType: UrgencyExpress24h, DiscountType: DiscountEvercard})
	if totals.Total != 0 || totals.ItemsSubtotal != 0 {
		t.Fatalf("expected zero totals, got %+v", totals)
	}
	if totals.UrgencyPercentage != nil || totals.DiscountPercentage != nil {
		t.Fatal("expected nil percentages for empty order")
	}
}

func TestComputeTotalsReconciliation(t *testing.T) {
	global := &GlobalModifiers{UrgencyType: UrgencyExpress48h, DiscountType: DiscountMilitary}

	clothing := PriceListEntry{ID: uuid.New(), Name: "Suit cleaning", CategoryCode: "CLOTHING", BasePrice: 20_000}
	laundry := PriceListEntry{ID: uuid.New(), Name: "Shirt wash", CategoryCode: "LAUNDRY", BasePrice: 3_000}

	items := []CalculatedItemPrice{
		calcItem(t, clothing, Item{Quantity: 1}, global),
		calcItem(t, laundry, Item{Quantity: 4}, global),
	}
	totals := ComputeTotals(items, global)

	// 20000 + 12000
	if totals.ItemsSubtotal != 32_000 {
		t.Fatalf("expected items subtotal 32000, got %d", totals.ItemsSubtotal)
	}
	// 50% of each subtotal
	if totals.UrgencyAmount != 16_000 {
		t.Fatalf("expected urgency 16000, got %d", totals.UrgencyAmount)
	}
	// only the clothing item is discountable: 10% of (20000 + 10000)
	if totals.DiscountAmount != 3_000 {
		t.Fatalf("expected discount 3000, got %d", totals.DiscountAmount)
	}
	if totals.DiscountApplicableAmount != 30_000 {
		t.Fatalf("expected discount applicable amount 30000, got %d", totals.DiscountApplicableAmount)
	}
	if want := totals.ItemsSubtotal + totals.UrgencyAmount - totals.DiscountAmount; totals.Total != want {
		t.Fatalf("reconciliation failed: total %d, expected %d", totals.Total, want)
	}
	if totals.Total != 45_000 {
		t.Fatalf("expected total 45000, got %d", totals.Total)
	}
	if totals.UrgencyPercentage == nil || *totals.UrgencyPercentage != 50 {
		t.Fatalf("expected urgency percentage 50, got %v", totals.UrgencyPercentage)
	}
	if totals.DiscountPercentage == nil || *totals.DiscountPercentage != 10 {
		t.Fatalf("expected discount percentage 10, got %v", totals.DiscountPercentage)
	}
}

func TestComputeTotalsNormalOrder(t *testing.T) {
	global := &GlobalModifiers{UrgencyType: UrgencyNormal, DiscountType: DiscountNone}
	entry := PriceListEntry{ID: uuid.New(), Name: "Dress cleaning", CategoryCode: "CLOTHING", BasePrice: 8_000}

	items := []CalculatedItemPrice{calcItem(t, entry, Item{Quantity: 1}, global)}
	totals := ComputeTotals(items, global)

	if totals.Total != 8_000 {
		t.Fatalf("expected total 8000, got %d", totals.Total)
	}
	if totals.UrgencyPercentage == nil || *totals.UrgencyPercentage != 0 {
		t.Fatalf("expected urgency percentage 0, got %v", totals.UrgencyPercentage)
	}
	if totals.DiscountPercentage == nil || *totals.DiscountPercentage != 0 {
		t.Fatalf("expected discount percentage 0, got %v", totals.DiscountPercentage)
	}
}

func TestComputeTotalsNoGlobalSelections(t *testing.T) {
	entry := PriceListEntry{ID: uuid.New(), Name: "Dress cleaning", CategoryCode: "CLOTHING", BasePrice: 8_000}
	items := []CalculatedItemPrice{calcItem(t, entry, Item{Quantity: 2}, nil)}
	totals := ComputeTotals(items, nil)

	if totals.Total != 16_000 {
		t.Fatalf("expected total 16000, got %d", totals.Total)
	}
	if totals.UrgencyPercentage != nil || totals.DiscountPercentage != nil {
		t.Fatal("expected nil percentages without global selections")
	}
}
