package pricing

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
)

type mapSource map[string]PriceModifier

func (s mapSource) ActiveModifier(_ context.Context, code string) (PriceModifier, bool, error) {
	m, ok := s[code]
	return m, ok, nil
}

type errorSource struct{ err error }

func (s errorSource) ActiveModifier(context.Context, string) (PriceModifier, bool, error) {
	return PriceModifier{}, false, s.err
}

func testEntry() PriceListEntry {
	return PriceListEntry{
		ID:           uuid.New(),
		Name:         "Coat cleaning",
		CategoryCode: "CLOTHING",
		BasePrice:    15_000,
	}
}

func TestCalculateItemPlain(t *testing.T) {
	calc := NewCalculator(nil)
	got, err := calc.CalculateItem(context.Background(), Item{Quantity: 2}, testEntry(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Calculations.BaseAmount != 30_000 {
		t.Fatalf("expected base amount 30000, got %d", got.Calculations.BaseAmount)
	}
	if got.Total != 30_000 {
		t.Fatalf("expected total 30000, got %d", got.Total)
	}
	if got.Calculations.DiscountEligible {
		t.Fatal("expected no discount eligibility without a discount selection")
	}
}

func TestCalculateItemRejectsZeroQuantity(t *testing.T) {
	calc := NewCalculator(nil)
	if _, err := calc.CalculateItem(context.Background(), Item{Quantity: 0}, testEntry(), nil); err == nil {
		t.Fatal("expected error for zero quantity")
	}
}

func TestCalculateItemAppliesModifiers(t *testing.T) {
	src := mapSource{
		"GENTLE_CLEAN": {Code: "GENTLE_CLEAN", Name: "Gentle cleaning", Type: ModifierPercentage, Value: 1550, Active: true},
		"BUTTON_FIX":   {Code: "BUTTON_FIX", Name: "Button replacement", Type: ModifierFixed, Value: 500, Active: true},
		"RETIRED":      {Code: "RETIRED", Name: "Retired", Type: ModifierFixed, Value: 999, Active: false},
	}
	calc := NewCalculator(src)
	item := Item{Quantity: 2, ModifierCodes: []string{"GENTLE_CLEAN", "BUTTON_FIX", "RETIRED", "NO_SUCH"}}
	got, err := calc.CalculateItem(context.Background(), item, testEntry(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.Calculations.Modifiers) != 2 {
		t.Fatalf("expected 2 applied modifiers, got %d", len(got.Calculations.Modifiers))
	}
	// 15.50% of 30000 plus 500 per unit for two units.
	if got.Calculations.ModifiersTotal != 4_650+1_000 {
		t.Fatalf("expected modifiers total 5650, got %d", got.Calculations.ModifiersTotal)
	}
	if got.Calculations.Subtotal != 35_650 {
		t.Fatalf("expected subtotal 35650, got %d", got.Calculations.Subtotal)
	}
}

func TestCalculateItemRecordsZeroAmountModifier(t *testing.T) {
	src := mapSource{
		"NOOP": {Code: "NOOP", Name: "No-op", Type: ModifierPercentage, Value: 0, Active: true},
	}
	calc := NewCalculator(src)
	got, err := calc.CalculateItem(context.Background(), Item{Quantity: 1, ModifierCodes: []string{"NOOP"}}, testEntry(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.Calculations.Modifiers) != 1 || got.Calculations.Modifiers[0].Amount != 0 {
		t.Fatalf("expected one zero-amount modifier, got %+v", got.Calculations.Modifiers)
	}
}

func TestCalculateItemSourceErrorPropagates(t *testing.T) {
	wantErr := errors.New("boom")
	calc := NewCalculator(errorSource{err: wantErr})
	_, err := calc.CalculateItem(context.Background(), Item{Quantity: 1, ModifierCodes: []string{"ANY"}}, testEntry(), nil)
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected source error, got %v", err)
	}
}

func TestCalculateItemUrgency(t *testing.T) {
	calc := NewCalculator(nil)
	global := &GlobalModifiers{UrgencyType: UrgencyExpress48h}
	entry := testEntry()
	entry.BasePrice = 10_000
	got, err := calc.CalculateItem(context.Background(), Item{Quantity: 1}, entry, global)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Calculations.UrgencyModifier == nil {
		t.Fatal("expected urgency modifier")
	}
	if got.Calculations.UrgencyModifier.Amount != 5_000 {
		t.Fatalf("expected urgency 5000, got %d", got.Calculations.UrgencyModifier.Amount)
	}
	if got.Total != 15_000 {
		t.Fatalf("expected total 15000, got %d", got.Total)
	}
}

func TestCalculateItemDiscount(t *testing.T) {
	calc := NewCalculator(nil)
	global := &GlobalModifiers{DiscountType: DiscountEvercard}
	entry := testEntry()
	entry.BasePrice = 2_500
	got, err := calc.CalculateItem(context.Background(), Item{Quantity: 1}, entry, global)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Calculations.DiscountEligible {
		t.Fatal("expected item to be discount eligible")
	}
	if got.Calculations.DiscountModifier == nil || got.Calculations.DiscountModifier.Amount != 250 {
		t.Fatalf("expected discount 250, got %+v", got.Calculations.DiscountModifier)
	}
	if got.Total != 2_250 {
		t.Fatalf("expected total 2250, got %d", got.Total)
	}
}

func TestCalculateItemDiscountCategoryGate(t *testing.T) {
	calc := NewCalculator(nil)
	global := &GlobalModifiers{DiscountType: DiscountMilitary}
	entry := testEntry()
	entry.CategoryCode = "LAUNDRY"
	got, err := calc.CalculateItem(context.Background(), Item{Quantity: 1}, entry, global)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Calculations.DiscountEligible {
		t.Fatal("expected laundry item to be ineligible")
	}
	if got.Calculations.DiscountModifier != nil {
		t.Fatalf("expected no discount modifier, got %+v", got.Calculations.DiscountModifier)
	}
	if got.Total != got.Calculations.Subtotal {
		t.Fatalf("expected total to equal subtotal, got %d", got.Total)
	}
}

func TestCalculateItemZeroDiscountStaysEligible(t *testing.T) {
	calc := NewCalculator(nil)
	global := &GlobalModifiers{DiscountType: DiscountOther, DiscountPercentage: intPtr(0)}
	got, err := calc.CalculateItem(context.Background(), Item{Quantity: 1}, testEntry(), global)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Calculations.DiscountEligible {
		t.Fatal("expected eligibility to survive a zero discount")
	}
	if got.Calculations.DiscountModifier != nil {
		t.Fatalf("expected no discount modifier, got %+v", got.Calculations.DiscountModifier)
	}
}

func TestCalculateItemBlackColourPricing(t *testing.T) {
	calc := NewCalculator(nil)
	entry := testEntry()
	entry.CategoryCode = "DYEING"
	entry.PriceBlack = moneyPtr(18_000)
	item := Item{Quantity: 1, Characteristics: &ItemCharacteristics{Color: "чорний"}}
	got, err := calc.CalculateItem(context.Background(), item, entry, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.BasePrice != 18_000 {
		t.Fatalf("expected black unit price 18000, got %d", got.BasePrice)
	}
}

func TestCalculateItemFullPipeline(t *testing.T) {
	src := mapSource{
		"GENTLE_CLEAN": {Code: "GENTLE_CLEAN", Name: "Gentle cleaning", Type: ModifierPercentage, Value: 1550, Active: true},
	}
	calc := NewCalculator(src)
	global := &GlobalModifiers{UrgencyType: UrgencyExpress48h, DiscountType: DiscountEvercard}
	item := Item{Quantity: 2, ModifierCodes: []string{"GENTLE_CLEAN"}}

	got, err := calc.CalculateItem(context.Background(), item, testEntry(), global)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	c := got.Calculations
	if c.BaseAmount != 30_000 {
		t.Fatalf("expected base amount 30000, got %d", c.BaseAmount)
	}
	if c.ModifiersTotal != 4_650 {
		t.Fatalf("expected modifiers total 4650, got %d", c.ModifiersTotal)
	}
	if c.Subtotal != 34_650 {
		t.Fatalf("expected subtotal 34650, got %d", c.Subtotal)
	}
	if c.UrgencyModifier == nil || c.UrgencyModifier.Amount != 17_325 {
		t.Fatalf("expected urgency 17325, got %+v", c.UrgencyModifier)
	}
	// 10% of 51975 is 5197.5, which rounds up to 5198.
	if c.DiscountModifier == nil || c.DiscountModifier.Amount != 5_198 {
		t.Fatalf("expected discount 5198, got %+v", c.DiscountModifier)
	}
	if c.FinalAmount != 46_777 {
		t.Fatalf("expected final amount 46777, got %d", c.FinalAmount)
	}
	if got.Total != c.FinalAmount {
		t.Fatalf("total %d does not match final amount %d", got.Total, c.FinalAmount)
	}
}
