package pricing

import "fmt"

// BaseAmount resolves the unit price for the item (colour-aware) and
// multiplies it by quantity. Structurally invalid input is rejected rather
// than clamped.
func BaseAmount(entry PriceListEntry, characteristics *ItemCharacteristics, quantity int) (basePrice, baseAmount Money, err error) {
	if quantity <= 0 {
		return 0, 0, fmt.Errorf("pricing: quantity must be positive, got %d", quantity)
	}
	if entry.BasePrice < 0 {
		return 0, 0, fmt.Errorf("pricing: negative base price %d for %q", entry.BasePrice, entry.Name)
	}
	colour := ""
	if characteristics != nil {
		colour = characteristics.Color
	}
	basePrice = DetermineBasePrice(entry, colour)
	return basePrice, basePrice * Money(quantity), nil
}
