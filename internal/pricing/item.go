package pricing

import "context"

// Calculator prices single order items against catalog reference data.
// The zero value calculates without item-level modifiers.
type Calculator struct {
	Modifiers ModifierSource
}

// NewCalculator returns a Calculator resolving modifier codes through src.
func NewCalculator(src ModifierSource) *Calculator {
	return &Calculator{Modifiers: src}
}

// CalculateItem runs the full per-item pipeline: base amount, item-level
// modifiers, urgency surcharge, then the order discount. The stages are
// strictly ordered; urgency applies to the modifier-adjusted subtotal and the
// discount applies to subtotal plus urgency.
func (c *Calculator) CalculateItem(ctx context.Context, item Item, entry PriceListEntry, global *GlobalModifiers) (CalculatedItemPrice, error) {
	basePrice, baseAmount, err := BaseAmount(entry, item.Characteristics, item.Quantity)
	if err != nil {
		return CalculatedItemPrice{}, err
	}

	applied, modifiersTotal, err := ApplyModifiers(ctx, c.Modifiers, item.ModifierCodes, baseAmount, item.Quantity)
	if err != nil {
		return CalculatedItemPrice{}, err
	}

	subtotal := baseAmount + modifiersTotal
	urgencyMod, urgencyAmount := Urgency(subtotal, global)
	discount := Discount(subtotal, urgencyAmount, global, entry)

	final := subtotal + urgencyAmount - discount.Amount

	return CalculatedItemPrice{
		PriceListItemID: item.PriceListItemID,
		ItemName:        entry.Name,
		CategoryCode:    entry.CategoryCode,
		Quantity:        item.Quantity,
		BasePrice:       basePrice,
		Calculations: ItemCalculation{
			BaseAmount:       baseAmount,
			Modifiers:        applied,
			ModifiersTotal:   modifiersTotal,
			Subtotal:         subtotal,
			UrgencyModifier:  urgencyMod,
			DiscountModifier: discount.Modifier,
			DiscountEligible: discount.Eligible,
			FinalAmount:      final,
		},
		Total: final,
	}, nil
}
