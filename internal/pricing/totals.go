package pricing

// ComputeTotals folds calculated items into order-level totals. Amounts are
// summed from the per-item breakdowns rather than recomputed, so the
// reconciliation law Total = ItemsSubtotal + UrgencyAmount - DiscountAmount
// holds exactly. DiscountApplicableAmount counts subtotal plus urgency for
// discount-eligible items only.
func ComputeTotals(items []CalculatedItemPrice, global *GlobalModifiers) CalculationTotals {
	var t CalculationTotals
	for _, it := range items {
		calc := it.Calculations
		t.ItemsSubtotal += calc.Subtotal

		var urgency Money
		if calc.UrgencyModifier != nil {
			urgency = calc.UrgencyModifier.Amount
		}
		t.UrgencyAmount += urgency

		if calc.DiscountModifier != nil {
			t.DiscountAmount += calc.DiscountModifier.Amount
		}
		if calc.DiscountEligible {
			t.DiscountApplicableAmount += calc.Subtotal + urgency
		}
	}
	t.Total = t.ItemsSubtotal + t.UrgencyAmount - t.DiscountAmount

	if len(items) > 0 && global != nil {
		if global.UrgencyType != "" {
			pct := UrgencyPercent(global.UrgencyType)
			t.UrgencyPercentage = &pct
		}
		if global.DiscountType != "" {
			pct := DiscountPercent(global.DiscountType, global.DiscountPercentage)
			t.DiscountPercentage = &pct
		}
	}
	return t
}
