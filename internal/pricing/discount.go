package pricing

// DiscountResult carries the outcome of the discount stage. Eligible stays
// true for items that passed the category gate but computed a zero amount,
// which is distinct from category-based ineligibility.
type DiscountResult struct {
	Modifier *AppliedModifier
	Amount   Money
	Eligible bool
}

// Discount computes the order discount for one item. The discountable base
// is subtotal plus urgency: discounts apply after the urgency surcharge,
// never before. Items in a non-discountable category are ineligible
// regardless of the selected programme.
func Discount(subtotal, urgencyAmount Money, global *GlobalModifiers, entry PriceListEntry) DiscountResult {
	if global == nil || global.DiscountType == "" || global.DiscountType == DiscountNone {
		return DiscountResult{}
	}
	if !DiscountApplicableToCategory(entry.CategoryCode) {
		return DiscountResult{}
	}
	base := subtotal + urgencyAmount
	amount := DiscountAmount(base, global.DiscountType, global.DiscountPercentage)
	if amount <= 0 {
		return DiscountResult{Eligible: true}
	}
	pct := DiscountPercent(global.DiscountType, global.DiscountPercentage)
	return DiscountResult{
		Modifier: &AppliedModifier{
			Code:   string(global.DiscountType),
			Name:   "Discount: " + string(global.DiscountType),
			Type:   ModifierPercentage,
			Value:  int64(pct),
			Amount: amount,
		},
		Amount:   amount,
		Eligible: true,
	}
}
