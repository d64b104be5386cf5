package pricing

// Urgency computes the express surcharge over the modifier-adjusted
// subtotal. NORMAL, absent selections, and non-positive computed amounts
// yield no modifier; urgency is additive-only.
func Urgency(subtotal Money, global *GlobalModifiers) (*AppliedModifier, Money) {
	if global == nil {
		return nil, 0
	}
	pct := UrgencyPercent(global.UrgencyType)
	if pct == 0 {
		return nil, 0
	}
	amount := UrgencyAmount(subtotal, global.UrgencyType)
	if amount <= 0 {
		return nil, 0
	}
	return &AppliedModifier{
		Code:   string(global.UrgencyType),
		Name:   "Urgency: " + string(global.UrgencyType),
		Type:   ModifierPercentage,
		Value:  int64(pct),
		Amount: amount,
	}, amount
}
