package pricing

import (
	"sort"
	"strings"
)

// Categories excluded from every discount programme.
var nonDiscountableCategories = map[string]struct{}{
	"IRONING": {},
	"LAUNDRY": {},
	"DYEING":  {},
}

// Colour names priced with PriceBlack. The price list stores colours both in
// English and Ukrainian, so both forms are recognised.
var blackColours = map[string]struct{}{
	"black":  {},
	"чорний": {},
}

// Colour names that keep the base price even when a colour price exists.
var baseColours = map[string]struct{}{
	"white":       {},
	"natural":     {},
	"білий":       {},
	"натуральний": {},
}

// DetermineBasePrice resolves the unit price for the given colour. Blank
// colours use the base price; black-family colours use PriceBlack; any other
// colour uses PriceColor. A missing colour-specific price falls back to the
// base price.
func DetermineBasePrice(entry PriceListEntry, colour string) Money {
	c := strings.ToLower(strings.TrimSpace(colour))
	if c == "" {
		return entry.BasePrice
	}
	if _, ok := blackColours[c]; ok {
		if entry.PriceBlack != nil {
			return *entry.PriceBlack
		}
		return entry.BasePrice
	}
	if _, ok := baseColours[c]; ok {
		return entry.BasePrice
	}
	if entry.PriceColor != nil {
		return *entry.PriceColor
	}
	return entry.BasePrice
}

// ModifierAmount computes the signed amount a modifier contributes.
// PERCENTAGE values are basis points applied to the base amount; FIXED
// values are per-unit minor amounts multiplied by quantity. Unknown types
// contribute zero.
func ModifierAmount(m PriceModifier, baseAmount Money, quantity int) Money {
	switch m.Type {
	case ModifierPercentage:
		return divRoundHalfUp(baseAmount*m.Value, 10000)
	case ModifierFixed:
		return m.Value * Money(quantity)
	default:
		return 0
	}
}

// UrgencyPercent returns the surcharge percentage for the urgency tier.
func UrgencyPercent(t UrgencyType) int {
	switch t {
	case UrgencyExpress48h:
		return 50
	case UrgencyExpress24h:
		return 100
	default:
		return 0
	}
}

// UrgencyAmount computes the surcharge for the given amount and tier.
func UrgencyAmount(amount Money, t UrgencyType) Money {
	pct := UrgencyPercent(t)
	if pct == 0 {
		return 0
	}
	return divRoundHalfUp(amount*Money(pct), 100)
}

// DiscountPercent resolves the percentage for a discount programme. OTHER
// uses the caller-supplied percentage and is zero when absent.
func DiscountPercent(t DiscountType, custom *int) int {
	switch t {
	case DiscountEvercard, DiscountMilitary:
		return 10
	case DiscountSocialMedia:
		return 5
	case DiscountOther:
		if custom != nil {
			return *custom
		}
		return 0
	default:
		return 0
	}
}

// DiscountAmount computes the discount for the given discountable base.
func DiscountAmount(amount Money, t DiscountType, custom *int) Money {
	pct := DiscountPercent(t, custom)
	if pct == 0 {
		return 0
	}
	return divRoundHalfUp(amount*Money(pct), 100)
}

// DiscountApplicableToCategory reports whether the service category accepts
// discounts at all. Ironing, laundry, and dyeing never do.
func DiscountApplicableToCategory(categoryCode string) bool {
	_, excluded := nonDiscountableCategories[strings.ToUpper(strings.TrimSpace(categoryCode))]
	return !excluded
}

// NonDiscountableCategories returns the category codes excluded from
// discounts, sorted for stable API output.
func NonDiscountableCategories() []string {
	out := make([]string, 0, len(nonDiscountableCategories))
	for code := range nonDiscountableCategories {
		out = append(out, code)
	}
	sort.Strings(out)
	return out
}
