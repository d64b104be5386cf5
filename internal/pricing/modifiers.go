package pricing

import (
	"context"
	"strings"
)

// ModifierSource resolves active price modifiers by code. Implementations
// must be safe for concurrent reads. A code that does not resolve to an
// active modifier reports ok=false without an error.
type ModifierSource interface {
	ActiveModifier(ctx context.Context, code string) (PriceModifier, bool, error)
}

// ApplyModifiers resolves the selected modifier codes against the source and
// sums their amounts over the base amount. Unknown and inactive codes are
// dropped silently; zero-amount modifiers are still recorded. The returned
// total is the signed sum of all applied amounts.
func ApplyModifiers(ctx context.Context, src ModifierSource, codes []string, baseAmount Money, quantity int) ([]AppliedModifier, Money, error) {
	if len(codes) == 0 || src == nil {
		return nil, 0, nil
	}
	applied := make([]AppliedModifier, 0, len(codes))
	var total Money
	for _, code := range codes {
		code = strings.TrimSpace(code)
		if code == "" {
			continue
		}
		m, ok, err := src.ActiveModifier(ctx, code)
		if err != nil {
			return nil, 0, err
		}
		if !ok || !m.Active {
			continue
		}
		amount := ModifierAmount(m, baseAmount, quantity)
		applied = append(applied, AppliedModifier{
			Code:   m.Code,
			Name:   m.Name,
			Type:   m.Type,
			Value:  m.Value,
			Amount: amount,
		})
		total += amount
	}
	return applied, total, nil
}
