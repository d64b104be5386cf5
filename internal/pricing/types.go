package pricing

import "github.com/google/uuid"

// UrgencyType selects the order-level express surcharge tier.
type UrgencyType string

// Supported urgency tiers.
const (
	UrgencyNormal     UrgencyType = "NORMAL"
	UrgencyExpress48h UrgencyType = "EXPRESS_48H"
	UrgencyExpress24h UrgencyType = "EXPRESS_24H"
)

// DiscountType selects the order-level discount programme.
type DiscountType string

// Supported discount programmes.
const (
	DiscountNone        DiscountType = "NONE"
	DiscountEvercard    DiscountType = "EVERCARD"
	DiscountMilitary    DiscountType = "MILITARY"
	DiscountSocialMedia DiscountType = "SOCIAL_MEDIA"
	DiscountOther       DiscountType = "OTHER"
)

// ModifierType distinguishes how a price modifier value is interpreted.
type ModifierType string

// Supported modifier kinds. Anything else computes to a zero amount.
const (
	ModifierPercentage ModifierType = "PERCENTAGE"
	ModifierFixed      ModifierType = "FIXED"
)

// PriceListEntry is the catalog pricing row an item is calculated against.
// PriceBlack and PriceColor are optional colour-specific unit prices used by
// dyeing services.
type PriceListEntry struct {
	ID           uuid.UUID
	Name         string
	CategoryCode string
	BasePrice    Money
	PriceBlack   *Money
	PriceColor   *Money
}

// ItemCharacteristics carries optional item properties supplied with a
// calculation request. Only Color participates in price resolution.
type ItemCharacteristics struct {
	Color     string `json:"color,omitempty"`
	Material  string `json:"material,omitempty"`
	WearLevel string `json:"wearLevel,omitempty"`
}

// PriceModifier is a reference-data adjustment selectable per item.
// Value is basis points for PERCENTAGE (1550 = 15.50%) and minor units per
// unit of quantity for FIXED.
type PriceModifier struct {
	Code   string
	Name   string
	Type   ModifierType
	Value  int64
	Active bool
}

// GlobalModifiers are the per-order urgency and discount selections shared
// by every item in the order.
type GlobalModifiers struct {
	UrgencyType        UrgencyType  `json:"urgencyType,omitempty"`
	DiscountType       DiscountType `json:"discountType,omitempty"`
	DiscountPercentage *int         `json:"discountPercentage,omitempty"`
}

// AppliedModifier records one applied adjustment for audit and display.
// Amount is signed; zero amounts are recorded, not filtered.
type AppliedModifier struct {
	Code   string       `json:"code"`
	Name   string       `json:"name"`
	Type   ModifierType `json:"type"`
	Value  int64        `json:"value"`
	Amount Money        `json:"amount"`
}

// Item is the per-line calculation request.
type Item struct {
	PriceListItemID uuid.UUID
	Quantity        int
	Characteristics *ItemCharacteristics
	ModifierCodes   []string
}

// ItemCalculation is the full per-item price breakdown.
type ItemCalculation struct {
	BaseAmount       Money             `json:"baseAmount"`
	Modifiers        []AppliedModifier `json:"modifiers"`
	ModifiersTotal   Money             `json:"modifiersTotal"`
	Subtotal         Money             `json:"subtotal"`
	UrgencyModifier  *AppliedModifier  `json:"urgencyModifier,omitempty"`
	DiscountModifier *AppliedModifier  `json:"discountModifier,omitempty"`
	DiscountEligible bool              `json:"discountEligible"`
	FinalAmount      Money             `json:"finalAmount"`
}

// CalculatedItemPrice pairs the breakdown with denormalized display fields.
type CalculatedItemPrice struct {
	PriceListItemID uuid.UUID       `json:"priceListItemId"`
	ItemName        string          `json:"itemName"`
	CategoryCode    string          `json:"categoryCode"`
	Quantity        int             `json:"quantity"`
	BasePrice       Money           `json:"basePrice"`
	Calculations    ItemCalculation `json:"calculations"`
	Total           Money           `json:"total"`
}

// CalculationTotals aggregates item breakdowns into order-level figures.
// Percentage fields stay nil for empty orders.
type CalculationTotals struct {
	ItemsSubtotal            Money `json:"itemsSubtotal"`
	UrgencyAmount            Money `json:"urgencyAmount"`
	UrgencyPercentage        *int  `json:"urgencyPercentage,omitempty"`
	DiscountAmount           Money `json:"discountAmount"`
	DiscountPercentage       *int  `json:"discountPercentage,omitempty"`
	DiscountApplicableAmount Money `json:"discountApplicableAmount"`
	Total                    Money `json:"total"`
}
