package quote

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	validator "github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/noah-isme/backend-dryclean/internal/catalog"
	"github.com/noah-isme/backend-dryclean/internal/common"
	"github.com/noah-isme/backend-dryclean/internal/obs"
	"github.com/noah-isme/backend-dryclean/internal/pricing"
)

// Catalog is the reference-data surface the quote service needs: entry
// lookup by id plus modifier resolution for the engine.
type Catalog interface {
	GetEntry(ctx context.Context, id uuid.UUID) (catalog.Entry, error)
	ActiveModifier(ctx context.Context, code string) (pricing.PriceModifier, bool, error)
}

// ItemRequest is one order line in a calculation request.
type ItemRequest struct {
	PriceListItemID uuid.UUID                    `json:"priceListItemId" validate:"required"`
	Quantity        int                          `json:"quantity" validate:"required,min=1,max=1000"`
	Characteristics *pricing.ItemCharacteristics `json:"characteristics,omitempty"`
	ModifierCodes   []string                     `json:"modifierCodes,omitempty" validate:"omitempty,max=20,dive,required"`
}

// CalculateRequest is the calculation payload for a whole order.
type CalculateRequest struct {
	Items           []ItemRequest            `json:"items" validate:"required,min=1,max=100,dive"`
	GlobalModifiers *pricing.GlobalModifiers `json:"globalModifiers,omitempty"`
}

// Warning reports an item that could not be priced. The rest of the order is
// calculated normally.
type Warning struct {
	PriceListItemID uuid.UUID `json:"priceListItemId"`
	Message         string    `json:"message"`
}

// CalculateResponse carries per-item breakdowns, order totals, and warnings.
type CalculateResponse struct {
	Items    []pricing.CalculatedItemPrice `json:"items"`
	Totals   pricing.CalculationTotals     `json:"totals"`
	Warnings []Warning                     `json:"warnings,omitempty"`
}

// Service runs the pricing engine over calculation requests.
type Service struct {
	catalog  Catalog
	calc     *pricing.Calculator
	validate *validator.Validate
}

// ServiceConfig groups Service dependencies.
type ServiceConfig struct {
	Catalog   Catalog
	Validator *validator.Validate
}

// NewService constructs a Service instance.
func NewService(cfg ServiceConfig) (*Service, error) {
	if cfg.Catalog == nil {
		return nil, errors.New("quote: catalog is required")
	}
	v := cfg.Validator
	if v == nil {
		v = validator.New()
	}
	return &Service{
		catalog:  cfg.Catalog,
		calc:     pricing.NewCalculator(cfg.Catalog),
		validate: v,
	}, nil
}

// Calculate validates the request and prices every item. Items that cannot be
// priced are reported as warnings; one bad line never fails the order.
func (s *Service) Calculate(ctx context.Context, req CalculateRequest) (CalculateResponse, error) {
	ctx, span := otel.Tracer("quote.Service").Start(ctx, "QuoteService.Calculate")
	defer span.End()

	start := time.Now()
	result := "error"
	var warningCount int
	defer func() {
		span.SetAttributes(
			attribute.Int("quote.items", len(req.Items)),
			attribute.Int("quote.warnings", warningCount),
			attribute.Float64("quote.duration_ms", obs.DurationMillis(time.Since(start))),
			attribute.String("quote.result", result),
		)
		if obs.QuoteCalculationsTotal != nil {
			obs.QuoteCalculationsTotal.WithLabelValues(result).Inc()
		}
		if obs.QuoteCalculationDuration != nil {
			obs.QuoteCalculationDuration.Observe(obs.DurationMillis(time.Since(start)))
		}
	}()

	if err := s.validateRequest(req); err != nil {
		result = "invalid"
		return CalculateResponse{}, err
	}

	global := req.GlobalModifiers
	items := make([]pricing.CalculatedItemPrice, 0, len(req.Items))
	var warnings []Warning

	for _, line := range req.Items {
		entry, err := s.catalog.GetEntry(ctx, line.PriceListItemID)
		if err != nil {
			var appErr *common.AppError
			if errors.As(err, &appErr) && appErr.HTTPStatus == http.StatusNotFound {
				warnings = append(warnings, Warning{
					PriceListItemID: line.PriceListItemID,
					Message:         "price list entry not found",
				})
				continue
			}
			return CalculateResponse{}, fmt.Errorf("resolve price list entry: %w", err)
		}

		calculated, err := s.calc.CalculateItem(ctx, pricing.Item{
			PriceListItemID: line.PriceListItemID,
			Quantity:        line.Quantity,
			Characteristics: line.Characteristics,
			ModifierCodes:   line.ModifierCodes,
		}, entry.PricingEntry(), global)
		if err != nil {
			warnings = append(warnings, Warning{
				PriceListItemID: line.PriceListItemID,
				Message:         err.Error(),
			})
			continue
		}
		items = append(items, calculated)
	}

	warningCount = len(warnings)
	if obs.QuoteItemWarningsTotal != nil && warningCount > 0 {
		obs.QuoteItemWarningsTotal.Add(float64(warningCount))
	}

	result = "ok"
	return CalculateResponse{
		Items:    items,
		Totals:   pricing.ComputeTotals(items, global),
		Warnings: warnings,
	}, nil
}

func (s *Service) validateRequest(req CalculateRequest) error {
	if err := s.validate.Struct(req); err != nil {
		return &common.AppError{
			Code:       "VALIDATION_ERROR",
			Message:    "invalid calculation request",
			HTTPStatus: http.StatusBadRequest,
			Err:        err,
			Details:    validationDetails(err),
		}
	}
	if g := req.GlobalModifiers; g != nil {
		switch g.UrgencyType {
		case "", pricing.UrgencyNormal, pricing.UrgencyExpress48h, pricing.UrgencyExpress24h:
		default:
			return badField("globalModifiers.urgencyType", "unknown urgency type "+strconv.Quote(string(g.UrgencyType)))
		}
		switch g.DiscountType {
		case "", pricing.DiscountNone, pricing.DiscountEvercard, pricing.DiscountMilitary, pricing.DiscountSocialMedia, pricing.DiscountOther:
		default:
			return badField("globalModifiers.discountType", "unknown discount type "+strconv.Quote(string(g.DiscountType)))
		}
		if g.DiscountPercentage != nil && (*g.DiscountPercentage < 0 || *g.DiscountPercentage > 100) {
			return badField("globalModifiers.discountPercentage", "discountPercentage must be between 0 and 100")
		}
	}
	return nil
}

func validationDetails(err error) any {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	fields := make([]map[string]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, map[string]string{
			"field": fe.Namespace(),
			"rule":  fe.Tag(),
		})
	}
	return map[string]any{"fields": fields}
}

func badField(field, message string) *common.AppError {
	return &common.AppError{
		Code:       "VALIDATION_ERROR",
		Message:    message,
		HTTPStatus: http.StatusBadRequest,
		Details:    map[string]any{"field": field},
	}
}
