package catalog

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/noah-isme/backend-dryclean/internal/common"
	"github.com/noah-isme/backend-dryclean/internal/pricing"
)

type queryProvider interface {
	ListEntries(ctx context.Context, params ListParams) ([]Entry, error)
	CountEntries(ctx context.Context, category string) (int64, error)
	GetEntry(ctx context.Context, id uuid.UUID) (Entry, error)
	ListModifiers(ctx context.Context) ([]Modifier, error)
}

// Entry is a price-list row: one priceable service position.
type Entry struct {
	ID            uuid.UUID `json:"id"`
	CategoryCode  string    `json:"categoryCode"`
	Name          string    `json:"name"`
	UnitOfMeasure string    `json:"unitOfMeasure,omitempty"`
	BasePrice     int64     `json:"basePrice"`
	PriceBlack    *int64    `json:"priceBlack,omitempty"`
	PriceColor    *int64    `json:"priceColor,omitempty"`
	Active        bool      `json:"active"`
}

// PricingEntry converts the catalog row to the engine's input shape.
func (e Entry) PricingEntry() pricing.PriceListEntry {
	return pricing.PriceListEntry{
		ID:           e.ID,
		Name:         e.Name,
		CategoryCode: e.CategoryCode,
		BasePrice:    e.BasePrice,
		PriceBlack:   e.PriceBlack,
		PriceColor:   e.PriceColor,
	}
}

// Modifier is a selectable price adjustment. An empty CategoryRestrictions
// slice means the modifier applies to any category.
type Modifier struct {
	Code                 string               `json:"code"`
	Name                 string               `json:"name"`
	Description          string               `json:"description,omitempty"`
	Type                 pricing.ModifierType `json:"type"`
	Value                int64                `json:"value"`
	Active               bool                 `json:"active"`
	SortOrder            int                  `json:"sortOrder"`
	CategoryRestrictions []string             `json:"categoryRestrictions,omitempty"`
}

// ModifierCatalog splits modifiers into generally applicable and
// category-specific groups for the reference endpoint.
type ModifierCatalog struct {
	General          []Modifier `json:"general"`
	CategorySpecific []Modifier `json:"categorySpecific"`
}

// DiscountOption describes one discount programme. Percentage is nil for the
// custom programme, which takes the percentage from the request.
type DiscountOption struct {
	Type       pricing.DiscountType `json:"type"`
	Name       string               `json:"name"`
	Percentage *int                 `json:"percentage,omitempty"`
}

// DiscountCatalog is the reference payload for the discounts endpoint.
type DiscountCatalog struct {
	Discounts          []DiscountOption `json:"discounts"`
	ExcludedCategories []string         `json:"excludedCategories"`
}

// ListParams captures filters for price-list listing.
type ListParams struct {
	Category string
	Page     int
	Limit    int
}

// ListResult contains price-list data and pagination metadata.
type ListResult struct {
	Items []Entry
	Total int64
	Page  int
	Limit int
}

// Service orchestrates price-list queries, reference payload assembly, and
// caching. It also resolves modifier codes for the pricing engine.
type Service struct {
	queries      queryProvider
	cache        *Cache
	defaultPage  int
	defaultLimit int
	maxLimit     int
}

// ServiceConfig groups Service dependencies.
type ServiceConfig struct {
	Queries      queryProvider
	Cache        *Cache
	DefaultPage  int
	DefaultLimit int
	MaxLimit     int
}

// NewService constructs a Service instance.
func NewService(cfg ServiceConfig) (*Service, error) {
	if cfg.Queries == nil {
		return nil, errors.New("catalog: queries provider is required")
	}
	defaultPage := cfg.DefaultPage
	if defaultPage < 1 {
		defaultPage = 1
	}
	defaultLimit := cfg.DefaultLimit
	if defaultLimit < 1 {
		defaultLimit = 50
	}
	maxLimit := cfg.MaxLimit
	if maxLimit < 1 {
		maxLimit = 200
	}
	if defaultLimit > maxLimit {
		defaultLimit = maxLimit
	}
	return &Service{
		queries:      cfg.Queries,
		cache:        cfg.Cache,
		defaultPage:  defaultPage,
		defaultLimit: defaultLimit,
		maxLimit:     maxLimit,
	}, nil
}

// ParseListParams normalises raw query values into strongly typed filters.
func (s *Service) ParseListParams(values url.Values) (ListParams, error) {
	params := ListParams{
		Page:  s.defaultPage,
		Limit: s.defaultLimit,
	}
	params.Category = strings.ToUpper(strings.TrimSpace(values.Get("category")))

	if v := strings.TrimSpace(values.Get("page")); v != "" {
		page, err := strconv.Atoi(v)
		if err != nil || page < 1 {
			return params, badRequest("page", "page must be a positive integer", err)
		}
		params.Page = page
	}

	limit := s.defaultLimit
	if v := strings.TrimSpace(values.Get("limit")); v != "" {
		l, err := strconv.Atoi(v)
		if err != nil || l < 1 {
			return params, badRequest("limit", "limit must be a positive integer", err)
		}
		limit = l
	}
	if limit > s.maxLimit {
		limit = s.maxLimit
	}
	params.Limit = limit
	return params, nil
}

// ListPriceList returns the filtered price list with pagination metadata.
// Only the unfiltered first page is cached; it is the hot read the order
// wizard issues on every open.
func (s *Service) ListPriceList(ctx context.Context, params ListParams) (ListResult, error) {
	key, shouldUseCache := s.listCacheKey(params)
	if shouldUseCache {
		var cached cachedList
		ok, err := s.cache.GetJSON(ctx, key, &cached)
		if err == nil && ok {
			return ListResult{Items: cached.Items, Total: cached.Total, Page: params.Page, Limit: params.Limit}, nil
		}
	}

	total, err := s.queries.CountEntries(ctx, params.Category)
	if err != nil {
		return ListResult{}, fmt.Errorf("count price list: %w", err)
	}
	rows, err := s.queries.ListEntries(ctx, params)
	if err != nil {
		return ListResult{}, fmt.Errorf("list price list: %w", err)
	}
	result := ListResult{Items: rows, Total: total, Page: params.Page, Limit: params.Limit}
	if shouldUseCache {
		_ = s.cache.SetJSON(ctx, key, cachedList{Items: rows, Total: total})
	}
	return result, nil
}

// GetEntry returns a single price-list entry by id.
func (s *Service) GetEntry(ctx context.Context, id uuid.UUID) (Entry, error) {
	cacheKey := entryCacheKey(id)
	var cached Entry
	if ok, err := s.cache.GetJSON(ctx, cacheKey, &cached); err == nil && ok {
		return cached, nil
	}
	entry, err := s.queries.GetEntry(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Entry{}, &common.AppError{Code: "NOT_FOUND", Message: "price list entry not found", HTTPStatus: http.StatusNotFound, Err: err}
		}
		return Entry{}, fmt.Errorf("get price list entry: %w", err)
	}
	_ = s.cache.SetJSON(ctx, cacheKey, entry)
	return entry, nil
}

// ListModifiers returns the modifier catalog split into general and
// category-restricted groups. With a category filter, the restricted group
// contains only modifiers allowed for that category.
func (s *Service) ListModifiers(ctx context.Context, category string) (ModifierCatalog, error) {
	all, err := s.allModifiers(ctx)
	if err != nil {
		return ModifierCatalog{}, err
	}
	category = strings.ToUpper(strings.TrimSpace(category))
	out := ModifierCatalog{General: []Modifier{}, CategorySpecific: []Modifier{}}
	for _, m := range all {
		if !m.Active {
			continue
		}
		if len(m.CategoryRestrictions) == 0 {
			out.General = append(out.General, m)
			continue
		}
		if category == "" || containsFold(m.CategoryRestrictions, category) {
			out.CategorySpecific = append(out.CategorySpecific, m)
		}
	}
	return out, nil
}

// Discounts returns the fixed discount programmes and the categories they
// never apply to.
func (s *Service) Discounts() DiscountCatalog {
	pct := func(v int) *int { return &v }
	return DiscountCatalog{
		Discounts: []DiscountOption{
			{Type: pricing.DiscountNone, Name: "No discount", Percentage: pct(0)},
			{Type: pricing.DiscountEvercard, Name: "Evercard", Percentage: pct(10)},
			{Type: pricing.DiscountMilitary, Name: "Military", Percentage: pct(10)},
			{Type: pricing.DiscountSocialMedia, Name: "Social media", Percentage: pct(5)},
			{Type: pricing.DiscountOther, Name: "Custom"},
		},
		ExcludedCategories: pricing.NonDiscountableCategories(),
	}
}

// ActiveModifier implements pricing.ModifierSource. Unknown and inactive
// codes report not-found without an error so the engine can drop them.
func (s *Service) ActiveModifier(ctx context.Context, code string) (pricing.PriceModifier, bool, error) {
	all, err := s.allModifiers(ctx)
	if err != nil {
		return pricing.PriceModifier{}, false, err
	}
	for _, m := range all {
		if !strings.EqualFold(m.Code, code) {
			continue
		}
		if !m.Active {
			return pricing.PriceModifier{}, false, nil
		}
		return pricing.PriceModifier{
			Code:   m.Code,
			Name:   m.Name,
			Type:   m.Type,
			Value:  m.Value,
			Active: true,
		}, true, nil
	}
	return pricing.PriceModifier{}, false, nil
}

func (s *Service) allModifiers(ctx context.Context) ([]Modifier, error) {
	const key = "pricing:modifiers:all"
	var cached []Modifier
	if ok, err := s.cache.GetJSON(ctx, key, &cached); err == nil && ok {
		return cached, nil
	}
	rows, err := s.queries.ListModifiers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list modifiers: %w", err)
	}
	_ = s.cache.SetJSON(ctx, key, rows)
	return rows, nil
}

type cachedList struct {
	Items []Entry `json:"items"`
	Total int64   `json:"total"`
}

func (s *Service) listCacheKey(params ListParams) (string, bool) {
	if params.Page != s.defaultPage || params.Limit != s.defaultLimit {
		return "", false
	}
	if params.Category != "" {
		return "", false
	}
	return "pricing:pricelist:all", true
}

func entryCacheKey(id uuid.UUID) string {
	return "pricing:pricelist:entry:" + id.String()
}

func containsFold(list []string, target string) bool {
	for _, v := range list {
		if strings.EqualFold(strings.TrimSpace(v), target) {
			return true
		}
	}
	return false
}

func badRequest(field, message string, err error) *common.AppError {
	return &common.AppError{
		Code:       "BAD_REQUEST",
		Message:    message,
		HTTPStatus: http.StatusBadRequest,
		Err:        err,
		Details: map[string]any{
			"field": field,
		},
	}
}
