package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"expediente-admin/internal/delivery/dto"
	"expediente-admin/internal/domain/entity"
	"expediente-admin/pkg/validator"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// UniquenessChecker answers whether a unique product field value is already
// held by another record. excludeID, when set, is ignored in the lookup.
type UniquenessChecker interface {
	Exists(ctx context.Context, field, value string, excludeID *uuid.UUID) (bool, error)
}

// BrandLookup resolves brand references.
type BrandLookup interface {
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

type operation int

const (
	opCreate operation = iota
	opUpdate
)

// submission is the view of one request that the field rules read from.
type submission struct {
	op          operation
	input       *dto.ProductRequest
	existing    *entity.Product
	slug        string
	publishedAt time.Time
	now         time.Time
}

// fieldRule describes one product field. Rules run in declaration order and
// every failure is collected.
type fieldRule struct {
	field       string
	required    bool
	missing     string
	tag         string
	kind        ViolationKind
	message     string
	unique      bool
	derivedFrom string
	value       func(s *submission) (any, bool)
	check       func(ctx context.Context, e *RecordEditor, s *submission, errs *ValidationError) error
}

var productSchema = []fieldRule{
	{
		field:    "name",
		required: true,
		tag:      "max=255",
		kind:     FormatViolation,
		message:  tooLong(255),
		unique:   true,
		value:    func(s *submission) (any, bool) { return text(s.input.Name) },
	},
	{
		field:       "slug",
		required:    true,
		missing:     "could not be derived from name",
		tag:         "max=255",
		kind:        FormatViolation,
		message:     tooLong(255),
		unique:      true,
		derivedFrom: "name",
		value:       func(s *submission) (any, bool) { return s.slug, s.slug != "" },
	},
	{
		field:    "sku",
		required: true,
		tag:      "max=255",
		kind:     FormatViolation,
		message:  tooLong(255),
		unique:   true,
		value:    func(s *submission) (any, bool) { return text(s.input.SKU) },
	},
	{
		field:    "price",
		required: true,
		tag:      "price",
		kind:     FormatViolation,
		message:  "must have at most 6 digits and 2 decimals",
		value:    func(s *submission) (any, bool) { return text(string(s.input.Price)) },
	},
	{
		field:    "quantity",
		required: true,
		tag:      "gte=0,lte=10000",
		kind:     RangeViolation,
		message:  "must be between 0 and 10000",
		value: func(s *submission) (any, bool) {
			if s.input.Quantity == nil {
				return nil, false
			}
			return *s.input.Quantity, true
		},
	},
	{
		field:    "type",
		required: true,
		tag:      "oneof=" + strings.Join(productTypeValues(), " "),
		kind:     InvalidEnumValue,
		message:  "must be one of: " + strings.Join(productTypeValues(), ", "),
		value:    func(s *submission) (any, bool) { return text(s.input.Type) },
	},
	{
		field: "published_at",
		check: checkPublishedAt,
	},
	{
		field:    "image",
		required: true,
		tag:      "max=512",
		kind:     FormatViolation,
		message:  tooLong(512),
		value:    func(s *submission) (any, bool) { return text(s.input.Image) },
	},
	{
		field: "brand_id",
		check: checkBrand,
	},
}

var publishedAtLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// RecordEditor validates and normalizes product submissions before they are
// persisted. It never writes; callers store the returned record.
type RecordEditor struct {
	validator *validator.CustomValidator
	unique    UniquenessChecker
	brands    BrandLookup
	loc       *time.Location
	now       func() time.Time
}

func NewRecordEditor(v *validator.CustomValidator, unique UniquenessChecker, brands BrandLookup, loc *time.Location) *RecordEditor {
	if loc == nil {
		loc = time.UTC
	}
	return &RecordEditor{
		validator: v,
		unique:    unique,
		brands:    brands,
		loc:       loc,
		now:       time.Now,
	}
}

// PrepareForCreate validates input and returns a new product with the slug
// derived from the name and defaults applied.
func (e *RecordEditor) PrepareForCreate(ctx context.Context, input *dto.ProductRequest) (*entity.Product, error) {
	if input == nil {
		input = &dto.ProductRequest{}
	}

	s := &submission{
		op:    opCreate,
		input: input,
		slug:  Slugify(input.Name),
		now:   e.now().In(e.loc),
	}

	if err := e.validate(ctx, s); err != nil {
		return nil, err
	}

	product := &entity.Product{
		IsVisible:  boolOr(input.IsVisible, true),
		IsFeatured: boolOr(input.IsFeatured, true),
	}
	if err := e.apply(product, s); err != nil {
		return nil, err
	}
	return product, nil
}

// PrepareForUpdate validates input against an existing product. The slug is
// carried over untouched and uniqueness checks skip the product itself.
func (e *RecordEditor) PrepareForUpdate(ctx context.Context, existing *entity.Product, input *dto.ProductRequest) (*entity.Product, error) {
	if existing == nil {
		return nil, errors.New("record editor: existing product is required")
	}
	if input == nil {
		input = &dto.ProductRequest{}
	}

	s := &submission{
		op:       opUpdate,
		input:    input,
		existing: existing,
		slug:     existing.Slug,
		now:      e.now().In(e.loc),
	}

	if err := e.validate(ctx, s); err != nil {
		return nil, err
	}

	product := *existing
	product.Brand = nil
	product.IsVisible = boolOr(input.IsVisible, existing.IsVisible)
	product.IsFeatured = boolOr(input.IsFeatured, existing.IsFeatured)
	if err := e.apply(&product, s); err != nil {
		return nil, err
	}
	return &product, nil
}

func (e *RecordEditor) validate(ctx context.Context, s *submission) error {
	var excludeID *uuid.UUID
	if s.existing != nil {
		id := s.existing.ID
		excludeID = &id
	}

	errs := &ValidationError{}
	for _, rule := range productSchema {
		if rule.derivedFrom != "" && errs.failed(rule.derivedFrom) {
			continue
		}

		if rule.check != nil {
			if err := rule.check(ctx, e, s, errs); err != nil {
				return err
			}
			continue
		}

		val, ok := rule.value(s)
		if !ok {
			if rule.required {
				msg := rule.missing
				if msg == "" {
					msg = "is required"
				}
				errs.add(rule.field, RequiredFieldMissing, msg)
			}
			continue
		}

		if rule.tag != "" {
			if err := e.validator.Var(val, rule.tag); err != nil {
				errs.add(rule.field, rule.kind, rule.message)
				continue
			}
		}

		if rule.unique {
			taken, err := e.unique.Exists(ctx, rule.field, val.(string), excludeID)
			if err != nil {
				return fmt.Errorf("check %s uniqueness: %w", rule.field, err)
			}
			if taken {
				errs.add(rule.field, UniquenessViolation, "has already been taken")
			}
		}
	}

	if len(errs.Errors) > 0 {
		return errs
	}
	return nil
}

// apply copies the validated submission onto product.
func (e *RecordEditor) apply(product *entity.Product, s *submission) error {
	price, err := decimal.NewFromString(strings.TrimSuffix(strings.TrimSpace(string(s.input.Price)), "."))
	if err != nil {
		return fmt.Errorf("parse price: %w", err)
	}

	product.Name = strings.TrimSpace(s.input.Name)
	product.Slug = s.slug
	product.Description = s.input.Description
	product.SKU = strings.TrimSpace(s.input.SKU)
	product.Price = price
	product.Quantity = *s.input.Quantity
	product.Type = entity.ProductType(strings.TrimSpace(s.input.Type))
	product.PublishedAt = s.publishedAt
	product.Image = strings.TrimSpace(s.input.Image)
	product.BrandID = nil
	if s.input.BrandID != nil && *s.input.BrandID != uuid.Nil {
		id := *s.input.BrandID
		product.BrandID = &id
	}
	return nil
}

func checkPublishedAt(_ context.Context, e *RecordEditor, s *submission, errs *ValidationError) error {
	raw := strings.TrimSpace(s.input.PublishedAt)
	if raw == "" {
		if s.op == opUpdate {
			s.publishedAt = s.existing.PublishedAt
		} else {
			s.publishedAt = s.now
		}
		return nil
	}

	publishedAt, ok := parsePublishedAt(raw, e.loc)
	if !ok {
		errs.add("published_at", FormatViolation, "must be a date (YYYY-MM-DD) or date-time (YYYY-MM-DDTHH:MM[:SS], optionally with a zone offset)")
		return nil
	}

	if s.op == opCreate && publishedAt.Before(startOfDay(s.now, e.loc)) {
		errs.add("published_at", DateTooEarly, "must not be earlier than today")
		return nil
	}

	s.publishedAt = publishedAt
	return nil
}

func checkBrand(ctx context.Context, e *RecordEditor, s *submission, errs *ValidationError) error {
	if s.input.BrandID == nil || *s.input.BrandID == uuid.Nil {
		return nil
	}

	found, err := e.brands.Exists(ctx, *s.input.BrandID)
	if err != nil {
		return fmt.Errorf("look up brand: %w", err)
	}
	if !found {
		errs.add("brand_id", InvalidReference, "does not match an existing brand")
	}
	return nil
}

func parsePublishedAt(raw string, loc *time.Location) (time.Time, bool) {
	for _, layout := range publishedAtLayouts {
		if t, err := time.ParseInLocation(layout, raw, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func startOfDay(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

func tooLong(limit int) string {
	return fmt.Sprintf("must not be longer than %d characters", limit)
}

func text(s string) (any, bool) {
	s = strings.TrimSpace(s)
	return s, s != ""
}

func boolOr(v *bool, fallback bool) bool {
	if v == nil {
		return fallback
	}
	return *v
}

func productTypeValues() []string {
	values := make([]string, len(entity.ProductTypes))
	for i, t := range entity.ProductTypes {
		values[i] = string(t)
	}
	return values
}
