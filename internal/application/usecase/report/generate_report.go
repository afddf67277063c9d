package report

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/expire-tracker/backend/internal/application/adapter"
	"github.com/expire-tracker/backend/internal/domain/entity"
	domainerror "github.com/expire-tracker/backend/internal/domain/error"
)

// DocumentRenderer serializes a product collection and its derived analytics
// into a paginated binary document. Implemented by the PDF renderer in the
// integration layer.
type DocumentRenderer interface {
	Render(products []*entity.ProductWithCategory, filters Filters, now time.Time) ([]byte, error)
	ContentType() string
	FileExtension() string
}

// GenerateInput represents the input for generating a report document.
type GenerateInput struct {
	Filters Filters
	// CategoryScope restricts the report to the given categories; nil for
	// admins.
	CategoryScope []uuid.UUID
}

// GenerateOutput carries the fully buffered document. Buffering the whole
// document before streaming is what allows the second page-numbering pass
// and lets any failure surface as a structured error instead of a truncated
// stream.
type GenerateOutput struct {
	Filename    string
	ContentType string
	Data        []byte
	GeneratedAt time.Time
}

// GenerateUseCase handles report document generation.
type GenerateUseCase struct {
	productRepo adapter.ProductRepository
	renderer    DocumentRenderer
	clock       adapter.Clock
}

// NewGenerateUseCase creates a new GenerateUseCase instance.
func NewGenerateUseCase(productRepo adapter.ProductRepository, renderer DocumentRenderer, clock adapter.Clock) *GenerateUseCase {
	return &GenerateUseCase{
		productRepo: productRepo,
		renderer:    renderer,
		clock:       clock,
	}
}

// Execute validates the filters, fetches the matching products, and renders
// the document. Validation failures carry validation codes; everything after
// validation maps to a generation failure.
func (uc *GenerateUseCase) Execute(ctx context.Context, input GenerateInput) (*GenerateOutput, error) {
	if err := input.Filters.Validate(); err != nil {
		return nil, err
	}

	now := uc.clock.Now()

	sortOrder := adapter.SortAsc
	if input.Filters.SortOrder == string(adapter.SortDesc) {
		sortOrder = adapter.SortDesc
	}

	products, err := uc.productRepo.FindWithFilter(ctx, adapter.ProductFilter{
		Name:          input.Filters.Name,
		CategoryID:    input.Filters.CategoryID,
		Status:        entity.ProductStatus(input.Filters.Status),
		ExpiryAfter:   input.Filters.DateRange.Start,
		ExpiryBefore:  input.Filters.DateRange.End,
		CategoryScope: input.CategoryScope,
		SortBy:        input.Filters.SortBy,
		SortOrder:     sortOrder,
	})
	if err != nil {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeGenerationFailed,
			"failed to load products for report",
			err,
		)
	}

	data, err := uc.renderer.Render(products, input.Filters, now)
	if err != nil {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeGenerationFailed,
			"failed to render report document",
			err,
		)
	}

	timestamp := now.UTC().Format("2006-01-02T15-04-05")
	filename := fmt.Sprintf("products-report-%s-%s.%s", input.Filters.ReportType, timestamp, uc.renderer.FileExtension())

	return &GenerateOutput{
		Filename:    filename,
		ContentType: uc.renderer.ContentType(),
		Data:        data,
		GeneratedAt: now,
	}, nil
}
