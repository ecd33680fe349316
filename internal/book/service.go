package book

import (
	"context"
	"fmt"

	"bookgen/internal/logging"
)

// Service provides book generation for the HTTP layer and other callers.
type Service struct {
	gen Generator
}

// NewService creates a new book service.
func NewService(gen Generator) *Service {
	return &Service{gen: gen}
}

// Generate returns the records of one page. On total failure it returns an
// empty slice and an error wrapping ErrGeneration.
func (s *Service) Generate(ctx context.Context, p Params) ([]Record, error) {
	batch := s.gen.Generate(p)
	if batch.Err != nil {
		logging.Ctx(ctx).Error().Err(batch.Err).Str("seed", p.Seed).Int("page", p.Page).Msg("page generation failed")
		return []Record{}, fmt.Errorf("%w: %w", ErrGeneration, batch.Err)
	}
	if n := batch.Placeholders(); n > 0 {
		logging.Ctx(ctx).Warn().Int("placeholders", n).Int("page", p.Page).Msg("page contains placeholder records")
	}
	return batch.Records(), nil
}

// GenerateRange returns pages p.Page .. p.Page+pages-1 concatenated in order.
func (s *Service) GenerateRange(ctx context.Context, p Params, pages int) ([]Record, error) {
	out := make([]Record, 0, pages*p.Limit)
	for i := 0; i < pages; i++ {
		if err := ctx.Err(); err != nil {
			return []Record{}, err
		}
		page := p
		page.Page = p.Page + i
		recs, err := s.Generate(ctx, page)
		if err != nil {
			return []Record{}, err
		}
		out = append(out, recs...)
	}
	return out, nil
}

// Regions returns the supported region names.
func (s *Service) Regions() []string {
	return s.gen.Regions()
}
