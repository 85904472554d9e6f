package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/pawprint/animals-api/internal/api/metrics"
	"github.com/pawprint/animals-api/internal/core/domain"
	"github.com/pawprint/animals-api/internal/core/ports"
)

// CatService implements the cat lifecycle on top of a CatRepository.
type CatService struct {
	repo   ports.CatRepository
	logger zerolog.Logger
}

func NewCatService(repo ports.CatRepository, logger zerolog.Logger) *CatService {
	return &CatService{repo: repo, logger: logger}
}

func (s *CatService) GetAll(ctx context.Context) ([]domain.Cat, error) {
	cats, err := s.repo.GetAll(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to fetch cats")
		return nil, err
	}
	return cats, nil
}

func (s *CatService) GetByID(ctx context.Context, id int64) (*domain.Cat, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *CatService) Create(ctx context.Context, input ports.CreateCatInput) (*domain.Cat, error) {
	created, err := s.repo.Create(ctx, domain.Cat{
		Name:        input.Name,
		Type:        input.Type,
		Description: input.Description,
		Habitat:     input.Habitat,
	})
	if err != nil {
		s.logger.Error().Err(err).Str("name", input.Name).Msg("failed to create cat")
		return nil, err
	}

	metrics.CatsCreatedTotal.Inc()
	s.logger.Info().Int64("id", created.ID).Str("name", created.Name).Msg("cat created")
	return created, nil
}

// Update loads the current row, merges the provided fields over it and writes
// all four mutable fields back. A nil input field keeps the existing value; a
// non-nil field is applied even when it points at an empty string. The load
// and the write are two independent statements, so a concurrent delete
// between them surfaces as domain.ErrCatNotFound from the write.
func (s *CatService) Update(ctx context.Context, id int64, input ports.UpdateCatInput) (*domain.Cat, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	merged := *existing
	if input.Name != nil {
		merged.Name = *input.Name
	}
	if input.Type != nil {
		merged.Type = *input.Type
	}
	if input.Description != nil {
		merged.Description = *input.Description
	}
	if input.Habitat != nil {
		merged.Habitat = *input.Habitat
	}

	updated, err := s.repo.Update(ctx, merged)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("id", id).Msg("cat updated")
	return updated, nil
}

// Delete re-checks existence before deleting. The check and the delete are
// not atomic (no transaction wrapping), mirroring Update.
func (s *CatService) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error().Err(err).Int64("id", id).Msg("failed to delete cat")
		return err
	}

	metrics.CatsDeletedTotal.Inc()
	s.logger.Info().Int64("id", id).Msg("cat deleted")
	return nil
}
