package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/club-manager/internal/domain/match"
	"github.com/riskibarqy/club-manager/internal/domain/stadium"
)

type MatchService struct {
	matchRepo   match.Repository
	stadiumRepo stadium.Repository
}

func NewMatchService(matchRepo match.Repository, stadiumRepo stadium.Repository) *MatchService {
	return &MatchService{matchRepo: matchRepo, stadiumRepo: stadiumRepo}
}

func (s *MatchService) List(ctx context.Context) ([]match.Detail, error) {
	ctx, span := startUsecaseSpan(ctx, "MatchService", "List")
	defer span.End()

	items, err := s.matchRepo.List(ctx)
	if err != nil {
		return nil, classifyStoreError(err, "list matches")
	}
	return items, nil
}

func (s *MatchService) Get(ctx context.Context, id int64) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "MatchService", "Get")
	defer span.End()

	if err := requireID("match id", id); err != nil {
		return match.Match{}, err
	}

	item, exists, err := s.matchRepo.GetByID(ctx, id)
	if err != nil {
		return match.Match{}, classifyStoreError(err, "get match")
	}
	if !exists {
		return match.Match{}, fmt.Errorf("%w: match=%d", ErrNotFound, id)
	}
	return item, nil
}

// Create rejects a fixture between a club and itself before any statement is issued.
func (s *MatchService) Create(ctx context.Context, input match.Match) (int64, error) {
	ctx, span := startUsecaseSpan(ctx, "MatchService", "Create")
	defer span.End()

	if err := input.Validate(); err != nil {
		return 0, invalidInput(err)
	}

	id, err := s.matchRepo.Create(ctx, input)
	if err != nil {
		return 0, classifyStoreError(err, "create match")
	}
	return id, nil
}

func (s *MatchService) Update(ctx context.Context, input match.Match) error {
	ctx, span := startUsecaseSpan(ctx, "MatchService", "Update")
	defer span.End()

	if err := requireID("match id", input.ID); err != nil {
		return err
	}
	if err := input.Validate(); err != nil {
		return invalidInput(err)
	}

	updated, err := s.matchRepo.Update(ctx, input)
	if err != nil {
		return classifyStoreError(err, "update match")
	}
	if !updated {
		return fmt.Errorf("%w: match=%d", ErrNotFound, input.ID)
	}
	return nil
}

func (s *MatchService) Delete(ctx context.Context, id int64) error {
	ctx, span := startUsecaseSpan(ctx, "MatchService", "Delete")
	defer span.End()

	if err := requireID("match id", id); err != nil {
		return err
	}

	deleted, err := s.matchRepo.Delete(ctx, id)
	if err != nil {
		return classifyStoreError(err, "delete match")
	}
	if !deleted {
		return fmt.Errorf("%w: match=%d", ErrNotFound, id)
	}
	return nil
}

func (s *MatchService) ListStadiums(ctx context.Context) ([]stadium.Stadium, error) {
	ctx, span := startUsecaseSpan(ctx, "MatchService", "ListStadiums")
	defer span.End()

	items, err := s.stadiumRepo.List(ctx)
	if err != nil {
		return nil, classifyStoreError(err, "list stadiums")
	}
	return items, nil
}
