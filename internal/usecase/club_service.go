package usecase

import (
	"context"
	"fmt"

	"github.com/jonboulle/clockwork"
	"github.com/riskibarqy/club-manager/internal/domain/club"
)

type ClubService struct {
	clubRepo club.Repository
	clock    clockwork.Clock
}

func NewClubService(clubRepo club.Repository, clock clockwork.Clock) *ClubService {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &ClubService{clubRepo: clubRepo, clock: clock}
}

func (s *ClubService) List(ctx context.Context) ([]club.Club, error) {
	ctx, span := startUsecaseSpan(ctx, "ClubService", "List")
	defer span.End()

	items, err := s.clubRepo.List(ctx)
	if err != nil {
		return nil, classifyStoreError(err, "list clubs")
	}
	return items, nil
}

func (s *ClubService) Get(ctx context.Context, id int64) (club.Club, error) {
	ctx, span := startUsecaseSpan(ctx, "ClubService", "Get")
	defer span.End()

	if err := requireID("club id", id); err != nil {
		return club.Club{}, err
	}

	item, exists, err := s.clubRepo.GetByID(ctx, id)
	if err != nil {
		return club.Club{}, classifyStoreError(err, "get club")
	}
	if !exists {
		return club.Club{}, fmt.Errorf("%w: club=%d", ErrNotFound, id)
	}
	return item, nil
}

func (s *ClubService) Create(ctx context.Context, input club.Club) (int64, error) {
	ctx, span := startUsecaseSpan(ctx, "ClubService", "Create")
	defer span.End()

	if err := input.Validate(s.clock.Now()); err != nil {
		return 0, invalidInput(err)
	}

	id, err := s.clubRepo.Create(ctx, input)
	if err != nil {
		return 0, classifyStoreError(err, "create club")
	}
	return id, nil
}

func (s *ClubService) Update(ctx context.Context, input club.Edit) error {
	ctx, span := startUsecaseSpan(ctx, "ClubService", "Update")
	defer span.End()

	if err := requireID("club id", input.ID); err != nil {
		return err
	}
	if err := input.Validate(s.clock.Now()); err != nil {
		return invalidInput(err)
	}

	updated, err := s.clubRepo.Update(ctx, input)
	if err != nil {
		return classifyStoreError(err, "update club")
	}
	if !updated {
		return fmt.Errorf("%w: club=%d", ErrNotFound, input.ID)
	}
	return nil
}

func (s *ClubService) Delete(ctx context.Context, id int64) error {
	ctx, span := startUsecaseSpan(ctx, "ClubService", "Delete")
	defer span.End()

	if err := requireID("club id", id); err != nil {
		return err
	}

	deleted, err := s.clubRepo.Delete(ctx, id)
	if err != nil {
		return classifyStoreError(err, "delete club")
	}
	if !deleted {
		return fmt.Errorf("%w: club=%d", ErrNotFound, id)
	}
	return nil
}
