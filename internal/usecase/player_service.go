package usecase

import (
	"context"
	"fmt"

	"github.com/jonboulle/clockwork"
	"github.com/riskibarqy/club-manager/internal/domain/player"
	"github.com/riskibarqy/club-manager/internal/platform/logging"
)

type PlayerService struct {
	playerRepo player.Repository
	clock      clockwork.Clock
	logger     *logging.Logger
}

func NewPlayerService(playerRepo player.Repository, clock clockwork.Clock, logger *logging.Logger) *PlayerService {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &PlayerService{playerRepo: playerRepo, clock: clock, logger: logger}
}

func (s *PlayerService) ListRoster(ctx context.Context) ([]player.RosterEntry, error) {
	ctx, span := startUsecaseSpan(ctx, "PlayerService", "ListRoster")
	defer span.End()

	items, err := s.playerRepo.ListRoster(ctx)
	if err != nil {
		return nil, classifyStoreError(err, "list roster")
	}
	return items, nil
}

func (s *PlayerService) Search(ctx context.Context, filter player.SearchFilter) ([]player.SearchResult, error) {
	ctx, span := startUsecaseSpan(ctx, "PlayerService", "Search")
	defer span.End()

	filter = filter.Normalize()
	if filter.Position != "" && !filter.Position.Valid() {
		return nil, fmt.Errorf("%w: unknown position %q", ErrInvalidInput, filter.Position)
	}

	items, err := s.playerRepo.Search(ctx, filter)
	if err != nil {
		return nil, classifyStoreError(err, "search players")
	}
	return items, nil
}

func (s *PlayerService) Get(ctx context.Context, id int64) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "PlayerService", "Get")
	defer span.End()

	if err := requireID("player id", id); err != nil {
		return player.Player{}, err
	}

	item, exists, err := s.playerRepo.GetByID(ctx, id)
	if err != nil {
		return player.Player{}, classifyStoreError(err, "get player")
	}
	if !exists {
		return player.Player{}, fmt.Errorf("%w: player=%d", ErrNotFound, id)
	}
	return item, nil
}

func (s *PlayerService) Create(ctx context.Context, input player.Player) (int64, error) {
	ctx, span := startUsecaseSpan(ctx, "PlayerService", "Create")
	defer span.End()

	if err := input.Validate(s.clock.Now()); err != nil {
		return 0, invalidInput(err)
	}

	id, err := s.playerRepo.Create(ctx, input)
	if err != nil {
		return 0, classifyStoreError(err, "create player")
	}

	s.logger.InfoContext(ctx, "player created", "player_id", id, "position", input.Position)
	return id, nil
}

func (s *PlayerService) Update(ctx context.Context, input player.Player) error {
	ctx, span := startUsecaseSpan(ctx, "PlayerService", "Update")
	defer span.End()

	if err := requireID("player id", input.ID); err != nil {
		return err
	}
	if err := input.Validate(s.clock.Now()); err != nil {
		return invalidInput(err)
	}

	updated, err := s.playerRepo.Update(ctx, input)
	if err != nil {
		return classifyStoreError(err, "update player")
	}
	if !updated {
		return fmt.Errorf("%w: player=%d", ErrNotFound, input.ID)
	}
	return nil
}

func (s *PlayerService) Delete(ctx context.Context, id int64) error {
	ctx, span := startUsecaseSpan(ctx, "PlayerService", "Delete")
	defer span.End()

	if err := requireID("player id", id); err != nil {
		return err
	}

	deleted, err := s.playerRepo.Delete(ctx, id)
	if err != nil {
		return classifyStoreError(err, "delete player")
	}
	if !deleted {
		return fmt.Errorf("%w: player=%d", ErrNotFound, id)
	}

	s.logger.InfoContext(ctx, "player deleted", "player_id", id)
	return nil
}
