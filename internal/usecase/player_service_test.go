package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/riskibarqy/club-manager/internal/domain/player"
	"github.com/riskibarqy/club-manager/internal/domain/validation"
	playermock "github.com/riskibarqy/club-manager/internal/mocks/domain/player"
	"github.com/riskibarqy/club-manager/internal/platform/dbpool"
	"github.com/riskibarqy/club-manager/internal/platform/logging"
	"github.com/stretchr/testify/mock"
)

func newPlayerService(t *testing.T) (*PlayerService, *playermock.Repository) {
	t.Helper()
	repo := playermock.NewRepository(t)
	return NewPlayerService(repo, clockwork.NewFakeClockAt(testNow), logging.NewNop()), repo
}

func samplePlayer(dob time.Time) player.Player {
	clubID := int64(2)
	return player.Player{
		FirstName:   "John",
		LastName:    "Smith",
		DateOfBirth: dob,
		Position:    player.PositionForward,
		City:        "Leeds",
		ClubID:      &clubID,
	}
}

func TestPlayerService_Create_UnderageIsRejectedBeforeStore(t *testing.T) {
	t.Parallel()

	service, repo := newPlayerService(t)
	// Fifteenth birthday is tomorrow.
	input := samplePlayer(time.Date(2011, time.October, 19, 0, 0, 0, 0, time.UTC))

	_, err := service.Create(context.Background(), input)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if f, ok := validation.As(err); !ok || f.Field != "dob" {
		t.Fatalf("expected dob failure, got %v", err)
	}
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestPlayerService_Update_UnderageIsRejected(t *testing.T) {
	t.Parallel()

	service, repo := newPlayerService(t)
	input := samplePlayer(time.Date(2015, time.January, 1, 0, 0, 0, 0, time.UTC))
	input.ID = 3

	if err := service.Update(context.Background(), input); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestPlayerService_Create_StoreTriggerMapsToInvalidInput(t *testing.T) {
	t.Parallel()

	service, repo := newPlayerService(t)
	input := samplePlayer(time.Date(2011, time.October, 18, 0, 0, 0, 0, time.UTC))

	trigger := fmt.Errorf("insert player: %w", validation.New("dob", "Player must be at least 15 years old"))
	repo.On("Create", mock.Anything, input).Return(int64(0), trigger).Once()

	_, err := service.Create(context.Background(), input)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestPlayerService_Create_Success(t *testing.T) {
	t.Parallel()

	service, repo := newPlayerService(t)
	input := samplePlayer(time.Date(2006, time.March, 1, 0, 0, 0, 0, time.UTC))
	repo.On("Create", mock.Anything, input).Return(int64(11), nil).Once()

	id, err := service.Create(context.Background(), input)
	if err != nil {
		t.Fatalf("create player: %v", err)
	}
	if id != 11 {
		t.Fatalf("unexpected id: %d", id)
	}
}

func TestPlayerService_Search(t *testing.T) {
	t.Parallel()

	service, repo := newPlayerService(t)
	minTrophies := 5
	expected := []player.SearchResult{{ID: 1, FullName: "John Smith", Age: 20, ClubName: "B", ClubTrophies: 10, Salary: 50000}}

	repo.
		On("Search", mock.Anything, mock.MatchedBy(func(f player.SearchFilter) bool {
			return f.Name == "John" && f.NameMatchType == player.MatchContains && f.MinTrophies != nil && *f.MinTrophies == 5
		})).
		Return(expected, nil).
		Once()

	got, err := service.Search(context.Background(), player.SearchFilter{Name: " John ", NameMatchType: "unknown", MinTrophies: &minTrophies})
	if err != nil {
		t.Fatalf("search players: %v", err)
	}
	if len(got) != 1 || got[0].ClubTrophies != 10 {
		t.Fatalf("unexpected results: %+v", got)
	}
}

func TestPlayerService_Search_UnknownPosition(t *testing.T) {
	t.Parallel()

	service, repo := newPlayerService(t)
	_, err := service.Search(context.Background(), player.SearchFilter{Position: "Striker"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	repo.AssertNotCalled(t, "Search", mock.Anything, mock.Anything)
}

func TestPlayerService_PoolExhaustedIsDependencyUnavailable(t *testing.T) {
	t.Parallel()

	service, repo := newPlayerService(t)
	repo.On("ListRoster", mock.Anything).Return(nil, fmt.Errorf("select roster: %w", dbpool.ErrPoolExhausted)).Once()

	_, err := service.ListRoster(context.Background())
	if !errors.Is(err, ErrDependencyUnavailable) {
		t.Fatalf("expected ErrDependencyUnavailable, got %v", err)
	}
}

func TestPlayerService_GetAndDeleteNotFound(t *testing.T) {
	t.Parallel()

	service, repo := newPlayerService(t)
	repo.On("GetByID", mock.Anything, int64(9)).Return(player.Player{}, false, nil).Once()
	repo.On("Delete", mock.Anything, int64(9)).Return(false, nil).Once()

	if _, err := service.Get(context.Background(), 9); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := service.Delete(context.Background(), 9); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPlayerService_InfrastructureErrorPropagates(t *testing.T) {
	t.Parallel()

	service, repo := newPlayerService(t)
	boom := errors.New("connection reset")
	repo.On("GetByID", mock.Anything, int64(1)).Return(player.Player{}, false, boom).Once()

	_, err := service.Get(context.Background(), 1)
	if !errors.Is(err, boom) {
		t.Fatalf("expected underlying error, got %v", err)
	}
	for _, sentinel := range []error{ErrInvalidInput, ErrNotFound, ErrDependencyUnavailable} {
		if errors.Is(err, sentinel) {
			t.Fatalf("infrastructure error must not match %v", sentinel)
		}
	}
}
