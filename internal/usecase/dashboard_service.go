package usecase

import (
	"context"

	"github.com/riskibarqy/club-manager/internal/domain/dashboard"
	"github.com/sourcegraph/conc/pool"
)

type Dashboard struct {
	Stats    dashboard.Stats
	Upcoming []dashboard.Fixture
	Recent   []dashboard.Fixture
}

type DashboardService struct {
	dashboardRepo dashboard.Repository
}

func NewDashboardService(dashboardRepo dashboard.Repository) *DashboardService {
	return &DashboardService{dashboardRepo: dashboardRepo}
}

// Get runs the three independent reads concurrently; any failure fails the whole dashboard.
func (s *DashboardService) Get(ctx context.Context) (Dashboard, error) {
	ctx, span := startUsecaseSpan(ctx, "DashboardService", "Get")
	defer span.End()

	var out Dashboard
	p := pool.New().WithContext(ctx).WithCancelOnError().WithFirstError()
	p.Go(func(ctx context.Context) error {
		stats, err := s.dashboardRepo.GetStats(ctx)
		if err != nil {
			return classifyStoreError(err, "get dashboard stats")
		}
		out.Stats = stats
		return nil
	})
	p.Go(func(ctx context.Context) error {
		items, err := s.dashboardRepo.ListUpcoming(ctx, dashboard.FixtureListLimit)
		if err != nil {
			return classifyStoreError(err, "list upcoming fixtures")
		}
		out.Upcoming = items
		return nil
	})
	p.Go(func(ctx context.Context) error {
		items, err := s.dashboardRepo.ListRecent(ctx, dashboard.FixtureListLimit)
		if err != nil {
			return classifyStoreError(err, "list recent fixtures")
		}
		out.Recent = items
		return nil
	})

	if err := p.Wait(); err != nil {
		return Dashboard{}, err
	}
	return out, nil
}
