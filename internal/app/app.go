package app

import (
	"fmt"
	"net/http"

	"github.com/jonboulle/clockwork"
	"github.com/riskibarqy/club-manager/internal/config"
	"github.com/riskibarqy/club-manager/internal/domain/stadium"
	repocache "github.com/riskibarqy/club-manager/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/club-manager/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/club-manager/internal/interfaces/httpapi"
	basecache "github.com/riskibarqy/club-manager/internal/platform/cache"
	"github.com/riskibarqy/club-manager/internal/platform/dbpool"
	"github.com/riskibarqy/club-manager/internal/platform/logging"
	"github.com/riskibarqy/club-manager/internal/usecase"
)

// App owns the HTTP server and the database pool it depends on.
type App struct {
	Server *http.Server
	Pool   *dbpool.Pool
}

func New(cfg config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}

	pool, err := dbpool.Open(dbpool.Options{
		URL:                   cfg.DBURL,
		DisablePreparedBinary: cfg.DBDisablePreparedBinary,
		MaxOpenConns:          cfg.DBMaxOpenConns,
		MaxIdleConns:          cfg.DBMaxIdleConns,
		QueueLimit:            cfg.DBQueueLimit,
		ConnMaxLifetime:       cfg.DBConnMaxLifetime,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("open database pool: %w", err)
	}

	server, err := NewHTTPServer(cfg, pool, clockwork.NewRealClock(), logger)
	if err != nil {
		_ = pool.Close()
		return nil, err
	}

	return &App{Server: server, Pool: pool}, nil
}

func NewHTTPServer(cfg config.Config, pool *dbpool.Pool, clock clockwork.Clock, logger *logging.Logger) (*http.Server, error) {
	clubRepo := postgres.NewClubRepository(pool)
	playerRepo := postgres.NewPlayerRepository(pool)
	contractRepo := postgres.NewContractRepository(pool)
	matchRepo := postgres.NewMatchRepository(pool)
	stadiumRepo := repocache.NewStadiumRepository(
		postgres.NewStadiumRepository(pool),
		basecache.NewStore[[]stadium.Stadium](cfg.StadiumCacheTTL, clock),
	)
	dashboardRepo := postgres.NewDashboardRepository(pool)
	userRepo := postgres.NewUserRepository(pool)

	handler := httpapi.NewHandler(
		usecase.NewClubService(clubRepo, clock),
		usecase.NewPlayerService(playerRepo, clock, logger),
		usecase.NewContractService(contractRepo),
		usecase.NewMatchService(matchRepo, stadiumRepo),
		usecase.NewDashboardService(dashboardRepo),
		usecase.NewAuthService(userRepo, logger),
		usecase.NewHealthService(pool),
		logger,
	)
	limiter := httpapi.NewLoginLimiter(cfg.LoginRatePerMinute, cfg.LoginRateBurst, clock)
	clientIP, err := httpapi.NewClientIPResolver(cfg.TrustedProxies)
	if err != nil {
		return nil, fmt.Errorf("configure client ip resolver: %w", err)
	}
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins, limiter, clientIP)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, nil
}
