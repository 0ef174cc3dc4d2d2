package httpapi

import (
	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/club-manager/internal/platform/logging"
	"github.com/riskibarqy/club-manager/internal/usecase"
)

type Handler struct {
	clubService      *usecase.ClubService
	playerService    *usecase.PlayerService
	contractService  *usecase.ContractService
	matchService     *usecase.MatchService
	dashboardService *usecase.DashboardService
	authService      *usecase.AuthService
	healthService    *usecase.HealthService
	logger           *logging.Logger
	validator        *validator.Validate
}

func NewHandler(
	clubService *usecase.ClubService,
	playerService *usecase.PlayerService,
	contractService *usecase.ContractService,
	matchService *usecase.MatchService,
	dashboardService *usecase.DashboardService,
	authService *usecase.AuthService,
	healthService *usecase.HealthService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	validate := validator.New()
	validate.RegisterTagNameFunc(jsonFieldName)
	validate.RegisterCustomTypeFunc(flexValue, flexInt{}, flexFloat{})

	return &Handler{
		clubService:      clubService,
		playerService:    playerService,
		contractService:  contractService,
		matchService:     matchService,
		dashboardService: dashboardService,
		authService:      authService,
		healthService:    healthService,
		logger:           logger,
		validator:        validate,
	}
}
