package httpapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/jonboulle/clockwork"
	"github.com/riskibarqy/club-manager/internal/domain/club"
	"github.com/riskibarqy/club-manager/internal/domain/contract"
	"github.com/riskibarqy/club-manager/internal/domain/dashboard"
	"github.com/riskibarqy/club-manager/internal/domain/match"
	"github.com/riskibarqy/club-manager/internal/domain/player"
	"github.com/riskibarqy/club-manager/internal/domain/user"
	clubmock "github.com/riskibarqy/club-manager/internal/mocks/domain/club"
	contractmock "github.com/riskibarqy/club-manager/internal/mocks/domain/contract"
	dashboardmock "github.com/riskibarqy/club-manager/internal/mocks/domain/dashboard"
	matchmock "github.com/riskibarqy/club-manager/internal/mocks/domain/match"
	playermock "github.com/riskibarqy/club-manager/internal/mocks/domain/player"
	stadiummock "github.com/riskibarqy/club-manager/internal/mocks/domain/stadium"
	usermock "github.com/riskibarqy/club-manager/internal/mocks/domain/user"
	"github.com/riskibarqy/club-manager/internal/platform/logging"
	"github.com/riskibarqy/club-manager/internal/usecase"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

var handlerNow = time.Date(2026, time.October, 18, 10, 0, 0, 0, time.UTC)

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error { return f(ctx) }

type testAPI struct {
	router    http.Handler
	clubs     *clubmock.Repository
	players   *playermock.Repository
	contracts *contractmock.Repository
	matches   *matchmock.Repository
	stadiums  *stadiummock.Repository
	dashboard *dashboardmock.Repository
	users     *usermock.Repository
	pingErr   error
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()

	api := &testAPI{
		clubs:     clubmock.NewRepository(t),
		players:   playermock.NewRepository(t),
		contracts: contractmock.NewRepository(t),
		matches:   matchmock.NewRepository(t),
		stadiums:  stadiummock.NewRepository(t),
		dashboard: dashboardmock.NewRepository(t),
		users:     usermock.NewRepository(t),
	}
	clock := clockwork.NewFakeClockAt(handlerNow)
	logger := logging.NewNop()

	handler := NewHandler(
		usecase.NewClubService(api.clubs, clock),
		usecase.NewPlayerService(api.players, clock, logger),
		usecase.NewContractService(api.contracts),
		usecase.NewMatchService(api.matches, api.stadiums),
		usecase.NewDashboardService(api.dashboard),
		usecase.NewAuthService(api.users, logger),
		usecase.NewHealthService(pingerFunc(func(context.Context) error { return api.pingErr })),
		logger,
	)
	api.router = NewRouter(handler, logger, []string{"*"}, NewLoginLimiter(60, 2, clock), nil)
	return api
}

func (a *testAPI) do(method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	req.RemoteAddr = "203.0.113.7:41000"
	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := sonic.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("unmarshal response body %q: %v", rec.Body.String(), err)
	}
	return out
}

func expectStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Fatalf("unexpected status: got=%d want=%d body=%s", rec.Code, want, rec.Body.String())
	}
}

func TestCreateClub_ReturnsCreatedID(t *testing.T) {
	api := newTestAPI(t)
	api.clubs.On("Create", mock.Anything, club.Club{Name: "Arsenal", FoundedYear: 1886, OwnerName: "Kroenke", Email: "info@arsenal.example"}).
		Return(int64(11), nil).Once()

	rec := api.do(http.MethodPost, "/api/clubs", `{"club_name":"Arsenal","founded_year":1886,"owner_name":"Kroenke","club_email":"info@arsenal.example"}`)

	expectStatus(t, rec, http.StatusCreated)
	body := decodeBody[clubCreatedBody](t, rec)
	if body.ClubID != 11 || body.Message != "Club created successfully" {
		t.Fatalf("unexpected body: %+v", body)
	}
}

func TestCreateClub_AcceptsFoundedYearAsString(t *testing.T) {
	api := newTestAPI(t)
	api.clubs.On("Create", mock.Anything, club.Club{Name: "Ajax", FoundedYear: 1900}).Return(int64(12), nil).Once()

	rec := api.do(http.MethodPost, "/api/clubs", `{"club_name":"Ajax","founded_year":"1900","owner_name":"","club_email":""}`)

	expectStatus(t, rec, http.StatusCreated)
}

func TestCreateClub_MissingFoundedYearNamesTheField(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(http.MethodPost, "/api/clubs", `{"club_name":"Ajax"}`)

	expectStatus(t, rec, http.StatusBadRequest)
	if got := decodeError(t, rec); got != "founded_year is required" {
		t.Fatalf("unexpected error message: %q", got)
	}
}

func TestCreateClub_MalformedJSONHidesDecoderDetail(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(http.MethodPost, "/api/clubs", `{"club_name":"Ajax","founded_year":`)

	expectStatus(t, rec, http.StatusBadRequest)
	if got := decodeError(t, rec); got != "invalid JSON payload" {
		t.Fatalf("unexpected error message: %q", got)
	}
	api.clubs.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUpdateClub_OmittedTrophiesKeepStoredCount(t *testing.T) {
	api := newTestAPI(t)
	api.clubs.On("Update", mock.Anything, club.Edit{ID: 6, Name: "Arsenal", FoundedYear: 1886, OwnerName: "KSE"}).
		Return(true, nil).Once()

	rec := api.do(http.MethodPut, "/api/clubs/6", `{"club_name":"Arsenal","founded_year":"1886","owner_name":"KSE","club_email":""}`)

	expectStatus(t, rec, http.StatusOK)
}

func TestUpdateClub_ExplicitTrophiesAreWritten(t *testing.T) {
	api := newTestAPI(t)
	api.clubs.On("Update", mock.Anything, mock.MatchedBy(func(e club.Edit) bool {
		return e.ID == 6 && e.TotalTrophies != nil && *e.TotalTrophies == 14
	})).Return(true, nil).Once()

	rec := api.do(http.MethodPut, "/api/clubs/6", `{"club_name":"Arsenal","founded_year":1886,"total_trophies":14}`)

	expectStatus(t, rec, http.StatusOK)
}

func TestGetClub_NotFound(t *testing.T) {
	api := newTestAPI(t)
	api.clubs.On("GetByID", mock.Anything, int64(99)).Return(club.Club{}, false, nil).Once()

	rec := api.do(http.MethodGet, "/api/clubs/99", "")

	expectStatus(t, rec, http.StatusNotFound)
}

func TestGetClub_RejectsNonNumericID(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(http.MethodGet, "/api/clubs/abc", "")

	expectStatus(t, rec, http.StatusBadRequest)
}

func TestDeletePlayer_ZeroRowsIsNotFound(t *testing.T) {
	api := newTestAPI(t)
	api.players.On("Delete", mock.Anything, int64(5)).Return(false, nil).Once()

	rec := api.do(http.MethodDelete, "/api/players/5", "")

	expectStatus(t, rec, http.StatusNotFound)
}

func TestCreateMatch_SameClubRejectedWithoutStoreCall(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(http.MethodPost, "/api/matches",
		`{"match_type":"League","match_date":"2026-11-02","home_club_id":3,"away_club_id":3,"stadium_id":1}`)

	expectStatus(t, rec, http.StatusBadRequest)
	if got := decodeError(t, rec); got != match.ErrSameClub {
		t.Fatalf("unexpected error message: %q", got)
	}
	api.matches.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateMatch_DefaultsMissingScores(t *testing.T) {
	api := newTestAPI(t)
	api.matches.On("Create", mock.Anything, mock.MatchedBy(func(m match.Match) bool {
		return m.HomeScore == 0 && m.AwayScore == 0 && m.HomeClubID == 1 && m.AwayClubID == 2 &&
			m.Date.Equal(time.Date(2026, time.November, 2, 0, 0, 0, 0, time.UTC))
	})).Return(int64(8), nil).Once()

	rec := api.do(http.MethodPost, "/api/matches",
		`{"match_type":"Friendly","match_date":"2026-11-02","home_club_id":1,"away_club_id":2,"stadium_id":1}`)

	expectStatus(t, rec, http.StatusCreated)
	if got := decodeBody[matchCreatedBody](t, rec).MatchID; got != 8 {
		t.Fatalf("unexpected match id: %d", got)
	}
}

func TestCreateMatch_AcceptsFormStringNumbers(t *testing.T) {
	api := newTestAPI(t)
	api.matches.On("Create", mock.Anything, mock.MatchedBy(func(m match.Match) bool {
		return m.Type == match.TypeLeague && m.HomeClubID == 1 && m.AwayClubID == 2 &&
			m.HomeScore == 0 && m.AwayScore == 3 && m.StadiumID == 4 &&
			m.Date.Equal(time.Date(2026, time.November, 2, 0, 0, 0, 0, time.UTC))
	})).Return(int64(9), nil).Once()

	rec := api.do(http.MethodPost, "/api/matches",
		`{"match_type":"League","match_date":"2026-11-02","home_club_id":"1","away_club_id":"2","home_score":"","away_score":"3","stadium_id":"4"}`)

	expectStatus(t, rec, http.StatusCreated)
}

func TestCreateMatch_NonNumericIDIsBadRequest(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(http.MethodPost, "/api/matches",
		`{"match_type":"League","match_date":"2026-11-02","home_club_id":"one","away_club_id":"2","stadium_id":"4"}`)

	expectStatus(t, rec, http.StatusBadRequest)
	if got := decodeError(t, rec); strings.Contains(got, "index") || strings.Contains(got, "Mismatch") {
		t.Fatalf("decoder internals leaked to client: %q", got)
	}
	api.matches.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUpdateMatch_AcceptsEchoedRow(t *testing.T) {
	api := newTestAPI(t)
	api.matches.On("Update", mock.Anything, mock.MatchedBy(func(m match.Match) bool {
		return m.ID == 5 && m.HomeClubID == 1 && m.AwayClubID == 2 && m.HomeScore == 2 && m.StadiumID == 4
	})).Return(true, nil).Once()

	rec := api.do(http.MethodPut, "/api/matches/5",
		`{"match_id":5,"match_type":"League","match_date":"2026-11-02T00:00:00.000Z","home_club_id":1,"away_club_id":"2","home_score":2,"away_score":1,"stadium_id":4}`)

	expectStatus(t, rec, http.StatusOK)
}

func TestCreateContract_AcceptsFormStringNumbers(t *testing.T) {
	api := newTestAPI(t)
	api.contracts.On("Create", mock.Anything, mock.MatchedBy(func(c contract.Contract) bool {
		return c.Salary == 50000 && c.PlayerID == 3 && c.ClubID == 2 &&
			c.StartDate.Equal(time.Date(2026, time.July, 1, 0, 0, 0, 0, time.UTC)) &&
			c.EndDate.Equal(time.Date(2029, time.June, 30, 0, 0, 0, 0, time.UTC))
	})).Return(int64(21), nil).Once()

	rec := api.do(http.MethodPost, "/api/contracts",
		`{"start_date":"2026-07-01","end_date":"2029-06-30","salary":"50000","player_id":"3","club_id":"2"}`)

	expectStatus(t, rec, http.StatusCreated)
	if got := decodeBody[contractCreatedBody](t, rec).ContractID; got != 21 {
		t.Fatalf("unexpected contract id: %d", got)
	}
}

func TestCreatePlayer_UnderageIsBadRequest(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(http.MethodPost, "/api/players",
		`{"f_name":"Young","l_name":"Talent","dob":"2015-01-01","position":"Forward"}`)

	expectStatus(t, rec, http.StatusBadRequest)
	if got := decodeError(t, rec); got != "Player must be at least 15 years old" {
		t.Fatalf("unexpected error message: %q", got)
	}
	api.players.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUpdatePlayer_EmptyClubIsFreeAgent(t *testing.T) {
	api := newTestAPI(t)
	api.players.On("Update", mock.Anything, mock.MatchedBy(func(p player.Player) bool {
		return p.ID == 4 && p.ClubID == nil
	})).Return(true, nil).Once()

	rec := api.do(http.MethodPut, "/api/players/4",
		`{"f_name":"John","l_name":"Smith","dob":"2000-05-10","position":"Defender","club_id":""}`)

	expectStatus(t, rec, http.StatusOK)
}

func TestSearchPlayers_MalformedNumberIsBadRequest(t *testing.T) {
	cases := []string{"minAge=abc", "minSalary=NaN", "minSalary=Inf", "minSalary=-Infinity"}
	for _, query := range cases {
		t.Run(query, func(t *testing.T) {
			api := newTestAPI(t)

			rec := api.do(http.MethodGet, "/api/players/search?"+query, "")

			expectStatus(t, rec, http.StatusBadRequest)
			api.players.AssertNotCalled(t, "Search", mock.Anything, mock.Anything)
		})
	}
}

func TestSearchPlayers_PassesParsedFilter(t *testing.T) {
	api := newTestAPI(t)
	api.players.On("Search", mock.Anything, mock.MatchedBy(func(f player.SearchFilter) bool {
		return f.Name == "smith" && f.NameMatchType == player.MatchEndsWith &&
			f.MinTrophies != nil && *f.MinTrophies == 5 &&
			f.MinAge == nil && f.ClubID == nil
	})).Return([]player.SearchResult{{
		ID: 1, FullName: "John Smith", Age: 20, Position: player.PositionForward,
		ClubName: "B", ClubTrophies: 10, Salary: 50000,
	}}, nil).Once()

	rec := api.do(http.MethodGet, "/api/players/search?name=smith&nameMatchType=endsWith&minTrophies=5&minAge=", "")

	expectStatus(t, rec, http.StatusOK)
	items := decodeBody[[]searchResultDTO](t, rec)
	if len(items) != 1 {
		t.Fatalf("expected one result, got %d", len(items))
	}
	if items[0].ClubTrophies != 10 || items[0].Salary != 50000 {
		t.Fatalf("unexpected result: %+v", items[0])
	}
}

func TestGetDashboard_FormatsDates(t *testing.T) {
	api := newTestAPI(t)
	api.dashboard.On("GetStats", mock.Anything).
		Return(dashboard.Stats{TotalPlayers: 40, TotalClubs: 4, TotalTrophies: 21, TotalMatches: 9}, nil).Once()
	api.dashboard.On("ListUpcoming", mock.Anything, dashboard.FixtureListLimit).Return([]dashboard.Fixture{{
		MatchID: 3, Date: time.Date(2026, time.November, 2, 0, 0, 0, 0, time.UTC), HomeTeam: "A", AwayTeam: "B",
	}}, nil).Once()
	api.dashboard.On("ListRecent", mock.Anything, dashboard.FixtureListLimit).Return([]dashboard.Fixture{}, nil).Once()

	rec := api.do(http.MethodGet, "/api/dashboard", "")

	expectStatus(t, rec, http.StatusOK)
	body := decodeBody[dashboardDTO](t, rec)
	if body.Stats.TotalPlayers != 40 {
		t.Fatalf("unexpected total players: %d", body.Stats.TotalPlayers)
	}
	if len(body.Upcoming) != 1 || body.Upcoming[0].FormattedDate != "November 02, 2026" {
		t.Fatalf("unexpected upcoming fixtures: %+v", body.Upcoming)
	}
	if body.Recent == nil {
		t.Fatalf("expected recent to encode as an empty list")
	}
}

func TestLogin(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}

	t.Run("success hides hash", func(t *testing.T) {
		api := newTestAPI(t)
		api.users.On("GetByUsername", mock.Anything, "admin").
			Return(user.User{ID: 1, Username: "admin", PasswordHash: string(hash), Role: user.RoleAdmin}, true, nil).Once()

		rec := api.do(http.MethodPost, "/api/auth/login", `{"username":"admin","password":"secret"}`)

		expectStatus(t, rec, http.StatusOK)
		if strings.Contains(rec.Body.String(), "password") {
			t.Fatalf("response leaks password data: %s", rec.Body.String())
		}
		if got := decodeBody[loginDTO](t, rec).Username; got != "admin" {
			t.Fatalf("unexpected username: %q", got)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		api := newTestAPI(t)
		api.users.On("GetByUsername", mock.Anything, "admin").
			Return(user.User{ID: 1, Username: "admin", PasswordHash: string(hash), Role: user.RoleAdmin}, true, nil).Once()

		rec := api.do(http.MethodPost, "/api/auth/login", `{"username":"admin","password":"nope"}`)

		expectStatus(t, rec, http.StatusUnauthorized)
	})

	t.Run("rate limited per client", func(t *testing.T) {
		api := newTestAPI(t)
		api.users.On("GetByUsername", mock.Anything, "ghost").Return(user.User{}, false, nil).Twice()

		for i := 0; i < 2; i++ {
			rec := api.do(http.MethodPost, "/api/auth/login", `{"username":"ghost","password":"x"}`)
			expectStatus(t, rec, http.StatusUnauthorized)
		}
		rec := api.do(http.MethodPost, "/api/auth/login", `{"username":"ghost","password":"x"}`)
		expectStatus(t, rec, http.StatusTooManyRequests)
	})
}

func TestHealth(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(http.MethodGet, "/api/health", "")
	expectStatus(t, rec, http.StatusOK)
	if got := decodeBody[healthDTO](t, rec).Message; got != "Database connected" {
		t.Fatalf("unexpected health message: %q", got)
	}

	api.pingErr = errors.New("connection refused")
	rec = api.do(http.MethodGet, "/api/health", "")
	expectStatus(t, rec, http.StatusInternalServerError)
	if got := decodeBody[healthDTO](t, rec).Status; got != "error" {
		t.Fatalf("unexpected health status: %q", got)
	}
}

func TestRecoverPanic(t *testing.T) {
	handler := recoverPanic(logging.NewNop(), http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/clubs", nil))

	expectStatus(t, rec, http.StatusInternalServerError)
	if got := decodeError(t, rec); got != "internal server error" {
		t.Fatalf("unexpected error message: %q", got)
	}
}
