package httpapi

import (
	"github.com/riskibarqy/club-manager/internal/domain/club"
	"github.com/riskibarqy/club-manager/internal/domain/contract"
	"github.com/riskibarqy/club-manager/internal/domain/dashboard"
	"github.com/riskibarqy/club-manager/internal/domain/match"
	"github.com/riskibarqy/club-manager/internal/domain/player"
	"github.com/riskibarqy/club-manager/internal/domain/stadium"
	"github.com/riskibarqy/club-manager/internal/domain/user"
	"github.com/riskibarqy/club-manager/internal/usecase"
)

type clubRequest struct {
	ClubName      string  `json:"club_name" validate:"required,max=100"`
	FoundedYear   flexInt `json:"founded_year" validate:"required"`
	OwnerName     string  `json:"owner_name" validate:"omitempty,max=100"`
	ClubEmail     string  `json:"club_email" validate:"omitempty,email,max=100"`
	TotalTrophies flexInt `json:"total_trophies" validate:"omitempty,min=0"`
}

// toDomain stores 0 trophies when the count is omitted on create.
func (r clubRequest) toDomain() club.Club {
	c := club.Club{
		Name:        r.ClubName,
		FoundedYear: int(r.FoundedYear.Value),
		OwnerName:   r.OwnerName,
		Email:       r.ClubEmail,
	}
	if r.TotalTrophies.Set {
		c.TotalTrophies = int(r.TotalTrophies.Value)
	}
	return c
}

// toEdit keeps the stored trophy count when the field is omitted.
func (r clubRequest) toEdit(id int64) club.Edit {
	return club.Edit{
		ID:            id,
		Name:          r.ClubName,
		FoundedYear:   int(r.FoundedYear.Value),
		OwnerName:     r.OwnerName,
		Email:         r.ClubEmail,
		TotalTrophies: r.TotalTrophies.intPtr(),
	}
}

type clubDTO struct {
	ClubID        int64  `json:"club_id"`
	ClubName      string `json:"club_name"`
	FoundedYear   int    `json:"founded_year"`
	OwnerName     string `json:"owner_name"`
	ClubEmail     string `json:"club_email"`
	TotalTrophies int    `json:"total_trophies"`
}

func clubToDTO(c club.Club) clubDTO {
	return clubDTO{
		ClubID:        c.ID,
		ClubName:      c.Name,
		FoundedYear:   c.FoundedYear,
		OwnerName:     c.OwnerName,
		ClubEmail:     c.Email,
		TotalTrophies: c.TotalTrophies,
	}
}

type playerRequest struct {
	FName    string     `json:"f_name" validate:"required,max=50"`
	LName    string     `json:"l_name" validate:"required,max=50"`
	DOB      jsonDate   `json:"dob"`
	Position string     `json:"position" validate:"required"`
	City     string     `json:"city" validate:"omitempty,max=50"`
	State    string     `json:"state" validate:"omitempty,max=50"`
	Pincode  string     `json:"pincode" validate:"omitempty,max=10"`
	ClubID   optionalID `json:"club_id"`
}

func (r playerRequest) toDomain(id int64) player.Player {
	return player.Player{
		ID:          id,
		FirstName:   r.FName,
		LastName:    r.LName,
		DateOfBirth: r.DOB.Time,
		Position:    player.Position(r.Position),
		City:        r.City,
		State:       r.State,
		Pincode:     r.Pincode,
		ClubID:      r.ClubID.Value,
	}
}

type playerDTO struct {
	PlayerID int64  `json:"player_id"`
	FName    string `json:"f_name"`
	LName    string `json:"l_name"`
	DOB      string `json:"dob"`
	Position string `json:"position"`
	City     string `json:"city"`
	State    string `json:"state"`
	Pincode  string `json:"pincode"`
	ClubID   *int64 `json:"club_id"`
}

func playerToDTO(p player.Player) playerDTO {
	return playerDTO{
		PlayerID: p.ID,
		FName:    p.FirstName,
		LName:    p.LastName,
		DOB:      formatDate(p.DateOfBirth),
		Position: string(p.Position),
		City:     p.City,
		State:    p.State,
		Pincode:  p.Pincode,
		ClubID:   p.ClubID,
	}
}

type rosterEntryDTO struct {
	PlayerID      int64  `json:"player_id"`
	FullName      string `json:"full_name"`
	AgeCalculated int    `json:"age_calculated"`
	Position      string `json:"position"`
	ClubID        *int64 `json:"club_id"`
	ClubName      string `json:"club_name"`
}

type searchResultDTO struct {
	PlayerID     int64   `json:"player_id"`
	FullName     string  `json:"full_name"`
	Age          int     `json:"age"`
	Position     string  `json:"position"`
	ClubName     string  `json:"club_name"`
	ClubTrophies int     `json:"club_trophies"`
	Salary       float64 `json:"salary"`
}

type contractRequest struct {
	StartDate jsonDate  `json:"start_date"`
	EndDate   jsonDate  `json:"end_date"`
	Salary    flexFloat `json:"salary" validate:"omitempty,gte=0"`
	PlayerID  flexInt   `json:"player_id" validate:"required,gt=0"`
	ClubID    flexInt   `json:"club_id" validate:"required,gt=0"`
}

func (r contractRequest) toDomain(id int64) contract.Contract {
	return contract.Contract{
		ID:        id,
		StartDate: r.StartDate.Time,
		EndDate:   r.EndDate.Time,
		Salary:    r.Salary.Value,
		PlayerID:  r.PlayerID.Value,
		ClubID:    r.ClubID.Value,
	}
}

type contractDTO struct {
	ContractID int64   `json:"contract_id"`
	StartDate  string  `json:"start_date"`
	EndDate    string  `json:"end_date"`
	Salary     float64 `json:"salary"`
	PlayerID   int64   `json:"player_id"`
	PlayerName string  `json:"player_name"`
	ClubID     int64   `json:"club_id"`
	ClubName   string  `json:"club_name"`
}

func contractToDTO(c contract.Detail) contractDTO {
	return contractDTO{
		ContractID: c.ID,
		StartDate:  formatDate(c.StartDate),
		EndDate:    formatDate(c.EndDate),
		Salary:     c.Salary,
		PlayerID:   c.PlayerID,
		PlayerName: c.PlayerName,
		ClubID:     c.ClubID,
		ClubName:   c.ClubName,
	}
}

type matchRequest struct {
	MatchType  string   `json:"match_type" validate:"required"`
	MatchDate  jsonDate `json:"match_date"`
	HomeClubID flexInt  `json:"home_club_id" validate:"required,gt=0"`
	AwayClubID flexInt  `json:"away_club_id" validate:"required,gt=0"`
	HomeScore  flexInt  `json:"home_score" validate:"omitempty,min=0"`
	AwayScore  flexInt  `json:"away_score" validate:"omitempty,min=0"`
	StadiumID  flexInt  `json:"stadium_id" validate:"required,gt=0"`
}

// toDomain defaults missing scores to 0.
func (r matchRequest) toDomain(id int64) match.Match {
	return match.Match{
		ID:         id,
		Type:       match.Type(r.MatchType),
		Date:       r.MatchDate.Time,
		HomeClubID: r.HomeClubID.Value,
		AwayClubID: r.AwayClubID.Value,
		HomeScore:  int(r.HomeScore.Value),
		AwayScore:  int(r.AwayScore.Value),
		StadiumID:  r.StadiumID.Value,
	}
}

type matchDetailDTO struct {
	MatchID     int64  `json:"match_id"`
	MatchType   string `json:"match_type"`
	MatchDate   string `json:"match_date"`
	HomeTeam    string `json:"home_team"`
	AwayTeam    string `json:"away_team"`
	HomeScore   int    `json:"home_score"`
	AwayScore   int    `json:"away_score"`
	StadiumName string `json:"stadium_name"`
}

type matchDTO struct {
	MatchID    int64  `json:"match_id"`
	MatchType  string `json:"match_type"`
	MatchDate  string `json:"match_date"`
	HomeClubID int64  `json:"home_club_id"`
	AwayClubID int64  `json:"away_club_id"`
	HomeScore  int    `json:"home_score"`
	AwayScore  int    `json:"away_score"`
	StadiumID  int64  `json:"stadium_id"`
}

func matchToDTO(m match.Match) matchDTO {
	return matchDTO{
		MatchID:    m.ID,
		MatchType:  string(m.Type),
		MatchDate:  formatDate(m.Date),
		HomeClubID: m.HomeClubID,
		AwayClubID: m.AwayClubID,
		HomeScore:  m.HomeScore,
		AwayScore:  m.AwayScore,
		StadiumID:  m.StadiumID,
	}
}

type stadiumDTO struct {
	StadiumID   int64  `json:"stadium_id"`
	StadiumName string `json:"stadium_name"`
	City        string `json:"city"`
	Capacity    int    `json:"capacity"`
}

func stadiumToDTO(s stadium.Stadium) stadiumDTO {
	return stadiumDTO{StadiumID: s.ID, StadiumName: s.Name, City: s.City, Capacity: s.Capacity}
}

type dashboardStatsDTO struct {
	TotalPlayers  int64 `json:"total_players"`
	TotalClubs    int64 `json:"total_clubs"`
	TotalTrophies int64 `json:"total_trophies"`
	TotalMatches  int64 `json:"total_matches"`
}

type upcomingFixtureDTO struct {
	MatchID       int64  `json:"match_id"`
	FormattedDate string `json:"formatted_date"`
	HomeTeam      string `json:"home_team"`
	AwayTeam      string `json:"away_team"`
}

type recentFixtureDTO struct {
	MatchID       int64  `json:"match_id"`
	FormattedDate string `json:"formatted_date"`
	HomeTeam      string `json:"home_team"`
	AwayTeam      string `json:"away_team"`
	HomeScore     int    `json:"home_score"`
	AwayScore     int    `json:"away_score"`
}

type dashboardDTO struct {
	Stats    dashboardStatsDTO    `json:"stats"`
	Upcoming []upcomingFixtureDTO `json:"upcoming"`
	Recent   []recentFixtureDTO   `json:"recent"`
}

func dashboardToDTO(d usecase.Dashboard) dashboardDTO {
	out := dashboardDTO{
		Stats: dashboardStatsDTO{
			TotalPlayers:  d.Stats.TotalPlayers,
			TotalClubs:    d.Stats.TotalClubs,
			TotalTrophies: d.Stats.TotalTrophies,
			TotalMatches:  d.Stats.TotalMatches,
		},
		Upcoming: make([]upcomingFixtureDTO, 0, len(d.Upcoming)),
		Recent:   make([]recentFixtureDTO, 0, len(d.Recent)),
	}
	for _, f := range d.Upcoming {
		out.Upcoming = append(out.Upcoming, upcomingFixtureDTO{
			MatchID:       f.MatchID,
			FormattedDate: longDate(f),
			HomeTeam:      f.HomeTeam,
			AwayTeam:      f.AwayTeam,
		})
	}
	for _, f := range d.Recent {
		out.Recent = append(out.Recent, recentFixtureDTO{
			MatchID:       f.MatchID,
			FormattedDate: longDate(f),
			HomeTeam:      f.HomeTeam,
			AwayTeam:      f.AwayTeam,
			HomeScore:     f.HomeScore,
			AwayScore:     f.AwayScore,
		})
	}
	return out
}

func longDate(f dashboard.Fixture) string {
	if f.Date.IsZero() {
		return ""
	}
	return f.Date.Format(longDateLayout)
}

type loginRequest struct {
	Username string `json:"username" validate:"required,max=50"`
	Password string `json:"password" validate:"required,max=72"`
}

type loginDTO struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

func loginToDTO(u user.User) loginDTO {
	return loginDTO{UserID: u.ID, Username: u.Username, Role: string(u.Role)}
}

type healthDTO struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
