package postgres

import "time"

type matchTableModel struct {
	ID         int64     `db:"match_id"`
	Type       string    `db:"match_type"`
	Date       time.Time `db:"match_date"`
	HomeClubID int64     `db:"home_club_id"`
	AwayClubID int64     `db:"away_club_id"`
	HomeScore  int       `db:"home_score"`
	AwayScore  int       `db:"away_score"`
	StadiumID  int64     `db:"stadium_id"`
}

type matchWriteModel struct {
	Type       string    `db:"match_type"`
	Date       time.Time `db:"match_date"`
	HomeClubID int64     `db:"home_club_id"`
	AwayClubID int64     `db:"away_club_id"`
	HomeScore  int       `db:"home_score"`
	AwayScore  int       `db:"away_score"`
	StadiumID  int64     `db:"stadium_id"`
}

type matchDetailModel struct {
	ID          int64     `db:"match_id"`
	Type        string    `db:"match_type"`
	Date        time.Time `db:"match_date"`
	HomeTeam    string    `db:"home_team"`
	AwayTeam    string    `db:"away_team"`
	HomeScore   int       `db:"home_score"`
	AwayScore   int       `db:"away_score"`
	StadiumName string    `db:"stadium_name"`
}

type fixtureModel struct {
	MatchID   int64     `db:"match_id"`
	Date      time.Time `db:"match_date"`
	HomeTeam  string    `db:"home_team"`
	AwayTeam  string    `db:"away_team"`
	HomeScore int       `db:"home_score"`
	AwayScore int       `db:"away_score"`
}

type statsModel struct {
	TotalPlayers  int64 `db:"total_players"`
	TotalClubs    int64 `db:"total_clubs"`
	TotalTrophies int64 `db:"total_trophies"`
	TotalMatches  int64 `db:"total_matches"`
}
