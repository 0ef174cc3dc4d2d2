package postgres

import "time"

type contractDetailModel struct {
	ID         int64     `db:"contract_id"`
	StartDate  time.Time `db:"start_date"`
	EndDate    time.Time `db:"end_date"`
	Salary     float64   `db:"salary"`
	PlayerID   int64     `db:"player_id"`
	PlayerName string    `db:"player_name"`
	ClubID     int64     `db:"club_id"`
	ClubName   string    `db:"club_name"`
}

type contractWriteModel struct {
	StartDate time.Time `db:"start_date"`
	EndDate   time.Time `db:"end_date"`
	Salary    float64   `db:"salary"`
	PlayerID  int64     `db:"player_id"`
	ClubID    int64     `db:"club_id"`
}
