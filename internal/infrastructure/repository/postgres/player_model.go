package postgres

import (
	"database/sql"
	"time"
)

type playerTableModel struct {
	ID          int64          `db:"player_id"`
	FirstName   string         `db:"f_name"`
	LastName    string         `db:"l_name"`
	DateOfBirth time.Time      `db:"dob"`
	Position    string         `db:"position"`
	City        sql.NullString `db:"city"`
	State       sql.NullString `db:"state"`
	Pincode     sql.NullString `db:"pincode"`
	ClubID      sql.NullInt64  `db:"club_id"`
}

type playerWriteModel struct {
	FirstName   string         `db:"f_name"`
	LastName    string         `db:"l_name"`
	DateOfBirth time.Time      `db:"dob"`
	Position    string         `db:"position"`
	City        sql.NullString `db:"city"`
	State       sql.NullString `db:"state"`
	Pincode     sql.NullString `db:"pincode"`
	ClubID      sql.NullInt64  `db:"club_id"`
}

type playerRosterModel struct {
	ID       int64         `db:"player_id"`
	FullName string        `db:"full_name"`
	Age      int           `db:"age_calculated"`
	Position string        `db:"position"`
	ClubID   sql.NullInt64 `db:"club_id"`
	ClubName string        `db:"club_name"`
}

type playerSearchModel struct {
	ID           int64   `db:"player_id"`
	FullName     string  `db:"full_name"`
	Age          int     `db:"age"`
	Position     string  `db:"position"`
	ClubName     string  `db:"club_name"`
	ClubTrophies int     `db:"club_trophies"`
	Salary       float64 `db:"salary"`
}
