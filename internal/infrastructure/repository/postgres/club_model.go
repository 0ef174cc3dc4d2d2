package postgres

import "database/sql"

type clubTableModel struct {
	ID            int64          `db:"club_id"`
	Name          string         `db:"club_name"`
	FoundedYear   int            `db:"founded_year"`
	OwnerName     sql.NullString `db:"owner_name"`
	Email         sql.NullString `db:"club_email"`
	TotalTrophies int            `db:"total_trophies"`
}

// clubWriteModel carries the columns a client may set; the id is server generated.
type clubWriteModel struct {
	Name          string         `db:"club_name"`
	FoundedYear   int            `db:"founded_year"`
	OwnerName     sql.NullString `db:"owner_name"`
	Email         sql.NullString `db:"club_email"`
	TotalTrophies int            `db:"total_trophies"`
}
