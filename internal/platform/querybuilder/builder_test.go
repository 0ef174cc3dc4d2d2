package querybuilder

import "testing"

func TestSelectBuilder(t *testing.T) {
	query, args, err := Select("club_id", "club_name").
		From("club").
		Where(Eq("owner_name", "Joan"), Expr("club_email IS NULL")).
		OrderBy("club_name ASC").
		Limit(10).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT club_id, club_name FROM club WHERE owner_name = $1 AND club_email IS NULL ORDER BY club_name ASC LIMIT 10"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 1 || args[0] != "Joan" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestSelectBuilder_JoinsAndTypedPredicates(t *testing.T) {
	query, args, err := Select("p.player_id").
		From("player p").
		LeftJoin("club c ON p.club_id = c.club_id").
		Where(
			True(),
			Cmp("c.total_trophies", OpGte, 5),
			Cmp("p.f_name", OpILike, "Jo%"),
			Cmp("p.dob", OpLte, "2000-01-01"),
		).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT p.player_id FROM player p LEFT JOIN club c ON p.club_id = c.club_id " +
		"WHERE 1=1 AND c.total_trophies >= $1 AND p.f_name ILIKE $2 AND p.dob <= $3"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 3 || args[0] != 5 || args[1] != "Jo%" || args[2] != "2000-01-01" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestSelectBuilder_RequiresTable(t *testing.T) {
	if _, _, err := Select("1").ToSQL(); err == nil {
		t.Fatalf("expected error for missing table")
	}
}

func TestInsertBuilder(t *testing.T) {
	query, args, err := InsertInto("club").
		Columns("club_name", "founded_year").
		Values("Arsenal", 1886).
		Suffix("RETURNING club_id").
		ToSQL()
	if err != nil {
		t.Fatalf("build insert query: %v", err)
	}

	wantQuery := "INSERT INTO club (club_name, founded_year) VALUES ($1, $2) RETURNING club_id"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != "Arsenal" || args[1] != 1886 {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestUpdateBuilder(t *testing.T) {
	query, args, err := Update("club").
		Set("club_name", "new").
		Set("total_trophies", 3).
		Where(Eq("club_id", int64(7))).
		ToSQL()
	if err != nil {
		t.Fatalf("build update query: %v", err)
	}

	wantQuery := "UPDATE club SET club_name = $1, total_trophies = $2 WHERE club_id = $3"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 3 || args[0] != "new" || args[1] != 3 || args[2] != int64(7) {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestUpdateAndDeleteRequireWhere(t *testing.T) {
	if _, _, err := Update("club").Set("club_name", "x").ToSQL(); err == nil {
		t.Fatalf("expected error for update without where")
	}
	if _, _, err := DeleteFrom("club").ToSQL(); err == nil {
		t.Fatalf("expected error for delete without where")
	}
}

func TestDeleteBuilder(t *testing.T) {
	query, args, err := DeleteFrom("matches").Where(Eq("match_id", int64(3))).ToSQL()
	if err != nil {
		t.Fatalf("build delete query: %v", err)
	}
	if query != "DELETE FROM matches WHERE match_id = $1" {
		t.Fatalf("unexpected query: %s", query)
	}
	if len(args) != 1 || args[0] != int64(3) {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestExprPlaceholderRewrite(t *testing.T) {
	query, args, err := Select("*").From("player").
		Where(Eq("position", "Forward"), Expr("EXTRACT(YEAR FROM AGE(CURRENT_DATE, dob)) BETWEEN ? AND ?", 18, 30)).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT * FROM player WHERE position = $1 AND EXTRACT(YEAR FROM AGE(CURRENT_DATE, dob)) BETWEEN $2 AND $3"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 3 {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestEscapeLike(t *testing.T) {
	if got := EscapeLike(`50%_off\`); got != `50\%\_off\\` {
		t.Fatalf("unexpected escaped value: %s", got)
	}
}

func TestInsertAndUpdateModel(t *testing.T) {
	type row struct {
		Name    string `db:"club_name"`
		Founded int    `db:"founded_year"`
		skipped string
		Ignored string `db:"-"`
	}

	query, args, err := InsertModel("club", row{Name: "Ajax", Founded: 1900}, "RETURNING club_id")
	if err != nil {
		t.Fatalf("insert model: %v", err)
	}
	if query != "INSERT INTO club (club_name, founded_year) VALUES ($1, $2) RETURNING club_id" {
		t.Fatalf("unexpected insert query: %s", query)
	}
	if len(args) != 2 {
		t.Fatalf("unexpected insert args: %+v", args)
	}

	query, args, err = UpdateModel("club", &row{Name: "Ajax", Founded: 1900}, Eq("club_id", 1))
	if err != nil {
		t.Fatalf("update model: %v", err)
	}
	if query != "UPDATE club SET club_name = $1, founded_year = $2 WHERE club_id = $3" {
		t.Fatalf("unexpected update query: %s", query)
	}
	if len(args) != 3 || args[2] != 1 {
		t.Fatalf("unexpected update args: %+v", args)
	}

	if _, _, err := InsertModel("club", (*row)(nil), ""); err == nil {
		t.Fatalf("expected error for nil model")
	}
}
