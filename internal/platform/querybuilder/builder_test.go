package querybuilder

import "testing"

func TestSelectBuilder(t *testing.T) {
	query, args, err := Select("public_id", "name").
		From("leagues").
		Where(Eq("secretary_id", "u1"), IsNull("deleted_at")).
		OrderBy("id").
		Limit(10).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT public_id, name FROM leagues WHERE secretary_id = $1 AND deleted_at IS NULL ORDER BY id LIMIT 10"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 1 || args[0] != "u1" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestSelectBuilderLockingWithExpr(t *testing.T) {
	query, args, err := Select("public_id").
		From("weeks").
		Where(Eq("public_id", "wk-1"), Expr("week_number <> ?", 3)).
		Limit(1).
		Suffix("FOR UPDATE").
		ToSQL()
	if err != nil {
		t.Fatalf("build locking select query: %v", err)
	}

	wantQuery := "SELECT public_id FROM weeks WHERE public_id = $1 AND week_number <> $2 LIMIT 1 FOR UPDATE"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != "wk-1" || args[1] != 3 {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertBuilder(t *testing.T) {
	query, args, err := InsertInto("weeks").
		Columns("league_public_id", "week_number").
		Values("lg-1", 3).
		Suffix("RETURNING id").
		ToSQL()
	if err != nil {
		t.Fatalf("build insert query: %v", err)
	}

	wantQuery := "INSERT INTO weeks (league_public_id, week_number) VALUES ($1, $2) RETURNING id"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != "lg-1" || args[1] != 3 {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestUpdateBuilder(t *testing.T) {
	query, args, err := Update("team_definitions").
		Set("name", "Pin Pals").
		SetExpr("updated_at", "NOW()").
		Where(Eq("public_id", "tm-1")).
		ToSQL()
	if err != nil {
		t.Fatalf("build update query: %v", err)
	}

	wantQuery := "UPDATE team_definitions SET name = $1, updated_at = NOW() WHERE public_id = $2"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != "Pin Pals" || args[1] != "tm-1" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestDeleteBuilder(t *testing.T) {
	query, args, err := DeleteFrom("weeks").
		Where(Eq("league_public_id", "lg-1"), Compare("week_number", ">", 30)).
		ToSQL()
	if err != nil {
		t.Fatalf("build delete query: %v", err)
	}

	wantQuery := "DELETE FROM weeks WHERE league_public_id = $1 AND week_number > $2"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != "lg-1" || args[1] != 30 {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestDeleteBuilderRequiresWhere(t *testing.T) {
	if _, _, err := DeleteFrom("weeks").ToSQL(); err == nil {
		t.Fatalf("expected error for unscoped delete")
	}
}

func TestInsertModelSkipsUntaggedFields(t *testing.T) {
	type row struct {
		PublicID string `db:"public_id"`
		Name     string `db:"name"`
		Scratch  int    `db:"-"`
		internal string
	}

	query, args, err := InsertModel("team_definitions", row{PublicID: "tm-1", Name: "Strikers", Scratch: 1, internal: "x"}, "")
	if err != nil {
		t.Fatalf("build insert model query: %v", err)
	}
	wantQuery := "INSERT INTO team_definitions (public_id, name) VALUES ($1, $2)"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 {
		t.Fatalf("unexpected args: %+v", args)
	}
}
