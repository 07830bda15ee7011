package store

import (
	"context"
	"os"
	"testing"
)

// Runs against a throwaway database: STORE_TEST_DATABASE_URL=postgres://... go test ./server/store
func openTestDB(t *testing.T) *DB {
	t.Helper()
	dsn := os.Getenv("STORE_TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("STORE_TEST_DATABASE_URL not set")
	}
	ctx := context.Background()
	db, err := Open(ctx, dsn)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(db.Close)
	if err := Migrate(ctx, db); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	if _, err := db.Exec(ctx, `TRUNCATE decisions`); err != nil {
		t.Fatalf("truncate: %v", err)
	}
	return db
}

func TestInsertAndReadDecisions(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	street := "Flop"
	desc, score := "flush", 5000
	for i, act := range []int32{2, 1, 2} {
		d := Decision{
			RequestID:  "rid",
			Model:      "llama3-70b-8192",
			LobbyID:    7,
			PlayerID:   int32(i),
			Street:     &street,
			HeroFound:  true,
			HoleCards:  []string{"As", "Ks"},
			BoardCards: []string{"Qs", "Js", "Ts"},
			HandDesc:   &desc,
			HandScore:  &score,
			ActionType: act,
			Bet:        100,
			RawReply:   `{"action_type":2,"bet":100}`,
			LatencyMS:  420,
		}
		if _, err := db.InsertDecision(ctx, d); err != nil {
			t.Fatalf("InsertDecision: %v", err)
		}
	}
	if _, err := db.InsertDecision(ctx, Decision{Model: "llama3-70b-8192", RawReply: "{}"}); err != nil {
		t.Fatalf("InsertDecision with nil slices: %v", err)
	}

	rows, err := db.RecentDecisions(ctx, 2)
	if err != nil {
		t.Fatalf("RecentDecisions: %v", err)
	}
	if len(rows) != 2 || rows[0].ID < rows[1].ID {
		t.Fatalf("expected two rows newest first, got %+v", rows)
	}
	if rows[1].HandDesc == nil || *rows[1].HandDesc != "flush" || len(rows[1].HoleCards) != 2 {
		t.Fatalf("unexpected row: %+v", rows[1])
	}

	mix, err := db.ActionMix(ctx)
	if err != nil {
		t.Fatalf("ActionMix: %v", err)
	}
	if len(mix) != 1 || mix[0].Raise != 2 || mix[0].Call != 1 || mix[0].Fold != 1 || mix[0].Total != 4 {
		t.Fatalf("unexpected mix: %+v", mix)
	}
}
