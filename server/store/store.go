package store

import (
	"context"
	"embed"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

//go:embed schema.sql
var schema embed.FS

type DB struct{ *pgxpool.Pool }

func Open(ctx context.Context, dsn string) (*DB, error) {
	p, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, err
	}
	return &DB{p}, nil
}

func (db *DB) Close()                         { db.Pool.Close() }
func (db *DB) Ping(ctx context.Context) error { return db.Pool.Ping(ctx) }

func Migrate(ctx context.Context, db *DB) error {
	sqlBytes, err := schema.ReadFile("schema.sql")
	if err != nil {
		return err
	}
	_, err = db.Exec(ctx, string(sqlBytes))
	return err
}

// Decision is one journaled move. HandDesc and HandScore are nil until the
// hero's hand could be evaluated.
type Decision struct {
	ID          int64     `json:"id"`
	CreatedAt   time.Time `json:"created_at"`
	RequestID   string    `json:"request_id"`
	Model       string    `json:"model"`
	LobbyID     int32     `json:"lobby_id"`
	PlayerID    int32     `json:"player_id"`
	Street      *string   `json:"street"`
	HeroFound   bool      `json:"hero_found"`
	HoleCards   []string  `json:"hole_cards"`
	BoardCards  []string  `json:"board_cards"`
	HandDesc    *string   `json:"hand_desc"`
	HandScore   *int      `json:"hand_score"`
	ActionType  int32     `json:"action_type"`
	Bet         int32     `json:"bet"`
	Explanation string    `json:"explanation"`
	RawReply    string    `json:"raw_reply"`
	LatencyMS   int64     `json:"latency_ms"`
}

func (db *DB) InsertDecision(ctx context.Context, d Decision) (int64, error) {
	if d.HoleCards == nil {
		d.HoleCards = []string{}
	}
	if d.BoardCards == nil {
		d.BoardCards = []string{}
	}
	var id int64
	err := db.QueryRow(ctx, `
		INSERT INTO decisions(request_id, model, lobby_id, player_id, street, hero_found,
		                      hole_cards, board_cards, hand_desc, hand_score,
		                      action_type, bet, explanation, raw_reply, latency_ms)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15)
		RETURNING id
	`, d.RequestID, d.Model, d.LobbyID, d.PlayerID, d.Street, d.HeroFound,
		d.HoleCards, d.BoardCards, d.HandDesc, d.HandScore,
		d.ActionType, d.Bet, d.Explanation, d.RawReply, d.LatencyMS).Scan(&id)
	return id, err
}

// RecentDecisions returns the newest rows first.
func (db *DB) RecentDecisions(ctx context.Context, limit int) ([]Decision, error) {
	rows, err := db.Query(ctx, `
		SELECT id, created_at, request_id, model, lobby_id, player_id, street, hero_found,
		       hole_cards, board_cards, hand_desc, hand_score,
		       action_type, bet, explanation, raw_reply, latency_ms
		  FROM decisions
		 ORDER BY id DESC
		 LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (Decision, error) {
		var d Decision
		err := row.Scan(&d.ID, &d.CreatedAt, &d.RequestID, &d.Model, &d.LobbyID, &d.PlayerID, &d.Street, &d.HeroFound,
			&d.HoleCards, &d.BoardCards, &d.HandDesc, &d.HandScore,
			&d.ActionType, &d.Bet, &d.Explanation, &d.RawReply, &d.LatencyMS)
		return d, err
	})
}

type ActionMix struct {
	Model string `json:"model"`
	Fold  int    `json:"fold_ct"`
	Call  int    `json:"call_ct"`
	Raise int    `json:"raise_ct"`
	Check int    `json:"check_ct"`
	Total int    `json:"total_actions"`
}

func (db *DB) ActionMix(ctx context.Context) ([]ActionMix, error) {
	rows, err := db.Query(ctx, `
		SELECT model, fold_ct, call_ct, raise_ct, check_ct, total_actions
		  FROM v_decision_action_mix
		 ORDER BY model
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	mix := []ActionMix{}
	for rows.Next() {
		var m ActionMix
		if err := rows.Scan(&m.Model, &m.Fold, &m.Call, &m.Raise, &m.Check, &m.Total); err != nil {
			return nil, err
		}
		mix = append(mix, m)
	}
	return mix, rows.Err()
}
