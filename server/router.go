package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"llamabot/server/agent"
	"llamabot/server/engine"
	"llamabot/server/llm"
	"llamabot/server/middleware"
	pb "llamabot/server/pb"
	"llamabot/server/store"
	"llamabot/server/wire"
)

const maxStateBytes = 1 << 20

// Journal records decisions. Nil disables journaling and the report endpoints
// return empty lists.
type Journal interface {
	InsertDecision(ctx context.Context, d store.Decision) (int64, error)
	RecentDecisions(ctx context.Context, limit int) ([]store.Decision, error)
	ActionMix(ctx context.Context) ([]store.ActionMix, error)
}

// Bot wires the move pipeline to its collaborators. Everything is set once
// at startup and only read afterwards.
type Bot struct {
	LLM     llm.Completer
	Model   string
	System  string
	Journal Journal
	Log     zerolog.Logger

	queue *journalQueue
}

// stageResponses maps a failing stage to the status and fixed error text the
// engine expects.
var stageResponses = map[agent.Stage]struct {
	status int
	msg    string
}{
	agent.StageDecode:   {http.StatusBadRequest, "Failed to parse protobuf message"},
	agent.StageUpstream: {http.StatusInternalServerError, "Failed to call Groq API"},
	agent.StageParse:    {http.StatusInternalServerError, "Failed to parse action message from response"},
	agent.StageEncode:   {http.StatusInternalServerError, "Failed to encode action message"},
}

// Router builds the HTTP surface. When bot.Journal is set it also starts the
// background journal writer; call bot.Drain on shutdown.
func Router(bot *Bot) http.Handler {
	if bot.Journal != nil && bot.queue == nil {
		bot.queue = newJournalQueue(bot.Journal, bot.Log, journalQueueSize)
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recover(bot.Log))
	r.Use(middleware.AccessLog(bot.Log))

	r.Post("/pocker_move", bot.handleMove)

	r.Get("/api/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	})
	r.Get("/api/decisions", bot.handleDecisions)
	r.Get("/api/action-mix", bot.handleActionMix)
	return r
}

// move is what one successful pass through the pipeline produced.
type move struct {
	state    *pb.ClientState
	decision agent.Decision
	reply    string
	payload  []byte
	latency  time.Duration
}

// decide runs decode → prompt → completion → parse → encode. Every failure
// comes back as an *agent.StageError.
func (b *Bot) decide(ctx context.Context, body []byte) (move, error) {
	var m move
	st, err := wire.UnmarshalClientState(body)
	if err != nil {
		return m, agent.Fail(agent.StageDecode, err)
	}
	m.state = st

	msgs := agent.BuildMessages(st, b.System)

	start := time.Now()
	reply, err := b.LLM.Complete(ctx, msgs)
	m.latency = time.Since(start)
	if err != nil {
		return m, agent.Fail(agent.StageUpstream, err)
	}
	m.reply = reply
	b.Log.Info().
		Str("rid", middleware.RequestIDFrom(ctx)).
		Str("reply", reply).
		Msg("model reply")

	d, err := agent.ParseDecision(reply)
	if err != nil {
		return m, agent.Fail(agent.StageParse, err)
	}
	m.decision = d
	if m.payload, err = wire.MarshalAction(d.Action()); err != nil {
		return m, agent.Fail(agent.StageEncode, err)
	}
	return m, nil
}

func (b *Bot) handleMove(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxStateBytes))
	if err != nil {
		writeStageError(w, agent.Fail(agent.StageDecode, err))
		return
	}
	m, err := b.decide(r.Context(), body)
	if err != nil {
		writeStageError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/octet-stream")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(m.payload)

	if b.queue != nil {
		b.queue.Enqueue(b.journalRow(middleware.RequestIDFrom(r.Context()), m))
	}
}

// Drain stops the journal writer after the rows already queued are written,
// or when ctx ends.
func (b *Bot) Drain(ctx context.Context) error {
	if b.queue == nil {
		return nil
	}
	return b.queue.Close(ctx)
}

func (b *Bot) journalRow(rid string, m move) store.Decision {
	st := m.state
	hand := engine.DescribeHero(st)
	row := store.Decision{
		RequestID:   rid,
		Model:       b.Model,
		LobbyID:     st.GetLobbyId(),
		PlayerID:    st.GetPlayerId(),
		HeroFound:   wire.Hero(st) != nil,
		HoleCards:   hand.Hole,
		BoardCards:  hand.Board,
		ActionType:  int32(m.decision.ActionType),
		Bet:         m.decision.Bet,
		Explanation: m.decision.Explanation,
		RawReply:    m.reply,
		LatencyMS:   m.latency.Milliseconds(),
	}
	if st.GetStreet() != nil {
		s := st.GetStreet().GetStreetStatus().String()
		row.Street = &s
	}
	if hand.Evaluated {
		desc, score := hand.Description, hand.Score
		row.HandDesc, row.HandScore = &desc, &score
	}
	return row
}

func (b *Bot) handleDecisions(w http.ResponseWriter, r *http.Request) {
	limit := 50
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			http.Error(w, "limit must be a positive integer", http.StatusBadRequest)
			return
		}
		limit = min(n, 500)
	}
	rows := []store.Decision{}
	if b.Journal != nil {
		got, err := b.Journal.RecentDecisions(r.Context(), limit)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		if got != nil {
			rows = got
		}
	}
	writeJSON(w, http.StatusOK, rows)
}

func (b *Bot) handleActionMix(w http.ResponseWriter, r *http.Request) {
	mix := []store.ActionMix{}
	if b.Journal != nil {
		got, err := b.Journal.ActionMix(r.Context())
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		if got != nil {
			mix = got
		}
	}
	writeJSON(w, http.StatusOK, mix)
}

type errorBody struct {
	Error   string `json:"error"`
	Details string `json:"details"`
}

func writeStageError(w http.ResponseWriter, err error) {
	var se *agent.StageError
	if !errors.As(err, &se) {
		se = &agent.StageError{Stage: agent.StageEncode, Err: err}
	}
	resp, ok := stageResponses[se.Stage]
	if !ok {
		resp.status, resp.msg = http.StatusInternalServerError, fmt.Sprintf("Failed at %s stage", se.Stage)
	}
	body, _ := json.Marshal(errorBody{Error: resp.msg, Details: se.Error()})
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(resp.status)
	_, _ = w.Write(body)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}
