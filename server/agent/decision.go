package agent

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	pb "llamabot/server/pb"
	"llamabot/server/wire"
)

var (
	ErrNotObject     = errors.New("reply is not a JSON object")
	ErrMissingField  = errors.New("missing field")
	ErrNotInteger    = errors.New("not an integer")
	ErrActionInvalid = errors.New("action_type out of range")
)

// Decision is the move extracted from a model reply.
type Decision struct {
	ActionType  pb.ActionType `json:"action_type"`
	Bet         int32         `json:"bet"`
	Explanation string        `json:"explanation,omitempty"`
}

// Action returns the wire message sent back to the engine. Only the move and
// the bet are populated.
func (d Decision) Action() *pb.Action {
	return &pb.Action{ActionType: d.ActionType, Bet: d.Bet}
}

// ParseDecision reads the model reply as a JSON object and coerces
// action_type and bet to integers. Numbers and numeric strings are accepted;
// action_type must name one of Fold, Call, Raise or Check.
func ParseDecision(text string) (Decision, error) {
	dec := json.NewDecoder(strings.NewReader(text))
	dec.UseNumber()
	var parsed map[string]any
	if err := dec.Decode(&parsed); err != nil {
		return Decision{}, fmt.Errorf("invalid JSON: %w", err)
	}
	if dec.More() {
		return Decision{}, errors.New("invalid JSON: trailing data after object")
	}
	if parsed == nil {
		return Decision{}, ErrNotObject
	}

	act, err := intField(parsed, "action_type")
	if err != nil {
		return Decision{}, err
	}
	bet, err := intField(parsed, "bet")
	if err != nil {
		return Decision{}, err
	}
	d := Decision{ActionType: pb.ActionType(act), Bet: bet}
	if !wire.ValidAction(d.ActionType) {
		return Decision{}, fmt.Errorf("%w: %d (want 0=Fold, 1=Call, 2=Raise, 3=Check)", ErrActionInvalid, act)
	}
	if s, ok := parsed["explanation"].(string); ok {
		d.Explanation = s
	}
	return d, nil
}

func intField(m map[string]any, key string) (int32, error) {
	raw, ok := m[key]
	if !ok || raw == nil {
		return 0, fmt.Errorf("%w %q", ErrMissingField, key)
	}
	n, err := coerceInt(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	if n < math.MinInt32 || n > math.MaxInt32 {
		return 0, fmt.Errorf("%s: %d does not fit in int32", key, n)
	}
	return int32(n), nil
}

// coerceInt follows int() semantics: fractional numbers truncate toward zero,
// strings must hold a base-10 integer.
func coerceInt(v any) (int64, error) {
	switch t := v.(type) {
	case json.Number:
		if n, err := t.Int64(); err == nil {
			return n, nil
		}
		f, err := t.Float64()
		if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
			return 0, fmt.Errorf("%w: %s", ErrNotInteger, t)
		}
		f = math.Trunc(f)
		if f < math.MinInt64 || f >= math.MaxInt64 {
			return 0, fmt.Errorf("%w: %s overflows", ErrNotInteger, t)
		}
		return int64(f), nil
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(t), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrNotInteger, t)
		}
		return n, nil
	case bool:
		// int(True) would give 1; a boolean bet or action is treated as a
		// malformed reply instead.
		return 0, fmt.Errorf("%w: boolean %v", ErrNotInteger, t)
	default:
		return 0, fmt.Errorf("%w: %v", ErrNotInteger, v)
	}
}
