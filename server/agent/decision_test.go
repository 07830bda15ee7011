package agent

import (
	"errors"
	"testing"

	pb "llamabot/server/pb"
)

func TestParseDecision(t *testing.T) {
	cases := []struct {
		in   string
		want Decision
	}{
		{`{"action_type": 2, "bet": 150, "explanation": "bluffing"}`, Decision{ActionType: pb.ActionType_Raise, Bet: 150, Explanation: "bluffing"}},
		{`{"action_type": "1", "bet": "50"}`, Decision{ActionType: pb.ActionType_Call, Bet: 50}},
		{`{"action_type": 3, "bet": 0.9}`, Decision{ActionType: pb.ActionType_Check, Bet: 0}},
		{`{"action_type": 0, "bet": -12.5, "explanation": 7}`, Decision{ActionType: pb.ActionType_Fold, Bet: -12}},
		{` {"action_type": " 2 ", "bet": 1e2} `, Decision{ActionType: pb.ActionType_Raise, Bet: 100}},
	}
	for _, c := range cases {
		got, err := ParseDecision(c.in)
		if err != nil {
			t.Fatalf("ParseDecision(%s) returned error: %v", c.in, err)
		}
		if got != c.want {
			t.Fatalf("ParseDecision(%s) = %+v, want %+v", c.in, got, c.want)
		}
	}
}

func TestParseDecisionErrors(t *testing.T) {
	cases := map[string]error{
		`not json`:                              nil,
		`{"action_type": 1} trailing`:           nil,
		`null`:                                  ErrNotObject,
		`{"bet": 10}`:                           ErrMissingField,
		`{"action_type": 1}`:                    ErrMissingField,
		`{"action_type": null, "bet": 1}`:       ErrMissingField,
		`{"action_type": "raise", "bet": 10}`:   ErrNotInteger,
		`{"action_type": 1, "bet": "1.5"}`:      ErrNotInteger,
		`{"action_type": true, "bet": 1}`:       ErrNotInteger,
		`{"action_type": 7, "bet": 10}`:         ErrActionInvalid,
		`{"action_type": -1, "bet": 10}`:        ErrActionInvalid,
		`{"action_type": 1, "bet": 3000000000}`: nil,
	}
	for in, want := range cases {
		_, err := ParseDecision(in)
		if err == nil {
			t.Fatalf("ParseDecision(%s) should fail", in)
		}
		if want != nil && !errors.Is(err, want) {
			t.Fatalf("ParseDecision(%s) error = %v, want %v", in, err, want)
		}
	}
}

func TestDecisionAction(t *testing.T) {
	a := Decision{ActionType: pb.ActionType_Raise, Bet: 150, Explanation: "x"}.Action()
	if a.ActionType != pb.ActionType_Raise || a.Bet != 150 || a.PlayerId != 0 || a.StreetStatus != nil {
		t.Fatalf("unexpected action: %v", a)
	}
}

func TestStageError(t *testing.T) {
	cause := errors.New("boom")
	err := Fail(StageUpstream, cause)
	var se *StageError
	if !errors.As(err, &se) || se.Stage != StageUpstream {
		t.Fatalf("expected upstream StageError, got %v", err)
	}
	if err.Error() != "boom" || !errors.Is(err, cause) {
		t.Fatalf("StageError should pass the cause through, got %q", err.Error())
	}
	if Fail(StageParse, nil) != nil {
		t.Fatalf("Fail(nil) should be nil")
	}
}
