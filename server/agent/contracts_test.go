package agent

import (
	"encoding/json"
	"strings"
	"testing"

	"llamabot/server/llm"
	pb "llamabot/server/pb"
)

func tableView() *pb.ClientState {
	return &pb.ClientState{
		PlayerId:     1,
		Cards:        &pb.CardPair{Card1: &pb.Card{Value: pb.CardValue_Ace, Suit: pb.CardSuit_Hearts}, Card2: &pb.Card{Value: pb.CardValue_Ace, Suit: pb.CardSuit_Clubs}},
		CurrPlayerId: 1,
		LobbyId:      9,
		Street:       &pb.Street{StreetStatus: pb.StreetStatus_Preflop},
		GameStatus:   pb.GameStatus_Active,
		Players: []*pb.Player{
			{UserName: "Ruddy", UserId: 0, Country: "BY", Bank: 10000, Action: &pb.Action{ActionType: pb.ActionType_Raise, Bet: 100}},
			{UserName: "Sindy", UserId: 1, Country: "PL", Bank: 9950},
		},
		AmountToCall:     100,
		MinAmountToRaise: 200,
		CanRaise:         true,
	}
}

func TestBuildMessagesOrderAndDeterminism(t *testing.T) {
	st := tableView()
	a := BuildMessages(st, SystemPrompt)
	b := BuildMessages(st, SystemPrompt)
	if len(a) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(a))
	}
	if a[0].Role != llm.RoleUser || a[1].Role != llm.RoleSystem {
		t.Fatalf("unexpected roles: %q, %q", a[0].Role, a[1].Role)
	}
	if a[1].Content != SystemPrompt || a[1].Content != b[1].Content {
		t.Fatalf("system message must be the fixed prompt")
	}
	if a[0].Content != b[0].Content {
		t.Fatalf("user message not deterministic:\n%s\n%s", a[0].Content, b[0].Content)
	}
}

func TestDescribeIncludesEveryField(t *testing.T) {
	var m map[string]any
	if err := json.Unmarshal([]byte(Describe(tableView())), &m); err != nil {
		t.Fatalf("Describe should emit JSON: %v", err)
	}
	for _, k := range []string{
		"playerId", "cards", "currPlayerId", "currButtonId", "currSmallBlindId", "currBigBlindId",
		"lobbyId", "street", "gameStatus", "players", "showdownOutcome", "amountToCall",
		"minAmountToRaise", "canRaise", "actionHistory",
	} {
		if _, ok := m[k]; !ok {
			t.Fatalf("missing key %q in %v", k, m)
		}
	}
	if m["gameStatus"] != "Active" {
		t.Fatalf("enums should render by name, got %v", m["gameStatus"])
	}
	players, _ := m["players"].([]any)
	if len(players) != 2 {
		t.Fatalf("unexpected players: %v", m["players"])
	}
	first, _ := players[0].(map[string]any)
	if first["userId"] != float64(0) {
		t.Fatalf("zero-valued fields must still be present, got %v", first)
	}
}

func TestDescribeEmptyState(t *testing.T) {
	got := Describe(&pb.ClientState{})
	if !strings.Contains(got, `"players":[]`) || !strings.Contains(got, `"cards":null`) {
		t.Fatalf("unexpected rendering: %s", got)
	}
}

func TestSystemPromptNamesReplyKeys(t *testing.T) {
	for _, k := range []string{`"action_type"`, `"bet"`, `"explanation"`, "Fold = 0", "Call = 1", "Raise = 2", "Check = 3", "playerId"} {
		if !strings.Contains(SystemPrompt, k) {
			t.Fatalf("system prompt is missing %q", k)
		}
	}
}
