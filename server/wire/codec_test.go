package wire

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"google.golang.org/protobuf/encoding/protowire"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/testing/protocmp"

	pb "llamabot/server/pb"
)

func card(v pb.CardValue, s pb.CardSuit) *pb.Card { return &pb.Card{Value: v, Suit: s} }

func sampleState() *pb.ClientState {
	return &pb.ClientState{
		PlayerId:         2,
		Cards:            &pb.CardPair{Card1: card(pb.CardValue_Ace, pb.CardSuit_Spades), Card2: card(pb.CardValue_King, pb.CardSuit_Spades)},
		CurrPlayerId:     2,
		CurrButtonId:     1,
		CurrSmallBlindId: 2,
		CurrBigBlindId:   3,
		LobbyId:          17,
		Street: &pb.Street{StreetStatus: pb.StreetStatus_Flop, Cards: []*pb.Card{
			card(pb.CardValue_Queen, pb.CardSuit_Spades), card(pb.CardValue_Two, pb.CardSuit_Clubs), card(pb.CardValue_Ten, pb.CardSuit_Spades),
		}},
		GameStatus: pb.GameStatus_Active,
		Players: []*pb.Player{
			{UserName: "Ruddy", UserId: 1, Country: "BY", Action: &pb.Action{ActionType: pb.ActionType_Raise, Bet: 100}, Bank: 10000, BetInCurrentSeed: 100},
			{UserName: "Sindy", UserId: 2, Country: "PL", Bank: 9900, Cards: &pb.CardPair{Card1: card(pb.CardValue_Ace, pb.CardSuit_Spades), Card2: card(pb.CardValue_King, pb.CardSuit_Spades)}},
			{UserName: "Si Lue", UserId: 3, Country: "CN", Bank: -50},
		},
		ShowdownOutcome: &pb.ShowdownOutcome{
			StreetHistory:            &pb.Street{StreetStatus: pb.StreetStatus_River},
			Winners:                  []*pb.Winner{{PlayerId: 1, WinAmout: 400}},
			PlayersCards:             []*pb.PlayerCards{{PlayerId: 1, Cards: &pb.CardPair{Card1: card(pb.CardValue_Two, pb.CardSuit_Hearts)}}},
			ProcessFlopAutomatically: true,
		},
		AmountToCall:     100,
		MinAmountToRaise: 200,
		CanRaise:         true,
		ActionHistory: []*pb.Action{
			{ActionType: pb.ActionType_Call, Bet: 100, PlayerId: 1, StreetStatus: pb.StreetStatus_River.Enum()},
			{ActionType: pb.ActionType_Fold, PlayerId: 3},
		},
	}
}

func mustMarshal(t *testing.T, st *pb.ClientState) []byte {
	t.Helper()
	b, err := proto.Marshal(st)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return b
}

func TestClientStateRoundTrip(t *testing.T) {
	in := sampleState()
	out, err := UnmarshalClientState(mustMarshal(t, in))
	if err != nil {
		t.Fatalf("UnmarshalClientState returned error: %v", err)
	}
	if diff := cmp.Diff(in, out, protocmp.Transform()); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestEmptyPayloadDecodesToZeroState(t *testing.T) {
	out, err := UnmarshalClientState(nil)
	if err != nil {
		t.Fatalf("empty payload should decode, got %v", err)
	}
	if diff := cmp.Diff(&pb.ClientState{}, out, protocmp.Transform()); diff != "" {
		t.Fatalf("unexpected state (-want +got):\n%s", diff)
	}
}

func TestActionRoundTrip(t *testing.T) {
	for _, in := range []*pb.Action{
		{ActionType: pb.ActionType_Raise, Bet: 150},
		{ActionType: pb.ActionType_Check},
		{ActionType: pb.ActionType_Call, Bet: -1, PlayerId: 4, StreetStatus: pb.StreetStatus_Preflop.Enum()},
	} {
		b, err := MarshalAction(in)
		if err != nil {
			t.Fatalf("MarshalAction(%v) returned error: %v", in, err)
		}
		out, err := UnmarshalAction(b)
		if err != nil {
			t.Fatalf("UnmarshalAction(%v) returned error: %v", in, err)
		}
		if diff := cmp.Diff(in, out, protocmp.Transform()); diff != "" {
			t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
		}
	}
}

func TestActionMarshalBytes(t *testing.T) {
	got, err := MarshalAction(&pb.Action{ActionType: pb.ActionType_Raise, Bet: 150})
	if err != nil {
		t.Fatalf("MarshalAction returned error: %v", err)
	}
	// field 1 varint 2, field 2 varint 150
	want := []byte{0x08, 0x02, 0x10, 0x96, 0x01}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected bytes (-want +got):\n%s", diff)
	}
}

func TestUnknownFieldsAreSkipped(t *testing.T) {
	var b []byte
	b = protowire.AppendTag(b, 99, protowire.BytesType)
	b = protowire.AppendString(b, "future field")
	b = protowire.AppendTag(b, 1, protowire.VarintType)
	b = protowire.AppendVarint(b, 5)
	out, err := UnmarshalClientState(b)
	if err != nil {
		t.Fatalf("UnmarshalClientState returned error: %v", err)
	}
	if out.GetPlayerId() != 5 {
		t.Fatalf("unexpected player id: %d", out.GetPlayerId())
	}
}

func TestMismatchedWireTypeIsKeptAsUnknown(t *testing.T) {
	// player_id is a varint; a zero-length bytes value under field 1 is not
	// an error, it is carried as an unknown field.
	in := []byte{0x0a, 0x00}
	out, err := UnmarshalClientState(in)
	if err != nil {
		t.Fatalf("UnmarshalClientState returned error: %v", err)
	}
	if out.GetPlayerId() != 0 {
		t.Fatalf("unexpected player id: %d", out.GetPlayerId())
	}
	if diff := cmp.Diff(in, []byte(out.ProtoReflect().GetUnknown())); diff != "" {
		t.Fatalf("unexpected unknown bytes (-want +got):\n%s", diff)
	}
}

func TestInvalidUTF8StringIsRejected(t *testing.T) {
	var player []byte
	player = protowire.AppendTag(player, 1, protowire.BytesType)
	player = protowire.AppendBytes(player, []byte{0xff, 0xfe})
	var b []byte
	b = protowire.AppendTag(b, 10, protowire.BytesType)
	b = protowire.AppendBytes(b, player)

	if _, err := UnmarshalClientState(b); !errors.Is(err, ErrMalformed) {
		t.Fatalf("expected ErrMalformed for invalid UTF-8 user_name, got %v", err)
	}
}

func TestMalformedPayloads(t *testing.T) {
	cases := map[string][]byte{
		"truncated varint":   {0x08},
		"truncated length":   {0x52, 0x05, 0x01},
		"ascii text":         []byte("not a protobuf"),
		"bad nested message": {0x12, 0x02, 0x0a, 0x05},
		"field number zero":  {0x00, 0x01},
		"truncated unknown":  {0xa2, 0x06, 0x09},
	}
	for name, b := range cases {
		if _, err := UnmarshalClientState(b); !errors.Is(err, ErrMalformed) {
			t.Fatalf("%s: expected ErrMalformed, got %v", name, err)
		}
	}
}

func TestHero(t *testing.T) {
	st := sampleState()
	if h := Hero(st); h == nil || h.GetUserName() != "Sindy" {
		t.Fatalf("unexpected hero: %v", h)
	}
	st.PlayerId = 42
	if h := Hero(st); h != nil {
		t.Fatalf("expected no hero, got %v", h)
	}
}

func TestValidActionAndNames(t *testing.T) {
	if !ValidAction(pb.ActionType_Check) || ValidAction(pb.ActionType(4)) || ValidAction(pb.ActionType(-1)) {
		t.Fatalf("unexpected ValidAction results")
	}
	if got := pb.ActionType_Raise.String(); got != "Raise" {
		t.Fatalf("unexpected name: %q", got)
	}
	if got := pb.ActionType(9).String(); got != "9" {
		t.Fatalf("unknown enum should render as number, got %q", got)
	}
	if got := pb.CardValue_Ace.String(); got != "Ace" {
		t.Fatalf("unexpected card value: %q", got)
	}
}
