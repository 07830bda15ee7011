package engine

import (
	"testing"

	pb "llamabot/server/pb"
)

func pc(v pb.CardValue, s pb.CardSuit) *pb.Card { return &pb.Card{Value: v, Suit: s} }

func TestFromProto(t *testing.T) {
	c, ok := FromProto(pc(pb.CardValue_Ace, pb.CardSuit_Spades))
	if !ok || c.String() != "As" {
		t.Fatalf("unexpected card: %v %v", c, ok)
	}
	c, ok = FromProto(pc(pb.CardValue_Two, pb.CardSuit_Clubs))
	if !ok || c.String() != "2c" {
		t.Fatalf("unexpected card: %v %v", c, ok)
	}
	if _, ok := FromProto(pc(13, pb.CardSuit_Clubs)); ok {
		t.Fatalf("value 13 should be rejected")
	}
	if _, ok := FromProto(pc(pb.CardValue_Ten, 7)); ok {
		t.Fatalf("suit 7 should be rejected")
	}
	if _, ok := FromProto(nil); ok {
		t.Fatalf("nil card should be rejected")
	}
}

func TestDescribeHeroPreflop(t *testing.T) {
	st := &pb.ClientState{Cards: &pb.CardPair{Card1: pc(pb.CardValue_Ace, pb.CardSuit_Hearts), Card2: pc(pb.CardValue_King, pb.CardSuit_Hearts)}}
	h := DescribeHero(st)
	if len(h.Hole) != 2 || h.Hole[0] != "Ah" || h.Hole[1] != "Kh" {
		t.Fatalf("unexpected hole: %v", h.Hole)
	}
	if h.Evaluated || h.Description != "" {
		t.Fatalf("preflop hand should not be evaluated: %+v", h)
	}
}

func TestDescribeHeroFallsBackToPlayerEntry(t *testing.T) {
	st := &pb.ClientState{
		PlayerId: 4,
		Players:  []*pb.Player{{UserId: 4, Cards: &pb.CardPair{Card1: pc(pb.CardValue_Nine, pb.CardSuit_Clubs), Card2: pc(pb.CardValue_Nine, pb.CardSuit_Diamonds)}}},
	}
	h := DescribeHero(st)
	if len(h.Hole) != 2 || h.Hole[0] != "9c" {
		t.Fatalf("unexpected hole: %v", h.Hole)
	}
}

func TestDescribeHeroRanksHands(t *testing.T) {
	board := &pb.Street{StreetStatus: pb.StreetStatus_Turn, Cards: []*pb.Card{
		pc(pb.CardValue_Queen, pb.CardSuit_Spades), pc(pb.CardValue_Jack, pb.CardSuit_Spades), pc(pb.CardValue_Ten, pb.CardSuit_Spades), pc(pb.CardValue_Two, pb.CardSuit_Hearts),
	}}
	royal := DescribeHero(&pb.ClientState{
		Cards:  &pb.CardPair{Card1: pc(pb.CardValue_Ace, pb.CardSuit_Spades), Card2: pc(pb.CardValue_King, pb.CardSuit_Spades)},
		Street: board,
	})
	pair := DescribeHero(&pb.ClientState{
		Cards:  &pb.CardPair{Card1: pc(pb.CardValue_Two, pb.CardSuit_Clubs), Card2: pc(pb.CardValue_Seven, pb.CardSuit_Diamonds)},
		Street: board,
	})
	if !royal.Evaluated || !pair.Evaluated || royal.Description == "" || pair.Description == "" {
		t.Fatalf("expected descriptions, got %+v / %+v", royal, pair)
	}
	if royal.Score <= pair.Score {
		t.Fatalf("royal flush should outrank a pair: %d vs %d", royal.Score, pair.Score)
	}
	if len(royal.Board) != 4 {
		t.Fatalf("unexpected board: %v", royal.Board)
	}
}

func TestDescribeHeroSkipsDuplicateCards(t *testing.T) {
	st := &pb.ClientState{
		Cards: &pb.CardPair{Card1: pc(pb.CardValue_Ace, pb.CardSuit_Spades), Card2: pc(pb.CardValue_Ace, pb.CardSuit_Spades)},
		Street: &pb.Street{Cards: []*pb.Card{
			pc(pb.CardValue_Two, pb.CardSuit_Clubs), pc(pb.CardValue_Three, pb.CardSuit_Clubs), pc(pb.CardValue_Four, pb.CardSuit_Clubs),
		}},
	}
	if h := DescribeHero(st); h.Evaluated {
		t.Fatalf("duplicate cards should not be evaluated: %+v", h)
	}
}
