package engine

import (
	"fmt"

	pb "llamabot/server/pb"
	"llamabot/server/wire"
)

func (c Card) String() string {
	ranks := "  23456789TJQKA"
	return fmt.Sprintf("%c%c", ranks[c.Rank], c.Suit)
}

func cardsToStr(cs []Card) []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = c.String()
	}
	return out
}

// heroCards returns the hole cards dealt to the viewing player. The
// top-level cards field wins; the matching players entry is the fallback.
func heroCards(st *pb.ClientState) []Card {
	pair := st.GetCards()
	if pair == nil {
		pair = wire.Hero(st).GetCards()
	}
	if pair == nil {
		return nil
	}
	var out []Card
	for _, pc := range []*pb.Card{pair.GetCard1(), pair.GetCard2()} {
		if c, ok := FromProto(pc); ok {
			out = append(out, c)
		}
	}
	return out
}

func boardCards(st *pb.ClientState) []Card {
	var out []Card
	for _, pc := range st.GetStreet().GetCards() {
		if c, ok := FromProto(pc); ok {
			out = append(out, c)
		}
	}
	return out
}
