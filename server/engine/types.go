package engine

import pb "llamabot/server/pb"

type Card struct {
	Rank int
	Suit byte
} // e.g. "As" => rank 14, suit 's'

var suitLetters = map[pb.CardSuit]byte{
	pb.CardSuit_Clubs:    'c',
	pb.CardSuit_Diamonds: 'd',
	pb.CardSuit_Hearts:   'h',
	pb.CardSuit_Spades:   's',
}

// FromProto maps an engine card (Two=0 .. Ace=12) to rank 2..14. Unknown
// values are reported as !ok.
func FromProto(c *pb.Card) (Card, bool) {
	if c == nil || c.GetValue() < pb.CardValue_Two || c.GetValue() > pb.CardValue_Ace {
		return Card{}, false
	}
	s, ok := suitLetters[c.GetSuit()]
	if !ok {
		return Card{}, false
	}
	return Card{Rank: int(c.GetValue()) + 2, Suit: s}, true
}
