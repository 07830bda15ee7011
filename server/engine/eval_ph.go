package engine

import (
	poker "github.com/paulhankin/poker"

	pb "llamabot/server/pb"
)

// HeroHand summarizes what the viewing player holds. Score is the library's
// raw rank (higher is stronger); it is only set once five cards are known.
type HeroHand struct {
	Hole        []string `json:"hole"`
	Board       []string `json:"board"`
	Evaluated   bool     `json:"evaluated"`
	Description string   `json:"description,omitempty"`
	Score       int      `json:"score"`
}

// Convert our engine.Card -> library card.
func toPH(c Card) poker.Card {
	var s poker.Suit
	switch c.Suit {
	case 'c':
		s = poker.Club
	case 'd':
		s = poker.Diamond
	case 'h':
		s = poker.Heart
	case 's':
		s = poker.Spade
	default:
		s = poker.Club
	}
	// Our ranks: 2..14 (Ace=14). Library: 1..13 (Ace=1).
	var r poker.Rank
	if c.Rank == 14 {
		r = poker.Rank(1)
	} else {
		r = poker.Rank(c.Rank)
	}
	card, _ := poker.MakeCard(s, r)
	return card
}

// bestFive returns the strongest 5-card subset of pcs and its score.
func bestFive(pcs []poker.Card) ([5]poker.Card, int16) {
	n := len(pcs)
	best := int16(-32768)
	var bestHand [5]poker.Card
	choose := [5]int{}
	var five [5]poker.Card
	var rec func(start, k int)
	rec = func(start, k int) {
		if k == 5 {
			for i := 0; i < 5; i++ {
				five[i] = pcs[choose[i]]
			}
			score := poker.Eval5(&five)
			if score > best {
				best = score
				bestHand = five
			}
			return
		}
		for i := start; i <= n-(5-k); i++ {
			choose[k] = i
			rec(i+1, k+1)
		}
	}
	rec(0, 0)
	return bestHand, best
}

// DescribeHero evaluates the viewing player's hole cards against the board.
// Preflop (fewer than five known cards) only the cards are reported.
func DescribeHero(st *pb.ClientState) HeroHand {
	hole := heroCards(st)
	board := boardCards(st)
	h := HeroHand{Hole: cardsToStr(hole), Board: cardsToStr(board)}
	all := append(append([]Card{}, hole...), board...)
	if len(hole) < 2 || len(all) < 5 || len(all) > 7 || hasDuplicates(all) {
		return h
	}
	pcs := make([]poker.Card, len(all))
	for i, c := range all {
		pcs[i] = toPH(c)
	}
	five, score := bestFive(pcs)
	h.Evaluated = true
	h.Score = int(score)
	if d, err := poker.Describe(five[:]); err == nil {
		h.Description = d
	}
	return h
}

func hasDuplicates(cs []Card) bool {
	seen := make(map[Card]bool, len(cs))
	for _, c := range cs {
		if seen[c] {
			return true
		}
		seen[c] = true
	}
	return false
}
