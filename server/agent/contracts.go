package agent

import (
	"encoding/json"

	"llamabot/server/llm"
	pb "llamabot/server/pb"
)

// SystemPrompt is sent with every table view. It must stay byte-stable:
// replies are compared across runs at temperature 0.
const SystemPrompt = `You are a professional poker player. Your task is to analyze the current game situation. In the provided message you will find your id in the playerId field; the player whose userId equals it is you. Answer only with a JSON object in the following format:
{
  "action_type": 0|1|2|3,
  "bet": number,
  "explanation": string
}
Where action_type is one of Fold = 0; Call = 1; Raise = 2; Check = 3; bet is the amount of chips you put in; and explanation is why you made that move.`

// Observation is the JSON rendering of a ClientState we send to the model.
// Every field is present, including zero values, so the model never has to
// guess a default.
type Observation struct {
	PlayerID         int32         `json:"playerId"`
	Cards            *CardPairView `json:"cards"`
	CurrPlayerID     int32         `json:"currPlayerId"`
	CurrButtonID     int32         `json:"currButtonId"`
	CurrSmallBlindID int32         `json:"currSmallBlindId"`
	CurrBigBlindID   int32         `json:"currBigBlindId"`
	LobbyID          int32         `json:"lobbyId"`
	Street           *StreetView   `json:"street"`
	GameStatus       string        `json:"gameStatus"`
	Players          []PlayerView  `json:"players"`
	ShowdownOutcome  *ShowdownView `json:"showdownOutcome"`
	AmountToCall     int32         `json:"amountToCall"`
	MinAmountToRaise int32         `json:"minAmountToRaise"`
	CanRaise         bool          `json:"canRaise"`
	ActionHistory    []ActionView  `json:"actionHistory"`
}

type CardView struct {
	Value string `json:"value"`
	Suit  string `json:"suit"`
}

type CardPairView struct {
	Card1 *CardView `json:"card1"`
	Card2 *CardView `json:"card2"`
}

type StreetView struct {
	StreetStatus string     `json:"streetStatus"`
	Cards        []CardView `json:"cards"`
}

type ActionView struct {
	ActionType   string  `json:"actionType"`
	Bet          int32   `json:"bet"`
	PlayerID     int32   `json:"playerId"`
	StreetStatus *string `json:"streetStatus"`
}

type PlayerView struct {
	UserName         string        `json:"userName"`
	UserID           int32         `json:"userId"`
	Country          string        `json:"country"`
	Action           *ActionView   `json:"action"`
	Bank             int32         `json:"bank"`
	Cards            *CardPairView `json:"cards"`
	BetInCurrentSeed int32         `json:"betInCurrentSeed"`
}

type WinnerView struct {
	PlayerID  int32 `json:"playerId"`
	WinAmount int32 `json:"winAmout"`
}

type PlayerCardsView struct {
	PlayerID int32         `json:"playerId"`
	Cards    *CardPairView `json:"cards"`
}

type ShowdownView struct {
	StreetHistory            *StreetView       `json:"streetHistory"`
	Winners                  []WinnerView      `json:"winners"`
	PlayersCards             []PlayerCardsView `json:"playersCards"`
	ProcessFlopAutomatically bool              `json:"processFlopAutomatically"`
}

// BuildObservation converts the decoded table view into the JSON we send the model.
func BuildObservation(st *pb.ClientState) Observation {
	o := Observation{
		PlayerID:         st.GetPlayerId(),
		Cards:            cardPairView(st.GetCards()),
		CurrPlayerID:     st.GetCurrPlayerId(),
		CurrButtonID:     st.GetCurrButtonId(),
		CurrSmallBlindID: st.GetCurrSmallBlindId(),
		CurrBigBlindID:   st.GetCurrBigBlindId(),
		LobbyID:          st.GetLobbyId(),
		Street:           streetView(st.GetStreet()),
		GameStatus:       st.GetGameStatus().String(),
		Players:          []PlayerView{},
		AmountToCall:     st.GetAmountToCall(),
		MinAmountToRaise: st.GetMinAmountToRaise(),
		CanRaise:         st.GetCanRaise(),
		ActionHistory:    []ActionView{},
	}
	for _, p := range st.GetPlayers() {
		if p == nil {
			continue
		}
		o.Players = append(o.Players, PlayerView{
			UserName:         p.GetUserName(),
			UserID:           p.GetUserId(),
			Country:          p.GetCountry(),
			Action:           actionView(p.GetAction()),
			Bank:             p.GetBank(),
			Cards:            cardPairView(p.GetCards()),
			BetInCurrentSeed: p.GetBetInCurrentSeed(),
		})
	}
	if so := st.GetShowdownOutcome(); so != nil {
		sv := &ShowdownView{
			StreetHistory:            streetView(so.GetStreetHistory()),
			Winners:                  []WinnerView{},
			PlayersCards:             []PlayerCardsView{},
			ProcessFlopAutomatically: so.GetProcessFlopAutomatically(),
		}
		for _, w := range so.GetWinners() {
			if w != nil {
				sv.Winners = append(sv.Winners, WinnerView{PlayerID: w.GetPlayerId(), WinAmount: w.GetWinAmout()})
			}
		}
		for _, pc := range so.GetPlayersCards() {
			if pc != nil {
				sv.PlayersCards = append(sv.PlayersCards, PlayerCardsView{PlayerID: pc.GetPlayerId(), Cards: cardPairView(pc.GetCards())})
			}
		}
		o.ShowdownOutcome = sv
	}
	for _, a := range st.GetActionHistory() {
		if av := actionView(a); av != nil {
			o.ActionHistory = append(o.ActionHistory, *av)
		}
	}
	return o
}

// Describe renders the table view as compact JSON. The output depends only
// on the field values, so equal states always produce equal prompts.
func Describe(st *pb.ClientState) string {
	b, err := json.Marshal(BuildObservation(st))
	if err != nil {
		// only plain strings, ints and bools are marshalled
		panic(err)
	}
	return string(b)
}

// BuildMessages returns the user message (table view) followed by the system
// message (instructions), in that order.
func BuildMessages(st *pb.ClientState, system string) []llm.Message {
	return []llm.Message{
		{Role: llm.RoleUser, Content: Describe(st)},
		{Role: llm.RoleSystem, Content: system},
	}
}

func cardView(c *pb.Card) *CardView {
	if c == nil {
		return nil
	}
	return &CardView{Value: c.GetValue().String(), Suit: c.GetSuit().String()}
}

func cardPairView(p *pb.CardPair) *CardPairView {
	if p == nil {
		return nil
	}
	return &CardPairView{Card1: cardView(p.GetCard1()), Card2: cardView(p.GetCard2())}
}

func streetView(s *pb.Street) *StreetView {
	if s == nil {
		return nil
	}
	v := &StreetView{StreetStatus: s.GetStreetStatus().String(), Cards: []CardView{}}
	for _, c := range s.GetCards() {
		if cv := cardView(c); cv != nil {
			v.Cards = append(v.Cards, *cv)
		}
	}
	return v
}

func actionView(a *pb.Action) *ActionView {
	if a == nil {
		return nil
	}
	v := &ActionView{ActionType: a.GetActionType().String(), Bet: a.GetBet(), PlayerID: a.GetPlayerId()}
	if a.StreetStatus != nil {
		s := a.GetStreetStatus().String()
		v.StreetStatus = &s
	}
	return v
}
