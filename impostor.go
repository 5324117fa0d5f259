package main

import (
	"encoding/json"
	"math/rand"
)

// One player is secretly the impostor: everyone else sees the same
// secret word, the impostor sees the IMPOSTOR marker instead. Players
// submit an answer hinting at their word, then vote on who is faking.

const impostorMarker = "IMPOSTOR"

var impostorWords = []string{
	"BEACH",
	"CASTLE",
	"GUITAR",
	"MOUNTAIN",
	"PIZZA",
}

const (
	impostorPhaseAnswering = "answering"
	impostorPhaseVoting    = "voting"
)

type ImpostorAnswer struct {
	PlayerID   string `json:"playerId"`
	PlayerName string `json:"playerName"`
	Answer     string `json:"answer"`
}

type ImpostorState struct {
	Phase   string           `json:"phase"`
	Answers []ImpostorAnswer `json:"answers"`
	Votes   []string         `json:"votes"`
}

func (*ImpostorState) gameState() {}

type impostorVariant struct{}

func (impostorVariant) Name() string { return GameImpostor }

func (impostorVariant) Init(r *Room) {
	secret := impostorWords[rand.Intn(len(impostorWords))]
	impostor := rand.Intn(len(r.Players))

	for i := range r.Players {
		if i == impostor {
			r.Players[i].Word = impostorMarker
		} else {
			r.Players[i].Word = secret
		}
	}

	r.GameData = &ImpostorState{
		Phase:   impostorPhaseAnswering,
		Answers: []ImpostorAnswer{},
		Votes:   []string{},
	}
}

func (impostorVariant) Apply(r *Room, p *Player, answer json.RawMessage) {
	state, ok := r.GameData.(*ImpostorState)
	if !ok {
		return
	}

	switch state.Phase {
	case impostorPhaseAnswering:
		text, ok := answerString(answer)
		if !ok {
			return
		}

		// One answer per player per round.
		for _, a := range state.Answers {
			if a.PlayerID == p.ID {
				return
			}
		}

		state.Answers = append(state.Answers, ImpostorAnswer{
			PlayerID:   p.ID,
			PlayerName: p.Name,
			Answer:     text,
		})

		if len(state.Answers) == len(r.Players) {
			state.Phase = impostorPhaseVoting
		}

	case impostorPhaseVoting:
		vote, ok := answerString(answer)
		if !ok {
			return
		}

		// Votes accumulate and the table settles it out loud; there
		// is no results phase yet.
		state.Votes = append(state.Votes, vote)
	}
}

func (impostorVariant) Advance(r *Room) {}
