package main

import (
	"encoding/json"
)

// GameState is the variant-shaped payload carried by a room. Exactly
// one concrete shape exists per variant; the marker method keeps the
// set closed.
type GameState interface {
	gameState()
}

// Variant is the per-game capability set. Init seeds a room's game
// state on start-game, Apply folds one player's submission into it,
// and Advance moves the room to its next round.
//
// All three are called from the gateway loop only, so they mutate the
// room freely and never need their own locking.
type Variant interface {
	Name() string
	Init(r *Room)
	Apply(r *Room, p *Player, answer json.RawMessage)
	Advance(r *Room)
}

var variants = map[string]Variant{
	GameImpostor: impostorVariant{},
	GameVoting:   votingVariant{},
	GameTrivia:   triviaVariant{},
}

const (
	GameImpostor = "impostor"
	GameVoting   = "voting"
	GameTrivia   = "trivia"
)

// answerString decodes a submission expected to be a JSON string.
func answerString(raw json.RawMessage) (string, bool) {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}

// answerIndex decodes a submission expected to be a JSON number.
func answerIndex(raw json.RawMessage) (int, bool) {
	var n int
	if err := json.Unmarshal(raw, &n); err != nil {
		return 0, false
	}
	return n, true
}
