package main

import (
	"encoding/json"
	"math/rand"
	"sort"
)

// Everyone answers the same "who is most likely to..." question by
// voting for a player; once all votes are in, the tally is revealed.

var votingQuestions = []string{
	"Who is always late?",
	"Who is most likely to win the lottery?",
	"Who falls asleep in class?",
}

const (
	votingPhaseVoting  = "voting"
	votingPhaseResults = "results"
)

type VoteResult struct {
	Player Player `json:"player"`
	Votes  int    `json:"votes"`
}

type VotingState struct {
	Phase    string       `json:"phase"`
	Question string       `json:"question"`
	Votes    []string     `json:"votes"`
	Results  []VoteResult `json:"results"`
}

func (*VotingState) gameState() {}

type votingVariant struct{}

func (votingVariant) Name() string { return GameVoting }

func (votingVariant) Init(r *Room) {
	r.GameData = &VotingState{
		Phase:    votingPhaseVoting,
		Question: votingQuestions[rand.Intn(len(votingQuestions))],
		Votes:    []string{},
		Results:  []VoteResult{},
	}
}

func (votingVariant) Apply(r *Room, p *Player, answer json.RawMessage) {
	state, ok := r.GameData.(*VotingState)
	if !ok || state.Phase != votingPhaseVoting {
		return
	}

	target, ok := answerString(answer)
	if !ok {
		return
	}

	state.Votes = append(state.Votes, target)

	if len(state.Votes) < len(r.Players) {
		return
	}

	// Tally by target id, keeping first-seen order for ties.
	counts := make(map[string]int)
	var order []string
	for _, v := range state.Votes {
		if _, seen := counts[v]; !seen {
			order = append(order, v)
		}
		counts[v]++
	}

	results := make([]VoteResult, 0, len(order))
	for _, id := range order {
		target := r.player(id)
		if target == nil {
			continue
		}
		results = append(results, VoteResult{
			Player: *target,
			Votes:  counts[id],
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Votes > results[j].Votes
	})

	state.Results = results
	state.Phase = votingPhaseResults
}

// Advance starts a fresh round of voting on the same question.
func (votingVariant) Advance(r *Room) {
	state, ok := r.GameData.(*VotingState)
	if !ok {
		return
	}

	state.Phase = votingPhaseVoting
	state.Votes = []string{}
}
