package main

import (
	"encoding/json"
)

// Straight quiz rounds: everyone answers the current question, the
// host moves the room to the next one.

const triviaPhaseQuestion = "question"

type TriviaQuestion struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Correct  int      `json:"correct"`
}

var triviaQuestions = []TriviaQuestion{
	{
		Question: "What is the capital of France?",
		Options:  []string{"Rome", "Madrid", "Paris", "Berlin"},
		Correct:  2,
	},
	{
		Question: "How many planets are in the solar system?",
		Options:  []string{"7", "8", "9", "10"},
		Correct:  1,
	},
	{
		Question: "Which ocean is the largest?",
		Options:  []string{"Atlantic", "Indian", "Arctic", "Pacific"},
		Correct:  3,
	},
	{
		Question: "What year did the first person walk on the moon?",
		Options:  []string{"1965", "1969", "1972", "1958"},
		Correct:  1,
	},
	{
		Question: "Which element has the symbol Au?",
		Options:  []string{"Silver", "Aluminium", "Gold", "Argon"},
		Correct:  2,
	},
}

type TriviaAnswer struct {
	PlayerID    string `json:"playerId"`
	AnswerIndex int    `json:"answerIndex"`
}

type TriviaState struct {
	Phase           string           `json:"phase"`
	CurrentQuestion int              `json:"currentQuestion"`
	Answers         []TriviaAnswer   `json:"answers"`
	Questions       []TriviaQuestion `json:"questions"`
}

func (*TriviaState) gameState() {}

type triviaVariant struct{}

func (triviaVariant) Name() string { return GameTrivia }

func (triviaVariant) Init(r *Room) {
	r.GameData = &TriviaState{
		Phase:           triviaPhaseQuestion,
		CurrentQuestion: 0,
		Answers:         []TriviaAnswer{},
		Questions:       triviaQuestions,
	}
}

func (triviaVariant) Apply(r *Room, p *Player, answer json.RawMessage) {
	state, ok := r.GameData.(*TriviaState)
	if !ok {
		return
	}

	index, ok := answerIndex(answer)
	if !ok {
		return
	}

	// One answer per player per question; the host advances rounds
	// explicitly, nothing moves on its own here.
	for _, a := range state.Answers {
		if a.PlayerID == p.ID {
			return
		}
	}

	state.Answers = append(state.Answers, TriviaAnswer{
		PlayerID:    p.ID,
		AnswerIndex: index,
	})
}

func (triviaVariant) Advance(r *Room) {
	state, ok := r.GameData.(*TriviaState)
	if !ok {
		return
	}

	state.CurrentQuestion++
	state.Answers = []TriviaAnswer{}
}
