package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func triviaRoom(names ...string) *Room {
	room := &Room{Code: "TEST44", Game: GameTrivia, Status: StatusPlaying}
	for _, name := range names {
		room.Players = append(room.Players, Player{ID: "id-" + name, Name: name})
	}
	triviaVariant{}.Init(room)
	return room
}

func TestTriviaInit(t *testing.T) {
	room := triviaRoom("Alice", "Bob")

	state, ok := room.GameData.(*TriviaState)
	require.True(t, ok)
	assert.Equal(t, triviaPhaseQuestion, state.Phase)
	assert.Zero(t, state.CurrentQuestion)
	assert.Empty(t, state.Answers)
	assert.Equal(t, triviaQuestions, state.Questions)
}

func TestTriviaQuestionsAreWellFormed(t *testing.T) {
	for _, q := range triviaQuestions {
		assert.NotEmpty(t, q.Question)
		assert.Len(t, q.Options, 4)
		assert.GreaterOrEqual(t, q.Correct, 0)
		assert.Less(t, q.Correct, len(q.Options))
	}
}

func TestTriviaAnswerOncePerQuestion(t *testing.T) {
	room := triviaRoom("Alice", "Bob")
	state := room.GameData.(*TriviaState)

	alice := room.player("id-Alice")

	triviaVariant{}.Apply(room, alice, rawJSON(t, 2))
	require.Len(t, state.Answers, 1)
	assert.Equal(t, TriviaAnswer{PlayerID: "id-Alice", AnswerIndex: 2}, state.Answers[0])

	// Second submission for the same question is a no-op.
	triviaVariant{}.Apply(room, alice, rawJSON(t, 0))
	assert.Len(t, state.Answers, 1)
	assert.Equal(t, 2, state.Answers[0].AnswerIndex)

	// All answers in, but only next-round moves the question along.
	triviaVariant{}.Apply(room, room.player("id-Bob"), rawJSON(t, 1))
	assert.Len(t, state.Answers, 2)
	assert.Zero(t, state.CurrentQuestion)
}

func TestTriviaAdvance(t *testing.T) {
	room := triviaRoom("Alice", "Bob")
	state := room.GameData.(*TriviaState)

	triviaVariant{}.Apply(room, room.player("id-Alice"), rawJSON(t, 2))
	triviaVariant{}.Advance(room)

	assert.Equal(t, 1, state.CurrentQuestion)
	assert.Empty(t, state.Answers)

	// The player can answer again on the new question.
	triviaVariant{}.Apply(room, room.player("id-Alice"), rawJSON(t, 3))
	assert.Len(t, state.Answers, 1)
}

func TestTriviaIgnoresMalformedAnswer(t *testing.T) {
	room := triviaRoom("Alice")
	state := room.GameData.(*TriviaState)

	triviaVariant{}.Apply(room, room.player("id-Alice"), rawJSON(t, "not an index"))

	assert.Empty(t, state.Answers)
}
