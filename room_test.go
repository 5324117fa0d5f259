package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoomStoreCreate(t *testing.T) {
	testCases := []struct {
		name        string
		game        string
		expectError error
	}{
		{name: "impostor", game: "impostor"},
		{name: "voting", game: "voting"},
		{name: "trivia", game: "trivia"},
		{name: "unknown variant", game: "charades", expectError: ErrInvalidGame},
		{name: "empty variant", game: "", expectError: ErrInvalidGame},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			store := newRoomStore()

			room, err := store.Create(tc.game)

			if tc.expectError != nil {
				assert.ErrorIs(t, err, tc.expectError)
				assert.Nil(t, room)
				assert.Zero(t, store.Len())
				return
			}

			require.NoError(t, err)
			assert.Len(t, room.Code, codeLength)
			assert.Equal(t, tc.game, room.Game)
			assert.Equal(t, StatusWaiting, room.Status)
			assert.Empty(t, room.Players)
			assert.False(t, room.CreatedAt.IsZero())

			got, ok := store.Get(room.Code)
			require.True(t, ok)
			assert.Same(t, room, got)
		})
	}
}

func TestRoomStoreCollisionRetry(t *testing.T) {
	store := newRoomStore()

	// Force the first room's code, then make the generator collide
	// with it once before yielding a fresh code.
	store.newCode = func() string { return "AAAAAA" }
	first, err := store.Create("trivia")
	require.NoError(t, err)

	codes := []string{"AAAAAA", "AAAAAA", "BBBBBB"}
	store.newCode = func() string {
		code := codes[0]
		codes = codes[1:]
		return code
	}

	second, err := store.Create("voting")
	require.NoError(t, err)

	assert.Equal(t, "BBBBBB", second.Code)

	// The live room was not overwritten.
	got, ok := store.Get("AAAAAA")
	require.True(t, ok)
	assert.Same(t, first, got)
	assert.Equal(t, "trivia", got.Game)
	assert.Equal(t, 2, store.Len())
}

func TestRoomStoreRemove(t *testing.T) {
	store := newRoomStore()

	room, err := store.Create("trivia")
	require.NoError(t, err)

	store.Remove(room.Code)

	_, ok := store.Get(room.Code)
	assert.False(t, ok)
	assert.Zero(t, store.Len())
}

func TestRoomStoreIdleRooms(t *testing.T) {
	store := newRoomStore()

	stale, err := store.Create("trivia")
	require.NoError(t, err)
	stale.lastActive = time.Now().Add(-time.Hour)

	fresh, err := store.Create("voting")
	require.NoError(t, err)

	idle := store.idleRooms(time.Now().Add(-30 * time.Minute))

	assert.Equal(t, []string{stale.Code}, idle)
	assert.NotContains(t, idle, fresh.Code)
}

func TestRoomPlayerHelpers(t *testing.T) {
	room := &Room{
		Players: []Player{
			{ID: "a", Name: "Alice"},
			{ID: "b", Name: "Bob"},
		},
	}

	assert.True(t, room.isHost("a"))
	assert.False(t, room.isHost("b"))

	require.NotNil(t, room.player("b"))
	assert.Equal(t, "Bob", room.player("b").Name)
	assert.Nil(t, room.player("c"))

	assert.True(t, room.removePlayer("a"))
	assert.False(t, room.removePlayer("a"))
	assert.Len(t, room.Players, 1)
	assert.True(t, room.isHost("b"))

	empty := &Room{}
	assert.False(t, empty.isHost("a"))
}
