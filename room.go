package main

import (
	"errors"
	"sync"
	"time"
)

var (
	ErrInvalidGame  = errors.New("unknown game variant")
	ErrRoomNotFound = errors.New("room not found")
)

type RoomStatus string

const (
	StatusWaiting RoomStatus = "waiting"
	StatusPlaying RoomStatus = "playing"
)

// Player is one connection's identity within a room. The id is minted
// when the websocket is upgraded and dies with the connection.
type Player struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Score int    `json:"score"`
	Word  string `json:"word,omitempty"` // impostor variant only
}

// Room is a single game session. All fields except code, game and
// createdAt are mutated by the gateway loop; nothing else writes to a
// live room.
type Room struct {
	Code      string     `json:"code"`
	Game      string     `json:"game"`
	Status    RoomStatus `json:"status"`
	Players   []Player   `json:"players"`
	GameData  GameState  `json:"gameData"`
	CreatedAt time.Time  `json:"createdAt"`

	lastActive time.Time
}

func (r *Room) player(id string) *Player {
	for i := range r.Players {
		if r.Players[i].ID == id {
			return &r.Players[i]
		}
	}
	return nil
}

func (r *Room) isHost(id string) bool {
	return len(r.Players) > 0 && r.Players[0].ID == id
}

func (r *Room) removePlayer(id string) bool {
	dst := r.Players[:0]
	changed := false
	for _, p := range r.Players {
		if p.ID == id {
			changed = true
			continue
		}
		dst = append(dst, p)
	}
	r.Players = dst
	return changed
}

// RoomStore owns the code → Room mapping. The HTTP create path and the
// gateway loop both touch the map, so it carries its own lock; the
// rooms themselves are only ever mutated by the gateway.
type RoomStore struct {
	mu    sync.Mutex
	rooms map[string]*Room

	// newCode is swappable for tests; defaults to newRoomCode.
	newCode func() string
}

func newRoomStore() *RoomStore {
	return &RoomStore{
		rooms:   make(map[string]*Room),
		newCode: newRoomCode,
	}
}

// Create inserts a fresh waiting room and returns it. Codes are
// regenerated until one is unused, so a live room is never overwritten.
func (s *RoomStore) Create(game string) (*Room, error) {
	if _, ok := variants[game]; !ok {
		return nil, ErrInvalidGame
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var code string
	for {
		code = s.newCode()
		if _, exists := s.rooms[code]; !exists {
			break
		}
	}

	now := time.Now()
	room := &Room{
		Code:       code,
		Game:       game,
		Status:     StatusWaiting,
		Players:    []Player{},
		CreatedAt:  now,
		lastActive: now,
	}
	s.rooms[code] = room

	return room, nil
}

func (s *RoomStore) Get(code string) (*Room, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	room, ok := s.rooms[code]
	return room, ok
}

func (s *RoomStore) Remove(code string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.rooms, code)
}

func (s *RoomStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.rooms)
}

// idleRooms returns the codes of rooms with no activity since the
// cutoff. Used by the gateway's reaper tick.
func (s *RoomStore) idleRooms(cutoff time.Time) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	var codes []string
	for code, room := range s.rooms {
		if room.lastActive.Before(cutoff) {
			codes = append(codes, code)
		}
	}
	return codes
}
