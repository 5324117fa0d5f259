package main

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
)

// Messages coming from clients
type clientMessage struct {
	Type       string          `json:"type"`                 // "join-room", "start-game", "submit-answer", "next-round"
	Code       string          `json:"code,omitempty"`       // room code, all types
	PlayerName string          `json:"playerName,omitempty"` // join-room
	Answer     json.RawMessage `json:"answer,omitempty"`     // submit-answer; shape depends on the variant
}

// Messages sent to clients
type serverMessage struct {
	Type    string          `json:"type"`              // "error", "room-update", "game-started"
	Message string          `json:"message,omitempty"` // error text
	Room    json.RawMessage `json:"room,omitempty"`    // full room snapshot
}

type Client struct {
	conn     *websocket.Conn
	send     chan serverMessage
	playerID string
}

type clientEvent struct {
	client *Client
	msg    clientMessage
}

// Gateway binds each connection to at most one room and serializes
// every room mutation through its run loop: no two events ever touch
// a room concurrently, so the rooms themselves carry no locks.
type Gateway struct {
	cfg   *Config
	store *RoomStore

	register   chan *Client
	unregister chan *Client
	events     chan clientEvent

	clients  map[*Client]bool
	members  map[string]map[*Client]bool // room code → subscribed clients
	memberOf map[*Client]string          // direct connection → room index
}

func newGateway(cfg *Config, store *RoomStore) *Gateway {
	return &Gateway{
		cfg:        cfg,
		store:      store,
		register:   make(chan *Client),
		unregister: make(chan *Client),
		events:     make(chan clientEvent),
		clients:    make(map[*Client]bool),
		members:    make(map[string]map[*Client]bool),
		memberOf:   make(map[*Client]string),
	}
}

func (g *Gateway) run() {
	var reap <-chan time.Time
	if g.cfg.sessionTimeout > 0 {
		ticker := time.NewTicker(g.cfg.sessionTimeout / 2)
		defer ticker.Stop()
		reap = ticker.C
	}

	for {
		select {
		case c := <-g.register:
			g.clients[c] = true

		case c := <-g.unregister:
			if g.clients[c] {
				delete(g.clients, c)
				close(c.send)
			}
			g.handleDisconnect(c)

		case ev := <-g.events:
			switch ev.msg.Type {
			case "join-room":
				g.handleJoin(ev.client, ev.msg)
			case "start-game":
				g.handleStart(ev.client, ev.msg)
			case "submit-answer":
				g.handleSubmit(ev.client, ev.msg)
			case "next-round":
				g.handleNext(ev.client, ev.msg)
			default:
				// ignore unknown types
			}

		case <-reap:
			g.reapIdle()
		}
	}
}

func (g *Gateway) handleJoin(c *Client, msg clientMessage) {
	room, ok := g.store.Get(msg.Code)
	if !ok {
		g.sendError(c, ErrRoomNotFound.Error())
		return
	}

	// Idempotent: a connection holds at most one player entry, in at
	// most one room.
	if code, joined := g.memberOf[c]; joined {
		if code != msg.Code {
			g.sendError(c, "already in another room")
		}
		return
	}

	room.Players = append(room.Players, Player{
		ID:    c.playerID,
		Name:  msg.PlayerName,
		Score: 0,
	})
	room.lastActive = time.Now()

	if g.members[room.Code] == nil {
		g.members[room.Code] = make(map[*Client]bool)
	}
	g.members[room.Code][c] = true
	g.memberOf[c] = room.Code

	logf(g.cfg, "ROOMS: Player %q joined %s", msg.PlayerName, room.Code)

	g.broadcast(room, "room-update")
}

func (g *Gateway) handleStart(c *Client, msg clientMessage) {
	room, ok := g.store.Get(msg.Code)
	if !ok {
		g.sendError(c, ErrRoomNotFound.Error())
		return
	}

	if !room.isHost(c.playerID) {
		g.sendError(c, "only the host can start the game")
		return
	}

	// Room status only ever moves forward.
	if room.Status == StatusPlaying {
		return
	}

	room.Status = StatusPlaying
	room.lastActive = time.Now()
	variants[room.Game].Init(room)

	logf(g.cfg, "ROOMS: Started %s game in %s with %d players", room.Game, room.Code, len(room.Players))

	g.broadcast(room, "game-started")
}

func (g *Gateway) handleSubmit(c *Client, msg clientMessage) {
	room, ok := g.store.Get(msg.Code)
	if !ok {
		g.sendError(c, ErrRoomNotFound.Error())
		return
	}

	player := room.player(c.playerID)
	if player == nil {
		return
	}

	room.lastActive = time.Now()
	variants[room.Game].Apply(room, player, msg.Answer)

	g.broadcast(room, "room-update")
}

func (g *Gateway) handleNext(c *Client, msg clientMessage) {
	room, ok := g.store.Get(msg.Code)
	if !ok {
		g.sendError(c, ErrRoomNotFound.Error())
		return
	}

	if !room.isHost(c.playerID) {
		g.sendError(c, "only the host can advance the round")
		return
	}

	room.lastActive = time.Now()
	variants[room.Game].Advance(room)

	g.broadcast(room, "room-update")
}

func (g *Gateway) handleDisconnect(c *Client) {
	code, ok := g.memberOf[c]
	if !ok {
		return
	}

	delete(g.memberOf, c)
	if set := g.members[code]; set != nil {
		delete(set, c)
		if len(set) == 0 {
			delete(g.members, code)
		}
	}

	room, ok := g.store.Get(code)
	if !ok {
		return
	}

	if !room.removePlayer(c.playerID) {
		return
	}

	if len(room.Players) == 0 {
		g.store.Remove(code)
		logf(g.cfg, "ROOMS: Removed empty room %s", code)
		return
	}

	room.lastActive = time.Now()
	g.broadcast(room, "room-update")
}

// reapIdle drops rooms with no activity for a full session timeout,
// disconnecting any members still subscribed.
func (g *Gateway) reapIdle() {
	cutoff := time.Now().Add(-g.cfg.sessionTimeout)

	for _, code := range g.store.idleRooms(cutoff) {
		for c := range g.members[code] {
			delete(g.memberOf, c)
			if g.clients[c] {
				delete(g.clients, c)
				close(c.send)
			}
			_ = c.conn.Close()
		}
		delete(g.members, code)
		g.store.Remove(code)

		logf(g.cfg, "ROOMS: Reaped idle room %s", code)
	}
}

// broadcast snapshots the room once and fans it out to every member.
// Slow consumers are dropped rather than blocking the loop.
func (g *Gateway) broadcast(room *Room, msgType string) {
	snapshot, err := json.Marshal(room)
	if err != nil {
		return
	}

	msg := serverMessage{
		Type: msgType,
		Room: snapshot,
	}

	var dropped []*Client
	for client := range g.members[room.Code] {
		select {
		case client.send <- msg:
		default:
			dropped = append(dropped, client)
		}
	}

	// Drop after the fan-out: dropping removes the player and
	// re-broadcasts to the survivors.
	for _, client := range dropped {
		g.drop(client)
	}
}

func (g *Gateway) sendError(c *Client, text string) {
	select {
	case c.send <- serverMessage{Type: "error", Message: text}:
	default:
		g.drop(c)
	}
}

// drop disconnects a client whose send buffer is full: same cleanup
// as a read-side disconnect, so its player never lingers in a room.
// Closing send ends writePump, which tears down the connection; the
// eventual unregister then finds nothing left to do.
func (g *Gateway) drop(c *Client) {
	if !g.clients[c] {
		return
	}
	delete(g.clients, c)
	close(c.send)

	g.handleDisconnect(c)
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// serveWS upgrades the connection and mints its ephemeral player id.
func serveWS(cfg *Config, g *Gateway) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Println("upgrade error:", err)
			return
		}

		client := &Client{
			conn:     conn,
			send:     make(chan serverMessage, 8),
			playerID: uuid.NewString(),
		}

		g.register <- client

		go client.writePump()
		client.readPump(g)
	}
}

func (c *Client) readPump(g *Gateway) {
	defer func() {
		g.unregister <- c
		_ = c.conn.Close()
	}()

	for {
		var msg clientMessage
		if err := c.conn.ReadJSON(&msg); err != nil {
			return
		}

		g.events <- clientEvent{
			client: c,
			msg:    msg,
		}
	}
}

func (c *Client) writePump() {
	defer c.conn.Close()

	for msg := range c.send {
		if err := c.conn.WriteJSON(msg); err != nil {
			return
		}
	}
}
