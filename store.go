package main

import (
	"crypto/rand"
	"strings"
	"sync"
	"time"
)

// Room identifiers are short and human-relayable: 5 base-36
// characters, read out loud or shared via the QR endpoint.
const (
	roomIDAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
	roomIDLength   = 5
)

type lettersIntent struct {
	team1Letter string
	team2Letter string
}

type speakIntent struct {
	client     *Client
	teamNumber int
	word       string
}

// Room pairs one GameState with its connected members. All mutations
// flow through run's single goroutine, so two words racing for the
// same room are judged one at a time in arrival order.
type Room struct {
	id string

	register chan *Client
	unreg    chan *Client
	letters  chan lettersIntent
	speaks   chan speakIntent
	done     chan struct{}

	mu         sync.RWMutex
	state      *GameState
	clients    map[*Client]bool
	createdAt  time.Time
	lastActive time.Time
}

func newRoom(roomID string) *Room {
	now := time.Now()
	return &Room{
		id:         roomID,
		register:   make(chan *Client),
		unreg:      make(chan *Client),
		letters:    make(chan lettersIntent),
		speaks:     make(chan speakIntent),
		done:       make(chan struct{}),
		state:      newGameState(),
		clients:    make(map[*Client]bool),
		createdAt:  now,
		lastActive: now,
	}
}

func (r *Room) run(cfg *Config) {
	for {
		select {
		case c := <-r.register:
			r.mu.Lock()
			r.lastActive = time.Now()

			for client := range r.clients {
				r.sendLocked(client, UserJoinedMessage{
					Type:    "userJoined",
					Message: "A new user has joined the room.",
				})
			}

			r.clients[c] = true
			r.sendLocked(c, GameStateMessage{
				Type:  "gameStateUpdate",
				State: r.state.clone(),
			})
			r.mu.Unlock()

		case c := <-r.unreg:
			r.mu.Lock()
			r.lastActive = time.Now()

			// Leaving never mutates or deletes the game state; the
			// room outlives its members until the reaper ends it.
			if _, ok := r.clients[c]; ok {
				delete(r.clients, c)
				close(c.send)
			}
			r.mu.Unlock()

		case li := <-r.letters:
			r.mu.Lock()
			r.lastActive = time.Now()

			// Overwrites unconditionally, empty strings included.
			r.state.Team1.Letter = li.team1Letter
			r.state.Team2.Letter = li.team2Letter

			r.broadcastStateLocked()
			r.mu.Unlock()

		case si := <-r.speaks:
			r.handleSpeak(cfg, si)

		case <-r.done:
			r.mu.Lock()
			for c := range r.clients {
				close(c.send)
				_ = c.conn.Close()
				delete(r.clients, c)
			}
			r.mu.Unlock()
			return
		}
	}
}

// handleSpeak judges one word against the room's state and broadcasts
// the result. WrongTurn is absorbed without any broadcast.
func (r *Room) handleSpeak(cfg *Config, si speakIntent) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.lastActive = time.Now()

	word := strings.TrimSpace(si.word)

	letter := r.state.Team1.Letter
	if si.teamNumber == 2 {
		letter = r.state.Team2.Letter
	}

	outcome, err := speakWord(r.state, si.teamNumber, word, cfg.scope)
	if err != nil {
		// The speaker may already have been dropped for a full send
		// buffer; its channel is closed then, so only unicast to
		// current members.
		if r.clients[si.client] {
			r.sendLocked(si.client, ErrorMessage{
				Type:    "errorMsg",
				Message: "Letters must be set for both teams first",
			})
		}
		return
	}

	if outcome == WrongTurn {
		logf(cfg, "GAMES: Ignored out-of-turn word %q from team %d in %s", word, si.teamNumber, r.id)
		return
	}

	logf(cfg, "GAMES: Team %d spoke %q in %s: %s", si.teamNumber, word, r.id, outcome)

	r.broadcastStateLocked()

	message, kind := outcomeMessage(outcome, word, letter)
	r.broadcastLocked(ShowMessage{
		Type:    "showMessage",
		Message: message,
		Kind:    kind,
	})
}

// join registers a client as a room member. Returns false if the room
// has already been ended by the reaper.
func (r *Room) join(c *Client) bool {
	select {
	case r.register <- c:
		return true
	case <-r.done:
		return false
	}
}

// leave removes a client from room membership. The game state is
// untouched.
func (r *Room) leave(c *Client) {
	select {
	case r.unreg <- c:
	case <-r.done:
	}
}

// setLetters overwrites both teams' letters unconditionally and
// broadcasts the updated state.
func (r *Room) setLetters(team1Letter, team2Letter string) {
	select {
	case r.letters <- lettersIntent{team1Letter: team1Letter, team2Letter: team2Letter}:
	case <-r.done:
	}
}

// speak queues one word for judging on the room's goroutine.
func (r *Room) speak(si speakIntent) {
	select {
	case r.speaks <- si:
	case <-r.done:
	}
}

// sendTo unicasts to a current member under the room lock.
func (r *Room) sendTo(c *Client, msg any) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.clients[c] {
		r.sendLocked(c, msg)
	}
}

// snapshot returns a copy of the current state for read-only renderers.
func (r *Room) snapshot() *GameState {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.state.clone()
}

func (r *Room) broadcastStateLocked() {
	r.broadcastLocked(GameStateMessage{
		Type:  "gameStateUpdate",
		State: r.state.clone(),
	})
}

func (r *Room) broadcastLocked(msg any) {
	for client := range r.clients {
		r.sendLocked(client, msg)
	}
}

// sendLocked queues a message for one client, dropping the client if
// its send buffer is full.
func (r *Room) sendLocked(c *Client, msg any) {
	select {
	case c.send <- msg:
	default:
		delete(r.clients, c)
		close(c.send)
	}
}

// SessionStore owns the mapping of room identifier to Room. It is the
// only writer of that mapping; per-room mutations are serialized by
// each room's own goroutine.
type SessionStore struct {
	mu    sync.Mutex
	rooms map[string]*Room

	cfg         *Config
	idleTimeout time.Duration
}

func newSessionStore(cfg *Config) *SessionStore {
	s := &SessionStore{
		rooms:       make(map[string]*Room),
		cfg:         cfg,
		idleTimeout: cfg.sessionTimeout,
	}
	if s.idleTimeout > 0 {
		go s.reaperLoop()
	}
	return s
}

// createRoom generates a fresh identifier, initializes a room around a
// zeroed game state, and starts its goroutine. Collisions regenerate.
func (s *SessionStore) createRoom() *Room {
	for {
		id := randomRoomID()

		s.mu.Lock()
		if _, exists := s.rooms[id]; exists {
			s.mu.Unlock()
			continue
		}
		room := newRoom(id)
		s.rooms[id] = room
		s.mu.Unlock()

		go room.run(s.cfg)
		logf(s.cfg, "GAMES: Created room %s", id)

		return room
	}
}

func (s *SessionStore) getRoom(roomID string) (*Room, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	room, ok := s.rooms[roomID]
	return room, ok
}

func randomRoomID() string {
	buf := make([]byte, roomIDLength)
	if _, err := rand.Read(buf); err != nil {
		panic("crypto/rand failure: " + err.Error())
	}
	out := make([]byte, roomIDLength)
	for i := range out {
		out[i] = roomIDAlphabet[int(buf[i])%len(roomIDAlphabet)]
	}
	return string(out)
}

// reaperLoop evicts rooms that have been idle longer than idleTimeout,
// closing their members' connections. The original relay kept rooms
// forever; idle eviction caps the leak.
func (s *SessionStore) reaperLoop() {
	ticker := time.NewTicker(s.idleTimeout / 2)
	for range ticker.C {
		cutoff := time.Now().Add(-s.idleTimeout)

		s.mu.Lock()
		for id, room := range s.rooms {
			room.mu.RLock()
			last := room.lastActive
			room.mu.RUnlock()

			if last.Before(cutoff) {
				delete(s.rooms, id)
				close(room.done)
				logf(s.cfg, "GAMES: Reaped idle room %s after %s",
					id,
					time.Since(room.createdAt).Round(time.Second),
				)
			}
		}
		s.mu.Unlock()
	}
}
