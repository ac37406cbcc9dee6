// Word-competition game ("શબ્દ સ્પર્ધા")
//
// Two teams take turns speaking words that must start with their
// assigned letter. An accepted word scores a point; a wrong prefix or
// a repeat costs one. The turn passes to the other team after every
// judged word.
//
// Features:
// - One WebSocket endpoint per deployment: /path/ws
// - Rooms created and joined over the socket, identified by short codes
// - The server is authoritative: every word is judged against the
//   room's state and the result broadcast to all members
// - Rooms auto-reaped after a configurable idle timeout
// - In-browser QR button to share the current room, backed by go-qrcode
// - Plain-text transcript of any room's state at /path/transcript/:roomid

package main

import (
	"log"
	"net/http"
	"time"

	_ "embed"

	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
	"github.com/skip2/go-qrcode"
)

// Messages coming from clients
type ClientMessage struct {
	Type        string `json:"type"`                  // "createRoom", "joinRoom", "setLetters", "speakWord"
	RoomID      string `json:"roomID,omitempty"`      // joinRoom / setLetters / speakWord
	Team1Letter string `json:"team1Letter,omitempty"` // setLetters
	Team2Letter string `json:"team2Letter,omitempty"` // setLetters
	Word        string `json:"word,omitempty"`        // speakWord
	TeamNumber  string `json:"teamNumber,omitempty"`  // speakWord: "1" or "2"
}

// RoomCreatedMessage is unicast to the creator of a fresh room.
type RoomCreatedMessage struct {
	Type   string `json:"type"` // "roomCreated"
	RoomID string `json:"roomID"`
}

// UserJoinedMessage is broadcast to existing members when someone joins.
type UserJoinedMessage struct {
	Type    string `json:"type"` // "userJoined"
	Message string `json:"message"`
}

// GameStateMessage carries a full state snapshot; sent on join and
// after every mutation.
type GameStateMessage struct {
	Type  string     `json:"type"` // "gameStateUpdate"
	State *GameState `json:"state"`
}

// ShowMessage accompanies a gameStateUpdate after a word is judged.
type ShowMessage struct {
	Type    string `json:"type"` // "showMessage"
	Message string `json:"message"`
	Kind    string `json:"kind"` // "success", "warning" or "error"
}

// ErrorMessage is unicast, e.g. for an unknown room code.
type ErrorMessage struct {
	Type    string `json:"type"` // "errorMsg"
	Message string `json:"message"`
}

type Client struct {
	conn *websocket.Conn
	send chan any
	room *Room
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

func serveWS(cfg *Config, store *SessionStore) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Println("upgrade error:", err)
			return
		}

		client := &Client{
			conn: conn,
			send: make(chan any, 8),
		}

		go client.writePump()
		client.readPump(cfg, store)
	}
}

func (c *Client) readPump(cfg *Config, store *SessionStore) {
	defer func() {
		if c.room != nil {
			c.room.leave(c)
		} else {
			close(c.send)
		}
		_ = c.conn.Close()
	}()

	for {
		var msg ClientMessage
		if err := c.conn.ReadJSON(&msg); err != nil {
			return
		}

		switch msg.Type {
		case "createRoom":
			if c.room != nil {
				continue
			}
			room := store.createRoom()
			c.send <- RoomCreatedMessage{
				Type:   "roomCreated",
				RoomID: room.id,
			}
			if room.join(c) {
				c.room = room
			}

		case "joinRoom":
			if c.room != nil {
				continue
			}
			room, ok := store.getRoom(msg.RoomID)
			if !ok || !room.join(c) {
				c.send <- ErrorMessage{
					Type:    "errorMsg",
					Message: "Room not found",
				}
				continue
			}
			c.room = room

		case "setLetters":
			room, ok := store.getRoom(msg.RoomID)
			if !ok {
				c.deliver(ErrorMessage{
					Type:    "errorMsg",
					Message: "Room not found",
				})
				continue
			}
			room.setLetters(msg.Team1Letter, msg.Team2Letter)

		case "speakWord":
			room, ok := store.getRoom(msg.RoomID)
			if !ok {
				c.deliver(ErrorMessage{
					Type:    "errorMsg",
					Message: "Room not found",
				})
				continue
			}

			teamNumber := 0
			switch msg.TeamNumber {
			case "1":
				teamNumber = 1
			case "2":
				teamNumber = 2
			default:
				continue
			}

			room.speak(speakIntent{
				client:     c,
				teamNumber: teamNumber,
				word:       msg.Word,
			})

		default:
			// ignore unknown types
		}
	}
}

// deliver sends a unicast message, routing through the room's lock
// once the client is a member so it cannot race the room closing the
// send channel.
func (c *Client) deliver(msg any) {
	if c.room != nil {
		c.room.sendTo(c, msg)
		return
	}
	c.send <- msg
}

func (c *Client) writePump() {
	defer c.conn.Close()

	for msg := range c.send {
		if err := c.conn.WriteJSON(msg); err != nil {
			return
		}
	}
}

// QR handler: generates a PNG QR code for a room's join URL using go-qrcode.
func qrHandler(cfg *Config, path string, store *SessionStore) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		roomID := ps.ByName("roomid")
		if _, ok := store.getRoom(roomID); !ok {
			http.Error(w, ErrRoomNotFound.Error(), http.StatusNotFound)
			return
		}

		// Derive scheme (respecting TLS and X-Forwarded-Proto if present).
		scheme := "http"
		if r.TLS != nil {
			scheme = "https"
		}
		if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
			scheme = proto
		}

		url := scheme + "://" + r.Host + cfg.prefix + path + "?room=" + roomID

		const qrSize = 320 // mobile-friendly size
		png, err := qrcode.Encode(url, qrcode.Medium, qrSize)
		if err != nil {
			http.Error(w, "qr generation failed", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write(png)
	}
}

// Transcript handler: renders the room's current scores and word lists
// as plain text.
func transcriptHandler(cfg *Config, store *SessionStore) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		startTime := time.Now()

		roomID := ps.ByName("roomid")
		room, ok := store.getRoom(roomID)
		if !ok {
			http.Error(w, ErrRoomNotFound.Error(), http.StatusNotFound)
			return
		}

		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		securityHeaders(cfg, w)

		written, err := w.Write([]byte(renderTranscript(room.snapshot())))
		if err != nil {
			return
		}

		logf(cfg, "SERVE: Transcript for %s (%s) to %s in %s",
			roomID,
			humanReadableSize(int64(written)),
			realIP(r),
			time.Since(startTime).Round(time.Microsecond),
		)
	}
}

// Print-report handler: same data as the transcript, formatted for
// printing.
func printHandler(cfg *Config, store *SessionStore) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		roomID := ps.ByName("roomid")
		room, ok := store.getRoom(roomID)
		if !ok {
			http.Error(w, ErrRoomNotFound.Error(), http.StatusNotFound)
			return
		}

		report, err := renderPrintReport(room.snapshot())
		if err != nil {
			http.Error(w, "report generation failed", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		securityHeaders(cfg, w)

		_, _ = w.Write([]byte(report))
	}
}

// ---- Static file paths ----

//go:embed wordchain/index.html
var indexHTML []byte

//go:embed wordchain/app.css
var wordchainCSS []byte

//go:embed wordchain/app.js
var wordchainJS []byte

func staticHandler(cfg *Config, contentType string, data []byte) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		w.Header().Set("Content-Type", contentType)
		w.Header().Set("Cache-Control", "public, max-age=3600")
		w.Header().Set("Expires", time.Now().Add(time.Hour).UTC().Format(http.TimeFormat))
		securityHeaders(cfg, w)

		_, _ = w.Write(data)
	}
}

// registerWordGame sets up routes so that:
//   - $path                       → HTML client (create/join via socket)
//   - $path/ws                    → WebSocket shared by all rooms
//   - $path/qr/:roomid            → PNG QR code linking to that room
//   - $path/transcript/:roomid    → plain-text word listing
//   - $path/print/:roomid         → printable report
func registerWordGame(cfg *Config, path string, mux *httprouter.Router) {
	store := newSessionStore(cfg)

	mux.GET(cfg.prefix+path, staticHandler(cfg, "text/html; charset=utf-8", indexHTML))

	// Shared assets (no room in route)
	mux.GET(cfg.prefix+"/assets/wordchain/app.css", staticHandler(cfg, "text/css; charset=utf-8", wordchainCSS))
	mux.GET(cfg.prefix+"/assets/wordchain/app.js", staticHandler(cfg, "application/javascript; charset=utf-8", wordchainJS))

	// Shared websocket; rooms are created and joined over it
	mux.GET(cfg.prefix+path+"/ws", serveWS(cfg, store))

	mux.GET(cfg.prefix+path+"/qr/:roomid", qrHandler(cfg, path, store))

	mux.GET(cfg.prefix+path+"/transcript/:roomid", transcriptHandler(cfg, store))

	mux.GET(cfg.prefix+path+"/print/:roomid", printHandler(cfg, store))
}
