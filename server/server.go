package server

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"reversi/engine"
	"reversi/game"
	"reversi/searcher"
)

// Server is the HTTP/WebSocket shell around one match: the human plays
// black through the REST surface, the AI answers as white in the background,
// and every applied move is broadcast to the websocket clients.
type Server struct {
	match   *engine.Match
	aiColor game.PlayerColor

	mu         sync.Mutex
	ai         *searcher.AI
	difficulty searcher.Difficulty

	clientsMu sync.Mutex
	clients   map[*websocket.Conn]chan []byte

	upgrader websocket.Upgrader
}

func New(difficulty searcher.Difficulty) *Server {
	return &Server{
		match:      engine.NewMatch(),
		aiColor:    game.White,
		ai:         searcher.NewAI(difficulty),
		difficulty: difficulty,
		clients:    make(map[*websocket.Conn]chan []byte),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// Run serves the API on addr and pumps match updates to websocket clients
// until the listener fails.
func (s *Server) Run(addr string) error {
	go s.broadcastUpdates()

	log.Info().Str("addr", addr).Stringer("difficulty", s.currentDifficulty()).Msg("serving")
	return http.ListenAndServe(addr, s.Router())
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/api/ping", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	})
	r.Get("/api/status", s.handleStatus)
	r.Post("/api/move", s.handleMove)
	r.Post("/api/reset", s.handleReset)
	r.Post("/api/difficulty", s.handleDifficulty)
	r.Get("/ws", s.handleWS)

	return r
}

type statusResponse struct {
	Cells      [64]int `json:"cells"` // 0 empty, 1 black, 2 white
	Turn       string  `json:"turn"`
	ValidMoves []uint8 `json:"valid_moves"`
	BlackCount int     `json:"black_count"`
	WhiteCount int     `json:"white_count"`
	GameOver   bool    `json:"game_over"`
	Winner     *string `json:"winner"`
	Difficulty string  `json:"difficulty"`
	AIColor    string  `json:"ai_color"`
}

type moveRequest struct {
	Position uint8 `json:"position"`
}

type difficultyRequest struct {
	Difficulty string `json:"difficulty"`
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.status())
}

func (s *Server) handleMove(w http.ResponseWriter, r *http.Request) {
	var payload moveRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid payload"})
		return
	}
	if payload.Position >= 64 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "position out of range"})
		return
	}

	if err := s.match.Play(payload.Position); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	// The AI replies in the background; clients observe it over /ws.
	if !s.match.GameOver() && s.match.Turn() == s.aiColor {
		s.match.StartAI(s.currentAI())
	}

	writeJSON(w, http.StatusOK, s.status())
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	s.match.Reset()
	status := s.status()
	writeJSON(w, http.StatusOK, status)
	s.broadcast(status)
}

func (s *Server) handleDifficulty(w http.ResponseWriter, r *http.Request) {
	var payload difficultyRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid payload"})
		return
	}
	difficulty, err := searcher.ParseDifficulty(payload.Difficulty)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	s.mu.Lock()
	s.difficulty = difficulty
	s.ai = searcher.NewAI(difficulty)
	s.mu.Unlock()

	log.Info().Stringer("difficulty", difficulty).Msg("difficulty changed")
	writeJSON(w, http.StatusOK, s.status())
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error().Err(err).Msg("websocket upgrade failed")
		return
	}

	send := make(chan []byte, 16)
	s.clientsMu.Lock()
	s.clients[conn] = send
	s.clientsMu.Unlock()

	go func() {
		defer s.dropClient(conn)
		for data := range send {
			if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}
		}
	}()

	// Drain reads to notice the close.
	go func() {
		defer s.dropClient(conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

func (s *Server) dropClient(conn *websocket.Conn) {
	s.clientsMu.Lock()
	if send, ok := s.clients[conn]; ok {
		delete(s.clients, conn)
		close(send)
	}
	s.clientsMu.Unlock()
	conn.Close()
}

// broadcastUpdates relays every applied move or pass to the clients.
func (s *Server) broadcastUpdates() {
	for range s.match.Updates() {
		s.broadcast(s.status())
	}
}

func (s *Server) broadcast(status statusResponse) {
	data, err := json.Marshal(status)
	if err != nil {
		return
	}
	s.clientsMu.Lock()
	for _, send := range s.clients {
		select {
		case send <- data:
		default:
		}
	}
	s.clientsMu.Unlock()
}

func (s *Server) currentAI() *searcher.AI {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ai
}

func (s *Server) currentDifficulty() searcher.Difficulty {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.difficulty
}

func (s *Server) status() statusResponse {
	board := s.match.Board()
	turn := s.match.Turn()

	status := statusResponse{
		Turn:       turn.String(),
		BlackCount: board.CountPieces(game.Black),
		WhiteCount: board.CountPieces(game.White),
		GameOver:   s.match.GameOver(),
		Difficulty: s.currentDifficulty().String(),
		AIColor:    s.aiColor.String(),
	}
	for position := uint8(0); position < 64; position++ {
		if color, occupied := board.Piece(position); occupied {
			if color == game.Black {
				status.Cells[position] = 1
			} else {
				status.Cells[position] = 2
			}
		}
	}
	for _, move := range board.ValidMovesList(turn) {
		status.ValidMoves = append(status.ValidMoves, move.Position)
	}
	if winner, ok := s.match.Winner(); ok {
		name := winner.String()
		status.Winner = &name
	}
	return status
}

func writeJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}
