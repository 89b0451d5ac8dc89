package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"reversi/game"
	"reversi/searcher"
)

func doRequest(t *testing.T, handler http.Handler, method, path, body string) (*httptest.ResponseRecorder, statusResponse) {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("{}")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, req)

	var status statusResponse
	if recorder.Code == http.StatusOK && strings.Contains(path, "/api/") {
		require.NoError(t, json.NewDecoder(recorder.Body).Decode(&status))
	}
	return recorder, status
}

func TestStatusEndpoint(t *testing.T) {
	router := New(searcher.Beginner).Router()

	recorder, status := doRequest(t, router, http.MethodGet, "/api/status", "")

	require.Equal(t, http.StatusOK, recorder.Code)
	require.Equal(t, "black", status.Turn)
	require.Equal(t, 2, status.BlackCount)
	require.Equal(t, 2, status.WhiteCount)
	require.Len(t, status.ValidMoves, 4)
	require.False(t, status.GameOver)
	require.Nil(t, status.Winner)
	require.Equal(t, "beginner", status.Difficulty)
}

func TestMoveEndpoint(t *testing.T) {
	t.Run("legal move is applied", func(t *testing.T) {
		router := New(searcher.Beginner).Router()
		position := game.CoordsToPosition(2, 3)

		recorder, status := doRequest(t, router, http.MethodPost, "/api/move",
			`{"position": 19}`)

		require.Equal(t, http.StatusOK, recorder.Code)
		require.Equal(t, 1, status.Cells[position], "Placed disc should be black")
		// The AI reply runs in the background and may or may not have
		// landed yet; either way black gained discs over the start.
		require.GreaterOrEqual(t, status.BlackCount, 3)
	})

	t.Run("illegal move is rejected", func(t *testing.T) {
		router := New(searcher.Beginner).Router()

		recorder, _ := doRequest(t, router, http.MethodPost, "/api/move", `{"position": 0}`)
		require.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("out of range position is rejected", func(t *testing.T) {
		router := New(searcher.Beginner).Router()

		recorder, _ := doRequest(t, router, http.MethodPost, "/api/move", `{"position": 64}`)
		require.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("malformed payload is rejected", func(t *testing.T) {
		router := New(searcher.Beginner).Router()

		recorder, _ := doRequest(t, router, http.MethodPost, "/api/move", `{"position": "a1"}`)
		require.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func TestResetEndpoint(t *testing.T) {
	s := New(searcher.Beginner)
	router := s.Router()

	require.NoError(t, s.match.Play(game.CoordsToPosition(2, 3)))

	recorder, status := doRequest(t, router, http.MethodPost, "/api/reset", "")
	require.Equal(t, http.StatusOK, recorder.Code)
	require.Equal(t, 2, status.BlackCount)
	require.Equal(t, 2, status.WhiteCount)
	require.Equal(t, "black", status.Turn)
}

func TestDifficultyEndpoint(t *testing.T) {
	t.Run("valid tier is applied", func(t *testing.T) {
		s := New(searcher.Beginner)

		recorder, status := doRequest(t, s.Router(), http.MethodPost, "/api/difficulty",
			`{"difficulty": "advanced"}`)

		require.Equal(t, http.StatusOK, recorder.Code)
		require.Equal(t, "advanced", status.Difficulty)
		require.Equal(t, searcher.Advanced, s.currentAI().Difficulty())
	})

	t.Run("unknown tier is rejected", func(t *testing.T) {
		recorder, _ := doRequest(t, New(searcher.Beginner).Router(), http.MethodPost, "/api/difficulty",
			`{"difficulty": "grandmaster"}`)
		require.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}
