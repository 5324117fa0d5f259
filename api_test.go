package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServeCreateRoom(t *testing.T) {
	testCases := []struct {
		name       string
		body       string
		wantStatus int
		wantError  string
	}{
		{
			name:       "trivia room",
			body:       `{"game":"trivia","host":"Alice"}`,
			wantStatus: http.StatusOK,
		},
		{
			name:       "unknown variant",
			body:       `{"game":"charades","host":"Alice"}`,
			wantStatus: http.StatusBadRequest,
			wantError:  ErrInvalidGame.Error(),
		},
		{
			name:       "malformed body",
			body:       `{"game":`,
			wantStatus: http.StatusBadRequest,
			wantError:  "invalid request body",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := &Config{}
			store := newRoomStore()

			mux := httprouter.New()
			mux.POST("/api/create", serveCreateRoom(cfg, store))

			req := httptest.NewRequest(http.MethodPost, "/api/create", strings.NewReader(tc.body))
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)

			if tc.wantError != "" {
				var apiErr apiError
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&apiErr))
				assert.Equal(t, tc.wantError, apiErr.Error)
				assert.Zero(t, store.Len())
				return
			}

			var created createResponse
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&created))
			assert.Len(t, created.Code, codeLength)

			room, ok := store.Get(created.Code)
			require.True(t, ok)
			assert.Equal(t, "trivia", room.Game)
			assert.Equal(t, StatusWaiting, room.Status)
		})
	}
}

func TestServeRoomQR(t *testing.T) {
	mux := httprouter.New()
	mux.GET("/room/:code/qr", serveRoomQR)

	req := httptest.NewRequest(http.MethodGet, "/room/ABC234/qr", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.NotEmpty(t, rec.Body.Bytes())
}
