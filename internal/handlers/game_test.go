package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/gw-casino-backend/internal/models"
	"github.com/sbilibin2017/gw-casino-backend/internal/services"
)

func TestGameHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name           string
		body           string
		setupMocks     func(m *MockGameRecorder)
		expectedStatus int
	}{
		{
			name: "winning play settles with default prize",
			body: `{"user_id": 42, "game": "Coin", "bet": 10, "result": "flip", "win": true, "currency": "ton"}`,
			setupMocks: func(m *MockGameRecorder) {
				m.EXPECT().
					Record(gomock.Any(), int64(42), "Coin", 10.0, "flip", true, "ton", 0.0).
					Return(&models.Balance{Ton: 110, Usdt: 0}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "legacy final flag is ignored",
			body: `{"user_id": 42, "game": "Coin", "bet": 10, "result": "flip", "win": false, "currency": "ton", "final": true}`,
			setupMocks: func(m *MockGameRecorder) {
				m.EXPECT().
					Record(gomock.Any(), int64(42), "Coin", 10.0, "flip", false, "ton", 0.0).
					Return(&models.Balance{Ton: 90, Usdt: 0}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "missing game name",
			body:           `{"user_id": 42, "bet": 10, "currency": "ton"}`,
			setupMocks:     func(m *MockGameRecorder) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "insufficient funds",
			body: `{"user_id": 42, "game": "Coin", "bet": 10, "win": false, "currency": "ton"}`,
			setupMocks: func(m *MockGameRecorder) {
				m.EXPECT().
					Record(gomock.Any(), int64(42), "Coin", 10.0, "", false, "ton", 0.0).
					Return(nil, services.ErrInsufficientFunds)
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockGameRecorder(ctrl)
			tt.setupMocks(mockSvc)
			handler := NewGameHandler(mockSvc)

			req := httptest.NewRequest(http.MethodPost, "/game", strings.NewReader(tt.body))
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)

			if tt.expectedStatus == http.StatusOK {
				var resp GameResponse
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
			}
		})
	}
}
