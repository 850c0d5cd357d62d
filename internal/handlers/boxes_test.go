package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/gw-casino-backend/internal/services"
)

func TestBoxesHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name           string
		body           string
		setupMocks     func(m *MockBoxesPlayer)
		expectedStatus int
		expected       *BoxesResponse
	}{
		{
			name: "winning pick",
			body: `{"user_id": 42, "username": "alice", "currency": "ton", "bet": 5, "choice": 2}`,
			setupMocks: func(m *MockBoxesPlayer) {
				m.EXPECT().
					Play(gomock.Any(), int64(42), "alice", "ton", 5.0, 2).
					Return(&services.BoxResult{Win: true, Prize: 10, ChosenBox: 2, WinningBox: 2}, nil)
			},
			expectedStatus: http.StatusOK,
			expected:       &BoxesResponse{Win: true, Prize: 10, ChosenBox: 2, WinningBox: 2},
		},
		{
			name: "losing pick",
			body: `{"user_id": 42, "username": "alice", "currency": "ton", "bet": 5, "choice": 3}`,
			setupMocks: func(m *MockBoxesPlayer) {
				m.EXPECT().
					Play(gomock.Any(), int64(42), "alice", "ton", 5.0, 3).
					Return(&services.BoxResult{Win: false, ChosenBox: 3, WinningBox: 1}, nil)
			},
			expectedStatus: http.StatusOK,
			expected:       &BoxesResponse{Win: false, Prize: 0, ChosenBox: 3, WinningBox: 1},
		},
		{
			name: "invalid box",
			body: `{"user_id": 42, "currency": "ton", "bet": 5, "choice": 7}`,
			setupMocks: func(m *MockBoxesPlayer) {
				m.EXPECT().
					Play(gomock.Any(), int64(42), "", "ton", 5.0, 7).
					Return(nil, services.ErrInvalidChoice)
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "zero bet",
			body:           `{"user_id": 42, "currency": "ton", "bet": 0, "choice": 1}`,
			setupMocks:     func(m *MockBoxesPlayer) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockBoxesPlayer(ctrl)
			tt.setupMocks(mockSvc)
			handler := NewBoxesHandler(mockSvc)

			req := httptest.NewRequest(http.MethodPost, "/boxes/start", strings.NewReader(tt.body))
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)

			if tt.expected != nil {
				var resp BoxesResponse
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, *tt.expected, resp)
			}
		})
	}
}
