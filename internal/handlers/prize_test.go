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

func TestPrizeHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name           string
		body           string
		setupMocks     func(m *MockPrizeAdder)
		expectedStatus int
	}{
		{
			name: "successful prize",
			body: `{"id": 42, "currency": "ton", "amount": 20}`,
			setupMocks: func(m *MockPrizeAdder) {
				m.EXPECT().AddPrize(gomock.Any(), int64(42), "ton", 20.0).
					Return(120.0, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "zero amount",
			body:           `{"id": 42, "currency": "ton", "amount": 0}`,
			setupMocks:     func(m *MockPrizeAdder) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "unknown user",
			body: `{"id": 42, "currency": "ton", "amount": 20}`,
			setupMocks: func(m *MockPrizeAdder) {
				m.EXPECT().AddPrize(gomock.Any(), int64(42), "ton", 20.0).
					Return(0.0, services.ErrUserNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockPrizeAdder(ctrl)
			tt.setupMocks(mockSvc)
			handler := NewPrizeHandler(mockSvc)

			req := httptest.NewRequest(http.MethodPost, "/balance/prize", strings.NewReader(tt.body))
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)

			if tt.expectedStatus == http.StatusOK {
				var resp PrizeResponse
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, "prize_added", resp.Status)
				assert.Equal(t, 120.0, resp.NewBalance)
			}
		})
	}
}
