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

func TestSubscribeHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name           string
		body           string
		setupMocks     func(m *MockBalanceSubscriber)
		expectedStatus int
		expectedUpdate bool
	}{
		{
			name: "balance changed",
			body: `{"user_id": 42, "current_ton": 100, "current_usdt": 50}`,
			setupMocks: func(m *MockBalanceSubscriber) {
				m.EXPECT().
					Subscribe(gomock.Any(), int64(42), models.Balance{Ton: 100, Usdt: 50}).
					Return(&models.Balance{Ton: 120, Usdt: 50}, true, nil)
			},
			expectedStatus: http.StatusOK,
			expectedUpdate: true,
		},
		{
			name: "window elapsed without change",
			body: `{"user_id": 42, "current_ton": 100, "current_usdt": 50}`,
			setupMocks: func(m *MockBalanceSubscriber) {
				m.EXPECT().
					Subscribe(gomock.Any(), int64(42), models.Balance{Ton: 100, Usdt: 50}).
					Return(nil, false, nil)
			},
			expectedStatus: http.StatusOK,
			expectedUpdate: false,
		},
		{
			name:           "missing user id",
			body:           `{"current_ton": 100}`,
			setupMocks:     func(m *MockBalanceSubscriber) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "unknown user",
			body: `{"user_id": 42}`,
			setupMocks: func(m *MockBalanceSubscriber) {
				m.EXPECT().
					Subscribe(gomock.Any(), int64(42), models.Balance{}).
					Return(nil, false, services.ErrUserNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockBalanceSubscriber(ctrl)
			tt.setupMocks(mockSvc)
			handler := NewSubscribeHandler(mockSvc)

			req := httptest.NewRequest(http.MethodPost, "/balance/subscribe", strings.NewReader(tt.body))
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)

			if tt.expectedStatus == http.StatusOK {
				var resp SubscribeResponse
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, tt.expectedUpdate, resp.Update)
				if tt.expectedUpdate {
					assert.Equal(t, 120.0, resp.Ton)
				}
			}
		})
	}
}

func TestSubscribeHandler_ZeroBalancesStayInTheBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockBalanceSubscriber(ctrl)
	mockSvc.EXPECT().
		Subscribe(gomock.Any(), int64(42), models.Balance{Ton: 10, Usdt: 5}).
		Return(&models.Balance{Ton: 0, Usdt: 0}, true, nil)

	handler := NewSubscribeHandler(mockSvc)

	body := `{"user_id": 42, "current_ton": 10, "current_usdt": 5}`
	req := httptest.NewRequest(http.MethodPost, "/balance/subscribe", strings.NewReader(body))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	// a balance that dropped to zero must still be adoptable by the client
	assert.Contains(t, rr.Body.String(), `"ton":0`)
	assert.Contains(t, rr.Body.String(), `"usdt":0`)
	assert.Contains(t, rr.Body.String(), `"update":true`)
}
