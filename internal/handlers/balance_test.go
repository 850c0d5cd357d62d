package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/gw-casino-backend/internal/models"
	"github.com/sbilibin2017/gw-casino-backend/internal/services"
)

func TestBalanceHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name           string
		url            string
		setupMocks     func(m *MockBalanceReader)
		expectedStatus int
	}{
		{
			name: "successful balance fetch",
			url:  "/balance/42",
			setupMocks: func(m *MockBalanceReader) {
				m.EXPECT().GetBalance(gomock.Any(), int64(42)).
					Return(&models.Balance{Ton: 100, Usdt: 50}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "malformed user id",
			url:            "/balance/abc",
			setupMocks:     func(m *MockBalanceReader) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "unknown user",
			url:  "/balance/42",
			setupMocks: func(m *MockBalanceReader) {
				m.EXPECT().GetBalance(gomock.Any(), int64(42)).
					Return(nil, services.ErrUserNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name: "storage failure",
			url:  "/balance/42",
			setupMocks: func(m *MockBalanceReader) {
				m.EXPECT().GetBalance(gomock.Any(), int64(42)).
					Return(nil, errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader := NewMockBalanceReader(ctrl)
			tt.setupMocks(mockReader)

			router := chi.NewRouter()
			router.Get("/balance/{user_id}", NewBalanceHandler(mockReader))

			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)

			if tt.expectedStatus == http.StatusOK {
				var resp BalanceResponse
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, 100.0, resp.Ton)
				assert.Equal(t, 50.0, resp.Usdt)
			}
		})
	}
}
