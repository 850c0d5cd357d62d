package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func TestHealthHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name           string
		setupMocks     func(db *MockDatabasePinger, cache *MockCachePinger)
		expectedStatus int
		expectedBody   HealthResponse
	}{
		{
			name: "all components reachable",
			setupMocks: func(db *MockDatabasePinger, cache *MockCachePinger) {
				db.EXPECT().PingContext(gomock.Any()).Return(nil)
				cache.EXPECT().Ping(gomock.Any()).Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   HealthResponse{Status: "ok", Database: "ok", Cache: "ok"},
		},
		{
			name: "database unreachable",
			setupMocks: func(db *MockDatabasePinger, cache *MockCachePinger) {
				db.EXPECT().PingContext(gomock.Any()).Return(errors.New("connection refused"))
				cache.EXPECT().Ping(gomock.Any()).Return(nil)
			},
			expectedStatus: http.StatusServiceUnavailable,
			expectedBody:   HealthResponse{Status: "unavailable", Database: "unreachable", Cache: "ok"},
		},
		{
			name: "cache unreachable",
			setupMocks: func(db *MockDatabasePinger, cache *MockCachePinger) {
				db.EXPECT().PingContext(gomock.Any()).Return(nil)
				cache.EXPECT().Ping(gomock.Any()).Return(errors.New("connection refused"))
			},
			expectedStatus: http.StatusServiceUnavailable,
			expectedBody:   HealthResponse{Status: "unavailable", Database: "ok", Cache: "unreachable"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockDB := NewMockDatabasePinger(ctrl)
			mockCache := NewMockCachePinger(ctrl)
			tt.setupMocks(mockDB, mockCache)

			handler := NewHealthHandler(mockDB, mockCache)

			req := httptest.NewRequest(http.MethodGet, "/health", nil)
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)

			var resp HealthResponse
			assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
			assert.Equal(t, tt.expectedBody, resp)
		})
	}
}
