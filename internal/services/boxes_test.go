package services

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/gw-casino-backend/internal/models"
)

func TestBoxesService_Play(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()

	tests := []struct {
		name        string
		choice      int
		rng         Rand
		mockSetup   func() (*MockBetWallet, *MockGameLogAppender)
		expected    *BoxResult
		expectedErr error
	}{
		{
			name:   "forced_win_pays_double",
			choice: 2,
			rng:    &stubRand{floats: []float64{0.1, 0.5}}, // forced fires, regular misses
			mockSetup: func() (*MockBetWallet, *MockGameLogAppender) {
				mockWallet := NewMockBetWallet(ctrl)
				mockGames := NewMockGameLogAppender(ctrl)

				mockWallet.EXPECT().
					InitUser(ctx, int64(42), "alice").
					Return(&models.Balance{Ton: 100}, nil)

				mockWallet.EXPECT().
					Debit(ctx, int64(42), "ton", 10.0).
					Return(90.0, nil)

				mockWallet.EXPECT().
					Credit(ctx, int64(42), "ton", 20.0).
					Return(110.0, nil)

				mockGames.EXPECT().
					Append(ctx, gomock.Any()).
					DoAndReturn(func(_ context.Context, g *models.GameDB) error {
						assert.Equal(t, models.GameBoxes, g.Game)
						assert.Equal(t, "chose box 2, winning box 2", g.Result)
						assert.True(t, g.Win)
						return nil
					})

				return mockWallet, mockGames
			},
			expected: &BoxResult{Win: true, Prize: 20, ChosenBox: 2, WinningBox: 2},
		},
		{
			name:   "regular_win_fires_alone",
			choice: 1,
			rng:    &stubRand{floats: []float64{0.9, 0.005}},
			mockSetup: func() (*MockBetWallet, *MockGameLogAppender) {
				mockWallet := NewMockBetWallet(ctrl)
				mockGames := NewMockGameLogAppender(ctrl)

				mockWallet.EXPECT().
					InitUser(ctx, int64(42), "alice").
					Return(&models.Balance{Ton: 100}, nil)

				mockWallet.EXPECT().
					Debit(ctx, int64(42), "ton", 10.0).
					Return(90.0, nil)

				mockWallet.EXPECT().
					Credit(ctx, int64(42), "ton", 20.0).
					Return(110.0, nil)

				mockGames.EXPECT().
					Append(ctx, gomock.Any()).
					Return(nil)

				return mockWallet, mockGames
			},
			expected: &BoxResult{Win: true, Prize: 20, ChosenBox: 1, WinningBox: 1},
		},
		{
			name:   "loss_moves_prize_to_another_box",
			choice: 3,
			// both draws miss; IntN(2) == 1 picks the second remaining box
			rng: &stubRand{floats: []float64{0.9, 0.9}, ints: []int{1}},
			mockSetup: func() (*MockBetWallet, *MockGameLogAppender) {
				mockWallet := NewMockBetWallet(ctrl)
				mockGames := NewMockGameLogAppender(ctrl)

				mockWallet.EXPECT().
					InitUser(ctx, int64(42), "alice").
					Return(&models.Balance{Ton: 100}, nil)

				mockWallet.EXPECT().
					Debit(ctx, int64(42), "ton", 10.0).
					Return(90.0, nil)

				mockGames.EXPECT().
					Append(ctx, gomock.Any()).
					DoAndReturn(func(_ context.Context, g *models.GameDB) error {
						assert.Equal(t, "chose box 3, winning box 2", g.Result)
						assert.False(t, g.Win)
						return nil
					})

				return mockWallet, mockGames
			},
			expected: &BoxResult{Win: false, Prize: 0, ChosenBox: 3, WinningBox: 2},
		},
		{
			name:   "invalid_box_number",
			choice: 4,
			rng:    &stubRand{},
			mockSetup: func() (*MockBetWallet, *MockGameLogAppender) {
				return NewMockBetWallet(ctrl), NewMockGameLogAppender(ctrl)
			},
			expectedErr: ErrInvalidChoice,
		},
		{
			name:   "insufficient_funds_rejects_play",
			choice: 1,
			rng:    &stubRand{},
			mockSetup: func() (*MockBetWallet, *MockGameLogAppender) {
				mockWallet := NewMockBetWallet(ctrl)
				mockGames := NewMockGameLogAppender(ctrl)

				mockWallet.EXPECT().
					InitUser(ctx, int64(42), "alice").
					Return(&models.Balance{}, nil)

				mockWallet.EXPECT().
					Debit(ctx, int64(42), "ton", 10.0).
					Return(0.0, ErrInsufficientFunds)

				return mockWallet, mockGames
			},
			expectedErr: ErrInsufficientFunds,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockWallet, mockGames := tt.mockSetup()
			svc := NewBoxesService(mockWallet, mockGames, tt.rng)

			result, err := svc.Play(ctx, 42, "alice", "ton", 10, tt.choice)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, result)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}
