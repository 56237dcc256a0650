package services

import (
	"context"
	"errors"
	"testing"

	"revobot/domain/entities"
	"revobot/domain/interfaces"
	"revobot/domain/testhelpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func int64Ptr(v int64) *int64 {
	return &v
}

func TestGuildSettingsService_GetSettings(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		setupMock   func(*testhelpers.MockGuildSettingsRepository)
		want        *entities.GuildSettings
		wantErr     bool
		errContains string
	}{
		{
			name: "configured guild",
			setupMock: func(mockRepo *testhelpers.MockGuildSettingsRepository) {
				mockRepo.On("GetGuildSettings", context.Background(), int64(42)).Return(&entities.GuildSettings{
					GuildID:          42,
					ArrivalChannelID: int64Ptr(100),
				}, nil)
			},
			want: &entities.GuildSettings{GuildID: 42, ArrivalChannelID: int64Ptr(100)},
		},
		{
			name: "never configured guild returns nil",
			setupMock: func(mockRepo *testhelpers.MockGuildSettingsRepository) {
				mockRepo.On("GetGuildSettings", context.Background(), int64(42)).Return(nil, nil)
			},
			want: nil,
		},
		{
			name: "repository error",
			setupMock: func(mockRepo *testhelpers.MockGuildSettingsRepository) {
				mockRepo.On("GetGuildSettings", context.Background(), int64(42)).Return(nil, errors.New("database connection failed"))
			},
			wantErr:     true,
			errContains: "failed to get guild settings",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mockRepo := new(testhelpers.MockGuildSettingsRepository)
			tt.setupMock(mockRepo)
			service := NewGuildSettingsService(mockRepo)

			got, err := service.GetSettings(context.Background(), 42)

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
				assert.Nil(t, got)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestGuildSettingsService_UpdateFields(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		method   string
		call     func(ctx context.Context, svc interfaces.GuildSettingsService, id *int64) error
		input    *int64
		expected *int64
	}{
		{
			name:   "set arrival channel",
			method: "UpdateArrivalChannel",
			call: func(ctx context.Context, svc interfaces.GuildSettingsService, id *int64) error {
				return svc.UpdateArrivalChannel(ctx, 42, id)
			},
			input:    int64Ptr(100),
			expected: int64Ptr(100),
		},
		{
			name:   "clear condemnation channel",
			method: "UpdateCondemnationChannel",
			call: func(ctx context.Context, svc interfaces.GuildSettingsService, id *int64) error {
				return svc.UpdateCondemnationChannel(ctx, 42, id)
			},
			input:    nil,
			expected: nil,
		},
		{
			name:   "zero notifier role is treated as clear",
			method: "UpdateNotifierRole",
			call: func(ctx context.Context, svc interfaces.GuildSettingsService, id *int64) error {
				return svc.UpdateNotifierRole(ctx, 42, id)
			},
			input:    int64Ptr(0),
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctx := context.Background()
			mockRepo := new(testhelpers.MockGuildSettingsRepository)
			mockRepo.On(tt.method, ctx, int64(42), tt.expected).Return(nil)

			err := tt.call(ctx, NewGuildSettingsService(mockRepo), tt.input)

			require.NoError(t, err)
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestGuildSettingsService_UpdateArrivalChannel_RepositoryError(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	mockRepo := new(testhelpers.MockGuildSettingsRepository)
	mockRepo.On("UpdateArrivalChannel", ctx, int64(42), int64Ptr(100)).Return(errors.New("boom"))

	err := NewGuildSettingsService(mockRepo).UpdateArrivalChannel(ctx, 42, int64Ptr(100))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to update arrival channel")
	mockRepo.AssertExpectations(t)
}
