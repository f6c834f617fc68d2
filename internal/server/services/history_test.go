package services

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/uuidfeed/internal/server/config"
	"github.com/dmitrijs2005/uuidfeed/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistory_Limits(t *testing.T) {
	tests := []struct {
		name string
		in   int
		want int
	}{
		{"default", 0, 100},
		{"negative", -1, 100},
		{"lower", 10, 10},
		{"clamped", 500, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rm := newFakeRepoManager()
			s := NewHistoryService(nil, rm, &config.Config{HistoryLimit: 100})
			_, err := s.Recent(context.Background(), tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, rm.r.lastLimit)
		})
	}
}

func TestHistory_PassesThroughOrder(t *testing.T) {
	rm := newFakeRepoManager()
	rm.r.recentOut = []*models.Record{{ID: 2, UUID: "b"}, {ID: 1, UUID: "a"}}
	s := NewHistoryService(nil, rm, &config.Config{HistoryLimit: 100})

	got, err := s.Recent(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, int64(2), got[0].ID)
}

func TestHistory_Error(t *testing.T) {
	rm := newFakeRepoManager()
	rm.r.recentErr = errBoom
	s := NewHistoryService(nil, rm, &config.Config{HistoryLimit: 100})

	_, err := s.Recent(context.Background(), 0)
	require.ErrorIs(t, err, errBoom)
}
