package storage

import (
	"testing"
	"time"

	"github.com/Davetheuj/SCWebService/internal/domains/entities"
	"github.com/stretchr/testify/assert"
)

func TestSelectHost(t *testing.T) {
	base := time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)

	alice := entities.MatchmakingHost{Username: "alice", Rating: 1500, JoinCode: "ZZZZ", CreatedAt: base.Add(-time.Minute)}
	bob := entities.MatchmakingHost{Username: "bob", Rating: 1600, JoinCode: "AAAA", CreatedAt: base}
	carol := entities.MatchmakingHost{Username: "carol", Rating: 1400, JoinCode: "BBBB", CreatedAt: base.Add(time.Minute)}

	tests := []struct {
		name      string
		hosts     []entities.MatchmakingHost
		requester string
		want      string
		found     bool
	}{
		{
			name:      "empty queue",
			hosts:     nil,
			requester: "alice",
			found:     false,
		},
		{
			name:      "queue holding only the requester",
			hosts:     []entities.MatchmakingHost{alice},
			requester: "alice",
			found:     false,
		},
		{
			name:      "single other host",
			hosts:     []entities.MatchmakingHost{carol},
			requester: "alice",
			want:      "carol",
			found:     true,
		},
		{
			name:      "earliest wins regardless of rating proximity",
			hosts:     []entities.MatchmakingHost{bob, carol},
			requester: "alice",
			want:      "bob",
			found:     true,
		},
		{
			name:      "order of scan pages does not matter",
			hosts:     []entities.MatchmakingHost{carol, bob},
			requester: "alice",
			want:      "bob",
			found:     true,
		},
		{
			name:      "requester skipped even when queued longest",
			hosts:     []entities.MatchmakingHost{alice, bob, carol},
			requester: "alice",
			want:      "bob",
			found:     true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			host, ok := selectHost(tt.hosts, tt.requester)
			assert.Equal(t, tt.found, ok)
			if tt.found {
				assert.Equal(t, tt.want, host.Username)
			}
		})
	}
}
