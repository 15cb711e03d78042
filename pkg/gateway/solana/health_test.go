package solana

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/provenlabs/chaingate/pkg/gateway/types"
)

func TestProbe(t *testing.T) {
	healthy := &fakeClient{}
	assert.True(t, NewConnectionHealth(healthy).Probe(context.Background()))
	assert.Equal(t, 1, healthy.healthCalls)

	down := &fakeClient{
		getHealth: func(context.Context) (string, error) {
			return "", errors.New("connection refused")
		},
	}
	assert.False(t, NewConnectionHealth(down).Probe(context.Background()))

	behind := &fakeClient{
		getHealth: func(context.Context) (string, error) {
			return "behind", nil
		},
	}
	assert.False(t, NewConnectionHealth(behind).Probe(context.Background()))
}

func TestAwaitReady_ExhaustsAttempts(t *testing.T) {
	client := &fakeClient{
		getHealth: func(context.Context) (string, error) {
			return "", errors.New("connection refused")
		},
	}

	err := NewConnectionHealth(client).AwaitReady(context.Background(), 5, time.Millisecond)
	require.Error(t, err)
	assert.Equal(t, types.KindConnection, types.KindOf(err))
	assert.Equal(t, 5, client.healthCalls)
}

func TestAwaitReady_SucceedsMidway(t *testing.T) {
	client := &fakeClient{}
	client.getHealth = func(context.Context) (string, error) {
		if client.healthCalls < 3 {
			return "", errors.New("connection refused")
		}
		return "ok", nil
	}

	err := NewConnectionHealth(client).AwaitReady(context.Background(), 10, time.Millisecond)
	require.NoError(t, err)
	assert.Equal(t, 3, client.healthCalls)
}

func TestAwaitReady_FirstProbeHealthy(t *testing.T) {
	client := &fakeClient{}

	err := NewConnectionHealth(client).AwaitReady(context.Background(), 10, time.Second)
	require.NoError(t, err)
	assert.Equal(t, 1, client.healthCalls)
}
