package solana

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/gagliardetto/solana-go/rpc"

	"github.com/provenlabs/chaingate/pkg/gateway/types"
)

const (
	// DefaultProbeAttempts bounds AwaitReady; the retry is not resumable, a
	// caller that wants indefinite retry re-invokes AwaitReady itself.
	DefaultProbeAttempts = 10
	DefaultProbeInterval = 3 * time.Second
)

// ConnectionHealth probes the ledger RPC endpoint.
type ConnectionHealth struct {
	client ClientAPI
}

func NewConnectionHealth(client ClientAPI) *ConnectionHealth {
	return &ConnectionHealth{client: client}
}

// Probe performs a single unretried health check.
func (h *ConnectionHealth) Probe(ctx context.Context) bool {
	out, err := h.client.GetHealth(ctx)
	if err != nil {
		log.Debugw("health probe failed", "error", err)
		return false
	}
	return out == rpc.HealthOk
}

// AwaitReady probes up to maxAttempts times, sleeping interval between
// failures. It returns on the first healthy probe, or a terminal connection
// error once all attempts are exhausted.
func (h *ConnectionHealth) AwaitReady(ctx context.Context, maxAttempts int, interval time.Duration) error {
	attempt := 0
	probe := func() (struct{}, error) {
		attempt++
		out, err := h.client.GetHealth(ctx)
		if err != nil {
			log.Infow("connection attempt failed", "attempt", attempt, "max_attempts", maxAttempts, "error", err)
			return struct{}{}, err
		}
		if out != rpc.HealthOk {
			log.Infow("validator not healthy", "attempt", attempt, "max_attempts", maxAttempts, "status", out)
			return struct{}{}, types.NewErrorf(types.KindConnection, "validator reported %q", out)
		}
		log.Infow("connected to validator", "attempt", attempt)
		return struct{}{}, nil
	}

	_, err := backoff.Retry(
		ctx,
		probe,
		backoff.WithBackOff(backoff.NewConstantBackOff(interval)),
		backoff.WithMaxTries(uint(maxAttempts)),
	)
	if err != nil {
		return types.WrapError(types.KindConnection,
			"validator unreachable after bounded retry", err)
	}
	return nil
}
