package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	logging "github.com/ipfs/go-log/v2"
	"github.com/labstack/echo/v4"

	"github.com/provenlabs/chaingate/pkg/gateway"
	"github.com/provenlabs/chaingate/pkg/server/middleware"
)

var log = logging.Logger("server")

// NewServer builds the gateway HTTP mux around the given provider.
func NewServer(provider gateway.ChainProvider) *echo.Echo {
	mux := echo.New()
	mux.HideBanner = true
	mux.HTTPErrorHandler = middleware.ErrorHandler
	mux.Use(middleware.RequestID())
	mux.Use(middleware.RequestLogger(log))

	NewHandler(provider).RegisterRoutes(mux)
	return mux
}

// ListenAndServe starts the gateway server and blocks until ctx is cancelled
// or the listener fails.
func ListenAndServe(ctx context.Context, addr string, provider gateway.ChainProvider) error {
	mux := NewServer(provider)
	srv := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Infof("Listening on %s", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}
