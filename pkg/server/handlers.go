package server

import (
	"net/http"
	"path"

	"github.com/labstack/echo/v4"

	"github.com/provenlabs/chaingate/pkg/build"
	"github.com/provenlabs/chaingate/pkg/gateway"
	"github.com/provenlabs/chaingate/pkg/gateway/types"
)

const recordsRoutePath = "/records"

// Handler maps the wire surface onto ChainProvider calls. It holds no state of
// its own; all durable state lives on the ledger.
type Handler struct {
	Provider gateway.ChainProvider
}

func NewHandler(provider gateway.ChainProvider) *Handler {
	return &Handler{Provider: provider}
}

func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.POST(recordsRoutePath, h.handleStoreRecord)
	e.GET(recordsRoutePath+"/:txID", h.handleRetrieveRecord)
	e.GET("/network", h.handleNetworkInfo)
	e.GET("/healthz", h.handleLiveness)
	e.GET("/readyz", h.handleReadiness)
}

// handleStoreRecord -> POST /records
func (h *Handler) handleStoreRecord(c echo.Context) error {
	ctx := c.Request().Context()

	var req StoreRequest
	if err := c.Bind(&req); err != nil {
		return types.WrapError(types.KindInvalidInput, "invalid request body", err)
	}
	if req.Record == nil {
		return types.NewError(types.KindInvalidInput, "record is missing")
	}

	result, err := h.Provider.StoreRecord(ctx, *req.Record)
	if err != nil {
		return err
	}

	location := path.Join(recordsRoutePath, result.TransactionID)
	c.Response().Header().Set("Location", location)
	return c.JSON(http.StatusCreated, StoreResponse{
		Success:        true,
		TransactionID:  result.TransactionID,
		AccountAddress: result.AccountAddress,
	})
}

// handleRetrieveRecord -> GET /records/:txID
func (h *Handler) handleRetrieveRecord(c echo.Context) error {
	ctx := c.Request().Context()

	txID := c.Param("txID")
	if txID == "" {
		return types.NewError(types.KindInvalidInput, "missing transaction id")
	}

	record, err := h.Provider.RetrieveRecord(ctx, txID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, RetrieveResponse{Record: record})
}

// handleNetworkInfo -> GET /network
func (h *Handler) handleNetworkInfo(c echo.Context) error {
	info, err := h.Provider.GetNetworkInfo(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, info)
}

// handleLiveness -> GET /healthz
func (h *Handler) handleLiveness(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{Status: "ok", Version: build.Version})
}

// handleReadiness -> GET /readyz, a single unretried ledger probe.
func (h *Handler) handleReadiness(c echo.Context) error {
	if !h.Provider.HealthCheck(c.Request().Context()) {
		return c.JSON(http.StatusServiceUnavailable, HealthResponse{Status: "failed", Version: build.Version})
	}
	return c.JSON(http.StatusOK, HealthResponse{Status: "ok", Version: build.Version})
}
