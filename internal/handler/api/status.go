package api

import (
	"net/http"

	resdto "order-notifier/internal/handler/dto/response"
	"order-notifier/internal/handler/httperr"
	"order-notifier/internal/pkg/errs"
	"order-notifier/internal/usecase"

	"github.com/gin-gonic/gin"
)

type StatusHandler struct {
	tokens usecase.TokenProvider
	poller usecase.Poller
	seen   usecase.SeenOrderStore
}

func NewStatusHandler(tokens usecase.TokenProvider, poller usecase.Poller, seen usecase.SeenOrderStore) *StatusHandler {
	return &StatusHandler{
		tokens: tokens,
		poller: poller,
		seen:   seen,
	}
}

// Status reports the token lifecycle, the last poll tick and the size of the seen set.
// @Summary Service status
// @Description Token state, last poll tick and number of seen product orders
// @Tags ops
// @Produce json
// @Success 200 {object} resdto.StatusResponse
// @Failure 500 {object} httperr.Response
// @Router /status [get]
func (h *StatusHandler) Status(c *gin.Context) {
	tokenStatus, err := resdto.FromTokenSnapshot(h.tokens.Snapshot())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to build status", nil)
		return
	}
	response := resdto.StatusResponse{
		Token:      tokenStatus,
		SeenOrders: h.seen.Len(),
	}
	if last, ok := h.poller.LastTick(); ok {
		response.LastTick, err = resdto.FromTickResult(last)
		if err != nil {
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to build status", nil)
			return
		}
	}
	c.JSON(http.StatusOK, response)
}

// Ready is 503 until a usable commerce token is held.
// @Summary Readiness probe
// @Tags ops
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} httperr.Response
// @Router /ready [get]
func (h *StatusHandler) Ready(c *gin.Context) {
	snapshot := h.tokens.Snapshot()
	if !snapshot.Usable {
		httperr.AbortWithError(c, http.StatusServiceUnavailable,
			errs.Newf("token state %s", snapshot.State),
			"Commerce API token is not usable",
			gin.H{"state": snapshot.State.String(), "last_error": snapshot.LastError})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}
