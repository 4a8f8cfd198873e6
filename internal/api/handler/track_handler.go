package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/saddam-69/zcardgen/internal/core/ports"
)

// ViewDispatcher is the interface the handler uses to enqueue view records.
type ViewDispatcher interface {
	Enqueue(view ports.RecordViewInput)
}

// TrackHandler handles public view tracking.
type TrackHandler struct {
	views      ports.ViewService
	dispatcher ViewDispatcher
}

// NewTrackHandler creates a TrackHandler backed by the given dispatcher.
func NewTrackHandler(views ports.ViewService, dispatcher ViewDispatcher) *TrackHandler {
	return &TrackHandler{views: views, dispatcher: dispatcher}
}

// Track handles POST /v1/track — verifies the card exists, then enqueues the
// view insert and returns 202. IP and user agent come from transport
// metadata, never from the body.
//
// @Summary      Record a card view
// @Tags         track
// @Accept       json
// @Produce      json
// @Param        body  body      trackViewRequest  true  "Card id"
// @Success      202   {object}  acceptedResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /v1/track [post]
func (h *TrackHandler) Track(c echo.Context) error {
	var req trackViewRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	exists, err := h.views.CardExists(c.Request().Context(), req.CardID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
	if !exists {
		return c.JSON(http.StatusNotFound, errorResponse{Error: "card not found"})
	}

	h.dispatcher.Enqueue(ports.RecordViewInput{
		CardID:    req.CardID,
		IPAddress: c.RealIP(),
		UserAgent: c.Request().UserAgent(),
	})

	return c.JSON(http.StatusAccepted, acceptedResponse{Message: "view accepted"})
}
