package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/saddam-69/zcardgen/internal/api/metrics"
	"github.com/saddam-69/zcardgen/internal/core/domain"
	"github.com/saddam-69/zcardgen/internal/core/ports"
)

// CardHandler handles HTTP requests for card operations.
type CardHandler struct {
	service ports.CardService
}

func NewCardHandler(service ports.CardService) *CardHandler {
	return &CardHandler{service: service}
}

// Create handles POST /v1/cards.
//
// @Summary      Create a new card
// @Tags         cards
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createCardRequest  true  "Card details"
// @Success      201   {object}  cardResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /v1/cards [post]
func (h *CardHandler) Create(c echo.Context) error {
	var req createCardRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	req.sanitize()
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	_, email, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	card, err := h.service.CreateCard(c.Request().Context(), toCreateInput(req, email))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "user not found"})
		}
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "failed to create card"})
	}

	metrics.CardsCreatedTotal.WithLabelValues(string(card.Theme)).Inc()
	return c.JSON(http.StatusCreated, toCardResponse(card))
}

// List handles GET /v1/cards — every card owned by the caller, views
// ordered newest-first.
//
// @Summary      List the caller's cards
// @Tags         cards
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   cardResponse
// @Failure      401  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /v1/cards [get]
func (h *CardHandler) List(c echo.Context) error {
	_, email, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	cards, err := h.service.ListCards(c.Request().Context(), email)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "failed to list cards"})
	}

	return c.JSON(http.StatusOK, toListResponse(cards))
}

// Update handles PUT /v1/cards. Absent fields stay untouched; a present
// socialLinks array replaces the whole set.
//
// @Summary      Update a card
// @Tags         cards
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updateCardRequest  true  "Card id plus the fields to change"
// @Success      200   {object}  cardResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/cards [put]
func (h *CardHandler) Update(c echo.Context) error {
	var req updateCardRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	req.sanitize()
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	_, email, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	card, err := h.service.UpdateCard(c.Request().Context(), toUpdateInput(req, email))
	if err != nil {
		return h.mutationError(c, err, "failed to update card")
	}

	return c.JSON(http.StatusOK, toCardResponse(card))
}

// Delete handles DELETE /v1/cards?id=.
//
// @Summary      Delete a card
// @Tags         cards
// @Produce      json
// @Security     BearerAuth
// @Param        id   query     string  true  "Card id"
// @Success      200  {object}  successResponse
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/cards [delete]
func (h *CardHandler) Delete(c echo.Context) error {
	id := c.QueryParam("id")
	if id == "" {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "card id required"})
	}
	return h.delete(c, id)
}

// DeleteByID handles DELETE /v1/cards/:id with the same ownership rules.
//
// @Summary      Delete a card by path id
// @Tags         cards
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Card id"
// @Success      200  {object}  successResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/cards/{id} [delete]
func (h *CardHandler) DeleteByID(c echo.Context) error {
	return h.delete(c, c.Param("id"))
}

func (h *CardHandler) delete(c echo.Context, id string) error {
	_, email, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	if err := h.service.DeleteCard(c.Request().Context(), id, email); err != nil {
		return h.mutationError(c, err, "failed to delete card")
	}

	return c.JSON(http.StatusOK, successResponse{Success: true})
}

// GetPublic handles GET /v1/cards/:id — the public read path. The card's
// existence is the only gate; no view is recorded here (tracking is the
// explicit /v1/track call).
//
// @Summary      Get a card by id
// @Tags         cards
// @Produce      json
// @Param        id   path      string  true  "Card id"
// @Success      200  {object}  cardResponse
// @Failure      404  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /v1/cards/{id} [get]
func (h *CardHandler) GetPublic(c echo.Context) error {
	card, err := h.service.GetCard(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrCardNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "card not found"})
		}
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}

	return c.JSON(http.StatusOK, toCardResponse(card))
}

// mutationError maps domain errors from update/delete to their status codes.
// Not-found and forbidden are deliberately distinct: a missing card is never
// reported as forbidden.
func (h *CardHandler) mutationError(c echo.Context, err error, fallback string) error {
	switch {
	case errors.Is(err, domain.ErrCardNotFound):
		return c.JSON(http.StatusNotFound, errorResponse{Error: "card not found"})
	case errors.Is(err, domain.ErrUserNotFound):
		return c.JSON(http.StatusNotFound, errorResponse{Error: "user not found"})
	case errors.Is(err, domain.ErrForbidden):
		return c.JSON(http.StatusForbidden, errorResponse{Error: "access forbidden"})
	}
	return c.JSON(http.StatusInternalServerError, errorResponse{Error: fallback})
}
