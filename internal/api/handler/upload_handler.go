package handler

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/saddam-69/zcardgen/internal/api/metrics"
	"github.com/saddam-69/zcardgen/internal/core/ports"
)

// UploadHandler handles logo upload and removal against the blob store.
type UploadHandler struct {
	store ports.BlobStore
	log   zerolog.Logger
}

func NewUploadHandler(store ports.BlobStore, log zerolog.Logger) *UploadHandler {
	return &UploadHandler{store: store, log: log}
}

// Upload handles POST /v1/uploads (multipart, field "file").
//
// @Summary      Upload a file
// @Tags         uploads
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        file  formData  file  true  "File to store"
// @Success      200   {object}  uploadResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /v1/uploads [post]
func (h *UploadHandler) Upload(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "no file provided"})
	}

	src, err := fileHeader.Open()
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "no file provided"})
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "failed to store file"})
	}

	url, err := h.store.Store(data, fileHeader.Filename)
	if err != nil {
		h.log.Error().Err(err).Str("filename", fileHeader.Filename).Msg("blob store failed")
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "failed to store file"})
	}

	metrics.UploadsTotal.WithLabelValues("store").Inc()
	return c.JSON(http.StatusOK, uploadResponse{URL: url})
}

// Remove handles DELETE /v1/uploads. Removal is idempotent: a url that no
// longer resolves to a blob still yields success.
//
// @Summary      Remove an uploaded file
// @Tags         uploads
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      removeUploadRequest  true  "Public URL of the blob"
// @Success      200   {object}  successResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /v1/uploads [delete]
func (h *UploadHandler) Remove(c echo.Context) error {
	var req removeUploadRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	if err := h.store.RemoveByURL(req.URL); err != nil {
		h.log.Error().Err(err).Str("url", req.URL).Msg("blob removal failed")
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "failed to remove file"})
	}

	metrics.UploadsTotal.WithLabelValues("remove").Inc()
	return c.JSON(http.StatusOK, successResponse{Success: true})
}
