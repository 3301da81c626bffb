package api

import (
	"errors"
	"fmt"
	"net/http"

	"hotel-booking-api/internal/handler/httperr"
	"hotel-booking-api/internal/pkg/errs"
	"hotel-booking-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type VoucherHandler struct {
	voucherQueries queries.VoucherQueries
}

func NewVoucherHandler(voucherQueries queries.VoucherQueries) *VoucherHandler {
	return &VoucherHandler{voucherQueries: voucherQueries}
}

// @Summary Get voucher document
// @Description Get the assembled voucher document as JSON without rendering
// @Tags vouchers
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} voucher.Document
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id}/voucher [get]
func (h *VoucherHandler) GetDocument(c *gin.Context) {
	userID, role, ok := actorFrom(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID format",
		})
		return
	}

	doc, err := h.voucherQueries.GetDocument(c.Request.Context(), userID, role, id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, doc)
}

// @Summary Download booking voucher
// @Description Download the booking voucher as a single-page A4 PDF
// @Tags vouchers
// @Produce application/pdf
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {file} binary
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id}/voucher.pdf [get]
func (h *VoucherHandler) DownloadPDF(c *gin.Context) {
	userID, role, ok := actorFrom(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID format",
		})
		return
	}

	artifact, err := h.voucherQueries.GetPDF(c.Request.Context(), userID, role, id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", artifact.Filename))
	c.Data(http.StatusOK, artifact.ContentType, artifact.Data)
}

// @Summary Preview booking voucher
// @Description Render the booking voucher as an inline SVG preview
// @Tags vouchers
// @Produce image/svg+xml
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {file} binary
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id}/voucher.svg [get]
func (h *VoucherHandler) Preview(c *gin.Context) {
	userID, role, ok := actorFrom(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID format",
		})
		return
	}

	artifact, err := h.voucherQueries.GetPreview(c.Request.Context(), userID, role, id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.Data(http.StatusOK, artifact.ContentType, artifact.Data)
}

func (h *VoucherHandler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrBookingNotFound):
		httperr.Abort(c, http.StatusNotFound, err, "Booking not found")
	case errors.Is(err, errs.ErrVoucherRenderFailed):
		httperr.Abort(c, http.StatusInternalServerError, err, "Voucher rendering failed")
	default:
		httperr.Abort(c, http.StatusInternalServerError, err, "Internal server error")
	}
}
