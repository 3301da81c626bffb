package api

import (
	"errors"
	"net/http"
	"strconv"

	reqdto "hotel-booking-api/internal/handler/dto/request"
	resdto "hotel-booking-api/internal/handler/dto/response"
	"hotel-booking-api/internal/pkg/errs"
	"hotel-booking-api/internal/usecase/commands"
	"hotel-booking-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AdminHandler struct {
	hotelCommands  commands.HotelCommands
	bookingQueries queries.BookingQueries
}

func NewAdminHandler(hotelCommands commands.HotelCommands, bookingQueries queries.BookingQueries) *AdminHandler {
	return &AdminHandler{
		hotelCommands:  hotelCommands,
		bookingQueries: bookingQueries,
	}
}

// @Summary Create hotel
// @Description Add a hotel to the catalogue
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateHotelRequest true "Hotel"
// @Success 201 {object} resdto.HotelResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /admin/hotels [post]
func (h *AdminHandler) CreateHotel(c *gin.Context) {
	var req reqdto.CreateHotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.hotelCommands.CreateHotel(c.Request.Context(), req)
	if err != nil {
		h.respondHotelError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromHotelView(view))
}

// @Summary Update hotel
// @Description Replace hotel details
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Hotel ID"
// @Param request body reqdto.UpdateHotelRequest true "Hotel"
// @Success 200 {object} resdto.HotelResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/hotels/{id} [put]
func (h *AdminHandler) UpdateHotel(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid hotel ID format",
		})
		return
	}

	var req reqdto.UpdateHotelRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.hotelCommands.UpdateHotel(c.Request.Context(), id, req)
	if err != nil {
		h.respondHotelError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromHotelView(view))
}

// @Summary Add room type
// @Description Add a room type to a hotel
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Hotel ID"
// @Param request body reqdto.CreateRoomTypeRequest true "Room type"
// @Success 201 {object} resdto.HotelResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /admin/hotels/{id}/room-types [post]
func (h *AdminHandler) CreateRoomType(c *gin.Context) {
	hotelID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid hotel ID format",
		})
		return
	}

	var req reqdto.CreateRoomTypeRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.hotelCommands.CreateRoomType(c.Request.Context(), hotelID, req)
	if err != nil {
		h.respondHotelError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromHotelView(view))
}

// @Summary List all bookings
// @Description List recent bookings across all users
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Maximum results"
// @Success 200 {array} resdto.BookingListResponse
// @Failure 403 {object} map[string]string
// @Router /admin/bookings [get]
func (h *AdminHandler) ListBookings(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	items, err := h.bookingQueries.ListAll(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.BookingListResponse, len(items))
	for i, item := range items {
		response[i] = resdto.FromBookingListItem(item)
	}

	c.JSON(http.StatusOK, response)
}

func (h *AdminHandler) respondHotelError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrHotelNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Hotel not found",
		})
	case errors.Is(err, errs.ErrDomainValidation):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Hotel validation failed",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
