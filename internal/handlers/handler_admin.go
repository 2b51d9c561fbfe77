package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/hotel_booking_app/internal/core/ports/services"
	"github.com/SscSPs/hotel_booking_app/internal/dto"
	"github.com/SscSPs/hotel_booking_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// adminHandler handles the admin changes to prices and inventory
type adminHandler struct {
	adminService portssvc.AdminSvcFacade
}

func newAdminHandler(as portssvc.AdminSvcFacade) *adminHandler {
	return &adminHandler{
		adminService: as,
	}
}

// registerAdminRoutes registers the admin write routes. The group must already require an admin token.
func registerAdminRoutes(rg *gin.RouterGroup, adminService portssvc.AdminSvcFacade) {
	h := newAdminHandler(adminService)

	rg.PUT("/locations/:locationID/rates", h.updateLocationRates)
	rg.PUT("/currencies/:code", h.updateConversionRate)

	roomTypes := rg.Group("/room-types")
	{
		roomTypes.POST("", h.createRoomType)
		roomTypes.PUT("/:roomTypeID", h.updateRoomType)
	}

	rooms := rg.Group("/rooms")
	{
		rooms.POST("", h.createRoom)
		rooms.DELETE("/:roomID", h.deleteRoom)
	}
}

// updateLocationRates godoc
// @Summary Set a location's nightly rates
// @Description Sets the peak and off-peak nightly prices, in the location's currency. Amounts are rounded to 2 places.
// @Tags admin
// @Accept json
// @Produce json
// @Param locationID path int true "Location ID"
// @Param rates body dto.UpdateLocationRatesRequest true "New rates"
// @Success 200 {object} dto.LocationResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse "Admin access required"
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /admin/locations/{locationID}/rates [put]
func (h *adminHandler) updateLocationRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	locationID, ok := parseIDParam(c, "locationID")
	if !ok {
		return
	}
	var req dto.UpdateLocationRatesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}

	location, err := h.adminService.UpdateLocationRates(c.Request.Context(), locationID, req)
	if err != nil {
		respondServiceError(c, logger.With(slog.Int64("location_id", locationID)), err, "Failed to update location rates")
		return
	}

	c.JSON(http.StatusOK, dto.ToLocationResponse(location))
}

// updateConversionRate godoc
// @Summary Set a currency's conversion rate
// @Description Sets the rate against the base currency. The base currency's rate is fixed at 1.
// @Tags admin
// @Accept json
// @Produce json
// @Param code path string true "Currency Code (e.g., USD)"
// @Param rate body dto.UpdateConversionRateRequest true "New rate"
// @Success 200 {object} dto.CurrencyResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse "Admin access required"
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /admin/currencies/{code} [put]
func (h *adminHandler) updateConversionRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UpdateConversionRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}

	currency, err := h.adminService.UpdateConversionRate(c.Request.Context(), c.Param("code"), req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update conversion rate")
		return
	}

	c.JSON(http.StatusOK, dto.ToCurrencyResponse(currency))
}

// createRoomType godoc
// @Summary Create a room type
// @Description The code must be one the pricing policy has a multiplier for (S, D or F)
// @Tags admin
// @Accept json
// @Produce json
// @Param roomType body dto.CreateRoomTypeRequest true "Room type"
// @Success 201 {object} dto.RoomTypeResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse "Admin access required"
// @Failure 409 {object} dto.ErrorResponse "Code already in use"
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /admin/room-types [post]
func (h *adminHandler) createRoomType(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateRoomTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}

	roomType, err := h.adminService.CreateRoomType(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create room type")
		return
	}

	c.JSON(http.StatusCreated, dto.ToRoomTypeResponse(roomType))
}

// updateRoomType godoc
// @Summary Update a room type
// @Description Changes the name and capacity. The code cannot change.
// @Tags admin
// @Accept json
// @Produce json
// @Param roomTypeID path int true "Room Type ID"
// @Param roomType body dto.UpdateRoomTypeRequest true "Room type"
// @Success 200 {object} dto.RoomTypeResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse "Admin access required"
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /admin/room-types/{roomTypeID} [put]
func (h *adminHandler) updateRoomType(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	roomTypeID, ok := parseIDParam(c, "roomTypeID")
	if !ok {
		return
	}
	var req dto.UpdateRoomTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}

	roomType, err := h.adminService.UpdateRoomType(c.Request.Context(), roomTypeID, req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update room type")
		return
	}

	c.JSON(http.StatusOK, dto.ToRoomTypeResponse(roomType))
}

// createRoom godoc
// @Summary Add a room
// @Tags admin
// @Accept json
// @Produce json
// @Param room body dto.CreateRoomRequest true "Room"
// @Success 201 {object} dto.RoomResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse "Admin access required"
// @Failure 404 {object} dto.ErrorResponse "Unknown location or room type"
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /admin/rooms [post]
func (h *adminHandler) createRoom(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}

	room, err := h.adminService.CreateRoom(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create room")
		return
	}

	c.JSON(http.StatusCreated, dto.ToRoomResponse(room))
}

// deleteRoom godoc
// @Summary Remove a room
// @Description Only rooms that have never been booked can be removed
// @Tags admin
// @Param roomID path int true "Room ID"
// @Success 204
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse "Admin access required"
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse "Room has bookings"
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /admin/rooms/{roomID} [delete]
func (h *adminHandler) deleteRoom(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	roomID, ok := parseIDParam(c, "roomID")
	if !ok {
		return
	}

	if err := h.adminService.DeleteRoom(c.Request.Context(), roomID); err != nil {
		respondServiceError(c, logger.With(slog.Int64("room_id", roomID)), err, "Failed to delete room")
		return
	}

	c.Status(http.StatusNoContent)
}
