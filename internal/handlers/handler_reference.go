package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/hotel_booking_app/internal/core/ports/services"
	"github.com/SscSPs/hotel_booking_app/internal/dto"
	"github.com/SscSPs/hotel_booking_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// referenceHandler serves the read-only inventory data.
type referenceHandler struct {
	referenceService portssvc.ReferenceSvcFacade
}

func newReferenceHandler(rs portssvc.ReferenceSvcFacade) *referenceHandler {
	return &referenceHandler{
		referenceService: rs,
	}
}

// registerReferenceRoutes registers the currency, location and room type routes.
func registerReferenceRoutes(rg *gin.RouterGroup, referenceService portssvc.ReferenceSvcFacade) {
	h := newReferenceHandler(referenceService)

	currencies := rg.Group("/currencies")
	{
		currencies.GET("", h.listCurrencies)
		currencies.GET("/:code", h.getCurrencyByCode)
	}

	locations := rg.Group("/locations")
	{
		locations.GET("", h.listLocations)
		locations.GET("/:locationID", h.getLocation)
	}

	roomTypes := rg.Group("/room-types")
	{
		roomTypes.GET("", h.listRoomTypes)
		roomTypes.GET("/:roomTypeID", h.getRoomType)
	}
}

// listCurrencies godoc
// @Summary List currencies
// @Description Lists every currency prices can be shown in, with its rate against GBP
// @Tags reference
// @Produce json
// @Success 200 {array} dto.CurrencyResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /currencies [get]
func (h *referenceHandler) listCurrencies(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	currencies, err := h.referenceService.ListCurrencies(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list currencies")
		return
	}

	c.JSON(http.StatusOK, dto.ToListCurrencyResponse(currencies))
}

// getCurrencyByCode godoc
// @Summary Get currency by code
// @Description Retrieves a currency by its 3-letter code
// @Tags reference
// @Produce json
// @Param code path string true "Currency code (e.g. GBP)"
// @Success 200 {object} dto.CurrencyResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /currencies/{code} [get]
func (h *referenceHandler) getCurrencyByCode(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	code := c.Param("code")

	currency, err := h.referenceService.GetCurrencyByCode(c.Request.Context(), code)
	if err != nil {
		respondServiceError(c, logger.With(slog.String("currency_code", code)), err, "Failed to retrieve currency")
		return
	}

	c.JSON(http.StatusOK, dto.ToCurrencyResponse(currency))
}

// listLocations godoc
// @Summary List locations
// @Description Lists hotel locations ordered by name, with their seasonal nightly rates
// @Tags reference
// @Produce json
// @Success 200 {array} dto.LocationResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /locations [get]
func (h *referenceHandler) listLocations(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	locations, err := h.referenceService.ListLocations(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list locations")
		return
	}

	c.JSON(http.StatusOK, dto.ToListLocationResponse(locations))
}

// getLocation godoc
// @Summary Get location
// @Tags reference
// @Produce json
// @Param locationID path int true "Location ID"
// @Success 200 {object} dto.LocationResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /locations/{locationID} [get]
func (h *referenceHandler) getLocation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	locationID, ok := parseIDParam(c, "locationID")
	if !ok {
		return
	}

	location, err := h.referenceService.GetLocation(c.Request.Context(), locationID)
	if err != nil {
		respondServiceError(c, logger.With(slog.Int64("location_id", locationID)), err, "Failed to retrieve location")
		return
	}

	c.JSON(http.StatusOK, dto.ToLocationResponse(location))
}

// listRoomTypes godoc
// @Summary List room types
// @Tags reference
// @Produce json
// @Success 200 {array} dto.RoomTypeResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /room-types [get]
func (h *referenceHandler) listRoomTypes(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	roomTypes, err := h.referenceService.ListRoomTypes(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list room types")
		return
	}

	c.JSON(http.StatusOK, dto.ToListRoomTypeResponse(roomTypes))
}

// getRoomType godoc
// @Summary Get room type
// @Tags reference
// @Produce json
// @Param roomTypeID path int true "Room type ID"
// @Success 200 {object} dto.RoomTypeResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /room-types/{roomTypeID} [get]
func (h *referenceHandler) getRoomType(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	roomTypeID, ok := parseIDParam(c, "roomTypeID")
	if !ok {
		return
	}

	roomType, err := h.referenceService.GetRoomType(c.Request.Context(), roomTypeID)
	if err != nil {
		respondServiceError(c, logger.With(slog.Int64("room_type_id", roomTypeID)), err, "Failed to retrieve room type")
		return
	}

	c.JSON(http.StatusOK, dto.ToRoomTypeResponse(roomType))
}
