package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/hotel_booking_app/internal/core/ports/services"
	"github.com/SscSPs/hotel_booking_app/internal/dto"
	"github.com/SscSPs/hotel_booking_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles HTTP requests related to booking reports
type reportingHandler struct {
	reportingService portssvc.ReportingService
}

// newReportingHandler creates a new reportingHandler
func newReportingHandler(rs portssvc.ReportingService) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
	}
}

// registerReportingRoutes registers the admin reports. The group must already require an admin token.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService) {
	h := newReportingHandler(reportingService)

	reportingGroup := rg.Group("/reports")
	{
		reportingGroup.GET("/top-locations", h.getTopLocations)
		reportingGroup.GET("/monthly-bookings", h.getMonthlyBookings)
		reportingGroup.GET("/compare", h.compareBookings)
		reportingGroup.GET("/rooms-available", h.getRoomsAvailable)
	}
}

// getTopLocations godoc
// @Summary Most booked locations
// @Tags reports
// @Produce json
// @Param limit query int false "How many locations" default(5)
// @Success 200 {array} domain.LocationBookingCount
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse "Admin access required"
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /admin/reports/top-locations [get]
func (h *reportingHandler) getTopLocations(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.TopLocationsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}

	rows, err := h.reportingService.TopLocations(c.Request.Context(), req.Limit)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to generate top locations report")
		return
	}

	c.JSON(http.StatusOK, rows)
}

// getMonthlyBookings godoc
// @Summary Bookings at a location in a month
// @Description Lists the bookings at a location whose stay overlaps the given month, ordered by start date
// @Tags reports
// @Produce json
// @Param locationID query int true "Location ID"
// @Param month query string true "Month (YYYY-MM)"
// @Success 200 {object} dto.MonthlyBookingsResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse "Admin access required"
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /admin/reports/monthly-bookings [get]
func (h *reportingHandler) getMonthlyBookings(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.MonthlyBookingsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}
	logger = logger.With(slog.Int64("location_id", req.LocationID), slog.String("month", req.Month))

	report, err := h.reportingService.MonthlyBookings(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to generate monthly bookings report")
		return
	}

	resp := dto.MonthlyBookingsResponse{
		LocationID: report.LocationID,
		Month:      report.Month.Format(dto.MonthLayout),
		Count:      len(report.Bookings),
		Bookings:   make([]dto.MonthlyBookingResponse, len(report.Bookings)),
	}
	for i, b := range report.Bookings {
		resp.Bookings[i] = dto.MonthlyBookingResponse{
			BookingID:  b.BookingID,
			RoomID:     b.RoomID,
			RoomTypeID: b.RoomTypeID,
			Guests:     b.Guests,
			Start:      b.BookingStart.Format(dto.DateLayout),
			End:        b.BookingEnd.Format(dto.DateLayout),
		}
	}

	logger.Info("Monthly bookings report generated", slog.Int("count", resp.Count))
	c.JSON(http.StatusOK, resp)
}

// compareBookings godoc
// @Summary Compare locations in a month
// @Description Counts bookings per room type for each requested location in the given month
// @Tags reports
// @Produce json
// @Param locationID query []int true "Location IDs" collectionFormat(multi)
// @Param month query string true "Month (YYYY-MM)"
// @Success 200 {array} domain.LocationComparison
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse "Admin access required"
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /admin/reports/compare [get]
func (h *reportingHandler) compareBookings(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CompareBookingsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}

	rows, err := h.reportingService.CompareBookings(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, logger.With(slog.String("month", req.Month)), err, "Failed to compare bookings")
		return
	}

	c.JSON(http.StatusOK, rows)
}

// getRoomsAvailable godoc
// @Summary Count free rooms
// @Description Counts rooms at a location free for the whole interval, optionally limited to some room types
// @Tags reports
// @Produce json
// @Param locationID query int true "Location ID"
// @Param start query string true "First night (YYYY-MM-DD)"
// @Param end query string true "Last night (YYYY-MM-DD)"
// @Param roomTypeID query []int false "Room type IDs" collectionFormat(multi)
// @Success 200 {object} dto.RoomsAvailableResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse "Admin access required"
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /admin/reports/rooms-available [get]
func (h *reportingHandler) getRoomsAvailable(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.RoomsAvailableRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}

	available, err := h.reportingService.RoomsAvailable(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, logger.With(slog.Int64("location_id", req.LocationID)), err, "Failed to count available rooms")
		return
	}

	c.JSON(http.StatusOK, dto.RoomsAvailableResponse{LocationID: req.LocationID, Available: available})
}
