package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/hotel_booking_app/internal/core/ports/services"
	"github.com/SscSPs/hotel_booking_app/internal/dto"
	"github.com/SscSPs/hotel_booking_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// bookingHandler handles HTTP requests related to bookings
type bookingHandler struct {
	bookingService portssvc.BookingSvcFacade
}

// newBookingHandler creates a new bookingHandler
func newBookingHandler(bs portssvc.BookingSvcFacade) *bookingHandler {
	return &bookingHandler{
		bookingService: bs,
	}
}

// registerBookingRoutes registers routes related to bookings. All of them need an authenticated user.
func registerBookingRoutes(rg *gin.RouterGroup, bookingService portssvc.BookingSvcFacade) {
	h := newBookingHandler(bookingService)

	bookings := rg.Group("/bookings")
	{
		bookings.POST("", h.createBooking)
		bookings.GET("", h.listMyBookings)
		bookings.GET("/:bookingID", h.getBooking)
		bookings.GET("/:bookingID/cancellation", h.previewCancellation)
		bookings.DELETE("/:bookingID", h.cancelBooking)
	}
}

// createBooking godoc
// @Summary Book a room
// @Description Reserves the first free room of the requested type for the whole stay
// @Tags bookings
// @Accept json
// @Produce json
// @Param booking body dto.CreateBookingRequest true "Booking details"
// @Success 201 {object} dto.BookingResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse "Unknown location, room type or currency"
// @Failure 409 {object} dto.ErrorResponse "No room available"
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /bookings [post]
func (h *bookingHandler) createBooking(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}
	applyCurrencyPreference(c, &req.StayRequest)

	logger = logger.With(
		slog.String("user_id", userID),
		slog.Int64("location_id", req.LocationID),
		slog.Int64("room_type_id", req.RoomTypeID),
	)
	logger.Info("Received request to create booking")

	details, err := h.bookingService.CreateBooking(c.Request.Context(), req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create booking")
		return
	}

	logger.Info("Booking created", slog.String("booking_id", details.Booking.BookingID), slog.Int64("room_id", details.Booking.RoomID))
	c.JSON(http.StatusCreated, toBookingResponse(details))
}

// listMyBookings godoc
// @Summary List my bookings
// @Description Lists the caller's bookings, newest first, one page at a time
// @Tags bookings
// @Produce json
// @Param limit query int false "Page size (1-100)" default(20)
// @Param nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListBookingsResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /bookings [get]
func (h *bookingHandler) listMyBookings(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return
	}

	var params dto.ListBookingsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, logger, err)
		return
	}

	page, err := h.bookingService.ListUserBookings(c.Request.Context(), userID, params)
	if err != nil {
		respondServiceError(c, logger.With(slog.String("user_id", userID)), err, "Failed to list bookings")
		return
	}

	resp := dto.ListBookingsResponse{
		Bookings:  make([]dto.BookingResponse, len(page.Bookings)),
		NextToken: page.NextToken,
	}
	for i := range page.Bookings {
		resp.Bookings[i] = toBookingResponse(&page.Bookings[i])
	}
	c.JSON(http.StatusOK, resp)
}

// getBooking godoc
// @Summary Get booking
// @Description Retrieves a booking. Only its owner or an admin may see it, and only until the stay is over.
// @Tags bookings
// @Produce json
// @Param bookingID path string true "Booking ID"
// @Success 200 {object} dto.BookingResponse
// @Failure 400 {object} dto.ErrorResponse "Stay already finished"
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /bookings/{bookingID} [get]
func (h *bookingHandler) getBooking(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	bookingID := c.Param("bookingID")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return
	}

	details, err := h.bookingService.GetBooking(c.Request.Context(), bookingID, userID, middleware.IsAdminFromContext(c))
	if err != nil {
		respondServiceError(c, logger.With(slog.String("booking_id", bookingID), slog.String("user_id", userID)), err, "Failed to retrieve booking")
		return
	}

	c.JSON(http.StatusOK, toBookingResponse(details))
}

// previewCancellation godoc
// @Summary Preview cancellation fee
// @Description Shows what cancelling the booking today would cost, without cancelling it
// @Tags bookings
// @Produce json
// @Param bookingID path string true "Booking ID"
// @Success 200 {object} dto.CancellationResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /bookings/{bookingID}/cancellation [get]
func (h *bookingHandler) previewCancellation(c *gin.Context) {
	h.cancellation(c, false)
}

// cancelBooking godoc
// @Summary Cancel booking
// @Description Cancels the booking and returns the fee charged
// @Tags bookings
// @Produce json
// @Param bookingID path string true "Booking ID"
// @Success 200 {object} dto.CancellationResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /bookings/{bookingID} [delete]
func (h *bookingHandler) cancelBooking(c *gin.Context) {
	h.cancellation(c, true)
}

func (h *bookingHandler) cancellation(c *gin.Context, commit bool) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	bookingID := c.Param("bookingID")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return
	}
	logger = logger.With(slog.String("booking_id", bookingID), slog.String("user_id", userID))

	var (
		preview *portssvc.CancellationPreview
		err     error
	)
	if commit {
		preview, err = h.bookingService.CancelBooking(c.Request.Context(), bookingID, userID)
	} else {
		preview, err = h.bookingService.PreviewCancellation(c.Request.Context(), bookingID, userID)
	}
	if err != nil {
		respondServiceError(c, logger, err, "Failed to cancel booking")
		return
	}

	if commit {
		logger.Info("Booking cancelled", slog.String("fee", preview.Fee.Fee.String()))
	}
	c.JSON(http.StatusOK, toCancellationResponse(preview, commit))
}
