package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/SscSPs/hotel_booking_app/internal/apperrors"
	portssvc "github.com/SscSPs/hotel_booking_app/internal/core/ports/services"
	"github.com/SscSPs/hotel_booking_app/internal/dto"
	"github.com/gin-gonic/gin"
)

// currencyCookie remembers the last currency a visitor picked.
const currencyCookie = "current_currency"

const currencyCookieMaxAge = 30 * 24 * 60 * 60

// statusForError maps service errors onto HTTP status codes.
func statusForError(err error) int {
	var appErr *apperrors.AppError
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, apperrors.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, apperrors.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperrors.ErrDuplicate), errors.Is(err, apperrors.ErrConflict):
		return http.StatusConflict
	case errors.As(err, &appErr) && appErr.Code != 0:
		return appErr.Code
	default:
		return http.StatusInternalServerError
	}
}

// respondServiceError writes the error body for a failed service call.
// Server errors are logged with their cause and hidden behind fallbackMsg.
func respondServiceError(c *gin.Context, logger *slog.Logger, err error, fallbackMsg string) {
	status := statusForError(err)
	if status >= http.StatusInternalServerError {
		logger.Error(fallbackMsg, slog.String("error", err.Error()))
		c.JSON(status, dto.ErrorResponse{Error: fallbackMsg})
		return
	}
	logger.Warn(fallbackMsg, slog.String("error", err.Error()), slog.Int("status", status))
	c.JSON(status, dto.ErrorResponse{Error: err.Error()})
}

// respondBindError reports a request that failed binding or validation.
func respondBindError(c *gin.Context, logger *slog.Logger, err error) {
	logger.Warn("Failed to bind request", slog.String("error", err.Error()))
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request: " + err.Error()})
}

// applyCurrencyPreference fills in the currency from the cookie when the
// request names none, and remembers an explicitly chosen one.
func applyCurrencyPreference(c *gin.Context, stay *dto.StayRequest) {
	if stay.CurrencyCode != "" {
		stay.CurrencyCode = strings.ToUpper(stay.CurrencyCode)
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(currencyCookie, stay.CurrencyCode, currencyCookieMaxAge, "/", "", false, true)
		return
	}
	if code, err := c.Cookie(currencyCookie); err == nil && len(code) == 3 {
		stay.CurrencyCode = strings.ToUpper(code)
	}
}

// parseIDParam reads a positive integer path parameter.
func parseIDParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid " + name})
		return 0, false
	}
	return id, true
}

func toRoomOfferResponse(o portssvc.RoomOffer) dto.RoomOfferResponse {
	return dto.RoomOfferResponse{
		Location:  dto.ToLocationResponse(&o.Location),
		RoomType:  dto.ToRoomTypeResponse(&o.RoomType),
		FreeRooms: o.FreeRooms,
		Quote:     dto.ToQuoteResponse(o.Quote, o.Currency),
	}
}

func toBookingResponse(d *portssvc.BookingDetails) dto.BookingResponse {
	b := d.Booking
	return dto.BookingResponse{
		BookingID: b.BookingID,
		RoomID:    b.RoomID,
		Location:  dto.ToLocationResponse(&d.Location),
		RoomType:  dto.ToRoomTypeResponse(&d.RoomType),
		Guests:    b.Guests,
		Start:     b.BookingStart.Format(dto.DateLayout),
		End:       b.BookingEnd.Format(dto.DateLayout),
		Contact:   b.Contact,
		Card:      b.Card,
		Quote:     dto.ToQuoteResponse(d.Quote, d.Currency),
		CreatedAt: b.CreatedAt,
	}
}

func toCancellationResponse(p *portssvc.CancellationPreview, cancelled bool) dto.CancellationResponse {
	return dto.CancellationResponse{
		BookingID:    p.Details.Booking.BookingID,
		LeadDays:     p.Fee.LeadDays,
		FeeFraction:  p.Fee.FeeFraction,
		Fee:          p.Fee.Fee,
		CurrencyCode: p.Fee.CurrencyCode,
		Cancelled:    cancelled,
	}
}
