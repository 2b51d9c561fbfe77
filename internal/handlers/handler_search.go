package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/hotel_booking_app/internal/core/ports/services"
	"github.com/SscSPs/hotel_booking_app/internal/dto"
	"github.com/SscSPs/hotel_booking_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// searchHandler serves room searches and single room quotes.
type searchHandler struct {
	searchService  portssvc.SearchSvc
	bookingService portssvc.BookingReaderSvc
}

func newSearchHandler(ss portssvc.SearchSvc, bs portssvc.BookingReaderSvc) *searchHandler {
	return &searchHandler{
		searchService:  ss,
		bookingService: bs,
	}
}

func registerSearchRoutes(rg *gin.RouterGroup, searchService portssvc.SearchSvc, bookingService portssvc.BookingReaderSvc) {
	h := newSearchHandler(searchService, bookingService)

	rg.GET("/search", h.search)
	rg.GET("/quote", h.quote)
}

// search godoc
// @Summary Search available rooms
// @Description Finds every room type with a free room for the whole stay that fits the guests, priced in the chosen currency.
// @Description The currency falls back to the current_currency cookie, then the configured default.
// @Tags search
// @Produce json
// @Param locationID query int false "Restrict to one location"
// @Param start query string true "First night (YYYY-MM-DD)"
// @Param end query string true "Last night (YYYY-MM-DD)"
// @Param guests query int true "Number of guests"
// @Param currency query string false "Currency code"
// @Success 200 {object} dto.SearchResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse "Unknown location or currency"
// @Failure 500 {object} dto.ErrorResponse
// @Router /search [get]
func (h *searchHandler) search(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.SearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}
	applyCurrencyPreference(c, &req.StayRequest)

	logger = logger.With(
		slog.String("start", req.Start),
		slog.String("end", req.End),
		slog.Int("guests", req.Guests),
		slog.String("currency", req.CurrencyCode),
	)

	offers, err := h.searchService.Search(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to search rooms")
		return
	}

	resp := dto.SearchResponse{
		Start:  req.Start,
		End:    req.End,
		Guests: req.Guests,
		Offers: make([]dto.RoomOfferResponse, len(offers)),
	}
	for i := range offers {
		resp.Offers[i] = toRoomOfferResponse(offers[i])
	}

	logger.Info("Search completed", slog.Int("offers", len(offers)))
	c.JSON(http.StatusOK, resp)
}

// quote godoc
// @Summary Quote a room
// @Description Prices a stay in one room type at one location and reports how many rooms are free
// @Tags search
// @Produce json
// @Param locationID query int true "Location ID"
// @Param roomTypeID query int true "Room type ID"
// @Param start query string true "First night (YYYY-MM-DD)"
// @Param end query string true "Last night (YYYY-MM-DD)"
// @Param guests query int true "Number of guests"
// @Param currency query string false "Currency code"
// @Success 200 {object} dto.RoomOfferResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /quote [get]
func (h *searchHandler) quote(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.QuoteRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}
	applyCurrencyPreference(c, &req.StayRequest)

	offer, err := h.bookingService.QuoteRoom(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, logger.With(slog.Int64("location_id", req.LocationID), slog.Int64("room_type_id", req.RoomTypeID)), err, "Failed to quote room")
		return
	}

	c.JSON(http.StatusOK, toRoomOfferResponse(*offer))
}
