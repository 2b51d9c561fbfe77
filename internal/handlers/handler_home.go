package handlers

import (
	"net/http"

	"github.com/SscSPs/hotel_booking_app/internal/dto"
	"github.com/gin-gonic/gin"
)

const apiVersion = "v1"

// getHome godoc
// @Summary Show the status of server.
// @Description Reports the API version and the currency prices are shown in when the visitor has not picked one.
// @Tags root
// @Produce json
// @Success 200 {object} dto.HomeResponse
// @Router / [get]
func getHome(defaultCurrency string) gin.HandlerFunc {
	return func(c *gin.Context) {
		resp := dto.HomeResponse{
			Message:         "Hotel Booking API " + apiVersion,
			Version:         apiVersion,
			DefaultCurrency: defaultCurrency,
		}
		if cookie, err := c.Cookie(currencyCookie); err == nil && cookie != "" {
			resp.CurrentCurrency = cookie
		}
		c.JSON(http.StatusOK, resp)
	}
}

// registerHomeRoutes registers the API root.
func registerHomeRoutes(group *gin.RouterGroup, defaultCurrency string) {
	group.GET("", getHome(defaultCurrency))
}
