package controllers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/reservation-app/metrics"
	"github.com/yeremiapane/reservation-app/services"
	"github.com/yeremiapane/reservation-app/utils"
)

type AvailabilityController struct {
	Availability *services.AvailabilityService
	Metrics      *metrics.Collector
}

func NewAvailabilityController(av *services.AvailabilityService, m *metrics.Collector) *AvailabilityController {
	return &AvailabilityController{Availability: av, Metrics: m}
}

// GetAvailability -> slot yang bisa dipesan untuk ?date=YYYY-MM-DD&guests=N.
func (avc *AvailabilityController) GetAvailability(c *gin.Context) {
	date, err := time.ParseInLocation("2006-01-02", c.Query("date"), time.Local)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", c.Query("date")))
		return
	}

	guests, err := strconv.Atoi(c.Query("guests"))
	if err != nil || guests < 1 {
		utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("guests must be a positive integer"))
		return
	}

	slots := avc.Availability.GetAvailability(date, guests)
	avc.Metrics.RecordAvailabilityQuery()

	utils.RespondJSON(c, http.StatusOK, "Available slots", slots)
}
