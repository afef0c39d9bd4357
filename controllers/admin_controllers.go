package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/reservation-app/services"
	"github.com/yeremiapane/reservation-app/utils"
)

type AdminController struct {
	Reservations *services.ReservationService
}

func NewAdminController(rs *services.ReservationService) *AdminController {
	return &AdminController{Reservations: rs}
}

// GetAllReservations -> seluruh reservasi, join user + meja.
func (adc *AdminController) GetAllReservations(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "All reservations", adc.Reservations.ListForAdmin())
}
