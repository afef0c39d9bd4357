package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/reservation-app/events"
	"github.com/yeremiapane/reservation-app/metrics"
	"github.com/yeremiapane/reservation-app/models"
	"github.com/yeremiapane/reservation-app/services"
	"github.com/yeremiapane/reservation-app/utils"
)

type ReservationController struct {
	Reservations *services.ReservationService
	Metrics      *metrics.Collector
}

func NewReservationController(rs *services.ReservationService, m *metrics.Collector) *ReservationController {
	return &ReservationController{Reservations: rs, Metrics: m}
}

// CreateReservation -> booking slot untuk user yang sedang login.
func (rc *ReservationController) CreateReservation(c *gin.Context) {
	var req services.CreateReservationInput
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	// User pemilik reservasi selalu diambil dari token, bukan body
	req.UserID = c.GetString("user_id")

	reservation, err := rc.Reservations.Create(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, services.ErrSlotTaken) {
			rc.Metrics.RecordBookingConflict()
		}
		respondServiceError(c, err)
		return
	}

	rc.Metrics.RecordReservationCreated()
	events.BroadcastReservationCreate(reservation)

	utils.RespondJSON(c, http.StatusCreated, "Reservation created", reservation)
}

// GetMyReservations -> daftar reservasi user login, join dengan meja.
func (rc *ReservationController) GetMyReservations(c *gin.Context) {
	userID := c.GetString("user_id")
	utils.RespondJSON(c, http.StatusOK, "Your reservations", rc.Reservations.ListForUser(userID))
}

// CancelReservation -> set status cancelled. Customer hanya boleh
// membatalkan reservasi miliknya, admin boleh semua.
func (rc *ReservationController) CancelReservation(c *gin.Context) {
	reservationID := c.Param("reservation_id")

	existing, err := rc.Reservations.Get(reservationID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	role := c.GetString("role")
	if role != models.RoleAdmin && existing.UserID != c.GetString("user_id") {
		utils.RespondError(c, http.StatusForbidden, fmt.Errorf("you can only cancel your own reservations"))
		return
	}

	cancelled, err := rc.Reservations.Cancel(c.Request.Context(), reservationID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	rc.Metrics.RecordReservationCancelled()
	events.BroadcastReservationCancel(cancelled)

	utils.RespondJSON(c, http.StatusOK, "Reservation cancelled", cancelled)
}

// GetAllTables -> data referensi meja (publik).
func (rc *ReservationController) GetAllTables(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "List of tables", rc.Reservations.ListTables())
}
