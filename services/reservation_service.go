package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/yeremiapane/reservation-app/models"
	"github.com/yeremiapane/reservation-app/store"
	"github.com/yeremiapane/reservation-app/utils"
)

type ReservationService struct {
	Store *store.Store
}

func NewReservationService(st *store.Store) *ReservationService {
	return &ReservationService{Store: st}
}

type CreateReservationInput struct {
	UserID  string `json:"user_id"`
	TableID string `json:"table_id" binding:"required"`
	Date    string `json:"date" binding:"required"`
	Time    string `json:"time" binding:"required"`
	Guests  int    `json:"guests" binding:"required"`
	Notes   string `json:"notes"`
}

// Create membuat reservasi berstatus confirmed (tanpa tahap pending,
// booking langsung terkonfirmasi). Cek bentrok (tableId, startTime)
// dilakukan atomik di bawah write lock store, jadi dua request paralel
// untuk slot yang sama tidak bisa dua-duanya sukses.
func (s *ReservationService) Create(ctx context.Context, in CreateReservationInput) (models.Reservation, error) {
	if in.Guests < 1 {
		return models.Reservation{}, fmt.Errorf("%w: guests must be a positive integer", ErrValidation)
	}
	if !IsGridTime(in.Time) {
		return models.Reservation{}, fmt.Errorf("%w: time %q is not a bookable slot", ErrValidation, in.Time)
	}

	startTime, err := time.ParseInLocation("2006-01-02 15:04", in.Date+" "+in.Time, time.Local)
	if err != nil {
		return models.Reservation{}, fmt.Errorf("%w: invalid date %q", ErrValidation, in.Date)
	}

	reservation := models.Reservation{
		ID:        "res-" + uuid.NewString(),
		UserID:    in.UserID,
		TableID:   in.TableID,
		StartTime: startTime,
		EndTime:   startTime.Add(models.ReservationDuration),
		Guests:    in.Guests,
		Status:    models.StatusConfirmed,
		Notes:     in.Notes,
	}

	err = s.Store.Update(ctx, func(d *store.Data) error {
		var table *models.Table
		for i := range d.Tables {
			if d.Tables[i].ID == in.TableID {
				table = &d.Tables[i]
				break
			}
		}
		if table == nil {
			return ErrTableNotFound
		}
		if in.Guests > table.Capacity {
			return fmt.Errorf("%w: %d guests exceed table capacity %d", ErrValidation, in.Guests, table.Capacity)
		}

		for _, r := range d.Reservations {
			if r.Status == models.StatusCancelled {
				continue
			}
			if r.TableID == in.TableID && r.StartTime.Equal(startTime) {
				return ErrSlotTaken
			}
		}

		d.Reservations = append(d.Reservations, reservation)
		return nil
	})
	if err != nil {
		return models.Reservation{}, err
	}

	utils.InfoLogger.Printf("Reservation %s created: table=%s start=%s guests=%d",
		reservation.ID, reservation.TableID, reservation.StartTime.Format(time.RFC3339), reservation.Guests)
	return reservation, nil
}

// Cancel menandai reservasi sebagai cancelled. Status sebelumnya tidak
// diperiksa; membatalkan reservasi yang sudah cancelled tetap sukses dan
// hasilnya tetap cancelled. Reservasi tidak pernah dihapus dari store.
func (s *ReservationService) Cancel(ctx context.Context, id string) (models.Reservation, error) {
	var cancelled models.Reservation

	err := s.Store.Update(ctx, func(d *store.Data) error {
		for i := range d.Reservations {
			if d.Reservations[i].ID == id {
				d.Reservations[i].Status = models.StatusCancelled
				cancelled = d.Reservations[i]
				return nil
			}
		}
		return ErrReservationNotFound
	})
	if err != nil {
		return models.Reservation{}, err
	}

	utils.InfoLogger.Printf("Reservation %s cancelled", id)
	return cancelled, nil
}

// Get mengembalikan satu reservasi berdasarkan id.
func (s *ReservationService) Get(id string) (models.Reservation, error) {
	var found *models.Reservation
	s.Store.View(func(d *store.Data) {
		for i := range d.Reservations {
			if d.Reservations[i].ID == id {
				r := d.Reservations[i]
				found = &r
				return
			}
		}
	})
	if found == nil {
		return models.Reservation{}, ErrReservationNotFound
	}
	return *found, nil
}

// ListForUser mengembalikan reservasi milik satu user, di-join dengan meja.
func (s *ReservationService) ListForUser(userID string) []models.ReservationWithTable {
	result := []models.ReservationWithTable{}
	s.Store.View(func(d *store.Data) {
		for _, r := range d.Reservations {
			if r.UserID != userID {
				continue
			}
			result = append(result, models.ReservationWithTable{
				Reservation: r,
				Table:       findTable(d.Tables, r.TableID),
			})
		}
	})
	return result
}

// ListForAdmin mengembalikan seluruh reservasi, di-join dengan user dan meja.
func (s *ReservationService) ListForAdmin() []models.ReservationWithUserAndTable {
	result := []models.ReservationWithUserAndTable{}
	s.Store.View(func(d *store.Data) {
		for _, r := range d.Reservations {
			entry := models.ReservationWithUserAndTable{
				Reservation: r,
				Table:       findTable(d.Tables, r.TableID),
			}
			for _, u := range d.Users {
				if u.ID == r.UserID {
					entry.User = u.Public()
					break
				}
			}
			result = append(result, entry)
		}
	})
	return result
}

// ListTables mengembalikan data referensi meja.
func (s *ReservationService) ListTables() []models.Table {
	tables := []models.Table{}
	s.Store.View(func(d *store.Data) {
		tables = append(tables, d.Tables...)
	})
	return tables
}

func findTable(tables []models.Table, id string) models.Table {
	for _, t := range tables {
		if t.ID == id {
			return t
		}
	}
	return models.Table{}
}
