package store

import (
	"time"

	"github.com/yeremiapane/reservation-app/models"
)

// Seed data awal, dipakai saat blob belum ada atau rusak.

func SeedUsers() []models.User {
	return []models.User{
		{ID: "user-1", Name: "Alice Johnson", Email: "alice@example.com", Phone: "555-0101", Role: models.RoleCustomer},
		{ID: "user-2", Name: "Bob Smith", Email: "bob@example.com", Phone: "555-0102", Role: models.RoleCustomer},
		{ID: "admin-1", Name: "Charlie Brown", Email: "admin@example.com", Phone: "555-0199", Role: models.RoleAdmin},
	}
}

func SeedTables() []models.Table {
	return []models.Table{
		{ID: "table-1", Label: "T1", Capacity: 2},
		{ID: "table-2", Label: "T2", Capacity: 2},
		{ID: "table-3", Label: "T3", Capacity: 4},
		{ID: "table-4", Label: "T4", Capacity: 4},
		{ID: "table-5", Label: "T5", Capacity: 6},
		{ID: "table-6", Label: "T6", Capacity: 8},
	}
}

func SeedReservations() []models.Reservation {
	today := time.Now()
	start1 := time.Date(today.Year(), today.Month(), today.Day(), 18, 30, 0, 0, time.Local)
	tomorrow := today.AddDate(0, 0, 1)
	start2 := time.Date(tomorrow.Year(), tomorrow.Month(), tomorrow.Day(), 19, 0, 0, 0, time.Local)

	return []models.Reservation{
		{
			ID:        "res-1",
			UserID:    "user-1",
			TableID:   "table-3",
			StartTime: start1,
			EndTime:   start1.Add(models.ReservationDuration),
			Guests:    4,
			Status:    models.StatusConfirmed,
		},
		{
			ID:        "res-2",
			UserID:    "user-2",
			TableID:   "table-1",
			StartTime: start2,
			EndTime:   start2.Add(models.ReservationDuration),
			Guests:    2,
			Status:    models.StatusConfirmed,
		},
	}
}
