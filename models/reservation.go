package models

import "time"

// Status reservasi. Cancelled dan completed bersifat terminal.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
	StatusCompleted = "completed"
)

// ReservationDuration adalah durasi tetap satu reservasi.
const ReservationDuration = 90 * time.Minute

type Reservation struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	TableID   string    `json:"tableId"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	Guests    int       `json:"guests"`
	Status    string    `json:"status"`
	Notes     string    `json:"notes,omitempty"`
}

// ReservationWithTable adalah proyeksi untuk tampilan customer
// (reservasi di-join dengan mejanya).
type ReservationWithTable struct {
	Reservation
	Table Table `json:"table"`
}

// ReservationWithUserAndTable adalah proyeksi untuk dashboard admin.
type ReservationWithUserAndTable struct {
	Reservation
	User  PublicUser `json:"user"`
	Table Table      `json:"table"`
}

// AvailabilitySlot adalah satu penawaran slot (jam + meja) untuk tanggal
// tertentu. Tidak pernah dipersist.
type AvailabilitySlot struct {
	Time    string `json:"time"`
	TableID string `json:"tableId"`
}
