package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yeremiapane/reservation-app/models"
	"github.com/yeremiapane/reservation-app/store"
)

func seededTestStore(t *testing.T) *store.Store {
	t.Helper()
	st := store.New(store.NewMemoryKV())
	require.NoError(t, st.Load(context.Background()))
	return st
}

func TestCreateReservationConfirmedWithFixedDuration(t *testing.T) {
	st := seededTestStore(t)
	svc := NewReservationService(st)

	reservation, err := svc.Create(context.Background(), CreateReservationInput{
		UserID:  "user-1",
		TableID: "table-5",
		Date:    "2030-05-20",
		Time:    "18:00",
		Guests:  5,
		Notes:   "window seat please",
	})
	require.NoError(t, err)

	// Booking langsung confirmed, tanpa tahap pending
	assert.Equal(t, models.StatusConfirmed, reservation.Status)
	assert.Equal(t, reservation.StartTime.Add(90*time.Minute), reservation.EndTime)
	assert.Equal(t, "window seat please", reservation.Notes)
	assert.NotEmpty(t, reservation.ID)

	// Tersimpan di store
	stored, err := svc.Get(reservation.ID)
	require.NoError(t, err)
	assert.Equal(t, reservation.ID, stored.ID)
}

func TestCreateReservationValidation(t *testing.T) {
	st := seededTestStore(t)
	svc := NewReservationService(st)
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateReservationInput{UserID: "user-1", TableID: "table-1", Date: "2030-05-20", Time: "18:00", Guests: 0})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Create(ctx, CreateReservationInput{UserID: "user-1", TableID: "table-1", Date: "2030-05-20", Time: "18:15", Guests: 2})
	assert.ErrorIs(t, err, ErrValidation, "off-grid time must be rejected")

	_, err = svc.Create(ctx, CreateReservationInput{UserID: "user-1", TableID: "table-1", Date: "not-a-date", Time: "18:00", Guests: 2})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Create(ctx, CreateReservationInput{UserID: "user-1", TableID: "table-1", Date: "2030-05-20", Time: "18:00", Guests: 3})
	assert.ErrorIs(t, err, ErrValidation, "guests above table capacity must be rejected")

	_, err = svc.Create(ctx, CreateReservationInput{UserID: "user-1", TableID: "no-such-table", Date: "2030-05-20", Time: "18:00", Guests: 2})
	assert.ErrorIs(t, err, ErrTableNotFound)
}

func TestCreateReservationConflictOnSameTableAndStart(t *testing.T) {
	st := seededTestStore(t)
	svc := NewReservationService(st)
	ctx := context.Background()

	input := CreateReservationInput{UserID: "user-1", TableID: "table-3", Date: "2030-05-20", Time: "19:30", Guests: 4}
	_, err := svc.Create(ctx, input)
	require.NoError(t, err)

	input.UserID = "user-2"
	_, err = svc.Create(ctx, input)
	assert.ErrorIs(t, err, ErrSlotTaken)

	// Meja lain di jam yang sama tetap boleh
	_, err = svc.Create(ctx, CreateReservationInput{UserID: "user-2", TableID: "table-4", Date: "2030-05-20", Time: "19:30", Guests: 4})
	assert.NoError(t, err)
}

func TestCancelAfterCancelIsIdempotent(t *testing.T) {
	st := seededTestStore(t)
	svc := NewReservationService(st)
	ctx := context.Background()

	reservation, err := svc.Create(ctx, CreateReservationInput{UserID: "user-1", TableID: "table-1", Date: "2030-05-20", Time: "20:00", Guests: 2})
	require.NoError(t, err)

	first, err := svc.Cancel(ctx, reservation.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCancelled, first.Status)

	second, err := svc.Cancel(ctx, reservation.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCancelled, second.Status)
}

func TestCancelUnknownReservation(t *testing.T) {
	st := seededTestStore(t)
	svc := NewReservationService(st)

	_, err := svc.Cancel(context.Background(), "res-missing")
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestCancelledReservationStaysInHistory(t *testing.T) {
	st := seededTestStore(t)
	svc := NewReservationService(st)
	ctx := context.Background()

	reservation, err := svc.Create(ctx, CreateReservationInput{UserID: "user-2", TableID: "table-2", Date: "2030-05-20", Time: "17:30", Guests: 2})
	require.NoError(t, err)

	_, err = svc.Cancel(ctx, reservation.ID)
	require.NoError(t, err)

	var found *models.ReservationWithTable
	for _, r := range svc.ListForUser("user-2") {
		if r.ID == reservation.ID {
			rr := r
			found = &rr
		}
	}
	require.NotNil(t, found, "cancelled reservation must stay listed")
	assert.Equal(t, models.StatusCancelled, found.Status)
	assert.Equal(t, "T2", found.Table.Label)
}

func TestCancelFreesSlotForAvailability(t *testing.T) {
	st := seededTestStore(t)
	reservations := NewReservationService(st)
	availability := NewAvailabilityService(st)
	ctx := context.Background()

	// Pesan kedua meja kapasitas 4 di 18:00; party of 3 lalu hanya dapat table-5
	_, err := reservations.Create(ctx, CreateReservationInput{UserID: "user-1", TableID: "table-3", Date: "2030-05-20", Time: "18:00", Guests: 4})
	require.NoError(t, err)
	booked, err := reservations.Create(ctx, CreateReservationInput{UserID: "user-2", TableID: "table-4", Date: "2030-05-20", Time: "18:00", Guests: 4})
	require.NoError(t, err)

	for _, slot := range availability.GetAvailability(testDate(t), 3) {
		if slot.Time == "18:00" {
			assert.Equal(t, "table-5", slot.TableID)
		}
	}

	_, err = reservations.Cancel(ctx, booked.ID)
	require.NoError(t, err)

	for _, slot := range availability.GetAvailability(testDate(t), 3) {
		if slot.Time == "18:00" {
			assert.Equal(t, "table-4", slot.TableID, "cancelled reservation must free the slot")
		}
	}
}

func TestEngineOfferedSlotsNeverDoubleBook(t *testing.T) {
	st := seededTestStore(t)
	reservations := NewReservationService(st)
	availability := NewAvailabilityService(st)
	ctx := context.Background()

	// Booking berulang hanya lewat slot tawaran engine tidak pernah bentrok
	for i := 0; i < 8; i++ {
		slots := availability.GetAvailability(testDate(t), 2)
		if len(slots) == 0 {
			break
		}
		_, err := reservations.Create(ctx, CreateReservationInput{
			UserID:  "user-1",
			TableID: slots[0].TableID,
			Date:    "2030-05-20",
			Time:    slots[0].Time,
			Guests:  2,
		})
		require.NoError(t, err)
	}

	seen := map[string]bool{}
	st.View(func(d *store.Data) {
		for _, r := range d.Reservations {
			if r.Status == models.StatusCancelled {
				continue
			}
			key := r.TableID + "|" + r.StartTime.Format(time.RFC3339)
			assert.False(t, seen[key], "duplicate (table, start) pair: %s", key)
			seen[key] = true
		}
	})
}

func TestListForAdminJoinsUserAndTable(t *testing.T) {
	st := seededTestStore(t)
	svc := NewReservationService(st)

	all := svc.ListForAdmin()
	require.NotEmpty(t, all)
	for _, r := range all {
		assert.NotEmpty(t, r.Table.ID)
		assert.NotEmpty(t, r.User.ID)
		assert.NotEmpty(t, r.User.Role)
	}
}
