package services

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yeremiapane/reservation-app/models"
	"github.com/yeremiapane/reservation-app/store"
	"github.com/yeremiapane/reservation-app/utils"
)

func TestMain(m *testing.M) {
	utils.InitLogger()
	os.Exit(m.Run())
}

// newTestStore membuat store kosong di atas MemoryKV dengan koleksi custom.
func newTestStore(t *testing.T, tables []models.Table, reservations []models.Reservation) *store.Store {
	t.Helper()
	st := store.New(store.NewMemoryKV())
	require.NoError(t, st.Load(context.Background()))
	require.NoError(t, st.Update(context.Background(), func(d *store.Data) error {
		d.Tables = tables
		d.Reservations = reservations
		return nil
	}))
	return st
}

func mustStart(t *testing.T, date, clock string) time.Time {
	t.Helper()
	start, err := time.ParseInLocation("2006-01-02 15:04", date+" "+clock, time.Local)
	require.NoError(t, err)
	return start
}

func testDate(t *testing.T) time.Time {
	t.Helper()
	d, err := time.ParseInLocation("2006-01-02", "2030-05-20", time.Local)
	require.NoError(t, err)
	return d
}

func TestGridTimes(t *testing.T) {
	times := GridTimes()
	assert.Equal(t, "17:00", times[0])
	assert.Equal(t, "21:30", times[len(times)-1])
	assert.Len(t, times, 10)
	assert.True(t, IsGridTime("18:30"))
	assert.False(t, IsGridTime("18:15"))
	assert.False(t, IsGridTime("22:00"))
}

func TestAvailabilityEmptyDayUsesSmallestTable(t *testing.T) {
	tables := []models.Table{
		{ID: "table-a", Label: "A", Capacity: 2},
		{ID: "table-b", Label: "B", Capacity: 4},
		{ID: "table-c", Label: "C", Capacity: 6},
	}
	st := newTestStore(t, tables, nil)
	svc := NewAvailabilityService(st)

	slots := svc.GetAvailability(testDate(t), 3)

	// Party of 3: hanya meja kapasitas 4 dan 6 yang lolos, best-fit pilih 4
	require.Len(t, slots, len(GridTimes()))
	for i, slot := range slots {
		assert.Equal(t, GridTimes()[i], slot.Time)
		assert.Equal(t, "table-b", slot.TableID)
	}
}

func TestAvailabilityNoTableFits(t *testing.T) {
	tables := []models.Table{
		{ID: "table-a", Label: "A", Capacity: 2},
	}
	st := newTestStore(t, tables, nil)
	svc := NewAvailabilityService(st)

	assert.Empty(t, svc.GetAvailability(testDate(t), 5))
}

func TestAvailabilityTieBreakKeepsTableOrder(t *testing.T) {
	tables := []models.Table{
		{ID: "table-x", Label: "X", Capacity: 4},
		{ID: "table-y", Label: "Y", Capacity: 4},
	}
	st := newTestStore(t, tables, nil)
	svc := NewAvailabilityService(st)

	slots := svc.GetAvailability(testDate(t), 4)
	require.NotEmpty(t, slots)
	for _, slot := range slots {
		assert.Equal(t, "table-x", slot.TableID)
	}
}

func TestAvailabilityBookedTableFallsBackToLarger(t *testing.T) {
	tables := []models.Table{
		{ID: "table-a", Label: "A", Capacity: 2},
		{ID: "table-b", Label: "B", Capacity: 4},
		{ID: "table-c", Label: "C", Capacity: 6},
	}
	start := mustStart(t, "2030-05-20", "18:00")
	reservations := []models.Reservation{{
		ID: "res-x", UserID: "user-1", TableID: "table-b",
		StartTime: start, EndTime: start.Add(models.ReservationDuration),
		Guests: 4, Status: models.StatusConfirmed,
	}}
	st := newTestStore(t, tables, reservations)
	svc := NewAvailabilityService(st)

	slots := svc.GetAvailability(testDate(t), 3)
	require.Len(t, slots, len(GridTimes()))
	for _, slot := range slots {
		if slot.Time == "18:00" {
			assert.Equal(t, "table-c", slot.TableID, "booked best-fit table should fall back to next size")
		} else {
			assert.Equal(t, "table-b", slot.TableID)
		}
	}
}

func TestAvailabilityTimeDropsWhenAllCandidatesBooked(t *testing.T) {
	tables := []models.Table{
		{ID: "table-a", Label: "A", Capacity: 2},
		{ID: "table-b", Label: "B", Capacity: 4},
	}
	start := mustStart(t, "2030-05-20", "19:00")
	reservations := []models.Reservation{{
		ID: "res-x", UserID: "user-1", TableID: "table-b",
		StartTime: start, EndTime: start.Add(models.ReservationDuration),
		Guests: 4, Status: models.StatusConfirmed,
	}}
	st := newTestStore(t, tables, reservations)
	svc := NewAvailabilityService(st)

	slots := svc.GetAvailability(testDate(t), 3)
	require.Len(t, slots, len(GridTimes())-1)
	for _, slot := range slots {
		assert.NotEqual(t, "19:00", slot.Time)
	}
}

func TestAvailabilityIgnoresCancelledAndOtherDates(t *testing.T) {
	tables := []models.Table{
		{ID: "table-b", Label: "B", Capacity: 4},
	}
	start := mustStart(t, "2030-05-20", "18:00")
	otherDay := mustStart(t, "2030-05-21", "18:00")
	reservations := []models.Reservation{
		{
			ID: "res-cancelled", UserID: "user-1", TableID: "table-b",
			StartTime: start, EndTime: start.Add(models.ReservationDuration),
			Guests: 4, Status: models.StatusCancelled,
		},
		{
			ID: "res-other-day", UserID: "user-1", TableID: "table-b",
			StartTime: otherDay, EndTime: otherDay.Add(models.ReservationDuration),
			Guests: 4, Status: models.StatusConfirmed,
		},
	}
	st := newTestStore(t, tables, reservations)
	svc := NewAvailabilityService(st)

	slots := svc.GetAvailability(testDate(t), 2)
	// Reservasi cancelled dan reservasi di tanggal lain tidak memblokir
	require.Len(t, slots, len(GridTimes()))
}

func TestAvailabilityCapacityPropertyHolds(t *testing.T) {
	st := store.New(store.NewMemoryKV())
	require.NoError(t, st.Load(context.Background()))
	svc := NewAvailabilityService(st)

	tables := map[string]int{}
	st.View(func(d *store.Data) {
		for _, tb := range d.Tables {
			tables[tb.ID] = tb.Capacity
		}
	})

	for guests := 1; guests <= 9; guests++ {
		for _, slot := range svc.GetAvailability(testDate(t), guests) {
			assert.GreaterOrEqual(t, tables[slot.TableID], guests)
		}
	}
}
