package services

import (
	"fmt"
	"time"

	"github.com/yeremiapane/reservation-app/models"
	"github.com/yeremiapane/reservation-app/store"
)

// Grid harian: 17:00 s/d 21:30, kelipatan 30 menit.
const (
	gridOpenHour  = 17
	gridCloseHour = 22
	gridStepMin   = 30
)

// GridTimes mengembalikan seluruh jam pada grid, urut naik ("17:00" ... "21:30").
func GridTimes() []string {
	var times []string
	for hour := gridOpenHour; hour < gridCloseHour; hour++ {
		for minute := 0; minute < 60; minute += gridStepMin {
			times = append(times, fmt.Sprintf("%02d:%02d", hour, minute))
		}
	}
	return times
}

// IsGridTime melaporkan apakah t ("HH:MM") jatuh tepat pada grid.
func IsGridTime(t string) bool {
	for _, g := range GridTimes() {
		if g == t {
			return true
		}
	}
	return false
}

type AvailabilityService struct {
	Store *store.Store
}

func NewAvailabilityService(st *store.Store) *AvailabilityService {
	return &AvailabilityService{Store: st}
}

// GetAvailability menghitung slot yang bisa dipesan untuk tanggal dan jumlah
// tamu tertentu. Per jam grid maksimal satu slot: meja bebas dengan kapasitas
// terkecil yang masih memadai (best-fit, tie-break urutan daftar meja).
func (s *AvailabilityService) GetAvailability(date time.Time, guests int) []models.AvailabilitySlot {
	targetDate := date.Format("2006-01-02")
	slots := []models.AvailabilitySlot{}

	s.Store.View(func(d *store.Data) {
		var candidates []models.Table
		for _, t := range d.Tables {
			if t.Capacity >= guests {
				candidates = append(candidates, t)
			}
		}

		// Set meja terpesan per jam, di-key dengan menit persis mulainya
		// reservasi. Jam pembuatan reservasi divalidasi terhadap grid,
		// jadi key selalu cocok dengan jam grid.
		booked := make(map[string]map[string]bool)
		for _, r := range d.Reservations {
			if r.Status == models.StatusCancelled {
				continue
			}
			if r.StartTime.Format("2006-01-02") != targetDate {
				continue
			}
			timeKey := r.StartTime.Format("15:04")
			if booked[timeKey] == nil {
				booked[timeKey] = make(map[string]bool)
			}
			booked[timeKey][r.TableID] = true
		}

		for _, gridTime := range GridTimes() {
			best := -1
			for i, t := range candidates {
				if booked[gridTime][t.ID] {
					continue
				}
				if best < 0 || t.Capacity < candidates[best].Capacity {
					best = i
				}
			}
			if best >= 0 {
				slots = append(slots, models.AvailabilitySlot{
					Time:    gridTime,
					TableID: candidates[best].ID,
				})
			}
		}
	})

	return slots
}
