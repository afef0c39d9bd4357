// Package metrics mengumpulkan dan mempublikasikan metrik Prometheus.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Collector menghitung operasi inti aplikasi reservasi.
type Collector struct {
	reservationsCreated   prometheus.Counter
	reservationsCancelled prometheus.Counter
	bookingConflicts      prometheus.Counter
	availabilityQueries   prometheus.Counter
}

// NewCollector membuat Collector dan mendaftarkan metriknya ke registry.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		reservationsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "reservation_app_reservations_created_total",
			Help: "Total reservasi yang berhasil dibuat",
		}),
		reservationsCancelled: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "reservation_app_reservations_cancelled_total",
			Help: "Total reservasi yang dibatalkan",
		}),
		bookingConflicts: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "reservation_app_booking_conflicts_total",
			Help: "Total booking yang ditolak karena slot sudah terisi",
		}),
		availabilityQueries: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "reservation_app_availability_queries_total",
			Help: "Total query ketersediaan slot",
		}),
	}

	reg.MustRegister(
		c.reservationsCreated,
		c.reservationsCancelled,
		c.bookingConflicts,
		c.availabilityQueries,
	)

	return c
}

func (c *Collector) RecordReservationCreated() { c.reservationsCreated.Inc() }

func (c *Collector) RecordReservationCancelled() { c.reservationsCancelled.Inc() }

func (c *Collector) RecordBookingConflict() { c.bookingConflicts.Inc() }

func (c *Collector) RecordAvailabilityQuery() { c.availabilityQueries.Inc() }
