package store

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/yeremiapane/reservation-app/models"
	"github.com/yeremiapane/reservation-app/utils"
)

// Nama blob pada medium key-value.
const (
	KeyUsers        = "users"
	KeyTables       = "tables"
	KeyReservations = "reservations"
)

// Data menampung seluruh koleksi entity yang otoritatif selama proses hidup.
type Data struct {
	Users        []models.User
	Tables       []models.Table
	Reservations []models.Reservation
}

// Store memegang Data dan menuliskannya kembali ke medium KV setelah
// setiap mutasi. Seluruh akses dilindungi RWMutex karena server gin
// melayani request secara paralel.
type Store struct {
	mu   sync.RWMutex
	kv   KV
	data Data
}

func New(kv KV) *Store {
	return &Store{kv: kv}
}

// Load membaca ketiga blob dari medium KV. Blob yang hilang atau rusak
// diganti dengan seed data (kebijakan silent-recovery), lalu seluruh
// koleksi langsung dipersist kembali.
func (s *Store) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data.Users = loadBlob(ctx, s.kv, KeyUsers, SeedUsers)
	s.data.Tables = loadBlob(ctx, s.kv, KeyTables, SeedTables)
	s.data.Reservations = loadBlob(ctx, s.kv, KeyReservations, SeedReservations)

	return s.persist(ctx)
}

func loadBlob[T any](ctx context.Context, kv KV, key string, seed func() []T) []T {
	raw, ok, err := kv.Get(ctx, key)
	if err != nil || !ok {
		if err != nil {
			utils.ErrorLogger.Printf("Failed to read blob %q, using seed data: %v", key, err)
		}
		return seed()
	}

	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		utils.ErrorLogger.Printf("Malformed blob %q, using seed data: %v", key, err)
		return seed()
	}
	return items
}

// View menjalankan fn dengan akses baca ke Data. fn tidak boleh
// menyimpan referensi ke slice di luar pemanggilan.
func (s *Store) View(fn func(d *Data)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(&s.data)
}

// Update menjalankan fn dengan akses tulis ke Data di bawah write lock,
// lalu mempersist seluruh koleksi bila fn sukses. Check-then-set di dalam
// fn dengan demikian bersifat atomik terhadap Update lain.
func (s *Store) Update(ctx context.Context, fn func(d *Data) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := fn(&s.data); err != nil {
		return err
	}
	return s.persist(ctx)
}

// persist menulis ketiga blob. Tanpa batching dan tanpa transaksi,
// mengikuti kontrak save() medium aslinya. Caller harus memegang lock.
func (s *Store) persist(ctx context.Context) error {
	blobs := []struct {
		key   string
		value interface{}
	}{
		{KeyUsers, s.data.Users},
		{KeyTables, s.data.Tables},
		{KeyReservations, s.data.Reservations},
	}

	for _, b := range blobs {
		raw, err := json.Marshal(b.value)
		if err != nil {
			return err
		}
		if err := s.kv.Set(ctx, b.key, raw); err != nil {
			return err
		}
	}
	return nil
}
