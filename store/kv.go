package store

import (
	"context"
	"errors"
	"sync"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// KV adalah medium persistensi key-value tempat blob koleksi disimpan.
// Implementasi harus aman dipakai dari banyak goroutine.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
}

// ---------------------------------------------------------------
// MemoryKV -> map in-process, dipakai untuk mode dev dan testing
// ---------------------------------------------------------------

type MemoryKV struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

func NewMemoryKV() *MemoryKV {
	return &MemoryKV{blobs: make(map[string][]byte)}
}

func (m *MemoryKV) Get(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	value, ok := m.blobs[key]
	return value, ok, nil
}

func (m *MemoryKV) Set(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := make([]byte, len(value))
	copy(cp, value)
	m.blobs[key] = cp
	return nil
}

// ---------------------------------------------------------------
// GormKV -> blob disimpan di tabel kv_records (sqlite/mysql)
// ---------------------------------------------------------------

// KVRecord adalah satu baris blob pada database relasional.
type KVRecord struct {
	RecordKey   string `gorm:"column:record_key;primaryKey"`
	RecordValue []byte `gorm:"column:record_value"`
}

func (KVRecord) TableName() string { return "kv_records" }

type GormKV struct {
	DB *gorm.DB
}

func NewGormKV(db *gorm.DB) (*GormKV, error) {
	if err := db.AutoMigrate(&KVRecord{}); err != nil {
		return nil, err
	}
	return &GormKV{DB: db}, nil
}

func (g *GormKV) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var rec KVRecord
	err := g.DB.WithContext(ctx).First(&rec, "record_key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return rec.RecordValue, true, nil
}

func (g *GormKV) Set(ctx context.Context, key string, value []byte) error {
	rec := KVRecord{RecordKey: key, RecordValue: value}
	return g.DB.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&rec).Error
}

// ---------------------------------------------------------------
// RedisKV -> blob disimpan sebagai string key di redis
// ---------------------------------------------------------------

type RedisKV struct {
	Client *redis.Client
	Prefix string
}

func NewRedisKV(addr string) *RedisKV {
	return &RedisKV{
		Client: redis.NewClient(&redis.Options{Addr: addr}),
		Prefix: "reservation-app:",
	}
}

func (r *RedisKV) Get(ctx context.Context, key string) ([]byte, bool, error) {
	value, err := r.Client.Get(ctx, r.Prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return value, true, nil
}

func (r *RedisKV) Set(ctx context.Context, key string, value []byte) error {
	return r.Client.Set(ctx, r.Prefix+key, value, 0).Err()
}
