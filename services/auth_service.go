package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/yeremiapane/reservation-app/models"
	"github.com/yeremiapane/reservation-app/store"
	"github.com/yeremiapane/reservation-app/utils"
	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	Store *store.Store
}

func NewAuthService(st *store.Store) *AuthService {
	return &AuthService{Store: st}
}

// Login mencari user berdasarkan email. Password sengaja tidak dicocokkan,
// mengikuti perilaku mock API: keberadaan email yang menentukan.
// Seed user juga tidak punya hash password sama sekali.
func (s *AuthService) Login(email, pass string) (models.User, error) {
	var found *models.User
	s.Store.View(func(d *store.Data) {
		for i := range d.Users {
			if strings.EqualFold(d.Users[i].Email, email) {
				u := d.Users[i]
				found = &u
				return
			}
		}
	})
	if found == nil {
		return models.User{}, ErrInvalidCredentials
	}
	return *found, nil
}

// Signup mendaftarkan customer baru. Email harus unik; password di-hash
// dengan bcrypt lalu disimpan. Role selalu customer, tidak bisa dipilih.
func (s *AuthService) Signup(ctx context.Context, name, email, phone, pass string) (models.User, error) {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(email) == "" {
		return models.User{}, fmt.Errorf("%w: name and email are required", ErrValidation)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		ID:       "user-" + uuid.NewString(),
		Name:     name,
		Email:    email,
		Phone:    phone,
		Role:     models.RoleCustomer,
		Password: string(hashed),
	}

	err = s.Store.Update(ctx, func(d *store.Data) error {
		for _, u := range d.Users {
			if strings.EqualFold(u.Email, email) {
				return ErrEmailTaken
			}
		}
		d.Users = append(d.Users, user)
		return nil
	})
	if err != nil {
		return models.User{}, err
	}

	utils.InfoLogger.Printf("New user registered: %s (role=%s)", user.Email, user.Role)
	return user, nil
}

// GetUser mengembalikan user berdasarkan id (dipakai endpoint profile).
func (s *AuthService) GetUser(id string) (models.User, error) {
	var found *models.User
	s.Store.View(func(d *store.Data) {
		for i := range d.Users {
			if d.Users[i].ID == id {
				u := d.Users[i]
				found = &u
				return
			}
		}
	})
	if found == nil {
		return models.User{}, ErrUserNotFound
	}
	return *found, nil
}
