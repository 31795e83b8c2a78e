package database

import (
	"context"

	"painterflow/internal/models"
)

func (s *Store) CreateUser(ctx context.Context, u *models.User) error {
	return mapError(s.conn(ctx).Create(u).Error)
}

func (s *Store) UserByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	if err := s.conn(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		return nil, mapError(err)
	}
	return &u, nil
}

func (s *Store) UserByID(ctx context.Context, id string) (*models.User, error) {
	var u models.User
	if err := s.conn(ctx).Where("id = ?", id).First(&u).Error; err != nil {
		return nil, mapError(err)
	}
	return &u, nil
}

func (s *Store) UserByConfirmToken(ctx context.Context, token string) (*models.User, error) {
	var u models.User
	if err := s.conn(ctx).Where("confirm_token = ?", token).First(&u).Error; err != nil {
		return nil, mapError(err)
	}
	return &u, nil
}

func (s *Store) ConfirmUser(ctx context.Context, id string) error {
	res := s.conn(ctx).Model(&models.User{}).
		Where("id = ?", id).
		Updates(map[string]any{"confirmed": true, "confirm_token": nil})
	if res.Error != nil {
		return mapError(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
