package repository

import (
	"errors"

	"members-backend/internal/app/ds"

	"gorm.io/gorm"
)

// GetUserByID - получить пользователя по id
func (r *Repository) GetUserByID(id uint) (*ds.User, error) {
	user := &ds.User{}
	err := r.db.First(user, id).Error
	if err != nil {
		return nil, err
	}
	return user, nil
}

// GetUserByLogin - получить пользователя по логину
func (r *Repository) GetUserByLogin(login string) (*ds.User, error) {
	user := &ds.User{}
	err := r.db.Where("login = ?", login).First(user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return user, nil
}

// CreateUser - создать нового пользователя
func (r *Repository) CreateUser(user *ds.User) error {
	if user == nil {
		return errors.New("user is nil")
	}
	return r.db.Create(user).Error
}
