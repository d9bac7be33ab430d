package user

import (
	"errors"

	"gorm.io/gorm"
)

type UserRepository interface {
	Create(user *User) error
	FindByEmail(email string) (*User, error)
	FindByID(id uint) (*User, error)
	UpdateProfile(id uint, updates map[string]interface{}) error
	UpdateProfilePicture(id uint, path string) error
	UpdatePasswordHash(email, hash string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) UserRepository {
	return &repository{db: db}
}

func (r *repository) Create(user *User) error {
	return r.db.Create(user).Error
}

func (r *repository) FindByEmail(email string) (*User, error) {
	var user User
	if err := r.db.First(&user, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// FindByID excludes soft-deleted rows.
func (r *repository) FindByID(id uint) (*User, error) {
	var user User
	if err := r.db.First(&user, "user_id = ? AND is_deleted = ?", id, false).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *repository) UpdateProfile(id uint, updates map[string]interface{}) error {
	return r.db.Model(&User{}).
		Where("user_id = ? AND is_deleted = ?", id, false).
		Updates(updates).Error
}

func (r *repository) UpdateProfilePicture(id uint, path string) error {
	return r.db.Model(&User{}).
		Where("user_id = ?", id).
		Update("profile_picture", path).Error
}

func (r *repository) UpdatePasswordHash(email, hash string) error {
	return r.db.Model(&User{}).
		Where("email = ?", email).
		Update("password_hash", hash).Error
}
