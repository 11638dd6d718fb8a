package mysql

import (
	"errors"

	"commerce-core/internal/domain"
	"commerce-core/internal/repository"

	"gorm.io/gorm"
)

type userRepo struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) Save(user *domain.User) error {
	return r.db.Create(user).Error
}

func (r *userRepo) FindByID(id uint64) (*domain.User, error) {
	var u domain.User
	return firstUser(r.db.First(&u, id), &u)
}

func (r *userRepo) FindByUsername(username string) (*domain.User, error) {
	var u domain.User
	return firstUser(r.db.Where("username = ?", username).First(&u), &u)
}

func (r *userRepo) FindByEmail(email string) (*domain.User, error) {
	var u domain.User
	return firstUser(r.db.Where("email = ?", email).First(&u), &u)
}

func firstUser(tx *gorm.DB, u *domain.User) (*domain.User, error) {
	if err := tx.Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return u, nil
}
