package mysql

import (
	"errors"

	"commerce-core/internal/domain"
	"commerce-core/internal/repository"

	"gorm.io/gorm"
)

type traderRepo struct {
	db *gorm.DB
}

func NewTraderRepository(db *gorm.DB) repository.TraderRepository {
	return &traderRepo{db: db}
}

func (r *traderRepo) Save(trader *domain.Trader) error {
	return r.db.Create(trader).Error
}

func (r *traderRepo) Delete(id uint64) error {
	res := r.db.Delete(&domain.Trader{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *traderRepo) FindByID(id uint64) (*domain.Trader, error) {
	var t domain.Trader
	return firstTrader(r.db.First(&t, id), &t)
}

func (r *traderRepo) FindByUsername(username string) (*domain.Trader, error) {
	var t domain.Trader
	return firstTrader(r.db.Where("username = ?", username).First(&t), &t)
}

func (r *traderRepo) FindByEmail(email string) (*domain.Trader, error) {
	var t domain.Trader
	return firstTrader(r.db.Where("email = ?", email).First(&t), &t)
}

func firstTrader(tx *gorm.DB, t *domain.Trader) (*domain.Trader, error) {
	if err := tx.Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return t, nil
}
