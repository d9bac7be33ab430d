package goal

import (
	"errors"

	"gorm.io/gorm"

	"github.com/jpdeguzman/alkansave/internal/savings"
)

type Repository interface {
	Create(goal *Goal) error
	FindAllByUserID(userID uint) ([]Goal, error)
	FindByID(id uint) (*Goal, error)
	Update(goal *Goal) error
	SoftDelete(id uint) error
	SaveWithTransaction(goal *Goal, txn *savings.Transaction) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(goal *Goal) error {
	return r.db.Create(goal).Error
}

func (r *repository) FindAllByUserID(userID uint) ([]Goal, error) {
	var goals []Goal
	if err := r.db.
		Where("user_id = ? AND is_deleted = ?", userID, false).
		Order("created_at DESC").
		Find(&goals).Error; err != nil {
		return nil, err
	}
	return goals, nil
}

func (r *repository) FindByID(id uint) (*Goal, error) {
	var goal Goal
	if err := r.db.First(&goal, "goal_id = ? AND is_deleted = ?", id, false).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &goal, nil
}

func (r *repository) Update(goal *Goal) error {
	return r.db.Save(goal).Error
}

func (r *repository) SoftDelete(id uint) error {
	return r.db.Model(&Goal{}).
		Where("goal_id = ?", id).
		Update("is_deleted", true).Error
}

// SaveWithTransaction appends a ledger row and persists the updated goal
// totals in one database transaction.
func (r *repository) SaveWithTransaction(goal *Goal, txn *savings.Transaction) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(txn).Error; err != nil {
			return err
		}
		return tx.Save(goal).Error
	})
}
