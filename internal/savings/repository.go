package savings

import "gorm.io/gorm"

type Repository interface {
	Create(t *Transaction) error
	ListByGoalID(goalID uint) ([]Transaction, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(t *Transaction) error {
	return r.db.Create(t).Error
}

func (r *repository) ListByGoalID(goalID uint) ([]Transaction, error) {
	var txns []Transaction
	if err := r.db.
		Where("goal_id = ?", goalID).
		Order("date_saved ASC").
		Find(&txns).Error; err != nil {
		return nil, err
	}
	return txns, nil
}
