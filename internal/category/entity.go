package category

type Category struct {
	CategoryID   uint   `gorm:"primaryKey" json:"category_id"`
	CategoryName string `gorm:"size:100;not null;uniqueIndex" json:"category_name"`
}
