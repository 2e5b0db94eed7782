package repository

import (
	"orderboard/entity"

	"gorm.io/gorm"
)

type MenuRepository struct {
	DB *gorm.DB
}

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{DB: db}
}

func (r *MenuRepository) GetByID(id uint) (*entity.MenuItem, error) {
	var m entity.MenuItem
	if err := r.DB.First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

// List filters by category and availability; sorted for menu screens.
func (r *MenuRepository) List(category string, isAvailable *bool) ([]entity.MenuItem, error) {
	db := r.DB.Model(&entity.MenuItem{})
	if category != "" {
		db = db.Where("category = ?", category)
	}
	if isAvailable != nil {
		db = db.Where("is_available = ?", *isAvailable)
	}

	var items []entity.MenuItem
	err := db.Order("category ASC, name ASC").Find(&items).Error
	return items, err
}

func (r *MenuRepository) Categories() ([]string, error) {
	var out []string
	err := r.DB.Model(&entity.MenuItem{}).
		Distinct("category").
		Order("category ASC").
		Pluck("category", &out).Error
	return out, err
}

func (r *MenuRepository) Create(m *entity.MenuItem) error {
	return r.DB.Create(m).Error
}

func (r *MenuRepository) Save(m *entity.MenuItem) error {
	return r.DB.Save(m).Error
}

func (r *MenuRepository) Delete(id uint) (int64, error) {
	res := r.DB.Delete(&entity.MenuItem{}, id)
	return res.RowsAffected, res.Error
}
