package repository

import (
	"orderboard/entity"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SettingsRepository struct {
	DB *gorm.DB
}

func NewSettingsRepository(db *gorm.DB) *SettingsRepository {
	return &SettingsRepository{DB: db}
}

func (r *SettingsRepository) Get(key string) (*entity.Setting, error) {
	var s entity.Setting
	if err := r.DB.Where("key = ?", key).First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SettingsRepository) All() ([]entity.Setting, error) {
	var settings []entity.Setting
	err := r.DB.Find(&settings).Error
	return settings, err
}

// Upsert creates the key or overwrites its value and description.
func (r *SettingsRepository) Upsert(s *entity.Setting) error {
	return r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "description", "updated_at"}),
	}).Create(s).Error
}
