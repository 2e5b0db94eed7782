package repository

import (
	"time"

	"orderboard/entity"

	"gorm.io/gorm"
)

type ReportRepository struct {
	DB *gorm.DB
}

func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{DB: db}
}

func (r *ReportRepository) Create(tx *gorm.DB, rep *entity.Report) error {
	return tx.Create(rep).Error
}

func (r *ReportRepository) GetByID(id uint) (*entity.Report, error) {
	var rep entity.Report
	if err := r.DB.Preload("Items").First(&rep, id).Error; err != nil {
		return nil, err
	}
	return &rep, nil
}

// List returns archived orders newest-taken-first within the date range.
func (r *ReportRepository) List(start, end *time.Time, limit int) ([]entity.Report, error) {
	if limit <= 0 {
		limit = 100
	}
	db := r.DB.Preload("Items")
	if start != nil {
		db = db.Where("taken_at >= ?", *start)
	}
	if end != nil {
		db = db.Where("taken_at <= ?", *end)
	}

	var reports []entity.Report
	err := db.Order("taken_at DESC").Limit(limit).Find(&reports).Error
	return reports, err
}

func (r *ReportRepository) CountByOrderID(orderID string) (int64, error) {
	var n int64
	err := r.DB.Model(&entity.Report{}).Where("order_id = ?", orderID).Count(&n).Error
	return n, err
}
