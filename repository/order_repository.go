package repository

import (
	"fmt"
	"time"

	"orderboard/entity"

	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// ---------------- Order id sequence ----------------

// NextOrderID claims the next ORD-NNNNN id inside tx. The single counter row
// is bumped with an atomic UPDATE, so two concurrent creates can never read
// the same value.
func (r *OrderRepository) NextOrderID(tx *gorm.DB) (string, error) {
	res := tx.Model(&entity.OrderCounter{}).
		Where("id = ?", 1).
		Update("value", gorm.Expr("value + ?", 1))
	if res.Error != nil {
		return "", res.Error
	}
	if res.RowsAffected == 0 {
		return "", gorm.ErrRecordNotFound
	}

	var counter entity.OrderCounter
	if err := tx.First(&counter, 1).Error; err != nil {
		return "", err
	}
	return fmt.Sprintf("ORD-%05d", counter.Value), nil
}

// ---------------- Orders (CRUD) ----------------

func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

// GetByOrderID loads an order (with item snapshots) by its public ORD id.
func (r *OrderRepository) GetByOrderID(orderID string) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Preload("Items").Where("order_id = ?", orderID).First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

type ListFilter struct {
	Status    entity.Status
	OrderType entity.OrderType
	StartDate *time.Time
	EndDate   *time.Time
	Limit     int
}

// List returns orders newest-first; management views read this.
func (r *OrderRepository) List(f ListFilter) ([]entity.Order, error) {
	if f.Limit <= 0 {
		f.Limit = 100
	}
	db := r.DB.Preload("Items")
	if f.Status != "" {
		db = db.Where("status = ?", f.Status)
	}
	if f.OrderType != "" {
		db = db.Where("order_type = ?", f.OrderType)
	}
	if f.StartDate != nil {
		db = db.Where("created_at >= ?", *f.StartDate)
	}
	if f.EndDate != nil {
		db = db.Where("created_at <= ?", *f.EndDate)
	}

	var orders []entity.Order
	err := db.Order("created_at DESC").Limit(f.Limit).Find(&orders).Error
	return orders, err
}

// DisplayOrder is the minimal field set the unauthenticated boards may see.
// No pricing or item detail.
type DisplayOrder struct {
	OrderID      string        `json:"orderId"`
	CustomerName string        `json:"customerName"`
	Status       entity.Status `json:"status"`
	CreatedAt    time.Time     `json:"createdAt"`
	UpdatedAt    time.Time     `json:"updatedAt"`
}

// ListActiveForDisplay returns every live order oldest-first, so the public
// queue shows the oldest pending order on top. The ascending sort is
// deliberate and differs from the management List.
func (r *OrderRepository) ListActiveForDisplay() ([]DisplayOrder, error) {
	var out []DisplayOrder
	err := r.DB.Model(&entity.Order{}).
		Select("order_id, customer_name, status, created_at, updated_at").
		Where("status IN ?", entity.AllStatuses()).
		Order("created_at ASC").
		Scan(&out).Error
	return out, err
}

// ListActive returns full live orders oldest-first, for seeding board
// projections.
func (r *OrderRepository) ListActive() ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.Preload("Items").
		Where("status IN ?", entity.AllStatuses()).
		Order("created_at ASC").
		Find(&orders).Error
	return orders, err
}

// UpdateStatus persists the new status and bumps updated_at.
func (r *OrderRepository) UpdateStatus(tx *gorm.DB, id uint, status entity.Status) error {
	return tx.Model(&entity.Order{}).
		Where("id = ?", id).
		Updates(map[string]any{"status": status, "updated_at": time.Now()}).Error
}

// DeleteOrder permanently removes the order and its item snapshots. No report
// is created; this is the data-loss path for erroneous orders.
func (r *OrderRepository) DeleteOrder(tx *gorm.DB, id uint) error {
	if err := tx.Where("order_id = ?", id).Delete(&entity.OrderItem{}).Error; err != nil {
		return err
	}
	return tx.Delete(&entity.Order{}, id).Error
}

// DeleteOrderIfUnchanged removes the order only when updated_at still matches
// the value read earlier in the same transaction. Zero rows affected means a
// concurrent mutation slipped in between; the caller aborts the archive.
func (r *OrderRepository) DeleteOrderIfUnchanged(tx *gorm.DB, id uint, seenUpdatedAt time.Time) (bool, error) {
	if err := tx.Where("order_id = ?", id).Delete(&entity.OrderItem{}).Error; err != nil {
		return false, err
	}
	res := tx.Where("id = ? AND updated_at = ?", id, seenUpdatedAt).Delete(&entity.Order{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

// ---------------- Stats ----------------

type StatusCount struct {
	Status entity.Status `json:"status"`
	Count  int64         `json:"count"`
}

func (r *OrderRepository) CountByStatus() ([]StatusCount, error) {
	var rows []StatusCount
	err := r.DB.Model(&entity.Order{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error
	return rows, err
}

func (r *OrderRepository) CountSince(t time.Time) (int64, error) {
	var n int64
	err := r.DB.Model(&entity.Order{}).Where("created_at >= ?", t).Count(&n).Error
	return n, err
}

func (r *OrderRepository) RevenueSince(t time.Time) (float64, error) {
	var row struct{ Total float64 }
	err := r.DB.Model(&entity.Order{}).
		Select("COALESCE(SUM(total_amount), 0) AS total").
		Where("created_at >= ?", t).
		Scan(&row).Error
	return row.Total, err
}

func (r *OrderRepository) TotalRevenue() (float64, error) {
	var row struct{ Total float64 }
	err := r.DB.Model(&entity.Order{}).
		Select("COALESCE(SUM(total_amount), 0) AS total").
		Scan(&row).Error
	return row.Total, err
}
