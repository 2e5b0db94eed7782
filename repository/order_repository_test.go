package repository

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"orderboard/entity"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "repo.db")+"?_loc=auto"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&entity.Order{}, &entity.OrderItem{}, &entity.OrderCounter{},
	))
	require.NoError(t, db.Create(&entity.OrderCounter{ID: 1, Value: 0}).Error)
	return db
}

func TestNextOrderIDSequence(t *testing.T) {
	db := newTestDB(t)
	repo := NewOrderRepository(db)

	id1, err := repo.NextOrderID(db)
	require.NoError(t, err)
	id2, err := repo.NextOrderID(db)
	require.NoError(t, err)

	assert.Equal(t, "ORD-00001", id1)
	assert.Equal(t, "ORD-00002", id2)
}

func TestNextOrderIDWithoutCounterRow(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, db.Delete(&entity.OrderCounter{}, 1).Error)

	repo := NewOrderRepository(db)
	_, err := repo.NextOrderID(db)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestDeleteOrderIfUnchangedGuard(t *testing.T) {
	db := newTestDB(t)
	repo := NewOrderRepository(db)

	o := entity.Order{
		OrderID:      "ORD-00001",
		CustomerName: "Alice",
		Status:       entity.StatusReady,
		OrderType:    entity.OrderTypeStaff,
		Items:        []entity.OrderItem{{Name: "Margherita Pizza", UnitPrice: 12.99, Quantity: 1}},
	}
	require.NoError(t, repo.CreateOrder(db, &o))

	// A stale updated_at must not delete anything.
	stale := o.UpdatedAt.Add(-time.Minute)
	ok, err := repo.DeleteOrderIfUnchanged(db, o.ID, stale)
	require.NoError(t, err)
	assert.False(t, ok)

	var remaining int64
	require.NoError(t, db.Model(&entity.Order{}).Count(&remaining).Error)
	assert.EqualValues(t, 1, remaining)

	// The timestamp actually read does.
	current, err := repo.GetByOrderID(o.OrderID)
	require.NoError(t, err)
	ok, err = repo.DeleteOrderIfUnchanged(db, current.ID, current.UpdatedAt)
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, db.Model(&entity.Order{}).Count(&remaining).Error)
	assert.Zero(t, remaining)
}

func TestUpdateStatusBumpsUpdatedAt(t *testing.T) {
	db := newTestDB(t)
	repo := NewOrderRepository(db)

	o := entity.Order{OrderID: "ORD-00001", CustomerName: "Bob", Status: entity.StatusPending, OrderType: entity.OrderTypeStaff}
	require.NoError(t, repo.CreateOrder(db, &o))

	time.Sleep(5 * time.Millisecond)
	require.NoError(t, repo.UpdateStatus(db, o.ID, entity.StatusStarted))

	reloaded, err := repo.GetByOrderID(o.OrderID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusStarted, reloaded.Status)
	assert.True(t, reloaded.UpdatedAt.After(o.UpdatedAt))
}
