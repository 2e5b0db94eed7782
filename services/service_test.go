package services

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"orderboard/entity"
	"orderboard/events"
	"orderboard/repository"
)

// testEnv wires the full service stack against a throwaway sqlite file. The
// pool is capped at one connection so writes serialize the same way they do
// behind the production pool.
type testEnv struct {
	db  *gorm.DB
	bus *events.InProcessBus

	orders   *OrderService
	reports  *ReportService
	menu     *MenuService
	settings *SettingsService
	auth     *AuthService

	pizza       entity.MenuItem
	cola        entity.MenuItem
	unavailable entity.MenuItem
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "orderboard.db") + "?_loc=auto"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&entity.User{},
		&entity.MenuItem{},
		&entity.Order{},
		&entity.OrderItem{},
		&entity.Report{},
		&entity.ReportItem{},
		&entity.Setting{},
		&entity.OrderCounter{},
	))
	require.NoError(t, db.Create(&entity.OrderCounter{ID: 1, Value: 0}).Error)

	bus := events.NewInProcessBus(nil)
	orderRepo := repository.NewOrderRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	reportRepo := repository.NewReportRepository(db)

	env := &testEnv{
		db:       db,
		bus:      bus,
		orders:   NewOrderService(db, orderRepo, menuRepo, bus),
		reports:  NewReportService(db, reportRepo, orderRepo, bus),
		menu:     NewMenuService(menuRepo, bus),
		settings: NewSettingsService(repository.NewSettingsRepository(db), bus),
		auth:     NewAuthService(repository.NewUserRepository(db), "test-secret", time.Hour),
	}

	env.pizza = entity.MenuItem{Name: "Margherita Pizza", Price: 12.99, Category: "Pizza", IsAvailable: true}
	env.cola = entity.MenuItem{Name: "Coca Cola", Price: 2.99, Category: "Drinks", IsAvailable: true}
	env.unavailable = entity.MenuItem{Name: "Tiramisu", Price: 6.50, Category: "Desserts"}
	require.NoError(t, db.Create(&env.pizza).Error)
	require.NoError(t, db.Create(&env.cola).Error)
	require.NoError(t, db.Create(&env.unavailable).Error)
	// default:true on the column wins during insert, flip it explicitly
	require.NoError(t, db.Model(&env.unavailable).Update("is_available", false).Error)

	return env
}

// placeOrder creates a staff order for one pizza and fails the test on error.
func (e *testEnv) placeOrder(t *testing.T, name string) *entity.Order {
	t.Helper()
	o, err := e.orders.Create(&CreateOrderReq{
		CustomerName: name,
		Items:        []OrderItemIn{{MenuItemID: e.pizza.ID, Quantity: 1}},
	}, nil)
	require.NoError(t, err)
	return o
}

// collect drains every event currently buffered on sub.
func collect(sub *events.Subscription) []events.Event {
	var got []events.Event
	for {
		select {
		case ev := <-sub.C:
			got = append(got, ev)
		default:
			return got
		}
	}
}

func eventTypes(evs []events.Event) []events.Type {
	out := make([]events.Type, 0, len(evs))
	for _, ev := range evs {
		out = append(out, ev.Type)
	}
	return out
}
