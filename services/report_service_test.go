package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orderboard/entity"
	"orderboard/events"
)

func (e *testEnv) staffUser(t *testing.T, username string) *entity.User {
	t.Helper()
	u, err := e.auth.RegisterStaff(&RegisterStaffReq{
		Username: username,
		Password: "secret123",
		Role:     entity.RoleStaff,
	})
	require.NoError(t, err)
	return u
}

func TestArchiveCopiesOrderAndRemovesIt(t *testing.T) {
	env := newTestEnv(t)
	staff := env.staffUser(t, "pat")

	o, err := env.orders.Create(&CreateOrderReq{
		CustomerName: "Alice",
		Items: []OrderItemIn{
			{MenuItemID: env.pizza.ID, Quantity: 2},
			{MenuItemID: env.cola.ID, Quantity: 1},
		},
		Notes: "no ice",
	}, nil)
	require.NoError(t, err)
	_, err = env.orders.SetStatus(o.OrderID, "READY")
	require.NoError(t, err)

	sub := env.bus.Subscribe(events.OrderTaken)
	defer sub.Close()

	report, err := env.reports.Archive(o.OrderID, staff.ID)
	require.NoError(t, err)

	assert.Equal(t, o.OrderID, report.OrderID)
	assert.Equal(t, "Alice", report.CustomerName)
	assert.Equal(t, entity.StatusReady, report.Status)
	assert.Equal(t, "no ice", report.Notes)
	assert.Equal(t, staff.ID, report.TakenByID)
	assert.InDelta(t, o.TotalAmount, report.TotalAmount, 1e-9)
	assert.WithinDuration(t, o.CreatedAt, report.OriginalCreatedAt, time.Second)
	assert.WithinDuration(t, time.Now(), report.TakenAt, 5*time.Second)

	require.Len(t, report.Items, 2)
	assert.Equal(t, "Margherita Pizza", report.Items[0].Name)
	assert.Equal(t, 2, report.Items[0].Quantity)

	// The live order is gone; only the report remains.
	_, err = env.orders.Get(o.OrderID)
	assert.ErrorIs(t, err, ErrOrderNotFound)

	var reportCount int64
	require.NoError(t, env.db.Model(&entity.Report{}).Count(&reportCount).Error)
	assert.EqualValues(t, 1, reportCount)

	got := collect(sub)
	require.Len(t, got, 1)
	assert.Equal(t, events.TakenRef{OrderID: o.OrderID, ReportID: report.ID}, got[0].Payload)
}

func TestArchiveUnknownOrder(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.reports.Archive("ORD-99999", 1)
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestArchiveTwiceFails(t *testing.T) {
	env := newTestEnv(t)
	staff := env.staffUser(t, "sam")
	o := env.placeOrder(t, "Bob")

	_, err := env.reports.Archive(o.OrderID, staff.ID)
	require.NoError(t, err)

	_, err = env.reports.Archive(o.OrderID, staff.ID)
	assert.ErrorIs(t, err, ErrOrderNotFound)

	var reportCount int64
	require.NoError(t, env.db.Model(&entity.Report{}).Count(&reportCount).Error)
	assert.EqualValues(t, 1, reportCount)
}

func TestReportsByDate(t *testing.T) {
	env := newTestEnv(t)
	staff := env.staffUser(t, "kim")

	for _, name := range []string{"Alice", "Bob"} {
		o := env.placeOrder(t, name)
		_, err := env.reports.Archive(o.OrderID, staff.ID)
		require.NoError(t, err)
	}

	sum, err := env.reports.ByDate(time.Now().Format("2006-01-02"))
	require.NoError(t, err)
	assert.Equal(t, 2, sum.TotalOrders)
	assert.InDelta(t, 2*12.99, sum.TotalAmount, 1e-9)

	empty, err := env.reports.ByDate("2000-01-01")
	require.NoError(t, err)
	assert.Zero(t, empty.TotalOrders)

	_, err = env.reports.ByDate("not-a-date")
	assert.ErrorIs(t, err, ErrValidation)
}
