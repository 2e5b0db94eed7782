package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orderboard/events"
)

func floatPtr(v float64) *float64 { return &v }
func strPtr(v string) *string     { return &v }
func boolPtr(v bool) *bool        { return &v }

func TestMenuCreateDefaults(t *testing.T) {
	env := newTestEnv(t)
	sub := env.bus.Subscribe(events.MenuItemCreated)
	defer sub.Close()

	m, err := env.menu.Create(&MenuItemIn{Name: "  Garlic Bread ", Price: floatPtr(4.5)})
	require.NoError(t, err)
	assert.Equal(t, "Garlic Bread", m.Name)
	assert.Equal(t, "General", m.Category)
	assert.True(t, m.IsAvailable)
	assert.Len(t, collect(sub), 1)
}

func TestMenuCreateValidation(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.menu.Create(&MenuItemIn{Name: " ", Price: floatPtr(4.5)})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = env.menu.Create(&MenuItemIn{Name: "Garlic Bread", Price: floatPtr(-1)})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestMenuUpdatePatchesGivenFieldsOnly(t *testing.T) {
	env := newTestEnv(t)
	sub := env.bus.Subscribe(events.MenuItemUpdated)
	defer sub.Close()

	updated, err := env.menu.Update(env.pizza.ID, &MenuItemUpdate{
		Price:       floatPtr(13.99),
		IsAvailable: boolPtr(false),
	})
	require.NoError(t, err)
	assert.InDelta(t, 13.99, updated.Price, 1e-9)
	assert.False(t, updated.IsAvailable)
	// Untouched fields keep their values.
	assert.Equal(t, "Margherita Pizza", updated.Name)
	assert.Equal(t, "Pizza", updated.Category)

	assert.Len(t, collect(sub), 1)

	_, err = env.menu.Update(env.pizza.ID, &MenuItemUpdate{Name: strPtr("Margherita"), Price: floatPtr(-5)})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestMenuUnavailableItemStaysListedButUnorderable(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.menu.Update(env.pizza.ID, &MenuItemUpdate{IsAvailable: boolPtr(false)})
	require.NoError(t, err)

	all, err := env.menu.List("", nil)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	available, err := env.menu.List("", boolPtr(true))
	require.NoError(t, err)
	assert.Len(t, available, 1)

	_, err = env.orders.Create(&CreateOrderReq{
		CustomerName: "Alice",
		Items:        []OrderItemIn{{MenuItemID: env.pizza.ID, Quantity: 1}},
	}, nil)
	assert.ErrorIs(t, err, ErrMenuItemUnavailable)
}

func TestMenuDelete(t *testing.T) {
	env := newTestEnv(t)
	sub := env.bus.Subscribe(events.MenuItemDeleted)
	defer sub.Close()

	require.NoError(t, env.menu.Delete(env.cola.ID))
	_, err := env.menu.Get(env.cola.ID)
	assert.ErrorIs(t, err, ErrMenuItemNotFound)
	assert.Len(t, collect(sub), 1)

	assert.ErrorIs(t, env.menu.Delete(99999), ErrMenuItemNotFound)
}

func TestMenuCategories(t *testing.T) {
	env := newTestEnv(t)
	cats, err := env.menu.Categories()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Pizza", "Drinks", "Desserts"}, cats)
}
