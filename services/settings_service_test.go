package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orderboard/entity"
	"orderboard/events"
)

func TestCustomerOrderingDefaultsToDisabled(t *testing.T) {
	env := newTestEnv(t)

	enabled, err := env.settings.CustomerOrderingEnabled()
	require.NoError(t, err)
	assert.False(t, enabled)
}

func TestSetCustomerOrdering(t *testing.T) {
	env := newTestEnv(t)
	sub := env.bus.Subscribe(events.CustomerOrdering)
	defer sub.Close()

	_, err := env.settings.SetCustomerOrdering(true)
	require.NoError(t, err)

	enabled, err := env.settings.CustomerOrderingEnabled()
	require.NoError(t, err)
	assert.True(t, enabled)

	_, err = env.settings.SetCustomerOrdering(false)
	require.NoError(t, err)

	enabled, err = env.settings.CustomerOrderingEnabled()
	require.NoError(t, err)
	assert.False(t, enabled)

	got := collect(sub)
	require.Len(t, got, 2)
	assert.Equal(t, events.CustomerOrderingRef{Enabled: true}, got[0].Payload)
	assert.Equal(t, events.CustomerOrderingRef{Enabled: false}, got[1].Payload)
}

func TestSetUpsertsAndPublishes(t *testing.T) {
	env := newTestEnv(t)
	sub := env.bus.Subscribe(events.SettingsUpdated)
	defer sub.Close()

	_, err := env.settings.Set("restaurantName", "Blue Oven", "Display name")
	require.NoError(t, err)
	_, err = env.settings.Set("restaurantName", "Blue Oven II", "Display name")
	require.NoError(t, err)

	st, err := env.settings.Get("restaurantName")
	require.NoError(t, err)
	assert.Equal(t, "Blue Oven II", st.Value)

	all, err := env.settings.All()
	require.NoError(t, err)
	assert.Equal(t, "Blue Oven II", all["restaurantName"])

	assert.Len(t, collect(sub), 2)
}

func TestGetUnknownSetting(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.settings.Get("noSuchKey")
	assert.ErrorIs(t, err, ErrSettingNotFound)
}

func TestSettingKeyConstantMatchesWireName(t *testing.T) {
	assert.Equal(t, "customerOrderingEnabled", entity.SettingCustomerOrdering)
}
