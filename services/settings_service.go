package services

import (
	"errors"
	"strconv"

	"orderboard/entity"
	"orderboard/events"
	"orderboard/repository"

	"gorm.io/gorm"
)

type SettingsService struct {
	Repo *repository.SettingsRepository
	Bus  events.Bus
}

func NewSettingsService(repo *repository.SettingsRepository, bus events.Bus) *SettingsService {
	return &SettingsService{Repo: repo, Bus: bus}
}

// All returns the settings flattened to a key -> value map.
func (s *SettingsService) All() (map[string]string, error) {
	settings, err := s.Repo.All()
	if err != nil {
		return nil, err
	}
	out := make(map[string]string, len(settings))
	for _, st := range settings {
		out[st.Key] = st.Value
	}
	return out, nil
}

func (s *SettingsService) Get(key string) (*entity.Setting, error) {
	st, err := s.Repo.Get(key)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSettingNotFound
		}
		return nil, err
	}
	return st, nil
}

func (s *SettingsService) Set(key, value, description string) (*entity.Setting, error) {
	st := entity.Setting{Key: key, Value: value, Description: description}
	if err := s.Repo.Upsert(&st); err != nil {
		return nil, err
	}
	s.Bus.Publish(events.Event{Type: events.SettingsUpdated, Payload: events.SettingRef{Key: key, Value: value}})
	return &st, nil
}

// CustomerOrderingEnabled reports whether anonymous CUSTOMER orders are
// accepted. A missing key means disabled.
func (s *SettingsService) CustomerOrderingEnabled() (bool, error) {
	st, err := s.Repo.Get(entity.SettingCustomerOrdering)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	enabled, _ := strconv.ParseBool(st.Value)
	return enabled, nil
}

func (s *SettingsService) SetCustomerOrdering(enabled bool) (*entity.Setting, error) {
	st := entity.Setting{
		Key:         entity.SettingCustomerOrdering,
		Value:       strconv.FormatBool(enabled),
		Description: "Enable or disable customer self-ordering",
	}
	if err := s.Repo.Upsert(&st); err != nil {
		return nil, err
	}
	s.Bus.Publish(events.Event{Type: events.CustomerOrdering, Payload: events.CustomerOrderingRef{Enabled: enabled}})
	return &st, nil
}
