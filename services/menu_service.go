package services

import (
	"errors"
	"fmt"
	"strings"

	"orderboard/entity"
	"orderboard/events"
	"orderboard/repository"

	"gorm.io/gorm"
)

type MenuService struct {
	Repo *repository.MenuRepository
	Bus  events.Bus
}

func NewMenuService(repo *repository.MenuRepository, bus events.Bus) *MenuService {
	return &MenuService{Repo: repo, Bus: bus}
}

type MenuItemIn struct {
	Name        string   `json:"name" binding:"required"`
	Price       *float64 `json:"price" binding:"required"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	ImageURL    string   `json:"imageUrl"`
	IsAvailable *bool    `json:"isAvailable"`
}

func (s *MenuService) List(category string, isAvailable *bool) ([]entity.MenuItem, error) {
	return s.Repo.List(category, isAvailable)
}

func (s *MenuService) Categories() ([]string, error) {
	return s.Repo.Categories()
}

func (s *MenuService) Get(id uint) (*entity.MenuItem, error) {
	m, err := s.Repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMenuItemNotFound
		}
		return nil, err
	}
	return m, nil
}

func (s *MenuService) Create(in *MenuItemIn) (*entity.MenuItem, error) {
	if strings.TrimSpace(in.Name) == "" || in.Price == nil {
		return nil, fmt.Errorf("%w: name and price are required", ErrValidation)
	}
	if *in.Price < 0 {
		return nil, fmt.Errorf("%w: price cannot be negative", ErrValidation)
	}

	m := entity.MenuItem{
		Name:        strings.TrimSpace(in.Name),
		Price:       *in.Price,
		Description: in.Description,
		Category:    in.Category,
		ImageURL:    in.ImageURL,
		IsAvailable: true,
	}
	if m.Category == "" {
		m.Category = "General"
	}
	if in.IsAvailable != nil {
		m.IsAvailable = *in.IsAvailable
	}

	if err := s.Repo.Create(&m); err != nil {
		return nil, err
	}
	s.Bus.Publish(events.Event{Type: events.MenuItemCreated, Payload: m})
	return &m, nil
}

type MenuItemUpdate struct {
	Name        *string  `json:"name"`
	Price       *float64 `json:"price"`
	Description *string  `json:"description"`
	Category    *string  `json:"category"`
	ImageURL    *string  `json:"imageUrl"`
	IsAvailable *bool    `json:"isAvailable"`
}

// Update patches the given fields only. Price and availability changes apply
// to future orders; existing orders keep their snapshots.
func (s *MenuService) Update(id uint, in *MenuItemUpdate) (*entity.MenuItem, error) {
	m, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		m.Name = strings.TrimSpace(*in.Name)
	}
	if in.Price != nil {
		if *in.Price < 0 {
			return nil, fmt.Errorf("%w: price cannot be negative", ErrValidation)
		}
		m.Price = *in.Price
	}
	if in.Description != nil {
		m.Description = *in.Description
	}
	if in.Category != nil {
		m.Category = *in.Category
	}
	if in.ImageURL != nil {
		m.ImageURL = *in.ImageURL
	}
	if in.IsAvailable != nil {
		m.IsAvailable = *in.IsAvailable
	}

	if err := s.Repo.Save(m); err != nil {
		return nil, err
	}
	s.Bus.Publish(events.Event{Type: events.MenuItemUpdated, Payload: *m})
	return m, nil
}

func (s *MenuService) Delete(id uint) error {
	affected, err := s.Repo.Delete(id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrMenuItemNotFound
	}
	s.Bus.Publish(events.Event{Type: events.MenuItemDeleted, Payload: map[string]uint{"id": id}})
	return nil
}
