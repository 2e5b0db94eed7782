package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"orderboard/entity"
	"orderboard/events"
	"orderboard/repository"

	"gorm.io/gorm"
)

type OrderService struct {
	DB       *gorm.DB
	Repo     *repository.OrderRepository
	MenuRepo *repository.MenuRepository
	Bus      events.Bus
}

func NewOrderService(db *gorm.DB, repo *repository.OrderRepository, menuRepo *repository.MenuRepository, bus events.Bus) *OrderService {
	return &OrderService{DB: db, Repo: repo, MenuRepo: menuRepo, Bus: bus}
}

// ----- DTOs from Controller -----

type OrderItemIn struct {
	MenuItemID uint `json:"menuItemId" binding:"required"`
	Quantity   int  `json:"quantity" binding:"required,min=1"`
}

type CreateOrderReq struct {
	CustomerName string        `json:"customerName" binding:"required"`
	Items        []OrderItemIn `json:"items" binding:"required,min=1"`
	OrderType    string        `json:"orderType"`
	Notes        string        `json:"notes"`
}

// ----- Create -----

// Create resolves each menu reference, snapshots name and price into the
// order, claims the next ORD id, and persists everything in one transaction.
// order:created is published only after the transaction commits.
func (s *OrderService) Create(req *CreateOrderReq, createdBy *uint) (*entity.Order, error) {
	if strings.TrimSpace(req.CustomerName) == "" {
		return nil, fmt.Errorf("%w: customer name is required", ErrValidation)
	}
	if len(req.Items) == 0 {
		return nil, fmt.Errorf("%w: items are required", ErrValidation)
	}

	orderType := entity.OrderTypeStaff
	if req.OrderType != "" {
		t, ok := entity.ParseOrderType(req.OrderType)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrInvalidOrderType, req.OrderType)
		}
		orderType = t
	}

	// Resolve and snapshot menu items before touching the database.
	items := make([]entity.OrderItem, 0, len(req.Items))
	for _, in := range req.Items {
		if in.Quantity < 1 {
			return nil, fmt.Errorf("%w: quantity must be at least 1", ErrValidation)
		}
		m, err := s.MenuRepo.GetByID(in.MenuItemID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("%w: %d", ErrMenuItemNotFound, in.MenuItemID)
			}
			return nil, err
		}
		if !m.IsAvailable {
			return nil, fmt.Errorf("%w: %s", ErrMenuItemUnavailable, m.Name)
		}
		items = append(items, entity.OrderItem{
			MenuItemID: m.ID,
			Name:       m.Name,
			UnitPrice:  m.Price,
			Quantity:   in.Quantity,
		})
	}

	order := entity.Order{
		CustomerName: strings.TrimSpace(req.CustomerName),
		Items:        items,
		Status:       entity.StatusPending,
		OrderType:    orderType,
		Notes:        strings.TrimSpace(req.Notes),
		CreatedByID:  createdBy,
	}
	order.CalculateTotal()

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		id, err := s.Repo.NextOrderID(tx)
		if err != nil {
			return err
		}
		order.OrderID = id
		return s.Repo.CreateOrder(tx, &order)
	})
	if err != nil {
		return nil, err
	}

	s.Bus.Publish(events.NewOrderEvent(events.OrderCreated, order))
	return &order, nil
}

// ----- Read -----

func (s *OrderService) Get(orderID string) (*entity.Order, error) {
	o, err := s.Repo.GetByOrderID(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return o, nil
}

func (s *OrderService) List(f repository.ListFilter) ([]entity.Order, error) {
	return s.Repo.List(f)
}

// ListActiveForDisplay feeds the unauthenticated boards: minimal fields,
// oldest order first.
func (s *OrderService) ListActiveForDisplay() ([]repository.DisplayOrder, error) {
	return s.Repo.ListActiveForDisplay()
}

// ----- Delete -----

// Delete permanently removes the order. No report is written; the only trace
// left is the order:deleted event.
func (s *OrderService) Delete(orderID string) error {
	o, err := s.Get(orderID)
	if err != nil {
		return err
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Repo.DeleteOrder(tx, o.ID)
	})
	if err != nil {
		return err
	}

	s.Bus.Publish(events.Event{Type: events.OrderDeleted, Payload: events.OrderRef{OrderID: o.OrderID}})
	return nil
}

// ----- Stats & history -----

type OrderStats struct {
	StatusCounts []repository.StatusCount `json:"statusCounts"`
	TodayOrders  int64                    `json:"todayOrders"`
	TodayRevenue float64                  `json:"todayRevenue"`
	TotalRevenue float64                  `json:"totalRevenue"`
}

func (s *OrderService) Stats() (*OrderStats, error) {
	now := time.Now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	counts, err := s.Repo.CountByStatus()
	if err != nil {
		return nil, err
	}
	todayOrders, err := s.Repo.CountSince(midnight)
	if err != nil {
		return nil, err
	}
	todayRevenue, err := s.Repo.RevenueSince(midnight)
	if err != nil {
		return nil, err
	}
	totalRevenue, err := s.Repo.TotalRevenue()
	if err != nil {
		return nil, err
	}

	return &OrderStats{
		StatusCounts: counts,
		TodayOrders:  todayOrders,
		TodayRevenue: todayRevenue,
		TotalRevenue: totalRevenue,
	}, nil
}

type DailyHistory struct {
	Date            string          `json:"date"`
	Orders          []entity.Order  `json:"orders"`
	TotalOrders     int             `json:"totalOrders"`
	TotalRevenue    float64         `json:"totalRevenue"`
	AverageOrder    float64         `json:"averageOrder"`
	CompletedOrders int             `json:"completedOrders"`
	StatusBreakdown map[string]int  `json:"statusBreakdown"`
}

// History lists the orders created on a calendar day with daily totals.
func (s *OrderService) History(date string) (*DailyHistory, error) {
	day, err := time.ParseInLocation("2006-01-02", date, time.Local)
	if err != nil {
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", ErrValidation)
	}
	start := day
	end := day.Add(24*time.Hour - time.Nanosecond)

	orders, err := s.Repo.List(repository.ListFilter{StartDate: &start, EndDate: &end, Limit: 1000})
	if err != nil {
		return nil, err
	}

	h := &DailyHistory{
		Date:            date,
		Orders:          orders,
		TotalOrders:     len(orders),
		StatusBreakdown: make(map[string]int),
	}
	for _, o := range orders {
		h.TotalRevenue += o.TotalAmount
		h.StatusBreakdown[string(o.Status)]++
		if o.Status == entity.StatusReady || o.Status == entity.StatusCompleted {
			h.CompletedOrders++
		}
	}
	if len(orders) > 0 {
		h.AverageOrder = h.TotalRevenue / float64(len(orders))
	}
	return h, nil
}
