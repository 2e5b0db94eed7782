package services

import (
	"errors"
	"time"

	"orderboard/entity"
	"orderboard/events"
	"orderboard/repository"

	"gorm.io/gorm"
)

type ReportService struct {
	DB        *gorm.DB
	Repo      *repository.ReportRepository
	OrderRepo *repository.OrderRepository
	Bus       events.Bus
}

func NewReportService(db *gorm.DB, repo *repository.ReportRepository, orderRepo *repository.OrderRepository, bus events.Bus) *ReportService {
	return &ReportService{DB: db, Repo: repo, OrderRepo: orderRepo, Bus: bus}
}

// Archive marks an order taken: it copies the order's full state into a new
// report and removes the order, as one transaction. The order row is deleted
// with a guard on the updated_at read inside the same transaction; if a
// concurrent mutation bumped it, the whole archive aborts with
// ErrArchiveConflict instead of archiving stale state.
func (s *ReportService) Archive(orderID string, takenBy uint) (*entity.Report, error) {
	var report entity.Report

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var o entity.Order
		if err := tx.Preload("Items").Where("order_id = ?", orderID).First(&o).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrOrderNotFound
			}
			return err
		}

		items := make([]entity.ReportItem, 0, len(o.Items))
		for _, it := range o.Items {
			items = append(items, entity.ReportItem{
				Name:       it.Name,
				UnitPrice:  it.UnitPrice,
				Quantity:   it.Quantity,
				MenuItemID: it.MenuItemID,
			})
		}

		report = entity.Report{
			OrderID:           o.OrderID,
			CustomerName:      o.CustomerName,
			TotalAmount:       o.TotalAmount,
			Status:            o.Status,
			OrderType:         o.OrderType,
			Notes:             o.Notes,
			CreatedByID:       o.CreatedByID,
			TakenByID:         takenBy,
			OriginalCreatedAt: o.CreatedAt,
			TakenAt:           time.Now(),
			Items:             items,
		}
		if err := s.Repo.Create(tx, &report); err != nil {
			return err
		}

		ok, err := s.OrderRepo.DeleteOrderIfUnchanged(tx, o.ID, o.UpdatedAt)
		if err != nil {
			return err
		}
		if !ok {
			return ErrArchiveConflict
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.Bus.Publish(events.Event{
		Type:    events.OrderTaken,
		Payload: events.TakenRef{OrderID: report.OrderID, ReportID: report.ID},
	})
	return &report, nil
}

func (s *ReportService) List(start, end *time.Time, limit int) ([]entity.Report, error) {
	return s.Repo.List(start, end, limit)
}

type DailyReportSummary struct {
	Date        string          `json:"date"`
	Reports     []entity.Report `json:"reports"`
	TotalOrders int             `json:"totalOrders"`
	TotalAmount float64         `json:"totalAmount"`
}

// ByDate lists reports taken on a calendar day with day totals.
func (s *ReportService) ByDate(date string) (*DailyReportSummary, error) {
	day, err := time.ParseInLocation("2006-01-02", date, time.Local)
	if err != nil {
		return nil, ErrValidation
	}
	start := day
	end := day.Add(24*time.Hour - time.Nanosecond)

	reports, err := s.Repo.List(&start, &end, 1000)
	if err != nil {
		return nil, err
	}

	sum := &DailyReportSummary{Date: date, Reports: reports, TotalOrders: len(reports)}
	for _, r := range reports {
		sum.TotalAmount += r.TotalAmount
	}
	return sum, nil
}
