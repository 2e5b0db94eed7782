package controllers

import (
	"strconv"
	"time"

	"orderboard/entity"
	"orderboard/pkg/resp"
	"orderboard/repository"
	"orderboard/services"
	"orderboard/utils"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	Orders   *services.OrderService
	Reports  *services.ReportService
	Settings *services.SettingsService
}

func NewOrderController(orders *services.OrderService, reports *services.ReportService, settings *services.SettingsService) *OrderController {
	return &OrderController{Orders: orders, Reports: reports, Settings: settings}
}

// POST /api/orders
// Staff create with a token; customers create anonymously when self-ordering
// is enabled. The gate lives here, not in the service: the core does not own
// the settings concept.
func (oc *OrderController) Create(c *gin.Context) {
	var req services.CreateOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if req.OrderType == string(entity.OrderTypeCustomer) {
		enabled, err := oc.Settings.CustomerOrderingEnabled()
		if err != nil {
			resp.ServerError(c, err)
			return
		}
		if !enabled {
			resp.Forbidden(c, "customer ordering is currently disabled")
			return
		}
	}

	order, err := oc.Orders.Create(&req, utils.CurrentUserIDRef(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.Created(c, order)
}

// GET /api/orders?status=&orderType=&startDate=&endDate=&limit=
func (oc *OrderController) List(c *gin.Context) {
	var f repository.ListFilter

	if v := c.Query("status"); v != "" {
		st, ok := entity.ParseStatus(v)
		if !ok {
			resp.BadRequest(c, "invalid status filter")
			return
		}
		f.Status = st
	}
	if v := c.Query("orderType"); v != "" {
		t, ok := entity.ParseOrderType(v)
		if !ok {
			resp.BadRequest(c, "invalid orderType filter")
			return
		}
		f.OrderType = t
	}
	if v := c.Query("startDate"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			resp.BadRequest(c, "startDate must be RFC3339")
			return
		}
		f.StartDate = &t
	}
	if v := c.Query("endDate"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			resp.BadRequest(c, "endDate must be RFC3339")
			return
		}
		f.EndDate = &t
	}
	if v := c.Query("limit"); v != "" {
		f.Limit, _ = strconv.Atoi(v)
	}

	orders, err := oc.Orders.List(f)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"count": len(orders), "items": orders})
}

// GET /api/orders/ready. Public board feed: minimal fields, oldest first.
func (oc *OrderController) ListForDisplay(c *gin.Context) {
	orders, err := oc.Orders.ListActiveForDisplay()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"count": len(orders), "items": orders})
}

// GET /api/orders/:id
func (oc *OrderController) Detail(c *gin.Context) {
	order, err := oc.Orders.Get(c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, order)
}

// PATCH /api/orders/:id/status. Kitchen dropdown; any of the four values
// from any current state.
func (oc *OrderController) UpdateStatus(c *gin.Context) {
	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := oc.Orders.SetStatus(c.Param("id"), req.Status)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, order)
}

// POST /api/orders/:id/advance. Single-button forward step.
func (oc *OrderController) Advance(c *gin.Context) {
	order, err := oc.Orders.Advance(c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, order)
}

// POST /api/orders/:id/taken. Archives the order into a report.
func (oc *OrderController) MarkTaken(c *gin.Context) {
	report, err := oc.Reports.Archive(c.Param("id"), utils.CurrentUserID(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, report)
}

// DELETE /api/orders/:id. Permanent delete, no report.
func (oc *OrderController) Delete(c *gin.Context) {
	if err := oc.Orders.Delete(c.Param("id")); err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": c.Param("id")})
}

// GET /api/orders/stats
func (oc *OrderController) Stats(c *gin.Context) {
	stats, err := oc.Orders.Stats()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, stats)
}

// GET /api/orders/history?date=YYYY-MM-DD
func (oc *OrderController) History(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		resp.BadRequest(c, "date parameter is required")
		return
	}
	h, err := oc.Orders.History(date)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, h)
}
