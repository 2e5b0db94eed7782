package controllers

import (
	"orderboard/pkg/resp"
	"orderboard/services"

	"github.com/gin-gonic/gin"
)

type SettingsController struct {
	Settings *services.SettingsService
}

func NewSettingsController(settings *services.SettingsService) *SettingsController {
	return &SettingsController{Settings: settings}
}

// GET /api/settings (owner)
func (sc *SettingsController) All(c *gin.Context) {
	all, err := sc.Settings.All()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, all)
}

// GET /api/settings/:key (owner)
func (sc *SettingsController) Get(c *gin.Context) {
	st, err := sc.Settings.Get(c.Param("key"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, st)
}

// POST /api/settings (owner)
func (sc *SettingsController) Set(c *gin.Context) {
	var req struct {
		Key         string `json:"key" binding:"required"`
		Value       string `json:"value" binding:"required"`
		Description string `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	st, err := sc.Settings.Set(req.Key, req.Value, req.Description)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, st)
}

// POST /api/settings/customer-ordering/toggle (owner)
func (sc *SettingsController) ToggleCustomerOrdering(c *gin.Context) {
	var req struct {
		Enabled *bool `json:"enabled" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	st, err := sc.Settings.SetCustomerOrdering(*req.Enabled)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, st)
}

// GET /api/settings/customer-ordering/status (public; the customer portal
// checks this before showing the order form)
func (sc *SettingsController) CustomerOrderingStatus(c *gin.Context) {
	enabled, err := sc.Settings.CustomerOrderingEnabled()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"enabled": enabled})
}
