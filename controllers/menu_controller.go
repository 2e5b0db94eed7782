package controllers

import (
	"strconv"

	"orderboard/pkg/resp"
	"orderboard/services"

	"github.com/gin-gonic/gin"
)

type MenuController struct {
	Menu *services.MenuService
}

func NewMenuController(menu *services.MenuService) *MenuController {
	return &MenuController{Menu: menu}
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return 0, false
	}
	return uint(id), true
}

// GET /api/menu?category=&isAvailable= (public)
func (mc *MenuController) List(c *gin.Context) {
	var isAvailable *bool
	if v := c.Query("isAvailable"); v != "" {
		b := v == "true"
		isAvailable = &b
	}

	items, err := mc.Menu.List(c.Query("category"), isAvailable)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"count": len(items), "items": items})
}

// GET /api/menu/categories (public)
func (mc *MenuController) Categories(c *gin.Context) {
	cats, err := mc.Menu.Categories()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, cats)
}

// GET /api/menu/:id (public)
func (mc *MenuController) Detail(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	m, err := mc.Menu.Get(id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, m)
}

// POST /api/menu
func (mc *MenuController) Create(c *gin.Context) {
	var in services.MenuItemIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	m, err := mc.Menu.Create(&in)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.Created(c, m)
}

// PATCH /api/menu/:id
func (mc *MenuController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var in services.MenuItemUpdate
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	m, err := mc.Menu.Update(id, &in)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, m)
}

// DELETE /api/menu/:id
func (mc *MenuController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := mc.Menu.Delete(id); err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": id})
}
