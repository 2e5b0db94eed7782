package controllers

import (
	"orderboard/pkg/resp"
	"orderboard/services"
	"orderboard/utils"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	Auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{Auth: auth}
}

// POST /api/auth/login
func (ac *AuthController) Login(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	out, err := ac.Auth.Login(req.Username, req.Password)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, out)
}

// POST /api/auth/register (owner only)
func (ac *AuthController) Register(c *gin.Context) {
	var req services.RegisterStaffReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	u, err := ac.Auth.RegisterStaff(&req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.Created(c, u)
}

// GET /api/auth/profile
func (ac *AuthController) Profile(c *gin.Context) {
	u, err := ac.Auth.GetProfile(utils.CurrentUserID(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, u)
}

// GET /api/auth/verify. Reached only through the auth middleware, so the
// token is already known good.
func (ac *AuthController) Verify(c *gin.Context) {
	resp.OK(c, gin.H{
		"userId": utils.CurrentUserID(c),
		"role":   utils.CurrentRole(c),
	})
}

// GET /api/auth/staff (owner only)
func (ac *AuthController) ListStaff(c *gin.Context) {
	staff, err := ac.Auth.ListStaff()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, staff)
}

// PUT /api/auth/staff/:id (owner only)
func (ac *AuthController) UpdateStaff(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req services.UpdateStaffReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	u, err := ac.Auth.UpdateStaff(id, &req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, u)
}

// DELETE /api/auth/staff/:id (owner only)
func (ac *AuthController) DeleteStaff(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := ac.Auth.DeleteStaff(id); err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": id})
}
