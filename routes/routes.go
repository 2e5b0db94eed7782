package routes

import (
	"orderboard/configs"
	"orderboard/controllers"
	"orderboard/entity"
	"orderboard/events"
	"orderboard/middlewares"
	"orderboard/repository"
	"orderboard/services"
	"orderboard/ws"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config, bus events.Bus, hub *ws.BoardHub) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	orderRepo := repository.NewOrderRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	reportRepo := repository.NewReportRepository(db)
	userRepo := repository.NewUserRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)

	// Services
	orderSvc := services.NewOrderService(db, orderRepo, menuRepo, bus)
	reportSvc := services.NewReportService(db, reportRepo, orderRepo, bus)
	menuSvc := services.NewMenuService(menuRepo, bus)
	settingsSvc := services.NewSettingsService(settingsRepo, bus)
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)

	// Controllers
	orderCtrl := controllers.NewOrderController(orderSvc, reportSvc, settingsSvc)
	menuCtrl := controllers.NewMenuController(menuSvc)
	reportCtrl := controllers.NewReportController(reportSvc)
	settingsCtrl := controllers.NewSettingsController(settingsSvc)
	authCtrl := controllers.NewAuthController(authSvc)

	secret := cfg.JWTSecret
	staffAny := middlewares.AuthMiddleware(secret, entity.RoleOwner, entity.RoleStaff, entity.RoleKitchen)
	staffOnly := middlewares.AuthMiddleware(secret, entity.RoleOwner, entity.RoleStaff)
	ownerOnly := middlewares.AuthMiddleware(secret, entity.RoleOwner)

	// Auth & staff management
	a := r.Group("/api/auth")
	{
		a.POST("/login", authCtrl.Login)
		a.POST("/register", ownerOnly, authCtrl.Register)
		a.GET("/profile", middlewares.AuthMiddleware(secret), authCtrl.Profile)
		a.GET("/verify", middlewares.AuthMiddleware(secret), authCtrl.Verify)
		a.GET("/staff", ownerOnly, authCtrl.ListStaff)
		a.PUT("/staff/:id", ownerOnly, authCtrl.UpdateStaff)
		a.DELETE("/staff/:id", ownerOnly, authCtrl.DeleteStaff)
	}

	// Orders
	o := r.Group("/api/orders")
	{
		o.POST("", middlewares.OptionalAuth(secret), orderCtrl.Create)
		o.GET("", staffAny, orderCtrl.List)
		o.GET("/stats", staffOnly, orderCtrl.Stats)
		o.GET("/history", ownerOnly, orderCtrl.History)
		o.GET("/ready", orderCtrl.ListForDisplay) // public board feed
		o.GET("/:id", staffAny, orderCtrl.Detail)
		o.PATCH("/:id/status", middlewares.AuthMiddleware(secret), orderCtrl.UpdateStatus)
		o.POST("/:id/advance", middlewares.AuthMiddleware(secret), orderCtrl.Advance)
		o.POST("/:id/taken", staffOnly, orderCtrl.MarkTaken)
		o.DELETE("/:id", staffOnly, orderCtrl.Delete)
	}

	// Menu: reads are public, writes are staff
	m := r.Group("/api/menu")
	{
		m.GET("", menuCtrl.List)
		m.GET("/categories", menuCtrl.Categories)
		m.GET("/:id", menuCtrl.Detail)
		m.POST("", staffAny, menuCtrl.Create)
		m.PUT("/:id", staffAny, menuCtrl.Update)
		m.PATCH("/:id", staffAny, menuCtrl.Update)
		m.DELETE("/:id", staffAny, menuCtrl.Delete)
	}

	// Reports
	rep := r.Group("/api/reports", staffOnly)
	{
		rep.GET("", reportCtrl.List)
		rep.GET("/date/:date", reportCtrl.ByDate)
	}

	// Settings
	s := r.Group("/api/settings")
	{
		s.GET("/customer-ordering/status", settingsCtrl.CustomerOrderingStatus) // public
		s.POST("/customer-ordering/toggle", ownerOnly, settingsCtrl.ToggleCustomerOrdering)
		s.GET("", ownerOnly, settingsCtrl.All)
		s.GET("/:key", ownerOnly, settingsCtrl.Get)
		s.POST("", ownerOnly, settingsCtrl.Set)
	}

	// Real-time board feed
	r.GET("/ws/board", hub.HandleWebSocket)
}
