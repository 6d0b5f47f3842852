package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"

	"github.com/supermax-promo/cupom-backend/internal/config"
	"github.com/supermax-promo/cupom-backend/internal/handlers"
	"github.com/supermax-promo/cupom-backend/internal/middleware"
)

// HandlerDependencies carries the handlers wired in main
type HandlerDependencies struct {
	AuthHandler     *handlers.AuthHandler
	CouponHandler   *handlers.CouponHandler
	DrawHandler     *handlers.DrawHandler
	ScratchHandler  *handlers.ScratchCouponHandler
	SettingsHandler *handlers.SettingsHandler
}

// SetupRouter sets up the router
func SetupRouter(cfg *config.Config, deps HandlerDependencies) *gin.Engine {
	router := gin.Default()

	router.Use(requestid.New())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	}))

	// Public routes
	public := router.Group("/api/v1")
	{
		public.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{"status": "ok"})
		})

		public.POST("/auth/login", deps.AuthHandler.Login)

		public.POST("/coupons", deps.CouponHandler.Register)
		public.GET("/coupons/cpf/:cpf", deps.CouponHandler.Lookup)

		public.POST("/scratch-coupons/:id/reveal", deps.ScratchHandler.Reveal)

		public.GET("/settings", deps.SettingsHandler.Get)
	}

	// Admin routes
	admin := router.Group("/api/v1")
	admin.Use(middleware.JWTAuthMiddleware(cfg))
	{
		admin.GET("/coupons", deps.CouponHandler.ListAll)
		admin.GET("/coupons/count", deps.CouponHandler.Count)

		admin.POST("/draws", deps.DrawHandler.RunDraw)
		admin.GET("/winners", deps.DrawHandler.ListWinners)
		admin.DELETE("/winners/:id", deps.DrawHandler.DeleteWinner)
		admin.DELETE("/winners", deps.DrawHandler.DeleteAllWinners)

		admin.POST("/scratch-coupons", deps.ScratchHandler.Issue)
		admin.GET("/scratch-coupons", deps.ScratchHandler.ListAll)
		admin.DELETE("/scratch-coupons/:id", deps.ScratchHandler.Delete)
		admin.GET("/scratch-coupons/:id/duplicate", deps.ScratchHandler.DuplicateTemplate)

		admin.PUT("/settings", deps.SettingsHandler.Update)
	}

	return router
}
