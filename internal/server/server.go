package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"

	"github.com/xkubaj03/tennis-club/internal/auth"
	"github.com/xkubaj03/tennis-club/internal/config"
	"github.com/xkubaj03/tennis-club/internal/court"
	"github.com/xkubaj03/tennis-club/internal/customer"
	"github.com/xkubaj03/tennis-club/internal/lock"
	"github.com/xkubaj03/tennis-club/internal/reservation"
	"github.com/xkubaj03/tennis-club/internal/surface"
	"github.com/xkubaj03/tennis-club/internal/user"
)

type Server struct {
	router *gin.Engine
	http   *http.Server
	config *config.Config
}

func New(db *sqlx.DB, redisClient *redis.Client, cfg *config.Config) *Server {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(corsMiddleware())
	router.Use(RequestLoggingMiddleware())
	router.Use(MetricsMiddleware())
	router.Use(RateLimitMiddleware(cfg.RateLimitRPS, cfg.RateLimitBurst))

	surfaceRepo := surface.NewRepository(db)
	courtRepo := court.NewRepository(db)
	customerRepo := customer.NewRepository(db)
	reservationRepo := reservation.NewRepository(db)
	userRepo := user.NewRepository(db)

	locks := lock.NewManager(redisClient)

	surfaceHandler := surface.NewHandler(surface.NewService(surfaceRepo))
	courtHandler := court.NewHandler(court.NewService(courtRepo, surfaceRepo))
	customerHandler := customer.NewHandler(customer.NewService(customerRepo))
	reservationHandler := reservation.NewHandler(reservation.NewService(reservationRepo, courtRepo, locks))
	userHandler := user.NewHandler(user.NewService(userRepo, cfg.JWTSecret))

	public := router.Group("/auth")
	{
		public.POST("/register", userHandler.Register)
		public.POST("/login", userHandler.Login)
		public.POST("/refresh", userHandler.RefreshToken)
	}

	authMiddleware := auth.AuthMiddleware(cfg.JWTSecret)

	api := router.Group("/api")
	api.Use(authMiddleware, auth.RequireRole(auth.RoleUser))
	{
		api.GET("/me", userHandler.GetMe)

		api.GET("/surfaces", surfaceHandler.List)
		api.GET("/surfaces/:id", surfaceHandler.Get)

		api.GET("/courts", courtHandler.List)
		api.GET("/courts/:id", courtHandler.Get)

		api.GET("/reservations", reservationHandler.List)
		api.GET("/reservations/:id", reservationHandler.Get)
		api.GET("/reservations/court/:number", reservationHandler.ListByCourt)
		api.GET("/reservations/phone/:number", reservationHandler.ListByPhone)
	}

	admin := router.Group("/api")
	admin.Use(authMiddleware, auth.RequireRole(auth.RoleAdmin))
	{
		admin.POST("/surfaces", surfaceHandler.Create)
		admin.PUT("/surfaces/:id", surfaceHandler.Update)
		admin.DELETE("/surfaces/:id", surfaceHandler.Delete)

		admin.POST("/courts", courtHandler.Create)
		admin.PUT("/courts/:id", courtHandler.Update)
		admin.DELETE("/courts/:id", courtHandler.Delete)

		admin.POST("/reservations", reservationHandler.Create)
		admin.PUT("/reservations/:id", reservationHandler.Update)
		admin.DELETE("/reservations/:id", reservationHandler.Delete)

		admin.GET("/customers", customerHandler.List)
		admin.GET("/customers/:id", customerHandler.Get)
		admin.DELETE("/customers/:id", customerHandler.Delete)
	}

	router.GET("/health", Health)
	router.GET("/metrics", Metrics())

	return &Server{
		router: router,
		http: &http.Server{
			Addr:              ":" + cfg.Port,
			Handler:           router,
			ReadHeaderTimeout: 5 * time.Second,
		},
		config: cfg,
	}
}

func (s *Server) Start() error {
	return s.http.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
