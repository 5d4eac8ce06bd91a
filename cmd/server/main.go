package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hostel-system/hostel-management/internal/config"
	"github.com/hostel-system/hostel-management/internal/handler"
	"github.com/hostel-system/hostel-management/internal/middleware"
	"github.com/hostel-system/hostel-management/internal/model"
	"github.com/hostel-system/hostel-management/internal/repository"
	"github.com/hostel-system/hostel-management/internal/service"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}

	if cfg.Database.AutoCreateDB {
		log.Printf("Auto-creating database '%s' if not exists...", cfg.Database.DBName)
		if err := createDatabase(cfg); err != nil {
			log.Fatalf("Failed to create database: %v", err)
		}
	}

	db, err := initDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if cfg.Database.AutoMigrate {
		log.Println("Running database migration...")
		if err := autoMigrate(db); err != nil {
			log.Fatalf("Failed to migrate database: %v", err)
		}
	}

	roomRepo := repository.NewRoomRepository(db)
	tenantRepo := repository.NewTenantRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	complaintRepo := repository.NewComplaintRepository(db)
	userRepo := repository.NewUserRepository(db)

	roomService := service.NewRoomService(roomRepo)
	tenantService := service.NewTenantService(tenantRepo, userRepo)
	allocationService := service.NewAllocationService(roomRepo, tenantRepo)
	paymentService := service.NewPaymentService(paymentRepo, tenantRepo)
	complaintService := service.NewComplaintService(complaintRepo, tenantRepo, roomRepo)
	dashboardService := service.NewDashboardService(roomRepo, tenantRepo, paymentRepo)
	authService := service.NewAuthService(userRepo, tenantRepo, cfg.Auth.JWTSecret, cfg.Auth.TokenExpiry)

	roomHandler := handler.NewRoomHandler(roomService)
	tenantHandler := handler.NewTenantHandler(tenantService)
	allocationHandler := handler.NewAllocationHandler(allocationService)
	paymentHandler := handler.NewPaymentHandler(paymentService)
	complaintHandler := handler.NewComplaintHandler(complaintService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)
	authHandler := handler.NewAuthHandler(authService)

	r := setupRoutes(
		cfg,
		roomHandler,
		tenantHandler,
		allocationHandler,
		paymentHandler,
		complaintHandler,
		dashboardHandler,
		authHandler,
	)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}

func initDB(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=%s TimeZone=%s",
		cfg.Database.Host,
		cfg.Database.Username,
		cfg.Database.Password,
		cfg.Database.DBName,
		cfg.Database.Port,
		cfg.Database.SSLMode,
		cfg.Database.Timezone,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	return db, nil
}

func createDatabase(cfg *config.Config) error {
	dsn := fmt.Sprintf("host=%s user=%s password=%s port=%d sslmode=%s TimeZone=%s",
		cfg.Database.Host,
		cfg.Database.Username,
		cfg.Database.Password,
		cfg.Database.Port,
		cfg.Database.SSLMode,
		cfg.Database.Timezone,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return fmt.Errorf("failed to connect to postgres for database creation: %w", err)
	}

	var count int64
	err = db.Raw("SELECT COUNT(*) FROM pg_database WHERE datname = ?", cfg.Database.DBName).Scan(&count).Error
	if err != nil {
		return fmt.Errorf("failed to check database existence: %w", err)
	}

	if count == 0 {
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}

		_, err = sqlDB.Exec(fmt.Sprintf("CREATE DATABASE %s WITH ENCODING 'UTF8'", cfg.Database.DBName))
		if err != nil {
			return fmt.Errorf("failed to create database: %w", err)
		}

		log.Printf("Database '%s' created successfully", cfg.Database.DBName)
	} else {
		log.Printf("Database '%s' already exists, skipping creation", cfg.Database.DBName)
	}

	return nil
}

func autoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.Room{},
		&model.Tenant{},
		&model.Payment{},
		&model.Complaint{},
		&repository.User{},
	)
}

func setupRoutes(
	cfg *config.Config,
	roomHandler *handler.RoomHandler,
	tenantHandler *handler.TenantHandler,
	allocationHandler *handler.AllocationHandler,
	paymentHandler *handler.PaymentHandler,
	complaintHandler *handler.ComplaintHandler,
	dashboardHandler *handler.DashboardHandler,
	authHandler *handler.AuthHandler,
) *gin.Engine {
	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(gin.Logger())

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Hostel Management Backend Running")
	})

	// Public routes
	r.POST("/register", authHandler.Register)
	r.POST("/login", authHandler.Login)

	// Routes for any authenticated user
	authed := r.Group("/")
	authed.Use(middleware.JWTMiddleware(cfg.Auth.JWTSecret))
	{
		authed.GET("/profile", authHandler.Profile)
		authed.GET("/rooms", roomHandler.ListRooms)
		authed.POST("/pay-rent", paymentHandler.PayRent)
		authed.GET("/rent-history/:tenantId", paymentHandler.RentHistory)
		authed.POST("/raise-complaint", complaintHandler.RaiseComplaint)
		authed.GET("/complaints/:tenantId", complaintHandler.ListTenantComplaints)
		authed.GET("/tenant-by-user/:userId", tenantHandler.GetTenantByUser)
		authed.PUT("/update-tenant/:tenantId", tenantHandler.UpdateTenant)
	}

	// Admin-only routes
	admin := r.Group("/")
	admin.Use(middleware.JWTMiddleware(cfg.Auth.JWTSecret), middleware.RoleMiddleware(model.RoleAdmin))
	{
		admin.POST("/add-room", roomHandler.AddRoom)
		admin.POST("/add-tenant", tenantHandler.AddTenant)
		admin.GET("/tenants", tenantHandler.ListTenants)
		admin.POST("/allocate-room", allocationHandler.AllocateRoom)
		admin.POST("/assign-room", allocationHandler.AllocateRoom)
		admin.GET("/monthly-rent/:month", paymentHandler.MonthlyRent)
		admin.PUT("/update-rent-status/:paymentId", paymentHandler.UpdateRentStatus)
		admin.PUT("/approve-rent/:paymentId", paymentHandler.ApproveRent)
		admin.GET("/all-payments", paymentHandler.ListAllPayments)
		admin.GET("/admin-dashboard", dashboardHandler.AdminDashboard)
		admin.GET("/complaints", complaintHandler.ListComplaints)
		admin.GET("/all-complaints", complaintHandler.ListComplaints)
		admin.PUT("/update-complaint/:id", complaintHandler.UpdateComplaint)
		admin.POST("/migrate-users-to-tenants", tenantHandler.MigrateUsersToTenants)
	}

	return r
}
