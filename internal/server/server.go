package server

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Thiccblique/Tusday.com/docs"
	"github.com/Thiccblique/Tusday.com/internal/auth"
	"github.com/Thiccblique/Tusday.com/internal/config"
	"github.com/Thiccblique/Tusday.com/internal/database"
	"github.com/Thiccblique/Tusday.com/internal/handler"
	"github.com/Thiccblique/Tusday.com/internal/middleware"
	"github.com/Thiccblique/Tusday.com/internal/repository"
	"github.com/Thiccblique/Tusday.com/internal/session"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

type Server struct {
	Engine *gin.Engine
	DB     *gorm.DB
	Config *config.Config
}

func Init(cfg *config.Config) (*Server, error) {
	db, err := database.Open(cfg)
	if err != nil {
		return nil, err
	}
	log.Printf("✅ Connected to %s database\n", cfg.DBDriver)

	creds := auth.NewCredentialStore(repository.NewUserRepository(db), auth.BcryptHasher{Cost: cfg.BcryptCost})
	tokens := auth.NewTokenIssuer(cfg.JWTSecret, time.Duration(cfg.JWTExpiryHours)*time.Hour)

	return &Server{
		Engine: NewRouter(creds, tokens, session.GormStores(db)),
		DB:     db,
		Config: cfg,
	}, nil
}

// NewRouter registers every route on a fresh gin engine.
func NewRouter(creds handler.Credentials, tokens *auth.TokenIssuer, stores session.StoreFactory) *gin.Engine {
	r := gin.Default()

	userHandler := handler.NewUserHandler(creds, tokens)
	boardHandler := handler.NewBoardHandler(stores)
	columnHandler := handler.NewColumnHandler(stores)
	taskHandler := handler.NewTaskHandler(stores)
	cellHandler := handler.NewCellHandler(stores)

	// Public routes
	r.POST("/register", userHandler.Register)
	r.POST("/login", userHandler.Login)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.InstanceName(docs.SwaggerInfo.InstanceName())))

	// Protected routes - require authentication
	authorized := r.Group("/")
	authorized.Use(middleware.JWTAuthMiddleware(tokens))
	{
		// Board routes
		authorized.GET("/boards", boardHandler.GetAll)
		authorized.POST("/boards", boardHandler.Create)
		authorized.PUT("/boards/:id", boardHandler.Update)
		authorized.DELETE("/boards/:id", boardHandler.Delete)
		authorized.GET("/boards/:id/table", cellHandler.Table)

		// Column routes
		authorized.GET("/boards/:id/columns", columnHandler.GetAll)
		authorized.POST("/boards/:id/columns", columnHandler.Create)
		authorized.DELETE("/columns/:id", columnHandler.Delete)

		// Task routes
		authorized.GET("/boards/:id/tasks", taskHandler.GetAll)
		authorized.POST("/boards/:id/tasks", taskHandler.Create)
		authorized.PUT("/tasks/:id", taskHandler.Update)
		authorized.DELETE("/tasks/:id", taskHandler.Delete)

		// Cell routes
		authorized.GET("/boards/:id/cells", cellHandler.GetAll)
		authorized.PUT("/tasks/:id/cells/:column_id", cellHandler.Set)
		authorized.POST("/tasks/:id/cells/:column_id/cycle", cellHandler.Cycle)
	}
	return r
}

func (s *Server) Run() {
	srv := &http.Server{
		Addr:    ":" + s.Config.ServerPort,
		Handler: s.Engine,
	}

	go func() {
		log.Printf("🚀 Server running on port %s\n", s.Config.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ Failed to listen: %s\n", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %s", err)
	}
	if sqlDB, err := s.DB.DB(); err == nil {
		sqlDB.Close()
	}

	log.Println("✅ Server exited properly")
}
