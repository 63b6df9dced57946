package router

import (
	"time"

	"github.com/chobyoungjae/interface/internal/config"
	"github.com/chobyoungjae/interface/internal/handler"
	"github.com/chobyoungjae/interface/internal/infra"
	"github.com/chobyoungjae/interface/internal/middleware"
	"github.com/chobyoungjae/interface/internal/repository"
	"github.com/chobyoungjae/interface/internal/service"
	"github.com/chobyoungjae/interface/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← RowSource (sheets/local)
func New(cfg *config.Config, rdb *redis.Client) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.SecureHeaders())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.NewRateLimiter(200, time.Minute).Middleware()) // 200 req/min per IP

	// ── Infrastructure ───────────────────────────────────────────────────────
	var (
		source  infra.RowSource
		breaker *infra.CircuitBreaker
	)
	if cfg.StoreMode == "local" {
		source = infra.NewLocalWorkbook(cfg.LocalWorkbookPath)
	} else {
		breaker = infra.NewCircuitBreaker(infra.DefaultCBConfig())
		tokens := infra.NewTokenSource(cfg.ServiceAccountEmail, cfg.ServiceAccountKey)
		source = infra.NewSheetsClient(tokens, breaker)
	}
	fallback := infra.NewLocalWorkbook(cfg.FallbackWorkbookPath)

	// ── Session ──────────────────────────────────────────────────────────────
	sessionTTL := time.Duration(cfg.SessionTTLHours) * time.Hour
	sessions := session.NewManager(cfg.SessionSecret, sessionTTL)

	loginWindow := time.Duration(cfg.LoginWindowMin) * time.Minute
	var attempts session.AttemptStore
	if rdb != nil {
		attempts = session.NewRedisAttemptStore(rdb, cfg.LoginMaxFails, loginWindow)
	} else {
		attempts = session.NewMemoryAttemptStore(cfg.LoginMaxFails, loginWindow)
	}

	// ── Repositories ─────────────────────────────────────────────────────────
	bomRepo := repository.NewBOMRepository(source, cfg.BOMSpreadsheetID)
	storageRepo := repository.NewStorageRepository(source, cfg.StorageSpreadsheetID)
	defectRepo := repository.NewStorageRepository(source, cfg.DefectSpreadsheetID)
	fallbackRepo := repository.NewStorageRepository(fallback, "")

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(bomRepo, attempts, sessions)
	productionSvc := service.NewProductionService(bomRepo, storageRepo, fallbackRepo)
	defectSvc := service.NewDefectService(bomRepo, defectRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	cookieMaxAge := int(sessionTTL / time.Second)
	authH := handler.NewAuthHandler(authSvc, cookieMaxAge, cfg.Env == "production")
	productionH := handler.NewProductionHandler(productionSvc)
	defectH := handler.NewDefectHandler(defectSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(breaker))

	auth := r.Group("/v1/auth")
	{
		auth.POST("/password", authH.Login)
		auth.POST("/logout", authH.Logout)
	}

	// Protected routes — require a valid session cookie
	v1 := r.Group("/v1", middleware.SessionAuth(sessions))
	{
		// 배합일지 (production/mixing log)
		v1.GET("/products", productionH.Products)
		v1.GET("/materials", productionH.Materials)
		v1.GET("/authors", productionH.Authors)
		v1.GET("/serial-lots", productionH.SerialLots)
		v1.GET("/serial-lot-info", productionH.SerialLotInfo)
		v1.POST("/calculate", productionH.Calculate)
		v1.POST("/save", productionH.Save)

		// 불량체크일지 (defect-check log)
		defect := v1.Group("/defect")
		{
			defect.GET("/workers", defectH.Workers)
			defect.GET("/products", defectH.Products)
			defect.GET("/packaging", defectH.Packaging)
			defect.GET("/serial-lots", defectH.SerialLots)
			defect.GET("/sheet-info", defectH.SheetInfo)
			defect.POST("/save", defectH.Save)
		}
	}

	return r
}
