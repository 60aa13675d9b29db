package bootstrap

import (
	"time"

	fbauth "firebase.google.com/go/v4/auth"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	httpapi "github.com/omer2190/portfolio-backend/internal/api/http"
	apimw "github.com/omer2190/portfolio-backend/internal/api/http/middleware"
	authhttp "github.com/omer2190/portfolio-backend/internal/auth/http"
	authmw "github.com/omer2190/portfolio-backend/internal/auth/middleware"
	"github.com/omer2190/portfolio-backend/internal/auth/service"
	"github.com/omer2190/portfolio-backend/internal/content"
	contenthttp "github.com/omer2190/portfolio-backend/internal/content/http"
	"github.com/omer2190/portfolio-backend/internal/uploads"
)

type RouterDeps struct {
	ServiceName    string
	Version        string
	ContentBackend string
	AllowedOrigins []string

	Repo     content.Repository
	Uploader uploads.Uploader

	// DB is set in postgres mode only; the health probe pings it.
	DB *pgxpool.Pool

	// AuthService drives the local credential flow; Firebase replaces it when
	// AUTH_BACKEND=firebase.
	AuthService *service.AuthService
	Firebase    *fbauth.Client
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.Default()
	r.Use(apimw.RequestIDMiddleware())
	r.Use(cors.New(corsConfig(dep.AllowedOrigins)))

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.ContentBackend, dep.DB)
	healthHandler.RegisterRoutes(r)

	api := r.Group("/api/v1")

	var guard gin.HandlerFunc
	var authHandler *authhttp.Handler
	if dep.Firebase != nil {
		guard = authmw.FirebaseAuthMiddleware(dep.Firebase)
		authHandler = authhttp.NewFirebase(dep.Firebase)
	} else {
		guard = authmw.SessionAuthMiddleware(dep.AuthService)
		authHandler = authhttp.New(dep.AuthService)
	}
	authHandler.Register(api.Group("/auth"), guard)

	contentHandler := contenthttp.New(dep.Repo, dep.Uploader)
	contentHandler.RegisterPublic(api)

	admin := api.Group("/admin")
	admin.Use(guard)
	contentHandler.RegisterAdmin(admin)

	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept-Language", "X-Request-Id"},
		ExposeHeaders:    []string{"Content-Disposition", "X-Request-Id"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(origins) == 1 && origins[0] == "*" {
		cfg.AllowAllOrigins = true
		cfg.AllowCredentials = false
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}
