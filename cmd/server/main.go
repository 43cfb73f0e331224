package main

import (
	"context"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/labstack/echo/v5"
	"github.com/labstack/echo/v5/middleware"

	"github.com/janisto/greeting-playground/internal/http/docs"
	"github.com/janisto/greeting-playground/internal/http/health"
	"github.com/janisto/greeting-playground/internal/http/page"
	"github.com/janisto/greeting-playground/internal/http/v1/routes"
	"github.com/janisto/greeting-playground/internal/platform/auth"
	"github.com/janisto/greeting-playground/internal/platform/config"
	"github.com/janisto/greeting-playground/internal/platform/firebase"
	applog "github.com/janisto/greeting-playground/internal/platform/logging"
	appmiddleware "github.com/janisto/greeting-playground/internal/platform/middleware"
	"github.com/janisto/greeting-playground/internal/platform/respond"
	"github.com/janisto/greeting-playground/internal/platform/validate"
	greeteesvc "github.com/janisto/greeting-playground/internal/service/greetee"
)

// Version can be overridden at build time: -ldflags "-X main.Version=1.2.3"
var Version = "dev"

//	@title						Greeting API
//	@version					1.0
//	@description				Renders the greeting heading as text, escaped HTML, or a full page.
//	@BasePath					/v1
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		applog.LogFatal(ctx, "config load failed", err)
	}
	applog.SetLevel(applog.ParseLevel(cfg.LogLevel))

	if cfg.Firebase.ProjectID == "" {
		if cfg.IsDevelopment() {
			cfg.Firebase.ProjectID = "demo-test-project"
			applog.LogWarn(ctx, "using demo-test-project for local development")
		} else {
			applog.LogFatal(ctx, "FIREBASE_PROJECT_ID environment variable is required", nil)
		}
	}

	firebaseClients, err := firebase.InitializeClients(ctx, firebase.Config{
		ProjectID: cfg.Firebase.ProjectID,
	})
	if err != nil {
		applog.LogFatal(ctx, "firebase init failed", err)
	}
	defer func() {
		if closeErr := firebaseClients.Close(); closeErr != nil {
			applog.LogError(ctx, "firebase close error", closeErr)
		}
	}()

	verifier := auth.NewFirebaseVerifier(firebaseClients.Auth)
	greeteeService := greeteesvc.NewFirestoreStore(firebaseClients.Firestore)

	e := echo.New()
	e.Validator = validate.New()
	e.HTTPErrorHandler = respond.NewHTTPErrorHandler()
	e.IPExtractor = echo.ExtractIPFromRealIPHeader()
	e.Logger = applog.Logger()

	e.Use(
		appmiddleware.Security("/api-docs"),
		appmiddleware.Vary("Accept"),
		appmiddleware.CORS(),
		appmiddleware.RequestID(),
		middleware.BodyLimit(1<<20),
		applog.RequestLogger(),
		applog.AccessLogger(),
		respond.Recoverer(),
	)

	e.GET("/health", health.Handler)
	page.Register(e, page.Defaults{
		Name:  cfg.Greeting.Name,
		Title: cfg.Greeting.Title,
	})
	if spec, err := docs.ReadSpec(cfg.Docs.SpecPath); err != nil {
		applog.LogWarn(ctx, "api docs disabled", slog.String("error", err.Error()))
	} else {
		docs.Register(e, spec)
	}

	v1 := e.Group("/v1")
	routes.Register(v1, verifier, greeteeService)

	applog.LogInfo(ctx, "server starting",
		slog.String("addr", ":"+cfg.Port),
		slog.String("version", Version),
		slog.String("environment", cfg.Environment))

	sc := echo.StartConfig{
		Address:         ":" + cfg.Port,
		GracefulTimeout: 10 * time.Second,
		BeforeServeFunc: func(s *http.Server) error {
			s.ReadTimeout = 5 * time.Second
			s.ReadHeaderTimeout = 2 * time.Second
			s.WriteTimeout = 10 * time.Second
			s.IdleTimeout = 60 * time.Second
			s.MaxHeaderBytes = 64 << 10
			return nil
		},
	}

	sigCtx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := sc.Start(sigCtx, e); err != nil {
		applog.LogFatal(ctx, "server failed", err)
	}

	applog.LogInfo(ctx, "server exited")
}
