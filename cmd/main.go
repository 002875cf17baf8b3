package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	httpctx "github.com/taskvault/taskvault-server/internal/api/http/context"
	"github.com/taskvault/taskvault-server/internal/api/http/router"
	"github.com/taskvault/taskvault-server/internal/config"
	"github.com/taskvault/taskvault-server/internal/logger"
	"github.com/taskvault/taskvault-server/internal/model"
	"github.com/taskvault/taskvault-server/internal/password"
	"github.com/taskvault/taskvault-server/internal/repository/postgres"
	"github.com/taskvault/taskvault-server/internal/server"
	"github.com/taskvault/taskvault-server/internal/service"
	"github.com/taskvault/taskvault-server/internal/token"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	db, err := postgres.NewConnection(ctx, cfg.Database.DSN)
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err)
	}
	defer db.Close()

	userRepo := postgres.NewUserRepository(db)
	tokenRepo := postgres.NewAuthTokenRepository(db)
	todoRepo := postgres.NewTodoRepository(db)

	hasher := password.NewBcrypt(cfg.Auth.BcryptCost)
	codec := token.NewJWT(cfg.JWT.Secret)
	ctxMgr := httpctx.NewManager()

	authService := service.NewAuth(userRepo, tokenRepo, hasher, codec, logger.Component("auth"))
	todoService := service.NewTodo(todoRepo, logger.Component("todo"))

	gin.SetMode(gin.ReleaseMode)
	r := router.New(authService, todoService, ctxMgr, logger)
	httpServer := server.NewHTTPServer(r.Register(), fmt.Sprintf(":%s", cfg.HTTP.Port))

	var sl model.SecurityLayer

	if cfg.HTTP.EnableHTTPS {
		sl = server.NewTLSListener(cfg.HTTP.CertFileName, cfg.HTTP.PrivateKeyFileName)
	} else {
		sl = server.NewPlainListener()
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func(s model.Server) {
		defer wg.Done()
		logger.Info("Starting server on", "address", s.Address())
		err := s.Start(sl)
		if err != nil {
			logger.Error("failed to start server", "error", err)
		}
	}(httpServer)

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := httpServer.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", httpServer.Address())
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}
