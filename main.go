package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/LeandroSimplicio/To-do-list/config"
	"github.com/LeandroSimplicio/To-do-list/middleware"
	"github.com/LeandroSimplicio/To-do-list/routes"
	"github.com/LeandroSimplicio/To-do-list/services"
	"github.com/LeandroSimplicio/To-do-list/utils"
)

func main() {
	conf, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("não foi possível carregar a configuração: %v", err)
	}

	logger, err := config.NewLogger(conf.Environment)
	if err != nil {
		log.Fatalf("não foi possível inicializar o logger: %v", err)
	}
	defer logger.Sync()

	client, err := config.ConnectMongo(conf)
	if err != nil {
		logger.Fatalw("não foi possível conectar ao MongoDB", "error", err)
	}
	db := client.Database(conf.DBName)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := config.EnsureIndexes(ctx, db); err != nil {
		cancel()
		logger.Fatalw("não foi possível criar os índices", "error", err)
	}
	cancel()

	rdb, err := config.NewRedisClient(conf)
	if err != nil {
		logger.Fatalw("não foi possível conectar ao Redis", "error", err)
	}
	if rdb == nil {
		logger.Infow("Redis não configurado, rate limiting desabilitado")
	}

	tokens := utils.NewTokenManager(conf.JWTSecret, conf.JWTExpiry())
	authService := services.NewAuthService(db, tokens, logger)
	taskService := services.NewTaskService(db, logger)
	userService := services.NewUserService(db, taskService, logger)

	if conf.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	middleware.Setup(r, logger)
	routes.RegisterRoutes(r, routes.Deps{
		Config: conf,
		Redis:  rdb,
		Auth:   authService,
		Tasks:  taskService,
		Users:  userService,
		Log:    logger,
	})

	srv := &http.Server{
		Addr:    ":" + conf.ServerPort,
		Handler: r,
	}

	go func() {
		logger.Infow("servidor iniciado", "port", conf.ServerPort, "env", conf.Environment)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalw("falha ao iniciar o servidor", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Infow("encerrando o servidor...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Fatalw("falha ao encerrar o servidor", "error", err)
	}

	if err := client.Disconnect(shutdownCtx); err != nil {
		logger.Warnw("falha ao desconectar do MongoDB", "error", err)
	}

	logger.Infow("servidor encerrado")
}
