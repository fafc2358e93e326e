package main

import (
	"Blogly/internal/api/config"
	"Blogly/internal/pkg/database"
	"Blogly/internal/pkg/logger"
	"Blogly/internal/wire"
	"context"
	"errors"
	"fmt"
	log "log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func main() {
	var configPath string

	rootCmd := &cobra.Command{
		Use:           "blogly",
		Short:         "Blogly: users, posts and tags",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), configPath)
		},
	}
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "./configs", "directory containing config.yaml")

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		log.Error("Fatal error", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, configPath string) error {
	// .env 可选
	_ = godotenv.Load()

	// 加载配置
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// 初始化日志
	if err = logger.InitLogger(cfg.Log); err != nil {
		return fmt.Errorf("failed to init logger: %w", err)
	}
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}

	// 数据库连接
	db, err := database.NewGormDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to create database connection: %w", err)
	}
	defer func() {
		if err := database.Close(db); err != nil {
			log.Error("Database close failed", "err", err)
		}
	}()

	if err = database.AutoMigrate(db); err != nil {
		return err
	}

	// 依赖注入
	app, err := wire.BuildApplication(db)
	if err != nil {
		return fmt.Errorf("failed to create application: %w", err)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)

	// HTTP 服务器
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: app.Router,
	}
	g.Go(func() error {
		log.Info("HTTP Server starting...", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	// 优雅退出
	g.Go(func() error {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(quit)

		select {
		case <-ctx.Done():
		case sig := <-quit:
			log.Info("Received signal, shutting down...", "signal", sig)
			cancel()
		}

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("HTTP Server shutdown failed", "err", err)
		}
		return nil
	})

	if err = g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	log.Info("App exited successfully.")
	return nil
}
