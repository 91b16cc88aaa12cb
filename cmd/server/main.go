package main

//	@title			Founder Flow API
//	@version		1.0
//	@description	Project, task, note, finance and team management for small studios.
//	@schemes		http https
//	@BasePath		/

//  Bearer access token issued by /auth/signin
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Access token (e.g., "Bearer eyJhbGciOi...")

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"github.com/samber/do"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/founderflow/founderflow/internal/bootstrap"
	"github.com/founderflow/founderflow/internal/config"
	"github.com/founderflow/founderflow/internal/infra/cache"
	dbpkg "github.com/founderflow/founderflow/internal/infra/db"
	"github.com/founderflow/founderflow/internal/infra/queue"
	"github.com/founderflow/founderflow/internal/modules/handler"
	"github.com/founderflow/founderflow/internal/modules/service"
	"github.com/founderflow/founderflow/internal/router"
	"github.com/founderflow/founderflow/internal/telemetry"
)

func main() {
	// build dependency injection container
	inj := bootstrap.BuildContainer()

	cfg := do.MustInvoke[*config.Config](inj)
	log := do.MustInvoke[*zap.Logger](inj)
	defer func() { _ = log.Sync() }()

	db := do.MustInvoke[*gorm.DB](inj)
	rdb := do.MustInvoke[*redis.Client](inj)

	// Setup OpenTelemetry tracing
	tp, err := telemetry.SetupTracing(cfg)
	if err != nil {
		log.Sugar().Warnw("failed to setup tracing, continuing without tracing", "err", err)
	} else if tp != nil {
		log.Sugar().Infow("OpenTelemetry tracing enabled", "endpoint", cfg.Telemetry.OtlpEndpoint)
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := tp.Shutdown(ctx); err != nil {
				log.Sugar().Errorw("failed to shutdown tracer", "err", err)
			}
		}()

		// Register GORM OpenTelemetry plugin after tracer provider is set
		if err := dbpkg.RegisterOpenTelemetryPlugin(db); err != nil {
			log.Sugar().Warnw("failed to register GORM OpenTelemetry plugin, continuing without database tracing", "err", err)
		}

		// Register Redis OpenTelemetry plugin after tracer provider is set
		if err := cache.RegisterOpenTelemetryPlugin(rdb); err != nil {
			log.Sugar().Warnw("failed to register Redis OpenTelemetry plugin, continuing without Redis tracing", "err", err)
		}
	}

	// init gin
	gin.SetMode(cfg.App.Env)

	rootCtx, stop := context.WithCancel(context.Background())
	defer stop()

	// invitation emails are sent by a background consumer when rabbitmq is configured
	if conn := do.MustInvoke[*amqp.Connection](inj); conn != nil {
		defer conn.Close()
		sender := do.MustInvoke[*service.InvitationSender](inj)
		consumer := queue.NewConsumer(conn, cfg.RabbitMQ.InvitationQueue, cfg.RabbitMQ.Prefetch, log)
		go func() {
			if err := consumer.Run(rootCtx, sender.HandleMessage); err != nil {
				log.Sugar().Errorw("invitation consumer stopped", "err", err)
			}
		}()
	}

	engine := router.NewRouter(router.RouterDeps{
		Config:           cfg,
		Log:              log,
		Metrics:          do.MustInvoke[*telemetry.Metrics](inj),
		Gatherer:         prometheus.Gatherer(do.MustInvoke[*prometheus.Registry](inj)),
		Auth:             do.MustInvoke[service.AuthService](inj),
		Access:           do.MustInvoke[service.Authorizer](inj),
		AuthHandler:      do.MustInvoke[*handler.AuthHandler](inj),
		ProjectHandler:   do.MustInvoke[*handler.ProjectHandler](inj),
		TaskHandler:      do.MustInvoke[*handler.TaskHandler](inj),
		NoteHandler:      do.MustInvoke[*handler.NoteHandler](inj),
		FinanceHandler:   do.MustInvoke[*handler.FinanceHandler](inj),
		DashboardHandler: do.MustInvoke[*handler.DashboardHandler](inj),
		TeamHandler:      do.MustInvoke[*handler.TeamHandler](inj),
		ProfileHandler:   do.MustInvoke[*handler.ProfileHandler](inj),
		FunctionHandler:  do.MustInvoke[*handler.FunctionHandler](inj),
	})

	addr := fmt.Sprintf("%s:%d", cfg.App.Host, cfg.App.Port)
	srv := &http.Server{Addr: addr, Handler: engine}

	go func() {
		log.Sugar().Infow("starting http server", "addr", addr)
		log.Sugar().Infow("swagger url", "url", addr+"/swagger/index.html")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Sugar().Fatalw("listen error", "err", err)
		}
	}()

	// graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	stop()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Sugar().Errorw("server shutdown", "err", err)
	}
	log.Sugar().Info("server exited")
}
