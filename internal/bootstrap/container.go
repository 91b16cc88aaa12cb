package bootstrap

import (
	"context"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"github.com/samber/do"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/founderflow/founderflow/internal/config"
	"github.com/founderflow/founderflow/internal/infra/blob"
	"github.com/founderflow/founderflow/internal/infra/cache"
	"github.com/founderflow/founderflow/internal/infra/db"
	"github.com/founderflow/founderflow/internal/infra/logger"
	"github.com/founderflow/founderflow/internal/infra/mailer"
	"github.com/founderflow/founderflow/internal/modules/handler"
	"github.com/founderflow/founderflow/internal/modules/policy"
	"github.com/founderflow/founderflow/internal/modules/repo"
	"github.com/founderflow/founderflow/internal/modules/service"
	"github.com/founderflow/founderflow/internal/pkg/token"
	"github.com/founderflow/founderflow/internal/telemetry"
)

func BuildContainer() *do.Injector {
	inj := do.New()

	// config
	do.Provide(inj, func(i *do.Injector) (*config.Config, error) {
		return config.Load()
	})

	// logger
	do.Provide(inj, func(i *do.Injector) (*zap.Logger, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return logger.New(cfg.Log.Level)
	})

	// metrics
	do.Provide(inj, func(i *do.Injector) (*prometheus.Registry, error) {
		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		return reg, nil
	})
	do.Provide(inj, func(i *do.Injector) (*telemetry.Metrics, error) {
		return telemetry.NewMetrics(do.MustInvoke[*prometheus.Registry](i)), nil
	})

	// DB
	do.Provide(inj, func(i *do.Injector) (*gorm.DB, error) {
		cfg := do.MustInvoke[*config.Config](i)
		d, err := db.New(cfg, do.MustInvoke[*zap.Logger](i))
		if err != nil {
			return nil, err
		}
		// [optional] auto migrate
		if cfg.Database.AutoMigrate {
			if err := db.Migrate(context.Background(), d, cfg.Database.EnableRLS); err != nil {
				return nil, err
			}
		}
		return d, nil
	})

	// Redis, nil when not configured
	do.Provide(inj, func(i *do.Injector) (*redis.Client, error) {
		return cache.New(do.MustInvoke[*config.Config](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (cache.RevocationStore, error) {
		if rdb := do.MustInvoke[*redis.Client](i); rdb != nil {
			return cache.NewRedisRevocations(rdb), nil
		}
		do.MustInvoke[*zap.Logger](i).Warn("redis not configured, token revocations are kept in memory")
		return cache.NewMemoryRevocations(), nil
	})

	// RabbitMQ Connection, nil when not configured
	do.Provide(inj, func(i *do.Injector) (*amqp.Connection, error) {
		cfg := do.MustInvoke[*config.Config](i)
		if strings.TrimSpace(cfg.RabbitMQ.URL) == "" {
			return nil, nil
		}
		return amqp.Dial(cfg.RabbitMQ.URL)
	})

	// S3
	do.Provide(inj, func(i *do.Injector) (*blob.S3Deps, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return blob.NewS3(context.Background(), cfg)
	})

	// Mail
	do.Provide(inj, func(i *do.Injector) (mailer.Mailer, error) {
		m, err := mailer.New(do.MustInvoke[*config.Config](i), do.MustInvoke[*zap.Logger](i))
		if err != nil {
			return nil, err
		}
		return mailer.WithMetrics(m, do.MustInvoke[*telemetry.Metrics](i).EmailsSent), nil
	})

	// Tokens
	do.Provide(inj, func(i *do.Injector) (*token.Issuer, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return token.NewIssuer(cfg.Auth.JWTSecret, cfg.Auth.Issuer, cfg.Auth.AccessTokenTTL, cfg.Auth.RefreshTokenTTL)
	})

	// Repo
	do.Provide(inj, func(i *do.Injector) (repo.ProjectRepo, error) {
		return repo.NewProjectRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.TaskRepo, error) {
		return repo.NewTaskRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.NoteRepo, error) {
		return repo.NewNoteRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.FinanceRepo, error) {
		return repo.NewFinanceRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.PaymentRepo, error) {
		return repo.NewPaymentRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.ProfileRepo, error) {
		return repo.NewProfileRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.RoleRepo, error) {
		return repo.NewRoleRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.UserRepo, error) {
		return repo.NewUserRepo(do.MustInvoke[*gorm.DB](i)), nil
	})

	// Access
	do.Provide(inj, func(i *do.Injector) (service.Authorizer, error) {
		return policy.NewEnforcer(do.MustInvoke[repo.RoleRepo](i), do.MustInvoke[*zap.Logger](i)), nil
	})

	// Service
	do.Provide(inj, func(i *do.Injector) (service.ResetEmailService, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return service.NewResetEmailService(do.MustInvoke[mailer.Mailer](i), cfg.Mail.From, cfg.Mail.LogoURL), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.AuthService, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return service.NewAuthService(
			do.MustInvoke[repo.UserRepo](i),
			do.MustInvoke[repo.RoleRepo](i),
			do.MustInvoke[*token.Issuer](i),
			do.MustInvoke[cache.RevocationStore](i),
			do.MustInvoke[service.ResetEmailService](i),
			service.AuthOptions{
				EnableSignup:  cfg.Auth.EnableSignup,
				ResetTTL:      cfg.Auth.ResetTokenTTL,
				ResetLinkBase: strings.TrimRight(cfg.App.BaseURL, "/") + cfg.Auth.ResetPath,
			},
			do.MustInvoke[*zap.Logger](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.ProjectService, error) {
		return service.NewProjectService(do.MustInvoke[repo.ProjectRepo](i), do.MustInvoke[service.Authorizer](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.TaskService, error) {
		return service.NewTaskService(do.MustInvoke[repo.TaskRepo](i), do.MustInvoke[service.Authorizer](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.NoteService, error) {
		return service.NewNoteService(
			do.MustInvoke[repo.NoteRepo](i),
			do.MustInvoke[repo.ProfileRepo](i),
			do.MustInvoke[service.Authorizer](i),
			do.MustInvoke[*zap.Logger](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.FinanceService, error) {
		return service.NewFinanceService(do.MustInvoke[repo.FinanceRepo](i), do.MustInvoke[service.Authorizer](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.PaymentService, error) {
		return service.NewPaymentService(do.MustInvoke[repo.PaymentRepo](i), do.MustInvoke[service.Authorizer](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.DashboardService, error) {
		return service.NewDashboardService(
			do.MustInvoke[repo.ProjectRepo](i),
			do.MustInvoke[repo.TaskRepo](i),
			do.MustInvoke[repo.FinanceRepo](i),
			do.MustInvoke[service.Authorizer](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.ProfileService, error) {
		return service.NewProfileService(
			do.MustInvoke[repo.ProfileRepo](i),
			do.MustInvoke[*blob.S3Deps](i),
			do.MustInvoke[service.Authorizer](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.UserAdminService, error) {
		return service.NewUserAdminService(
			do.MustInvoke[repo.UserRepo](i),
			do.MustInvoke[repo.ProfileRepo](i),
			do.MustInvoke[repo.RoleRepo](i),
			do.MustInvoke[*zap.Logger](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (*service.InvitationSender, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return service.NewInvitationSender(
			do.MustInvoke[mailer.Mailer](i),
			cfg.Mail.From,
			strings.TrimRight(cfg.App.BaseURL, "/")+"/auth",
			do.MustInvoke[*zap.Logger](i),
		), nil
	})
	// invitations go through the queue when rabbitmq is configured, inline otherwise
	do.Provide(inj, func(i *do.Injector) (service.InvitationDispatcher, error) {
		cfg := do.MustInvoke[*config.Config](i)
		if conn := do.MustInvoke[*amqp.Connection](i); conn != nil {
			return service.NewQueuedInvitations(conn, cfg.RabbitMQ.InvitationQueue, do.MustInvoke[*zap.Logger](i)), nil
		}
		return do.MustInvoke[*service.InvitationSender](i), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.TeamService, error) {
		return service.NewTeamService(
			do.MustInvoke[service.UserAdminService](i),
			do.MustInvoke[repo.UserRepo](i),
			do.MustInvoke[repo.ProfileRepo](i),
			do.MustInvoke[repo.RoleRepo](i),
			do.MustInvoke[service.Authorizer](i),
			do.MustInvoke[service.InvitationDispatcher](i),
			do.MustInvoke[*zap.Logger](i),
		), nil
	})

	// Handler
	do.Provide(inj, func(i *do.Injector) (*handler.AuthHandler, error) {
		return handler.NewAuthHandler(do.MustInvoke[service.AuthService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.ProjectHandler, error) {
		return handler.NewProjectHandler(do.MustInvoke[service.ProjectService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.TaskHandler, error) {
		return handler.NewTaskHandler(do.MustInvoke[service.TaskService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.NoteHandler, error) {
		return handler.NewNoteHandler(do.MustInvoke[service.NoteService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.FinanceHandler, error) {
		return handler.NewFinanceHandler(do.MustInvoke[service.FinanceService](i), do.MustInvoke[service.PaymentService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.DashboardHandler, error) {
		return handler.NewDashboardHandler(do.MustInvoke[service.DashboardService](i), do.MustInvoke[service.Authorizer](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.TeamHandler, error) {
		return handler.NewTeamHandler(do.MustInvoke[service.TeamService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.ProfileHandler, error) {
		return handler.NewProfileHandler(do.MustInvoke[service.ProfileService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.FunctionHandler, error) {
		return handler.NewFunctionHandler(
			do.MustInvoke[service.AuthService](i),
			do.MustInvoke[service.UserAdminService](i),
			do.MustInvoke[service.ResetEmailService](i),
			do.MustInvoke[*zap.Logger](i),
		), nil
	})

	return inj
}
