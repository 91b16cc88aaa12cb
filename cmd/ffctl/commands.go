package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/founderflow/founderflow/internal/config"
	"github.com/founderflow/founderflow/internal/infra/db"
	"github.com/founderflow/founderflow/internal/infra/logger"
	"github.com/founderflow/founderflow/internal/modules/model"
	"github.com/founderflow/founderflow/internal/modules/policy"
	"github.com/founderflow/founderflow/internal/modules/repo"
	"github.com/founderflow/founderflow/internal/modules/service"
)

type env struct {
	cfg *config.Config
	log *zap.Logger
	db  *gorm.DB
}

func open() (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	d, err := db.New(cfg, log)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	return &env{cfg: cfg, log: log, db: d}, nil
}

// operator commands act with the service role
func serviceCtx(cmd *cobra.Command) context.Context {
	return policy.WithPrincipal(cmd.Context(), policy.Principal{Service: true})
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply the database schema and row policies",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := open()
		if err != nil {
			return err
		}
		if err := db.Migrate(cmd.Context(), e.db, e.cfg.Database.EnableRLS); err != nil {
			return err
		}
		e.log.Info("migration complete", zap.Bool("rls", e.cfg.Database.EnableRLS))
		return nil
	},
}

var newUser struct {
	email    string
	password string
	name     string
	role     string
}

var createUserCmd = &cobra.Command{
	Use:   "create-user",
	Short: "Create an identity with profile and role",
	Example: `  ffctl create-user --email founder@example.com --password 'long secret' --name "Ada" --role admin`,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := open()
		if err != nil {
			return err
		}
		m, err := service.ProvisionUser(serviceCtx(cmd), repo.NewUserRepo(e.db), service.InviteInput{
			Email:    newUser.email,
			Password: newUser.password,
			FullName: newUser.name,
			Role:     newUser.role,
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "created %s (%s) as %s\n", m.Email, m.ID, m.Role)
		return nil
	},
}

var grant struct {
	user string
	role string
}

var grantRoleCmd = &cobra.Command{
	Use:     "grant-role",
	Short:   "Change the role of an existing identity",
	Example: `  ffctl grant-role --user founder@example.com --role admin`,
	RunE: func(cmd *cobra.Command, args []string) error {
		role := model.AppRole(grant.role)
		if !role.Valid() {
			return fmt.Errorf("role must be admin or member, got %q", grant.role)
		}

		e, err := open()
		if err != nil {
			return err
		}
		ctx := serviceCtx(cmd)

		id, err := resolveUser(ctx, repo.NewUserRepo(e.db), grant.user)
		if err != nil {
			return err
		}
		if err := repo.NewRoleRepo(e.db).SetRole(ctx, id, role); err != nil {
			return fmt.Errorf("set role: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s is now %s\n", grant.user, role)
		return nil
	},
}

// resolveUser accepts a user id or an email address.
func resolveUser(ctx context.Context, users repo.UserRepo, ref string) (uuid.UUID, error) {
	if id, err := uuid.Parse(ref); err == nil {
		return id, nil
	}
	u, err := users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(ref)))
	if err != nil {
		return uuid.Nil, fmt.Errorf("find user %s: %w", ref, err)
	}
	return u.ID, nil
}

func init() {
	f := createUserCmd.Flags()
	f.StringVar(&newUser.email, "email", "", "email address")
	f.StringVar(&newUser.password, "password", "", "initial password")
	f.StringVar(&newUser.name, "name", "", "full name")
	f.StringVar(&newUser.role, "role", "member", "admin or member")
	_ = createUserCmd.MarkFlagRequired("email")
	_ = createUserCmd.MarkFlagRequired("password")
	_ = createUserCmd.MarkFlagRequired("name")

	g := grantRoleCmd.Flags()
	g.StringVar(&grant.user, "user", "", "user id or email")
	g.StringVar(&grant.role, "role", "", "admin or member")
	_ = grantRoleCmd.MarkFlagRequired("user")
	_ = grantRoleCmd.MarkFlagRequired("role")
}
