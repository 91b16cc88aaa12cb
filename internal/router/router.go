package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/founderflow/founderflow/docs"
	"github.com/founderflow/founderflow/internal/config"
	"github.com/founderflow/founderflow/internal/middleware"
	"github.com/founderflow/founderflow/internal/modules/handler"
	"github.com/founderflow/founderflow/internal/modules/serializer"
	"github.com/founderflow/founderflow/internal/modules/service"
	"github.com/founderflow/founderflow/internal/telemetry"
)

type RouterDeps struct {
	Config  *config.Config
	Log     *zap.Logger
	Metrics *telemetry.Metrics
	// Gatherer backs the metrics endpoint; nil disables it.
	Gatherer prometheus.Gatherer

	Auth   service.AuthService
	Access service.Authorizer

	AuthHandler      *handler.AuthHandler
	ProjectHandler   *handler.ProjectHandler
	TaskHandler      *handler.TaskHandler
	NoteHandler      *handler.NoteHandler
	FinanceHandler   *handler.FinanceHandler
	DashboardHandler *handler.DashboardHandler
	TeamHandler      *handler.TeamHandler
	ProfileHandler   *handler.ProfileHandler
	FunctionHandler  *handler.FunctionHandler
}

func NewRouter(d RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	if d.Config.Telemetry.Enabled && d.Config.Telemetry.OtlpEndpoint != "" {
		r.Use(middleware.OtelTracing(d.Config.App.Name))
		r.Use(middleware.TraceID())
	}
	if d.Metrics != nil {
		r.Use(middleware.Metrics(d.Metrics))
	}

	r.Use(middleware.ZapLogger(d.Log))

	// health
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, serializer.Response{Msg: "ok"}) })

	if d.Config.Metrics.Enabled && d.Gatherer != nil {
		r.GET(d.Config.Metrics.Path, gin.WrapH(promhttp.HandlerFor(d.Gatherer, promhttp.HandlerOpts{})))
	}

	// swagger
	r.GET("/swagger", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
	})
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	fn := r.Group("/functions/v1")
	{
		fn.Use(middleware.CORS(d.Config.App.AllowedOrigins))
		fn.OPTIONS("/*path", func(c *gin.Context) { c.Status(http.StatusOK) })

		fn.POST("/manage-users", d.FunctionHandler.ManageUsers)
		fn.POST("/send-reset-email",
			middleware.RateLimit(d.Config.RateLimit.RPS, d.Config.RateLimit.Burst, d.Metrics),
			d.FunctionHandler.SendResetEmail,
		)
	}

	v1 := r.Group("/api/v1")
	{
		// ping endpoint
		v1.GET("/ping", func(c *gin.Context) { c.JSON(http.StatusOK, serializer.Response{Msg: "pong"}) })

		public := v1.Group("/auth")
		{
			limited := middleware.RateLimit(d.Config.RateLimit.RPS, d.Config.RateLimit.Burst, d.Metrics)

			public.POST("/signup", limited, d.AuthHandler.SignUp)
			public.POST("/signin", limited, d.AuthHandler.SignIn)
			public.POST("/refresh", d.AuthHandler.Refresh)
			public.POST("/forgot-password", limited, d.AuthHandler.ForgotPassword)
			public.POST("/reset-password", limited, d.AuthHandler.ResetPassword)
		}

		authed := v1.Group("")
		authed.Use(middleware.Auth(d.Auth, d.Metrics))
		{
			authed.POST("/auth/signout", d.AuthHandler.SignOut)
			authed.GET("/auth/session", d.AuthHandler.GetSession)

			authed.GET("/dashboard", d.DashboardHandler.GetDashboard)
			authed.GET("/reports", d.DashboardHandler.GetReports)
			authed.GET("/navigation", d.DashboardHandler.GetNavigation)

			project := authed.Group("/projects")
			{
				project.GET("", d.ProjectHandler.ListProjects)
				project.POST("", d.ProjectHandler.CreateProject)
				project.GET("/:project_id", d.ProjectHandler.GetProject)
				project.PATCH("/:project_id", d.ProjectHandler.UpdateProject)
				project.DELETE("/:project_id", d.ProjectHandler.DeleteProject)
			}

			task := authed.Group("/tasks")
			{
				task.GET("", d.TaskHandler.ListTasks)
				task.POST("", d.TaskHandler.CreateTask)
				task.GET("/:task_id", d.TaskHandler.GetTask)
				task.PATCH("/:task_id", d.TaskHandler.UpdateTask)
				task.PATCH("/:task_id/status", d.TaskHandler.UpdateTaskStatus)
				task.DELETE("/:task_id", d.TaskHandler.DeleteTask)
			}

			note := authed.Group("/notes")
			{
				note.GET("", d.NoteHandler.ListNotes)
				note.POST("", d.NoteHandler.CreateNote)
				note.PATCH("/:note_id", d.NoteHandler.UpdateNote)
				note.DELETE("/:note_id", d.NoteHandler.DeleteNote)
			}

			profile := authed.Group("/profile")
			{
				profile.GET("", d.ProfileHandler.GetProfile)
				profile.PATCH("", d.ProfileHandler.UpdateProfile)
				profile.PUT("/avatar", d.ProfileHandler.UploadAvatar)
			}

			// the team service enforces admin access itself
			team := authed.Group("/team")
			{
				team.GET("", d.TeamHandler.ListTeam)
				team.POST("/invite", d.TeamHandler.InviteMember)
				team.PUT("/:user_id/role", d.TeamHandler.ChangeRole)
				team.DELETE("/:user_id", d.TeamHandler.RemoveMember)
			}

			admin := authed.Group("")
			admin.Use(middleware.RequireAdmin(d.Access))
			{
				finance := admin.Group("/finance")
				{
					finance.GET("", d.FinanceHandler.ListFinance)
					finance.GET("/export", d.FinanceHandler.ExportFinance)
					finance.POST("", d.FinanceHandler.CreateFinance)
					finance.PATCH("/:record_id", d.FinanceHandler.UpdateFinance)
					finance.DELETE("/:record_id", d.FinanceHandler.DeleteFinance)
				}

				payment := admin.Group("/payments")
				{
					payment.GET("", d.FinanceHandler.ListPayments)
					payment.POST("", d.FinanceHandler.CreatePayment)
					payment.DELETE("/:payment_id", d.FinanceHandler.DeletePayment)
				}
			}
		}
	}
	return r
}
