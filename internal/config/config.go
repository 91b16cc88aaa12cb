package config

import (
	"bytes"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type AppCfg struct {
	Name    string
	Env     string
	Host    string
	Port    int
	BaseURL string
	// Origins allowed to call the privileged function endpoints. "*" allows any.
	AllowedOrigins []string
}

type LogCfg struct {
	Level string
}

type DBCfg struct {
	DSN         string
	MaxOpen     int
	MaxIdle     int
	AutoMigrate bool
	EnableRLS   bool
}

type RedisCfg struct {
	Addr     string
	Password string
	DB       int
	PoolSize int
}

type MQCfg struct {
	URL             string
	InvitationQueue string
	Prefetch        int
}

type S3Cfg struct {
	Endpoint         string
	Region           string
	AccessKey        string
	SecretKey        string
	Bucket           string
	UsePathStyle     bool
	PresignExpireSec int
	SSE              string
	PublicBaseURL    string
}

type AuthCfg struct {
	JWTSecret       string
	Issuer          string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
	ResetTokenTTL   time.Duration
	EnableSignup    bool
	// Path on the web client that consumes reset tokens, appended to app.baseURL.
	ResetPath string
}

type MailCfg struct {
	Provider      string // resend | smtp
	From          string
	ResendAPIKey  string
	ResendBaseURL string
	SMTPHost      string
	SMTPPort      int
	SMTPUsername  string
	SMTPPassword  string
	LogoURL       string
}

type RateLimitCfg struct {
	RPS   float64
	Burst int
}

type TelemetryCfg struct {
	Enabled      bool
	OtlpEndpoint string
	SampleRatio  float64
}

type MetricsCfg struct {
	Enabled bool
	Path    string
}

type Config struct {
	App       AppCfg
	Log       LogCfg
	Database  DBCfg
	Redis     RedisCfg
	RabbitMQ  MQCfg
	S3        S3Cfg
	Auth      AuthCfg
	Mail      MailCfg
	RateLimit RateLimitCfg
	Telemetry TelemetryCfg
	Metrics   MetricsCfg
}

func Load() (*Config, error) {
	// .env is optional; real environment variables win over it
	_ = godotenv.Load()

	base := viper.New()
	base.SetConfigName("config")
	base.SetConfigType("yaml")
	base.AddConfigPath("./configs")
	base.AddConfigPath(".")
	bindEnv(base)

	setDefaults(base)

	if err := base.ReadInConfig(); err == nil {
		// expand ${ENV} references before parsing
		path := base.ConfigFileUsed()
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		return parse(os.ExpandEnv(string(raw)))
	}

	// No files are also allowed, using only env + default values
	cfg := new(Config)
	if err := base.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// parse loads an already expanded yaml document on top of env and defaults.
func parse(expanded string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	if err := v.ReadConfig(bytes.NewBufferString(expanded)); err != nil {
		return nil, err
	}
	bindEnv(v)
	setDefaults(v)

	cfg := new(Config)
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func bindEnv(v *viper.Viper) {
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.SetEnvPrefix("APP") // e.g. APP_AUTH_JWTSECRET -> auth.jwtSecret
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "founderflow")
	v.SetDefault("app.env", "release")
	v.SetDefault("app.host", "0.0.0.0")
	v.SetDefault("app.port", 8080)
	v.SetDefault("app.baseURL", "http://localhost:5173")
	v.SetDefault("app.allowedOrigins", []string{"*"})
	v.SetDefault("log.level", "info")
	v.SetDefault("database.maxOpen", 20)
	v.SetDefault("database.maxIdle", 5)
	v.SetDefault("database.autoMigrate", true)
	v.SetDefault("database.enableRLS", true)
	v.SetDefault("redis.poolSize", 10)
	v.SetDefault("rabbitmq.invitationQueue", "team_invitation")
	v.SetDefault("rabbitmq.prefetch", 10)
	v.SetDefault("s3.region", "auto")
	v.SetDefault("s3.usePathStyle", true)
	v.SetDefault("s3.presignExpireSec", 900)
	v.SetDefault("auth.issuer", "founderflow")
	v.SetDefault("auth.accessTokenTTL", 15*time.Minute)
	v.SetDefault("auth.refreshTokenTTL", 7*24*time.Hour)
	v.SetDefault("auth.resetTokenTTL", time.Hour)
	v.SetDefault("auth.enableSignup", true)
	v.SetDefault("auth.resetPath", "/reset-password")
	v.SetDefault("mail.provider", "resend")
	v.SetDefault("mail.from", "Founder Flow <onboarding@resend.dev>")
	v.SetDefault("mail.resendBaseURL", "https://api.resend.com")
	v.SetDefault("mail.smtpPort", 587)
	v.SetDefault("rateLimit.rps", 5)
	v.SetDefault("rateLimit.burst", 10)
	v.SetDefault("telemetry.sampleRatio", 1.0)
	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.path", "/metrics")
}
