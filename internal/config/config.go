package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration required by the API process.
// All values must come from env (or env-file loaded by the process runner).
// No business logic should depend on raw environment variables.
type Config struct {
	App      AppConfig
	DB       DBConfig
	Redis    RedisConfig
	Auth     AuthConfig
	Upstream UpstreamConfig
	Session  SessionConfig
	Consul   ConsulConfig
}

type AppConfig struct {
	Env  string
	Port int

	// ServiceName and ServiceHost identify this instance to the service registry.
	ServiceName string
	ServiceHost string
}

type DBConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string

	// SSLMode accepts: disable, require, verify-ca, verify-full
	SSLMode string
}

type RedisConfig struct {
	Host string
	Port int
}

// AuthConfig configures token verification only. Tokens are issued by the
// central user service; this process never signs them.
type AuthConfig struct {
	JWTSecret   string
	JWTIssuer   string
	JWTAudience string
}

// UpstreamConfig points at the HTTP collaborators: the user service that owns
// identities and the event-log service that stores activity events.
// Timeouts bound each outbound call; there are no retries.
type UpstreamConfig struct {
	UserServiceURL  string
	EventLogURL     string
	IdentityTimeout time.Duration
	EventLogTimeout time.Duration
}

type SessionConfig struct {
	CookieName string
	TTL        time.Duration
}

type ConsulConfig struct {
	Enabled bool
	Addr    string
}

func Load() (Config, error) {
	c := Config{}
	var parseErrs []error

	c.App.Env = strings.TrimSpace(os.Getenv("APP_ENV"))
	{
		n, err := mustInt("APP_PORT")
		n, parseErrs = appendParseErr(parseErrs, n, err)
		c.App.Port = n
	}
	c.App.ServiceName = strings.TrimSpace(os.Getenv("SERVICE_NAME"))
	c.App.ServiceHost = strings.TrimSpace(os.Getenv("SERVICE_HOST"))

	c.DB.Host = strings.TrimSpace(os.Getenv("DB_HOST"))
	{
		n, err := mustInt("DB_PORT")
		n, parseErrs = appendParseErr(parseErrs, n, err)
		c.DB.Port = n
	}
	c.DB.User = strings.TrimSpace(os.Getenv("DB_USER"))
	c.DB.Password = os.Getenv("DB_PASSWORD")
	c.DB.Name = strings.TrimSpace(os.Getenv("DB_NAME"))
	c.DB.SSLMode = strings.TrimSpace(os.Getenv("DB_SSLMODE"))

	c.Redis.Host = strings.TrimSpace(os.Getenv("REDIS_HOST"))
	{
		n, err := mustInt("REDIS_PORT")
		n, parseErrs = appendParseErr(parseErrs, n, err)
		c.Redis.Port = n
	}

	c.Auth.JWTSecret = os.Getenv("JWT_SECRET")
	c.Auth.JWTIssuer = strings.TrimSpace(os.Getenv("JWT_ISSUER"))
	c.Auth.JWTAudience = strings.TrimSpace(os.Getenv("JWT_AUDIENCE"))

	c.Upstream.UserServiceURL = strings.TrimRight(strings.TrimSpace(os.Getenv("USER_SERVICE_URL")), "/")
	c.Upstream.EventLogURL = strings.TrimRight(strings.TrimSpace(os.Getenv("LOGS_API_URL")), "/")
	// Duration env vars are optional; defaults applied in Validate().
	c.Upstream.IdentityTimeout = mustDuration("IDENTITY_TIMEOUT")
	c.Upstream.EventLogTimeout = mustDuration("EVENTLOG_TIMEOUT")

	c.Session.CookieName = strings.TrimSpace(os.Getenv("SESSION_COOKIE_NAME"))
	c.Session.TTL = mustDuration("SESSION_TTL")

	c.Consul.Enabled = strings.EqualFold(strings.TrimSpace(os.Getenv("CONSUL_ENABLED")), "true")
	c.Consul.Addr = strings.TrimRight(strings.TrimSpace(os.Getenv("CONSUL_ADDR")), "/")

	if err := joinErrors(parseErrs); err != nil {
		return Config{}, err
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c *Config) Validate() error {
	var errs []error

	if c.App.Env == "" {
		errs = append(errs, errors.New("APP_ENV is required"))
	} else if !isValidEnv(c.App.Env) {
		errs = append(errs, fmt.Errorf("APP_ENV must be one of local, dev, staging, production, got %q", c.App.Env))
	}
	if c.App.Port <= 0 || c.App.Port > 65535 {
		errs = append(errs, fmt.Errorf("APP_PORT must be a valid port, got %d", c.App.Port))
	}
	if c.App.ServiceName == "" {
		c.App.ServiceName = "trip-api"
	}

	if c.DB.Host == "" {
		errs = append(errs, errors.New("DB_HOST is required"))
	}
	if c.DB.Port <= 0 || c.DB.Port > 65535 {
		errs = append(errs, fmt.Errorf("DB_PORT must be a valid port, got %d", c.DB.Port))
	}
	if c.DB.User == "" {
		errs = append(errs, errors.New("DB_USER is required"))
	}
	if c.DB.Name == "" {
		errs = append(errs, errors.New("DB_NAME is required"))
	}
	if c.DB.SSLMode == "" {
		if c.IsProduction() {
			errs = append(errs, errors.New("DB_SSLMODE is required in production"))
		} else {
			// Local-friendly default; production must be explicit.
			c.DB.SSLMode = "disable"
		}
	}
	if c.DB.SSLMode != "" && !isValidSSLMode(c.DB.SSLMode) {
		errs = append(errs, fmt.Errorf("DB_SSLMODE must be one of disable, require, verify-ca, verify-full, got %q", c.DB.SSLMode))
	}

	if c.Redis.Host == "" {
		errs = append(errs, errors.New("REDIS_HOST is required"))
	}
	if c.Redis.Port <= 0 || c.Redis.Port > 65535 {
		errs = append(errs, fmt.Errorf("REDIS_PORT must be a valid port, got %d", c.Redis.Port))
	}

	if c.Auth.JWTSecret == "" {
		errs = append(errs, errors.New("JWT_SECRET is required"))
	}
	if c.IsProduction() {
		if c.Auth.JWTIssuer == "" {
			errs = append(errs, errors.New("JWT_ISSUER is required in production"))
		}
	}

	if c.Upstream.UserServiceURL == "" {
		errs = append(errs, errors.New("USER_SERVICE_URL is required"))
	}
	if c.Upstream.EventLogURL == "" {
		errs = append(errs, errors.New("LOGS_API_URL is required"))
	}
	if c.Upstream.IdentityTimeout <= 0 {
		// Identity resolution sits on the auth path; keep it short.
		c.Upstream.IdentityTimeout = 3 * time.Second
	}
	if c.Upstream.EventLogTimeout <= 0 {
		// Telemetry is best-effort; fail fast.
		c.Upstream.EventLogTimeout = 2 * time.Second
	}

	if c.Session.CookieName == "" {
		c.Session.CookieName = "sessionid"
	}
	if c.Session.TTL <= 0 {
		c.Session.TTL = 14 * 24 * time.Hour
	}

	if c.Consul.Enabled && c.Consul.Addr == "" {
		errs = append(errs, errors.New("CONSUL_ADDR is required when CONSUL_ENABLED=true"))
	}
	if c.Consul.Enabled && c.App.ServiceHost == "" {
		errs = append(errs, errors.New("SERVICE_HOST is required when CONSUL_ENABLED=true"))
	}

	return joinErrors(errs)
}

func (c Config) IsProduction() bool {
	return c.App.Env == "production"
}

func (c Config) HTTPAddr() string {
	return fmt.Sprintf(":%d", c.App.Port)
}

func (c Config) PostgresDSN() string {
	// Avoid logging this string; it contains secrets.
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.DB.Host,
		c.DB.Port,
		c.DB.User,
		c.DB.Password,
		c.DB.Name,
		c.DB.SSLMode,
	)
}

func (c Config) RedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}

func mustInt(key string) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return 0, fmt.Errorf("%s is required", key)
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer, got %q", key, v)
	}
	return n, nil
}

func mustDuration(key string) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return 0
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0
	}
	return d
}

func appendParseErr(errs []error, n int, err error) (int, []error) {
	if err != nil {
		errs = append(errs, err)
	}
	return n, errs
}

func isValidEnv(v string) bool {
	switch v {
	case "local", "dev", "staging", "production":
		return true
	default:
		return false
	}
}

func isValidSSLMode(v string) bool {
	switch v {
	case "disable", "require", "verify-ca", "verify-full":
		return true
	default:
		return false
	}
}

func joinErrors(errs []error) error {
	if len(errs) == 0 {
		return nil
	}
	if len(errs) == 1 {
		return errs[0]
	}
	var b strings.Builder
	b.WriteString("config errors:\n")
	for _, e := range errs {
		b.WriteString("- ")
		b.WriteString(e.Error())
		b.WriteString("\n")
	}
	return errors.New(strings.TrimSpace(b.String()))
}
