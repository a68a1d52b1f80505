package config

import (
	"testing"
	"time"
)

func validConfig() Config {
	return Config{
		App:   AppConfig{Env: "local", Port: 8080},
		DB:    DBConfig{Host: "localhost", Port: 5432, User: "postgres", Password: "x", Name: "trip", SSLMode: ""},
		Redis: RedisConfig{Host: "localhost", Port: 6379},
		Auth:  AuthConfig{JWTSecret: "secret"},
		Upstream: UpstreamConfig{
			UserServiceURL: "http://user-service:8000",
			EventLogURL:    "http://logs:8000",
		},
	}
}

func TestValidate_ReportsMissingRequired(t *testing.T) {
	c := Config{}
	if err := c.Validate(); err == nil {
		t.Fatalf("expected validation error")
	}
}

func TestValidate_ProductionRequiresSSLMode(t *testing.T) {
	c := validConfig()
	c.App.Env = "production"
	c.Auth.JWTIssuer = "trip"
	if err := c.Validate(); err == nil {
		t.Fatalf("expected error for production without DB_SSLMODE")
	}
}

func TestValidate_LocalDefaults(t *testing.T) {
	c := validConfig()
	if err := c.Validate(); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if c.DB.SSLMode != "disable" {
		t.Fatalf("expected sslmode disable default, got %q", c.DB.SSLMode)
	}
	if c.Upstream.IdentityTimeout != 3*time.Second {
		t.Fatalf("expected identity timeout default, got %v", c.Upstream.IdentityTimeout)
	}
	if c.Upstream.EventLogTimeout != 2*time.Second {
		t.Fatalf("expected event log timeout default, got %v", c.Upstream.EventLogTimeout)
	}
	if c.Session.CookieName != "sessionid" {
		t.Fatalf("expected session cookie default, got %q", c.Session.CookieName)
	}
	if c.App.ServiceName != "trip-api" {
		t.Fatalf("expected service name default, got %q", c.App.ServiceName)
	}
}

func TestValidate_UpstreamURLsRequired(t *testing.T) {
	c := validConfig()
	c.Upstream.UserServiceURL = ""
	if err := c.Validate(); err == nil {
		t.Fatalf("expected error for missing USER_SERVICE_URL")
	}

	c = validConfig()
	c.Upstream.EventLogURL = ""
	if err := c.Validate(); err == nil {
		t.Fatalf("expected error for missing LOGS_API_URL")
	}
}

func TestValidate_ConsulRequiresAddrAndHost(t *testing.T) {
	c := validConfig()
	c.Consul.Enabled = true
	if err := c.Validate(); err == nil {
		t.Fatalf("expected error for consul without addr/host")
	}

	c = validConfig()
	c.Consul.Enabled = true
	c.Consul.Addr = "http://consul:8500"
	c.App.ServiceHost = "trip-api"
	if err := c.Validate(); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}
