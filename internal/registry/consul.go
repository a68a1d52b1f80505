// Package registry registers the service with a Consul agent so other
// services can discover it. Registration is best effort: a failure is
// reported to the caller, who logs it and keeps serving.
package registry

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Service describes one registration with the local Consul agent.
type Service struct {
	Name    string   `json:"Name"`
	ID      string   `json:"ID"`
	Address string   `json:"Address"`
	Port    int      `json:"Port"`
	Tags    []string `json:"Tags,omitempty"`

	Check HealthCheck `json:"Check"`
}

// HealthCheck is an HTTP check the agent polls.
type HealthCheck struct {
	HTTP     string `json:"HTTP"`
	Interval string `json:"Interval"`
	Timeout  string `json:"Timeout"`
}

// HTTPCheck builds the standard check for a service exposing /healthz.
func HTTPCheck(host string, port int) HealthCheck {
	return HealthCheck{
		HTTP:     fmt.Sprintf("http://%s:%d/healthz", host, port),
		Interval: "10s",
		Timeout:  "5s",
	}
}

type Registrar struct {
	addr   string
	client *http.Client
}

// NewRegistrar talks to the Consul agent HTTP API at addr
// (e.g. "http://consul:8500").
func NewRegistrar(addr string) *Registrar {
	return &Registrar{
		addr:   addr,
		client: &http.Client{Timeout: 5 * time.Second},
	}
}

// Register performs a single registration attempt.
func (r *Registrar) Register(ctx context.Context, svc Service) error {
	if svc.Name == "" {
		return fmt.Errorf("registry: service name required")
	}
	if svc.ID == "" {
		svc.ID = svc.Name + "-1"
	}

	body, err := json.Marshal(svc)
	if err != nil {
		return fmt.Errorf("registry: encode service: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, r.addr+"/v1/agent/service/register", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("registry: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("registry: register %s: %w", svc.Name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("registry: register %s: agent returned %d", svc.Name, resp.StatusCode)
	}
	return nil
}

// Deregister removes the service from the agent, used on shutdown.
func (r *Registrar) Deregister(ctx context.Context, serviceID string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, r.addr+"/v1/agent/service/deregister/"+serviceID, nil)
	if err != nil {
		return fmt.Errorf("registry: build request: %w", err)
	}
	resp, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("registry: deregister %s: %w", serviceID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("registry: deregister %s: agent returned %d", serviceID, resp.StatusCode)
	}
	return nil
}
