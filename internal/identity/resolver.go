package identity

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Resolver fetches canonical user attributes from the user service and keeps
// a shadow copy in the local repository.
//
// Every call performs network I/O; there is no caching layer between this
// service and the user service. The HTTP client carries a bounded timeout and
// a single attempt is made per resolution.
type Resolver struct {
	baseURL string
	client  *http.Client
	repo    Repository
}

func NewResolver(baseURL string, timeout time.Duration, repo Repository) *Resolver {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &Resolver{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
		repo:    repo,
	}
}

type userEnvelope struct {
	Data struct {
		ID       int64  `json:"id"`
		Email    string `json:"email"`
		Name     string `json:"name"`
		IsStaff  bool   `json:"is_staff"`
		IsActive bool   `json:"is_active"`
	} `json:"data"`
}

// Resolve calls the user service with the caller's bearer token, then upserts
// the returned attributes keyed by remote id.
func (r *Resolver) Resolve(ctx context.Context, rawToken string) (Record, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.baseURL+"/identity/me", nil)
	if err != nil {
		return Record{}, fmt.Errorf("identity: build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+rawToken)

	resp, err := r.client.Do(req)
	if err != nil {
		return Record{}, fmt.Errorf("identity: user service unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return Record{}, fmt.Errorf("identity: user service returned %d: %s", resp.StatusCode, string(body))
	}

	var env userEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return Record{}, fmt.Errorf("identity: decode response: %w", err)
	}
	if env.Data.ID == 0 {
		return Record{}, fmt.Errorf("identity: user service response missing id")
	}

	rec := Record{
		ID:       env.Data.ID,
		Email:    env.Data.Email,
		Name:     env.Data.Name,
		IsStaff:  env.Data.IsStaff,
		IsActive: env.Data.IsActive,
	}
	out, err := r.repo.Upsert(ctx, rec)
	if err != nil {
		return Record{}, fmt.Errorf("identity: upsert: %w", err)
	}
	return out, nil
}
