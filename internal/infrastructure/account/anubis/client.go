package anubis

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/jonboulle/clockwork"
	"github.com/riskibarqy/matchday/internal/domain/user"
	"github.com/riskibarqy/matchday/internal/platform/logging"
	"github.com/riskibarqy/matchday/internal/platform/resilience"
	"github.com/riskibarqy/matchday/internal/usecase"
	"github.com/valyala/bytebufferpool"
)

var errAnubisTransient = crerr.New("anubis transient failure")

type ClientConfig struct {
	HTTPClient           *http.Client
	BaseURL              string
	IntrospectPath       string
	AdminKey             string
	Timeout              time.Duration
	TokenCacheTTL        time.Duration
	TokenCacheMaxEntries int
	CircuitBreaker       resilience.CircuitBreakerConfig
	Clock                clockwork.Clock
	Logger               *logging.Logger
}

// Client resolves bearer tokens into principals through the identity
// provider's introspection endpoint.
type Client struct {
	httpClient     *http.Client
	introspectURL  string
	adminKey       string
	logger         *logging.Logger
	clock          clockwork.Clock
	cache          *principalCache
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}
	clock := cfg.Clock
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = 5 * time.Second
	}

	path := cfg.IntrospectPath
	if strings.TrimSpace(path) == "" {
		path = "/v1/auth/introspect"
	}
	breakerCfg := resilience.NormalizeCircuitBreakerConfig(cfg.CircuitBreaker)

	return &Client{
		httpClient:     httpClient,
		introspectURL:  buildURL(cfg.BaseURL, path),
		adminKey:       strings.TrimSpace(cfg.AdminKey),
		logger:         logger.Named("anubis"),
		clock:          clock,
		cache:          newPrincipalCache(clock, cfg.TokenCacheTTL, cfg.TokenCacheMaxEntries),
		breaker:        resilience.NewCircuitBreakerWithClock(breakerCfg, clock),
		circuitEnabled: breakerCfg.Enabled,
	}
}

func (c *Client) VerifyAccessToken(ctx context.Context, token string) (user.Principal, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return user.Principal{}, fmt.Errorf("%w: token is required", usecase.ErrUnauthorized)
	}

	cacheKey := hashToken(token)
	if principal, ok := c.cache.Get(cacheKey); ok {
		return principal, nil
	}

	var decoded introspectResponse
	call := func() error {
		var err error
		decoded, err = c.introspect(ctx, token)
		return err
	}

	var err error
	if c.circuitEnabled {
		err = c.breaker.Do(call, isCircuitFailure)
	} else {
		err = call()
	}
	if crerr.Is(err, resilience.ErrCircuitOpen) {
		c.logger.WarnContext(ctx, "anubis circuit breaker rejected request", "state", c.breaker.State())
		return user.Principal{}, fmt.Errorf("%w: identity provider circuit open", usecase.ErrDependencyUnavailable)
	}
	if err != nil {
		return user.Principal{}, err
	}

	if !decoded.Active {
		return user.Principal{}, fmt.Errorf("%w: inactive token", usecase.ErrUnauthorized)
	}
	if strings.TrimSpace(decoded.UserID) == "" {
		return user.Principal{}, crerr.New("invalid introspect response: user_id is empty")
	}

	principal := user.Principal{
		UserID: decoded.UserID,
		Email:  decoded.Email,
		Roles:  append([]string(nil), decoded.Roles...),
	}
	c.cache.Set(cacheKey, principal, tokenExpiry(decoded.ExpiresAt))
	return principal, nil
}

func (c *Client) introspect(ctx context.Context, token string) (introspectResponse, error) {
	body, err := encodeIntrospectRequest(introspectRequest{Token: token})
	if err != nil {
		return introspectResponse{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.introspectURL, strings.NewReader(body))
	if err != nil {
		return introspectResponse{}, crerr.Wrap(err, "create introspect request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.adminKey != "" {
		req.Header.Set("x-admin-key", c.adminKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return introspectResponse{}, transient(fmt.Errorf("%w: request introspection: %v", usecase.ErrDependencyUnavailable, err))
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return introspectResponse{}, transient(fmt.Errorf("%w: read introspect response: %v", usecase.ErrDependencyUnavailable, err))
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return introspectResponse{}, fmt.Errorf("%w: introspection denied", usecase.ErrUnauthorized)
	case resp.StatusCode == http.StatusForbidden:
		c.logger.ErrorContext(ctx, "anubis rejected admin key", "status_code", resp.StatusCode)
		return introspectResponse{}, fmt.Errorf("%w: identity provider rejected credentials", usecase.ErrDependencyUnavailable)
	case isRetryableStatus(resp.StatusCode):
		c.logger.WarnContext(ctx, "anubis introspection unavailable", "status_code", resp.StatusCode)
		return introspectResponse{}, transient(fmt.Errorf("%w: introspection status %d", usecase.ErrDependencyUnavailable, resp.StatusCode))
	case resp.StatusCode != http.StatusOK:
		return introspectResponse{}, crerr.Newf("anubis introspection failed with status %d", resp.StatusCode)
	}

	var decoded introspectResponse
	if err := sonic.Unmarshal(raw, &decoded); err != nil {
		return introspectResponse{}, crerr.Wrap(err, "unmarshal introspect response")
	}
	return decoded, nil
}

func tokenExpiry(exp int64) time.Time {
	if exp <= 0 {
		return time.Time{}
	}
	return time.Unix(exp, 0)
}

func encodeIntrospectRequest(payload introspectRequest) (string, error) {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if err := sonic.ConfigDefault.NewEncoder(buf).Encode(payload); err != nil {
		return "", crerr.Wrap(err, "marshal introspect request")
	}
	return buf.String(), nil
}

func transient(err error) error {
	return crerr.Mark(err, errAnubisTransient)
}

type introspectRequest struct {
	Token string `json:"token"`
}

type introspectResponse struct {
	Active    bool     `json:"active"`
	UserID    string   `json:"user_id"`
	Email     string   `json:"email"`
	Roles     []string `json:"roles"`
	ExpiresAt int64    `json:"exp"`
}
