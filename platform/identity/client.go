package identity

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-resty/resty/v2"
	apperrors "github.com/jrsteele09/go-seller-bootstrap/internal/errors"
	"github.com/rs/zerolog"
	"golang.org/x/oauth2"
)

const (
	signInPath = "/v1/accounts:signInWithPassword"
	signUpPath = "/v1/accounts:signUp"

	defaultTimeout = 30 * time.Second
)

// Client is an Identity Toolkit REST client holding the process' current principal.
type Client struct {
	http     *resty.Client
	apiKey   string
	verifier TokenVerifier
	logger   zerolog.Logger
	now      func() time.Time

	lock    sync.RWMutex
	current *Principal
}

var _ Service = (*Client)(nil)

type Option func(*Client)

// WithVerifier verifies every ID token before a sign in is accepted.
func WithVerifier(v TokenVerifier) Option {
	return func(c *Client) {
		c.verifier = v
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.http.SetTimeout(timeout)
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(c *Client) {
		c.now = now
	}
}

// New creates a client for the identity API at baseURL authenticated by the project's web API key.
func New(baseURL, apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey: apiKey,
		logger: zerolog.Nop(),
		now:    time.Now,
	}
	c.http = resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(defaultTimeout).
		SetHeader("Content-Type", "application/json").
		SetJSONMarshaler(sonic.Marshal).
		SetJSONUnmarshaler(sonic.Unmarshal)

	for _, opt := range opts {
		opt(c)
	}
	return c
}

type passwordRequest struct {
	Email             string `json:"email"`
	Password          string `json:"password"`
	ReturnSecureToken bool   `json:"returnSecureToken"`
}

type authResponse struct {
	LocalID      string `json:"localId"`
	Email        string `json:"email"`
	IDToken      string `json:"idToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    string `json:"expiresIn"`
}

func (c *Client) SignIn(ctx context.Context, email, password string) (*Principal, error) {
	principal, err := c.authenticate(ctx, signInPath, email, password)
	if err != nil {
		return nil, fmt.Errorf("[identity SignIn] %w", err)
	}
	return principal, nil
}

func (c *Client) SignUp(ctx context.Context, email, password string) (*Principal, error) {
	principal, err := c.authenticate(ctx, signUpPath, email, password)
	if err != nil {
		return nil, fmt.Errorf("[identity SignUp] %w", err)
	}
	c.logger.Info().Str("uid", principal.UID).Msg("Account created")
	return principal, nil
}

// SignOut only forgets the local principal; the platform keeps no server side session for it.
func (c *Client) SignOut(_ context.Context) error {
	c.lock.Lock()
	defer c.lock.Unlock()

	if c.current != nil {
		c.logger.Debug().Str("uid", c.current.UID).Msg("Signed out")
	}
	c.current = nil
	return nil
}

func (c *Client) CurrentUser() *Principal {
	c.lock.RLock()
	defer c.lock.RUnlock()
	return c.current
}

// TokenSource returns the current principal's token for use by outbound API clients.
func (c *Client) TokenSource() (oauth2.TokenSource, error) {
	principal := c.CurrentUser()
	if principal == nil {
		return nil, fmt.Errorf("[identity TokenSource] %w", apperrors.ErrNotSignedIn)
	}
	return oauth2.StaticTokenSource(principal.Token()), nil
}

func (c *Client) authenticate(ctx context.Context, path, email, password string) (*Principal, error) {
	res, err := c.post(ctx, path, passwordRequest{
		Email:             email,
		Password:          password,
		ReturnSecureToken: true,
	})
	if err != nil {
		return nil, err
	}

	if c.verifier != nil {
		if err := c.verifier.Verify(ctx, res.IDToken); err != nil {
			return nil, err
		}
	}

	principal := newPrincipal(res, c.now())
	c.lock.Lock()
	c.current = principal
	c.lock.Unlock()

	c.logger.Debug().Str("uid", principal.UID).Msg("Signed in")
	return principal, nil
}

func (c *Client) post(ctx context.Context, path string, body any) (*authResponse, error) {
	var (
		result authResponse
		apiErr errorResponse
	)
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("key", c.apiKey).
		SetBody(body).
		SetResult(&result).
		SetError(&apiErr).
		Post(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrNetwork, err)
	}
	if resp.IsError() {
		message := apiErr.Error.Message
		if message == "" {
			message = strings.TrimSpace(resp.String())
		}
		return nil, newPlatformError(resp.StatusCode(), message)
	}
	return &result, nil
}
