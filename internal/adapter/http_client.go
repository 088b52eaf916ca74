package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/golang-jwt/jwt/v5"

	"github.com/ashmarin/vault-serve/models"
)

// HTTPClientConfig configures the remote gateway.
type HTTPClientConfig struct {
	BaseURL string
	Timeout time.Duration
	// AccessToken is the bearer token for authenticated endpoints,
	// normally taken from the cached account profile.
	AccessToken string
}

type httpGateway struct {
	client *resty.Client

	mu    sync.RWMutex
	token string
}

// NewHTTPGateway constructs a [Gateway] speaking JSON over HTTP to the
// remote vault server. Timeouts are enforced by the underlying resty
// client; this layer adds no retry of its own.
func NewHTTPGateway(cfg HTTPClientConfig) Gateway {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8000"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &httpGateway{client: cli, token: strings.TrimSpace(cfg.AccessToken)}
}

// SetToken replaces the bearer token used for authenticated endpoints.
func (h *httpGateway) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token returns the current bearer token.
func (h *httpGateway) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

type verifyPasswordRequest struct {
	Email   string `json:"email"`
	KeyHash string `json:"masterPasswordHash"`
}

// VerifyPassword implements [Gateway].
func (h *httpGateway) VerifyPassword(ctx context.Context, email, serverKeyHash string) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(verifyPasswordRequest{Email: email, KeyHash: serverKeyHash}).
		Post("/api/accounts/verify-password")
	if err != nil {
		return fmt.Errorf("verify password request: %w", err)
	}

	return mapHTTPError(resp)
}

// DownloadAttachment implements [Gateway]. The url is absolute (taken from
// attachment metadata), so it bypasses the configured base URL.
func (h *httpGateway) DownloadAttachment(ctx context.Context, url string) ([]byte, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := req.Get(url)
	if err != nil {
		return nil, fmt.Errorf("download attachment request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return resp.Body(), nil
}

// UploadAttachment implements [Gateway].
func (h *httpGateway) UploadAttachment(ctx context.Context, itemID, fileName string, content []byte) (models.AttachmentMeta, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.AttachmentMeta{}, err
	}

	resp, err := req.
		SetFileReader("file", fileName, strings.NewReader(string(content))).
		Post(fmt.Sprintf("/api/ciphers/%s/attachment", itemID))
	if err != nil {
		return models.AttachmentMeta{}, fmt.Errorf("upload attachment request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AttachmentMeta{}, err
	}

	var meta models.AttachmentMeta
	if err = json.Unmarshal(resp.Body(), &meta); err != nil {
		return models.AttachmentMeta{}, fmt.Errorf("decode upload response: %w", err)
	}

	return meta, nil
}

// ConfirmOrgMember implements [Gateway].
func (h *httpGateway) ConfirmOrgMember(ctx context.Context, organizationID, memberID string) error {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return err
	}

	resp, err := req.
		SetHeader("Content-Type", "application/json").
		Post(fmt.Sprintf("/api/organizations/%s/users/%s/confirm", organizationID, memberID))
	if err != nil {
		return fmt.Errorf("confirm member request: %w", err)
	}

	return mapHTTPError(resp)
}

// authedRequest prepares a request carrying the bearer token. An expired
// token is rejected locally before any network round trip.
func (h *httpGateway) authedRequest(ctx context.Context) (*resty.Request, error) {
	token := h.Token()
	if token == "" {
		return nil, fmt.Errorf("%w: no access token", ErrUnauthorized)
	}
	if tokenExpired(token) {
		return nil, fmt.Errorf("%w: access token expired", ErrUnauthorized)
	}

	return h.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+token), nil
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	if resp.StatusCode() == http.StatusUnauthorized {
		return ErrUnauthorized
	}

	return &StatusError{
		StatusCode: resp.StatusCode(),
		Body:       strings.TrimSpace(string(resp.Body())),
	}
}

// tokenExpired inspects the access token's "exp" claim without verifying
// the signature; verification is the server's job, this is only a local
// fast-fail to avoid a doomed round trip.
func tokenExpired(tokenString string) bool {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		// Not a JWT — some deployments issue opaque tokens. Let the
		// server decide.
		return false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return false
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}

	return exp.Before(time.Now())
}
