package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"workforce/config"
	"workforce/internal/domain/service"

	"github.com/pkg/errors"
	"golang.org/x/oauth2"
)

const (
	defaultDropboxTokenURL   = "https://api.dropbox.com/oauth2/token"
	defaultDropboxAPIURL     = "https://api.dropboxapi.com"
	defaultDropboxContentURL = "https://content.dropboxapi.com"

	// tokenExchangeTimeout bounds one refresh-token grant round trip.
	tokenExchangeTimeout = 15 * time.Second
)

// dropboxStorage implements ObjectStorage over the Dropbox HTTP API.
// Only the app key, app secret and long-lived refresh token are configured;
// short-lived access tokens are exchanged at runtime and cached until a call
// comes back unauthorized.
type dropboxStorage struct {
	oauth      *oauth2.Config
	refresh    string
	apiURL     string
	contentURL string
	httpClient *http.Client
	logger     *slog.Logger

	mu     sync.Mutex
	source oauth2.TokenSource
}

// NewDropboxStorage creates a Dropbox-backed ObjectStorage from the
// configured refresh-token credentials.
func NewDropboxStorage(cfg *config.DropboxConfig, logger *slog.Logger) (service.ObjectStorage, error) {
	if cfg == nil || cfg.AppKey == "" || cfg.AppSecret == "" || cfg.RefreshToken == "" {
		return nil, errors.New("dropbox app key, app secret and refresh token are required")
	}

	tokenURL := cfg.TokenURL
	if tokenURL == "" {
		tokenURL = defaultDropboxTokenURL
	}
	apiURL := cfg.APIURL
	if apiURL == "" {
		apiURL = defaultDropboxAPIURL
	}
	contentURL := cfg.ContentURL
	if contentURL == "" {
		contentURL = defaultDropboxContentURL
	}

	s := &dropboxStorage{
		oauth: &oauth2.Config{
			ClientID:     cfg.AppKey,
			ClientSecret: cfg.AppSecret,
			Endpoint:     oauth2.Endpoint{TokenURL: tokenURL},
		},
		refresh:    cfg.RefreshToken,
		apiURL:     strings.TrimRight(apiURL, "/"),
		contentURL: strings.TrimRight(contentURL, "/"),
		httpClient: &http.Client{Timeout: 60 * time.Second},
		logger:     logger,
	}

	logger.Info("Dropbox storage initialized")

	return s, nil
}

// accessToken returns a cached short-lived token, exchanging the refresh
// token when none is cached or the cached one has expired.
func (s *dropboxStorage) accessToken(ctx context.Context) (string, error) {
	s.mu.Lock()
	if s.source == nil {
		s.source = s.oauth.TokenSource(
			context.WithValue(context.Background(), oauth2.HTTPClient,
				&http.Client{Timeout: tokenExchangeTimeout}),
			&oauth2.Token{RefreshToken: s.refresh},
		)
	}
	source := s.source
	s.mu.Unlock()

	token, err := source.Token()
	if err != nil {
		return "", errors.Wrap(err, "dropbox token exchange failed")
	}

	return token.AccessToken, nil
}

// invalidateToken drops the cached token source so the next call exchanges
// the refresh token again.
func (s *dropboxStorage) invalidateToken() {
	s.mu.Lock()
	s.source = nil
	s.mu.Unlock()
}

// do executes one authorized call. A 401 response invalidates the cached
// token and retries the call once with a freshly exchanged one.
func (s *dropboxStorage) do(ctx context.Context, build func(token string) (*http.Request, error)) (*http.Response, error) {
	token, err := s.accessToken(ctx)
	if err != nil {
		return nil, err
	}

	req, err := build(token)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if resp.StatusCode != http.StatusUnauthorized {
		return resp, nil
	}

	resp.Body.Close()
	s.logger.Warn("Dropbox access token rejected, refreshing once")
	s.invalidateToken()

	token, err = s.accessToken(ctx)
	if err != nil {
		return nil, err
	}

	req, err = build(token)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	resp, err = s.httpClient.Do(req)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return resp, nil
}

func (s *dropboxStorage) Upload(ctx context.Context, path string, data []byte) error {
	arg, err := json.Marshal(map[string]any{
		"path": dropboxPath(path),
		"mode": "overwrite",
	})
	if err != nil {
		return errors.WithStack(err)
	}

	resp, err := s.do(ctx, func(token string) (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost,
			s.contentURL+"/2/files/upload", bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Authorization", "Bearer "+token)
		req.Header.Set("Dropbox-API-Arg", string(arg))
		req.Header.Set("Content-Type", "application/octet-stream")

		return req, nil
	})
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return dropboxError("upload", resp.StatusCode, readErrorBody(resp))
	}

	return nil
}

func (s *dropboxStorage) Download(ctx context.Context, path string) ([]byte, error) {
	arg, err := json.Marshal(map[string]any{"path": dropboxPath(path)})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	resp, err := s.do(ctx, func(token string) (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost,
			s.contentURL+"/2/files/download", nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Authorization", "Bearer "+token)
		req.Header.Set("Dropbox-API-Arg", string(arg))

		return req, nil
	})
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body := readErrorBody(resp)
		if isDropboxNotFound(resp.StatusCode, body) {
			return nil, service.ErrObjectNotFound
		}

		return nil, dropboxError("download", resp.StatusCode, body)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return data, nil
}

func (s *dropboxStorage) Exists(ctx context.Context, path string) (bool, error) {
	body, err := json.Marshal(map[string]any{"path": dropboxPath(path)})
	if err != nil {
		return false, errors.WithStack(err)
	}

	resp, err := s.do(ctx, func(token string) (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost,
			s.apiURL+"/2/files/get_metadata", bytes.NewReader(body))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Authorization", "Bearer "+token)
		req.Header.Set("Content-Type", "application/json")

		return req, nil
	})
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusOK {
		return true, nil
	}

	errBody := readErrorBody(resp)
	if isDropboxNotFound(resp.StatusCode, errBody) {
		return false, nil
	}

	return false, dropboxError("get_metadata", resp.StatusCode, errBody)
}

func (s *dropboxStorage) Close() error {
	return nil
}

// dropboxPath ensures the leading slash the Dropbox API requires.
func dropboxPath(path string) string {
	if strings.HasPrefix(path, "/") {
		return path
	}

	return "/" + path
}

// readErrorBody drains a bounded prefix of a failed response's body so the
// payload can feed both the not-found check and the error message.
func readErrorBody(resp *http.Response) []byte {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

	return body
}

// isDropboxNotFound detects the path lookup failure Dropbox reports as a 409
// with a path/not_found error summary.
func isDropboxNotFound(statusCode int, body []byte) bool {
	return statusCode == http.StatusConflict && bytes.Contains(body, []byte("not_found"))
}

func dropboxError(op string, statusCode int, body []byte) error {
	return errors.Errorf("dropbox %s returned status %d: %s", op, statusCode, strings.TrimSpace(string(body)))
}
