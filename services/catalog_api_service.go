package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"

	"github.com/pr-poehali-dev/torrent-game-platform/models"
)

// CatalogAPIService is the HTTP client for the remote catalog function
// service. Every read returns the full collection (the snapshot model has
// no partial fetches) and every mutation is fire-and-refetch: callers
// reload the affected snapshot afterwards instead of patching it.
type CatalogAPIService struct {
	baseURL     string
	httpClient  *http.Client
	rateLimiter *rate.Limiter
}

var catalogAPI *CatalogAPIService

// InitCatalogAPI initializes the shared catalog client.
func InitCatalogAPI(baseURL string) error {
	if baseURL == "" {
		return errors.New("catalog API base URL cannot be empty")
	}
	catalogAPI = NewCatalogAPIService(baseURL)
	return nil
}

// GetCatalogAPI returns the initialized catalog client.
func GetCatalogAPI() *CatalogAPIService {
	return catalogAPI
}

// NewCatalogAPIService creates a catalog client against the given base URL.
// Requests are rate limited to stay well under the function quota.
func NewCatalogAPIService(baseURL string) *CatalogAPIService {
	return &CatalogAPIService{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		// 10 requests per second, burst of 20
		rateLimiter: rate.NewLimiter(rate.Limit(10), 20),
	}
}

// RemoteError is a non-2xx reply from the catalog service. Its message is
// taken verbatim from the {error|message} body when present and is safe to
// surface to the user.
type RemoteError struct {
	StatusCode int
	Message    string
}

func (e *RemoteError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("catalog service returned status %d", e.StatusCode)
}

// ════════════════════════════════════════════════════════════
// Reads (collection fetches)
// ════════════════════════════════════════════════════════════

// FetchTorrents returns the full torrent collection.
func (s *CatalogAPIService) FetchTorrents(ctx context.Context) ([]models.Torrent, error) {
	var payload struct {
		Torrents []models.Torrent `json:"torrents"`
	}
	if err := s.get(ctx, nil, &payload); err != nil {
		return nil, fmt.Errorf("fetch torrents: %w", err)
	}
	return payload.Torrents, nil
}

// FetchCategories returns the full category collection.
func (s *CatalogAPIService) FetchCategories(ctx context.Context) ([]models.Category, error) {
	var payload struct {
		Categories []models.Category `json:"categories"`
	}
	if err := s.get(ctx, url.Values{"action": {"categories"}}, &payload); err != nil {
		return nil, fmt.Errorf("fetch categories: %w", err)
	}
	return payload.Categories, nil
}

// FetchUsers returns all registered users. User listings are read through
// on every request, not snapshotted.
func (s *CatalogAPIService) FetchUsers(ctx context.Context) ([]models.User, error) {
	var payload struct {
		Users []models.User `json:"users"`
	}
	if err := s.get(ctx, url.Values{"action": {"users"}}, &payload); err != nil {
		return nil, fmt.Errorf("fetch users: %w", err)
	}
	return payload.Users, nil
}

// FetchStats returns the site counters and the optional warning banner.
func (s *CatalogAPIService) FetchStats(ctx context.Context) (*models.Stats, error) {
	var stats models.Stats
	if err := s.get(ctx, url.Values{"action": {"stats"}}, &stats); err != nil {
		return nil, fmt.Errorf("fetch stats: %w", err)
	}
	return &stats, nil
}

// ════════════════════════════════════════════════════════════
// Torrent mutations
// ════════════════════════════════════════════════════════════

func (s *CatalogAPIService) CreateTorrent(ctx context.Context, req *models.TorrentRequest) error {
	return s.send(ctx, http.MethodPost, nil, req)
}

func (s *CatalogAPIService) UpdateTorrent(ctx context.Context, id int, req *models.TorrentRequest) error {
	return s.send(ctx, http.MethodPut, url.Values{"id": {fmt.Sprint(id)}}, req)
}

func (s *CatalogAPIService) DeleteTorrent(ctx context.Context, id int) error {
	return s.send(ctx, http.MethodDelete, url.Values{"id": {fmt.Sprint(id)}}, nil)
}

// ════════════════════════════════════════════════════════════
// Category mutations
// ════════════════════════════════════════════════════════════

func (s *CatalogAPIService) CreateCategory(ctx context.Context, req *models.CategoryRequest) error {
	return s.send(ctx, http.MethodPost, url.Values{"action": {"categories"}}, req)
}

func (s *CatalogAPIService) DeleteCategory(ctx context.Context, id int) error {
	return s.send(ctx, http.MethodDelete, url.Values{
		"action": {"categories"},
		"id":     {fmt.Sprint(id)},
	}, nil)
}

// ════════════════════════════════════════════════════════════
// User mutations
// ════════════════════════════════════════════════════════════

func (s *CatalogAPIService) UpdateUser(ctx context.Context, id int, req *models.UpdateUserRequest) error {
	return s.send(ctx, http.MethodPut, url.Values{
		"action": {"users"},
		"id":     {fmt.Sprint(id)},
	}, req)
}

func (s *CatalogAPIService) DeleteUser(ctx context.Context, id int) error {
	return s.send(ctx, http.MethodDelete, url.Values{
		"action": {"users"},
		"id":     {fmt.Sprint(id)},
	}, nil)
}

// ════════════════════════════════════════════════════════════
// Warning banner
// ════════════════════════════════════════════════════════════

func (s *CatalogAPIService) UpdateWarning(ctx context.Context, warning string) error {
	return s.send(ctx, http.MethodPost, url.Values{"action": {"updateWarning"}},
		models.WarningRequest{Warning: warning})
}

// ════════════════════════════════════════════════════════════
// Auth (token issuance is the remote service's job)
// ════════════════════════════════════════════════════════════

func (s *CatalogAPIService) Login(ctx context.Context, email, password string) (*models.AuthResponse, error) {
	return s.auth(ctx, map[string]string{
		"action":   "login",
		"email":    email,
		"password": password,
	})
}

func (s *CatalogAPIService) Register(ctx context.Context, username, email, password string) (*models.AuthResponse, error) {
	return s.auth(ctx, map[string]string{
		"action":   "register",
		"username": username,
		"email":    email,
		"password": password,
	})
}

// TelegramAuth exchanges a verified Telegram widget payload for a user
// record and token. The HMAC check happens before this call; the remote
// service only upserts the account.
func (s *CatalogAPIService) TelegramAuth(ctx context.Context, req *models.TelegramAuthRequest) (*models.AuthResponse, error) {
	var resp models.AuthResponse
	if err := s.do(ctx, http.MethodPost, url.Values{"action": {"auth"}}, map[string]any{
		"action":     "telegram",
		"id":         req.ID,
		"first_name": req.FirstName,
		"last_name":  req.LastName,
		"username":   req.Username,
		"photo_url":  req.PhotoURL,
		"auth_date":  req.AuthDate,
	}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *CatalogAPIService) auth(ctx context.Context, body map[string]string) (*models.AuthResponse, error) {
	var resp models.AuthResponse
	if err := s.do(ctx, http.MethodPost, url.Values{"action": {"auth"}}, body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ════════════════════════════════════════════════════════════
// Transport plumbing
// ════════════════════════════════════════════════════════════

func (s *CatalogAPIService) get(ctx context.Context, params url.Values, out any) error {
	return s.do(ctx, http.MethodGet, params, nil, out)
}

// send issues a mutation and discards the success body.
func (s *CatalogAPIService) send(ctx context.Context, method string, params url.Values, body any) error {
	return s.do(ctx, method, params, body, nil)
}

func (s *CatalogAPIService) do(ctx context.Context, method string, params url.Values, body, out any) error {
	if err := s.rateLimiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit: %w", err)
	}

	endpoint := s.baseURL
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("catalog request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return s.remoteError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("parse response: %w", err)
	}
	return nil
}

// remoteError extracts the {error|message} body of a failed call so the
// text can be shown to the user unchanged.
func (s *CatalogAPIService) remoteError(resp *http.Response) error {
	remote := &RemoteError{StatusCode: resp.StatusCode}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err != nil {
		log.Printf("[catalog] failed to read error body: %v", err)
		return remote
	}

	var body struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &body); err == nil {
		if body.Error != "" {
			remote.Message = body.Error
		} else if body.Message != "" {
			remote.Message = body.Message
		}
	}
	return remote
}
