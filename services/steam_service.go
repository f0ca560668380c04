package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"time"

	"golang.org/x/time/rate"
)

// SteamService fetches game data from the Steam store API so the
// add-torrent form can be prefilled from a store link or a bare app ID.
type SteamService struct {
	httpClient  *http.Client
	rateLimiter *rate.Limiter
}

var steamService *SteamService

// InitSteamService creates the shared Steam client.
func InitSteamService() {
	steamService = NewSteamService()
}

// GetSteamService returns the shared Steam client.
func GetSteamService() *SteamService {
	return steamService
}

// NewSteamService creates a Steam store client. Steam throttles the
// appdetails endpoint aggressively, hence the conservative limiter.
func NewSteamService() *SteamService {
	return &SteamService{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		// roughly 1 request per 2 seconds, burst of 3
		rateLimiter: rate.NewLimiter(rate.Every(2*time.Second), 3),
	}
}

var steamAppIDPatterns = []*regexp.Regexp{
	regexp.MustCompile(`store\.steampowered\.com/app/(\d+)`),
	regexp.MustCompile(`steamcommunity\.com/app/(\d+)`),
	regexp.MustCompile(`^(\d+)$`),
}

// ErrSteamAppNotFound is returned when Steam has no data for the app ID.
var ErrSteamAppNotFound = errors.New("game not found or data unavailable")

// ExtractAppID pulls the numeric app ID out of a Steam store or community
// URL, or accepts a bare numeric ID unchanged. Empty string when nothing
// matches.
func ExtractAppID(input string) string {
	for _, pattern := range steamAppIDPatterns {
		if match := pattern.FindStringSubmatch(input); match != nil {
			return match[1]
		}
	}
	return ""
}

// SteamGame is the prefill payload mapped from the Steam appdetails reply.
type SteamGame struct {
	AppID           string   `json:"appId"`
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	FullDescription string   `json:"fullDescription"`
	HeaderImage     string   `json:"headerImage"`
	Screenshots     []string `json:"screenshots"`
	ReleaseDate     string   `json:"releaseDate"`
	Developers      []string `json:"developers"`
	Publishers      []string `json:"publishers"`
	Genres          []string `json:"genres"`
	MetacriticScore *float64 `json:"metacriticScore,omitempty"`
	IsFree          bool     `json:"isFree"`
	SteamURL        string   `json:"steamUrl"`
}

// appdetails reply, trimmed to the fields the prefill needs.
type steamAppDetails struct {
	Success bool `json:"success"`
	Data    struct {
		Name                string `json:"name"`
		ShortDescription    string `json:"short_description"`
		DetailedDescription string `json:"detailed_description"`
		HeaderImage         string `json:"header_image"`
		IsFree              bool   `json:"is_free"`
		Screenshots         []struct {
			PathFull string `json:"path_full"`
		} `json:"screenshots"`
		ReleaseDate struct {
			Date string `json:"date"`
		} `json:"release_date"`
		Developers []string `json:"developers"`
		Publishers []string `json:"publishers"`
		Genres     []struct {
			Description string `json:"description"`
		} `json:"genres"`
		Metacritic *struct {
			Score float64 `json:"score"`
		} `json:"metacritic"`
	} `json:"data"`
}

// FetchGame loads appdetails for an app ID and maps it to the prefill
// payload. Descriptions are requested in Russian to match the catalog.
func (s *SteamService) FetchGame(ctx context.Context, appID string) (*SteamGame, error) {
	if err := s.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit: %w", err)
	}

	apiURL := fmt.Sprintf("https://store.steampowered.com/api/appdetails?appids=%s&l=russian", appID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("steam request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("steam returned status %d", resp.StatusCode)
	}

	var payload map[string]steamAppDetails
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("parse response: %w", err)
	}

	details, ok := payload[appID]
	if !ok || !details.Success {
		return nil, ErrSteamAppNotFound
	}

	game := &SteamGame{
		AppID:           appID,
		Name:            details.Data.Name,
		Description:     details.Data.ShortDescription,
		FullDescription: details.Data.DetailedDescription,
		HeaderImage:     details.Data.HeaderImage,
		ReleaseDate:     details.Data.ReleaseDate.Date,
		Developers:      details.Data.Developers,
		Publishers:      details.Data.Publishers,
		IsFree:          details.Data.IsFree,
		SteamURL:        fmt.Sprintf("https://store.steampowered.com/app/%s", appID),
	}

	// first five screenshots are enough for a prefill preview
	for i, shot := range details.Data.Screenshots {
		if i == 5 {
			break
		}
		game.Screenshots = append(game.Screenshots, shot.PathFull)
	}
	for _, genre := range details.Data.Genres {
		game.Genres = append(game.Genres, genre.Description)
	}
	if details.Data.Metacritic != nil {
		score := details.Data.Metacritic.Score
		game.MetacriticScore = &score
	}

	return game, nil
}
