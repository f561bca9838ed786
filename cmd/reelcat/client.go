package main

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"
)

// Client wraps HTTP calls to the reelcat server.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new reelcat API client.
func NewClient(serverURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(serverURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (c *Client) get(path string, result any) error {
	resp, err := c.httpClient.Get(c.baseURL + path)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		var apiErr ErrorResponse
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Error != "" {
			return fmt.Errorf("server error %d: %s (%s)", resp.StatusCode, apiErr.Error, apiErr.Code)
		}
		return fmt.Errorf("server error %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// API response types (mirror server types)

type StatusResponse struct {
	Status     string `json:"status"`
	Version    string `json:"version"`
	Films      int    `json:"films"`
	Characters int    `json:"characters"`
}

type FilmResponse struct {
	Index      int      `json:"index"`
	Title      string   `json:"title"`
	Year       int      `json:"year"`
	Directors  []string `json:"directors"`
	Characters []string `json:"characters"`
	Image      string   `json:"image"`
	Visible    bool     `json:"visible"`
}

type ListFilmsResponse struct {
	Items       []FilmResponse `json:"items"`
	Total       int            `json:"total"`
	Visible     int            `json:"visible"`
	Character   string         `json:"character"`
	Sort        string         `json:"sort"`
	Suggestions []string       `json:"suggestions,omitempty"`
}

type CharactersResponse struct {
	Characters []string `json:"characters"`
	Total      int      `json:"total"`
}

type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// Status returns the daemon status.
func (c *Client) Status() (*StatusResponse, error) {
	var resp StatusResponse
	if err := c.get("/api/v1/status", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Films lists the catalog view for the given character filter and sort key.
// Empty arguments leave the server defaults in place.
func (c *Client) Films(character, sortKey string) (*ListFilmsResponse, error) {
	params := url.Values{}
	if character != "" {
		params.Set("character", character)
	}
	if sortKey != "" {
		params.Set("sort", sortKey)
	}

	path := "/api/v1/films"
	if len(params) > 0 {
		path += "?" + params.Encode()
	}

	var resp ListFilmsResponse
	if err := c.get(path, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Characters returns the derived character set.
func (c *Client) Characters() (*CharactersResponse, error) {
	var resp CharactersResponse
	if err := c.get("/api/v1/characters", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
