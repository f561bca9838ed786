// internal/api/v1/types.go
package v1

// filmResponse is the API representation of a film in a view.
type filmResponse struct {
	Index      int      `json:"index"`
	Title      string   `json:"title"`
	Year       int      `json:"year"`
	Directors  []string `json:"directors"`
	Characters []string `json:"characters"`
	Image      string   `json:"image"`
	Visible    bool     `json:"visible"`
}

// listFilmsResponse is the response for GET /films.
type listFilmsResponse struct {
	Items       []filmResponse `json:"items"`
	Total       int            `json:"total"`
	Visible     int            `json:"visible"`
	Character   string         `json:"character"`
	Sort        string         `json:"sort"`
	Suggestions []string       `json:"suggestions,omitempty"`
}

// charactersResponse is the response for GET /characters.
type charactersResponse struct {
	Characters []string `json:"characters"`
	Total      int      `json:"total"`
}

// statusResponse is the response for GET /status.
type statusResponse struct {
	Status     string `json:"status"`
	Version    string `json:"version"`
	Films      int    `json:"films"`
	Characters int    `json:"characters"`
}

// errorResponse is the body of every non-2xx response.
type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}
