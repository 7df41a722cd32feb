package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/nguyentantai21042004/audio-summary/internal/models"
)

type summarizeRequest struct {
	URL string `json:"url"`
}

type healthResponse struct {
	Status    string `json:"status"`
	Service   string `json:"service"`
	Timestamp string `json:"timestamp"`
}

type summarizeResponse struct {
	Success  bool             `json:"success"`
	Metadata metadataResponse `json:"metadata"`
	Summary  string           `json:"summary"`
}

type metadataResponse struct {
	Title    string  `json:"title"`
	Duration float64 `json:"duration,omitempty"`
	Uploader string  `json:"uploader,omitempty"`
}

type failureResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

type invalidRequestResponse struct {
	Error string `json:"error"`
}

func newSummarizeResponse(res *models.Result) summarizeResponse {
	return summarizeResponse{
		Success: true,
		Metadata: metadataResponse{
			Title:    res.Metadata.Title,
			Duration: res.Metadata.Duration,
			Uploader: res.Metadata.Uploader,
		},
		Summary: res.Summary,
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
