package models

// UnknownTitle is the placeholder title used when metadata cannot be resolved.
const UnknownTitle = "Unknown Video"

// VideoMetadata describes a source clip. Only Title feeds the summary prompt.
type VideoMetadata struct {
	Title       string  `json:"title"`
	Duration    float64 `json:"duration,omitempty"`
	Uploader    string  `json:"uploader,omitempty"`
	Description string  `json:"-"`

	// Unavailable is set when the lookup failed and Title is the placeholder.
	Unavailable bool `json:"-"`
}

// PlaceholderMetadata is returned in place of a failed metadata lookup.
func PlaceholderMetadata() VideoMetadata {
	return VideoMetadata{Title: UnknownTitle, Unavailable: true}
}

// Result is the outcome of one successful pipeline run.
type Result struct {
	Metadata VideoMetadata `json:"metadata"`
	Summary  string        `json:"summary"`
}
