package fetcher

import "errors"

var (
	// ErrEmptyURL is returned when no URL is given
	ErrEmptyURL = errors.New("URL is required")

	// ErrUnsupportedSource is returned when the URL matches no allowed domain
	ErrUnsupportedSource = errors.New("Unsupported URL. Please provide a YouTube Shorts or Instagram Reels URL.")

	// ErrDownloadFailed is returned when the extraction tool left no locatable output
	ErrDownloadFailed = errors.New("Download failed")
)
