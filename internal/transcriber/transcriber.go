package transcriber

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nguyentantai21042004/audio-summary/pkg/gemini"
	"google.golang.org/genai"
)

// DefaultMimeType is assumed when the caller does not name one.
const DefaultMimeType = "audio/mp3"

const instruction = "Transcribe this audio file accurately. Identify different speakers if possible, but mainly focus on capturing the spoken content word-for-word."

// ErrTranscriptionFailed wraps every failure past the credential check.
var ErrTranscriptionFailed = errors.New("Failed to transcribe audio")

var mimeTypes = map[string]string{
	".mp3":  "audio/mp3",
	".m4a":  "audio/mp4",
	".mp4":  "audio/mp4",
	".aac":  "audio/aac",
	".wav":  "audio/wav",
	".ogg":  "audio/ogg",
	".opus": "audio/ogg",
	".flac": "audio/flac",
	".webm": "audio/webm",
}

// MimeTypeFor guesses the audio mime type from the file extension.
func MimeTypeFor(path string) string {
	if mt, ok := mimeTypes[strings.ToLower(filepath.Ext(path))]; ok {
		return mt
	}
	return DefaultMimeType
}

// Transcribe reads the whole file into memory and sends it inline. No size
// check is made; short clips are expected to fit one request.
func (t *implTranscriber) Transcribe(ctx context.Context, audioPath, mimeType string) (string, error) {
	if strings.TrimSpace(t.apiKey) == "" {
		return "", gemini.ErrMissingAPIKey
	}
	if mimeType == "" {
		mimeType = DefaultMimeType
	}

	data, err := os.ReadFile(audioPath)
	if err != nil {
		return "", fmt.Errorf("%w: read audio: %w", ErrTranscriptionFailed, err)
	}

	t.logger.Info(ctx, "Transcribing %s (%d bytes, %s) with %s", audioPath, len(data), mimeType, t.model)

	gen, err := t.newGenerator(ctx, t.apiKey)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrTranscriptionFailed, err)
	}

	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromBytes(data, mimeType),
			genai.NewPartFromText(instruction),
		}, genai.RoleUser),
	}

	text, err := gen.Generate(ctx, t.model, contents)
	if err != nil {
		t.logger.Error(ctx, "Transcription error: %v", err)
		return "", fmt.Errorf("%w: %w", ErrTranscriptionFailed, err)
	}

	return text, nil
}
