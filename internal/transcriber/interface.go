package transcriber

import "context"

// Transcriber turns a local audio file into plain text.
type Transcriber interface {
	// Transcribe sends the file at audioPath to the speech service. An empty
	// mimeType means DefaultMimeType.
	Transcribe(ctx context.Context, audioPath, mimeType string) (string, error)
}
