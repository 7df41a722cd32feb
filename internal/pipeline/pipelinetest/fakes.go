// Package pipelinetest provides recording fakes for the pipeline collaborators.
package pipelinetest

import (
	"context"
	"sync"

	"github.com/nguyentantai21042004/audio-summary/internal/models"
)

// Recorder keeps the order of collaborator calls across all fakes sharing it.
type Recorder struct {
	mu    sync.Mutex
	calls []string
}

func (r *Recorder) record(name string) {
	if r == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, name)
}

// Calls returns a copy of the recorded call names in order.
func (r *Recorder) Calls() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.calls...)
}

// Fetcher is a fake fetcher.Fetcher.
type Fetcher struct {
	Recorder *Recorder
	Metadata models.VideoMetadata
	Path     string
	Err      error

	MetadataCalls int
	AudioCalls    int
	OutputDir     string
}

func (f *Fetcher) FetchMetadata(ctx context.Context, url string) models.VideoMetadata {
	f.MetadataCalls++
	f.Recorder.record("metadata")
	return f.Metadata
}

func (f *Fetcher) FetchAudio(ctx context.Context, url, outputDir string) (string, error) {
	f.AudioCalls++
	f.OutputDir = outputDir
	f.Recorder.record("download")
	return f.Path, f.Err
}

// Transcriber is a fake transcriber.Transcriber.
type Transcriber struct {
	Recorder *Recorder
	Text     string
	Err      error

	Calls    int
	Path     string
	MimeType string
}

func (t *Transcriber) Transcribe(ctx context.Context, audioPath, mimeType string) (string, error) {
	t.Calls++
	t.Path = audioPath
	t.MimeType = mimeType
	t.Recorder.record("transcribe")
	return t.Text, t.Err
}

// Summarizer is a fake summarizer.Summarizer.
type Summarizer struct {
	Recorder *Recorder
	Text     string
	Err      error

	Calls      int
	Transcript string
	Metadata   models.VideoMetadata
}

func (s *Summarizer) Summarize(ctx context.Context, transcript string, meta models.VideoMetadata) (string, error) {
	s.Calls++
	s.Transcript = transcript
	s.Metadata = meta
	s.Recorder.record("summarize")
	return s.Text, s.Err
}

// Remover is a fake pipeline.FileRemover that only records paths.
type Remover struct {
	Recorder *Recorder

	mu    sync.Mutex
	paths []string
}

func (r *Remover) DeleteFile(ctx context.Context, path string) {
	r.mu.Lock()
	r.paths = append(r.paths, path)
	r.mu.Unlock()
	r.Recorder.record("delete")
}

// Deleted returns the paths passed to DeleteFile in order.
func (r *Remover) Deleted() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.paths...)
}
