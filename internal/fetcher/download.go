package fetcher

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

var reDestination = regexp.MustCompile(`^\[(?:ExtractAudio|ffmpeg)\] Destination: (.+)$`)

// FetchAudio downloads the best available audio for url and converts it to mp3.
func (f *implFetcher) FetchAudio(ctx context.Context, url, outputDir string) (string, error) {
	if strings.TrimSpace(url) == "" {
		return "", ErrEmptyURL
	}
	if !f.isSupported(url) {
		return "", ErrUnsupportedSource
	}

	fileID := f.newID()
	predicted := filepath.Join(outputDir, fileID+"."+audioFormat)

	// -x: extract audio
	// --audio-quality 0: best VBR quality
	// -o: output template keyed by the unique token
	args := []string{
		url,
		"-x",
		"--audio-format", audioFormat,
		"--audio-quality", "0",
		"-o", filepath.Join(outputDir, fileID+".%(ext)s"),
		"--no-playlist",
		"--newline",
	}

	f.logger.Info(ctx, "Downloading audio from: %s", url)

	out, err := f.executor.Execute(ctx, f.binary, args...)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrDownloadFailed, err)
	}

	path, err := resolveOutput(out, predicted, outputDir, fileID)
	if err != nil {
		return "", err
	}

	f.logger.Debug(ctx, "Resolved audio artifact: %s", path)
	return path, nil
}

func (f *implFetcher) isSupported(url string) bool {
	for _, domain := range f.allowed {
		if domain != "" && strings.Contains(url, domain) {
			return true
		}
	}
	return false
}

// resolveOutput locates the file yt-dlp actually produced. It prefers the
// last Destination line in the log, then the predicted path, then any entry
// of outputDir whose name starts with fileID.
func resolveOutput(log, predicted, outputDir, fileID string) (string, error) {
	if announced := announcedDestination(log); announced != "" && fileExists(announced) {
		return announced, nil
	}

	if fileExists(predicted) {
		return predicted, nil
	}

	entries, err := os.ReadDir(outputDir)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrDownloadFailed, err)
	}
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasPrefix(entry.Name(), fileID) {
			return filepath.Join(outputDir, entry.Name()), nil
		}
	}

	return "", fmt.Errorf("%w: Output file not found", ErrDownloadFailed)
}

func announcedDestination(log string) string {
	var dest string
	scanner := bufio.NewScanner(strings.NewReader(log))
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if m := reDestination.FindStringSubmatch(strings.TrimSpace(line)); m != nil {
			dest = strings.TrimSpace(m[1])
		}
	}
	return dest
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
