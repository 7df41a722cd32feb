package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/nguyentantai21042004/audio-summary/internal/models"
	"github.com/nguyentantai21042004/audio-summary/internal/pipeline"
	"github.com/nguyentantai21042004/audio-summary/internal/summarizer"
)

const (
	docxContentType  = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	maxRequestBytes  = 1 << 20
	msgInvalidBody   = "Invalid JSON body"
	defaultDocxTitle = "summary"
)

var errInvalidBody = errors.New(msgInvalidBody)

func (h *handler) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Status:    "ok",
		Service:   h.serviceName,
		Timestamp: h.now().UTC().Format(time.RFC3339Nano),
	})
}

func (h *handler) summarize(w http.ResponseWriter, r *http.Request) {
	res, ok := h.run(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, newSummarizeResponse(res))
}

func (h *handler) summarizeDocx(w http.ResponseWriter, r *http.Request) {
	res, ok := h.run(w, r)
	if !ok {
		return
	}

	ctx := r.Context()
	outPath := filepath.Join(h.scratchDir, "summary-"+h.newID()+".docx")
	defer h.files.DeleteFile(ctx, outPath)

	if err := summarizer.WriteDocx(res.Metadata, res.Summary, outPath); err != nil {
		h.logger.Error(ctx, "Failed to export docx: %v", err)
		writeJSON(w, http.StatusInternalServerError, failureResponse{Error: err.Error()})
		return
	}

	f, err := os.Open(outPath)
	if err != nil {
		h.logger.Error(ctx, "Failed to open exported docx: %v", err)
		writeJSON(w, http.StatusInternalServerError, failureResponse{Error: err.Error()})
		return
	}
	defer f.Close()

	w.Header().Set("Content-Type", docxContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+docxFilename(res.Metadata)+`"`)
	w.WriteHeader(http.StatusOK)
	if _, err := io.Copy(w, f); err != nil {
		h.logger.Warn(ctx, "Failed to stream docx: %v", err)
	}
}

// run decodes the request and executes the pipeline. It writes the error
// response itself and reports false when the caller should stop.
func (h *handler) run(w http.ResponseWriter, r *http.Request) (*models.Result, bool) {
	url, err := decodeURL(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, invalidRequestResponse{Error: err.Error()})
		return nil, false
	}

	res, err := h.pipeline.Run(r.Context(), url)
	if err != nil {
		if errors.Is(err, pipeline.ErrURLRequired) {
			writeJSON(w, http.StatusBadRequest, invalidRequestResponse{Error: err.Error()})
			return nil, false
		}
		writeJSON(w, http.StatusInternalServerError, failureResponse{Error: err.Error()})
		return nil, false
	}

	return res, true
}

func decodeURL(r *http.Request) (string, error) {
	var req summarizeRequest
	dec := json.NewDecoder(io.LimitReader(r.Body, maxRequestBytes))
	if err := dec.Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		return "", errInvalidBody
	}
	if strings.TrimSpace(req.URL) == "" {
		return "", pipeline.ErrURLRequired
	}
	return req.URL, nil
}

func docxFilename(meta models.VideoMetadata) string {
	name := defaultDocxTitle
	if !meta.Unavailable && strings.TrimSpace(meta.Title) != "" {
		name = meta.Title
	}

	clean := strings.Map(func(r rune) rune {
		switch {
		case r < 0x20, strings.ContainsRune(`"\/:*?<>|`, r):
			return '_'
		}
		return r
	}, strings.TrimSpace(name))

	return clean + ".docx"
}
