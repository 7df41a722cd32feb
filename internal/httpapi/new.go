package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/nguyentantai21042004/audio-summary/internal/config"
	"github.com/nguyentantai21042004/audio-summary/internal/logger"
	"github.com/nguyentantai21042004/audio-summary/internal/pipeline"
)

// FileRemover deletes the exported documents after they have been streamed.
type FileRemover interface {
	DeleteFile(ctx context.Context, path string)
}

type handler struct {
	pipeline    pipeline.Pipeline
	files       FileRemover
	scratchDir  string
	serviceName string
	logger      logger.Logger
	now         func() time.Time
	newID       func() string
}

// NewRouter wires the service routes onto a gorilla/mux router.
func NewRouter(cfg *config.Config, pipe pipeline.Pipeline, files FileRemover, log logger.Logger) *mux.Router {
	h := &handler{
		pipeline:    pipe,
		files:       files,
		scratchDir:  cfg.Paths.Temp,
		serviceName: cfg.Server.ServiceName,
		logger:      log,
		now:         time.Now,
		newID:       uuid.NewString,
	}
	return h.routes()
}

func (h *handler) routes() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/health", h.health).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/summarize-audio", h.summarize).Methods(http.MethodPost)
	api.HandleFunc("/summarize-audio/docx", h.summarizeDocx).Methods(http.MethodPost)

	r.Use(h.logRequests)
	return r
}
