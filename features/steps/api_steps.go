//go:build integration

package steps

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"

	"github.com/nguyentantai21042004/audio-summary/internal/config"
	"github.com/nguyentantai21042004/audio-summary/internal/httpapi"
	"github.com/nguyentantai21042004/audio-summary/internal/logger"
	"github.com/nguyentantai21042004/audio-summary/internal/models"
	"github.com/nguyentantai21042004/audio-summary/internal/pipeline"
	"github.com/nguyentantai21042004/audio-summary/internal/pipeline/pipelinetest"

	"github.com/cucumber/godog"
)

// apiContext holds the fakes and the last response for one scenario
type apiContext struct {
	scratch     string
	recorder    *pipelinetest.Recorder
	fetcher     *pipelinetest.Fetcher
	transcriber *pipelinetest.Transcriber
	summarizer  *pipelinetest.Summarizer
	remover     *pipelinetest.Remover
	response    *httptest.ResponseRecorder
	body        map[string]any
}

var sharedAPIContext *apiContext

func InitializeAPIScenario(ctx *godog.ScenarioContext) {
	ctx.Before(func(c context.Context, sc *godog.Scenario) (context.Context, error) {
		scratch, err := os.MkdirTemp("", "audio-summary-features-")
		if err != nil {
			return c, err
		}
		rec := &pipelinetest.Recorder{}
		sharedAPIContext = &apiContext{
			scratch:     scratch,
			recorder:    rec,
			fetcher:     &pipelinetest.Fetcher{Recorder: rec},
			transcriber: &pipelinetest.Transcriber{Recorder: rec},
			summarizer:  &pipelinetest.Summarizer{Recorder: rec},
			remover:     &pipelinetest.Remover{Recorder: rec},
		}
		return c, nil
	})

	ctx.After(func(c context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		if sharedAPIContext != nil {
			os.RemoveAll(sharedAPIContext.scratch)
		}
		sharedAPIContext = nil
		return c, nil
	})

	ctx.Step(`^the video "([^"]*)" has title "([^"]*)"$`, theVideoHasTitle)
	ctx.Step(`^the audio downloads to "([^"]*)"$`, theAudioDownloadsTo)
	ctx.Step(`^the download fails with "([^"]*)"$`, theDownloadFailsWith)
	ctx.Step(`^the transcriber returns "([^"]*)"$`, theTranscriberReturns)
	ctx.Step(`^the transcriber fails with "([^"]*)"$`, theTranscriberFailsWith)
	ctx.Step(`^the summarizer returns "([^"]*)"$`, theSummarizerReturns)
	ctx.Step(`^I post to "([^"]*)" with body:$`, iPostToWithBody)
	ctx.Step(`^I get "([^"]*)"$`, iGet)
	ctx.Step(`^the response status should be (\d+)$`, theResponseStatusShouldBe)
	ctx.Step(`^the response field "([^"]*)" should be "([^"]*)"$`, theResponseFieldShouldBe)
	ctx.Step(`^the file "([^"]*)" should have been deleted (\d+) times?$`, theFileShouldHaveBeenDeleted)
	ctx.Step(`^the summarizer should not have been called$`, theSummarizerShouldNotHaveBeenCalled)
	ctx.Step(`^the transcriber should not have been called$`, theTranscriberShouldNotHaveBeenCalled)
	ctx.Step(`^no collaborator should have been called$`, noCollaboratorShouldHaveBeenCalled)
}

func theVideoHasTitle(url, title string) error {
	sharedAPIContext.fetcher.Metadata = models.VideoMetadata{Title: title}
	return nil
}

func theAudioDownloadsTo(path string) error {
	sharedAPIContext.fetcher.Path = path
	return nil
}

func theDownloadFailsWith(msg string) error {
	sharedAPIContext.fetcher.Path = ""
	sharedAPIContext.fetcher.Err = errors.New(msg)
	return nil
}

func theTranscriberReturns(text string) error {
	sharedAPIContext.transcriber.Text = text
	return nil
}

func theTranscriberFailsWith(msg string) error {
	sharedAPIContext.transcriber.Err = errors.New(msg)
	return nil
}

func theSummarizerReturns(text string) error {
	sharedAPIContext.summarizer.Text = text
	return nil
}

func (a *apiContext) serve(req *http.Request) error {
	cfg := &config.Config{}
	cfg.Paths.Temp = a.scratch
	if err := cfg.Validate(); err != nil {
		return err
	}

	log := logger.Nop()
	pipe := pipeline.New(a.scratch, a.fetcher, a.transcriber, a.summarizer, a.remover, log)
	router := httpapi.NewRouter(cfg, pipe, a.remover, log)

	a.response = httptest.NewRecorder()
	router.ServeHTTP(a.response, req)

	a.body = nil
	if strings.HasPrefix(a.response.Header().Get("Content-Type"), "application/json") {
		if err := json.Unmarshal(a.response.Body.Bytes(), &a.body); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

func iPostToWithBody(path string, body *godog.DocString) error {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body.Content))
	req.Header.Set("Content-Type", "application/json")
	return sharedAPIContext.serve(req)
}

func iGet(path string) error {
	return sharedAPIContext.serve(httptest.NewRequest(http.MethodGet, path, nil))
}

func theResponseStatusShouldBe(status int) error {
	if got := sharedAPIContext.response.Code; got != status {
		return fmt.Errorf("expected status %d, got %d (body %s)", status, got, sharedAPIContext.response.Body.String())
	}
	return nil
}

func theResponseFieldShouldBe(field, expected string) error {
	var value any = sharedAPIContext.body
	for _, key := range strings.Split(field, ".") {
		obj, ok := value.(map[string]any)
		if !ok {
			return fmt.Errorf("field %q: %v is not an object", field, value)
		}
		if value, ok = obj[key]; !ok {
			return fmt.Errorf("field %q not found in %v", field, sharedAPIContext.body)
		}
	}

	if got := fmt.Sprint(value); got != expected {
		return fmt.Errorf("field %q: expected %q, got %q", field, expected, got)
	}
	return nil
}

func theFileShouldHaveBeenDeleted(path string, times int) error {
	count := 0
	for _, p := range sharedAPIContext.remover.Deleted() {
		if p == path {
			count++
		}
	}
	if count != times {
		return fmt.Errorf("expected %s to be deleted %d time(s), got %d", path, times, count)
	}
	return nil
}

func theSummarizerShouldNotHaveBeenCalled() error {
	if n := sharedAPIContext.summarizer.Calls; n != 0 {
		return fmt.Errorf("expected no summarizer calls, got %d", n)
	}
	return nil
}

func theTranscriberShouldNotHaveBeenCalled() error {
	if n := sharedAPIContext.transcriber.Calls; n != 0 {
		return fmt.Errorf("expected no transcriber calls, got %d", n)
	}
	return nil
}

func noCollaboratorShouldHaveBeenCalled() error {
	if calls := sharedAPIContext.recorder.Calls(); len(calls) != 0 {
		return fmt.Errorf("expected no collaborator calls, got %v", calls)
	}
	return nil
}
