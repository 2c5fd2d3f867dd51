package batch

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/HulkBetii/YT-AllInOne/internal/convert"
	"github.com/HulkBetii/YT-AllInOne/internal/cookies"
	"github.com/HulkBetii/YT-AllInOne/internal/model"
	"github.com/HulkBetii/YT-AllInOne/internal/platform"
	"github.com/HulkBetii/YT-AllInOne/internal/selector"
)

// Options configures one batch run. Quality and Browser are validated before
// any URL is attempted.
type Options struct {
	Quality   string
	Browser   string
	OutputDir string
	Convert   string // post-processing target format, empty for none
	Parallel  int    // worker pool size, <=1 runs sequentially
}

// Orchestrator runs batches of download requests against the external tool
// boundaries. The resolved cookie source and stream selector are fixed,
// read-only values shared by all workers of a batch.
type Orchestrator struct {
	downloader Downloader
	converter  Converter
	resolver   *cookies.Resolver
	log        *logrus.Logger
}

// New creates a batch orchestrator. A nil logger discards output.
func New(downloader Downloader, converter Converter, log *logrus.Logger) *Orchestrator {
	if log == nil {
		log = logrus.New()
		log.SetLevel(logrus.PanicLevel)
	}
	return &Orchestrator{
		downloader: downloader,
		converter:  converter,
		resolver:   &cookies.Resolver{},
		log:        log,
	}
}

// SetResolver replaces the cookie resolver, mainly for tests.
func (o *Orchestrator) SetResolver(r *cookies.Resolver) {
	if r != nil {
		o.resolver = r
	}
}

// Run processes urls in input order and returns one outcome per URL, order
// matching input order. It fails only for a batch-invalid configuration,
// before any URL is attempted; a single URL's failure never aborts the batch.
func (o *Orchestrator) Run(ctx context.Context, urls []string, opts Options) (model.BatchResult, error) {
	format, err := selector.Select(opts.Quality)
	if err != nil {
		return model.BatchResult{}, err
	}

	src, err := o.resolver.Resolve(opts.Browser)
	if err != nil {
		if !model.IsCookieLocked(err) {
			return model.BatchResult{}, err
		}
		// The browser holds its cookie database open; demote the whole
		// batch to no-cookie mode rather than fail it.
		o.log.WithField("browser", opts.Browser).Warn("cookie database locked, continuing without cookies")
		src = cookies.NoCookies
	}

	if opts.Convert != "" && !convert.IsSupported(opts.Convert) {
		return model.BatchResult{}, model.NewDownloadError(
			model.ErrorKindInvalidConfiguration,
			"unsupported post-processing format: "+opts.Convert,
			"",
		)
	}

	if err := platform.CreateDirectoryIfNotExists(opts.OutputDir); err != nil {
		return model.BatchResult{}, model.NewDownloadError(
			model.ErrorKindInvalidConfiguration,
			"cannot create output directory: "+err.Error(),
			"",
		)
	}

	result := model.BatchResult{
		ID:       generateBatchID(),
		Outcomes: make([]model.DownloadOutcome, len(urls)),
	}

	o.log.WithFields(logrus.Fields{
		"batch":   result.ID,
		"urls":    len(urls),
		"quality": opts.Quality,
		"cookies": src.Browser,
	}).Info("starting batch")

	if opts.Parallel <= 1 {
		for i, url := range urls {
			result.Outcomes[i] = o.attempt(ctx, url, format, src, opts)
		}
	} else {
		o.runPool(ctx, urls, format, src, opts, result.Outcomes)
	}

	o.log.WithFields(logrus.Fields{
		"batch":  result.ID,
		"failed": result.FailedCount(),
	}).Info("batch finished")
	return result, nil
}

// runPool distributes URLs over a bounded worker pool. Outcomes are written
// by input index, so the returned order never depends on completion order,
// and one worker's failure never cancels its siblings.
func (o *Orchestrator) runPool(ctx context.Context, urls []string, format string, src cookies.Source, opts Options, outcomes []model.DownloadOutcome) {
	type job struct {
		idx int
		url string
	}

	jobs := make(chan job)
	var wg sync.WaitGroup
	for w := 0; w < opts.Parallel; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				outcomes[j.idx] = o.attempt(ctx, j.url, format, src, opts)
			}
		}()
	}

	for i, url := range urls {
		jobs <- job{idx: i, url: url}
	}
	close(jobs)
	wg.Wait()
}

// attempt is the atomic unit of work for one URL: the cookie-bound download,
// the single no-cookie retry when the cookie database turns out to be locked,
// and optional post-processing.
func (o *Orchestrator) attempt(ctx context.Context, url, format string, src cookies.Source, opts Options) model.DownloadOutcome {
	outcome := model.DownloadOutcome{
		Request: model.DownloadRequest{
			URL:          url,
			Quality:      opts.Quality,
			CookieSource: src.Browser,
			OutputDir:    opts.OutputDir,
		},
	}

	path, err := o.downloader.Download(ctx, url, format, src, opts.OutputDir)
	if err != nil && !src.None() && model.IsCookieLocked(err) {
		// Exactly one retry without cookies; the fallback is recorded even
		// if the retry fails too.
		outcome.UsedCookieFallback = true
		o.log.WithField("url", url).Warn("cookie database locked, retrying without cookies")
		path, err = o.downloader.Download(ctx, url, format, cookies.NoCookies, opts.OutputDir)
	}

	if err != nil {
		outcome.Status = model.OutcomeFailed
		outcome.ErrorKind = model.KindOf(err)
		outcome.Err = err.Error()
		return outcome
	}

	if opts.Convert != "" {
		converted, cerr := o.converter.Convert(ctx, path, opts.Convert)
		if cerr != nil {
			// The raw download is not a usable final artifact when the
			// requested conversion failed.
			outcome.Status = model.OutcomeFailed
			outcome.ErrorKind = model.ErrorKindPostProcessingFailed
			outcome.Err = cerr.Error()
			return outcome
		}
		path = converted
	}

	outcome.Status = model.OutcomeSucceeded
	outcome.OutputPath = path
	return outcome
}

// generateBatchID generates a unique batch ID using UUID v7 for better
// uniqueness and time ordering.
func generateBatchID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Sprintf("batch-%d", time.Now().UnixNano())
	}
	return "batch-" + id.String()
}
