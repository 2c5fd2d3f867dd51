package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/HulkBetii/YT-AllInOne/internal/batch"
	"github.com/HulkBetii/YT-AllInOne/internal/config"
	"github.com/HulkBetii/YT-AllInOne/internal/convert"
	"github.com/HulkBetii/YT-AllInOne/internal/cookies"
	"github.com/HulkBetii/YT-AllInOne/internal/export"
	"github.com/HulkBetii/YT-AllInOne/internal/fetch"
	"github.com/HulkBetii/YT-AllInOne/internal/listing"
	"github.com/HulkBetii/YT-AllInOne/internal/model"
	"github.com/HulkBetii/YT-AllInOne/internal/selector"
	"github.com/HulkBetii/YT-AllInOne/internal/urlparse"
)

type getOptions struct {
	quality     string
	outDir      string
	browser     string
	audioFormat string
	onlyShorts  bool
	onlyRegular bool
	limit       int
	parallel    int
	thumbs      bool
	exportTags  bool
	dryRun      bool
}

var getOpts getOptions

var getCmd = &cobra.Command{
	Use:   "get <url|@handle>...",
	Short: "Download videos, playlists or channel uploads",
	Long: `Download one or more YouTube inputs. Each argument may be a video URL,
a youtu.be short link, a /shorts/ URL, a playlist URL or a /channel/UC… URL.
Playlists and channels are expanded into their videos before downloading.

Quality presets: ` + strings.Join(selector.Labels(), ", ") + `
Cookie sources: ` + strings.Join(cookies.Browsers(), ", "),
	Args: cobra.MinimumNArgs(1),
	RunE: runGet,
}

func init() {
	f := getCmd.Flags()
	f.StringVarP(&getOpts.quality, "quality", "q", "", "quality preset (default from settings)")
	f.StringVarP(&getOpts.outDir, "out", "o", "", "output directory (default from settings)")
	f.StringVarP(&getOpts.browser, "cookies-from-browser", "c", "", "browser to read cookies from, or 'none'")
	f.StringVarP(&getOpts.audioFormat, "audio-format", "a", "", "convert downloads to mp3, m4a or mp4")
	f.BoolVar(&getOpts.onlyShorts, "only-shorts", false, "keep only Shorts when expanding playlists/channels")
	f.BoolVar(&getOpts.onlyRegular, "only-regular", false, "skip Shorts when expanding playlists/channels")
	f.IntVarP(&getOpts.limit, "limit", "n", 0, "download at most N videos per expanded input (0 = all)")
	f.IntVarP(&getOpts.parallel, "parallel", "p", 0, "concurrent downloads (default from settings)")
	f.BoolVar(&getOpts.thumbs, "thumb", false, "also save video thumbnails")
	f.BoolVar(&getOpts.exportTags, "export-tags", false, "append video metadata to tags.csv and tags.json")
	f.BoolVar(&getOpts.dryRun, "dry-run", false, "list what would be downloaded without downloading")
}

func runGet(cmd *cobra.Command, args []string) error {
	if getOpts.onlyShorts && getOpts.onlyRegular {
		return fmt.Errorf("--only-shorts and --only-regular are mutually exclusive")
	}

	settings, err := config.Load()
	if err != nil {
		log.WithError(err).Warn("could not load settings, using defaults")
	}
	opts := resolveOptions(settings)

	entries, err := expandInputs(cmd, args)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		return fmt.Errorf("no videos matched the given inputs and filters")
	}

	if getOpts.dryRun {
		for _, e := range entries {
			if e.Title != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", e.URL, e.Title)
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), e.URL)
			}
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%d video(s) would be downloaded\n", len(entries))
		return nil
	}

	urls := make([]string, len(entries))
	for i, e := range entries {
		urls[i] = e.URL
	}

	client := fetch.NewClient(log)
	if opts.Parallel <= 1 {
		// Interleaved progress lines from concurrent workers are unreadable;
		// the live printer is sequential-mode only.
		client.SetProgressCallback(progressPrinter(cmd.ErrOrStderr()))
	}

	orchestrator := batch.New(client, convert.NewService(log), log)
	result, err := orchestrator.Run(cmd.Context(), urls, opts)
	if err != nil {
		return err
	}

	printOutcomes(cmd, result)
	runExports(cmd, entries, result)

	if !result.AllSucceeded() {
		return fmt.Errorf("%d of %d downloads failed", result.FailedCount(), len(result.Outcomes))
	}
	return nil
}

// progressPrinter renders live task updates on a single rewritten line.
func progressPrinter(out io.Writer) func(*model.DownloadTask) {
	return func(task *model.DownloadTask) {
		switch {
		case task.Status.IsFinished():
			fmt.Fprintf(out, "\r%-48s %s\n", task.GetDisplayTitle(), task.Status)
		case task.Status.IsActive():
			fmt.Fprintf(out, "\r%-48s %3d%%  %-10s ETA %s", task.GetDisplayTitle(), task.Percent, task.Speed, task.GetETAString())
		}
	}
}

// resolveOptions merges persisted settings with command-line flags; flags win.
func resolveOptions(settings *config.Settings) batch.Options {
	opts := batch.Options{
		Quality:   settings.Quality,
		Browser:   settings.Browser,
		OutputDir: settings.DownloadDir,
		Convert:   getOpts.audioFormat,
		Parallel:  settings.MaxParallel,
	}
	if getOpts.quality != "" {
		opts.Quality = getOpts.quality
	}
	if getOpts.browser != "" {
		opts.Browser = getOpts.browser
	}
	if getOpts.outDir != "" {
		opts.OutputDir = getOpts.outDir
	}
	if getOpts.parallel > 0 {
		opts.Parallel = getOpts.parallel
	}
	return opts
}

// expandInputs parses each argument and expands playlists and channels into
// their videos, applying the Shorts filter and per-input limit.
func expandInputs(cmd *cobra.Command, args []string) ([]listing.Entry, error) {
	var filter listing.Filter
	switch {
	case getOpts.onlyShorts:
		filter = listing.IsShorts
	case getOpts.onlyRegular:
		filter = listing.IsRegular
	}

	lister := listing.NewService()
	var entries []listing.Entry
	for _, arg := range args {
		parsed, err := urlparse.Parse(arg)
		if err != nil {
			return nil, err
		}
		expanded, err := lister.Expand(cmd.Context(), parsed, filter, getOpts.limit)
		if err != nil {
			return nil, err
		}
		entries = append(entries, expanded...)
	}
	return entries, nil
}

func printOutcomes(cmd *cobra.Command, result model.BatchResult) {
	out := cmd.OutOrStdout()
	for _, o := range result.Outcomes {
		switch {
		case o.Succeeded() && o.UsedCookieFallback:
			fmt.Fprintf(out, "ok (no-cookie retry)  %s\n", o.OutputPath)
		case o.Succeeded():
			fmt.Fprintf(out, "ok    %s\n", o.OutputPath)
		default:
			fmt.Fprintf(out, "FAIL  [%s] %s: %s\n", o.ErrorKind, o.Request.URL, o.Err)
		}
	}
	fmt.Fprintf(out, "%d succeeded, %d failed\n",
		len(result.Outcomes)-result.FailedCount(), result.FailedCount())
}

// runExports saves thumbnails and tag metadata for successfully downloaded
// entries. Export failures are logged, never fatal.
func runExports(cmd *cobra.Command, entries []listing.Entry, result model.BatchResult) {
	if !getOpts.thumbs && !getOpts.exportTags {
		return
	}

	var records []export.TagRecord
	fetcher := export.NewThumbnailFetcher()
	for i, o := range result.Outcomes {
		if !o.Succeeded() || i >= len(entries) {
			continue
		}
		id := entries[i].ID
		if id == "" {
			id = videoIDFromURL(entries[i].URL)
		}
		if id == "" {
			continue
		}

		if getOpts.thumbs {
			if _, err := fetcher.Download(cmd.Context(), id, o.Request.OutputDir); err != nil {
				log.WithError(err).WithField("video", id).Warn("thumbnail export failed")
			}
		}
		if getOpts.exportTags {
			records = append(records, export.TagRecord{VideoID: id, Title: entries[i].Title})
		}
	}

	if len(records) > 0 {
		if err := export.ExportTags(records, result.Outcomes[0].Request.OutputDir); err != nil {
			log.WithError(err).Warn("tag export failed")
		}
	}
}

// videoIDFromURL pulls the 11-character video ID out of a canonical URL.
func videoIDFromURL(url string) string {
	for _, marker := range []string{"watch?v=", "/shorts/", "youtu.be/"} {
		if idx := strings.Index(url, marker); idx >= 0 {
			id := url[idx+len(marker):]
			for _, sep := range []string{"&", "?", "/", "#"} {
				if cut := strings.Index(id, sep); cut >= 0 {
					id = id[:cut]
				}
			}
			if len(id) == 11 {
				return id
			}
		}
	}
	return ""
}
