package fetch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/lrstanley/go-ytdlp"
	"github.com/sirupsen/logrus"

	"github.com/HulkBetii/YT-AllInOne/internal/cookies"
	"github.com/HulkBetii/YT-AllInOne/internal/model"
	"github.com/HulkBetii/YT-AllInOne/internal/platform"
)

// DefaultOutputTemplate names downloaded files by video title.
const DefaultOutputTemplate = "%(title)s.%(ext)s"

const progressInterval = 500 * time.Millisecond

// Client downloads single videos through yt-dlp.
type Client struct {
	outputTemplate string
	log            *logrus.Logger
	onProgress     func(*model.DownloadTask) // callback for progress updates
}

// NewClient creates a download client. A nil logger discards output.
func NewClient(log *logrus.Logger) *Client {
	if log == nil {
		log = logrus.New()
		log.SetLevel(logrus.PanicLevel)
	}
	return &Client{
		outputTemplate: DefaultOutputTemplate,
		log:            log,
	}
}

// SetProgressCallback sets the callback invoked with progress updates.
func (c *Client) SetProgressCallback(cb func(*model.DownloadTask)) {
	c.onProgress = cb
}

func (c *Client) emit(task *model.DownloadTask) {
	if c.onProgress != nil {
		c.onProgress(task)
	}
}

// Download fetches one URL with the given stream-format expression and cookie
// source into outputDir, returning the path of the downloaded file. Failures
// are classified into the error taxonomy.
func (c *Client) Download(ctx context.Context, url, format string, src cookies.Source, outputDir string) (string, error) {
	dl := ytdlp.New().
		Continue().
		NoOverwrites().
		RestrictFilenames().
		NoPlaylist().
		Format(format).
		Output(filepath.Join(outputDir, c.outputTemplate))

	if !src.None() {
		dl = dl.CookiesFromBrowser(src.Browser)
	}

	task := &model.DownloadTask{
		URL:       url,
		Status:    model.TaskStatusPending,
		ETASec:    -1,
		StartedAt: time.Now(),
	}
	dl.ProgressFunc(progressInterval, func(update ytdlp.ProgressUpdate) {
		c.updateProgress(task, &update)
	})

	c.log.WithFields(logrus.Fields{
		"url":     url,
		"format":  format,
		"cookies": src.Browser,
	}).Info("starting download")
	task.Status = model.TaskStatusStarting
	c.emit(task)

	result, err := dl.Run(ctx, url)
	if err != nil {
		classified := Classify(err)
		c.log.WithFields(logrus.Fields{
			"url":  url,
			"kind": classified.Kind,
		}).Error(classified.Message)
		task.Status = model.TaskStatusError
		task.LastError = classified.Message
		task.FinishedAt = time.Now()
		c.emit(task)
		return "", classified
	}

	path, err := outputPath(result, outputDir, task.StartedAt)
	if err != nil {
		return "", err
	}
	task.Status = model.TaskStatusCompleted
	task.OutputPath = path
	task.Progress = 1.0
	task.Percent = 100
	task.FinishedAt = time.Now()
	c.emit(task)

	c.log.WithFields(logrus.Fields{
		"url":  url,
		"path": path,
	}).Info("download finished")
	return path, nil
}

// updateProgress converts a yt-dlp progress update into task fields and
// forwards it to the callback.
func (c *Client) updateProgress(task *model.DownloadTask, update *ytdlp.ProgressUpdate) {
	task.Status = model.TaskStatusDownloading
	if update.TotalBytes > 0 {
		percent := float64(update.DownloadedBytes) / float64(update.TotalBytes) * 100
		task.Percent = int(percent)
		task.Progress = percent / 100.0
	}

	if !update.Started.IsZero() {
		elapsed := time.Since(update.Started)
		if elapsed.Seconds() > 0 {
			bytesPerSecond := float64(update.DownloadedBytes) / elapsed.Seconds()
			task.Speed = fmt.Sprintf("%.1fMB/s", bytesPerSecond/1024/1024)
		}
	}

	eta := update.ETA()
	if eta > 0 {
		task.ETASec = int(eta.Seconds())
	}

	if update.Info != nil && update.Info.Title != nil && *update.Info.Title != "" && task.Title == "" {
		task.Title = *update.Info.Title
	}

	c.emit(task)
}

// outputPath extracts the downloaded file path from the yt-dlp result, falling
// back to the newest file written into outputDir since the download started.
func outputPath(result *ytdlp.Result, outputDir string, started time.Time) (string, error) {
	if result != nil {
		info, err := result.GetExtractedInfo()
		if err == nil && len(info) > 0 && info[0].Filename != nil && *info[0].Filename != "" {
			return *info[0].Filename, nil
		}
	}

	if path, err := platform.FindNewestFile(outputDir, started); err == nil {
		return path, nil
	}
	return "", model.NewDownloadError(model.ErrorKindUnknown,
		"download finished but the output file could not be determined", "")
}
