package fetch

import (
	"testing"
	"time"

	"github.com/lrstanley/go-ytdlp"

	"github.com/HulkBetii/YT-AllInOne/internal/model"
)

func TestUpdateProgressMarksTaskDownloading(t *testing.T) {
	c := NewClient(nil)
	var got *model.DownloadTask
	c.SetProgressCallback(func(task *model.DownloadTask) { got = task })

	task := &model.DownloadTask{
		URL:       "https://youtu.be/aaaaaaaaaaa",
		Status:    model.TaskStatusStarting,
		ETASec:    -1,
		StartedAt: time.Now(),
	}
	c.updateProgress(task, &ytdlp.ProgressUpdate{
		TotalBytes:      100,
		DownloadedBytes: 50,
		Started:         time.Now().Add(-time.Second),
	})

	if got == nil {
		t.Fatal("Expected the progress callback to be invoked")
	}
	if got.Status != model.TaskStatusDownloading {
		t.Errorf("Expected Downloading status, got %v", got.Status)
	}
	if got.Percent != 50 {
		t.Errorf("Expected 50 percent, got %d", got.Percent)
	}
	if got.Speed == "" {
		t.Error("Expected a speed estimate")
	}
}

func TestEmitWithoutCallback(t *testing.T) {
	c := NewClient(nil)
	// Must not panic when no callback is registered.
	c.emit(&model.DownloadTask{Status: model.TaskStatusCompleted})
}
