package model

import "testing"

func TestGetETAString(t *testing.T) {
	tests := []struct {
		name   string
		etaSec int
		want   string
	}{
		{"unknown", -1, "—"},
		{"zero", 0, "—"},
		{"seconds only", 42, "00:42"},
		{"minutes", 125, "02:05"},
		{"hours", 3725, "01:02:05"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task := &DownloadTask{ETASec: tt.etaSec}
			if got := task.GetETAString(); got != tt.want {
				t.Errorf("GetETAString() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGetDisplayTitle(t *testing.T) {
	tests := []struct {
		name string
		task DownloadTask
		want string
	}{
		{
			"prefers title",
			DownloadTask{Title: "Some Video", OutputPath: "/tmp/file.mp4", URL: "https://youtu.be/x"},
			"Some Video",
		},
		{
			"skips url-like title",
			DownloadTask{Title: "https://youtu.be/x", OutputPath: "/tmp/downloads/My_Clip.mp4"},
			"My_Clip",
		},
		{
			"falls back to filename without extension",
			DownloadTask{OutputPath: "/tmp/downloads/My_Clip.mp4"},
			"My_Clip",
		},
		{
			"windows separators",
			DownloadTask{OutputPath: `C:\Users\me\Downloads\Clip.mp4`},
			"Clip",
		},
		{
			"falls back to url",
			DownloadTask{URL: "https://www.youtube.com/watch?v=abc"},
			"https://www.youtube.com/watch?v=abc",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.task.GetDisplayTitle(); got != tt.want {
				t.Errorf("GetDisplayTitle() = %q, want %q", got, tt.want)
			}
		})
	}
}
