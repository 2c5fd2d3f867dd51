package platform

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestCreateDirectoryIfNotExists(t *testing.T) {
	base := t.TempDir()
	target := filepath.Join(base, "nested", "downloads")

	if err := CreateDirectoryIfNotExists(target); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	info, err := os.Stat(target)
	if err != nil {
		t.Fatalf("Expected directory to exist, got %v", err)
	}
	if !info.IsDir() {
		t.Error("Expected a directory")
	}

	// Second call on an existing directory is a no-op.
	if err := CreateDirectoryIfNotExists(target); err != nil {
		t.Errorf("Expected no error for existing directory, got %v", err)
	}
}

func TestGetHomeDownloadsDir(t *testing.T) {
	dir, err := GetHomeDownloadsDir()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if filepath.Base(dir) != "Downloads" {
		t.Errorf("Expected a Downloads directory, got %s", dir)
	}
}

func TestCommandExists(t *testing.T) {
	if CommandExists("definitely-not-a-real-binary-name") {
		t.Error("Expected missing binary to be reported as absent")
	}
}

func TestFindNewestFile(t *testing.T) {
	dir := t.TempDir()
	since := time.Now().Add(-time.Minute)

	write := func(name string) string {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
		return path
	}

	write("older.mp4")
	write("video.mp4.part")
	write("video.mp4.ytdl")
	newest := write("newest.webm")
	if err := os.Chtimes(newest, time.Now(), time.Now().Add(time.Second)); err != nil {
		t.Fatal(err)
	}

	got, err := FindNewestFile(dir, since)
	if err != nil {
		t.Fatalf("FindNewestFile returned error: %v", err)
	}
	if got != newest {
		t.Errorf("Expected %s, got %s", newest, got)
	}
}

func TestFindNewestFileNothingNewer(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "old.mp4")
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	past := time.Now().Add(-2 * time.Hour)
	if err := os.Chtimes(path, past, past); err != nil {
		t.Fatal(err)
	}

	if _, err := FindNewestFile(dir, time.Now()); err == nil {
		t.Error("Expected error when no file is newer than the cutoff")
	}
}
