package export

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestThumbnailFallbackOrder(t *testing.T) {
	var requested []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requested = append(requested, r.URL.Path)
		if strings.HasSuffix(r.URL.Path, "hqdefault.jpg") {
			w.Write([]byte("jpeg-bytes"))
			return
		}
		http.NotFound(w, r)
	}))
	defer srv.Close()

	f := NewThumbnailFetcher()
	f.SetBaseURL(srv.URL)

	outdir := t.TempDir()
	path, err := f.Download(context.Background(), "dQw4w9WgXcQ", outdir)
	if err != nil {
		t.Fatalf("Download returned error: %v", err)
	}

	want := filepath.Join(outdir, "dQw4w9WgXcQ.jpg")
	if path != want {
		t.Errorf("Expected %s, got %s", want, path)
	}
	data, err := os.ReadFile(path)
	if err != nil || string(data) != "jpeg-bytes" {
		t.Errorf("Unexpected thumbnail contents: %q (%v)", data, err)
	}

	wantOrder := []string{
		"/dQw4w9WgXcQ/maxresdefault.jpg",
		"/dQw4w9WgXcQ/sddefault.jpg",
		"/dQw4w9WgXcQ/hqdefault.jpg",
	}
	if len(requested) != len(wantOrder) {
		t.Fatalf("Expected %d requests, got %d: %v", len(wantOrder), len(requested), requested)
	}
	for i, p := range wantOrder {
		if requested[i] != p {
			t.Errorf("Request %d = %s, want %s", i, requested[i], p)
		}
	}
}

func TestThumbnailAllVariantsMissing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	f := NewThumbnailFetcher()
	f.SetBaseURL(srv.URL)

	if _, err := f.Download(context.Background(), "dQw4w9WgXcQ", t.TempDir()); err == nil {
		t.Error("Expected error when no thumbnail variant exists")
	}
}

func TestExportTags(t *testing.T) {
	outdir := t.TempDir()

	first := []TagRecord{
		{VideoID: "a", Title: `Quoted "Title"`, Tags: []string{"music", "live"}},
	}
	if err := ExportTags(first, outdir); err != nil {
		t.Fatalf("ExportTags returned error: %v", err)
	}

	second := []TagRecord{
		{VideoID: "b", Title: "Plain", Tags: nil},
	}
	if err := ExportTags(second, outdir); err != nil {
		t.Fatalf("ExportTags returned error: %v", err)
	}

	csvData, err := os.ReadFile(filepath.Join(outdir, TagsCSVName))
	if err != nil {
		t.Fatalf("Failed to read tags.csv: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(csvData)), "\n")
	if len(lines) != 3 {
		t.Fatalf("Expected header + 2 rows, got %d lines: %q", len(lines), lines)
	}
	if lines[0] != "videoId,title,tags" {
		t.Errorf("Unexpected header: %q", lines[0])
	}
	if !strings.Contains(lines[1], `"Quoted ""Title"""`) {
		t.Errorf("Expected quoted title escaping, got %q", lines[1])
	}
	if !strings.Contains(lines[1], `music,live`) {
		t.Errorf("Expected joined tags, got %q", lines[1])
	}

	jsonData, err := os.ReadFile(filepath.Join(outdir, TagsJSONName))
	if err != nil {
		t.Fatalf("Failed to read tags.json: %v", err)
	}
	var records []TagRecord
	if err := json.Unmarshal(jsonData, &records); err != nil {
		t.Fatalf("Failed to parse tags.json: %v", err)
	}
	if len(records) != 2 || records[0].VideoID != "a" || records[1].VideoID != "b" {
		t.Errorf("Unexpected merged records: %+v", records)
	}
}
