package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Output filenames
const (
	TagsCSVName  = "tags.csv"
	TagsJSONName = "tags.json"
)

// TagRecord is one exported row: a video and its tags.
type TagRecord struct {
	VideoID string   `json:"videoId"`
	Title   string   `json:"title"`
	Tags    []string `json:"tags"`
}

// ExportTags appends records to tags.csv and merges them into tags.json in
// outdir. Both files accumulate across runs.
func ExportTags(records []TagRecord, outdir string) error {
	if err := os.MkdirAll(outdir, 0755); err != nil {
		return fmt.Errorf("failed to create export directory: %w", err)
	}

	if err := appendCSV(records, filepath.Join(outdir, TagsCSVName)); err != nil {
		return err
	}
	return mergeJSON(records, filepath.Join(outdir, TagsJSONName))
}

func appendCSV(records []TagRecord, path string) error {
	_, statErr := os.Stat(path)
	writeHeader := os.IsNotExist(statErr)

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if writeHeader {
		if err := w.Write([]string{"videoId", "title", "tags"}); err != nil {
			return err
		}
	}
	for _, r := range records {
		if err := w.Write([]string{r.VideoID, r.Title, strings.Join(r.Tags, ",")}); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func mergeJSON(records []TagRecord, path string) error {
	var existing []TagRecord
	if data, err := os.ReadFile(path); err == nil {
		// Ignore a corrupt file and start over rather than fail the export.
		_ = json.Unmarshal(data, &existing)
	}

	existing = append(existing, records...)
	data, err := json.MarshalIndent(existing, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
