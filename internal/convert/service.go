package convert

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/HulkBetii/YT-AllInOne/internal/model"
)

// FFmpeg constants for conversion settings
const (
	// Video codec settings (mp4 target)
	VideoCodec  = "libx264"
	VideoPreset = "medium"
	VideoCRF    = "23"

	// Audio codec settings
	AudioCodecAAC   = "aac"
	AudioBitrateAAC = "192k"
	AudioCodecMP3   = "libmp3lame"
	MP3Quality      = "0" // V0

	// Container flags
	FastStartFlag = "+faststart"

	// Executables
	FFmpegCommand  = "ffmpeg"
	FFprobeCommand = "ffprobe"
)

// Target formats accepted by Convert.
const (
	FormatMP3 = "mp3"
	FormatM4A = "m4a"
	FormatMP4 = "mp4"
)

// runFunc executes an external binary and returns its stdout; the error's
// text carries the binary's stderr. Swappable for tests.
type runFunc func(ctx context.Context, name string, args ...string) ([]byte, error)

// Service invokes the ffmpeg binary to convert downloaded files. Conversion
// is deterministic for a given input, so a failed attempt is never retried.
type Service struct {
	log *logrus.Logger
	run runFunc
}

// NewService creates a conversion service. A nil logger discards output.
func NewService(log *logrus.Logger) *Service {
	if log == nil {
		log = logrus.New()
		log.SetLevel(logrus.PanicLevel)
	}
	return &Service{log: log, run: runCommand}
}

// SupportedFormats returns the accepted target formats.
func SupportedFormats() []string {
	return []string{FormatMP3, FormatM4A, FormatMP4}
}

// IsSupported reports whether format is a valid conversion target.
func IsSupported(format string) bool {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case FormatMP3, FormatM4A, FormatMP4:
		return true
	}
	return false
}

// Convert transcodes inputPath into the desired format next to the input and
// returns the output path. A single attempt only; failures carry the binary's
// diagnostic text as PostProcessingFailed.
func (s *Service) Convert(ctx context.Context, inputPath, format string) (string, error) {
	format = strings.ToLower(strings.TrimSpace(format))
	if !IsSupported(format) {
		return "", failed("unsupported target format: "+format,
			"supported: "+strings.Join(SupportedFormats(), "|"))
	}

	for _, tool := range []string{FFmpegCommand, FFprobeCommand} {
		if _, err := exec.LookPath(tool); err != nil {
			return "", failed(tool+" not found in PATH", "install ffmpeg and add it to PATH")
		}
	}

	outputPath := OutputPathFor(inputPath, format)
	args := BuildFFmpegArgs(inputPath, outputPath, format)

	s.log.WithFields(logrus.Fields{
		"input":  inputPath,
		"output": outputPath,
		"format": format,
	}).Info("starting conversion")

	if _, err := s.run(ctx, FFmpegCommand, args...); err != nil {
		return "", failed(err.Error(), "check the ffmpeg installation and the input file")
	}

	if err := s.verify(ctx, outputPath, format); err != nil {
		return "", err
	}

	s.log.WithField("output", outputPath).Info("conversion finished")
	return outputPath, nil
}

// BuildFFmpegArgs builds the ffmpeg command arguments for the target format.
func BuildFFmpegArgs(inputPath, outputPath, format string) []string {
	args := []string{
		"-y",
		"-i", inputPath,
	}

	switch format {
	case FormatMP3:
		args = append(args,
			"-vn",
			"-acodec", AudioCodecMP3,
			"-q:a", MP3Quality,
		)
	case FormatM4A:
		args = append(args,
			"-vn",
			"-acodec", AudioCodecAAC,
			"-b:a", AudioBitrateAAC,
		)
	case FormatMP4:
		args = append(args,
			"-c:v", VideoCodec,
			"-preset", VideoPreset,
			"-crf", VideoCRF,
			"-c:a", AudioCodecAAC,
			"-b:a", "128k",
			"-movflags", FastStartFlag,
		)
	}

	return append(args, "-nostats", outputPath)
}

// OutputPathFor derives the conversion output path from the input path.
func OutputPathFor(inputPath, format string) string {
	ext := filepath.Ext(inputPath)
	return strings.TrimSuffix(inputPath, ext) + "." + format
}

// verify probes the produced file and checks it carries a stream of the
// expected codec type.
func (s *Service) verify(ctx context.Context, outputPath, format string) error {
	out, err := s.run(ctx, FFprobeCommand,
		"-v", "error",
		"-print_format", "json",
		"-show_format",
		"-show_streams",
		outputPath,
	)
	if err != nil {
		return failed("output verification failed: "+err.Error(), "")
	}

	var probe struct {
		Streams []struct {
			CodecType string `json:"codec_type"`
			CodecName string `json:"codec_name"`
		} `json:"streams"`
	}
	if err := json.Unmarshal(out, &probe); err != nil {
		return failed("output verification failed: "+err.Error(), "")
	}

	wantType, wantCodec := "audio", format
	if format == FormatMP4 {
		wantType, wantCodec = "video", "h264"
	}
	if format == FormatM4A {
		wantCodec = AudioCodecAAC
	}
	for _, st := range probe.Streams {
		if st.CodecType == wantType && st.CodecName == wantCodec {
			return nil
		}
	}
	return failed(fmt.Sprintf("output verification failed: no %s %s stream in %s", wantCodec, wantType, outputPath), "")
}

func failed(message, hint string) error {
	return model.NewDownloadError(model.ErrorKindPostProcessingFailed, message, hint)
}

// runCommand executes the binary, surfacing stderr in the error text.
func runCommand(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		diag := strings.TrimSpace(stderr.String())
		if diag == "" {
			diag = err.Error()
		}
		return nil, fmt.Errorf("%s failed: %s", name, diag)
	}
	return stdout.Bytes(), nil
}
