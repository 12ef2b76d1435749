package service

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/audiolibrelab/mediatools/internal/config"
	"github.com/audiolibrelab/mediatools/internal/imageconv"
	"github.com/audiolibrelab/mediatools/internal/play"
	"github.com/audiolibrelab/mediatools/internal/wave"
)

// Service represents the operations exposed to the command line
type Service interface {
	// Wave operations
	GenerateWave(params wave.Params, fileName string) (*WaveInfo, error)
	Play(path string) error

	// Image operations
	ConvertImage(req imageconv.Request) (*imageconv.Result, error)
	DescribeImage(path string) (*ImageInfo, error)

	// Configuration operations
	GetConfig() *config.Config
}

// WaveInfo describes a generated wave file
type WaveInfo struct {
	Path       string  `json:"path" yaml:"path"`
	Frequency  int     `json:"frequency" yaml:"frequency"`
	SampleRate int     `json:"sample_rate" yaml:"sample_rate"`
	Samples    int     `json:"samples" yaml:"samples"`
	Seconds    float64 `json:"seconds" yaml:"seconds"`
}

// ImageInfo contains the resolved conversion targets for a source image
type ImageInfo struct {
	Path          string        `json:"path" yaml:"path"`
	Format        string        `json:"format" yaml:"format"`
	Width         int           `json:"width" yaml:"width"`
	Height        int           `json:"height" yaml:"height"`
	Frames        int           `json:"frames" yaml:"frames"`
	HasBackground bool          `json:"has_background" yaml:"has_background"`
	Outputs       []OutputInfo  `json:"outputs" yaml:"outputs"`
	Policy        config.Policy `json:"policy" yaml:"policy"`
}

// OutputInfo describes the file a single target format would produce
type OutputInfo struct {
	Format       string `json:"format" yaml:"format"`
	Path         string `json:"path" yaml:"path"`
	Exists       bool   `json:"exists" yaml:"exists"`
	Transparency bool   `json:"transparency" yaml:"transparency"`
	// Rejected is set when the policy would refuse this target for the source
	Rejected bool `json:"rejected" yaml:"rejected"`
}

// MediaService is the main service implementation
type MediaService struct {
	cfg       *config.Config
	converter *imageconv.Converter
	player    *play.Player
}

// New creates a new service instance
func New(cfg *config.Config) Service {
	if cfg == nil {
		cfg = config.Default()
	}

	return &MediaService{
		cfg:       cfg,
		converter: imageconv.New(cfg.Convert),
		player:    play.New(),
	}
}

// GenerateWave renders a tone and writes it under the configured output directory
func (s *MediaService) GenerateWave(params wave.Params, fileName string) (*WaveInfo, error) {
	if params.SampleRate == 0 {
		params.SampleRate = s.cfg.Wave.SampleRate
	}
	slog.Debug("Service.GenerateWave called", "params", params, "file", fileName)

	buf, err := wave.Generate(params)
	if err != nil {
		return nil, err
	}

	path, err := s.wavePath(fileName)
	if err != nil {
		return nil, err
	}

	if err := wave.WriteFile(path, buf); err != nil {
		return nil, err
	}

	info := &WaveInfo{
		Path:       path,
		Frequency:  params.Frequency,
		SampleRate: buf.SampleRate,
		Samples:    buf.Len(),
		Seconds:    buf.Duration().Seconds(),
	}
	slog.Info("Generated wave", "path", info.Path, "frequency", info.Frequency,
		"sample_rate", info.SampleRate, "samples", info.Samples)
	return info, nil
}

func (s *MediaService) wavePath(fileName string) (string, error) {
	if fileName == "" {
		return "", wave.ErrEmptyFileName
	}

	dir := s.cfg.Wave.OutputDir
	if dir == "" {
		return fileName, nil
	}

	// Create directory if it doesn't exist
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}
	return filepath.Join(dir, fileName), nil
}

// Play plays a wave file with the first available system player
func (s *MediaService) Play(path string) error {
	return s.player.Play(path)
}

// ConvertImage runs the full conversion pipeline for req
func (s *MediaService) ConvertImage(req imageconv.Request) (*imageconv.Result, error) {
	slog.Debug("Service.ConvertImage called", "source", req.SourcePath,
		"formats", imageconv.FormatStrings(req.Formats))

	res, err := s.converter.Convert(req)
	if err != nil {
		slog.Error("Service.ConvertImage failed", "source", req.SourcePath, "error", err)
		return res, err
	}

	slog.Info("Converted image", "source", req.SourcePath, "written", len(res.Written),
		"skipped", imageconv.FormatStrings(res.Skipped))
	return res, nil
}

// DescribeImage loads an image and lists where each known format would be written
func (s *MediaService) DescribeImage(path string) (*ImageInfo, error) {
	h, err := imageconv.Load(path)
	if err != nil {
		return nil, err
	}

	policy := s.converter.Policy()
	info := &ImageInfo{
		Path:          h.Path,
		Format:        h.Format.String(),
		Width:         h.Width,
		Height:        h.Height,
		Frames:        len(h.Frames),
		HasBackground: h.Background != nil,
		Policy:        policy,
	}

	for _, f := range imageconv.KnownFormats {
		out := imageconv.OutputPath(h.Path, f)
		_, statErr := os.Stat(out)
		info.Outputs = append(info.Outputs, OutputInfo{
			Format:       f.String(),
			Path:         out,
			Exists:       statErr == nil,
			Transparency: f.TransparencyCapable(),
			Rejected:     policy.CheckFormats && policy.RejectCurrentFormat && f == h.Format,
		})
	}

	return info, nil
}

// GetConfig returns the current configuration
func (s *MediaService) GetConfig() *config.Config {
	return s.cfg
}
