package imageconv

import (
	"log/slog"

	"github.com/audiolibrelab/mediatools/internal/config"
)

// Request is one conversion run, built from flags or prompts.
type Request struct {
	SourcePath string
	Formats    []Format
}

type Result struct {
	Source  *Handle
	Written []string
	Skipped []Format
}

type Converter struct {
	policy config.Policy
}

func New(policy config.Policy) *Converter {
	return &Converter{policy: policy}
}

func (c *Converter) Policy() config.Policy {
	return c.policy
}

// Convert loads the source, checks the selection when the policy asks for
// it and saves every format. Any error aborts the run.
func (c *Converter) Convert(req Request) (*Result, error) {
	h, err := Load(req.SourcePath)
	if err != nil {
		return nil, err
	}
	slog.Debug("Loaded image", "path", h.Path, "format", h.Format,
		"width", h.Width, "height", h.Height, "frames", len(h.Frames))

	if c.policy.CheckFormats {
		if err := CheckFormats(h.Format, req.Formats, c.policy.RejectCurrentFormat); err != nil {
			return nil, err
		}
	}

	saved, err := Save(h, req.Formats, SaveOptions{StopAfterJPEG: c.policy.StopAfterJPEG})
	result := &Result{Source: h}
	if saved != nil {
		result.Written = saved.Written
		result.Skipped = saved.Skipped
	}
	return result, err
}
