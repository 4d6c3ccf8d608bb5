// Package leadsource provides the lead sources fed into discovery.
package leadsource

import (
	"context"
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"mbg_outreach/internal/domain/entities"
	"mbg_outreach/internal/usecase/interfaces"
)

//go:embed seed/sample_leads.yaml
var sampleSeed []byte

type seedFile struct {
	Leads []entities.RawLead `yaml:"leads"`
}

// SampleSource serves a YAML seed list. The embedded seed is used unless a
// file path is given.
type SampleSource struct {
	path string
}

var _ interfaces.ILeadSource = (*SampleSource)(nil)

func NewSampleSource(path string) *SampleSource {
	return &SampleSource{path: path}
}

func (s *SampleSource) Name() string {
	if s.path == "" {
		return "sample"
	}
	return "seed:" + s.path
}

func (s *SampleSource) Discover(ctx context.Context) ([]entities.RawLead, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	content := sampleSeed
	if s.path != "" {
		b, err := os.ReadFile(s.path)
		if err != nil {
			return nil, fmt.Errorf("read seed file: %w", err)
		}
		content = b
	}

	var f seedFile
	if err := yaml.Unmarshal(content, &f); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}
	return f.Leads, nil
}
