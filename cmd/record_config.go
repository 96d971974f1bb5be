package cmd

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/summarylog/summarylog/summary"
	"github.com/summarylog/summarylog/summary/trigger"
)

// Define struct for YAML
type RecordConfig struct {
	Steps   int64                 `yaml:"steps"`
	Metrics map[string]CadenceCfg `yaml:"metrics"`
}

type CadenceCfg struct {
	Every int64 `yaml:"every"`
}

// GetRecordConfig loads a recording configuration from a YAML file.
func GetRecordConfig(path string) (*RecordConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading record config %s: %w", path, err)
	}
	var cfg RecordConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing record config %s: %w", path, err)
	}
	if cfg.Steps <= 0 {
		cfg.Steps = 100
	}
	return &cfg, nil
}

// ApplyTo installs one interval trigger per configured metric on the
// policy. Unknown tags fail on a tag-restricted policy.
func (c *RecordConfig) ApplyTo(policy *summary.RecordingPolicy) error {
	for tag, cadence := range c.Metrics {
		if err := policy.SetTrigger(tag, trigger.Every(cadence.Every)); err != nil {
			return err
		}
	}
	return nil
}
