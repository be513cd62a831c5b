package engine

import "github.com/wildfunctions/reach_target/pkg/strategy"

// Config holds all parameters for a search.
type Config struct {
	Values        []int64 `json:"values" yaml:"values"`
	Target        string  `json:"target" yaml:"target"` // integer or "n/d"
	Strategy      string  `json:"strategy" yaml:"strategy"`
	Format        string  `json:"format" yaml:"format"` // "text", "json", "yaml" or "latex"
	Verbose       bool    `json:"verbose" yaml:"verbose"`
	MaxCandidates int64   `json:"max_candidates" yaml:"max_candidates"` // 0 = unlimited
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Target:        "24",
		Strategy:      strategy.Default,
		Format:        "text",
		Verbose:       false,
		MaxCandidates: 0,
	}
}
