package kinematics

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"go.viam.com/screwkin/spatialmath"
	"go.viam.com/screwkin/utils"
)

// SCARAConfig holds the geometry of the SCARA reference arm.
type SCARAConfig struct {
	// A1 is the base to elbow link length, A2 the elbow to wrist link length.
	A1 float64 `json:"a1" yaml:"a1"`
	A2 float64 `json:"a2" yaml:"a2"`
	// D is how far below the base plane the tool sits at the zero configuration.
	D float64 `json:"d" yaml:"d"`
}

// RRRConfig holds the geometry of the three revolute joint reference arm.
type RRRConfig struct {
	A2 float64 `json:"a2" yaml:"a2"`
	A3 float64 `json:"a3" yaml:"a3"`
	// D is the height of the tool above the base at the zero configuration.
	D float64 `json:"d" yaml:"d"`
}

// ChainConfig holds the geometric constants of the reference arms and the axis angle tolerance.
type ChainConfig struct {
	SCARA     SCARAConfig `json:"scara" yaml:"scara"`
	RRR       RRRConfig   `json:"rrr" yaml:"rrr"`
	Tolerance float64     `json:"tolerance" yaml:"tolerance"`
}

// DefaultChainConfig returns the textbook geometry of both reference arms and the default axis
// tolerance.
func DefaultChainConfig() *ChainConfig {
	return &ChainConfig{
		SCARA:     SCARAConfig{A1: 1, A2: 0.9, D: 1.2},
		RRR:       RRRConfig{A2: 2, A3: 2, D: 0},
		Tolerance: spatialmath.DefaultAxisTolerance,
	}
}

type configField struct {
	name  string
	value float64
}

// Validate ensures link lengths and the tolerance are positive and offsets are not negative. All
// problems are reported together.
func (cfg *ChainConfig) Validate(path string) error {
	positive := []configField{
		{"scara.a1", cfg.SCARA.A1},
		{"scara.a2", cfg.SCARA.A2},
		{"rrr.a2", cfg.RRR.A2},
		{"rrr.a3", cfg.RRR.A3},
		{"tolerance", cfg.Tolerance},
	}
	nonNegative := []configField{
		{"scara.d", cfg.SCARA.D},
		{"rrr.d", cfg.RRR.D},
	}
	var errs error
	// the negated comparisons also reject NaN
	for _, f := range positive {
		if !(f.value > 0) {
			errs = multierr.Append(errs, utils.NewConfigValidationFieldRequiredError(path, f.name))
		}
	}
	for _, f := range nonNegative {
		if !(f.value >= 0) {
			errs = multierr.Append(errs, utils.NewConfigValidationNegativeFieldError(path, f.name))
		}
	}
	return errs
}

// UnmarshalChainConfig decodes data over the defaults. format is "yaml" or "json".
func UnmarshalChainConfig(data []byte, format string) (*ChainConfig, error) {
	cfg := DefaultChainConfig()
	var err error
	switch format {
	case "yaml":
		err = yaml.Unmarshal(data, cfg)
	case "json":
		err = json.Unmarshal(data, cfg)
	default:
		return nil, errors.Errorf("unsupported config format %q", format)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "cannot decode %s chain config", format)
	}
	return cfg, nil
}

// ReadChainConfigFile reads and validates a chain config. The format is chosen by file extension:
// .yaml, .yml or .json.
func ReadChainConfigFile(path string) (*ChainConfig, error) {
	var format string
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		format = "yaml"
	case ".json":
		format = "json"
	default:
		return nil, errors.Errorf("unsupported config file extension %q", filepath.Ext(path))
	}

	//nolint:gosec
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "cannot read chain config")
	}
	cfg, err := UnmarshalChainConfig(data, format)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(path); err != nil {
		return nil, err
	}
	return cfg, nil
}
