package kinematics

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/multierr"
	"go.viam.com/test"
)

func writeConfig(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	test.That(t, os.WriteFile(path, []byte(contents), 0o600), test.ShouldBeNil)
	return path
}

func TestChainConfigValidate(t *testing.T) {
	test.That(t, DefaultChainConfig().Validate("default"), test.ShouldBeNil)

	cfg := DefaultChainConfig()
	cfg.SCARA.A2 = -1
	cfg.SCARA.D = -0.5
	cfg.RRR.A3 = math.NaN()
	cfg.Tolerance = 0
	err := cfg.Validate("arm.yaml")
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, multierr.Errors(err), test.ShouldHaveLength, 4)
	test.That(t, err.Error(), test.ShouldContainSubstring, `error validating "arm.yaml": "scara.a2" must be greater than zero`)
	test.That(t, err.Error(), test.ShouldContainSubstring, `"scara.d" must not be negative`)
	test.That(t, err.Error(), test.ShouldContainSubstring, `"rrr.a3"`)
	test.That(t, err.Error(), test.ShouldContainSubstring, `"tolerance"`)

	// a zero offset is allowed
	cfg = DefaultChainConfig()
	cfg.SCARA.D = 0
	test.That(t, cfg.Validate("arm.yaml"), test.ShouldBeNil)
}

func TestDefaultChainConfig(t *testing.T) {
	cfg := DefaultChainConfig()
	test.That(t, cfg.SCARA, test.ShouldResemble, SCARAConfig{A1: 1, A2: 0.9, D: 1.2})
	test.That(t, cfg.RRR, test.ShouldResemble, RRRConfig{A2: 2, A3: 2, D: 0})
}

func TestReadChainConfigFile(t *testing.T) {
	t.Run("yaml", func(t *testing.T) {
		path := writeConfig(t, "arm.yaml", `
scara:
  a1: 2
  a2: 3
  d: 0.5
tolerance: 0.00000001
`)
		cfg, err := ReadChainConfigFile(path)
		test.That(t, err, test.ShouldBeNil)
		test.That(t, cfg.SCARA, test.ShouldResemble, SCARAConfig{A1: 2, A2: 3, D: 0.5})
		test.That(t, cfg.Tolerance, test.ShouldEqual, 1e-8)
		test.That(t, cfg.RRR, test.ShouldResemble, DefaultChainConfig().RRR)
	})

	t.Run("json", func(t *testing.T) {
		path := writeConfig(t, "arm.JSON", `{"rrr": {"a2": 0.5, "a3": 0.6, "d": 0.4}}`)
		cfg, err := ReadChainConfigFile(path)
		test.That(t, err, test.ShouldBeNil)
		test.That(t, cfg.RRR, test.ShouldResemble, RRRConfig{A2: 0.5, A3: 0.6, D: 0.4})
		test.That(t, cfg.SCARA, test.ShouldResemble, DefaultChainConfig().SCARA)
		test.That(t, cfg.Tolerance, test.ShouldEqual, DefaultChainConfig().Tolerance)
	})

	t.Run("partial section keeps the other defaults", func(t *testing.T) {
		cfg, err := ReadChainConfigFile(writeConfig(t, "arm.yml", "scara:\n  d: 2\n"))
		test.That(t, err, test.ShouldBeNil)
		test.That(t, cfg.SCARA, test.ShouldResemble, SCARAConfig{A1: 1, A2: 0.9, D: 2})
	})

	t.Run("invalid values", func(t *testing.T) {
		path := writeConfig(t, "arm.yml", "rrr:\n  a2: -2\n")
		_, err := ReadChainConfigFile(path)
		test.That(t, err, test.ShouldNotBeNil)
		test.That(t, err.Error(), test.ShouldContainSubstring, `"rrr.a2" must be greater than zero`)
	})

	t.Run("malformed", func(t *testing.T) {
		path := writeConfig(t, "arm.yaml", "scara: [")
		_, err := ReadChainConfigFile(path)
		test.That(t, err, test.ShouldNotBeNil)
		test.That(t, err.Error(), test.ShouldContainSubstring, "cannot decode yaml chain config")
	})

	t.Run("unknown extension", func(t *testing.T) {
		_, err := ReadChainConfigFile(writeConfig(t, "arm.toml", ""))
		test.That(t, err, test.ShouldNotBeNil)
		test.That(t, err.Error(), test.ShouldContainSubstring, `unsupported config file extension ".toml"`)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := ReadChainConfigFile(filepath.Join(t.TempDir(), "missing.yaml"))
		test.That(t, err, test.ShouldNotBeNil)
		test.That(t, err.Error(), test.ShouldContainSubstring, "cannot read chain config")
	})

	_, err := UnmarshalChainConfig(nil, "toml")
	test.That(t, err, test.ShouldNotBeNil)
}

func TestChainsFromConfig(t *testing.T) {
	cfg, err := UnmarshalChainConfig([]byte("scara: {a1: 0.3, a2: 0.4, d: 0.2}\nrrr: {a2: 1, a3: 2, d: 3}\n"), "yaml")
	test.That(t, err, test.ShouldBeNil)

	scara, err := NewSCARA(cfg.SCARA)
	test.That(t, err, test.ShouldBeNil)
	p := scara.Home().Translation()
	test.That(t, p.X, test.ShouldAlmostEqual, 0.7)
	test.That(t, p.Z, test.ShouldAlmostEqual, -0.2)

	rrr, err := NewRRR(cfg.RRR)
	test.That(t, err, test.ShouldBeNil)
	p = rrr.Home().Translation()
	test.That(t, p.X, test.ShouldAlmostEqual, 3)
	test.That(t, p.Z, test.ShouldAlmostEqual, 3)
}
