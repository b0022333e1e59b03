package config

import (
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/urfave/cli/v3"

	domainConfig "github.com/trialworks/protodraft/pkg/domain/model/config"
)

// Rules holds the CLI flag pointing at a validation threshold override
// file. The file is a partial TOML overlay on the shipped defaults.
type Rules struct {
	path string
}

// Flags returns CLI flags for validation rule configuration
func (r *Rules) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "rules-config",
			Usage:       "Path to a TOML file overriding validation thresholds",
			Sources:     cli.EnvVars("PROTODRAFT_RULES_CONFIG"),
			Destination: &r.path,
		},
	}
}

// Configure loads the rule thresholds, applying the override file when
// one was given.
func (r *Rules) Configure() (domainConfig.RuleConfig, error) {
	cfg := domainConfig.DefaultRuleConfig()
	if r.path == "" {
		return cfg, nil
	}

	// #nosec G304 - path is provided by CLI argument
	data, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, goerr.Wrap(ErrConfigNotFound, "rules config file not found", goerr.V(ConfigPathKey, r.path))
		}
		return cfg, goerr.Wrap(err, "failed to read rules config file", goerr.V(ConfigPathKey, r.path))
	}

	var override domainConfig.RuleConfig
	if err := toml.Unmarshal(data, &override); err != nil {
		return cfg, goerr.Wrap(err, "failed to parse rules config TOML", goerr.V(ConfigPathKey, r.path))
	}

	return cfg.Merge(override), nil
}
