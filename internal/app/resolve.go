package app

import "fmt"

// ResolveConfig layers configuration sources. Precedence, lowest first:
// built-in defaults, the config file at configPath (if any), environment
// variables, then flags. explicit names the flags the user actually set;
// only those override lower layers.
func ResolveConfig(flags Config, explicit map[string]bool, configPath string) (Config, error) {
	var cfg Config
	if configPath != "" {
		fc, err := LoadConfigFile(configPath)
		if err != nil {
			return Config{}, fmt.Errorf("load config %s: %w", configPath, err)
		}
		ApplyFileConfig(&cfg, fc)
	}
	ApplyEnvOverrides(&cfg)

	if explicit["input"] {
		cfg.InputPath = flags.InputPath
	}
	if explicit["output"] {
		cfg.OutputPath = flags.OutputPath
	}
	if explicit["v"] {
		cfg.Verbose = flags.Verbose
	}
	return cfg.WithDefaults(), nil
}
