package app

import (
	"os"
	"strings"
)

// Environment variable names recognized by the tool.
const (
	EnvInput   = "SIDEBAR_INPUT"
	EnvOutput  = "SIDEBAR_OUTPUT"
	EnvVerbose = "VERBOSE"
)

// ApplyEnvOverrides forcefully overrides cfg fields with environment variables
// when they are set. Used so env wins over a config file while flags applied
// afterwards still win over env.
func ApplyEnvOverrides(cfg *Config) {
	if cfg == nil {
		return
	}
	if v := os.Getenv(EnvInput); v != "" {
		cfg.InputPath = v
	}
	if v := os.Getenv(EnvOutput); v != "" {
		cfg.OutputPath = v
	}
	if v, ok := parseBool(os.Getenv(EnvVerbose)); ok {
		cfg.Verbose = v
	}
}

func parseBool(s string) (value, ok bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes", "on":
		return true, true
	case "0", "false", "no", "off":
		return false, true
	}
	return false, false
}
