package app

// Default paths, relative to the repository root.
const (
	DefaultInputPath  = "tooling/sidebar-canonical/linear-sidebar-canonical.raw.log"
	DefaultOutputPath = "tooling/sidebar-canonical/linear-sidebar-canonical.summary.json"
)

// Config holds runtime configuration for the application.
type Config struct {
	InputPath  string
	OutputPath string

	// Behavior
	Verbose bool
}

// WithDefaults fills empty paths with the repository defaults.
func (c Config) WithDefaults() Config {
	if c.InputPath == "" {
		c.InputPath = DefaultInputPath
	}
	if c.OutputPath == "" {
		c.OutputPath = DefaultOutputPath
	}
	return c
}
