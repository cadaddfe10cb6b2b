package config

const (
	defaultReplayDir = "~/Slippi"
	defaultDataDir   = "~/.local/share/slipstream"
	defaultLogFormat = "console"
	defaultLogLevel  = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			ReplayDir: defaultReplayDir,
			DataDir:   defaultDataDir,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
