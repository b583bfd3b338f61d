package config

const (
	defaultConfigPath   = "~/.config/cleantext/config.toml"
	projectConfigName   = "cleantext.toml"
	defaultWorkers      = 1
	defaultProgress     = ProgressAuto
	defaultMaxLineBytes = 64 << 20
	defaultCountLines   = true
	defaultLogFormat    = LogFormatConsole
	defaultLogLevel     = "info"

	minMaxLineBytes = 4 << 10
	maxWorkers      = 256
)

// Progress display modes.
const (
	ProgressAuto   = "auto"
	ProgressAlways = "always"
	ProgressNever  = "never"
)

// Log output formats.
const (
	LogFormatConsole = "console"
	LogFormatJSON    = "json"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Clean: Clean{
			Workers:      defaultWorkers,
			Progress:     defaultProgress,
			MaxLineBytes: defaultMaxLineBytes,
			CountLines:   defaultCountLines,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
