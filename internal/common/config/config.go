// internal/common/config/config.go
package config

import "time"

// Config is the main application configuration struct.
type Config struct {
	App     AppConfig     `mapstructure:"app"`
	API     APIConfig     `mapstructure:"api"`
	Receipt ReceiptConfig `mapstructure:"receipt"`
	Logging LoggingConfig `mapstructure:"logging"`
}

type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

// APIConfig holds settings for the agent-application backend call.
type APIConfig struct {
	BaseURL     string `mapstructure:"base_url"`
	Endpoint    string `mapstructure:"endpoint"`
	Timeout     int    `mapstructure:"timeout"`       // milliseconds
	Mock        bool   `mapstructure:"mock"`          // skip the network entirely
	MockDelayMS int    `mapstructure:"mock_delay_ms"` // simulated latency in mock mode
}

// ReceiptConfig holds settings for the locally generated receipt document.
type ReceiptConfig struct {
	OutputDir string `mapstructure:"output_dir"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}

// RequestTimeout returns the HTTP timeout as a time.Duration.
func (a APIConfig) RequestTimeout() time.Duration {
	return time.Duration(a.Timeout) * time.Millisecond
}

// MockDelay returns the simulated mock-mode latency as a time.Duration.
func (a APIConfig) MockDelay() time.Duration {
	return time.Duration(a.MockDelayMS) * time.Millisecond
}
