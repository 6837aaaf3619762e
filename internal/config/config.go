package config

// Config holds all configuration of the periodic command.
type Config struct {
	Log  LogConfig  `mapstructure:"log" validate:"required"`
	Scan ScanConfig `mapstructure:"scan" validate:"required"`
}

// LogConfig controls the slog handler.
type LogConfig struct {
	Level  string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"required,oneof=json text"`
}

// ScanConfig controls product-ID range scanning.
type ScanConfig struct {
	Workers int    `mapstructure:"workers" validate:"gte=1,lte=1024"`
	Rule    string `mapstructure:"rule" validate:"required,oneof=at-least-twice exactly-twice"`
	Collect bool   `mapstructure:"collect"`
}
