package config

import "time"

type Config struct {
	Interval       time.Duration `yaml:"interval" validate:"min=100ms,max=1m"`
	MeasureElapsed bool          `yaml:"measure_elapsed"`
	NameWidth      int           `yaml:"name_width" validate:"min=8,max=128"`
	MaxRows        int           `yaml:"max_rows" validate:"min=0"`
	Provider       string        `yaml:"provider" validate:"provider"`
	Log            LogConfig     `yaml:"log"`
}

type LogConfig struct {
	File       string `yaml:"file"`
	Level      string `yaml:"level" validate:"loglevel"`
	Format     string `yaml:"format" validate:"logformat"`
	MaxSizeMB  int    `yaml:"max_size_mb" validate:"min=1"`
	MaxBackups int    `yaml:"max_backups" validate:"min=0"`
}
