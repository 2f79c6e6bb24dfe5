package commands

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/agiangrant/shrinkwrap"
	"github.com/agiangrant/shrinkwrap/declarative"
	"github.com/agiangrant/shrinkwrap/retained"
	"github.com/agiangrant/shrinkwrap/text"
)

// loadConfig reads the config at path, or finds shrinkwrap.toml from the
// current directory when path is empty. Without a config file the defaults
// are used.
func loadConfig(path string) (shrinkwrap.Config, error) {
	if path == "" {
		found, err := shrinkwrap.FindConfig(".")
		if errors.Is(err, shrinkwrap.ErrConfigNotFound) {
			return shrinkwrap.DefaultConfig(), nil
		}
		if err != nil {
			return shrinkwrap.Config{}, err
		}
		path = found
	}
	return shrinkwrap.LoadConfig(path)
}

// setup loads the config and installs a logger built from it in every
// package.
func setup(configPath string) (shrinkwrap.Config, *zap.Logger, error) {
	config, err := loadConfig(configPath)
	if err != nil {
		return config, nil, err
	}

	logger, err := NewLogger(config.Log)
	if err != nil {
		return config, nil, err
	}
	shrinkwrap.SetLogger(logger)
	retained.SetLogger(logger)
	declarative.SetLogger(logger)
	shrinkwrap.Debug = logger.Core().Enabled(zap.DebugLevel)

	logger.Debug("config loaded",
		zap.String("measurer", config.Text.Measurer),
		zap.Int("max_width", config.Preview.MaxWidth),
		zap.Bool("shrink", config.Shrink.Enabled))
	return config, logger, nil
}

// NewLogger builds a zap logger from the [log] section.
func NewLogger(c shrinkwrap.LogConfig) (*zap.Logger, error) {
	var zc zap.Config
	if c.Development {
		zc = zap.NewDevelopmentConfig()
	} else {
		zc = zap.NewProductionConfig()
	}
	if c.Level != "" {
		level, err := zap.ParseAtomicLevel(c.Level)
		if err != nil {
			return nil, fmt.Errorf("log.level: %w", err)
		}
		zc.Level = level
	}
	return zc.Build()
}

// textStyle converts the [text] section to a text style.
func textStyle(c shrinkwrap.TextConfig) text.Style {
	style := text.Style{LineHeight: c.LineHeight}
	switch c.Measurer {
	case "fixed":
		style.Measurer = text.FixedMeasurer{Width: c.Advance}
	default:
		style.Measurer = text.CellMeasurer{}
	}
	switch c.Align {
	case "center":
		style.Align = text.AlignCenter
	case "end":
		style.Align = text.AlignEnd
	}
	return style
}
