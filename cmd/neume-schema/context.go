package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"github.com/neume-network/schema"
	"github.com/neume-network/schema/internal/config"
	"github.com/neume-network/schema/internal/logging"
)

type globalFlags struct {
	config    string
	logLevel  string
	logFormat string
}

type commandContext struct {
	flags *globalFlags

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func newCommandContext(flags *globalFlags) *commandContext {
	return &commandContext{flags: flags}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		cfg, _, _, err := config.Load(strings.TrimSpace(c.flags.config))
		if err != nil {
			c.configErr = fmt.Errorf("load config: %w", err)
			return
		}
		if c.flags.logLevel != "" {
			cfg.Logging.Level = c.flags.logLevel
		}
		if c.flags.logFormat != "" {
			cfg.Logging.Format = c.flags.logFormat
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// logger writes to the command's stderr so stdout stays parseable.
func (c *commandContext) logger(cmd *cobra.Command) (*slog.Logger, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	return newLogger(cfg, cmd.ErrOrStderr())
}

func newLogger(cfg *config.Config, w io.Writer) (*slog.Logger, error) {
	return logging.New(logging.Options{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Writer: w,
	})
}

func (c *commandContext) compileOptions(failFast bool) []schema.CompileOption {
	cfg, _ := c.ensureConfig()
	if failFast || (cfg != nil && cfg.Validation.FailFast) {
		return []schema.CompileOption{schema.WithFailFast()}
	}
	return nil
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
