package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/neume-network/schema/internal/logging"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateLogging(); err != nil {
		return err
	}
	if err := c.validateRegistry(); err != nil {
		return err
	}
	if err := c.validateOutput(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateLogging() error {
	if !logging.ValidFormat(c.Logging.Format) {
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "warning", "error":
		return nil
	}
	return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
}

func (c *Config) validateRegistry() error {
	if c.Registry.Path == "" {
		if c.Registry.URL == "" {
			return errors.New("registry: url or path must be set")
		}
		u, err := url.Parse(c.Registry.URL)
		if err != nil || (u.Scheme != "https" && u.Scheme != "http") || u.Host == "" {
			return fmt.Errorf("registry.url: %q is not an http(s) URL", c.Registry.URL)
		}
	}
	if c.Registry.TimeoutSeconds <= 0 {
		return errors.New("registry.timeout_seconds must be positive")
	}
	if len(c.Registry.Categories) == 0 {
		return errors.New("registry.categories must list at least one top-level type")
	}
	for _, category := range c.Registry.Categories {
		if strings.ContainsAny(category, "/ ") {
			return fmt.Errorf("registry.categories: %q is not a top-level type", category)
		}
	}
	return nil
}

func (c *Config) validateOutput() error {
	if !strings.HasSuffix(c.Output.MimetypeFile, ".go") {
		return fmt.Errorf("output.mimetype_file: %q must be a .go file", c.Output.MimetypeFile)
	}
	if !isIdentifier(c.Output.Package) {
		return fmt.Errorf("output.package: %q is not a Go package name", c.Output.Package)
	}
	return nil
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}
