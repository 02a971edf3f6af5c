package config

import (
	"os"
	"slices"
	"strings"
)

func (c *Config) normalize() error {
	c.normalizeLogging()
	if err := c.normalizeRegistry(); err != nil {
		return err
	}
	c.Output.MimetypeFile = strings.TrimSpace(c.Output.MimetypeFile)
	if c.Output.MimetypeFile == "" {
		c.Output.MimetypeFile = defaultMimetypeFile
	}
	c.Output.Package = strings.TrimSpace(c.Output.Package)
	if c.Output.Package == "" {
		c.Output.Package = defaultPackage
	}
	c.Server.Bind = strings.TrimSpace(c.Server.Bind)
	if c.Server.Bind == "" {
		c.Server.Bind = defaultServerBind
	}
	return nil
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}

func (c *Config) normalizeRegistry() error {
	if value, ok := os.LookupEnv(EnvRegistryURL); ok && strings.TrimSpace(value) != "" {
		c.Registry.URL = strings.TrimSpace(value)
	}
	c.Registry.URL = strings.TrimSpace(c.Registry.URL)
	if c.Registry.Path != "" {
		expanded, err := expandPath(strings.TrimSpace(c.Registry.Path))
		if err != nil {
			return err
		}
		c.Registry.Path = expanded
	}

	categories := make([]string, 0, len(c.Registry.Categories))
	for _, category := range c.Registry.Categories {
		category = strings.ToLower(strings.TrimSpace(category))
		if category != "" {
			categories = append(categories, category)
		}
	}
	slices.Sort(categories)
	c.Registry.Categories = slices.Compact(categories)
	return nil
}
