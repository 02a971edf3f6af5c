package config

import "github.com/neume-network/schema/internal/mimetype"

const (
	defaultConfigPath      = "~/.config/neume-schema/config.toml"
	projectConfigName      = "neume-schema.toml"
	defaultLogLevel        = "info"
	defaultLogFormat       = "console"
	defaultRegistryTimeout = 30
	defaultMimetypeFile    = "mimetypes_gen.go"
	defaultPackage         = "schema"
	defaultServerBind      = "127.0.0.1:7415"

	// EnvRegistryURL overrides registry.url when set.
	EnvRegistryURL = "NEUME_SCHEMA_REGISTRY_URL"
)

// Default returns a Config populated with the built-in defaults.
func Default() Config {
	return Config{
		Logging: Logging{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
		Registry: Registry{
			URL:            mimetype.DefaultRegistryURL,
			TimeoutSeconds: defaultRegistryTimeout,
			Categories:     append([]string(nil), mimetype.DefaultCategories...),
		},
		Output: Output{
			MimetypeFile: defaultMimetypeFile,
			Package:      defaultPackage,
		},
		Server: Server{
			Bind: defaultServerBind,
		},
	}
}
