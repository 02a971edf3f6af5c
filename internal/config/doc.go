// Package config loads the neume-schema TOML configuration.
//
// Lookup order for an implicit path is ./neume-schema.toml, then
// ~/.config/neume-schema/config.toml. Missing files yield Default().
package config
