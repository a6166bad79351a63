// Package config defines the format-agnostic settings model for the
// interpreter driver, along with the Loader interface implemented by the
// format-specific packages.
//
// The `config.Model` is what the `app` package merges with command-line
// flags. Concrete loaders for HCL and TOML live in `hclconfig` and
// `tomlconfig`.
package config
