// Package tomlconfig provides the TOML implementation of the config.Loader
// interface.
package tomlconfig
