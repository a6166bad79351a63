// Package hclconfig provides the HCL implementation of the config.Loader
// interface. It is responsible for parsing a settings file and translating
// its attributes and its `constants` block into the format-agnostic model.
package hclconfig
