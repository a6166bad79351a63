// Package app contains the interpreter driver. It defines the App struct,
// its configuration, and the load-run-report lifecycle, decoupled from any
// specific entrypoint like a CLI.
package app
