// Package render writes tool results for the command line.
//
// Text prints the human-readable explanation. JSON (sonic), YAML
// (goccy/go-yaml) and TOML (go-toml) print an envelope holding the
// operation name and the full result.
package render
