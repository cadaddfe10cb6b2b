// Package config loads, normalizes, and validates slipstream configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads TOML files. The Config type centralizes every knob
// the CLI needs: the replay directory, the index location, log output, and
// the per-character jump measurements the segmenter depends on.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
