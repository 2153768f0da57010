// Package config defines the playback configuration assembled from
// command-line flags, along with its defaults and validation rules.
package config
