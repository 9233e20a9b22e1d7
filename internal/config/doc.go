// Package config manages user-level settings stored at
// ~/.create-rx-app/config.yaml. It provides functions to load, read, and
// write preference keys: the package installer choice, color output mode,
// and the template root override.
package config
