// Package file implements the ConfigStore port backed by a TOML
// file in the user's home directory (~/.brandstat/config.toml).
package file
