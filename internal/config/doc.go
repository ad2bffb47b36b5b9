// Package config manages the user-level configuration file (~/.kickoff/config.yaml)
// and its environment variable overrides. Both drivers consult it for default
// description, default variant, and the git identity used for initial commits.
package config
