// Package config loads typed configuration from environment variables.
//
// It wraps github.com/caarlos0/env/v11 for struct-tag parsing and
// github.com/joho/godotenv for optional .env files. Parsed values are cached
// per type and prefix, so repeated Load calls are cheap and consistent.
//
// Errors wrap the sentinels ErrParsingConfig, ErrNilPointer and
// ErrLoadingEnvFile; compare with errors.Is.
package config
