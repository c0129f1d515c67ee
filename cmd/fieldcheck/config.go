package main

import "github.com/dmitrymomot/fieldcheck/pkg/httpserver"

// Config is the service configuration, read from the environment and an
// optional .env file.
type Config struct {
	Env         string `env:"APP_ENV" envDefault:"development"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"fieldcheck"`
	LogLevel    string `env:"LOG_LEVEL"`

	HTTP httpserver.Config
}
