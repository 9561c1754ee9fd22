package cmd

import (
	"os"

	"casinobot/config"

	log "github.com/sirupsen/logrus"
)

// ConfigureLogging applies LOG_LEVEL and picks JSON output in production
func ConfigureLogging(cfg *config.Config) {
	log.SetOutput(os.Stdout)

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Warnf("Unknown log level %q, using info", cfg.LogLevel)
		level = log.InfoLevel
	}
	log.SetLevel(level)

	if cfg.Environment == "production" {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
}
