package env

import (
	"errors"
	"fmt"
	"go.uber.org/zap"
	"os"
)

// ErrMissing is returned when a required env var is not set
var ErrMissing = errors.New("required env var not set")

// OrDefault return the value of an env var, if the env var value is empty, return a default value
func OrDefault(log *zap.SugaredLogger, env, def string) string {
	if v, ok := os.LookupEnv(env); ok && v != "" {
		return v
	}
	log.Debugw("env", "var", env, "default", def)
	return def
}

// Required return the value of an env var or ErrMissing when it is empty
func Required(env string) (string, error) {
	if v, ok := os.LookupEnv(env); ok && v != "" {
		return v, nil
	}
	return "", fmt.Errorf("%s: %w", env, ErrMissing)
}

// Must return the value of an env var, terminating the process when it is empty
func Must(log *zap.SugaredLogger, env string) string {
	v, err := Required(env)
	if err != nil {
		log.Fatalw("startup", "ERROR", err)
	}
	return v
}
