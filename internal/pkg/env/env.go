package env

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// LoadDotEnv reads variables from the given files into the process
// environment without overriding values that are already set. Missing files
// are skipped.
func LoadDotEnv(filenames ...string) error {
	for _, filename := range filenames {
		err := godotenv.Load(filename)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to load env file %s: %w", filename, err)
		}
	}

	return nil
}

func TrySetDurationFromEnv(key string, target *time.Duration) error {
	var raw string
	if !TrySetFromEnv(key, &raw) {
		return nil
	}

	value, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("invalid duration in %s: %w", key, err)
	}

	*target = value
	return nil
}

func TrySetIntFromEnv(key string, target *int) error {
	var raw string
	if !TrySetFromEnv(key, &raw) {
		return nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return fmt.Errorf("invalid integer in %s: %w", key, err)
	}

	*target = value
	return nil
}

func TrySetBoolFromEnv(key string, target *bool) error {
	var raw string
	if !TrySetFromEnv(key, &raw) {
		return nil
	}

	value, err := strconv.ParseBool(raw)
	if err != nil {
		return fmt.Errorf("invalid boolean in %s: %w", key, err)
	}

	*target = value
	return nil
}
