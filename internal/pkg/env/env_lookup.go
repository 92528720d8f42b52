package env

import (
	"os"
	"strings"
)

func TrySetFromEnv(key string, target *string) bool {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return false
	}

	*target = value
	return true
}

// TrySetListFromEnv splits a comma separated value, dropping blank items.
func TrySetListFromEnv(key string, target *[]string) bool {
	var raw string
	if !TrySetFromEnv(key, &raw) {
		return false
	}

	items := make([]string, 0)
	for _, item := range strings.Split(raw, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			items = append(items, item)
		}
	}

	*target = items
	return true
}
