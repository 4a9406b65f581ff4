package config

import (
	"log"
	"os"
	"strconv"
)

const DefaultAssetsDir = "mobile-app/assets"

func Load(logger *log.Logger) *Config {
	return &Config{
		AssetsDir:    getEnv(logger, "ASSETS_DIR", DefaultAssetsDir, parseString),
		ManifestFile: getEnv(logger, "MANIFEST_FILE", "", parseString),
		FontFile:     getEnv(logger, "FONT_FILE", "", parseString),
		RenderLabels: getEnv(logger, "RENDER_LABELS", false, strconv.ParseBool),
	}
}

func getEnv[T any](logger *log.Logger, key string, defaultValue T, parser func(string) (T, error)) T {
	val := os.Getenv(key)
	if val == "" {
		return defaultValue
	}

	parsed, err := parser(val)
	if err != nil {
		logger.Printf("[WARN]: invalid value for %s (%s). Using default: %v\n", key, val, defaultValue)
		return defaultValue
	}

	return parsed
}

func parseString(val string) (string, error) {
	return val, nil
}
