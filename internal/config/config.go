package config

import (
	"os"
)

const (
	defaultInputPath = "data/processed/jsearch_cleaned_with_skills.csv"
	defaultOutputDir = "outputs"
)

type Config struct {
	InputPath string
	OutputDir string
	CSVComma  rune
}

func LoadConfig() (*Config, error) {
	config := &Config{
		InputPath: getEnvString("EXPORT_INPUT_PATH", defaultInputPath),
		OutputDir: getEnvString("EXPORT_OUTPUT_DIR", defaultOutputDir),
		CSVComma:  ',',
	}

	return config, nil
}

func getEnvString(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
