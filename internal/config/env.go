package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"

	"github.com/mpyw/spellck/internal/dictionary"
)

// DictEnv names the variable holding dictionary paths for vet runs.
const DictEnv = "SPELLCK_LINT_DICT"

// HostDictPaths returns the dictionary files listed in the environment
// variable env, separated by the platform's path list separator.
// A .env file in the working directory may supply the variable; values
// already in the environment win. The .env file is only read, the process
// environment is left untouched. An unset or empty variable is a
// ConfigError.
func HostDictPaths(env string) ([]string, error) {
	value, ok := os.LookupEnv(env)
	if !ok {
		var err error
		if value, ok, err = dotenvValue(env); err != nil {
			return nil, err
		}
	}

	if !ok || strings.TrimSpace(value) == "" {
		return nil, &dictionary.ConfigError{Err: fmt.Errorf("environment variable `%s` not specified", env)}
	}

	var paths []string
	for _, p := range filepath.SplitList(value) {
		if p = strings.TrimSpace(p); p != "" {
			paths = append(paths, p)
		}
	}

	if len(paths) == 0 {
		return nil, &dictionary.ConfigError{Err: fmt.Errorf("environment variable `%s` lists no paths", env)}
	}

	return paths, nil
}

func dotenvValue(env string) (string, bool, error) {
	vals, err := godotenv.Read()
	if errors.Is(err, os.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, &dictionary.IOError{Path: ".env", Err: err}
	}

	value, ok := vals[env]

	return value, ok, nil
}
