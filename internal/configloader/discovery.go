package configloader

import (
	"os"
	"path/filepath"

	"github.com/yaklabco/leandoc/pkg/config"
)

// projectConfigFiles are the config file names searched for in the
// working directory, in order of preference.
//
//nolint:gochecknoglobals // Read-only lookup table.
var projectConfigFiles = []string{
	config.DefaultFileName,
	".leandoc.yml",
}

// resolvePath picks the config file to load. An explicit path (--config
// flag or $LEANDOC_CONFIG) is returned as-is so a missing file surfaces
// as an error; a project file is returned only when it exists.
func resolvePath(explicit, workDir string, skipEnv bool) string {
	if explicit != "" {
		return explicit
	}

	if !skipEnv {
		if env := os.Getenv(EnvConfigPath); env != "" {
			return env
		}
	}

	return findProjectConfig(workDir)
}

// findProjectConfig looks for a project config file in dir.
// Returns the first match, or empty string if none.
func findProjectConfig(dir string) string {
	for _, name := range projectConfigFiles {
		path := filepath.Join(dir, name)
		if fileExists(path) {
			return path
		}
	}
	return ""
}

// fileExists returns true if the path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
