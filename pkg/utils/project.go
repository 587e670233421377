package utils

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// maxUpwardSearchLevels limits how far up the directory tree to search for
// the enclosing project.
const maxUpwardSearchLevels = 20

// FindProjectRoot walks upward from start looking for the directory holding
// a package.json. Returns the empty string when no project root is found.
func FindProjectRoot(start string) string {
	dir := start
	if abs, err := filepath.Abs(start); err == nil {
		dir = abs
	}
	if info, err := os.Stat(dir); err == nil && !info.IsDir() {
		dir = filepath.Dir(dir)
	}

	for i := 0; i < maxUpwardSearchLevels; i++ {
		if _, err := os.Stat(filepath.Join(dir, "package.json")); err == nil {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root
			break
		}
		dir = parent
	}
	return ""
}

// GetProjectName reads the "name" field of the package.json enclosing path.
// Returns the empty string when there is no enclosing project or the
// manifest has no usable name.
func GetProjectName(path string) string {
	root := FindProjectRoot(path)
	if root == "" {
		return ""
	}

	content, err := os.ReadFile(filepath.Join(root, "package.json"))
	if err != nil {
		return ""
	}

	var manifest struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(content, &manifest); err != nil {
		return ""
	}
	return manifest.Name
}
