package utils

import (
	"os"
	"path/filepath"
	"strings"
)

// DefaultExtensions are the JavaScript source extensions processed when the
// config does not override them.
var DefaultExtensions = []string{".js", ".jsx", ".mjs", ".cjs"}

// IsJSFile checks if a file is a JavaScript source file for the given
// extension list. A nil or empty list falls back to DefaultExtensions.
func IsJSFile(filename string, extensions []string) bool {
	if len(extensions) == 0 {
		extensions = DefaultExtensions
	}
	for _, ext := range extensions {
		if strings.HasSuffix(filename, ext) {
			return true
		}
	}
	return false
}

// FindJSFiles recursively finds all JavaScript source files in a directory.
// Directories named in exclude are skipped, on top of the always-skipped
// node_modules, .git and hidden directories.
func FindJSFiles(root string, extensions []string, exclude []string) ([]string, error) {
	var jsFiles []string

	excluded := make(map[string]bool, len(exclude))
	for _, name := range exclude {
		excluded[name] = true
	}

	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		// Skip dependency and hidden directories (but not the root directory)
		if info.IsDir() && path != root {
			name := filepath.Base(path)
			if name == "node_modules" || name == ".git" || strings.HasPrefix(name, ".") || excluded[name] {
				return filepath.SkipDir
			}
			return nil
		}

		if !info.IsDir() && IsJSFile(filepath.Base(path), extensions) {
			jsFiles = append(jsFiles, path)
		}

		return nil
	})

	return jsFiles, err
}

// IsDirectory checks if the given path is a directory
func IsDirectory(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return false, err
	}
	return info.IsDir(), nil
}
