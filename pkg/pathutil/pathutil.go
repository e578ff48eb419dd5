// Package pathutil provides utilities for safe path handling and validation.
package pathutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ValidatePath rejects directory traversal and resolves path to absolute
// form. When allowedBaseDirs are given, the resolved path must also fall
// inside one of them.
func ValidatePath(path string, allowedBaseDirs ...string) (string, error) {
	// Checked on the raw input so "a/../b" fails even though it cleans
	// to a harmless path.
	if strings.Contains(path, "..") {
		return "", fmt.Errorf("path contains directory traversal pattern: %s", path)
	}

	absPath, err := filepath.Abs(filepath.Clean(path))
	if err != nil {
		return "", fmt.Errorf("getting absolute path: %w", err)
	}
	if len(allowedBaseDirs) == 0 {
		return absPath, nil
	}

	for _, baseDir := range allowedBaseDirs {
		if withinBase(absPath, baseDir) {
			return absPath, nil
		}
	}
	return "", fmt.Errorf("path %s is not within allowed directories", filepath.Clean(path))
}

// withinBase reports whether abs is baseDir itself or sits underneath it.
func withinBase(abs, baseDir string) bool {
	absBase, err := filepath.Abs(baseDir)
	if err != nil {
		return false
	}
	if abs == absBase {
		return true
	}
	if !strings.HasSuffix(absBase, string(filepath.Separator)) {
		absBase += string(filepath.Separator)
	}
	return strings.HasPrefix(abs, absBase)
}

// ValidateConfigPath validates a configuration file path.
// Config files are expected to be YAML files.
func ValidateConfigPath(path string) (string, error) {
	absPath, err := ValidatePath(path)
	if err != nil {
		return "", err
	}

	ext := filepath.Ext(absPath)
	if ext != ".yaml" && ext != ".yml" {
		return "", fmt.Errorf("config file must be a YAML file, got: %s", ext)
	}

	if _, err := os.Stat(absPath); err != nil {
		return "", fmt.Errorf("config file not accessible: %w", err)
	}

	return absPath, nil
}

// ValidateOutputPath validates a report output path and ensures its parent
// directory exists.
func ValidateOutputPath(path string, allowedExts ...string) (string, error) {
	absPath, err := ValidatePath(path)
	if err != nil {
		return "", err
	}

	if len(allowedExts) > 0 {
		ext := filepath.Ext(absPath)
		ok := false
		for _, allowed := range allowedExts {
			if ext == allowed {
				ok = true
				break
			}
		}
		if !ok {
			return "", fmt.Errorf("output file extension %s not allowed (want one of %v)", ext, allowedExts)
		}
	}

	if err := os.MkdirAll(filepath.Dir(absPath), 0o750); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}

	return absPath, nil
}
