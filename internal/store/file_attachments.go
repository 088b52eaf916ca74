package store

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// SaveAttachment writes decrypted attachment content to disk and returns
// the resolved destination path.
//
// Destination resolution:
//   - empty output: defaultName under the current working directory;
//   - output without a path separator: treated as a bare file name under
//     the current working directory;
//   - output ending in a path separator, or naming an existing directory:
//     defaultName joined onto that directory;
//   - otherwise: output is the full destination path.
//
// Parent directories are created as needed. The file is written with
// owner-only permissions via a temporary file in the destination directory
// followed by a rename, so a failed write never leaves a truncated file at
// the final path.
func SaveAttachment(output, defaultName string, content []byte) (string, error) {
	path := resolveOutputPath(output, defaultName)

	dir := filepath.Dir(path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return "", fmt.Errorf("create attachment dir: %w", err)
		}
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	// Best effort: the temp file is removed on every failure path below.
	cleanup := func() {
		tmp.Close()
		os.Remove(tmpName)
	}

	if err = tmp.Chmod(0o600); err != nil {
		cleanup()
		return "", fmt.Errorf("chmod temp file: %w", err)
	}

	if _, err = tmp.Write(content); err != nil {
		cleanup()
		return "", fmt.Errorf("write attachment: %w", err)
	}

	if err = tmp.Sync(); err != nil {
		cleanup()
		return "", fmt.Errorf("flush attachment: %w", err)
	}

	if err = tmp.Close(); err != nil {
		os.Remove(tmpName)
		return "", fmt.Errorf("close attachment: %w", err)
	}

	if err = os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return "", fmt.Errorf("rename attachment into place: %w", err)
	}

	return path, nil
}

func resolveOutputPath(output, defaultName string) string {
	if output == "" {
		return defaultName
	}

	if strings.HasSuffix(output, "/") || strings.HasSuffix(output, string(os.PathSeparator)) {
		return filepath.Join(output, defaultName)
	}

	if info, err := os.Stat(output); err == nil && info.IsDir() {
		return filepath.Join(output, defaultName)
	}

	return output
}
