package gen

import (
	"fmt"
	"os"
	"path/filepath"
)

const filePerm = 0o644

// WriteFile writes file into outputDir and returns its path.
//
// Content goes to a temporary file in outputDir that is renamed into place
// once fully written, so a failed run never leaves a partial file. The
// directory must exist.
func WriteFile(file GeneratedFile, outputDir string) (path string, err error) {
	path = filepath.Join(outputDir, file.Filename)

	tmp, err := os.CreateTemp(outputDir, "."+file.Filename+".*.tmp")
	if err != nil {
		return "", fmt.Errorf("creating temporary file: %w", err)
	}

	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(file.Content); err != nil {
		return "", fmt.Errorf("writing file %s: %w", file.Filename, err)
	}

	if err = tmp.Sync(); err != nil {
		return "", fmt.Errorf("syncing file %s: %w", file.Filename, err)
	}

	if err = tmp.Chmod(filePerm); err != nil {
		return "", fmt.Errorf("setting mode of %s: %w", file.Filename, err)
	}

	if err = tmp.Close(); err != nil {
		return "", fmt.Errorf("closing file %s: %w", file.Filename, err)
	}

	if err = os.Rename(tmp.Name(), path); err != nil {
		return "", fmt.Errorf("renaming file %s: %w", file.Filename, err)
	}

	return path, nil
}
