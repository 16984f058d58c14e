package validate

import (
	"fmt"
	"path/filepath"

	"github.com/ShahidHasib586/dem-viewer/internal/utils"
)

// InputFile validates that given path is an existing file
func InputFile(path string) error {
	if !utils.IsFile(path) {
		return fmt.Errorf("%s does not exist or is no file", path)
	}
	return nil
}

// OutputDirectory validates that given path is an existing directory
func OutputDirectory(dirPath string) error {
	if !utils.IsDirectory(dirPath) {
		return fmt.Errorf("output directory %s does not exist or is no directory", dirPath)
	}
	return nil
}

// OutputFile validates that the directory for the file at given path exists
// and that the path itself isn't a directory
func OutputFile(path string) error {
	if utils.IsDirectory(path) {
		return fmt.Errorf("%s is a directory", path)
	}
	return OutputDirectory(filepath.Dir(path))
}
