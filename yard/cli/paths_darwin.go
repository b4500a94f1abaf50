package cli

import (
	"os"
	"path/filepath"
)

func (a appPaths) ConfigDir() string {
	c, err := os.UserConfigDir()
	if err != nil {
		c = filepath.Join(a.home, "Library", "Application Support")
	}
	return filepath.Join(c, a.tag)
}

func (a appPaths) LogDir() string {
	c := filepath.Join(a.home, "Library", "Application Support", "Logs")
	return filepath.Join(c, a.tag)
}
