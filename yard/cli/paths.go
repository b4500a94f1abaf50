package cli

import (
	"os"
	"path/filepath"
	"strings"
)

// AppPaths is an interface to determine application specific paths for configuration
// and logging/tracing.
type AppPaths interface {
	ConfigDir() string
	LogDir() string
	HistoryFile() string // REPL input history
}

// DefaultAppPaths returns an AppPaths instance with platform-dependent defaults
// set, given appTag. appTag is a string specific to a client's application to identify it.
func DefaultAppPaths(appTag string) (AppPaths, error) {
	return appHome(appTag)
}

type appPaths struct {
	tag  string
	home string
}

func appHome(appTag string) (a appPaths, err error) {
	a = appPaths{tag: appTag}
	if a.home, err = os.UserHomeDir(); err != nil {
		a.home = ""
	}
	return
}

func (a appPaths) HistoryFile() string {
	return filepath.Join(a.LogDir(), strings.ToLower(a.tag)+"-repl-history")
}

var _ AppPaths = appPaths{}
