// Package logging sets up module-scoped leveled loggers on top of
// github.com/op/go-logging.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/op/go-logging"
)

const (
	pkgLogID      = "logging"
	defaultFormat = "%{color}%{time:2006-01-02 15:04:05.000} [%{module}] %{shortfunc} -> %{level:.4s}%{color:reset} %{message}"
	plainFormat   = "%{time:2006-01-02 15:04:05.000} [%{module}] %{level:.4s} %{message}"
	defaultLevel  = logging.WARNING
)

var (
	logger *logging.Logger

	modules = make(map[string]struct{})
	lock    sync.Mutex
)

func init() {
	logger = logging.MustGetLogger(pkgLogID)
	Init(os.Stderr, false)
}

// Init routes every logger to output. Colors are only used when color is set.
func Init(output io.Writer, color bool) {
	format := plainFormat
	if color {
		format = defaultFormat
	}
	backend := logging.NewLogBackend(output, "", 0)
	formatted := logging.NewBackendFormatter(backend, logging.MustStringFormatter(format))
	logging.SetBackend(formatted).SetLevel(defaultLevel, "")
}

// MustGetLogger returns the logger for module and remembers the module name
// so that level specs can refer to it.
func MustGetLogger(module string) *logging.Logger {
	l := logging.MustGetLogger(module)
	lock.Lock()
	defer lock.Unlock()
	modules[module] = struct{}{}
	return l
}

// ModuleLevel returns the active level of module.
func ModuleLevel(module string) string {
	return logging.GetLevel(module).String()
}

// InitFromSpec applies a level spec of the form
//
//	[<module>[,<module>...]=]<level>[:[<module>[,<module>...]=]<level>...]
//
// A bare level sets the default for all modules. It returns the default level
// in effect afterwards.
func InitFromSpec(spec string) (string, error) {
	levelAll := defaultLevel
	overrides := map[string]logging.Level{}

	if spec != "" {
		for _, field := range strings.Split(spec, ":") {
			split := strings.Split(field, "=")
			switch len(split) {
			case 1:
				lvl, err := logging.LogLevel(field)
				if err != nil {
					return "", fmt.Errorf("invalid log level %q: %w", field, err)
				}
				levelAll = lvl
			case 2:
				lvl, err := logging.LogLevel(split[1])
				if err != nil {
					return "", fmt.Errorf("invalid log level in %q: %w", field, err)
				}
				if split[0] == "" {
					return "", fmt.Errorf("log level override %q names no module", field)
				}
				for _, module := range strings.Split(split[0], ",") {
					overrides[module] = lvl
				}
			default:
				return "", fmt.Errorf("invalid log level override %q", field)
			}
		}
	}

	logging.SetLevel(levelAll, "")
	lock.Lock()
	for module := range modules {
		logging.SetLevel(levelAll, module)
	}
	lock.Unlock()
	for module, lvl := range overrides {
		logger.Debugf("Setting logging level for module '%s' to '%s'", module, lvl)
		logging.SetLevel(lvl, module)
	}

	return levelAll.String(), nil
}
