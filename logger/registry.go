package logger

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog"
)

// components caches named component loggers, name -> *Logger.
var components sync.Map

// Register stores l as the logger for a component.
func Register(name string, l *Logger) {
	components.Store(name, l)
}

// Get returns the component logger registered under name, or the global
// logger tagged with name when none is registered.
func Get(name string) *Logger {
	if l, ok := components.Load(name); ok {
		return l.(*Logger)
	}
	return GetGlobalLogger().WithComponent(name)
}

// RegisterComponents derives a logger for each name from the global logger
// and registers it. levels overrides the level of individual components;
// components without an entry inherit the global level. Call it again after
// replacing the global logger.
func RegisterComponents(levels map[string]string, names ...string) error {
	base := GetGlobalLogger()
	for _, name := range names {
		l := base.WithComponent(name)
		if raw, ok := levels[name]; ok {
			level, err := zerolog.ParseLevel(raw)
			if err != nil {
				return fmt.Errorf("logging.components.%s: %w", name, err)
			}
			l = l.WithLevel(level)
		}
		Register(name, l)
	}
	return nil
}
