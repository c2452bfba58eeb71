package logger

import (
	"os"
	"sync"

	"go.uber.org/zap"
)

var (
	global *zap.Logger
	once   sync.Once
)

// Init builds the global logger. Development encoder by default,
// production JSON when APP_ENV=production.
func Init() {
	once.Do(func() {
		var err error
		if os.Getenv("APP_ENV") == "production" {
			global, err = zap.NewProduction()
		} else {
			global, err = zap.NewDevelopment()
		}
		if err != nil {
			panic("failed to initialize logger: " + err.Error())
		}
	})
}

// L returns the global logger, initializing it on first use.
func L() *zap.Logger {
	if global == nil {
		Init()
	}
	return global
}

// Sync flushes buffered log entries. Call on shutdown.
func Sync() {
	if global != nil {
		_ = global.Sync()
	}
}
