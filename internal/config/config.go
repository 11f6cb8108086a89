package config

import (
	"flag"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// DefaultApiUrl is the backend base endpoint used when nothing else is configured.
const DefaultApiUrl = "http://localhost:8081/api"

// Profile names accepted under operadoras.profile.
const (
	ProfileEncodingAware = "encoding_aware"
	ProfilePlain         = "plain"
)

// v is private to this package so a consuming process keeps its own global viper untouched.
var v = viper.New()
var once sync.Once
var logger *zap.SugaredLogger
var loggerOnce sync.Once
var logLevel = zap.NewAtomicLevelAt(zapcore.InfoLevel)

// isTestRun returns true if the current process is a Go test binary.
func isTestRun() bool {
	return flag.Lookup("test.v") != nil || filepath.Ext(os.Args[0]) == ".test"
}

func initConfig() {
	once.Do(func() {
		v.SetDefault("operadoras.api_url", DefaultApiUrl)
		v.SetDefault("operadoras.profile", ProfileEncodingAware)
		v.SetDefault("log.level", "info")

		root, err := getProjectRoot()
		if err != nil {
			GetLogger().Debugw("Project root not found, using defaults", "error", err)
			return
		}
		v.SetConfigType("yaml")

		v.SetConfigName("config")
		v.AddConfigPath(root)
		if err = v.ReadInConfig(); err != nil {
			GetLogger().Warnw("Error reading config file", "error", err)
		}

		if isTestRun() {
			v.SetConfigName("config_test")
			v.AddConfigPath(root)
			if err = v.MergeInConfig(); err != nil {
				GetLogger().Debugw("No test config merged", "error", err)
			}
		}

		applyLogLevel(v.GetString("log.level"))
	})
}

func getProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", os.ErrNotExist
}

// GetOperadorasApiUrl returns the backend base URL without a trailing slash.
func GetOperadorasApiUrl() string {
	initConfig()
	url := strings.TrimRight(v.GetString("operadoras.api_url"), "/")
	if url == "" {
		return DefaultApiUrl
	}
	return url
}

// GetProfile returns the configured client profile. Unknown values fall back
// to ProfileEncodingAware.
func GetProfile() string {
	initConfig()
	switch p := strings.ToLower(strings.TrimSpace(v.GetString("operadoras.profile"))); p {
	case ProfilePlain:
		return p
	default:
		return ProfileEncodingAware
	}
}

func GetLogLevel() string {
	initConfig()
	return logLevel.Level().String()
}

// SetForTest overrides a config key. Use only in tests.
func SetForTest(key string, value any) {
	v.Set(key, value)
}

// ReloadConfigForTest resets the config singleton and reloads Viper config. Use only in tests.
func ReloadConfigForTest() {
	once = sync.Once{}
	initConfig()
}

func applyLogLevel(level string) {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(strings.ToLower(level))); err != nil {
		GetLogger().Warnw("Unknown log level, keeping current", "level", level)
		return
	}
	logLevel.SetLevel(lvl)
}

// loggerConfig is the development config without stack traces; a 404 from
// the backend is logged at warn and is not a crash.
func loggerConfig() zap.Config {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = logLevel
	cfg.DisableStacktrace = true
	return cfg
}

func GetLogger() *zap.SugaredLogger {
	loggerOnce.Do(func() {
		l, err := loggerConfig().Build()
		if err != nil {
			panic(err)
		}
		logger = l.Sugar()
	})
	return logger
}
