package logger

import (
	"os"
	"strings"

	"go.llib.dev/lazyseq/pkg/zerokit"
)

type Level string

func (l Level) String() string { return string(l) }

const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
)

var envToLevel = map[string]Level{
	"debug": LevelDebug,
	"info":  LevelInfo,
	"warn":  LevelWarn,
	"error": LevelError,

	"d": LevelDebug,
	"i": LevelInfo,
	"w": LevelWarn,
	"e": LevelError,
}

func init() {
	if level, ok := lookupLevelFromENV(os.LookupEnv); ok {
		Default.Level = level
	}
}

func lookupLevelFromENV(lookup func(string) (string, bool)) (Level, bool) {
	for _, envKey := range []string{"LOG_LEVEL", "LOGGER_LEVEL", "LOGGING_LEVEL"} {
		if raw, ok := lookup(envKey); ok {
			if level, ok := envToLevel[strings.ToLower(strings.TrimSpace(raw))]; ok {
				return level, ok
			}
		}
	}
	return "", false
}

var levelPriorityMapping = map[Level]int{
	LevelDebug: 0,
	LevelInfo:  1,
	LevelWarn:  2,
	LevelError: 3,
}

func isLevelEnabled(target, level Level) bool {
	return levelPriorityMapping[zerokit.Coalesce(target, LevelInfo)] <= levelPriorityMapping[level]
}
