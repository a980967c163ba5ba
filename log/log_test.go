package log

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLogNotInitialized(t *testing.T) {
	Info("Test log.Info", " value is ", 10)
	Infof("Test log.Infof %d", 10)
	Infow("Test log.Infow", "value", 10)
	Debugf("Test log.Debugf %d", 10)
	Error("Test log.Error", " value is ", 10)
	Errorf("Test log.Errorf %d", 10)
	Errorw("Test log.Errorw", "value", 10)
	Warnf("Test log.Warnf %d", 10)
	Warnw("Test log.Warnw", "value", 10)
}

func TestLog(t *testing.T) {
	cfg := Config{
		Environment: EnvironmentDevelopment,
		Level:       "debug",
		Outputs:     []string{"stderr"}, // []string{"stdout", "test.log"}
	}

	Init(cfg)

	Info("Test log.Info", " value is ", 10)
	Infof("Test log.Infof %d", 10)
	Infow("Test log.Infow", "value", 10)
	Debugf("Test log.Debugf %d", 10)
	Error("Test log.Error", " value is ", 10)
	Errorf("Test log.Errorf %d", 10)
	Errorw("Test log.Errorw", "value", 10)
	Warnf("Test log.Warnf %d", 10)
	Warnw("Test log.Warnw", "value", 10)

	WithFields("module", "test").Infof("scoped %s", "logger")
}

func TestNewLoggerInvalidLevel(t *testing.T) {
	_, _, err := NewLogger(Config{Environment: EnvironmentProduction, Level: "verbose", Outputs: []string{"stderr"}})
	require.Error(t, err)
}

func TestAppendStackTrace(t *testing.T) {
	args := appendStackTraceMaybeArgs([]interface{}{"msg", errors.New("boom")})
	require.Len(t, args, 3)

	args = appendStackTraceMaybeArgs([]interface{}{"msg", 1})
	require.Len(t, args, 2)
}
