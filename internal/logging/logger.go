package logging

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

type SetupParams struct {
	LogFileName string
	LogToStdout bool
	LogLevel    string
	LogJSON     bool
}

// Setup configures the global logrus logger: level, format, and an optional
// rolling log file.
func Setup(params SetupParams) {
	if params.LogJSON {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
	logrus.SetLevel(GetLevel(params.LogLevel))

	if params.LogFileName == "" {
		if params.LogToStdout {
			logrus.SetOutput(os.Stdout)
		} else {
			logrus.SetOutput(io.Discard)
		}
		return
	}

	if !strings.HasSuffix(params.LogFileName, ".log") {
		params.LogFileName += ".log"
	}

	fileLogger := &lumberjack.Logger{
		Filename:   params.LogFileName,
		MaxSize:    20, // megabytes
		MaxBackups: 3,
		MaxAge:     60, // days
		Compress:   true,
	}

	if params.LogToStdout {
		logrus.SetOutput(io.MultiWriter(os.Stdout, fileLogger))
	} else {
		logrus.SetOutput(fileLogger)
	}
}

func GetLevel(level string) logrus.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return logrus.TraceLevel
	case "debug":
		return logrus.DebugLevel
	case "info":
		return logrus.InfoLevel
	case "warn", "warning":
		return logrus.WarnLevel
	case "error":
		return logrus.ErrorLevel
	default:
		return logrus.WarnLevel
	}
}
