package log

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

const (
	defaultLogLevel = InfoLevel
	timeFormat      = "2006-01-02 15:04:05"
	FileName        = "datarange.log"
	DebugLevel      = "debug"
	InfoLevel       = "info"
	WarnLevel       = "warn"
)

// Library code stays silent until Init is called.
var (
	defaultLogger = zerolog.Nop()
	logger        = defaultLogger
)

// Init sets the global level and the sinks. An empty path logs to the console only.
func Init(level, path string) {
	// log level
	if level == "" {
		level = defaultLogLevel
	}
	switch level {
	case DebugLevel:
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case InfoLevel:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case WarnLevel:
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	default:
		panic(fmt.Sprintf("unknown log level: %s", level))
	}
	consoleWriter := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: timeFormat}
	if path == "" {
		logger = zerolog.New(consoleWriter).With().Timestamp().Logger()
		return
	}
	// log file
	logFile := GetFullLogPath(path, FileName)
	fileWriter, err := os.OpenFile(logFile, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		panic(fmt.Sprintf("open log file failed: %s", err))
	}
	multi := zerolog.MultiLevelWriter(consoleWriter, fileWriter)
	logger = zerolog.New(multi).With().Timestamp().Logger()
}

func Logger() *zerolog.Logger {
	return &logger
}

func GetFullLogPath(path, fileName string) string {
	if strings.HasSuffix(path, "/") {
		return path + fileName
	}
	return path + "/" + fileName
}
