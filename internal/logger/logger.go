package logger

import (
	"io"
	"os"

	log "github.com/sirupsen/logrus"
)

func Init() error {
	return InitWithConfig("info", "")
}

// InitWithConfig configures the process-wide logrus logger. An empty
// logFilePath logs to stdout only; otherwise output goes to both stdout and
// the file.
func InitWithConfig(logLevel, logFilePath string) error {
	level, err := log.ParseLevel(logLevel)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	if logFilePath != "" {
		logFile, err := os.OpenFile(logFilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			return err
		}
		log.SetOutput(io.MultiWriter(os.Stdout, logFile))
	}

	return nil
}
