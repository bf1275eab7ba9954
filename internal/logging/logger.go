package logging

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

var Logger = logrus.New()

// Init configures the shared logger. When logFile is non-empty the output is
// duplicated into a size-rotated file next to stdout.
func Init(logFile string) {
	Logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	Logger.SetLevel(logrus.InfoLevel)

	if logFile == "" {
		Logger.SetOutput(os.Stdout)
		return
	}

	rotated := &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    10, // megabytes
		MaxBackups: 5,
		MaxAge:     28, // days
	}
	Logger.SetOutput(io.MultiWriter(os.Stdout, rotated))
}
