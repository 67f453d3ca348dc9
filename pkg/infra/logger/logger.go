package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/NeuralTrust/MailSlot/pkg/config"
	"github.com/sirupsen/logrus"
)

const fileTimestampFormat = "20060102_150405"

// NewLogger builds a logger that writes JSON lines to a timestamped file
// under cfg.Dir and mirrors every entry to console. The returned writer
// must be closed on shutdown to flush the file sink.
func NewLogger(cfg config.LogConfig, console io.Writer) (*logrus.Logger, *AsyncFileWriter, error) {
	logger := logrus.New()

	logger.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339,
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime: "time",
			logrus.FieldKeyMsg:  "msg",
		},
	})

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	dir := filepath.Clean(cfg.Dir)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, nil, fmt.Errorf("failed to create logs directory: %w", err)
	}

	logFile := filepath.Join(dir, fmt.Sprintf("%s_%s.log", cfg.FilePrefix, time.Now().Format(fileTimestampFormat)))
	asyncWriter, err := NewAsyncFileWriter(logFile, 32*1024)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize async log writer: %w", err)
	}

	logger.SetOutput(asyncWriter)
	logger.AddHook(NewConsoleHook(console))

	return logger, asyncWriter, nil
}
