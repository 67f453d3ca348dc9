package logger_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/NeuralTrust/MailSlot/pkg/config"
	"github.com/NeuralTrust/MailSlot/pkg/infra/logger"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_WritesFileAndConsole(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	var console bytes.Buffer

	log, writer, err := logger.NewLogger(config.LogConfig{
		Level:      "debug",
		Dir:        dir,
		FilePrefix: "server",
	}, &console)
	require.NoError(t, err)

	log.WithField("email", "a@b.c").Info("Received POST email")
	require.NoError(t, writer.Close())

	assert.Equal(t, logrus.DebugLevel, log.GetLevel())
	assert.Contains(t, console.String(), "Received POST email")
	assert.Contains(t, console.String(), "level=info")

	name := filepath.Base(writer.Name())
	assert.True(t, strings.HasPrefix(name, "server_"), name)
	assert.True(t, strings.HasSuffix(name, ".log"), name)

	data, err := os.ReadFile(writer.Name())
	require.NoError(t, err)
	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(data), &line))
	assert.Equal(t, "Received POST email", line["msg"])
	assert.Equal(t, "a@b.c", line["email"])
	assert.NotEmpty(t, line["time"])
}

func TestNewLogger_UnknownLevelFallsBackToInfo(t *testing.T) {
	log, writer, err := logger.NewLogger(config.LogConfig{
		Level:      "chatty",
		Dir:        t.TempDir(),
		FilePrefix: "server",
	}, &bytes.Buffer{})
	require.NoError(t, err)
	defer writer.Close()

	assert.Equal(t, logrus.InfoLevel, log.GetLevel())
}

func TestNewLogger_FailsWhenDirIsAFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "not-a-dir")
	require.NoError(t, os.WriteFile(file, nil, 0600))

	_, _, err := logger.NewLogger(config.LogConfig{Dir: file, FilePrefix: "server"}, &bytes.Buffer{})
	assert.Error(t, err)
}

func TestAsyncFileWriter_CloseIsIdempotent(t *testing.T) {
	w, err := logger.NewAsyncFileWriter(filepath.Join(t.TempDir(), "a.log"), 1024)
	require.NoError(t, err)

	n, err := w.Write([]byte("line\n"))
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	require.NoError(t, w.Close())
	assert.NoError(t, w.Close())

	data, err := os.ReadFile(w.Name())
	require.NoError(t, err)
	assert.Equal(t, "line\n", string(data))
}
