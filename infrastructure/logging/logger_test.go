package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupWritesConsoleAndFile(t *testing.T) {
	dir := t.TempDir()
	var console bytes.Buffer

	logger, cleanup, err := Setup(Config{Dir: dir, Console: &console})
	require.NoError(t, err)

	logger.Info("Starting bus booking automation")
	require.NoError(t, cleanup())

	data, err := os.ReadFile(filepath.Join(dir, logFileName))
	require.NoError(t, err)
	assert.Contains(t, string(data), "Starting bus booking automation")
	assert.Contains(t, console.String(), "Starting bus booking automation")
}

func TestSetupDebugLevel(t *testing.T) {
	var console bytes.Buffer

	logger, cleanup, err := Setup(Config{Debug: true, Console: &console})
	require.NoError(t, err)
	defer cleanup()

	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())
	logger.Debug("seat chart html dumped")
	assert.Contains(t, console.String(), "seat chart html dumped")
}
