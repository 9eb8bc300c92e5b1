package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeleteAll(t *testing.T) {
	// given
	ap := appDirs{
		data:     t.TempDir(),
		log:      t.TempDir(),
		settings: t.TempDir(),
	}
	paths := []string{ap.data, ap.log, ap.settings}
	for _, p := range paths {
		x := filepath.Join(p, "dummy.txt")
		if err := os.WriteFile(x, []byte("dummy"), 0644); err != nil {
			t.Fatal(err)
		}
	}
	for _, p := range paths {
		assert.True(t, fileExists(p))
	}
	// when
	err := ap.deleteAll()
	// then
	if assert.NoError(t, err) {
		for _, p := range paths {
			assert.False(t, fileExists(p))
		}
	}
}

func TestInitPaths(t *testing.T) {
	ap := appDirs{
		data: filepath.Join(t.TempDir(), "data"),
		log:  filepath.Join(t.TempDir(), "log"),
	}
	t.Run("should create log folder and return log file path", func(t *testing.T) {
		fn, err := ap.initLogFile()
		if assert.NoError(t, err) {
			assert.Equal(t, filepath.Join(ap.log, logFileName), fn)
			assert.True(t, fileExists(ap.log))
		}
	})
	t.Run("should create data folder and return DSN", func(t *testing.T) {
		dsn, err := ap.initDSN()
		if assert.NoError(t, err) {
			assert.True(t, strings.HasPrefix(dsn, "file:"))
			assert.True(t, strings.HasSuffix(dsn, dbFileName))
			assert.True(t, fileExists(ap.data))
		}
	})
}

func TestLogLevelFlag(t *testing.T) {
	var f logLevelFlag
	if assert.NoError(t, f.Set("debug")) {
		assert.Equal(t, "DEBUG", f.String())
	}
	assert.Error(t, f.Set("invalid"))
}

func fileExists(name string) bool {
	_, err := os.Stat(name)
	if err == nil {
		return true
	}
	if errors.Is(err, os.ErrNotExist) {
		return false
	}
	panic(err)
}
