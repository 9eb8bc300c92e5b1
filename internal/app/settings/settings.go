// Package settings provides a key/value store for user settings backed by the database.
package settings

import (
	"bytes"
	"context"
	"encoding/gob"
	"errors"
	"log/slog"

	"github.com/edbuddy/edbuddy/internal/app"
)

type Storage interface {
	DeleteSetting(ctx context.Context, key string) error
	GetSetting(ctx context.Context, key string) ([]byte, error)
	SetSetting(ctx context.Context, key string, value []byte) error
}

// Settings is a key/value store for user settings.
//
// Values are gob encoded and stored in the database.
// Storage errors are logged and never returned: reads fall back to the given default
// and failed writes are dropped.
type Settings struct {
	st Storage
}

var _ app.SettingsStore = (*Settings)(nil)

func New(st Storage) *Settings {
	s := &Settings{st: st}
	return s
}

func (s *Settings) FloatWithFallback(key string, fallback float64) float64 {
	return getWithFallback(s.st, key, fallback)
}

func (s *Settings) SetFloat(key string, value float64) {
	set(s.st, key, value)
}

func (s *Settings) IntWithFallback(key string, fallback int) int {
	return getWithFallback(s.st, key, fallback)
}

func (s *Settings) SetInt(key string, value int) {
	set(s.st, key, value)
}

func (s *Settings) StringWithFallback(key string, fallback string) string {
	return getWithFallback(s.st, key, fallback)
}

func (s *Settings) SetString(key string, value string) {
	set(s.st, key, value)
}

// RemoveValue removes a key. Removing a non existing key does nothing.
func (s *Settings) RemoveValue(key string) {
	if err := s.st.DeleteSetting(context.Background(), key); err != nil {
		slog.Error("Failed to remove setting", "key", key, "error", err)
	}
}

func getWithFallback[T any](st Storage, key string, fallback T) T {
	data, err := st.GetSetting(context.Background(), key)
	if errors.Is(err, app.ErrNotFound) {
		return fallback
	}
	if err != nil {
		slog.Error("Failed to read setting", "key", key, "error", err)
		return fallback
	}
	v, err := anyFromBytes[T](data)
	if err != nil {
		slog.Warn("Setting has unexpected type. Using fallback", "key", key, "error", err)
		return fallback
	}
	return v
}

func set[T any](st Storage, key string, value T) {
	data, err := bytesFromAny(value)
	if err != nil {
		slog.Error("Failed to encode setting", "key", key, "error", err)
		return
	}
	if err := st.SetSetting(context.Background(), key, data); err != nil {
		slog.Error("Failed to write setting", "key", key, "error", err)
	}
}

func anyFromBytes[T any](bb []byte) (T, error) {
	var t T
	buf := bytes.NewBuffer(bb)
	dec := gob.NewDecoder(buf)
	if err := dec.Decode(&t); err != nil {
		return t, err
	}
	return t, nil
}

func bytesFromAny[T any](value T) ([]byte, error) {
	var buf bytes.Buffer
	enc := gob.NewEncoder(&buf)
	if err := enc.Encode(value); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
