package storage

import (
	"context"
	"fmt"
)

// GetSetting returns the raw value of a setting or [app.ErrNotFound] when it does not exist.
func (st *Storage) GetSetting(ctx context.Context, key string) ([]byte, error) {
	var v []byte
	err := st.dbRO.QueryRowContext(ctx, `SELECT value FROM settings WHERE key = ?;`, key).Scan(&v)
	if err != nil {
		return nil, fmt.Errorf("get setting %s: %w", key, convertGetError(err))
	}
	return v, nil
}

// SetSetting creates or updates a setting.
func (st *Storage) SetSetting(ctx context.Context, key string, value []byte) error {
	_, err := st.dbRW.ExecContext(ctx, `
		INSERT INTO settings (key, value)
		VALUES (?, ?)
		ON CONFLICT (key) DO
		UPDATE SET value = excluded.value;`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("set setting %s: %w", key, err)
	}
	return nil
}

// DeleteSetting deletes a setting. Deleting a non existing key is not an error.
func (st *Storage) DeleteSetting(ctx context.Context, key string) error {
	_, err := st.dbRW.ExecContext(ctx, `DELETE FROM settings WHERE key = ?;`, key)
	if err != nil {
		return fmt.Errorf("delete setting %s: %w", key, err)
	}
	return nil
}

// ListSettingKeys returns the keys of all settings in alphabetical order.
func (st *Storage) ListSettingKeys(ctx context.Context) ([]string, error) {
	rows, err := st.dbRO.QueryContext(ctx, `SELECT key FROM settings ORDER BY key;`)
	if err != nil {
		return nil, fmt.Errorf("list setting keys: %w", err)
	}
	defer rows.Close()
	keys := make([]string, 0)
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, fmt.Errorf("list setting keys: %w", err)
		}
		keys = append(keys, k)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list setting keys: %w", err)
	}
	return keys, nil
}
