package storage_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edbuddy/edbuddy/internal/app"
	"github.com/edbuddy/edbuddy/internal/app/testutil"
)

func TestSetting(t *testing.T) {
	db, st, _ := testutil.NewDBInMemory()
	defer db.Close()
	ctx := context.Background()
	t.Run("can create new", func(t *testing.T) {
		// given
		testutil.MustTruncateTables(db)
		// when
		err := st.SetSetting(ctx, "alpha", []byte("john"))
		// then
		if assert.NoError(t, err) {
			v, err := st.GetSetting(ctx, "alpha")
			if assert.NoError(t, err) {
				assert.Equal(t, []byte("john"), v)
			}
		}
	})
	t.Run("can update existing", func(t *testing.T) {
		// given
		testutil.MustTruncateTables(db)
		err := st.SetSetting(ctx, "alpha", []byte("john"))
		require.NoError(t, err)
		// when
		err = st.SetSetting(ctx, "alpha", []byte("peter"))
		// then
		if assert.NoError(t, err) {
			v, err := st.GetSetting(ctx, "alpha")
			if assert.NoError(t, err) {
				assert.Equal(t, []byte("peter"), v)
			}
		}
	})
	t.Run("should return not found error when key does not exist", func(t *testing.T) {
		// given
		testutil.MustTruncateTables(db)
		// when
		_, err := st.GetSetting(ctx, "alpha")
		// then
		assert.ErrorIs(t, err, app.ErrNotFound)
	})
	t.Run("can delete existing key", func(t *testing.T) {
		// given
		testutil.MustTruncateTables(db)
		err := st.SetSetting(ctx, "alpha", []byte("abc"))
		require.NoError(t, err)
		// when
		err = st.DeleteSetting(ctx, "alpha")
		// then
		if assert.NoError(t, err) {
			_, err := st.GetSetting(ctx, "alpha")
			assert.ErrorIs(t, err, app.ErrNotFound)
		}
	})
	t.Run("can delete not existing key", func(t *testing.T) {
		// given
		testutil.MustTruncateTables(db)
		// when
		err := st.DeleteSetting(ctx, "alpha")
		// then
		assert.NoError(t, err)
	})
	t.Run("can list keys", func(t *testing.T) {
		// given
		testutil.MustTruncateTables(db)
		require.NoError(t, st.SetSetting(ctx, "bravo", []byte("1")))
		require.NoError(t, st.SetSetting(ctx, "alpha", []byte("2")))
		// when
		got, err := st.ListSettingKeys(ctx)
		// then
		if assert.NoError(t, err) {
			assert.Equal(t, []string{"alpha", "bravo"}, got)
		}
	})
}
