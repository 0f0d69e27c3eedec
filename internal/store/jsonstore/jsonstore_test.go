package jsonstore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/listkeeper/internal/model"
	"github.com/idilsaglam/listkeeper/internal/store"
)

func TestDir_MissingKeyIsNotFound(t *testing.T) {
	d, err := Open(t.TempDir())
	require.NoError(t, err)

	_, err = d.Get("nothing")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestDir_RoundTripThroughStore(t *testing.T) {
	dir := t.TempDir()
	d, err := Open(dir)
	require.NoError(t, err)

	s := store.New(d, "", nil)
	items := []model.Item{
		{ID: 1, Text: "first item", Decorated: true},
		{ID: 2, Text: "second item"},
	}
	require.NoError(t, s.Save(items))

	// A fresh store over the same directory sees the saved list.
	d2, err := Open(dir)
	require.NoError(t, err)
	assert.Equal(t, items, store.New(d2, "", nil).Load())

	_, err = os.Stat(filepath.Join(dir, store.DefaultKey+".json"))
	require.NoError(t, err)
}

func TestDir_SetLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	d, err := Open(dir)
	require.NoError(t, err)

	require.NoError(t, d.Set("k", []byte(`[]`)))
	require.NoError(t, d.Set("k", []byte(`[{"id":1,"text":"hello","hasIcon":false}]`)))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "k.json", entries[0].Name())
}

func TestDir_MalformedFileLoadsEmpty(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "k.json"), []byte("{not json"), 0o644))

	d, err := Open(dir)
	require.NoError(t, err)
	assert.Empty(t, store.New(d, "k", nil).Load())
}

func TestDir_LoadsBrowserPayload(t *testing.T) {
	dir := t.TempDir()
	payload := `[{"text":"Comprar pão","id":1717171717171,"hasIcon":true}]`
	require.NoError(t, os.WriteFile(filepath.Join(dir, store.DefaultKey+".json"), []byte(payload), 0o644))

	d, err := Open(dir)
	require.NoError(t, err)
	got := store.New(d, "", nil).Load()
	require.Len(t, got, 1)
	assert.Equal(t, model.Item{ID: 1717171717171, Text: "Comprar pão", Decorated: true}, got[0])
}
