package blob

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDiskStoragePut(t *testing.T) {
	root := t.TempDir()
	d, err := NewDiskStorage(root)
	require.NoError(t, err)

	key := NewKey("front.jpg", time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC))
	ref, err := d.Put(context.Background(), key, "image/jpeg", strings.NewReader("jpegbytes"))
	require.NoError(t, err)
	require.Equal(t, key, ref)

	data, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(key)))
	require.NoError(t, err)
	require.Equal(t, "jpegbytes", string(data))
}

func TestDiskStorageRefusesOverwrite(t *testing.T) {
	d, err := NewDiskStorage(t.TempDir())
	require.NoError(t, err)

	key := "uploads/2026/08/28/fixed-key.jpg"
	_, err = d.Put(context.Background(), key, "", strings.NewReader("one"))
	require.NoError(t, err)

	_, err = d.Put(context.Background(), key, "", strings.NewReader("two"))
	require.Error(t, err)
}

func TestNewKeyShape(t *testing.T) {
	now := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)

	key := NewKey("My Phone (1).JPG", now)
	require.True(t, strings.HasPrefix(key, "uploads/2026/08/28/"))
	require.True(t, strings.HasSuffix(key, "-MyPhone1.JPG"))

	// Path traversal attempts collapse to the base name.
	key = NewKey("../../etc/passwd", now)
	require.True(t, strings.HasSuffix(key, "-passwd"))
	require.NotContains(t, key, "..")
}

func TestNewKeyEmptyFilename(t *testing.T) {
	key := NewKey("", time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	require.True(t, strings.HasSuffix(key, "-upload"))
}
