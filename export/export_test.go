package export

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/klauspost/compress/zip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eringen/pagebuilder/page"
)

func readEntries(t *testing.T, archive []byte) map[string]string {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(archive), int64(len(archive)))
	require.NoError(t, err)
	out := make(map[string]string)
	for _, f := range zr.File {
		rc, err := f.Open()
		require.NoError(t, err)
		b, err := io.ReadAll(rc)
		rc.Close()
		require.NoError(t, err)
		out[f.Name] = string(b)
	}
	return out
}

func TestArchiveHoldsOnlyIndex(t *testing.T) {
	doc := page.Default()
	doc.PageData.Title = "<script>x</script>"

	archive, err := Archive(context.Background(), doc, time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	entries := readEntries(t, archive)
	require.Len(t, entries, 1)
	html, ok := entries["index.html"]
	require.True(t, ok)
	assert.True(t, strings.HasPrefix(html, "<!doctype html>"))
	assert.NotContains(t, html, "<script>x</script>")
}

func TestPackageRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Package(&buf, []byte("<p>hi</p>"), time.Now()))
	assert.Equal(t, map[string]string{EntryName: "<p>hi</p>"}, readEntries(t, buf.Bytes()))
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestPackageFailure(t *testing.T) {
	err := Package(failingWriter{}, bytes.Repeat([]byte("x"), 1<<16), time.Now())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPackaging)
}
