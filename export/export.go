// Package export packages a rendered landing page into the downloadable
// archive.
package export

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/klauspost/compress/zip"

	"github.com/eringen/pagebuilder/page"
	"github.com/eringen/pagebuilder/render"
)

const (
	// ArchiveName is the file name offered to the browser.
	ArchiveName = "landing-page.zip"
	// EntryName is the only file inside the archive.
	EntryName = "index.html"
)

// ErrPackaging wraps every failure to produce the archive.
var ErrPackaging = errors.New("packaging failed")

// Package writes a ZIP archive to w holding html as its single index.html
// entry.
func Package(w io.Writer, html []byte, modified time.Time) error {
	zw := zip.NewWriter(w)
	f, err := zw.CreateHeader(&zip.FileHeader{
		Name:     EntryName,
		Method:   zip.Deflate,
		Modified: modified,
	})
	if err != nil {
		return fmt.Errorf("%w: create %s: %v", ErrPackaging, EntryName, err)
	}
	if _, err := f.Write(html); err != nil {
		return fmt.Errorf("%w: write %s: %v", ErrPackaging, EntryName, err)
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("%w: finish archive: %v", ErrPackaging, err)
	}
	return nil
}

// Archive renders doc and returns the finished archive bytes.
func Archive(ctx context.Context, doc *page.Document, modified time.Time) ([]byte, error) {
	html, err := render.ExportHTML(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPackaging, err)
	}
	var buf bytes.Buffer
	if err := Package(&buf, html, modified); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
