// Package archive bundles generated images into a downloadable zip.
package archive

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/engr-razib/BrandingAssetGenerator/internal/batch"
)

var ErrNothingToArchive = errors.New("no generated images to archive")

var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9]`)

// EntryName is the file name an item gets inside the archive, e.g.
// "branding-image-Leaderboard---728---90-px.png".
func EntryName(sizeLabel string) string {
	return "branding-image-" + unsafeChars.ReplaceAllString(sizeLabel, "-") + ".png"
}

// ImageFileName is the download name of a single image, e.g.
// "branding-image-Leaderboard---728---90-px-1700000000123.png". The
// timestamp keeps repeated downloads after a regeneration apart.
func ImageFileName(sizeLabel string, now time.Time) string {
	return "branding-image-" + unsafeChars.ReplaceAllString(sizeLabel, "-") + "-" + strconv.FormatInt(now.UnixMilli(), 10) + ".png"
}

// FileName is the archive name offered to the user.
func FileName(now time.Time) string {
	return "branding-assets-" + strconv.FormatInt(now.UnixMilli(), 10) + ".zip"
}

// Build writes one PNG entry per ready item. Items without a payload are
// skipped; colliding names get a numeric suffix.
func Build(items []batch.ItemView) ([]byte, error) {
	buf := &bytes.Buffer{}
	zw := zip.NewWriter(buf)

	seen := make(map[string]int)
	written := 0
	for _, item := range items {
		if !item.Ready() {
			continue
		}

		name := EntryName(item.SizeLabel)
		seen[name]++
		if n := seen[name]; n > 1 {
			name = name[:len(name)-len(".png")] + "-" + strconv.Itoa(n) + ".png"
		}

		w, err := zw.Create(name)
		if err != nil {
			return nil, fmt.Errorf("create %s: %w", name, err)
		}
		if _, err := w.Write(item.Payload); err != nil {
			return nil, fmt.Errorf("write %s: %w", name, err)
		}
		written++
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("close archive: %w", err)
	}
	if written == 0 {
		return nil, ErrNothingToArchive
	}
	return buf.Bytes(), nil
}
