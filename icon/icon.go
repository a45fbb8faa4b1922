// Package icon draws the PDFCraft application icon: a document with a folded
// corner and a "PDF" badge on a rounded blue square, plus a conversion arrow
// and a small book.
package icon

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"pdficon/log"
)

const (
	DirPerm  = 0755
	FilePerm = 0644
)

// Create renders the icon with the first loadable font in fonts and writes
// it to path, replacing any existing file. It returns path.
func Create(path string, fonts []string) (string, error) {
	start := time.Now()

	face, _ := LoadFace(fonts, BadgeFontSize)
	defer face.Close()

	img := Render(face)
	n, err := writePNG(path, img)
	if err != nil {
		return "", err
	}
	b := img.Bounds()
	log.IconWritten(path, b.Dx(), b.Dy(), n, time.Since(start))
	return path, nil
}

// WriteFile encodes img as PNG at path, creating missing parent directories.
func WriteFile(path string, img image.Image) error {
	_, err := writePNG(path, img)
	return err
}

func writePNG(path string, img image.Image) (int, error) {
	if err := os.MkdirAll(filepath.Dir(path), DirPerm); err != nil {
		return 0, fmt.Errorf("create icon directory: %w", err)
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return 0, fmt.Errorf("encode png: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), FilePerm); err != nil {
		return 0, fmt.Errorf("write %s: %w", path, err)
	}
	return buf.Len(), nil
}
