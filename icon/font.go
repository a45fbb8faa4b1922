package icon

import (
	"fmt"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"

	"pdficon/log"
)

// FontCandidates are tried in order for the badge text.
var FontCandidates = []string{
	"/System/Library/Fonts/Helvetica.ttc",
	"/System/Library/Fonts/SFNSMono.ttf",
}

// DefaultFontName identifies the built-in fallback face.
const DefaultFontName = "basicfont.Face7x13"

// LoadFace returns a face for the first path that loads at size, together
// with the path it came from. When none loads it returns the built-in 7x13
// face, whose size is fixed. It never fails.
func LoadFace(paths []string, size float64) (font.Face, string) {
	for _, p := range paths {
		face, err := loadFace(p, size)
		if err != nil {
			log.FontSkipped(p, err)
			continue
		}
		log.FontResolved(p, size, false)
		return face, p
	}
	log.FontResolved(DefaultFontName, size, true)
	return basicfont.Face7x13, DefaultFontName
}

func loadFace(path string, size float64) (font.Face, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	// Single TTF/OTF files parse as a collection of one.
	coll, err := opentype.ParseCollection(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	f, err := coll.Font(0)
	if err != nil {
		return nil, fmt.Errorf("font 0 of %s: %w", path, err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("create face for %s: %w", path, err)
	}
	return face, nil
}
