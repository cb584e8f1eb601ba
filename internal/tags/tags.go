// Package tags reads display metadata from audio files.
package tags

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dhowden/tag"
	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/vorbis"
	"github.com/gopxl/beep/v2/wav"
)

// Title returns the embedded tag title of the file, falling back to the
// file basename when the file carries no readable tags.
func Title(path string) string {
	f, err := os.Open(path)
	if err != nil {
		return filepath.Base(path)
	}
	defer f.Close()

	m, err := tag.ReadFrom(f)
	if err != nil || m.Title() == "" {
		return filepath.Base(path)
	}
	return m.Title()
}

// Duration decodes the stream headers of the file to compute its total
// duration. Unreadable or corrupt files return an error; callers render
// such tracks with a duration of zero rather than failing.
func Duration(path string) (time.Duration, error) {
	ext := strings.ToLower(filepath.Ext(path))

	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	var streamer beep.StreamSeekCloser
	var format beep.Format

	switch ext {
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	case ".wav":
		streamer, format, err = wav.Decode(f)
	case ".ogg":
		streamer, format, err = vorbis.Decode(f)
	default:
		return 0, fmt.Errorf("unsupported format: %s", ext)
	}
	if err != nil {
		return 0, err
	}
	defer streamer.Close()

	return format.SampleRate.D(streamer.Len()), nil
}
