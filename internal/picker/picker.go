// Package picker selects random tracks from a directory.
package picker

import (
	"errors"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
)

// ErrNoCandidates is returned when the directory holds no playable file
// other than the excluded one.
var ErrNoCandidates = errors.New("no audio files found in the directory")

var audioExts = map[string]bool{
	".mp3": true,
	".wav": true,
	".ogg": true,
}

// IsAudioFile reports whether the path has a playable extension.
func IsAudioFile(path string) bool {
	return audioExts[strings.ToLower(filepath.Ext(path))]
}

// RandomSibling picks a random playable file from the directory containing
// current, never returning current itself.
func RandomSibling(rng *rand.Rand, current string) (string, error) {
	return pick(rng, filepath.Dir(current), filepath.Base(current))
}

// RandomTrack picks a random playable file from dir.
func RandomTrack(rng *rand.Rand, dir string) (string, error) {
	return pick(rng, dir, "")
}

func pick(rng *rand.Rand, dir, exclude string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", err
	}

	var candidates []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || name == exclude || !IsAudioFile(name) {
			continue
		}
		candidates = append(candidates, name)
	}

	if len(candidates) == 0 {
		return "", ErrNoCandidates
	}
	return filepath.Join(dir, candidates[rng.IntN(len(candidates))]), nil
}
