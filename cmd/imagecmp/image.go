package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// similarityThreshold is the fraction of positionally equal bytes at which
// two images count as the same picture.
const similarityThreshold = 0.8

var errEmptyImage = errors.New("image must contain at least one byte")

// Image is an opaque block of pixel bytes.
type Image []byte

// MatchRatio returns the share of positions, over the common prefix, where
// img and other hold the same byte. The denominator is len(img), so the
// ratio is not symmetric when the lengths differ.
func (img Image) MatchRatio(other Image) float32 {
	matches := 0
	for i := range min(len(img), len(other)) {
		if img[i] == other[i] {
			matches++
		}
	}
	return float32(matches) / float32(len(img))
}

func (img Image) Approx(other Image) bool {
	return img.MatchRatio(other) >= similarityThreshold
}

// parseImage reads a comma-separated list of byte values such as "1,2,255".
func parseImage(s string) (Image, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, errEmptyImage
	}
	fields := strings.Split(s, ",")
	img := make(Image, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimSpace(f)
		v, err := strconv.ParseUint(f, 10, 8)
		if err != nil {
			return nil, fmt.Errorf("parse byte %q: %w", f, err)
		}
		img = append(img, byte(v))
	}
	return img, nil
}
