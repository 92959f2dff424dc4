package layout

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mr-c/raptor/correction"
)

// MinimiserHeader describes how a minimiser file was computed.
type MinimiserHeader struct {
	Shape      correction.Shape
	WindowSize int
}

// HeaderPath returns the sidecar header path of a minimiser file.
func HeaderPath(minimiserFile string) string {
	return strings.TrimSuffix(minimiserFile, filepath.Ext(minimiserFile)) + ".header"
}

// ReadMinimiserHeader parses "<shape bits> <window size>" from r.
func ReadMinimiserHeader(r io.Reader) (MinimiserHeader, error) {
	var (
		shape  string
		window int
	)
	if _, err := fmt.Fscan(r, &shape, &window); err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return MinimiserHeader{}, fmt.Errorf("%w: %w", ErrMalformedConfig, err)
	}

	s, err := correction.ParseShape(shape)
	if err != nil {
		return MinimiserHeader{}, fmt.Errorf("%w: %w", ErrMalformedConfig, err)
	}
	if window < s.Size() {
		return MinimiserHeader{}, fmt.Errorf("%w: window size %d smaller than shape span %d", ErrMalformedConfig, window, s.Size())
	}
	return MinimiserHeader{Shape: s, WindowSize: window}, nil
}

// ReadMinimiserHeaderFile reads the header belonging to minimiserFile.
func ReadMinimiserHeaderFile(minimiserFile string) (MinimiserHeader, error) {
	path := HeaderPath(minimiserFile)
	f, err := os.Open(path)
	if err != nil {
		return MinimiserHeader{}, err
	}
	defer f.Close()

	h, err := ReadMinimiserHeader(f)
	if err != nil {
		return MinimiserHeader{}, fmt.Errorf("%s: %w", path, err)
	}
	return h, nil
}
