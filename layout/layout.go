package layout

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mr-c/raptor/codec"
)

const (
	beginMarker = "##CONFIG:"
	endMarker   = "##ENDCONFIG"
	linePrefix  = "##"
)

var (
	// ErrNoConfig is returned when a layout file has no configuration block.
	ErrNoConfig = errors.New("layout: no config block")

	// ErrMalformedConfig is returned when the configuration block cannot be decoded.
	ErrMalformedConfig = errors.New("layout: malformed config block")
)

// Config holds the layout parameters relevant for searching.
type Config struct {
	KmerSize          int     `json:"k"`
	WindowSize        int     `json:"window_size"`
	FalsePositiveRate float64 `json:"false_positive_rate"`
	NumHashFunctions  int     `json:"num_hash_functions"`
}

// ReadConfig extracts the configuration block at the start of r.
// c selects the JSON implementation; nil means codec.Default.
func ReadConfig(r io.Reader, c codec.Codec) (Config, error) {
	if c == nil {
		c = codec.Default
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16<<20)

	if !sc.Scan() || strings.TrimRight(sc.Text(), "\r") != beginMarker {
		if err := sc.Err(); err != nil {
			return Config{}, err
		}
		return Config{}, ErrNoConfig
	}

	var body bytes.Buffer
	closed := false
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if !strings.HasPrefix(line, linePrefix) {
			break
		}
		if line == endMarker {
			closed = true
			break
		}
		body.WriteString(line[len(linePrefix):])
		body.WriteByte('\n')
	}
	if err := sc.Err(); err != nil {
		return Config{}, err
	}
	if !closed {
		return Config{}, fmt.Errorf("%w: missing %s", ErrMalformedConfig, endMarker)
	}

	return decodeConfig(c, body.Bytes())
}

// ReadConfigFile reads the configuration block of the layout file at path.
func ReadConfigFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer f.Close()

	cfg, err := ReadConfig(f, nil)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// decodeConfig accepts the parameters either at the top level or wrapped in
// a single named object.
func decodeConfig(c codec.Codec, data []byte) (Config, error) {
	var fields map[string]rawJSON
	if err := c.Unmarshal(data, &fields); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrMalformedConfig, err)
	}

	if _, flat := fields["k"]; !flat && len(fields) == 1 {
		for _, inner := range fields {
			data = inner
		}
	}

	var cfg Config
	if err := c.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrMalformedConfig, err)
	}
	if cfg.KmerSize <= 0 {
		return Config{}, fmt.Errorf("%w: k must be positive, got %d", ErrMalformedConfig, cfg.KmerSize)
	}
	return cfg, nil
}

// rawJSON defers decoding of a value; it works with every codec.
type rawJSON []byte

func (r *rawJSON) UnmarshalJSON(data []byte) error {
	*r = append((*r)[:0], data...)
	return nil
}
