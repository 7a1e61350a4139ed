package replay

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/zstd"
	"github.com/vmihailenco/msgpack/v5"
)

// Magic prefixes every replay file.
var Magic = [4]byte{'D', 'R', 'L', '1'}

// ErrBadMagic is returned when a file is not a replay.
var ErrBadMagic = errors.New("replay: not a replay file")

// Encode writes the magic followed by the zstd-compressed msgpack body.
func Encode(w io.Writer, rep *Replay) error {
	body, err := msgpack.Marshal(rep)
	if err != nil {
		return fmt.Errorf("replay: cannot encode: %w", err)
	}
	if _, err := w.Write(Magic[:]); err != nil {
		return fmt.Errorf("replay: cannot write: %w", err)
	}
	zw, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedBetterCompression))
	if err != nil {
		return fmt.Errorf("replay: cannot compress: %w", err)
	}
	if _, err := zw.Write(body); err != nil {
		zw.Close()
		return fmt.Errorf("replay: cannot write: %w", err)
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("replay: cannot write: %w", err)
	}
	return nil
}

// Decode reads a replay written by Encode.
func Decode(r io.Reader) (*Replay, error) {
	var magic [4]byte
	if _, err := io.ReadFull(r, magic[:]); err != nil {
		return nil, ErrBadMagic
	}
	if magic != Magic {
		return nil, ErrBadMagic
	}

	zr, err := zstd.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("replay: cannot decompress: %w", err)
	}
	defer zr.Close()

	body, err := io.ReadAll(zr)
	if err != nil {
		return nil, fmt.Errorf("replay: cannot decompress: %w", err)
	}

	var rep Replay
	if err := msgpack.Unmarshal(body, &rep); err != nil {
		return nil, fmt.Errorf("replay: cannot decode: %w", err)
	}
	if rep.Version != Version {
		return nil, fmt.Errorf("replay: unsupported version %d", rep.Version)
	}
	return &rep, nil
}

// Save writes rep to path, creating parent directories.
func Save(path string, rep *Replay) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("replay: cannot create directory: %w", err)
	}
	var buf bytes.Buffer
	if err := Encode(&buf, rep); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("replay: cannot write %s: %w", path, err)
	}
	return nil
}

// Load reads the replay at path.
func Load(path string) (*Replay, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("replay: cannot open %s: %w", path, err)
	}
	defer f.Close()
	return Decode(bufio.NewReader(f))
}
