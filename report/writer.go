package report

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"

	"github.com/hupe1980/kmedian/codec"
)

type writeOptions struct {
	codec codec.Codec
	gzip  bool
}

// WriteOption configures Write behavior.
type WriteOption func(*writeOptions)

// WithCodec selects the encoding codec. Defaults to codec.Default.
func WithCodec(c codec.Codec) WriteOption {
	return func(o *writeOptions) {
		if c == nil {
			c = codec.Default
		}
		o.codec = c
	}
}

// WithGzip compresses the encoded report. Useful when reports carry
// assignments for large node sets.
func WithGzip() WriteOption {
	return func(o *writeOptions) {
		o.gzip = true
	}
}

// Write encodes the report to w.
func Write(w io.Writer, r *Report, optFns ...WriteOption) error {
	o := writeOptions{codec: codec.Default}
	for _, fn := range optFns {
		fn(&o)
	}

	data, err := o.codec.Marshal(r)
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}

	if o.gzip {
		zw := gzip.NewWriter(w)
		if _, err := zw.Write(data); err != nil {
			return fmt.Errorf("compress report: %w", err)
		}
		return zw.Close()
	}

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// Read decodes a report written by Write. gzipped reports are detected
// by their magic header.
func Read(rd io.Reader, optFns ...WriteOption) (*Report, error) {
	o := writeOptions{codec: codec.Default}
	for _, fn := range optFns {
		fn(&o)
	}

	data, err := io.ReadAll(rd)
	if err != nil {
		return nil, fmt.Errorf("read report: %w", err)
	}

	if len(data) >= 2 && data[0] == 0x1f && data[1] == 0x8b {
		zr, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("open gzip report: %w", err)
		}
		defer zr.Close()
		if data, err = io.ReadAll(zr); err != nil {
			return nil, fmt.Errorf("decompress report: %w", err)
		}
	}

	var r Report
	if err := o.codec.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("decode report: %w", err)
	}
	return &r, nil
}
