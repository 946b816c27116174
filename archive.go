package ace

import (
	"bufio"
	"compress/gzip"
	"io"
	"os"

	"github.com/klauspost/compress/zstd"
)

var (
	gzipMagic = [2]byte{0x1f, 0x8b}
	zstdMagic = [4]byte{0x28, 0xb5, 0x2f, 0xfd}
)

// unwrapArchive peeks at r's leading bytes and transparently wraps it
// in a gzip or zstd decompressor when the corresponding magic number is
// present, per SPEC_FULL.md's DOMAIN STACK entry: ACE libraries (e.g.
// ENDF/B distributions) are frequently shipped as `.ace.gz`/`.tar.zst`.
// A reader with neither magic is returned unchanged.
func unwrapArchive(r io.Reader) (io.Reader, error) {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}

	head, err := br.Peek(4)
	if err != nil && err != io.EOF {
		return nil, err
	}

	switch {
	case len(head) >= 2 && head[0] == gzipMagic[0] && head[1] == gzipMagic[1]:
		gz, err := gzip.NewReader(br)
		if err != nil {
			return nil, err
		}
		return gz, nil
	case len(head) == 4 && head[0] == zstdMagic[0] && head[1] == zstdMagic[1] && head[2] == zstdMagic[2] && head[3] == zstdMagic[3]:
		zr, err := zstd.NewReader(br)
		if err != nil {
			return nil, err
		}
		return zr.IOReadCloser(), nil
	default:
		return br, nil
	}
}

// openForDecode opens path for reading. Decompression, if any, is
// handled uniformly by unwrapArchive once the file is open; this stays
// a thin os.Open wrapper so DecodeFile has a single error-wrapping
// point.
func openForDecode(path string) (*os.File, error) {
	return os.Open(path)
}
