package adapter

import (
	"bytes"
	"io"

	"github.com/cockroachdb/errors"
)

// CompareChunkSize is the number of bytes read from each stream per step.
const CompareChunkSize = 8 * 1024

// EqualStreams reports whether a and b yield exactly the same bytes.
//
// Both streams are consumed in lockstep, one chunk at a time, and the
// comparison stops at the first chunk that differs. Neither stream is
// buffered as a whole.
func EqualStreams(a, b io.Reader) (bool, error) {
	bufA := make([]byte, CompareChunkSize)
	bufB := make([]byte, CompareChunkSize)

	for {
		nA, errA := readChunk(a, bufA)
		if errA != nil {
			return false, errors.Wrap(errA, "failed to read first stream")
		}

		nB, errB := readChunk(b, bufB)
		if errB != nil {
			return false, errors.Wrap(errB, "failed to read second stream")
		}

		if nA != nB || !bytes.Equal(bufA[:nA], bufB[:nB]) {
			return false, nil
		}

		if nA == 0 {
			return true, nil
		}
	}
}

// readChunk fills buf as far as the stream allows. A short count means the
// stream is exhausted.
func readChunk(r io.Reader, buf []byte) (int, error) {
	n, err := io.ReadFull(r, buf)
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return n, nil
	}

	return n, err
}
