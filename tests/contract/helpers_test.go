package contract_test

import "io"

// sliceReaderT adapts a fixed byte slice to edit.ByteReader for feeding a
// Parser or ParseChar the follow-up bytes of a sequence under test.
type sliceReaderT struct {
	b []byte
	i int
}

func (r *sliceReaderT) ReadByte() (byte, error) {
	if r.i >= len(r.b) {
		return 0, io.EOF
	}
	c := r.b[r.i]
	r.i++
	return c, nil
}

func sliceReader(b []byte) *sliceReaderT {
	return &sliceReaderT{b: b}
}
