package seqio

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	gzip "github.com/klauspost/pgzip"
)

// Buffer size for file streams. The bufio default of 4KB is small for
// sequencing files; 1MB keeps the gzip reader fed.
const streamBufferSize = 1 << 20

// StreamReader is a buffered, possibly gzip-decompressing reader over an
// input file. Close releases the decompressor and the file handle.
type StreamReader struct {
	buf  *bufio.Reader
	gz   *gzip.Reader
	file *os.File
}

// OpenReader opens path for reading, transparently decompressing when the
// filename ends in ".gz".
func OpenReader(path string) (*StreamReader, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(file)
		if err != nil {
			_ = file.Close()
			return nil, fmt.Errorf("opening gzip stream %s: %w", path, err)
		}
		return &StreamReader{buf: bufio.NewReaderSize(gz, streamBufferSize), gz: gz, file: file}, nil
	}

	return &StreamReader{buf: bufio.NewReaderSize(file, streamBufferSize), file: file}, nil
}

func (r *StreamReader) Read(p []byte) (int, error) {
	return r.buf.Read(p)
}

// Close closes the underlying handles. Safe on every exit path,
// including parse failure.
func (r *StreamReader) Close() error {
	var err error
	if r.gz != nil {
		err = r.gz.Close()
	}
	if cerr := r.file.Close(); err == nil {
		err = cerr
	}
	return err
}

// StreamWriter writes an output file atomically: bytes go to a temporary
// file in the destination directory, compressed when the target name
// ends in ".gz", and the temporary is renamed over the destination only
// on a successful Close. Discard drops the temporary instead, so a
// failed write pass never leaves partial output at the final path.
type StreamWriter struct {
	buf   *bufio.Writer
	gz    *gzip.Writer
	file  *os.File
	path  string
	done  bool
}

// CreateWriter prepares an atomic writer for path.
func CreateWriter(path string) (*StreamWriter, error) {
	dir := filepath.Dir(path)
	file, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return nil, err
	}

	w := &StreamWriter{file: file, path: path}
	if strings.HasSuffix(path, ".gz") {
		w.gz = gzip.NewWriter(file)
		w.buf = bufio.NewWriterSize(w.gz, streamBufferSize)
	} else {
		w.buf = bufio.NewWriterSize(file, streamBufferSize)
	}
	return w, nil
}

func (w *StreamWriter) Write(p []byte) (int, error) {
	return w.buf.Write(p)
}

// Close flushes, closes, and renames the temporary into place.
func (w *StreamWriter) Close() error {
	if w.done {
		return nil
	}
	w.done = true

	err := w.buf.Flush()
	if w.gz != nil {
		if cerr := w.gz.Close(); err == nil {
			err = cerr
		}
	}
	if cerr := w.file.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(w.file.Name())
		return err
	}
	return os.Rename(w.file.Name(), w.path)
}

// Discard abandons the write, removing the temporary file. The
// destination path is left untouched.
func (w *StreamWriter) Discard() error {
	if w.done {
		return nil
	}
	w.done = true

	if w.gz != nil {
		_ = w.gz.Close()
	}
	_ = w.file.Close()
	return os.Remove(w.file.Name())
}
