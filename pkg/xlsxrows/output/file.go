package output

import (
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
)

// Create creates the file at path for writing. A ".gz" suffix makes the
// writer gzip-compress what is written; Close finishes the stream and the
// file.
func Create(path string) (io.WriteCloser, error) {
	fh, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	if !strings.HasSuffix(path, ".gz") {
		return fh, nil
	}
	return &gzipFile{Writer: gzip.NewWriter(fh), fh: fh}, nil
}

type gzipFile struct {
	*gzip.Writer
	fh *os.File
}

func (g *gzipFile) Close() error {
	if err := g.Writer.Close(); err != nil {
		g.fh.Close()
		return err
	}
	return g.fh.Close()
}

// WriteFile writes data to path through Create.
func WriteFile(path string, data []byte) error {
	w, err := Create(path)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}
