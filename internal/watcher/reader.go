package watcher

import (
	"bufio"
	"errors"
	"io"
	"strings"

	"github.com/spf13/afero"
)

// LineReader reads a whole file as lines. Failures are *FileReadError.
type LineReader interface {
	ReadLines(path string) ([]string, error)
}

// FSReader reads lines through an afero filesystem.
type FSReader struct {
	fs afero.Fs
}

func NewFSReader(fs afero.Fs) *FSReader {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &FSReader{fs: fs}
}

// ReadLines splits on '\n' and strips a trailing '\r'. A final newline does not
// start another line.
func (r *FSReader) ReadLines(path string) ([]string, error) {
	file, err := r.fs.Open(path)
	if err != nil {
		return nil, &FileReadError{Path: path, Err: err}
	}
	defer file.Close()

	var lines []string
	br := bufio.NewReader(file)
	for {
		line, err := br.ReadString('\n')
		if line != "" {
			line = strings.TrimSuffix(line, "\n")
			lines = append(lines, strings.TrimSuffix(line, "\r"))
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, &FileReadError{Path: path, Err: err}
		}
	}
	return lines, nil
}
