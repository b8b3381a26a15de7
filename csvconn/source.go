package csvconn

import (
	"bufio"
	"fmt"
	"go-ml.dev/pkg/iokit"
	"golang.org/x/xerrors"
	"io"
	"strings"
)

const maxLineSize = 16 * 1024 * 1024

var compressedExt = []string{".gz", ".bz2", ".xz"}

/*
source is a file, url or compressed file to read lines from
*/
type source struct {
	path  string
	input iokit.Input
	rd    io.ReadCloser
}

func newSource(path, cache string) *source {
	var in iokit.Input
	if strings.Contains(path, "://") {
		in = iokit.Url(path, iokit.Cache(cache))
	} else {
		in = iokit.File(path)
	}
	lp := strings.ToLower(path)
	for _, ext := range compressedExt {
		if strings.HasSuffix(lp, ext) {
			in = iokit.Compressed(in)
			break
		}
	}
	return &source{path: path, input: in}
}

func (src *source) open() (*lines, error) {
	rd, err := src.input.Open()
	if err != nil {
		return nil, newError(FileNotFound, src.path, err)
	}
	src.rd = rd
	return src.lines(), nil
}

/*
rewind returns to the beginning of the source, sources which can't be reset are reopened
*/
func (src *source) rewind() (*lines, error) {
	if err := iokit.ResetFile(src.rd); err == nil {
		return src.lines(), nil
	}
	src.Close()
	return src.open()
}

func (src *source) lines() *lines {
	sc := bufio.NewScanner(src.rd)
	sc.Buffer(make([]byte, 64*1024), maxLineSize)
	return &lines{Scanner: sc, path: src.path}
}

func (src *source) Close() error {
	if src.rd == nil {
		return nil
	}
	err := src.rd.Close()
	src.rd = nil
	return err
}

type lines struct {
	*bufio.Scanner
	path string
	line int
}

func (ls *lines) Scan() bool {
	if ls.Scanner.Scan() {
		ls.line++
		return true
	}
	return false
}

func (ls *lines) Text() string {
	return strings.TrimSuffix(ls.Scanner.Text(), "\r")
}

func (ls *lines) failed() error {
	if err := ls.Err(); err != nil {
		return newError(ReadFailed, ls.path, err)
	}
	return nil
}

/*
at sets the failure location
*/
func (ls *lines) at(err error) error {
	var e *Error
	if xerrors.As(err, &e) && e.Subject == "" {
		e.Subject = fmt.Sprintf("%v:%d", ls.path, ls.line)
	}
	return err
}

/*
rows calls f for every remaining line of the source
*/
func (ls *lines) rows(s *Schema, f func(Row) error) error {
	for ls.Scan() {
		row, err := s.ParseRow(ls.Text())
		if err != nil {
			return ls.at(err)
		}
		if err = f(row); err != nil {
			return err
		}
	}
	return ls.failed()
}
