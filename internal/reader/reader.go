// Package reader loads the whole input file into memory as UTF-8 text
package reader

import (
	"errors"
	"fmt"
	"os"
	"unicode/utf8"
)

var (
	ErrIsDirectory     = errors.New("is a directory")
	ErrInvalidEncoding = errors.New("stream did not contain valid UTF-8")
)

// FileReadError is returned by ReadFile for any open/read/decoding failure.
type FileReadError struct {
	Path string
	Err  error
}

func (e *FileReadError) Error() string {
	return fmt.Sprintf("couldn't read file %q: %v", e.Path, e.Err)
}

func (e *FileReadError) Unwrap() error {
	return e.Err
}

func ReadFile(fileName string) (string, error) {
	// Stat отдельно, чтобы отличить папку от файла до чтения
	info, err := os.Stat(fileName)
	if err != nil {
		return "", &FileReadError{Path: fileName, Err: err}
	}
	if info.IsDir() {
		return "", &FileReadError{Path: fileName, Err: ErrIsDirectory}
	}

	raw, err := os.ReadFile(fileName)
	if err != nil {
		return "", &FileReadError{Path: fileName, Err: err}
	}

	// текст должен быть валидным UTF-8, иначе регистр не сложить корректно
	if !utf8.Valid(raw) {
		return "", &FileReadError{Path: fileName, Err: ErrInvalidEncoding}
	}

	return string(raw), nil
}
