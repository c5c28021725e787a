package pipeline

import (
	"fmt"
	"strings"
)

type InputReadError struct {
	Path string
	Err  error
}

func (e *InputReadError) Error() string {
	return fmt.Sprintf("read input %s: %v", e.Path, e.Err)
}

func (e *InputReadError) Unwrap() error { return e.Err }

type SchemaError struct {
	Path    string
	Table   string
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("%s table %s is missing required columns: %s", e.Table, e.Path, strings.Join(e.Missing, ", "))
}

type FileWriteError struct {
	Path string
	Err  error
}

func (e *FileWriteError) Error() string {
	return fmt.Sprintf("write output %s: %v", e.Path, e.Err)
}

func (e *FileWriteError) Unwrap() error { return e.Err }
