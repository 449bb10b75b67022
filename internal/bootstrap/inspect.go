package bootstrap

import (
	"errors"
	"io/fs"
	"os"
)

// State describes what occupies a path on disk
type State string

const (
	StateDir      State = "directory"
	StateMissing  State = "missing"
	StateNotDir   State = "not a dir"
	StateUnusable State = "error"
)

// DirStatus is the observed state of one expected directory
type DirStatus struct {
	Name  string
	Path  string
	State State
	Err   error
}

// Inspect reports the state of path without modifying anything
func Inspect(name, path string) DirStatus {
	st := DirStatus{Name: name, Path: path}
	info, err := os.Stat(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		st.State = StateMissing
	case err != nil:
		st.State = StateUnusable
		st.Err = err
	case info.IsDir():
		st.State = StateDir
	default:
		st.State = StateNotDir
	}
	return st
}
