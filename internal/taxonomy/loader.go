// Package taxonomy provides the static lookup tables used by the extractors.
// Tables are stored as YAML files, embedded at compile time, and parsed once;
// a loaded Taxonomy is read-only and safe to share across goroutines.
package taxonomy

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed data/*.yaml
var dataFiles embed.FS

var (
	defaultOnce sync.Once
	defaultTax  *Taxonomy
	defaultErr  error
)

// LoadError represents a failure reading or compiling taxonomy data
type LoadError struct {
	File    string
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("taxonomy %s: %s: %v", e.File, e.Message, e.Cause)
	}
	return fmt.Sprintf("taxonomy %s: %s", e.File, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// Default returns the taxonomy built from the embedded data files.
// It is loaded on first use and shared afterwards.
func Default() (*Taxonomy, error) {
	defaultOnce.Do(func() {
		sub, err := fs.Sub(dataFiles, "data")
		if err != nil {
			defaultErr = &LoadError{File: "data", Message: "failed to open embedded data", Cause: err}
			return
		}
		defaultTax, defaultErr = Load(sub)
	})
	return defaultTax, defaultErr
}

// MustDefault returns the embedded taxonomy, panicking if it cannot be loaded.
// The embedded files are part of the binary, so a failure here is a build defect.
func MustDefault() *Taxonomy {
	tax, err := Default()
	if err != nil {
		panic(fmt.Sprintf("failed to load taxonomy: %v", err))
	}
	return tax
}

// Load reads every *.yaml file at the root of fsys (in lexical order) into a
// single set of tables and compiles it.
func Load(fsys fs.FS) (*Taxonomy, error) {
	names, err := fs.Glob(fsys, "*.yaml")
	if err != nil {
		return nil, &LoadError{File: "*.yaml", Message: "failed to list data files", Cause: err}
	}
	if len(names) == 0 {
		return nil, &LoadError{File: "*.yaml", Message: "no data files found"}
	}
	sort.Strings(names)

	var raw rawTables
	for _, name := range names {
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, &LoadError{File: name, Message: "failed to read", Cause: err}
		}
		var file rawTables
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, &LoadError{File: path.Base(name), Message: "failed to parse", Cause: err}
		}
		raw.merge(file)
	}

	return compile(raw)
}
