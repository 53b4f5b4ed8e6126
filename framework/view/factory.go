// Package view provides the template-rendering service the bridge binds as
// "view". It renders html/template files from a configurable list of lookup
// paths, the way Laravel's view factory searches its configured view paths.
package view

import (
	"fmt"
	"html/template"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Factory locates and renders templates.
//
// Lookup paths are searched in order; the first path containing the named
// template wins. compiledPath is where pre-rendered output may be cached by
// hosts; the factory itself keeps parsed templates in memory.
type Factory struct {
	mu           sync.Mutex
	paths        []string
	ext          string
	compiledPath string
	cache        map[string]*template.Template
}

// NewFactory creates a Factory over the given lookup paths.
// ext defaults to ".html" when empty.
func NewFactory(paths []string, compiledPath string, ext string) *Factory {
	if ext == "" {
		ext = ".html"
	}
	return &Factory{
		paths:        paths,
		ext:          ext,
		compiledPath: compiledPath,
		cache:        make(map[string]*template.Template),
	}
}

// Paths returns the configured lookup paths.
func (f *Factory) Paths() []string { return f.paths }

// CompiledPath returns the configured compiled-output directory.
func (f *Factory) CompiledPath() string { return f.compiledPath }

// Exists reports whether a named template can be located.
//
//	// Laravel: View::exists('emails.customer')
func (f *Factory) Exists(name string) bool {
	_, err := f.find(name)
	return err == nil
}

// Render writes the named template, executed with data, to w.
// Dots in the name map to path separators ("emails.customer" →
// "emails/customer.html"), matching the framework's view naming.
func (f *Factory) Render(w io.Writer, name string, data any) error {
	tmpl, err := f.load(name)
	if err != nil {
		return err
	}
	return tmpl.Execute(w, data)
}

// RenderString renders the named template to a string.
func (f *Factory) RenderString(name string, data any) (string, error) {
	var sb strings.Builder
	if err := f.Render(&sb, name, data); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// Flush empties the parsed-template cache (e.g. after templates change).
func (f *Factory) Flush() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cache = make(map[string]*template.Template)
}

// load returns a parsed template, from cache when possible.
func (f *Factory) load(name string) (*template.Template, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if tmpl, ok := f.cache[name]; ok {
		return tmpl, nil
	}

	path, err := f.find(name)
	if err != nil {
		return nil, err
	}
	tmpl, err := template.ParseFiles(path)
	if err != nil {
		return nil, err
	}
	f.cache[name] = tmpl
	return tmpl, nil
}

// find locates the file for a view name across the lookup paths.
func (f *Factory) find(name string) (string, error) {
	rel := strings.ReplaceAll(name, ".", string(filepath.Separator)) + f.ext
	for _, dir := range f.paths {
		candidate := filepath.Join(dir, rel)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("view: template [%s] not found in %v", name, f.paths)
}
