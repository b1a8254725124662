package templates

import (
	"errors"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"os"
	"path"
	"strings"
	"sync"
)

// ErrTemplateNotFound is reported when none of the candidate template names
// exist in the source filesystem.
var ErrTemplateNotFound = errors.New("template not found")

// Config holds environment-driven template source settings.
type Config struct {
	Dir    string `env:"TEMPLATES_DIR" envDefault:"templates"`
	Ext    string `env:"TEMPLATES_EXT" envDefault:".html"`
	Reload bool   `env:"TEMPLATES_RELOAD" envDefault:"false"`
}

// Option configures a Source.
type Option func(*Source)

// WithFuncs adds a function map available to all templates.
func WithFuncs(funcs template.FuncMap) Option {
	return func(s *Source) {
		s.funcs = funcs
	}
}

// WithReload re-parses templates on every render instead of caching them.
// Intended for development.
func WithReload(reload bool) Option {
	return func(s *Source) {
		s.reload = reload
	}
}

// WithExt sets a default file extension appended to candidate names that
// carry none, so views can name templates "page" instead of "page.html".
func WithExt(ext string) Option {
	return func(s *Source) {
		if ext != "" && !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		s.ext = ext
	}
}

// Source selects and renders html/template files from a filesystem. It is
// safe for concurrent use by multiple requests.
type Source struct {
	fsys   fs.FS
	funcs  template.FuncMap
	ext    string
	reload bool

	mu    sync.RWMutex
	cache map[string]*template.Template
}

// New creates a Source reading templates from fsys.
func New(fsys fs.FS, opts ...Option) *Source {
	s := &Source{
		fsys:  fsys,
		cache: make(map[string]*template.Template),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewFromConfig creates a Source reading templates from the configured
// directory.
func NewFromConfig(cfg Config, opts ...Option) (*Source, error) {
	info, err := os.Stat(cfg.Dir)
	if err != nil {
		return nil, fmt.Errorf("templates: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("templates: %s is not a directory", cfg.Dir)
	}
	opts = append(opts, WithExt(cfg.Ext), WithReload(cfg.Reload))
	return New(os.DirFS(cfg.Dir), opts...), nil
}

// Render selects the first candidate name that exists in the source
// filesystem and executes it into w with the given data. It reports
// ErrTemplateNotFound when no candidate exists.
func (s *Source) Render(w io.Writer, names []string, data any) error {
	name, err := s.selectName(names)
	if err != nil {
		return err
	}
	tmpl, err := s.load(name)
	if err != nil {
		return err
	}
	return tmpl.Execute(w, data)
}

// Exists reports whether a template with the given name exists in the
// source filesystem.
func (s *Source) Exists(name string) bool {
	info, err := fs.Stat(s.fsys, name)
	return err == nil && !info.IsDir()
}

// selectName returns the first existing candidate name. A candidate without
// a file extension is also tried with the configured default extension.
func (s *Source) selectName(names []string) (string, error) {
	for _, name := range names {
		if s.Exists(name) {
			return name, nil
		}
		if s.ext != "" && path.Ext(name) == "" && s.Exists(name+s.ext) {
			return name + s.ext, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrTemplateNotFound, strings.Join(names, ", "))
}

// load parses the named template, serving from cache unless reload is on.
func (s *Source) load(name string) (*template.Template, error) {
	if !s.reload {
		s.mu.RLock()
		tmpl, ok := s.cache[name]
		s.mu.RUnlock()
		if ok {
			return tmpl, nil
		}
	}

	tmpl, err := template.New(path.Base(name)).Funcs(s.funcs).ParseFS(s.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("templates: parse %s: %w", name, err)
	}

	if !s.reload {
		s.mu.Lock()
		s.cache[name] = tmpl
		s.mu.Unlock()
	}
	return tmpl, nil
}
