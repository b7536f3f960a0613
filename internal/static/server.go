package static

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

// Server serves files from a fixed public root. It holds no mutable state,
// so a single instance handles concurrent requests without locking.
type Server struct {
	root    string
	aliases AliasTable
	log     *logrus.Entry
}

// New creates a Server rooted at root, which must be an existing directory
func New(root string, aliases AliasTable, log *logrus.Entry) (*Server, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving public root %q: %w", root, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("public root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("public root %s is not a directory", abs)
	}

	table := make(AliasTable, len(aliases))
	for k, v := range aliases {
		table[k] = v
	}
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}

	return &Server{
		root:    abs,
		aliases: table,
		log:     log.WithField("component", "static"),
	}, nil
}

// Root returns the normalized public root
func (s *Server) Root() string {
	return s.root
}

// Aliases returns the registered alias paths in sorted order
func (s *Server) Aliases() []string {
	keys := make([]string, 0, len(s.aliases))
	for k := range s.aliases {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Target returns the file an alias points at
func (s *Server) Target(alias string) (string, bool) {
	t, ok := s.aliases[alias]
	return t, ok
}

// Resolve turns a request path into an absolute candidate path under the root.
// A query string, if present, is ignored. Paths that escape the root after
// normalization yield ErrForbidden.
func (s *Server) Resolve(urlPath string) (string, error) {
	clean, _, _ := strings.Cut(urlPath, "?")
	requested := clean
	if target, ok := s.aliases[clean]; ok {
		requested = target
	}

	candidate := filepath.Join(s.root, filepath.FromSlash(requested))
	if !s.contains(candidate) {
		return candidate, fmt.Errorf("%w: %s escapes public root", ErrForbidden, requested)
	}
	return candidate, nil
}

// contains reports whether p is the root itself or lies below it
func (s *Server) contains(p string) bool {
	p = filepath.Clean(p)
	if p == s.root {
		return true
	}
	prefix := s.root
	if !strings.HasSuffix(prefix, string(filepath.Separator)) {
		prefix += string(filepath.Separator)
	}
	return strings.HasPrefix(p, prefix)
}

// Open opens candidate for reading. When it cannot be opened and has no
// extension, candidate + ".html" is tried instead. Directories are refused.
// The caller closes the returned file.
func (s *Server) Open(candidate string) (*os.File, os.FileInfo, error) {
	f, err := os.Open(candidate)
	if err != nil {
		if filepath.Ext(candidate) != "" {
			return nil, nil, fmt.Errorf("%w: %s", ErrNotFound, candidate)
		}
		candidate += ".html"
		if !s.contains(candidate) {
			return nil, nil, fmt.Errorf("%w: %s", ErrNotFound, candidate)
		}
		if f, err = os.Open(candidate); err != nil {
			return nil, nil, fmt.Errorf("%w: %s", ErrNotFound, candidate)
		}
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, nil, fmt.Errorf("stat %s: %w", candidate, err)
	}
	if info.IsDir() {
		f.Close()
		return nil, nil, fmt.Errorf("%w: %s is a directory", ErrForbidden, candidate)
	}
	return f, info, nil
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	candidate, err := s.Resolve(r.URL.Path)
	if err != nil {
		s.fail(w, candidate, err)
		return
	}

	f, info, err := s.Open(candidate)
	if err != nil {
		s.fail(w, candidate, err)
		return
	}
	defer f.Close()

	w.Header().Set("Content-Type", ContentType(f.Name()))
	w.Header().Set("Content-Length", strconv.FormatInt(info.Size(), 10))

	n, err := io.Copy(w, f)
	if err != nil {
		if n == 0 {
			s.fail(w, f.Name(), fmt.Errorf("streaming %s: %w", f.Name(), err))
			return
		}
		s.log.WithFields(logrus.Fields{
			"path":    f.Name(),
			"written": n,
			"size":    info.Size(),
			"error":   err,
		}).Error("File stream interrupted")
	}
}

// fail logs err with the resolved path and sends the matching status
func (s *Server) fail(w http.ResponseWriter, path string, err error) {
	status, message := StatusFor(err)
	entry := s.log.WithFields(logrus.Fields{
		"path":   path,
		"status": status,
		"error":  err,
	})
	switch status {
	case http.StatusInternalServerError:
		entry.Error("Server error")
	case http.StatusForbidden:
		entry.Warn("Forbidden request")
	default:
		entry.Info("File not found")
	}
	sendError(w, status, message)
}
