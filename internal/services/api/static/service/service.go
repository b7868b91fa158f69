// Package service resolves request paths to files under the public dir
package service

import (
	"errors"
	"io/fs"
	"mime"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	perr "lunacycle/internal/platform/errors"
	"lunacycle/internal/platform/logger"
	"lunacycle/internal/services/api/static/domain"
)

// DefaultDir is the public dir when CORE_API_PUBLIC_DIR is unset
const DefaultDir = "public"

// extension overrides checked before the system mime table
var types = map[string]string{
	".html": "text/html; charset=utf-8",
	".css":  "text/css; charset=utf-8",
	".js":   "text/javascript; charset=utf-8",
	".json": "application/json; charset=utf-8",
	".svg":  "image/svg+xml",
	".png":  "image/png",
	".ico":  "image/x-icon",
}

// Svc serves files from one directory
type Svc struct {
	dir  string
	fsys fs.FS
}

// New returns a Svc rooted at dir (DefaultDir when blank)
func New(dir string) *Svc {
	if strings.TrimSpace(dir) == "" {
		dir = DefaultDir
	}
	return &Svc{dir: dir, fsys: os.DirFS(dir)}
}

// Dir returns the public dir
func (s *Svc) Dir() string { return s.dir }

// Lookup reads the file for a request path. "/" means index.html; any ".."
// segment is refused before the path is cleaned
func (s *Svc) Lookup(p string) ([]byte, string, error) {
	if p == "" || p == "/" {
		p = domain.IndexFile
	}
	for _, seg := range strings.Split(p, "/") {
		if seg == ".." {
			logger.Named("static").Warn().Str("path", p).Msg("traversal refused")
			return nil, "", perr.NotFoundf("file not found")
		}
	}

	name := strings.TrimPrefix(path.Clean("/"+p), "/")
	if !fs.ValidPath(name) || name == "." {
		return nil, "", perr.NotFoundf("file not found")
	}

	body, err := fs.ReadFile(s.fsys, name)
	if err != nil {
		var pe *fs.PathError
		if errors.Is(err, fs.ErrNotExist) || (errors.As(err, &pe) && isDirErr(s.dir, name)) {
			return nil, "", perr.NotFoundf("file not found")
		}
		return nil, "", perr.Wrap(err, perr.ErrorCodeUnknown, "could not read file")
	}
	return body, ContentType(name, body), nil
}

// ContentType picks a content type from the extension, sniffing as a last resort
func ContentType(name string, body []byte) string {
	ext := strings.ToLower(path.Ext(name))
	if ct, ok := types[ext]; ok {
		return ct
	}
	if ct := mime.TypeByExtension(ext); ct != "" {
		return ct
	}
	return http.DetectContentType(body)
}

func isDirErr(dir, name string) bool {
	fi, err := os.Stat(filepath.Join(dir, filepath.FromSlash(name)))
	return err == nil && fi.IsDir()
}
