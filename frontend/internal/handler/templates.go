package handler

import (
	"fmt"
	"html/template"
	"io/fs"
	"path"
	"strings"
	"time"
)

const (
	baseTemplate = "base.html"
	tmplDir      = "templates"
)

var templateFuncs = template.FuncMap{
	"bytesToMB":          bytesToMB,
	"mimeTypeExtensions": mimeTypeExtensions,
	"formatTime":         formatTime,
}

// LoadTemplates parses every page under templates/ in fsys together with
// the base layout, keyed by file name.
func LoadTemplates(fsys fs.FS) (map[string]*template.Template, error) {
	entries, err := fs.ReadDir(fsys, tmplDir)
	if err != nil {
		return nil, fmt.Errorf("reading templates: %w", err)
	}

	templates := make(map[string]*template.Template)
	for _, e := range entries {
		if path.Ext(e.Name()) != ".html" || e.Name() == baseTemplate {
			continue
		}
		tmpl, err := template.New(baseTemplate).Funcs(templateFuncs).ParseFS(fsys,
			path.Join(tmplDir, baseTemplate),
			path.Join(tmplDir, e.Name()),
		)
		if err != nil {
			return nil, fmt.Errorf("parsing template %s: %w", e.Name(), err)
		}
		templates[e.Name()] = tmpl
	}
	return templates, nil
}

func bytesToMB(bytes int64) int64 {
	return bytes / (1024 * 1024)
}

func mimeTypeExtensions(mimeTypes []string) string {
	exts := make([]string, 0, len(mimeTypes))
	for _, mime := range mimeTypes {
		// "image/jpeg" -> "jpeg"
		if _, ext, ok := strings.Cut(mime, "/"); ok {
			exts = append(exts, ext)
		}
	}
	return strings.Join(exts, ", ")
}

func formatTime(t time.Time) string {
	return t.UTC().Format("2006-01-02 15:04")
}
