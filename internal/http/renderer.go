package httpx

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"path"
	"strings"
)

const (
	layoutTemplate   = "layout"
	fragmentTemplate = "fragment"
)

// TemplateRenderer renders HTML templates for UI responses.
//
// Each file under pages/ is parsed into its own set together with layout.tmpl
// and partials/, so every page can define "content" and "fragment" freely.
type TemplateRenderer struct {
	pages  map[string]*template.Template
	logger *slog.Logger
}

// TemplateRendererConfig holds configuration for creating a TemplateRenderer.
type TemplateRendererConfig struct {
	TemplateFS fs.FS            // Filesystem containing templates (required)
	Funcs      template.FuncMap // Template helpers (optional)
	Logger     *slog.Logger     // Logger for template errors (optional)
}

// NewTemplateRenderer parses layout.tmpl, partials/*.tmpl and one set per pages/*.tmpl.
func NewTemplateRenderer(cfg TemplateRendererConfig) (*TemplateRenderer, error) {
	if cfg.TemplateFS == nil {
		return nil, errors.New("TemplateFS is required")
	}

	base, err := template.New("root").Funcs(cfg.Funcs).ParseFS(cfg.TemplateFS, "layout.tmpl", "partials/*.tmpl")
	if err != nil {
		return nil, logParseError(cfg.Logger, err)
	}

	files, err := fs.Glob(cfg.TemplateFS, "pages/*.tmpl")
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, errors.New("no page templates found")
	}

	pages := make(map[string]*template.Template, len(files))
	for _, file := range files {
		clone, err := base.Clone()
		if err != nil {
			return nil, err
		}
		t, err := clone.ParseFS(cfg.TemplateFS, file)
		if err != nil {
			return nil, logParseError(cfg.Logger, fmt.Errorf("%s: %w", file, err))
		}
		pages[strings.TrimSuffix(path.Base(file), ".tmpl")] = t
	}

	return &TemplateRenderer{pages: pages, logger: cfg.Logger}, nil
}

func logParseError(logger *slog.Logger, err error) error {
	if logger != nil {
		logger.Error("template parsing failed",
			slog.Any("error", err),
			slog.String("phase", "initialization"),
		)
	}
	return err
}

// Has reports whether a page template exists.
func (r *TemplateRenderer) Has(page string) bool {
	_, ok := r.pages[page]
	return ok
}

// RenderFull renders the full page (layout + page content).
func (r *TemplateRenderer) RenderFull(w http.ResponseWriter, page string, data any) error {
	return r.renderTemplate(w, http.StatusOK, page, layoutTemplate, data)
}

// RenderPartial renders only the page's fragment, the part htmx swaps in place.
func (r *TemplateRenderer) RenderPartial(w http.ResponseWriter, page string, data any) error {
	return r.renderTemplate(w, http.StatusOK, page, fragmentTemplate, data)
}

// Render picks the full page or the fragment from the request.
func (r *TemplateRenderer) Render(w http.ResponseWriter, req *http.Request, page string, data any) error {
	return r.RenderStatus(w, req, http.StatusOK, page, data)
}

// RenderStatus is Render with an explicit status code.
func (r *TemplateRenderer) RenderStatus(w http.ResponseWriter, req *http.Request, status int, page string, data any) error {
	name := layoutTemplate
	if WantsPartial(req) {
		name = fragmentTemplate
	}
	return r.renderTemplate(w, status, page, name, data)
}

func (r *TemplateRenderer) renderTemplate(w http.ResponseWriter, status int, page, name string, data any) error {
	t, ok := r.pages[page]
	if !ok {
		err := fmt.Errorf("unknown page template %q", page)
		r.logTemplateError(page, err)
		return err
	}
	if t.Lookup(name) == nil {
		// Pages without a fragment render their whole content block.
		name = "content"
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, name, data); err != nil {
		r.logTemplateError(page+"/"+name, err)
		return err
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		if r.logger != nil {
			r.logger.Error("failed to write rendered template",
				slog.String("template", page),
				slog.Any("error", err),
			)
		}
		return err
	}
	return nil
}

// logTemplateError logs a template execution error with context.
func (r *TemplateRenderer) logTemplateError(templateName string, err error) {
	if r.logger == nil || err == nil {
		return
	}
	r.logger.Error("template execution failed",
		slog.String("template", templateName),
		slog.Any("error", err),
	)
}
