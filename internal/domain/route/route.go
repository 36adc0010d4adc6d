// Package route holds the page route table and its metadata.
package route

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed routes.yaml
var defaultTable []byte

// Meta is the static per-route metadata consulted by the navigation guard.
type Meta struct {
	Title        string `yaml:"title"`
	RequiresAuth bool   `yaml:"requires_auth"`
}

// Route is one entry of the page route table.
type Route struct {
	Path string `yaml:"path"`
	Name string `yaml:"name"`
	Meta Meta   `yaml:"meta"`
}

// Params returns the names of the path parameters, in order.
func (r Route) Params() []string {
	var params []string
	for _, seg := range strings.Split(r.Path, "/") {
		if strings.HasPrefix(seg, ":") {
			params = append(params, seg[1:])
		}
	}
	return params
}

// Pattern returns the path in chi's {param} syntax.
func (r Route) Pattern() string {
	segs := strings.Split(r.Path, "/")
	for i, seg := range segs {
		if strings.HasPrefix(seg, ":") {
			segs[i] = "{" + seg[1:] + "}"
		}
	}
	return strings.Join(segs, "/")
}

// shape erases parameter names so /:a and /:b compare equal.
func (r Route) shape() string {
	segs := strings.Split(r.Path, "/")
	for i, seg := range segs {
		if strings.HasPrefix(seg, ":") {
			segs[i] = ":"
		}
	}
	return strings.Join(segs, "/")
}

// Table is an ordered, immutable route table.
type Table struct {
	routes []Route
	byName map[string]int
}

var (
	// ErrUnknownRoute is returned when a route name is not in the table.
	ErrUnknownRoute = errors.New("unknown route")
	// ErrMissingParam is returned when URL is called without a required parameter.
	ErrMissingParam = errors.New("missing route parameter")
)

type document struct {
	Routes []Route `yaml:"routes"`
}

// Default returns the table embedded in the binary.
func Default() (*Table, error) {
	return Parse(defaultTable)
}

// LoadFile reads a table from a YAML file on disk.
func LoadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open routes file: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Load reads a table from r.
func Load(r io.Reader) (*Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read routes: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a YAML route table.
func Parse(data []byte) (*Table, error) {
	var doc document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode routes: %w", err)
	}
	return New(doc.Routes)
}

// New validates routes and builds a table from them.
func New(routes []Route) (*Table, error) {
	if len(routes) == 0 {
		return nil, errors.New("route table is empty")
	}

	t := &Table{
		routes: make([]Route, 0, len(routes)),
		byName: make(map[string]int, len(routes)),
	}
	paths := make(map[string]struct{}, len(routes))

	for i, r := range routes {
		r.Path = strings.TrimSpace(r.Path)
		r.Name = strings.TrimSpace(r.Name)
		r.Meta.Title = strings.TrimSpace(r.Meta.Title)

		if r.Name == "" {
			return nil, fmt.Errorf("route %d: name is required", i)
		}
		if !strings.HasPrefix(r.Path, "/") {
			return nil, fmt.Errorf("route %q: path %q must start with /", r.Name, r.Path)
		}
		if _, dup := t.byName[r.Name]; dup {
			return nil, fmt.Errorf("route %q: duplicate name", r.Name)
		}
		shape := r.shape()
		if _, dup := paths[shape]; dup {
			return nil, fmt.Errorf("route %q: duplicate path %q", r.Name, r.Path)
		}

		paths[shape] = struct{}{}
		t.byName[r.Name] = len(t.routes)
		t.routes = append(t.routes, r)
	}

	return t, nil
}

// Routes returns a copy of the routes in table order.
func (t *Table) Routes() []Route {
	out := make([]Route, len(t.routes))
	copy(out, t.routes)
	return out
}

// Lookup returns the route registered under name.
func (t *Table) Lookup(name string) (Route, bool) {
	i, ok := t.byName[name]
	if !ok {
		return Route{}, false
	}
	return t.routes[i], true
}

// URL builds the path of the named route, escaping each parameter value.
func (t *Table) URL(name string, params map[string]string) (string, error) {
	r, ok := t.Lookup(name)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownRoute, name)
	}

	segs := strings.Split(r.Path, "/")
	for i, seg := range segs {
		if !strings.HasPrefix(seg, ":") {
			continue
		}
		v, ok := params[seg[1:]]
		if !ok || v == "" {
			return "", fmt.Errorf("%w: %s.%s", ErrMissingParam, name, seg[1:])
		}
		segs[i] = url.PathEscape(v)
	}
	return strings.Join(segs, "/"), nil
}
