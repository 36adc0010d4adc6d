package httpx

import (
	"fmt"
	"html/template"

	"github.com/summitlog/summits-web/internal/domain/model"
	"github.com/summitlog/summits-web/internal/domain/route"
	"github.com/summitlog/summits-web/internal/http/uiutil"
)

// TemplateFuncs returns the helpers available to every template.
func TemplateFuncs(routes *route.Table, images uiutil.Images) template.FuncMap {
	return template.FuncMap{
		"formatDate": func(d model.InexactDate, loc uiutil.Locale) string {
			return uiutil.FormatDate(d, loc)
		},
		"imageURL": images.URL,
		"routeURL": func(name string, kv ...any) (string, error) {
			return routeURL(routes, name, kv...)
		},
		"deref": func(s *string) string {
			if s == nil {
				return ""
			}
			return *s
		},
	}
}

// routeURL builds a route URL from alternating parameter names and values.
func routeURL(routes *route.Table, name string, kv ...any) (string, error) {
	if len(kv)%2 != 0 {
		return "", fmt.Errorf("routeURL %s: odd number of parameter arguments", name)
	}
	params := make(map[string]string, len(kv)/2)
	for i := 0; i < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			return "", fmt.Errorf("routeURL %s: parameter name %v is not a string", name, kv[i])
		}
		params[key] = fmt.Sprint(kv[i+1])
	}
	return routes.URL(name, params)
}
