package viewkit

import (
	"bytes"
	"html/template"
	"net/http"
)

// Template creates an HTML response from a parsed html/template with 200 OK
// status. The output is buffered before writing, so a failed template never
// produces a partial body.
func Template(tmpl *template.Template, data any) Response {
	return TemplateWithStatus(tmpl, data, http.StatusOK)
}

// TemplateWithStatus creates an HTML response from a parsed html/template
// with a custom status code. The output is buffered before writing.
func TemplateWithStatus(tmpl *template.Template, data any, status int) Response {
	if tmpl == nil {
		return nil
	}
	return func(w http.ResponseWriter, r *http.Request) error {
		var buf bytes.Buffer
		if err := tmpl.Execute(&buf, data); err != nil {
			return err
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if status == 0 {
			status = http.StatusOK
		}
		w.WriteHeader(status)
		_, err := w.Write(buf.Bytes())
		return err
	}
}
