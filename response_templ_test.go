package viewkit_test

import (
	"context"
	"io"
	"net/http"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"

	"github.com/viewkit/viewkit"
)

func TestTemplResponse(t *testing.T) {
	t.Parallel()

	component := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, "<div>component</div>")
		return err
	})

	w := render(t, viewkit.Templ(component))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "<div>component</div>", w.Body.String())
	assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
}

func TestTemplWithStatusResponse(t *testing.T) {
	t.Parallel()

	component := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, "not found")
		return err
	})

	w := render(t, viewkit.TemplWithStatus(component, http.StatusNotFound))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "not found", w.Body.String())
}

func TestTemplNilComponent(t *testing.T) {
	t.Parallel()

	assert.Nil(t, viewkit.TemplWithStatus(nil, http.StatusOK))
}
