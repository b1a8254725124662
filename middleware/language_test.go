package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/viewkit/viewkit"
	"github.com/viewkit/viewkit/middleware"
)

func TestLanguageNegotiation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		header string
		want   language.Tag
	}{
		{name: "exact match", header: "pl", want: language.Polish},
		{name: "quality ordering", header: "de;q=0.7,pl;q=0.9", want: language.Polish},
		{name: "regional variant matches base", header: "de-AT", want: language.German},
		{name: "no header falls back to first", header: "", want: language.English},
		{name: "garbage falls back to first", header: ";;not-a-language;;", want: language.English},
		{name: "unsupported falls back to first", header: "ja", want: language.English},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var got language.Tag
			v := &viewkit.View{
				Decorators: []viewkit.Middleware{
					middleware.Language(language.English, language.Polish, language.German),
				},
				Handlers: map[string]viewkit.HandlerFunc{
					http.MethodGet: func(ctx *viewkit.Context) viewkit.Response {
						tag, ok := middleware.GetLanguage(ctx)
						require.True(t, ok)
						got = tag
						return viewkit.NoContent()
					},
				},
			}

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Accept-Language", tt.header)
			}

			serveView(t, v, req)

			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLanguageStoredInBag(t *testing.T) {
	t.Parallel()

	var bag map[string]any
	v := &viewkit.View{
		Decorators: []viewkit.Middleware{
			middleware.Language(language.English, language.Polish),
		},
		Handlers: map[string]viewkit.HandlerFunc{
			http.MethodGet: func(ctx *viewkit.Context) viewkit.Response {
				bag = ctx.Bag()
				return viewkit.NoContent()
			},
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Language", "pl")

	serveView(t, v, req)

	assert.Equal(t, "pl", bag["lang"])
}

func TestLanguageCustomBagKey(t *testing.T) {
	t.Parallel()

	var bag map[string]any
	v := &viewkit.View{
		Decorators: []viewkit.Middleware{
			middleware.LanguageWithConfig(middleware.LanguageConfig{
				Supported: []language.Tag{language.English},
				BagKey:    "locale",
			}),
		},
		Handlers: map[string]viewkit.HandlerFunc{
			http.MethodGet: func(ctx *viewkit.Context) viewkit.Response {
				bag = ctx.Bag()
				return viewkit.NoContent()
			},
		},
	}

	serveView(t, v, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, "en", bag["locale"])
}

func TestLanguageRequiresSupportedList(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		middleware.LanguageWithConfig(middleware.LanguageConfig{})
	})
}
