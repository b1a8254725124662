// Package templates provides a filesystem-backed TemplateSource for viewkit
// views. Template names are paths within the source filesystem; rendering
// selects the first candidate name that exists, first-match-wins.
//
// Parsed templates are cached after first use. Enable reload during
// development to re-parse templates on every render:
//
//	src := templates.New(os.DirFS("web/templates"), templates.WithReload(true))
//
// The source directory can also come from the environment via config:
//
//	var cfg templates.Config
//	config.MustLoad(&cfg)
//	src, err := templates.NewFromConfig(cfg)
package templates
