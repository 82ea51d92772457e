package result

import (
	"embed"

	"github.com/kaptinlin/go-i18n"
)

//go:embed locales/*.json
var localesFS embed.FS

// Catalog resolves message-template keys (e.g. "rdap_profile_handle_format_invalid")
// to the diagnostic text cited against the RDAP Technical Implementation Guide
// or Response Profile, with parameter substitution via i18n.Vars. Only an
// English catalog ships today; the bundle is built to support additional
// locale files dropped into locales/ without any change to check or parser
// code.
type Catalog struct {
	localizer *i18n.Localizer
}

// NewCatalog loads the embedded locale bundle and returns a Catalog bound to
// locale (falling back to the bundle's default locale if locale is unknown).
func NewCatalog(locale string) (*Catalog, error) {
	bundle := i18n.NewBundle(
		i18n.WithDefaultLocale("en"),
		i18n.WithLocales("en"),
	)
	if err := bundle.LoadFS(localesFS, "locales/*.json"); err != nil {
		return nil, err
	}
	return &Catalog{localizer: bundle.NewLocalizer(locale)}, nil
}

// Message resolves key to its diagnostic text, substituting vars into any
// named placeholders the template declares.
func (c *Catalog) Message(key string, vars map[string]any) string {
	return c.localizer.Get(key, i18n.Vars(vars))
}
