// Package locale resolves message keys to human-readable text per locale.
// The catalog itself is configuration: per-locale JSON files embedded at
// build time, loaded into a go-i18n bundle.
package locale

import (
	"embed"
	"encoding/json"

	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed active.*.json
var messageFiles embed.FS

// Catalog maps (key, locale, args) to localized text.
type Catalog struct {
	bundle *goi18n.Bundle
}

func NewCatalog() (*Catalog, error) {
	bundle := goi18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

	entries, err := messageFiles.ReadDir(".")
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		data, err := messageFiles.ReadFile(e.Name())
		if err != nil {
			return nil, err
		}
		if _, err := bundle.ParseMessageFileBytes(data, e.Name()); err != nil {
			return nil, err
		}
	}
	return &Catalog{bundle: bundle}, nil
}

// Resolve localizes key for the given language preference. lang may be a raw
// Accept-Language header; unknown languages fall back to English and an
// unknown key resolves to the key itself so an error never surfaces raw.
func (c *Catalog) Resolve(lang, key string, args map[string]interface{}) string {
	loc := goi18n.NewLocalizer(c.bundle, lang)
	msg, err := loc.Localize(&goi18n.LocalizeConfig{MessageID: key, TemplateData: args})
	if err != nil {
		return key
	}
	return msg
}
