package qte

import (
	"fmt"
	"time"

	"officesim/internal/core/model"
)

// DefaultCatalog returns the built-in events.
func DefaultCatalog() []Template {
	return []Template{
		{
			Text:         "Voulez vous tuer\nun employée ?",
			Effect1:      model.NewEffect(0, 0, 0, 0, 0, -1),
			Effect2:      model.NewEffect(0, 0, 0, 0, 1, 0),
			Choice1:      "Oui",
			Choice2:      "Non",
			Explanation1: "Il est mort",
			Explanation2: "Il est pas mort",
			Time:         3 * time.Second,
		},
		{
			Text:         "Voulez vous perdre\nde l'argent ?",
			Effect1:      model.NewEffect(0, 0, 0, 0, -10000, 0),
			Choice1:      "Oui",
			Choice2:      "Non",
			Explanation1: "Vous êtes con",
			Explanation2: "Bravo",
			Time:         2 * time.Second,
		},
		{
			Text:         "Voulez vous recevoir\nun super bonus ?",
			Effect1:      model.NewEffect(1, 1, 1, 1, 0, 0),
			Choice1:      "Oui",
			Choice2:      "Non",
			Explanation1: "Bravo",
			Explanation2: "Tant pis",
			Time:         6 * time.Second,
		},
		{
			Text:         "Voulez vous ?",
			Choice1:      "Oui",
			Choice2:      "Non",
			Explanation1: "Ah",
			Explanation2: "Oh",
			Time:         time.Second,
		},
	}
}

// ValidateCatalog checks every template of catalog.
func ValidateCatalog(catalog []Template) error {
	if len(catalog) == 0 {
		return ErrEmptyCatalog
	}
	for index, template := range catalog {
		if err := template.Validate(); err != nil {
			return fmt.Errorf("template %d: %w", index, err)
		}
	}
	return nil
}
