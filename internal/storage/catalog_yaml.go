package storage

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"officesim/internal/core/model"
	"officesim/internal/core/qte"
)

const catalogFileName = "qte_catalog.yaml"

type yamlCatalog struct {
	Events []yamlTemplate `yaml:"events"`
}

type yamlTemplate struct {
	Text         string     `yaml:"text"`
	Choice1      string     `yaml:"choice_1"`
	Choice2      string     `yaml:"choice_2"`
	Explanation1 string     `yaml:"explanation_1"`
	Explanation2 string     `yaml:"explanation_2"`
	Time         string     `yaml:"time"`
	Effect1      yamlEffect `yaml:"effect_1"`
	Effect2      yamlEffect `yaml:"effect_2"`
}

type yamlEffect struct {
	Satisfaction float64 `yaml:"satisfaction,omitempty"`
	Energy       float64 `yaml:"energy,omitempty"`
	Satiety      float64 `yaml:"satiety,omitempty"`
	Hope         float64 `yaml:"hope,omitempty"`
	Money        float64 `yaml:"money,omitempty"`
	Employees    int     `yaml:"employees,omitempty"`
}

// LoadCatalog reads the quick-time event catalog from YAML.
// If the file does not exist, the built-in catalog is returned.
func LoadCatalog(appName string) ([]qte.Template, error) {
	path, err := resolveConfigPath(appName, catalogFileName)
	if err != nil {
		return qte.DefaultCatalog(), err
	}
	return LoadCatalogFile(path)
}

// LoadCatalogFile reads the quick-time event catalog at path.
func LoadCatalogFile(path string) ([]qte.Template, error) {
	rawData, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return qte.DefaultCatalog(), nil
		}
		return qte.DefaultCatalog(), fmt.Errorf("read catalog file: %w", err)
	}

	var fileData yamlCatalog
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return qte.DefaultCatalog(), fmt.Errorf("parse catalog yaml: %w", err)
	}

	catalog := make([]qte.Template, 0, len(fileData.Events))
	for index, event := range fileData.Events {
		duration, err := time.ParseDuration(event.Time)
		if err != nil {
			return qte.DefaultCatalog(), fmt.Errorf("event %d time: %w", index, err)
		}
		catalog = append(catalog, qte.Template{
			Text:         event.Text,
			Effect1:      event.Effect1.effect(),
			Effect2:      event.Effect2.effect(),
			Choice1:      event.Choice1,
			Choice2:      event.Choice2,
			Explanation1: event.Explanation1,
			Explanation2: event.Explanation2,
			Time:         duration,
		})
	}

	if err := qte.ValidateCatalog(catalog); err != nil {
		return qte.DefaultCatalog(), fmt.Errorf("validate catalog: %w", err)
	}
	return catalog, nil
}

// SaveCatalogFile writes the catalog to the YAML file at path.
func SaveCatalogFile(path string, catalog []qte.Template) error {
	var fileData yamlCatalog
	for _, template := range catalog {
		fileData.Events = append(fileData.Events, yamlTemplate{
			Text:         template.Text,
			Choice1:      template.Choice1,
			Choice2:      template.Choice2,
			Explanation1: template.Explanation1,
			Explanation2: template.Explanation2,
			Time:         template.Time.String(),
			Effect1:      newYamlEffect(template.Effect1),
			Effect2:      newYamlEffect(template.Effect2),
		})
	}

	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return fmt.Errorf("marshal catalog yaml: %w", err)
	}
	return writeFile(path, serialized)
}

func newYamlEffect(effect model.Effect) yamlEffect {
	return yamlEffect(effect)
}

func (effect yamlEffect) effect() model.Effect {
	return model.Effect(effect)
}
