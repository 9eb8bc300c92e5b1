// Package journal provides the catalog of known journal events.
package journal

import (
	_ "embed"
	"fmt"
	"slices"
	"sync"

	"github.com/goccy/go-yaml"

	"github.com/edbuddy/edbuddy/internal/xslices"
	"github.com/edbuddy/edbuddy/internal/xstrings"
)

//go:embed events.yaml
var eventsYAML []byte

type catalogData struct {
	Categories []Category `yaml:"categories"`
}

// Category is a named group of journal events.
type Category struct {
	Name   string   `yaml:"name"`
	Events []string `yaml:"events"`
}

var loadCatalog = sync.OnceValues(func() ([]Category, error) {
	return parseCatalog(eventsYAML)
})

func parseCatalog(data []byte) ([]Category, error) {
	var c catalogData
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse event catalog: %w", err)
	}
	for _, x := range c.Categories {
		if x.Name == "" {
			return nil, fmt.Errorf("parse event catalog: category without name")
		}
	}
	return c.Categories, nil
}

// Categories returns the event categories of the catalog.
func Categories() []Category {
	cc, err := loadCatalog()
	if err != nil {
		panic(err) // catalog is embedded
	}
	return slices.Clone(cc)
}

// EventTypes returns the types of all known events, sorted and without duplicates.
func EventTypes() []string {
	var s []string
	for _, c := range Categories() {
		s = append(s, c.Events...)
	}
	s = xslices.Deduplicate(s)
	slices.Sort(s)
	return s
}

// EventNames returns the names of all known events in words, sorted.
// For example the event type "FSDJump" has the name "FSD Jump".
func EventNames() []string {
	s := xslices.Map(EventTypes(), Name)
	s = xslices.Deduplicate(s)
	slices.Sort(s)
	return s
}

// Name returns the display name of an event type.
func Name(eventType string) string {
	return xstrings.SplitWords(eventType)
}
