// Package catalog holds the static showcase data: components and their
// variants, guidelines, modules, the demo navigation items and recipes used by
// customizable top bars, and the string table every title resolves through.
package catalog

import (
	_ "embed"
	"fmt"

	"showcase/internal/errors"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var embedded []byte

// TextRef is a string table key. Keys missing from the table render as
// themselves, so a literal title is also a valid TextRef.
type TextRef string

// Strings resolves TextRefs.
type Strings map[string]string

// Resolve returns the text for ref.
func (s Strings) Resolve(ref TextRef) string {
	if v, ok := s[string(ref)]; ok {
		return v
	}
	return string(ref)
}

// Variant is one demo of a component.
type Variant struct {
	ID                    int64   `yaml:"id"`
	Title                 TextRef `yaml:"title"`
	Composable            string  `yaml:"composable"`
	LargeTopAppBar        bool    `yaml:"large_top_app_bar"`
	CustomizableTopAppBar bool    `yaml:"customizable_top_app_bar"`
	Tabs                  bool    `yaml:"tabs"`
	ScrollableTabs        bool    `yaml:"scrollable_tabs"`
	ComponentID           int64   `yaml:"-"`
}

// Component is a showcased UI component.
type Component struct {
	ID          int64     `yaml:"id"`
	Title       TextRef   `yaml:"title"`
	Description TextRef   `yaml:"description"`
	Icon        string    `yaml:"icon"`
	Composable  string    `yaml:"composable"`
	Variants    []Variant `yaml:"variants"`
}

// Guideline is a design guideline page.
type Guideline struct {
	Route string  `yaml:"route"`
	Title TextRef `yaml:"title"`
}

// Module is a ready-made screen module.
type Module struct {
	ID          int64   `yaml:"id"`
	Title       TextRef `yaml:"title"`
	Description TextRef `yaml:"description"`
}

// NavigationItem backs the placeholder actions of a customizable top bar.
type NavigationItem struct {
	ID    string  `yaml:"id"`
	Title TextRef `yaml:"title"`
	Icon  string  `yaml:"icon"`
}

// Recipe backs the overflow menu demo entries.
type Recipe struct {
	Title    string `yaml:"title"`
	Subtitle string `yaml:"subtitle"`
}

// Catalog is immutable once loaded. Slices returned by its accessors must not
// be modified.
type Catalog struct {
	strings         Strings
	guidelines      []Guideline
	components      []Component
	modules         []Module
	navigationItems []NavigationItem
	recipes         []Recipe

	componentIndex map[int64]int
	variantIndex   map[int64]Variant
}

type document struct {
	Strings         map[string]string `yaml:"strings"`
	Guidelines      []Guideline       `yaml:"guidelines"`
	Components      []Component       `yaml:"components"`
	Modules         []Module          `yaml:"modules"`
	NavigationItems []NavigationItem  `yaml:"navigation_items"`
	Recipes         []Recipe          `yaml:"recipes"`
}

// Load parses the embedded catalog.
func Load() (*Catalog, error) {
	return Parse(embedded)
}

// MustLoad is Load for callers that ship the embedded catalog and treat a
// broken one as a programming error.
func MustLoad() *Catalog {
	c, err := Load()
	if err != nil {
		panic(err)
	}
	return c
}

// Parse builds a catalog from YAML.
func Parse(data []byte) (*Catalog, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.NewKind(errors.CatalogLoadFailed, "failed to parse catalog", err)
	}

	c := &Catalog{
		strings:         Strings(doc.Strings),
		guidelines:      doc.Guidelines,
		components:      doc.Components,
		modules:         doc.Modules,
		navigationItems: doc.NavigationItems,
		recipes:         doc.Recipes,
		componentIndex:  make(map[int64]int, len(doc.Components)),
		variantIndex:    make(map[int64]Variant),
	}
	if c.strings == nil {
		c.strings = Strings{}
	}

	for i := range c.components {
		comp := &c.components[i]
		if _, dup := c.componentIndex[comp.ID]; dup {
			return nil, errors.NewKind(errors.CatalogLoadFailed, fmt.Sprintf("duplicate component id %d", comp.ID), nil)
		}
		c.componentIndex[comp.ID] = i
		for j := range comp.Variants {
			v := &comp.Variants[j]
			v.ComponentID = comp.ID
			if _, dup := c.variantIndex[v.ID]; dup {
				return nil, errors.NewKind(errors.CatalogLoadFailed, fmt.Sprintf("duplicate variant id %d", v.ID), nil)
			}
			c.variantIndex[v.ID] = *v
		}
	}
	return c, nil
}

// Strings returns the string table.
func (c *Catalog) Strings() Strings { return c.strings }

// Resolve is shorthand for c.Strings().Resolve(ref).
func (c *Catalog) Resolve(ref TextRef) string { return c.strings.Resolve(ref) }

func (c *Catalog) Guidelines() []Guideline           { return c.guidelines }
func (c *Catalog) Components() []Component           { return c.components }
func (c *Catalog) Modules() []Module                 { return c.modules }
func (c *Catalog) NavigationItems() []NavigationItem { return c.navigationItems }
func (c *Catalog) Recipes() []Recipe                 { return c.recipes }

// Component looks up a component by id.
func (c *Catalog) Component(id int64) (Component, bool) {
	i, ok := c.componentIndex[id]
	if !ok {
		return Component{}, false
	}
	return c.components[i], true
}

// Variant looks up a variant by id.
func (c *Catalog) Variant(id int64) (Variant, bool) {
	v, ok := c.variantIndex[id]
	return v, ok
}
