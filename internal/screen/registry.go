// Package screen maps routes to their static chrome descriptors.
package screen

import (
	"fmt"
	"strconv"
	"strings"

	"showcase/internal/catalog"
	"showcase/internal/errors"
)

// AppBarKind selects the top bar layout of a screen.
type AppBarKind int

const (
	AppBarDefault AppBarKind = iota
	AppBarLarge
	AppBarSearch
)

func (k AppBarKind) String() string {
	switch k {
	case AppBarLarge:
		return "large"
	case AppBarSearch:
		return "search"
	}
	return "default"
}

// Descriptor is the immutable chrome configuration of one route.
type Descriptor struct {
	Route             string
	AppBarKind        AppBarKind
	Title             catalog.TextRef
	HasTabs           bool
	SuppliesOwnChrome bool
	Home              bool // top-level bottom navigation destination
}

// Registry is a read-only route table. The zero value is an empty registry.
type Registry struct {
	byRoute map[string]Descriptor
	routes  []string
	homes   []string
}

// NewRegistry builds a registry from descs, keeping their order. Empty or
// duplicate routes are rejected.
func NewRegistry(descs ...Descriptor) (*Registry, error) {
	r := &Registry{byRoute: make(map[string]Descriptor, len(descs))}
	for _, d := range descs {
		if strings.TrimSpace(d.Route) == "" {
			return nil, errors.NewKind(errors.InvalidRegistry, "descriptor without route", nil)
		}
		if _, dup := r.byRoute[d.Route]; dup {
			return nil, errors.NewKind(errors.InvalidRegistry, fmt.Sprintf("duplicate route %q", d.Route), nil)
		}
		r.byRoute[d.Route] = d
		r.routes = append(r.routes, d.Route)
		if d.Home {
			r.homes = append(r.homes, d.Route)
		}
	}
	return r, nil
}

// Lookup returns the descriptor registered for route.
func (r *Registry) Lookup(route string) (Descriptor, bool) {
	if r == nil {
		return Descriptor{}, false
	}
	d, ok := r.byRoute[route]
	return d, ok
}

// Routes returns every registered route in registration order.
func (r *Registry) Routes() []string {
	if r == nil {
		return nil
	}
	return append([]string(nil), r.routes...)
}

// HomeRoutes returns the home destinations in registration order.
func (r *Registry) HomeRoutes() []string {
	if r == nil {
		return nil
	}
	return append([]string(nil), r.homes...)
}

// IsHome reports whether route is a home destination.
func (r *Registry) IsHome(route string) bool {
	d, ok := r.Lookup(route)
	return ok && d.Home
}

// Application routes.
const (
	RouteGuidelines = "main/guidelines"
	RouteComponents = "main/components"
	RouteModules    = "main/modules"
	RouteAbout      = "main/about"
	RouteSearch     = "search"

	ComponentRoutePrefix = "components"
	VariantRoutePrefix   = "components/variant"
	ModuleRoutePrefix    = "modules"
)

// ElementRoute joins a route prefix and an element id.
func ElementRoute(prefix string, id int64) string {
	return prefix + "/" + strconv.FormatInt(id, 10)
}

// ComponentRoute is the detail route of a component.
func ComponentRoute(id int64) string { return ElementRoute(ComponentRoutePrefix, id) }

// VariantRoute is the demo route of a component variant.
func VariantRoute(id int64) string { return ElementRoute(VariantRoutePrefix, id) }

// ModuleRoute is the demo route of a module.
func ModuleRoute(id int64) string { return ElementRoute(ModuleRoutePrefix, id) }

// ParseElementRoute splits route into a known prefix and element id.
func ParseElementRoute(route string) (prefix string, id int64, ok bool) {
	i := strings.LastIndexByte(route, '/')
	if i <= 0 {
		return "", 0, false
	}
	id, err := strconv.ParseInt(route[i+1:], 10, 64)
	if err != nil {
		return "", 0, false
	}
	switch prefix = route[:i]; prefix {
	case ComponentRoutePrefix, VariantRoutePrefix, ModuleRoutePrefix:
		return prefix, id, true
	}
	return "", 0, false
}

// Standard builds the application route table from the catalog.
func Standard(c *catalog.Catalog) (*Registry, error) {
	descs := []Descriptor{
		{Route: RouteGuidelines, Title: "navigation_item_guidelines", Home: true},
		{Route: RouteComponents, Title: "navigation_item_components", Home: true},
		{Route: RouteModules, Title: "navigation_item_modules", Home: true},
		{Route: RouteAbout, Title: "navigation_item_about", Home: true},
	}
	for _, g := range c.Guidelines() {
		descs = append(descs, Descriptor{Route: g.Route, Title: g.Title})
	}
	for _, comp := range c.Components() {
		descs = append(descs, Descriptor{Route: ComponentRoute(comp.ID), Title: comp.Title})
		for _, v := range comp.Variants {
			d := Descriptor{
				Route:             VariantRoute(v.ID),
				Title:             v.Title,
				HasTabs:           v.Tabs,
				SuppliesOwnChrome: v.CustomizableTopAppBar,
			}
			if v.LargeTopAppBar {
				d.AppBarKind = AppBarLarge
			}
			descs = append(descs, d)
		}
	}
	for _, m := range c.Modules() {
		descs = append(descs, Descriptor{Route: ModuleRoute(m.ID), Title: m.Title})
	}
	descs = append(descs, Descriptor{Route: RouteSearch, AppBarKind: AppBarSearch, Title: "navigation_item_search"})
	return NewRegistry(descs...)
}
