package route

// Route is one page of the portal.
type Route struct {
	Path       string
	Title      string
	Capability Capability
	// InNav lists the route in the navigation bar.
	InNav bool
}

// Pages is the portal route table.
var Pages = []Route{
	{Path: "/", Title: "Home", Capability: Public, InNav: true},
	{Path: "/schools", Title: "Schools", Capability: Public, InNav: true},
	{Path: "/schools/:id", Title: "School", Capability: Public},
	{Path: "/alumni", Title: "Alumni", Capability: Public, InNav: true},
	{Path: "/events", Title: "Events", Capability: Public, InNav: true},
	{Path: "/donations", Title: "Donate", Capability: Public, InNav: true},
	{Path: "/forum", Title: "Forum", Capability: Public, InNav: true},
	{Path: "/notices", Title: "Notices", Capability: Public, InNav: true},
	{Path: "/dashboard", Title: "Dashboard", Capability: Authenticated, InNav: true},
	{Path: "/profile", Title: "Profile", Capability: Authenticated, InNav: true},
	{Path: "/chat", Title: "Chat", Capability: Authenticated, InNav: true},
	{Path: "/admin", Title: "Admin", Capability: Staff, InNav: true},
}

// Lookup returns the route registered for path.
func Lookup(path string) (Route, bool) {
	for _, r := range Pages {
		if r.Path == path {
			return r, true
		}
	}
	return Route{}, false
}

// NavItem is a navigation link.
type NavItem struct {
	Path   string
	Title  string
	Active bool
}

// Navigation returns the links s may follow, marking current as active.
func Navigation(s Session, current string) []NavItem {
	items := make([]NavItem, 0, len(Pages))
	for _, r := range Pages {
		if !r.InNav || !Permits(s, r.Capability) {
			continue
		}
		items = append(items, NavItem{Path: r.Path, Title: r.Title, Active: r.Path == current})
	}
	return items
}
