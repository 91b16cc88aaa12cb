package service

type NavItem struct {
	Title string `json:"title"`
	Path  string `json:"path"`
	Icon  string `json:"icon"`
}

var (
	baseNav = []NavItem{
		{Title: "Dashboard", Path: "/dashboard", Icon: "LayoutDashboard"},
		{Title: "Projects", Path: "/projects", Icon: "FolderKanban"},
		{Title: "Tasks", Path: "/tasks", Icon: "ListTodo"},
		{Title: "Notes", Path: "/notes", Icon: "FileText"},
		{Title: "Reports", Path: "/reports", Icon: "BarChart3"},
	}
	adminNav = []NavItem{
		{Title: "Finance", Path: "/finance", Icon: "DollarSign"},
		{Title: "Team", Path: "/team", Icon: "Users"},
	}
)

// NavItems returns the sidebar entries; finance and team are listed for admins only.
func NavItems(isAdmin bool) []NavItem {
	items := append([]NavItem{}, baseNav...)
	if isAdmin {
		items = append(items, adminNav...)
	}
	return items
}
