package components

import (
	"fmt"
	"html"

	g "maragu.dev/gomponents"
)

// IconName selects one of the inline SVG icons.
type IconName string

const (
	IconLogo       IconName = "logo"
	IconMoon       IconName = "moon"
	IconSun        IconName = "sun"
	IconBell       IconName = "bell"
	IconLogOut     IconName = "log-out"
	IconMenu       IconName = "menu"
	IconArrowLeft  IconName = "arrow-left"
	IconArrowRight IconName = "arrow-right"
	IconCheck      IconName = "check"
	IconBuilding   IconName = "building"
	IconHeart      IconName = "heart"
	IconShield     IconName = "shield"
	IconUtensils   IconName = "utensils"
	IconTruck      IconName = "truck"
	IconBarChart   IconName = "bar-chart"
	IconLeaf       IconName = "leaf"
	IconUsers      IconName = "users"
)

// Stroke paths in the 24x24 lucide grid.
var iconPaths = map[IconName]string{
	IconLogo:       `<path d="M12 2L2 7l10 5 10-5-10-5z"/><path d="M2 17l10 5 10-5"/><path d="M2 12l10 5 10-5"/>`,
	IconMoon:       `<path d="M12 3a6 6 0 0 0 9 9 9 9 0 1 1-9-9Z"/>`,
	IconSun:        `<circle cx="12" cy="12" r="4"/><path d="M12 2v2"/><path d="M12 20v2"/><path d="m4.93 4.93 1.41 1.41"/><path d="m17.66 17.66 1.41 1.41"/><path d="M2 12h2"/><path d="M20 12h2"/><path d="m6.34 17.66-1.41 1.41"/><path d="m19.07 4.93-1.41 1.41"/>`,
	IconBell:       `<path d="M6 8a6 6 0 0 1 12 0c0 7 3 9 3 9H3s3-2 3-9"/><path d="M10.3 21a1.94 1.94 0 0 0 3.4 0"/>`,
	IconLogOut:     `<path d="M9 21H5a2 2 0 0 1-2-2V5a2 2 0 0 1 2-2h4"/><polyline points="16 17 21 12 16 7"/><line x1="21" x2="9" y1="12" y2="12"/>`,
	IconMenu:       `<line x1="4" x2="20" y1="12" y2="12"/><line x1="4" x2="20" y1="6" y2="6"/><line x1="4" x2="20" y1="18" y2="18"/>`,
	IconArrowLeft:  `<path d="m12 19-7-7 7-7"/><path d="M19 12H5"/>`,
	IconArrowRight: `<path d="M5 12h14"/><path d="m12 5 7 7-7 7"/>`,
	IconCheck:      `<path d="M20 6 9 17l-5-5"/>`,
	IconBuilding:   `<rect width="16" height="20" x="4" y="2" rx="2" ry="2"/><path d="M9 22v-4h6v4"/><path d="M8 6h.01"/><path d="M16 6h.01"/><path d="M12 6h.01"/><path d="M12 10h.01"/><path d="M12 14h.01"/><path d="M16 10h.01"/><path d="M16 14h.01"/><path d="M8 10h.01"/><path d="M8 14h.01"/>`,
	IconHeart:      `<path d="M19 14c1.49-1.46 3-3.21 3-5.5A5.5 5.5 0 0 0 16.5 3c-1.76 0-3 .5-4.5 2-1.5-1.5-2.74-2-4.5-2A5.5 5.5 0 0 0 2 8.5c0 2.3 1.5 4.05 3 5.5l7 7Z"/>`,
	IconShield:     `<path d="M12 22s8-4 8-10V5l-8-3-8 3v7c0 6 8 10 8 10"/>`,
	IconUtensils:   `<path d="M3 2v7c0 1.1.9 2 2 2h4a2 2 0 0 0 2-2V2"/><path d="M7 2v20"/><path d="M21 15V2a5 5 0 0 0-5 5v6c0 1.1.9 2 2 2h3Zm0 0v7"/>`,
	IconTruck:      `<path d="M5 18H3c-.6 0-1-.4-1-1V7c0-.6.4-1 1-1h10c.6 0 1 .4 1 1v11"/><path d="M14 9h4l4 4v4c0 .6-.4 1-1 1h-2"/><circle cx="7" cy="18" r="2"/><path d="M15 18H9"/><circle cx="17" cy="18" r="2"/>`,
	IconBarChart:   `<path d="M3 3v18h18"/><path d="M18 17V9"/><path d="M13 17V5"/><path d="M8 17v-3"/>`,
	IconLeaf:       `<path d="M11 20A7 7 0 0 1 9.8 6.1C15.5 5 17 4.48 19 2c1 2 2 4.18 2 8 0 5.5-4.78 10-10 10Z"/><path d="M2 21c0-3 1.85-5.36 5.08-6C9.5 14.52 12 13 13 12"/>`,
	IconUsers:      `<path d="M16 21v-2a4 4 0 0 0-4-4H6a4 4 0 0 0-4 4v2"/><circle cx="9" cy="7" r="4"/><path d="M22 21v-2a4 4 0 0 0-3-3.87"/><path d="M16 3.13a4 4 0 0 1 0 7.75"/>`,
}

// Icon renders an inline stroke icon. Unknown names render nothing.
func Icon(name IconName, class string) g.Node {
	paths, ok := iconPaths[name]
	if !ok {
		return nil
	}
	return g.Raw(fmt.Sprintf(
		`<svg class="%s" data-icon="%s" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" stroke-linecap="round" stroke-linejoin="round" aria-hidden="true">%s</svg>`,
		html.EscapeString(class), name, paths,
	))
}

// RoleIcon is the icon used on a role's login card.
func RoleIcon(role string) IconName {
	switch role {
	case "donor":
		return IconBuilding
	case "ngo":
		return IconHeart
	default:
		return IconShield
	}
}
