package theme

import (
	"strings"

	"browser-shell/internal/domain"
)

// color roles
const (
	RoleFrame             = "frame"
	RoleToolbar           = "toolbar"
	RoleTabText           = "tab_text"
	RoleTabBackgroundText = "tab_background_text"
	RoleBackgroundTab     = "background_tab"
	RoleButtonBackground  = "button_background"
	RoleNTPBackground     = "ntp_background"
	RoleNTPLink           = "ntp_link"
	RoleNTPText           = "ntp_text"
	RoleOmniboxBackground = "omnibox_background"
	RoleOmniboxText       = "omnibox_text"
	RoleToolbarButtonIcon = "toolbar_button_icon"
	RoleToolbarText       = "toolbar_text"
	RoleBookmarkText      = "bookmark_text"

	// extended (about:browser) roles
	RoleAccent                    = "accent_color"
	RoleUISearchBackground        = "ui_search_background"
	RoleUISearchForeground        = "ui_search_foreground"
	RoleUIToolbarBackground       = "ui_toolbar_background"
	RoleUIToolbarForeground       = "ui_toolbar_foreground"
	RoleUISidebarBackground       = "ui_sidebar_background"
	RoleUISidebarForeground       = "ui_sidebar_foreground"
	RoleUISidebarActiveBackground = "ui_sidebar_active_background"
	RoleUISidebarActiveForeground = "ui_sidebar_active_foreground"
	RoleUILayer1Background        = "ui_layer1_background"
	RoleUILayer1Foreground        = "ui_layer1_foreground"
)

const (
	FlagNeedTabContrast = "theme-need-tab-contrast"

	// FlagAttributePrefix namespaces every flag attribute set on a styled root.
	FlagAttributePrefix = "data-aboutbrowser-"

	uiVariablePrefix = "--aboutbrowser-ui"
)

var requiredRoles = []string{
	RoleFrame,
	RoleToolbar,
	RoleTabText,
	RoleTabBackgroundText,
}

// ui_sidebar_active_background has no fallback but is projected, so it is
// required alongside the rest.
var extendedRequiredRoles = []string{
	RoleAccent,
	RoleUISearchBackground,
	RoleUIToolbarBackground,
	RoleUISidebarBackground,
	RoleUISidebarActiveBackground,
	RoleUISidebarActiveForeground,
	RoleUILayer1Background,
	RoleUILayer1Foreground,
}

// fallback fills role when the scheme does not supply it, either from another
// role of the same map or from a fixed palette color.
type fallback struct {
	role  string
	from  string
	fixed func(Palette) domain.Color
}

var fallbackRoles = []fallback{
	{role: RoleBackgroundTab, from: RoleFrame},
	{role: RoleButtonBackground, from: RoleFrame},
	{role: RoleNTPBackground, from: RoleToolbar},
	{role: RoleNTPLink, from: RoleTabText},
	{role: RoleNTPText, from: RoleTabText},
	{role: RoleOmniboxBackground, fixed: func(p Palette) domain.Color { return p.Grey100 }},
	{role: RoleOmniboxText, fixed: func(p Palette) domain.Color { return p.Grey900 }},
	{role: RoleToolbarButtonIcon, from: RoleTabText},
	{role: RoleToolbarText, from: RoleTabText},
	{role: RoleBookmarkText, from: RoleTabText},
}

var extendedFallbackRoles = []fallback{
	{role: RoleUIToolbarForeground, from: RoleTabText},
	{role: RoleUISidebarForeground, from: RoleTabText},
	{role: RoleUISearchForeground, from: RoleTabText},
	{role: RoleUISidebarActiveForeground, from: RoleTabText},
}

// cssVariable pairs a color role with the custom property it is exported as.
type cssVariable struct {
	role     string
	property string
}

var baseVariables = []cssVariable{
	{RoleFrame, "--aboutbrowser-frame-bg"},
	{RoleToolbar, "--aboutbrowser-toolbar-bg"},
	{RoleToolbarButtonIcon, "--aboutbrowser-toolbar-button-fg"},
	{RoleToolbarText, "--aboutbrowser-toolbar-fg"},
	{RoleBackgroundTab, "--aboutbrowser-inactive-tab-bg"},
	{RoleTabText, "--aboutbrowser-active-tab-fg"},
	{RoleTabBackgroundText, "--aboutbrowser-inactive-tab-fg"},
	{RoleButtonBackground, "--aboutbrowser-button-bg"},
	{RoleNTPBackground, "--aboutbrowser-ui-bg"},
	{RoleNTPLink, "--aboutbrowser-ui-link-fg"},
	{RoleNTPText, "--aboutbrowser-ui-fg"},
	{RoleOmniboxBackground, "--aboutbrowser-omnibox-bg"},
	{RoleOmniboxText, "--aboutbrowser-omnibox-fg"},
	{RoleBookmarkText, "--aboutbrowser-bookmark-fg"},
}

var extendedVariables = []cssVariable{
	{RoleAccent, "--aboutbrowser-ui-accent"},
	{RoleUISearchBackground, "--aboutbrowser-ui-search-bg"},
	{RoleUISearchForeground, "--aboutbrowser-ui-search-fg"},
	{RoleUIToolbarBackground, "--aboutbrowser-ui-toolbar-bg"},
	{RoleUIToolbarForeground, "--aboutbrowser-ui-toolbar-fg"},
	{RoleUISidebarBackground, "--aboutbrowser-ui-sidebar-bg"},
	{RoleUISidebarForeground, "--aboutbrowser-ui-sidebar-fg"},
	{RoleUISidebarActiveBackground, "--aboutbrowser-ui-sidebar-active-bg"},
	{RoleUISidebarActiveForeground, "--aboutbrowser-ui-sidebar-active-fg"},
	{RoleUILayer1Background, "--aboutbrowser-ui-layer1-bg"},
	{RoleUILayer1Foreground, "--aboutbrowser-ui-layer1-fg"},
}

// IsUIVariable reports whether a custom property styles in-app UI rather
// than browser chrome.
func IsUIVariable(property string) bool {
	return strings.HasPrefix(property, uiVariablePrefix)
}

// FlagAttribute is the root attribute name that marks flag as set.
func FlagAttribute(flag string) string {
	return FlagAttributePrefix + flag
}

// BaseRoles lists every role of the base projection table in table order.
func BaseRoles() []string {
	return variableRoles(baseVariables)
}

// ExtendedRoles lists every role of the extended projection table in table order.
func ExtendedRoles() []string {
	return variableRoles(extendedVariables)
}

func variableRoles(vars []cssVariable) []string {
	roles := make([]string, len(vars))
	for i, v := range vars {
		roles[i] = v.role
	}
	return roles
}
