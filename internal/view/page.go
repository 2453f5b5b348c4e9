package view

import "github.com/surpluslink/surpluslink/internal/domain"

// Page is the view model every full page layout receives.
type Page struct {
	Title       string
	Theme       domain.Theme
	User        *domain.User
	UnreadCount int
	Flash       FlashData
	// Path is the current request path; the theme toggle returns here.
	Path string
	// ShowMenu renders the sidebar toggle used on dashboard pages.
	ShowMenu bool
}

// Authenticated reports whether a mock user is signed in.
func (p Page) Authenticated() bool { return p.User != nil }

// ShowBadge reports whether the navbar bell carries an unread badge.
func (p Page) ShowBadge() bool { return p.User != nil && p.UnreadCount > 0 }
