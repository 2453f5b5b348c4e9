package view

import (
	"encoding/json"

	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/surpluslink/surpluslink/internal/middleware"
)

const (
	flashSessionName = "flash-session"
	flashKeyToast    = "toast"
)

// Variant styles a toast.
type Variant string

const (
	VariantDefault     Variant = "default"
	VariantDestructive Variant = "destructive"
)

// Toast is a one-shot notice rendered on the next page view.
type Toast struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Variant     Variant `json:"variant"`
}

// FlashData holds the toasts consumed for the current render.
type FlashData struct {
	Toasts []Toast
}

// Empty reports whether there is nothing to show.
func (f FlashData) Empty() bool { return len(f.Toasts) == 0 }

// SetToast queues a toast in the flash session. Toasts are stored as JSON
// strings so the cookie store needs no gob registration.
func SetToast(c echo.Context, t Toast) {
	logger := middleware.FromContext(c.Request().Context())
	if t.Variant == "" {
		t.Variant = VariantDefault
	}
	data, err := json.Marshal(t)
	if err != nil {
		logger.Error("Failed to encode toast", "error", err)
		return
	}
	sess, err := session.Get(flashSessionName, c)
	if sess == nil {
		logger.Error("Failed to load flash session", "error", err)
		return
	}
	sess.AddFlash(string(data), flashKeyToast)
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		logger.Error("Failed to save flash session", "error", err)
	}
}

// SetFlashSuccess queues a default toast.
func SetFlashSuccess(c echo.Context, title, description string) {
	SetToast(c, Toast{Title: title, Description: description, Variant: VariantDefault})
}

// SetFlashError queues a destructive toast.
func SetFlashError(c echo.Context, title, description string) {
	SetToast(c, Toast{Title: title, Description: description, Variant: VariantDestructive})
}

// GetFlashData retrieves and clears the queued toasts.
func GetFlashData(c echo.Context) FlashData {
	var data FlashData

	sess, _ := session.Get(flashSessionName, c)
	if sess == nil {
		return data
	}

	// Flashes() returns and clears the values; the save persists the clearing.
	raw := sess.Flashes(flashKeyToast)
	if len(raw) == 0 {
		return data
	}
	for _, v := range raw {
		s, ok := v.(string)
		if !ok {
			continue
		}
		var t Toast
		if err := json.Unmarshal([]byte(s), &t); err != nil {
			middleware.FromContext(c.Request().Context()).Warn("Dropping undecodable toast", "error", err)
			continue
		}
		data.Toasts = append(data.Toasts, t)
	}
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		middleware.FromContext(c.Request().Context()).Warn("Failed to clear flash session", "error", err)
	}
	return data
}
