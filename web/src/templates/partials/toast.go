package partials

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
	"github.com/surpluslink/surpluslink/internal/view"
)

// Toasts renders the queued flash toasts into the #toasts region.
func Toasts(toasts []view.Toast) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<div id="toasts" class="fixed bottom-4 right-4 z-[60] flex w-full max-w-sm flex-col gap-2" aria-live="polite">`); err != nil {
			return err
		}
		for _, t := range toasts {
			class := "toast rounded-lg border border-slate-200 bg-white p-4 shadow-lg dark:border-slate-800 dark:bg-slate-900"
			if t.Variant == view.VariantDestructive {
				class = "toast rounded-lg border border-red-600 bg-red-600 p-4 text-white shadow-lg"
			}
			_, err := fmt.Fprintf(w,
				`<div class="%s" role="status" data-variant="%s"><p class="text-sm font-semibold">%s</p><p class="text-sm opacity-90">%s</p></div>`,
				class,
				templ.EscapeString(string(t.Variant)),
				templ.EscapeString(t.Title),
				templ.EscapeString(t.Description),
			)
			if err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</div>`)
		return err
	})
}
