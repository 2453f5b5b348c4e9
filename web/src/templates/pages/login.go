package pages

import (
	"net/url"

	"github.com/surpluslink/surpluslink/internal/domain"
	"github.com/surpluslink/surpluslink/internal/view"
	"github.com/surpluslink/surpluslink/web/src/templates/components"
	"github.com/surpluslink/surpluslink/web/src/templates/layouts"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	h "maragu.dev/gomponents/html"
)

// Tab is the visible form on the login card.
type Tab string

const (
	TabSignIn   Tab = "login"
	TabRegister Tab = "register"
)

// ParseTab returns TabSignIn for anything but "register".
func ParseTab(s string) Tab {
	if Tab(s) == TabRegister {
		return TabRegister
	}
	return TabSignIn
}

// LoginForm is the request state of the login card.
type LoginForm struct {
	Role       domain.Role
	Tab        Tab
	Submitting bool
	Email      string
	Password   string
}

// NewLoginForm returns the card with the demo credentials prefilled.
func NewLoginForm(role domain.Role, tab Tab, email, password string) LoginForm {
	if !role.Valid() {
		role = domain.RoleDonor
	}
	return LoginForm{Role: role, Tab: tab, Email: email, Password: password}
}

// PanelURL is the fragment endpoint for a role/tab combination.
func PanelURL(role domain.Role, tab Tab) string {
	return "/login/panel?" + query(role, tab)
}

// LoginURL is the full page URL for a role/tab combination.
func LoginURL(role domain.Role, tab Tab) string {
	return "/login?" + query(role, tab)
}

func query(role domain.Role, tab Tab) string {
	return url.Values{"role": {role.String()}, "tab": {string(tab)}}.Encode()
}

// Login is the authentication page.
func Login(page view.Page, form LoginForm) g.Node {
	return layouts.Bare(page,
		h.Div(h.Class("flex min-h-screen flex-col"),
			h.Div(h.Class("flex items-center justify-between p-4"),
				h.A(h.Href("/"), h.Class("inline-flex items-center gap-2 text-slate-500 transition-colors hover:text-slate-900 dark:hover:text-slate-100"),
					components.Icon(components.IconArrowLeft, "h-4 w-4"),
					g.Text("Back to home"),
				),
			),
			h.Div(h.Class("flex flex-1 items-center justify-center p-4"),
				h.Div(h.Class("w-full max-w-md"),
					h.Div(h.Class("mb-8 text-center"),
						h.A(h.Href("/"), h.Class("mb-6 inline-flex items-center gap-2"), components.Logo("lg")),
						h.P(h.Class("text-slate-500"), g.Text("Connect. Contribute. Change lives.")),
					),
					LoginCard(form),
				),
			),
		),
	)
}

// LoginCard is the part of the page swapped by the role picker and tabs.
func LoginCard(form LoginForm) g.Node {
	return components.Card("",
		h.ID("login-card"),
		h.Div(h.Class("p-6 pb-4"),
			h.Div(h.Class("grid w-full grid-cols-2 rounded-lg bg-slate-100 p-1 dark:bg-slate-800"),
				tabLink(form, TabSignIn, "Sign In"),
				tabLink(form, TabRegister, "Register"),
			),
		),
		h.Div(h.Class("space-y-6 px-6 pb-6"),
			h.Div(h.Class("space-y-3"),
				h.Label(h.Class("text-sm font-medium"), g.Text("I am a...")),
				h.Div(h.Class("grid gap-2"),
					g.Map(domain.Roles, func(r domain.Role) g.Node { return roleOption(form, r) }),
				),
			),
			g.Iff(form.Tab == TabSignIn, func() g.Node { return signInForm(form) }),
			g.Iff(form.Tab == TabRegister, func() g.Node { return registerForm(form) }),
			h.P(h.ID("demo-note"), h.Class("border-t border-slate-200 pt-4 text-center text-xs text-slate-500 dark:border-slate-800"),
				g.Textf("Demo mode: Click sign in to access the %s dashboard", form.Role),
			),
		),
	)
}

// swapTo wires a link to replace the card with the given panel.
func swapTo(role domain.Role, tab Tab) g.Node {
	return g.Group([]g.Node{
		h.Href(LoginURL(role, tab)),
		hx.Get(PanelURL(role, tab)),
		hx.Target("#login-card"),
		hx.Swap("outerHTML"),
		g.Attr("hx-push-url", LoginURL(role, tab)),
	})
}

func tabLink(form LoginForm, tab Tab, label string) g.Node {
	class := "rounded-md px-3 py-1.5 text-center text-sm font-medium text-slate-500"
	if form.Tab == tab {
		class = "rounded-md bg-white px-3 py-1.5 text-center text-sm font-medium shadow-sm dark:bg-slate-950"
	}
	return h.A(swapTo(form.Role, tab), h.Class(class), g.Attr("data-tab", string(tab)), g.Text(label))
}

func roleOption(form LoginForm, r domain.Role) g.Node {
	selected := form.Role == r
	class := "flex items-center gap-3 rounded-lg border border-slate-200 p-3 text-left transition-all hover:border-emerald-400 dark:border-slate-800"
	iconClass := "rounded-lg bg-slate-100 p-2 text-slate-500 dark:bg-slate-800"
	if selected {
		class = "flex items-center gap-3 rounded-lg border border-emerald-600 bg-emerald-50 p-3 text-left ring-2 ring-emerald-600/20 dark:bg-emerald-900/20"
		iconClass = "gradient-primary rounded-lg p-2 text-white"
	}
	return h.A(swapTo(r, form.Tab),
		h.Class(class),
		g.Attr("data-role", r.String()),
		g.If(selected, g.Attr("aria-current", "true")),
		h.Div(h.Class(iconClass), components.Icon(components.RoleIcon(r.String()), "h-4 w-4")),
		h.Div(
			h.P(h.Class("text-sm font-medium"), g.Text(r.Label())),
			h.P(h.Class("text-xs text-slate-500"), g.Text(r.Description())),
		),
	)
}

func field(id, name, label, typ, value, placeholder string) g.Node {
	return h.Div(h.Class("space-y-2"),
		h.Label(h.For(id), h.Class("text-sm font-medium"), g.Text(label)),
		h.Input(
			h.ID(id), h.Name(name), h.Type(typ),
			g.If(value != "", h.Value(value)),
			g.If(placeholder != "", h.Placeholder(placeholder)),
			h.Class("w-full rounded-md border border-slate-300 bg-transparent px-3 py-2 text-sm dark:border-slate-700"),
		),
	)
}

// submitButton shows the busy label while htmx has the request in flight,
// and permanently when the server reports a submission already running.
func submitButton(form LoginForm, idle, busy string) g.Node {
	idleClass, busyClass := "label-idle", "label-busy"
	if form.Submitting {
		idleClass, busyClass = "hidden", ""
	}
	return h.Button(
		h.Type("submit"),
		h.Class("gradient-primary w-full rounded-lg px-4 py-2 font-medium text-white disabled:opacity-60"),
		g.If(form.Submitting, h.Disabled()),
		h.Span(h.Class(idleClass), g.Text(idle)),
		h.Span(h.Class(busyClass), g.Text(busy)),
	)
}

func submitAttrs(action string) g.Node {
	return g.Group([]g.Node{
		h.Method("post"),
		h.Action(action),
		hx.Post(action),
		hx.Target("#login-card"),
		hx.Swap("outerHTML"),
		g.Attr("hx-disabled-elt", "find button[type='submit']"),
	})
}

func signInForm(form LoginForm) g.Node {
	return h.Form(h.ID("sign-in-form"), h.Class("space-y-4"),
		submitAttrs("/login"),
		h.Input(h.Type("hidden"), h.Name("role"), h.Value(form.Role.String())),
		field("email", "email", "Email", "email", form.Email, "you@example.com"),
		field("password", "password", "Password", "password", form.Password, ""),
		submitButton(form, "Sign In", "Signing in..."),
	)
}

func registerForm(form LoginForm) g.Node {
	return h.Form(h.ID("register-form"), h.Class("space-y-4"),
		submitAttrs("/register"),
		h.Input(h.Type("hidden"), h.Name("role"), h.Value(form.Role.String())),
		field("org-name", "org_name", "Organization Name", "text", "", "Your organization"),
		field("reg-email", "email", "Email", "email", "", "you@example.com"),
		field("reg-password", "password", "Password", "password", "", "Create a password"),
		submitButton(form, "Create Account", "Creating account..."),
	)
}
