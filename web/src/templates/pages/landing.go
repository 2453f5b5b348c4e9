package pages

import (
	"github.com/surpluslink/surpluslink/internal/view"
	"github.com/surpluslink/surpluslink/web/src/templates/components"
	"github.com/surpluslink/surpluslink/web/src/templates/layouts"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

type feature struct {
	icon        components.IconName
	title       string
	description string
}

type stat struct{ value, label string }

type step struct{ number, title, description string }

var (
	features = []feature{
		{components.IconUtensils, "Smart Matching", "AI-powered system connects surplus food with nearby NGOs in real-time."},
		{components.IconTruck, "Seamless Logistics", "Volunteer network ensures fast, reliable pickup and delivery."},
		{components.IconBarChart, "Impact Tracking", "Measure your contribution with detailed analytics and reports."},
		{components.IconLeaf, "Sustainability", "Reduce food waste and carbon emissions while helping communities."},
	}

	stats = []stat{
		{"12,450+", "Meals Saved"},
		{"4.2 tons", "CO₂ Reduced"},
		{"47", "Active Donors"},
		{"23", "NGO Partners"},
	}

	steps = []step{
		{"1", "Post or Browse", "Donors list surplus food; NGOs browse available donations nearby."},
		{"2", "Match & Accept", "Our system suggests optimal matches. Accept with one click."},
		{"3", "Pickup & Deliver", "Volunteers handle logistics with real-time tracking."},
	}

	donorBenefits = []string{
		"Quick and easy donation posting",
		"Automatic NGO matching",
		"Real-time pickup tracking",
		"Tax deduction documentation",
		"Impact reports and analytics",
	}

	ngoBenefits = []string{
		"Browse nearby donations",
		"Accept with one click",
		"Volunteer coordination tools",
		"Quality and hygiene tracking",
		"Community impact metrics",
	}

	trustedBy = []string{"FB", "GC", "TG", "FFA"}
)

// Landing is the public marketing page.
func Landing(page view.Page) g.Node {
	return layouts.Base(page,
		h.Main(
			hero(),
			statsSection(),
			featuresSection(),
			stepsSection(),
			benefitsSection(),
			ctaSection(),
		),
		footer(),
	)
}

func hero() g.Node {
	return h.Section(
		h.Class("container mx-auto grid items-center gap-12 px-4 py-20 lg:grid-cols-2"),
		h.Div(
			h.Div(h.Class("mb-6 inline-flex items-center gap-2 rounded-full bg-emerald-100 px-4 py-1 text-sm text-emerald-800 dark:bg-emerald-900/40 dark:text-emerald-200"),
				components.Icon(components.IconHeart, "h-4 w-4"),
				g.Text("Fighting food waste together"),
			),
			h.H1(h.Class("mb-6 text-4xl font-bold leading-tight md:text-6xl"),
				g.Text("Connect Surplus Food with "),
				h.Span(h.Class("text-gradient"), g.Text("Those in Need")),
			),
			h.P(h.Class("mb-8 text-lg text-slate-600 dark:text-slate-400"),
				g.Text("SurplusLink bridges the gap between food donors and NGOs through smart matching and seamless logistics. Every meal counts."),
			),
			h.Div(h.Class("flex flex-wrap gap-4"),
				components.ButtonLink("/login", "hero", g.Text("Get Started"), components.Icon(components.IconArrowRight, "h-5 w-5")),
				components.ButtonLink("#how-it-works", "outline", g.Text("Learn More")),
			),
			h.Div(h.Class("mt-8 flex items-center gap-4"),
				h.Div(h.Class("flex -space-x-3"),
					g.Map(trustedBy, func(initials string) g.Node {
						return h.Div(h.Class("flex h-10 w-10 items-center justify-center rounded-full border-2 border-white bg-slate-100 text-xs font-medium dark:border-slate-950 dark:bg-slate-800"), g.Text(initials))
					}),
				),
				h.P(h.Class("text-sm text-slate-600 dark:text-slate-400"),
					h.Span(h.Class("font-semibold text-slate-900 dark:text-slate-100"), g.Text("70+")),
					g.Text(" organizations trust SurplusLink"),
				),
			),
		),
		h.Div(h.Class("relative"),
			h.Div(h.Class("gradient-primary flex aspect-[4/3] items-center justify-center rounded-2xl shadow-xl"),
				g.Attr("role", "img"),
				g.Attr("aria-label", "Food being shared between hands, representing food redistribution"),
				components.Icon(components.IconUtensils, "h-24 w-24 text-white/80"),
			),
			components.Card("absolute -bottom-6 -left-6 flex items-center gap-3 p-4",
				h.Div(h.Class("gradient-accent rounded-lg p-2"), components.Icon(components.IconUsers, "h-5 w-5 text-white")),
				h.Div(
					h.P(h.Class("text-2xl font-bold"), g.Text("12,450+")),
					h.P(h.Class("text-sm text-slate-500"), g.Text("Meals Saved")),
				),
			),
		),
	)
}

func statsSection() g.Node {
	return h.Section(h.Class("border-y border-slate-200 bg-slate-50 py-12 dark:border-slate-800 dark:bg-slate-900"),
		h.Div(h.Class("container mx-auto grid grid-cols-2 gap-8 px-4 text-center md:grid-cols-4"),
			g.Map(stats, func(s stat) g.Node {
				return h.Div(
					h.P(h.Class("text-3xl font-bold text-emerald-600 md:text-4xl"), g.Text(s.value)),
					h.P(h.Class("mt-1 text-sm text-slate-500"), g.Text(s.label)),
				)
			}),
		),
	)
}

func sectionHeading(title, subtitle string) g.Node {
	return h.Div(h.Class("mx-auto mb-12 max-w-2xl text-center"),
		h.H2(h.Class("mb-4 text-3xl font-bold md:text-4xl"), g.Text(title)),
		h.P(h.Class("text-lg text-slate-600 dark:text-slate-400"), g.Text(subtitle)),
	)
}

func featuresSection() g.Node {
	return h.Section(h.ID("how-it-works"), h.Class("container mx-auto px-4 py-20"),
		sectionHeading("How SurplusLink Works", "Our platform makes food redistribution simple, efficient, and impactful."),
		h.Div(h.Class("grid gap-6 md:grid-cols-2 lg:grid-cols-4"),
			g.Map(features, func(f feature) g.Node {
				return components.Card("p-6",
					h.Div(h.Class("gradient-primary mb-4 inline-flex rounded-xl p-3"), components.Icon(f.icon, "h-6 w-6 text-white")),
					h.H3(h.Class("mb-2 text-lg font-semibold"), g.Text(f.title)),
					h.P(h.Class("text-slate-600 dark:text-slate-400"), g.Text(f.description)),
				)
			}),
		),
	)
}

func stepsSection() g.Node {
	return h.Section(h.Class("bg-slate-50 py-20 dark:bg-slate-900"),
		h.Div(h.Class("container mx-auto px-4"),
			sectionHeading("Simple Steps to Make a Difference", "Whether you're donating or receiving, our platform guides you every step of the way."),
			h.Div(h.Class("grid gap-8 md:grid-cols-3"),
				g.Map(steps, func(s step) g.Node {
					return h.Div(h.Class("text-center"),
						h.Div(h.Class("gradient-primary mx-auto mb-4 flex h-16 w-16 items-center justify-center rounded-full text-2xl font-bold text-white"), g.Text(s.number)),
						h.H3(h.Class("mb-2 text-xl font-semibold"), g.Text(s.title)),
						h.P(h.Class("text-slate-600 dark:text-slate-400"), g.Text(s.description)),
					)
				}),
			),
		),
	)
}

func benefitCard(variant, title, subtitle, cta string, icon components.IconName, items []string) g.Node {
	header := "gradient-primary"
	if variant == "accent" {
		header = "gradient-accent"
	}
	return components.Card("overflow-hidden",
		h.Div(h.Class(header+" flex items-center gap-4 p-6 text-white"),
			h.Div(h.Class("rounded-xl bg-white/20 p-3"), components.Icon(icon, "h-6 w-6")),
			h.Div(
				h.H3(h.Class("text-xl font-semibold"), g.Text(title)),
				h.P(h.Class("text-sm opacity-80"), g.Text(subtitle)),
			),
		),
		h.Div(h.Class("p-6"),
			h.Ul(h.Class("space-y-3"),
				g.Map(items, func(item string) g.Node {
					return h.Li(h.Class("flex items-center gap-3"),
						h.Div(h.Class("rounded-full bg-emerald-100 p-1 text-emerald-700 dark:bg-emerald-900/40 dark:text-emerald-300"), components.Icon(components.IconCheck, "h-4 w-4")),
						h.Span(g.Text(item)),
					)
				}),
			),
			h.Div(h.Class("mt-6"), components.ButtonLink("/login", variant, g.Text(cta))),
		),
	)
}

func benefitsSection() g.Node {
	return h.Section(h.Class("container mx-auto px-4 py-20"),
		sectionHeading("Built for Everyone", "Tailored experiences for food donors and NGO partners."),
		h.Div(h.Class("mx-auto grid max-w-5xl gap-8 md:grid-cols-2"),
			benefitCard("hero", "For Donors", "Restaurants, Caterers, Event Organizers", "Start Donating", components.IconBuilding, donorBenefits),
			benefitCard("accent", "For NGOs", "Food Banks, Shelters, Community Kitchens", "Join as NGO", components.IconHeart, ngoBenefits),
		),
	)
}

func ctaSection() g.Node {
	return h.Section(h.Class("container mx-auto px-4 pb-20"),
		h.Div(h.Class("gradient-primary rounded-3xl p-12 text-center text-white"),
			h.H2(h.Class("mb-4 text-3xl font-bold md:text-4xl"), g.Text("Ready to Make an Impact?")),
			h.P(h.Class("mx-auto mb-8 max-w-2xl text-lg opacity-90"),
				g.Text("Join SurplusLink today and be part of the solution. Together, we can reduce food waste and feed those in need."),
			),
			components.ButtonLink("/login", "", g.Text("Get Started Free"), components.Icon(components.IconArrowRight, "h-5 w-5")),
		),
	)
}

func footer() g.Node {
	return h.Footer(h.Class("border-t border-slate-200 py-8 dark:border-slate-800"),
		h.Div(h.Class("container mx-auto flex flex-col items-center justify-between gap-4 px-4 md:flex-row"),
			h.Div(h.Class("flex items-center gap-2"), components.Logo("")),
			h.P(h.Class("text-sm text-slate-500"),
				g.Text("© 2026 SurplusLink. All rights reserved. Making food redistribution smarter."),
			),
		),
	)
}
