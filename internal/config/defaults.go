package config

// DefaultComposition returns the stock 1080p30 marketing cut.
func DefaultComposition() *Composition {
	return &Composition{
		Width:  1920,
		Height: 1080,
		FPS:    30,
		Brand: Brand{
			Name:        "Lumen",
			Tagline:     "Server-side measurement for first-party data",
			Description: "Connect first-party data from any source to any destination for web and mobile",
			URL:         "https://lumen.example.com",
			Colors: Palette{
				Background: "#141020",
				Primary:    "#141020",
				Accent:     "#E1FF82",
				Text:       "#FFFFFF",
				Subtle:     "#B8B5C8",
				Card:       "#1E1A2AE6",
				Glow:       "#7C3AED33",
			},
		},
		Metrics: Metrics{
			Visitors:    22,
			PageViews:   438,
			BounceRate:  0,
			TotalEvents: 10321,
		},
		Features: []Feature{
			{Name: "Ad blockers", Without: "Events lost", With: "Collected server-side"},
			{Name: "Cookie lifetime", Without: "7 days", With: "First-party, durable"},
			{Name: "Page speed", Without: "Heavy tag scripts", With: "One lightweight call"},
			{Name: "Data ownership", Without: "Vendor silos", With: "Your warehouse"},
		},
		Destinations: []string{
			"Google Analytics 4",
			"Google Ads Offline Conversions",
			"Meta Conversions API",
			"TikTok Events API",
			"BigQuery",
			"Firebase",
			"Adjust",
			"AppsFlyer",
			"Slack",
			"Zapier",
		},
		Referrers: []Referrer{
			{Source: "google.com", Visitors: 10},
			{Source: "github.com", Visitors: 10},
			{Source: "reddit.com", Visitors: 10},
			{Source: "facebook.com", Visitors: 10},
			{Source: "twitter.com", Visitors: 10},
			{Source: "linkedin.com", Visitors: 10},
			{Source: "www.google.com", Visitors: 1},
			{Source: "shop.myshopify.com", Visitors: 1},
		},
		Segments: []Segment{
			{Name: "tabs", Scene: "chaos", Seconds: seconds(9), Title: "Too many tabs. Too little signal."},
			{Name: "intro", Scene: "title", Seconds: seconds(8)},
			{Name: "metrics", Scene: "metrics", Frames: frames(165), Title: "Real-time overview"},
			{Name: "traffic", Scene: "traffic", Seconds: seconds(8), Title: "Analytics dashboard", Subtitle: "Real-time insights into your website performance"},
			{Name: "referrers", Scene: "referrers", Seconds: seconds(10), Title: "Referrer analytics", Subtitle: "Track your traffic sources and referral performance"},
			{Name: "destinations", Scene: "destinations", Seconds: seconds(10), Title: "Send data anywhere"},
			{Name: "benefits", Scene: "comparison", Seconds: seconds(14), Title: "Client-side vs server-side"},
			{Name: "solution", Scene: "solution", Seconds: seconds(8), Title: "Privacy-first analytics that actually work", Subtitle: "Server-side measurement platform"},
			{Name: "cta", Scene: "cta", Seconds: seconds(12), Title: "Own your data", Subtitle: "Start measuring in minutes"},
		},
	}
}

func seconds(v float64) *float64 {
	return &v
}

func frames(v int) *int {
	return &v
}
