package catalog

import "github.com/engr-razib/BrandingAssetGenerator/internal/brand"

var logoSamples = []brand.FormData{
	{
		LogoText:    "Starlight",
		Description: "A minimalist logo for a space exploration blog, using constellations as inspiration.",
	},
	{
		LogoText:    "AquaPure",
		Description: "A clean, modern logo for a water filtration company, featuring a stylized water drop and leaf.",
	},
	{
		LogoText:    "Forge",
		Description: "A strong, industrial logo for a custom metalworking shop, perhaps using an anvil or hammer motif.",
	},
	{
		LogoText:    "Zenith",
		Description: "An elegant logo for a luxury real estate agency, suggesting peaks and success.",
	},
	{
		LogoText:    "ByteBloom",
		Description: "A futuristic logo for a tech startup focused on AI-driven agriculture.",
	},
}

var bannerSamples = []brand.FormData{
	{
		CopyTitle:   "The Ultimate Coding Bootcamp",
		CopyText:    "Go from beginner to pro in 12 weeks.",
		Features:    "Live mentorship, Real-world projects, Career support",
		ButtonText:  "Enroll Now",
		Description: "An online tech education platform.",
	},
	{
		CopyTitle:   "Sustainable Style, Delivered.",
		CopyText:    "Eco-friendly fashion for the conscious consumer.",
		Features:    "Organic cotton, Recycled materials, Ethical production",
		ButtonText:  "Shop the Collection",
		Description: "An e-commerce clothing brand focused on sustainability.",
	},
	{
		CopyTitle:   "Your Next Adventure Awaits",
		CopyText:    "Book flights, hotels, and experiences worldwide.",
		Features:    "Best price guarantee, 24/7 customer support, Flexible booking",
		ButtonText:  "Start Exploring",
		Description: "A comprehensive travel booking website.",
	},
	{
		CopyTitle:   "Master Your Workflow",
		CopyText:    "The all-in-one productivity app for teams.",
		Features:    "Task management, Collaborative docs, Time tracking",
		ButtonText:  "Try for Free",
		Description: "A SaaS product for project management.",
	},
}

var socialSamples = []brand.FormData{
	{
		CopyTitle:   "New Arrival: The Astro Sneaker",
		CopyText:    "Walk on clouds with our new lightweight, breathable shoe.",
		Features:    "Limited edition colorway!",
		ButtonText:  "Shop Now",
		Description: "A trendy footwear brand launching a new product.",
	},
	{
		CopyTitle:   "Weekly Special: 50% Off Lattes",
		CopyText:    "Get your caffeine fix for less. This week only!",
		Features:    "Valid at all locations",
		ButtonText:  "Find a Store",
		Description: "A local coffee shop chain running a promotion.",
	},
	{
		CopyTitle:   "Join Our Free Webinar!",
		CopyText:    "Learn the secrets of digital marketing from industry experts.",
		Features:    "Live Q&A session, Free resources included",
		ButtonText:  "Register Today",
		Description: "A marketing agency hosting an educational event.",
	},
	{
		CopyTitle:   "Happy Earth Day!",
		CopyText:    "Let's work together to protect our planet. What are you doing to help?",
		Features:    "Featuring an image of a lush, green landscape.",
		ButtonText:  "Learn More",
		Description: "A non-profit environmental organization raising awareness.",
	},
}
