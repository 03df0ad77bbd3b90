package catalog

import (
	"math/rand/v2"

	"github.com/engr-razib/BrandingAssetGenerator/internal/brand"
)

type Size struct {
	Title string `json:"title"`
	Size  string `json:"size"`
}

// Label is the string the generator receives, e.g. "Leaderboard | 728 × 90 px".
func (s Size) Label() string {
	return s.Title + " | " + s.Size
}

type Group struct {
	Name  string `json:"name"`
	Sizes []Size `json:"sizes"`
}

type CategoryInfo struct {
	Category    brand.Category `json:"category"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
}

func Categories() []CategoryInfo {
	return []CategoryInfo{
		{Category: brand.Logo, Title: "Logo", Description: "Create unique logos for your brand."},
		{Category: brand.Banner, Title: "Website/Print Banner", Description: "Generate engaging banners for your site."},
		{Category: brand.SocialPoster, Title: "Social Media Post", Description: "Design eye-catching posts for socials."},
	}
}

// Groups returns the ordered size groups valid for a category.
func Groups(category brand.Category) []Group {
	var src []Group
	switch category {
	case brand.Logo:
		src = logoGroups
	case brand.Banner:
		src = bannerGroups
	case brand.SocialPoster:
		src = socialGroups
	}

	out := make([]Group, 0, len(src))
	for _, g := range src {
		out = append(out, Group{Name: g.Name, Sizes: append([]Size(nil), g.Sizes...)})
	}
	return out
}

// Labels flattens Groups into the label strings, in display order.
func Labels(category brand.Category) []string {
	var out []string
	for _, g := range Groups(category) {
		for _, s := range g.Sizes {
			out = append(out, s.Label())
		}
	}
	return out
}

// Contains reports whether label belongs to the category's catalog.
func Contains(category brand.Category, label string) bool {
	for _, l := range Labels(category) {
		if l == label {
			return true
		}
	}
	return false
}

func Samples(category brand.Category) []brand.FormData {
	switch category {
	case brand.Logo:
		return append([]brand.FormData(nil), logoSamples...)
	case brand.Banner:
		return append([]brand.FormData(nil), bannerSamples...)
	case brand.SocialPoster:
		return append([]brand.FormData(nil), socialSamples...)
	}
	return nil
}

// RandomSample picks one sample form for the "magic fill" action.
func RandomSample(category brand.Category) (brand.FormData, bool) {
	samples := Samples(category)
	if len(samples) == 0 {
		return brand.FormData{}, false
	}
	return samples[rand.IntN(len(samples))], true
}
