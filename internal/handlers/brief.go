package handlers

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/engr-razib/BrandingAssetGenerator/internal/brand"
	"github.com/engr-razib/BrandingAssetGenerator/internal/catalog"
)

// Brief is a parsed chat request: the form plus the chosen size labels.
type Brief struct {
	Form  brand.FormData
	Sizes []string
}

var briefKeys = map[string]string{
	"brand":       "logoText",
	"name":        "logoText",
	"logo":        "logoText",
	"headline":    "copyTitle",
	"title":       "copyTitle",
	"slogan":      "copyText",
	"subtitle":    "copyText",
	"features":    "features",
	"cta":         "buttonText",
	"button":      "buttonText",
	"description": "description",
	"desc":        "description",
	"sizes":       "sizes",
	"size":        "sizes",
}

// ParseBrief reads "key: value" lines. Lines without a known key are
// appended to the description. Sizes are 1-based positions in the
// category's catalog as listed by /sizes; without them the first catalog
// group is used.
func ParseBrief(category brand.Category, text string) (Brief, error) {
	var (
		form  brand.FormData
		extra []string
		sizes string
	)

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		field, value, ok := splitKey(line)
		if !ok {
			extra = append(extra, line)
			continue
		}

		switch field {
		case "logoText":
			form.LogoText = value
		case "copyTitle":
			form.CopyTitle = value
		case "copyText":
			form.CopyText = value
		case "features":
			form.Features = value
		case "buttonText":
			form.ButtonText = value
		case "description":
			extra = append([]string{value}, extra...)
		case "sizes":
			sizes = value
		}
	}
	form.Description = strings.Join(extra, " ")

	labels, err := resolveSizes(category, sizes)
	if err != nil {
		return Brief{}, err
	}
	return Brief{Form: form, Sizes: labels}, nil
}

func splitKey(line string) (field, value string, ok bool) {
	key, value, found := strings.Cut(line, ":")
	if !found {
		return "", "", false
	}
	field, ok = briefKeys[strings.ToLower(strings.TrimSpace(key))]
	if !ok {
		return "", "", false
	}
	return field, strings.TrimSpace(value), true
}

func resolveSizes(category brand.Category, raw string) ([]string, error) {
	labels := catalog.Labels(category)
	raw = strings.TrimSpace(raw)
	if raw == "" {
		groups := catalog.Groups(category)
		if len(groups) == 0 {
			return nil, fmt.Errorf("no sizes for %s", category)
		}
		out := make([]string, 0, len(groups[0].Sizes))
		for _, s := range groups[0].Sizes {
			out = append(out, s.Label())
		}
		return out, nil
	}

	seen := make(map[int]bool)
	var out []string
	for _, f := range strings.FieldsFunc(raw, func(r rune) bool { return r == ',' || r == ' ' || r == ';' }) {
		n, err := strconv.Atoi(f)
		if err != nil || n < 1 || n > len(labels) {
			return nil, fmt.Errorf("size %q is not in the list, see /sizes %s", f, commandFor(category))
		}
		if seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, labels[n-1])
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no sizes selected, see /sizes %s", commandFor(category))
	}
	return out, nil
}

// FormatBrief renders a form as a brief that ParseBrief reads back.
func FormatBrief(category brand.Category, form brand.FormData) string {
	var b strings.Builder
	write := func(key, value string) {
		if strings.TrimSpace(value) != "" {
			fmt.Fprintf(&b, "%s: %s\n", key, value)
		}
	}

	switch category {
	case brand.Logo:
		write("brand", form.LogoText)
	case brand.Banner, brand.SocialPoster:
		write("headline", form.CopyTitle)
		write("slogan", form.CopyText)
		write("features", form.Features)
		write("cta", form.ButtonText)
	}
	write("description", form.Description)
	return strings.TrimRight(b.String(), "\n")
}

func commandFor(category brand.Category) string {
	switch category {
	case brand.Logo:
		return "logo"
	case brand.Banner:
		return "banner"
	case brand.SocialPoster:
		return "social"
	}
	return ""
}
