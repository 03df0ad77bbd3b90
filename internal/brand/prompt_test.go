package brand

import (
	"errors"
	"strings"
	"testing"
)

func TestResolveAspectRatio(t *testing.T) {
	tests := []struct {
		label string
		want  AspectRatio
	}{
		{label: "Leaderboard | 728 × 90 px", want: AspectWidescreen},
		{label: "Square Post | 1080 × 1080 px", want: AspectSquare},
		{label: "Story/Reel | 1080 × 1920 px", want: AspectVertical},
		{label: "Portrait Post | 1080 x 1350 px", want: AspectPortrait},
		{label: "Medium Rectangle | 300×250 px", want: AspectLandscape},
		{label: "Large Rectangle | 336 X 280 px", want: AspectLandscape},
		{label: "Profile Picture | 180  ×  180 px", want: AspectSquare},
		{label: "Trade Show Booth | 6 × 3 ft", want: AspectWidescreen},
		{label: "A4 Poster / Flyer | 210 × 297 mm", want: AspectPortrait},
		{label: "Thumbnail | 1280 × 720 px", want: AspectWidescreen},
		{label: "Custom | N/A", want: AspectSquare},
		{label: "", want: AspectSquare},
		{label: "Broken | 300 × 0 px", want: AspectSquare},
	}

	for _, tt := range tests {
		if got := ResolveAspectRatio(tt.label); got != tt.want {
			t.Errorf("ResolveAspectRatio(%q) = %s, want %s", tt.label, got, tt.want)
		}
	}
}

func TestNearestAspectRatioTieGoesToFirstDeclared(t *testing.T) {
	// 0.875 is exactly halfway between 3:4 and 1:1.
	if got := NearestAspectRatio(0.875); got != AspectSquare {
		t.Fatalf("tie resolved to %s, want %s", got, AspectSquare)
	}
}

func TestParseDimensions(t *testing.T) {
	w, h, ok := ParseDimensions("Channel Art | 2560 × 1440 px")
	if !ok || w != 2560 || h != 1440 {
		t.Fatalf("unexpected dimensions: %d %d %v", w, h, ok)
	}
	if _, _, ok := ParseDimensions("Custom | N/A"); ok {
		t.Fatalf("expected no dimensions")
	}
}

func TestBuildPromptIsDeterministic(t *testing.T) {
	form := FormData{
		CopyTitle:   "Master Your Workflow",
		CopyText:    "The all-in-one productivity app for teams.",
		Features:    "Task management, Collaborative docs",
		Description: "A SaaS product for project management.",
		ButtonText:  "Try for Free",
	}
	p1, r1 := BuildPrompt(form, Banner, "Billboard | 970 × 250 px")
	p2, r2 := BuildPrompt(form, Banner, "Billboard | 970 × 250 px")
	if p1 != p2 || r1 != r2 {
		t.Fatalf("prompt builder is not deterministic")
	}
}

func TestBuildPromptLogo(t *testing.T) {
	form := FormData{LogoText: "Starlight", Description: "A minimalist logo for a space exploration blog."}
	prompt, ratio := BuildPrompt(form, Logo, "Square Logo | 500 × 500 px")
	if ratio != AspectSquare {
		t.Fatalf("unexpected ratio: %s", ratio)
	}
	for _, want := range []string{
		`described as: "A minimalist logo for a space exploration blog."`,
		"approximately Square Logo | 500 × 500 px",
		`brand name "Starlight"`,
		"scalable logo",
		"Avoid clutter",
		"transparent background",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q:\n%s", want, prompt)
		}
	}
	if strings.Contains(prompt, "headline") {
		t.Errorf("logo prompt must not contain banner clauses:\n%s", prompt)
	}
}

func TestBuildPromptKeepsUserTextVerbatim(t *testing.T) {
	form := FormData{
		Description: "A bakery called \"Luna\"\nfresh bread daily",
		CopyTitle:   "Tab\there",
		ButtonText:  `Say "hi"`,
	}
	prompt, _ := BuildPrompt(form, Banner, "Leaderboard | 728 × 90 px")
	for _, want := range []string{
		"described as: \"A bakery called \"Luna\"\nfresh bread daily\".",
		"headline text: \"Tab\there\".",
		`with the text: "Say "hi"".`,
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q:\n%s", want, prompt)
		}
	}
	for _, escaped := range []string{`\"`, `\n`, `\t`} {
		if strings.Contains(prompt, escaped) {
			t.Errorf("prompt contains escape sequence %s:\n%s", escaped, prompt)
		}
	}

	logo, _ := BuildPrompt(FormData{LogoText: `Joe's "Diner"`, Description: "diner"}, Logo, "Square Logo | 500 × 500 px")
	if !strings.Contains(logo, `brand name "Joe's "Diner"".`) {
		t.Errorf("logo prompt altered the brand name:\n%s", logo)
	}
}

func TestBuildPromptConditionalClauses(t *testing.T) {
	form := FormData{
		CopyTitle:   "Join Our Free Webinar!",
		Description: "A marketing agency hosting an educational event.",
	}
	prompt, _ := BuildPrompt(form, Banner, "Half Page | 300 × 600 px")

	if !strings.Contains(prompt, `main headline text: "Join Our Free Webinar!"`) {
		t.Errorf("headline clause missing:\n%s", prompt)
	}
	if strings.Contains(prompt, "Key features") {
		t.Errorf("features clause must be omitted when features is empty:\n%s", prompt)
	}
	if strings.Contains(prompt, "slogan") || strings.Contains(prompt, "call-to-action") {
		t.Errorf("unexpected optional clause:\n%s", prompt)
	}
	if !strings.Contains(prompt, "website banner") {
		t.Errorf("banner kind missing:\n%s", prompt)
	}
	if !strings.HasSuffix(prompt, closingInstruction) {
		t.Errorf("closing instruction missing:\n%s", prompt)
	}
}

func TestBuildPromptSocialPosterAllClauses(t *testing.T) {
	form := FormData{
		CopyTitle:   "Weekly Special: 50% Off Lattes",
		CopyText:    "Get your caffeine fix for less.",
		Features:    "Valid at all locations",
		Description: "A local coffee shop chain running a promotion.",
		ButtonText:  "Find a Store",
	}
	prompt, ratio := BuildPrompt(form, SocialPoster, "Story/Reel | 1080 × 1920 px")
	if ratio != AspectVertical {
		t.Fatalf("unexpected ratio: %s", ratio)
	}
	for _, want := range []string{
		"social media post",
		`headline text: "Weekly Special: 50% Off Lattes"`,
		`slogan text: "Get your caffeine fix for less."`,
		"highlight visually or with text are: Valid at all locations.",
		`button with the text: "Find a Store"`,
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q:\n%s", want, prompt)
		}
	}
}

func TestBuildPromptEmptyFormDegrades(t *testing.T) {
	prompt, ratio := BuildPrompt(FormData{}, Banner, "Custom | N/A")
	if prompt == "" {
		t.Fatalf("expected a prompt for an empty form")
	}
	if ratio != DefaultAspectRatio {
		t.Fatalf("unexpected ratio: %s", ratio)
	}
}

func TestParseCategory(t *testing.T) {
	tests := map[string]Category{
		"Logo":         Logo,
		"banner":       Banner,
		"SocialPoster": SocialPoster,
		" social ":     SocialPoster,
	}
	for in, want := range tests {
		got, err := ParseCategory(in)
		if err != nil || got != want {
			t.Errorf("ParseCategory(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := ParseCategory("flyer"); !errors.Is(err, ErrUnknownCategory) {
		t.Fatalf("expected ErrUnknownCategory, got %v", err)
	}
}

func TestFormDataValidateAndSample(t *testing.T) {
	if err := (FormData{Description: "  "}).Validate(); !errors.Is(err, ErrDescriptionRequired) {
		t.Fatalf("expected ErrDescriptionRequired, got %v", err)
	}
	form := FormData{LogoText: "Mine", ButtonText: "Keep"}
	got := form.ApplySample(FormData{LogoText: "Forge", Description: "Metalworking shop"})
	if got.LogoText != "Forge" || got.Description != "Metalworking shop" || got.ButtonText != "Keep" {
		t.Fatalf("unexpected merge: %+v", got)
	}
}
