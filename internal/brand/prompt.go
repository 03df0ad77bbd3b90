package brand

import (
	"fmt"
	"strings"
)

const closingInstruction = " Ensure all text is legible and well-placed. The design should have a strong visual hierarchy that guides the viewer's attention to the headline and then the CTA. Use colors and imagery that align with the brand description."

// BuildPrompt turns a form snapshot into the text prompt for one target
// size and snaps the size label to a supported aspect ratio. It never
// fails: empty fields only make the prompt less specific.
func BuildPrompt(form FormData, category Category, sizeLabel string) (string, AspectRatio) {
	description := strings.TrimSpace(form.Description)
	size := strings.TrimSpace(sizeLabel)

	var b strings.Builder
	b.Grow(1024)

	b.WriteString(fmt.Sprintf("Generate a high-resolution, professional branding asset for a brand described as: \"%s\".", description))
	b.WriteString(fmt.Sprintf(" The target size is approximately %s.", size))
	b.WriteString(" The asset must be visually appealing, modern, and follow best design practices.")

	switch category {
	case Logo:
		b.WriteString(fmt.Sprintf(" This asset is a logo. The logo must feature the brand name \"%s\".", strings.TrimSpace(form.LogoText)))
		b.WriteString(" Design a clean, memorable, and scalable logo. Avoid clutter. A transparent background is preferred unless a solid color background is essential for the design.")
	case Banner, SocialPoster:
		kind := "website banner"
		if category == SocialPoster {
			kind = "social media post"
		}
		b.WriteString(" This asset is a " + kind + ".")
		writeClause(&b, form.CopyTitle, " It must include the main headline text: \"%s\".")
		writeClause(&b, form.CopyText, " It should also include the secondary slogan text: \"%s\".")
		writeClause(&b, form.Features, " Key features to highlight visually or with text are: %s.")
		writeClause(&b, form.ButtonText, " There must be a clear call-to-action (CTA) button with the text: \"%s\".")
		b.WriteString(closingInstruction)
	}

	return b.String(), ResolveAspectRatio(sizeLabel)
}

func writeClause(b *strings.Builder, value, format string) {
	value = strings.TrimSpace(value)
	if value == "" {
		return
	}
	b.WriteString(fmt.Sprintf(format, value))
}
