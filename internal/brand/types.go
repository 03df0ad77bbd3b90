package brand

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrDescriptionRequired = errors.New("description is required")
	ErrUnknownCategory     = errors.New("unknown category")
)

type Category int

const (
	Logo Category = iota
	Banner
	SocialPoster
)

func Categories() []Category {
	return []Category{Logo, Banner, SocialPoster}
}

func (c Category) String() string {
	switch c {
	case Logo:
		return "Logo"
	case Banner:
		return "Banner"
	case SocialPoster:
		return "SocialPoster"
	}
	return fmt.Sprintf("Category(%d)", int(c))
}

func (c Category) Valid() bool {
	return c >= Logo && c <= SocialPoster
}

func (c Category) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownCategory, int(c))
	}
	return []byte(c.String()), nil
}

func (c *Category) UnmarshalText(text []byte) error {
	parsed, err := ParseCategory(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

func ParseCategory(value string) (Category, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "logo", "logos":
		return Logo, nil
	case "banner", "banners":
		return Banner, nil
	case "socialposter", "social", "poster", "social_poster", "social-poster":
		return SocialPoster, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCategory, value)
}

// FormData is a flat snapshot of the brand form. It is a value type, so
// passing it by value freezes it for the lifetime of a batch.
type FormData struct {
	LogoText    string `json:"logoText"`
	CopyTitle   string `json:"copyTitle"`
	CopyText    string `json:"copyText"`
	Features    string `json:"features"`
	Description string `json:"description"`
	ButtonText  string `json:"buttonText"`
}

func (f FormData) Validate() error {
	if strings.TrimSpace(f.Description) == "" {
		return ErrDescriptionRequired
	}
	return nil
}

// ApplySample overwrites f with every non-empty field of sample.
func (f FormData) ApplySample(sample FormData) FormData {
	pick := func(cur, override string) string {
		if override != "" {
			return override
		}
		return cur
	}
	return FormData{
		LogoText:    pick(f.LogoText, sample.LogoText),
		CopyTitle:   pick(f.CopyTitle, sample.CopyTitle),
		CopyText:    pick(f.CopyText, sample.CopyText),
		Features:    pick(f.Features, sample.Features),
		Description: pick(f.Description, sample.Description),
		ButtonText:  pick(f.ButtonText, sample.ButtonText),
	}
}

// ImageRequest is what the image-generation capability receives for one item.
type ImageRequest struct {
	Prompt      string
	AspectRatio AspectRatio
	Count       int
	MimeType    string
}
