package brand

import (
	"math"
	"regexp"
	"strconv"
)

type AspectRatio string

const (
	AspectSquare     AspectRatio = "1:1"
	AspectWidescreen AspectRatio = "16:9"
	AspectVertical   AspectRatio = "9:16"
	AspectLandscape  AspectRatio = "4:3"
	AspectPortrait   AspectRatio = "3:4"
)

const DefaultAspectRatio = AspectSquare

// Declaration order matters: ties resolve to the earlier entry.
var supportedRatios = []struct {
	Ratio AspectRatio
	Value float64
}{
	{Ratio: AspectSquare, Value: 1},
	{Ratio: AspectWidescreen, Value: 16.0 / 9.0},
	{Ratio: AspectVertical, Value: 9.0 / 16.0},
	{Ratio: AspectLandscape, Value: 4.0 / 3.0},
	{Ratio: AspectPortrait, Value: 3.0 / 4.0},
}

var sizePairRegex = regexp.MustCompile(`(\d+)\s*[×xX]\s*(\d+)`)

func SupportedAspectRatios() []AspectRatio {
	out := make([]AspectRatio, 0, len(supportedRatios))
	for _, r := range supportedRatios {
		out = append(out, r.Ratio)
	}
	return out
}

// ParseDimensions extracts the first "W × H" pair from a size label.
func ParseDimensions(sizeLabel string) (width, height int, ok bool) {
	matches := sizePairRegex.FindStringSubmatch(sizeLabel)
	if len(matches) != 3 {
		return 0, 0, false
	}
	w, errW := strconv.Atoi(matches[1])
	h, errH := strconv.Atoi(matches[2])
	if errW != nil || errH != nil {
		return 0, 0, false
	}
	return w, h, true
}

func ResolveAspectRatio(sizeLabel string) AspectRatio {
	width, height, ok := ParseDimensions(sizeLabel)
	if !ok || height == 0 {
		return DefaultAspectRatio
	}
	return NearestAspectRatio(float64(width) / float64(height))
}

func NearestAspectRatio(ratio float64) AspectRatio {
	best := supportedRatios[0]
	minDiff := math.Abs(ratio - best.Value)
	for _, candidate := range supportedRatios[1:] {
		if diff := math.Abs(ratio - candidate.Value); diff < minDiff {
			minDiff = diff
			best = candidate
		}
	}
	return best.Ratio
}
