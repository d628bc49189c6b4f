package prompt

// Option is one selectable entry of a fixed vocabulary. Hint carries the
// descriptive text the composer interpolates, where one exists.
type Option struct {
	Key  string `json:"key"`
	Hint string `json:"hint,omitempty"`
}

// The selectable camera angles, in UI order. Every entry must have a hint in
// angleHints; the two tables stay in lockstep.
var angleOrder = []string{
	"Eye-Level Shot", "Dutch Angle", "Rear View", "Leading Lines", "High-Angle Shot",
	"Point of View", "Symmetrical Framing", "Frame Within a Frame", "Low-Angle Shot",
	"Over-the-Shoulder Shot", "Asymmetrical Framing", "Golden Ratio", "Bird’s-Eye View",
	"Profile Shot", "Rule of Thirds", "Negative Space", "Worm’s-Eye View",
	"Three-Quarter View", "Center Framing", "Fill the Frame",
}

var ratioOrder = []string{"1:1", "9:16", "16:9", "4:5", "3:2"}

var backgroundModes = []string{
	"Studio White",
	"Soft Gradient",
	"Natural Daylight",
	"Dark Premium",
	"Marble Surface",
	"Outdoor Lifestyle",
	backgroundCustomMode,
}

var overlayFonts = []string{
	overlayFontNone,
	"Serif",
	"Sans-Serif",
	"Script",
	"Modern Display",
}

func Angles() []Option {
	out := make([]Option, 0, len(angleOrder))
	for _, name := range angleOrder {
		out = append(out, Option{Key: name, Hint: angleHints[name]})
	}
	return out
}

func Ratios() []Option {
	out := make([]Option, 0, len(ratioOrder))
	for _, code := range ratioOrder {
		out = append(out, Option{Key: code, Hint: ratioHints[code]})
	}
	return out
}

func BackgroundModes() []Option {
	out := make([]Option, 0, len(backgroundModes))
	for _, mode := range backgroundModes {
		out = append(out, Option{Key: mode})
	}
	return out
}

func OverlayFonts() []Option {
	out := make([]Option, 0, len(overlayFonts))
	for _, font := range overlayFonts {
		out = append(out, Option{Key: font})
	}
	return out
}
