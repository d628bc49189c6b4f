package prompt

import (
	"fmt"
	"strings"
)

// Input carries the user's descriptive choices for one generation.
type Input struct {
	Brief            string // free-text product brief
	Angle            string // "" or one of Angles()
	Ratio            string // aspect ratio code, e.g. "1:1"
	BackgroundMode   string // one of BackgroundModes(), may be "Custom"
	BackgroundCustom string // used only when BackgroundMode == "Custom"
	OverlayFont      string // one of OverlayFonts(), "None" disables the overlay
}

const (
	defaultBrief = "A product photo for e-commerce marketing."

	backgroundCustomMode     = "Custom"
	backgroundCustomFallback = "custom aesthetic"

	overlayFontNone = "None"

	policyClause = "photo-realistic, high detail, clean composition, accurate proportions, no watermark, no brand logos, non-copyrighted style, safe-for-work, professional studio quality"
)

var angleHints = map[string]string{
	"Eye-Level Shot":         "camera at subject eye height, natural balanced perspective",
	"Dutch Angle":            "slightly tilted horizon for dynamic tension",
	"Rear View":              "subject facing away from camera, back visible",
	"Leading Lines":          "strong leading lines guide the eyes to subject",
	"High-Angle Shot":        "camera above subject looking down",
	"Point of View":          "first-person perspective",
	"Symmetrical Framing":    "perfectly centered, left-right symmetry",
	"Frame Within a Frame":   "subject framed by natural elements",
	"Low-Angle Shot":         "camera below subject looking upward",
	"Over-the-Shoulder Shot": "behind the shoulder showing subject’s view",
	"Asymmetrical Framing":   "off-center for dynamic balance",
	"Golden Ratio":           "aligned to golden spiral focal point",
	"Bird’s-Eye View":        "top-down overhead camera",
	"Profile Shot":           "clean side view",
	"Rule of Thirds":         "aligned on thirds grid intersection",
	"Negative Space":         "minimalist with large empty space",
	"Worm’s-Eye View":        "ultra-low upward angle",
	"Three-Quarter View":     "3/4 facial angle",
	"Center Framing":         "perfectly centered",
	"Fill the Frame":         "tight crop, extreme close-up",
}

var ratioHints = map[string]string{
	"1:1":  "square ratio 1:1",
	"9:16": "vertical ratio 9:16",
	"16:9": "horizontal ratio 16:9",
	"4:5":  "portrait ratio 4:5",
	"3:2":  "ratio 3:2",
}

// Compose maps the user's choices to the final natural-language prompt.
// It is pure: identical input always yields byte-identical output.
func Compose(in Input) string {
	brief := strings.TrimSpace(in.Brief)
	if brief == "" {
		brief = defaultBrief
	}

	angleText := "Camera angle: best-natural."
	if angle := strings.TrimSpace(in.Angle); angle != "" {
		angleText = fmt.Sprintf("Camera angle: %s — %s.", angle, angleHints[angle])
	}

	ratio := strings.TrimSpace(in.Ratio)
	ratioDesc, ok := ratioHints[ratio]
	if !ok {
		// Unknown codes pass through verbatim rather than failing.
		ratioDesc = ratio
	}
	ratioText := fmt.Sprintf("Aspect ratio: %s.", ratioDesc)

	background := strings.TrimSpace(in.BackgroundMode)
	if background == backgroundCustomMode {
		background = strings.TrimSpace(in.BackgroundCustom)
		if background == "" {
			background = backgroundCustomFallback
		}
	}
	backgroundText := fmt.Sprintf("Background: %s with soft realistic lighting.", background)

	overlay := "No text overlay."
	if font := strings.TrimSpace(in.OverlayFont); font != "" && font != overlayFontNone {
		overlay = fmt.Sprintf("Optional minimal overlay using %s font for label if needed.", font)
	}

	var b strings.Builder
	b.Grow(1024)
	b.WriteString("Product/UGC Image.\n")
	b.WriteString("Subject: " + brief + ".\n")
	b.WriteString(angleText + "\n")
	b.WriteString(ratioText + "\n")
	b.WriteString(backgroundText + "\n")
	b.WriteString("Style: cinematic yet natural lighting, soft shadows, crisp focus, realistic materials, true-to-color.\n")
	b.WriteString("Composition: rule-of-thirds awareness, subtle depth of field, commercial photography look.\n")
	b.WriteString("Output: photorealistic single frame.\n")
	b.WriteString("Constraints: " + policyClause + ". " + overlay)

	return b.String()
}
