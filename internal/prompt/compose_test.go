package prompt

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseInput() Input {
	return Input{
		Brief:          "Matte black thermos bottle",
		Angle:          "Eye-Level Shot",
		Ratio:          "1:1",
		BackgroundMode: "Studio White",
		OverlayFont:    "None",
	}
}

func TestComposeAngles(t *testing.T) {
	for _, angle := range Angles() {
		t.Run(angle.Key, func(t *testing.T) {
			in := baseInput()
			in.Angle = angle.Key
			out := Compose(in)

			require.NotEmpty(t, angle.Hint, "angle %q has no hint", angle.Key)
			assert.Contains(t, out, angle.Hint)
			assert.Contains(t, out, "Camera angle: "+angle.Key)
		})
	}

	t.Run("empty angle falls back to best-natural", func(t *testing.T) {
		in := baseInput()
		in.Angle = ""
		assert.Contains(t, Compose(in), "Camera angle: best-natural.")
	})
}

func TestComposeRatios(t *testing.T) {
	for _, ratio := range Ratios() {
		t.Run(ratio.Key, func(t *testing.T) {
			in := baseInput()
			in.Ratio = ratio.Key
			assert.Contains(t, Compose(in), "Aspect ratio: "+ratio.Hint+".")
		})
	}

	t.Run("unknown ratio passes through verbatim", func(t *testing.T) {
		in := baseInput()
		in.Ratio = "21:9"
		assert.Contains(t, Compose(in), "Aspect ratio: 21:9.")
	})
}

func TestComposeBackground(t *testing.T) {
	t.Run("named mode is used directly", func(t *testing.T) {
		in := baseInput()
		in.BackgroundMode = "Dark Premium"
		assert.Contains(t, Compose(in), "Background: Dark Premium with soft realistic lighting.")
	})

	t.Run("custom mode uses the custom text", func(t *testing.T) {
		in := baseInput()
		in.BackgroundMode = "Custom"
		in.BackgroundCustom = "pastel gradient with dried flowers"
		assert.Contains(t, Compose(in), "Background: pastel gradient with dried flowers with soft realistic lighting.")
	})

	t.Run("custom mode with blank text falls back", func(t *testing.T) {
		in := baseInput()
		in.BackgroundMode = "Custom"
		in.BackgroundCustom = "   "
		assert.Contains(t, Compose(in), "Background: custom aesthetic with soft realistic lighting.")
	})
}

func TestComposeOverlay(t *testing.T) {
	t.Run("None disables the overlay", func(t *testing.T) {
		in := baseInput()
		in.OverlayFont = "None"
		out := Compose(in)
		assert.Contains(t, out, "No text overlay.")
		assert.NotContains(t, out, "Optional minimal overlay")
	})

	t.Run("a named font is interpolated", func(t *testing.T) {
		in := baseInput()
		in.OverlayFont = "Serif"
		assert.Contains(t, Compose(in), "Optional minimal overlay using Serif font for label if needed.")
	})
}

func TestComposeBriefFallback(t *testing.T) {
	in := baseInput()
	in.Brief = "  \n\t "
	assert.Contains(t, Compose(in), "Subject: A product photo for e-commerce marketing..")
}

func TestComposeDeterministic(t *testing.T) {
	in := baseInput()
	first := Compose(in)
	for i := 0; i < 10; i++ {
		require.Equal(t, first, Compose(in))
	}
}

func TestComposeFullTemplate(t *testing.T) {
	got := Compose(Input{
		Brief:          "Ceramic pour-over coffee set",
		Angle:          "Rule of Thirds",
		Ratio:          "4:5",
		BackgroundMode: "Marble Surface",
		OverlayFont:    "Sans-Serif",
	})

	want := strings.Join([]string{
		"Product/UGC Image.",
		"Subject: Ceramic pour-over coffee set.",
		"Camera angle: Rule of Thirds — aligned on thirds grid intersection.",
		"Aspect ratio: portrait ratio 4:5.",
		"Background: Marble Surface with soft realistic lighting.",
		"Style: cinematic yet natural lighting, soft shadows, crisp focus, realistic materials, true-to-color.",
		"Composition: rule-of-thirds awareness, subtle depth of field, commercial photography look.",
		"Output: photorealistic single frame.",
		fmt.Sprintf("Constraints: %s. Optional minimal overlay using Sans-Serif font for label if needed.", policyClause),
	}, "\n")

	assert.Equal(t, want, got)
}

func TestCatalogLockstep(t *testing.T) {
	angles := Angles()
	require.Len(t, angles, 20)
	require.Len(t, angleHints, 20, "hint table and angle list must stay in lockstep")

	ratios := Ratios()
	require.Len(t, ratios, 5)
	for _, ratio := range ratios {
		assert.NotEmpty(t, ratio.Hint, "ratio %q has no hint", ratio.Key)
	}

	assert.Equal(t, "Custom", BackgroundModes()[len(BackgroundModes())-1].Key)
	assert.Equal(t, "None", OverlayFonts()[0].Key)
}
