package report

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"PeaceScapeAI/app/fengshui"
)

func TestRender(t *testing.T) {
	raw := `{"description":"A bright room with a desk by the window.",` +
		`"feng_shui_recommendations":[` +
		`{"aspect":"layout","advice":"Move the desk away from the door."},` +
		`{"aspect":"colors","advice":"Add warm red accents."}]}`

	want := "🔮 *Your Feng Shui Analysis*\n\n" +
		"*Element*: Fire\n\n" +
		"*Room Description*:\nA bright room with a desk by the window.\n\n" +
		"🌿 *Feng Shui Recommendations* 🌿\n\n" +
		"*Layout*:\nMove the desk away from the door.\n\n" +
		"*Colors*:\nAdd warm red accents.\n"

	assert.Equal(t, want, Render(raw, fengshui.ResolveElement(1987)))
}

func TestRenderIsDeterministic(t *testing.T) {
	raw := `{"description":"d","feng_shui_recommendations":[{"aspect":"a","advice":"b"}]}`
	assert.Equal(t, Render(raw, fengshui.Water), Render(raw, fengshui.Water))
}

func TestRenderWithoutRecommendations(t *testing.T) {
	raw := `{"description":"Just a hallway."}`
	want := "🔮 *Your Feng Shui Analysis*\n\n" +
		"*Element*: Unspecified\n\n" +
		"*Room Description*:\nJust a hallway.\n"
	assert.Equal(t, want, Render(raw, fengshui.Unspecified))
}

func TestRenderFallsBackOnInvalidJSON(t *testing.T) {
	assert.Equal(t, "plain model text", Render("plain model text", fengshui.Wood))
	assert.Equal(t, `{"unexpected":true}`, Render(`{"unexpected":true}`, fengshui.Wood))
}
