package report

import (
	"encoding/json"
	"strings"
	"unicode"

	"PeaceScapeAI/app/fengshui"
)

type Recommendation struct {
	Aspect string `json:"aspect"`
	Advice string `json:"advice"`
}

type Analysis struct {
	Description     string           `json:"description"`
	Recommendations []Recommendation `json:"feng_shui_recommendations"`
}

// Render turns the model's recommendation JSON into the Markdown reply.
// When the payload is not the expected JSON the raw text is returned as-is,
// so a model that ignored the schema still produces a readable reply.
func Render(raw string, element fengshui.Element) string {
	var a Analysis
	if err := json.Unmarshal([]byte(raw), &a); err != nil || a.Description == "" {
		return raw
	}

	var b strings.Builder
	b.WriteString("🔮 *Your Feng Shui Analysis*\n\n")
	b.WriteString("*Element*: ")
	b.WriteString(string(element))
	b.WriteString("\n\n*Room Description*:\n")
	b.WriteString(a.Description)
	b.WriteString("\n")

	if len(a.Recommendations) > 0 {
		b.WriteString("\n🌿 *Feng Shui Recommendations* 🌿\n")
		for _, rec := range a.Recommendations {
			b.WriteString("\n*")
			b.WriteString(capitalize(rec.Aspect))
			b.WriteString("*:\n")
			b.WriteString(rec.Advice)
			b.WriteString("\n")
		}
	}
	return b.String()
}

func capitalize(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return s
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
