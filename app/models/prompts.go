package models

import "fmt"

const visionPrompt = "Please describe the room's layout, colors, decor, and general energy flow."

const recommendationSchema = `{
    "description": "string (overview of room layout and feel)",
    "feng_shui_recommendations": [
        {
            "aspect": "string (e.g., layout, colors, decor, energy flow)",
            "advice": "string (specific Feng Shui recommendation)"
        }
    ]
}`

func recommendationSystemPrompt(element string) string {
	return "You are a Feng Shui expert providing detailed descriptions and Feng Shui recommendations based on birth elements.\n" +
		fmt.Sprintf("The user's Feng Shui element is %s. Respond in JSON format using the schema: %s", element, recommendationSchema)
}

func recommendationUserPrompt(analysisText, element string) string {
	return fmt.Sprintf("Based on this analysis: %s\n\nProvide specific Feng Shui recommendations tailored to the %s element.",
		analysisText, element)
}
