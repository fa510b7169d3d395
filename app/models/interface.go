package models

import "context"

type Interface interface {
	// DescribeImage sends the base64 JPEG to the vision model and returns a
	// free-form description of the space.
	DescribeImage(ctx context.Context, imageB64 string) (string, error)
	// GenerateRecommendations asks the text model for structured Feng Shui
	// advice tailored to the resolved element. The result is the raw model
	// output, expected to be JSON.
	GenerateRecommendations(ctx context.Context, analysisText, element string) (string, error)
}
