package models

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math"
	"time"

	"PeaceScapeAI/app/utils/restclient"
)

const (
	endpoint       = "/v1/chat/completions"
	defaultBaseURL = "https://api.groq.com/openai"
	maxRetries     = 3
)

var _ Interface = &GroqClient{}

// GroqClient talks to Groq's OpenAI-compatible chat completions API with one
// vision-capable model for image description and one text model for the
// structured recommendations pass.
type GroqClient struct {
	restClient  *restclient.RestClient
	visionModel string
	textModel   string
}

func NewGroqClient(baseURL, apiKey, visionModel, textModel string) *GroqClient {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	headers := map[string]string{"Authorization": "Bearer " + apiKey}
	return &GroqClient{
		restClient:  restclient.NewRestClient(baseURL, headers),
		visionModel: visionModel,
		textModel:   textModel,
	}
}

func (gc *GroqClient) DescribeImage(ctx context.Context, imageB64 string) (string, error) {
	payload := requestPayload{
		Model: gc.visionModel,
		Messages: []Message{
			{
				Role: "user",
				Content: []ContentPart{
					{Type: "text", Text: visionPrompt},
					{Type: "image_url", ImageURL: &ImageURL{URL: "data:image/jpeg;base64," + imageB64}},
				},
			},
		},
		Temperature: 0.7,
		MaxTokens:   1024,
	}

	response, err := gc.sendRequestAndParse(ctx, payload)
	if err != nil {
		return "", fmt.Errorf("vision analysis: %w", err)
	}
	return response.Choices[0].Message.Content, nil
}

func (gc *GroqClient) GenerateRecommendations(ctx context.Context, analysisText, element string) (string, error) {
	payload := requestPayload{
		Model: gc.textModel,
		Messages: []Message{
			{Role: "system", Content: recommendationSystemPrompt(element)},
			{Role: "user", Content: recommendationUserPrompt(analysisText, element)},
		},
		Temperature:    0.6,
		MaxTokens:      1024,
		ResponseFormat: &responseFormat{Type: "json_object"},
	}

	response, err := gc.sendRequestAndParse(ctx, payload)
	if err != nil {
		return "", fmt.Errorf("recommendation generation: %w", err)
	}
	return response.Choices[0].Message.Content, nil
}

func (gc *GroqClient) sendRequestAndParse(ctx context.Context, payload requestPayload) (*ResponseLLM, error) {
	var err error
	var response []byte
	var status int
	var generatedResponse ResponseLLM

	for i := 0; i < maxRetries; i++ {
		select {
		case <-ctx.Done():
			log.Println("🚨 Request canceled before execution")
			return nil, ctx.Err()
		default:
			if err != nil {
				time.Sleep(time.Duration(math.Pow(2, float64(i))) * 100 * time.Millisecond)
			}
			response, status, err = gc.restClient.Post(ctx, endpoint, payload, nil)
			if err != nil {
				log.Printf("⚠️ Attempt %d failed: %v", i, err)
				continue
			}
			if status != 200 {
				err = fmt.Errorf("http status %d: %s", status, string(response))
				log.Printf("⚠️ Attempt %d failed: %v", i, err)
				continue
			}

			if err = json.Unmarshal(response, &generatedResponse); err != nil {
				log.Printf("⚠️ Error parsing response: %v", err)
				continue
			}
			if len(generatedResponse.Choices) == 0 {
				err = errors.New("empty choices in model response")
				log.Printf("⚠️ Attempt %d failed: %v", i, err)
				continue
			}

			return &generatedResponse, nil
		}
	}

	return nil, fmt.Errorf("request failed after %d retries: %w", maxRetries, err)
}
