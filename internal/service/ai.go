package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"

	"github.com/nutri-app/nutri/backend/internal/llm"
	"github.com/nutri-app/nutri/backend/internal/normalizer"
)

// tipsTimeout bounds one shared tips generation.
const tipsTimeout = 2 * time.Minute

var chatConfig = llm.GenerationConfig{
	MaxOutputTokens: 100,
	Temperature:     0.7,
	TopP:            0.8,
	TopK:            40,
}

// AIService turns prompts into validated payloads.
type AIService struct {
	client llm.Client
	cache  TipsCache
	group  singleflight.Group
}

var _ IAIService = (*AIService)(nil)

// NewAIService creates an AIService. cache may be nil to disable caching.
func NewAIService(client llm.Client, cache TipsCache) *AIService {
	return &AIService{client: client, cache: cache}
}

// GenerateTips asks the model for five recipes and five exercises suited to
// the given BMI and obesity risk level, and validates the answer.
func (s *AIService) GenerateTips(ctx context.Context, bmi, obesityRisk string) (*normalizer.RecommendationPayload, error) {
	key := tipsCacheKey(bmi, obesityRisk)
	if s.cache != nil {
		if payload, ok := s.cache.Get(ctx, key); ok {
			log.Debug().Str("key", key).Msg("serving cached tips")
			return payload, nil
		}
	}

	// The flight outlives any single caller: a waiter that disconnects gives
	// up on its own, the others still get the result.
	ch := s.group.DoChan(key, func() (interface{}, error) {
		flightCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), tipsTimeout)
		defer cancel()
		payload, err := s.generateTips(flightCtx, bmi, obesityRisk)
		if err == nil && s.cache != nil {
			s.cache.Set(flightCtx, key, payload)
		}
		return payload, err
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		if res.Shared {
			log.Debug().Str("key", key).Msg("coalesced concurrent tips request")
		}
		return res.Val.(*normalizer.RecommendationPayload), nil
	}
}

func (s *AIService) generateTips(ctx context.Context, bmi, obesityRisk string) (*normalizer.RecommendationPayload, error) {
	raw, err := s.client.Generate(ctx, tipsPrompt(bmi, obesityRisk))
	if err != nil {
		return nil, fmt.Errorf("failed to generate tips: %w", err)
	}
	log.Debug().Str("raw", raw).Msg("JSON generated")

	payload, err := normalizer.NormalizeStrict(raw)
	if err != nil {
		log.Error().
			Err(err).
			Str("kind", normalizer.Kind(err)).
			Str("raw", raw).
			Msg("Error cleaning JSON")
		return nil, fmt.Errorf("failed to process JSON response: %w", err)
	}
	return payload, nil
}

// Chat answers a nutrition question in a single sentence.
func (s *AIService) Chat(ctx context.Context, message string) (string, error) {
	history := []llm.Message{
		{Role: llm.RoleUser, Text: chatSystemPrompt},
		{Role: llm.RoleModel, Text: chatPrimer},
	}
	text, err := s.client.Chat(ctx, history, message, chatConfig)
	if err != nil {
		return "", fmt.Errorf("chat failed: %w", err)
	}
	return firstSentence(text), nil
}

// firstSentence keeps the text up to the first period, period included.
func firstSentence(text string) string {
	if i := strings.IndexByte(text, '.'); i >= 0 {
		return text[:i+1]
	}
	return text
}

// EstimateCalories identifies the dish in a photo and estimates its calories.
func (s *AIService) EstimateCalories(ctx context.Context, imageDataURL string) (*normalizer.CalorieEstimate, error) {
	image, mimeType, err := llm.DecodeDataURL(imageDataURL)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	raw, err := s.client.GenerateWithImage(ctx, caloriePrompt, image, mimeType)
	if err != nil {
		return nil, fmt.Errorf("failed to analyze image: %w", err)
	}

	estimate, err := normalizer.NormalizeLenient(raw)
	if err != nil {
		log.Error().
			Err(err).
			Str("kind", normalizer.Kind(err)).
			Str("raw", raw).
			Msg("Error in Gemini API")
		return nil, fmt.Errorf("failed to process calorie estimate: %w", err)
	}
	return normalizer.Defaults(estimate), nil
}
