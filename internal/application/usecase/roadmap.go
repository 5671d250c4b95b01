package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"

	"trainingcentre/internal/domain"
)

// TextGenerator is the boundary to the hosted model. Implemented by
// ai.GeminiClient; tests substitute a stub.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

const roadmapPrompt = `As a world-class career architect at the Mahesh Allakatla Training Centre, create a detailed step-by-step technical roadmap for someone wanting to: "%s".

Structure your response in Markdown:
1. A brief visionary introduction (2 sentences).
2. Phase-by-phase breakdown (3-4 phases).
3. Specific technical skills for each phase.
4. Suggested course from our institute (referencing Power BI, SQL, Microsoft Fabric, Azure Data Engineering, or Agentic AI Swarms if applicable).
5. Estimated timeframe for mastery.

Keep the tone professional, inspiring, and focused on "Excellence".`

// RoadmapUseCase turns a free-text career goal into a roadmap. Every call
// is a fresh, independent request: no retry, no caching, no streaming.
type RoadmapUseCase struct {
	generator TextGenerator
}

func NewRoadmapUseCase(generator TextGenerator) *RoadmapUseCase {
	return &RoadmapUseCase{generator: generator}
}

// Generate resolves to one of three result kinds and never returns an
// error: service failures are logged here and absorbed into the result.
func (uc *RoadmapUseCase) Generate(ctx context.Context, goal string) domain.RoadmapResult {
	prompt := fmt.Sprintf(roadmapPrompt, goal)

	text, err := uc.generator.Generate(ctx, prompt)
	if err != nil {
		log.Printf("roadmap generation failed: %v", err)
		return domain.RoadmapResult{Kind: domain.RoadmapServiceError}
	}
	if strings.TrimSpace(text) == "" {
		return domain.RoadmapResult{Kind: domain.RoadmapEmpty}
	}
	return domain.RoadmapResult{Kind: domain.RoadmapSuccess, Text: text}
}
