package utils

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"studyplanner/config"
	"studyplanner/planner"

	"github.com/go-resty/resty/v2"
)

const courseSystemPrompt = `You are a study-course planner. Reply with JSON only, no prose, shaped as:
{"course_title": string, "overview": string, "modules": [{"day": int, "title": string, "lesson": string, "practice": string, "quiz": string}]}
Every day from 1 to the requested duration must have at least one module.`

// chatCompletionResponse is the OpenAI-compatible response envelope
type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// GenerateCoursePlan asks the external text-generation service for a
// day-tagged module set. The response is decoded strictly into a
// GeneratedPlan; anything else is an error. Validation of the day
// distribution happens in the caller, before any row is written.
func GenerateCoursePlan(topic, request, gradeLevel, educationBoard string, durationDays int) (*planner.GeneratedPlan, error) {
	userPrompt := fmt.Sprintf(
		"Topic: %s\nDuration: %d days\nGrade level: %s\nEducation board: %s\nRequest: %s",
		topic, durationDays, gradeLevel, educationBoard, request,
	)

	body := map[string]interface{}{
		"model": config.AppConfig.GeneratorModel,
		"messages": []map[string]string{
			{"role": "system", "content": courseSystemPrompt},
			{"role": "user", "content": userPrompt},
		},
		"temperature": 0.4,
	}

	client := resty.New()
	resp, err := client.R().
		SetHeader("Authorization", "Bearer "+config.AppConfig.GeneratorApiKey).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post(config.AppConfig.GeneratorApiUrl)
	if err != nil {
		log.Printf("Generator request failed: %v", err)
		return nil, fmt.Errorf("generator request failed: %v", err)
	}
	if resp.StatusCode() != 200 {
		log.Printf("Generator API error: %s", resp.String())
		return nil, fmt.Errorf("generator API returned status %d", resp.StatusCode())
	}

	var completion chatCompletionResponse
	if err := json.Unmarshal(resp.Body(), &completion); err != nil {
		return nil, fmt.Errorf("failed to parse generator response: %v", err)
	}
	if len(completion.Choices) == 0 {
		return nil, fmt.Errorf("generator returned no choices")
	}

	return DecodeGeneratedPlan(completion.Choices[0].Message.Content)
}

// DecodeGeneratedPlan strictly parses generator text into a GeneratedPlan.
// Tolerates a markdown code fence around the JSON, nothing more.
func DecodeGeneratedPlan(content string) (*planner.GeneratedPlan, error) {
	content = strings.TrimSpace(content)
	if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```json")
		content = strings.TrimPrefix(content, "```")
		content = strings.TrimSuffix(strings.TrimSpace(content), "```")
		content = strings.TrimSpace(content)
	}

	decoder := json.NewDecoder(strings.NewReader(content))
	decoder.DisallowUnknownFields()

	var plan planner.GeneratedPlan
	if err := decoder.Decode(&plan); err != nil {
		return nil, fmt.Errorf("generator returned malformed plan: %v", err)
	}
	if strings.TrimSpace(plan.CourseTitle) == "" {
		return nil, fmt.Errorf("generator returned empty course title")
	}
	return &plan, nil
}
