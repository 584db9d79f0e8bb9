package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Chat-completions API structures (OpenAI-compatible)
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatRequest struct {
	Model       string        `json:"model"`
	Messages    []ChatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float32       `json:"temperature"`
	Stream      bool          `json:"stream"`
}

// buildPrompt asks for the timetable as clean JSON. The reply still goes
// through the full fallback chain, models do not always listen.
func buildPrompt(subject, topics, freeTime, planType string) string {
	if planType == "" {
		planType = "daily"
	}
	return fmt.Sprintf(`You are an expert study planner.

Create a structured %s timetable.

Subject: %s
Topics: %s
Available time per day: %s

Make it practical, clear, and well-organized.

IMPORTANT: Return ONLY valid JSON in the following format, without markdown, without explanations, without code blocks:
{"timetable": [{"period": "Day 1", "time": "9:00-10:00", "activity": "..."}]}`,
		planType, subject, topics, freeTime)
}

// requestTimetable calls the router chat-completions endpoint and returns
// the generated text. Errors are descriptive strings for the caller to
// surface or fall back on, never a crash.
func requestTimetable(cfg Config, prompt string) (string, error) {
	reqBody := ChatRequest{
		Model:       cfg.ModelID,
		Messages:    []ChatMessage{{Role: "user", Content: prompt}},
		MaxTokens:   500,
		Temperature: 0.7,
		Stream:      false,
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %v", err)
	}

	req, err := http.NewRequest("POST", cfg.RouterURL, bytes.NewBuffer(payload))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %v", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if cfg.Token != "" {
		req.Header.Set("Authorization", "Bearer "+cfg.Token)
	}

	client := &http.Client{Timeout: cfg.Timeout}
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to call router API: %v", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %v", err)
	}

	if resp.StatusCode != 200 {
		return "", fmt.Errorf("router API returned status %d: %s", resp.StatusCode, string(bodyBytes))
	}

	content, err := extractReplyContent(bodyBytes)
	if err != nil {
		return "", err
	}

	fmt.Printf("🤖 Router API call completed (%d bytes)\n", len(bodyBytes))
	return strings.TrimSpace(content), nil
}

// extractReplyContent digs the generated text out of an OpenAI-compatible
// response, with fallbacks for the alternate shapes some providers return:
// choices[0].message.content, .delta.content, .text, then generated_text on
// a top-level object or list.
func extractReplyContent(data []byte) (string, error) {
	var parsed any
	if err := json.Unmarshal(data, &parsed); err != nil {
		// Not JSON at all, take the raw body.
		return string(data), nil
	}

	switch v := parsed.(type) {
	case map[string]any:
		if choices, ok := v["choices"].([]any); ok && len(choices) > 0 {
			if choice, ok := choices[0].(map[string]any); ok {
				for _, key := range []string{"message", "delta"} {
					if msg, ok := choice[key].(map[string]any); ok {
						if content, ok := msg["content"].(string); ok && content != "" {
							return content, nil
						}
					}
				}
				if text, ok := choice["text"].(string); ok && text != "" {
					return text, nil
				}
			}
		}
		if text, ok := v["generated_text"].(string); ok {
			return text, nil
		}
	case []any:
		if len(v) > 0 {
			if first, ok := v[0].(map[string]any); ok {
				if text, ok := first["generated_text"].(string); ok {
					return text, nil
				}
			}
		}
	}

	return "", fmt.Errorf("no generated text in response")
}
