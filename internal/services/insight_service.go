// internal/services/insight_service.go
package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/brewline/pos-backend/internal/ai/gemini"
	"github.com/brewline/pos-backend/internal/models"
	"github.com/brewline/pos-backend/internal/store"
)

// ErrUpstream marks a failure of the external analysis service: a
// transport error or a payload that does not match the expected shape.
var ErrUpstream = errors.New("insight service failure")

const unconfiguredInsight = "AI insights are currently unavailable. Please configure a Gemini API key."

// InsightService formats a natural-language question plus a snapshot of
// the catalog and ledger into a Gemini request constrained to a
// structured result, and parses the answer.
type InsightService struct {
	store  *store.Store
	client *gemini.Client
	now    func() time.Time
}

type InsightRequest struct {
	Question string `json:"question" validate:"required,min=1,max=2000"`
}

// insightSchema constrains the model output to the AIInsight shape.
var insightSchema = map[string]interface{}{
	"type": "OBJECT",
	"properties": map[string]interface{}{
		"insight": map[string]interface{}{
			"type":        "STRING",
			"description": "A concise natural language summary answering the question from the provided data.",
		},
		"chartData": map[string]interface{}{
			"type":        "ARRAY",
			"nullable":    true,
			"description": "Data formatted for a chart if applicable. Null if no chart is relevant.",
			"items": map[string]interface{}{
				"type": "OBJECT",
				"properties": map[string]interface{}{
					"name":  map[string]interface{}{"type": "STRING"},
					"value": map[string]interface{}{"type": "NUMBER"},
				},
			},
		},
		"chartType": map[string]interface{}{
			"type":        "STRING",
			"nullable":    true,
			"description": "The suggested chart type ('bar', 'pie', 'line'). Null if no chart is relevant.",
		},
	},
}

func NewInsightService(st *store.Store, client *gemini.Client) *InsightService {
	return &InsightService{
		store:  st,
		client: client,
		now:    time.Now,
	}
}

// RequestInsight performs one upstream round trip for the question.
// Without a configured credential it degrades to a canned informational
// result and makes no network call.
func (s *InsightService) RequestInsight(ctx context.Context, question string) (*models.AIInsight, error) {
	if !s.client.Configured() {
		logrus.Warn("Insight requested without a configured API key")
		return &models.AIInsight{Insight: unconfiguredInsight}, nil
	}

	products := s.store.Products()
	sales := s.store.Sales()

	prompt, err := s.buildPrompt(question, products, sales)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	req := &gemini.GenerateRequest{
		Contents: []gemini.Content{
			{Role: "user", Parts: []gemini.Part{{Text: prompt}}},
		},
		GenerationConfig: &gemini.GenerationConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema:   insightSchema,
		},
	}

	content, err := s.client.GenerateContent(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	return s.parseInsight(content)
}

func (s *InsightService) buildPrompt(question string, products []models.Product, sales []models.Sale) (string, error) {
	productJSON, err := json.Marshal(products)
	if err != nil {
		return "", err
	}
	salesJSON, err := json.MarshalIndent(sales, "", "  ")
	if err != nil {
		return "", err
	}

	return fmt.Sprintf(`You are an expert business analyst for a small retail store.
Analyze the provided JSON data to answer the user's question.
Today's date is %s.

User Question: %q

JSON Data:
{
  "products": %s,
  "sales": %s
}
`, s.now().Format("2006-01-02"), question, productJSON, salesJSON), nil
}

// parseInsight validates the model payload. A missing or empty insight
// field fails the whole call; no partial result comes back.
func (s *InsightService) parseInsight(content string) (*models.AIInsight, error) {
	var payload struct {
		Insight   *string             `json:"insight"`
		ChartData []models.ChartPoint `json:"chartData"`
		ChartType *string             `json:"chartType"`
	}

	if err := json.Unmarshal([]byte(content), &payload); err != nil {
		return nil, fmt.Errorf("%w: malformed response: %v", ErrUpstream, err)
	}

	if payload.Insight == nil || *payload.Insight == "" {
		return nil, fmt.Errorf("%w: response missing insight field", ErrUpstream)
	}

	result := &models.AIInsight{
		Insight:   *payload.Insight,
		ChartData: payload.ChartData,
	}

	if payload.ChartType != nil {
		chartType := models.ChartType(*payload.ChartType)
		if chartType.Valid() {
			result.ChartType = &chartType
		} else {
			// Unknown chart kind renders nothing useful; keep the narrative.
			result.ChartData = nil
		}
	}

	return result, nil
}
