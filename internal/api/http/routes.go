package httpapi

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/i474232898/capitals-weather/internal/capitals"
	"github.com/i474232898/capitals-weather/internal/logger"
)

// APIKeyHeader carries the caller's OpenWeather credential.
const APIKeyHeader = "X-API-Key"

const (
	msgMissingKey = "Please enter your API key."
	msgNoData     = "No data available."
)

var validate = validator.New()

// Analyzer is the part of capitals.Service the HTTP layer needs.
type Analyzer interface {
	Capitals(letter string) []capitals.ReconciledCapital
	AnalyzeCapitals(ctx context.Context, letter, credential string) capitals.AnalysisResult
	Dataset() *capitals.Dataset
}

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, service Analyzer) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": "capitals-weather",
			"dataset": service.Dataset().Stats(),
		})
	})

	v1 := app.Group("/api/v1")

	v1.Get("/capitals", func(c *fiber.Ctx) error {
		q, err := parseLetterQuery(c)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		return c.JSON(fiber.Map{
			"letter":   q.Letter,
			"capitals": service.Capitals(q.Letter),
		})
	})

	v1.Get("/capitals/temperatures", func(c *fiber.Ctx) error {
		q, err := parseLetterQuery(c)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		credential := strings.TrimSpace(c.Get(APIKeyHeader))
		if credential == "" {
			return fiber.NewError(fiber.StatusBadRequest, msgMissingKey)
		}

		requestID := uuid.NewString()
		res := service.AnalyzeCapitals(c.UserContext(), q.Letter, credential)

		logger.WithFields(logger.Fields{
			"requestId": requestID,
			"letter":    q.Letter,
			"available": len(res.Values),
		}).Info("temperature analysis served")

		return c.JSON(analysisResponse{
			RequestID: requestID,
			Letter:    q.Letter,
			Labels:    res.Labels,
			Values:    res.Values,
			Average:   res.Average,
			Summary:   summarize(res),
		})
	})
}

type analysisResponse struct {
	RequestID string    `json:"requestId"`
	Letter    string    `json:"letter"`
	Labels    []string  `json:"labels"`
	Values    []float64 `json:"values"`
	Average   *float64  `json:"average"`
	Summary   string    `json:"summary"`
}

// summarize renders the average line shown under the chart.
func summarize(res capitals.AnalysisResult) string {
	if res.Empty() || res.Average == nil {
		return msgNoData
	}
	return fmt.Sprintf("Average Temperature: %.2f°C", *res.Average)
}

// letterQuery holds the state-name prefix. An empty letter is valid and matches nothing.
type letterQuery struct {
	Letter string `validate:"max=64"`
}

func parseLetterQuery(c *fiber.Ctx) (letterQuery, error) {
	q := letterQuery{Letter: c.Query("letter")}

	if err := validate.Struct(q); err != nil {
		return q, err
	}

	return q, nil
}
