package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// insightFallback is returned whenever the external generator fails or times
// out. Insight text is advisory only and must never block a core mutation.
const insightFallback = "Keep logging your transactions to unlock personalized insights."

// InsightGenerator is the external AI collaborator boundary. The core hands
// it a read-only snapshot and treats the returned text as opaque.
type InsightGenerator interface {
	Generate(ctx context.Context, insight InsightContext) (string, error)
}

// staticInsightGenerator is the built-in generator used when no external
// service is configured.
type staticInsightGenerator struct{}

func (staticInsightGenerator) Generate(ctx context.Context, insight InsightContext) (string, error) {
	exceeded := 0
	for _, b := range insight.BudgetAnalysis {
		if b.Status == BudgetExceeded {
			exceeded++
		}
	}
	if exceeded > 0 {
		return "You have exceeded one or more category budgets this month. Review your biggest expense categories first.", nil
	}
	return "Your spending is within budget this month. Consider moving the surplus toward a savings goal.", nil
}

var insightGen InsightGenerator = staticInsightGenerator{}

func getInsightContext(c *gin.Context) {
	insight := buildInsightContext(app.Transactions(), app.Budgets(), app.Goals(), time.Now())
	c.JSON(http.StatusOK, insight)
}

// getInsight calls the generator with a hard timeout and substitutes the
// static fallback on any failure.
func getInsight(c *gin.Context) {
	insight := buildInsightContext(app.Transactions(), app.Budgets(), app.Goals(), time.Now())

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	text, err := insightGen.Generate(ctx, insight)
	if err != nil {
		log.Printf("insight generator: %v", err)
		text = insightFallback
	}

	c.JSON(http.StatusOK, gin.H{"insight": text})
}
