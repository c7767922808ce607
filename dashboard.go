package main

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Dashboard handlers. Each one snapshots the collections and hands them to
// the pure analytics functions with the evaluating instant as "now".

func requestedPeriod(c *gin.Context) string {
	switch period := c.Query("period"); period {
	case PeriodWeek, PeriodMonth, PeriodYear:
		return period
	default:
		return PeriodMonth
	}
}

// @Summary Period summary
// @Description Income, expense, balance and savings rate for the selected period
// @Tags analytics
// @Produce json
// @Param period query string false "week, month or year (default month)"
// @Success 200 {object} Summary
// @Router /api/analytics/summary [get]
func getSummary(c *gin.Context) {
	period := requestedPeriod(c)
	filtered := filterByPeriod(app.Transactions(), period, time.Now())
	c.JSON(http.StatusOK, computeSummary(filtered, period))
}

func getCategoryBreakdown(c *gin.Context) {
	txType := c.Query("type")
	if txType != TypeIncome {
		txType = TypeExpense
	}
	filtered := filterByPeriod(app.Transactions(), requestedPeriod(c), time.Now())
	c.JSON(http.StatusOK, categoryBreakdown(filtered, txType))
}

func getTrend(c *gin.Context) {
	c.JSON(http.StatusOK, trendBuckets(app.Transactions(), requestedPeriod(c), time.Now()))
}

func getIntensity(c *gin.Context) {
	c.JSON(http.StatusOK, weekdayIntensity(app.Transactions(), requestedPeriod(c), time.Now()))
}

func getHealth(c *gin.Context) {
	c.JSON(http.StatusOK, computeHealthScore(app.Transactions(), app.Budgets(), time.Now()))
}

func getComparison(c *gin.Context) {
	c.JSON(http.StatusOK, compareMonths(app.Transactions(), time.Now()))
}

func getForecast(c *gin.Context) {
	c.JSON(http.StatusOK, forecastCashFlow(app.Transactions(), time.Now()))
}

func getBudgetStatus(c *gin.Context) {
	c.JSON(http.StatusOK, budgetStatuses(app.Budgets(), app.Transactions(), time.Now()))
}

func getGoalProjections(c *gin.Context) {
	c.JSON(http.StatusOK, goalProjections(app.Goals(), time.Now()))
}

func getPortfolio(c *gin.Context) {
	c.JSON(http.StatusOK, portfolioMetrics(app.Investments()))
}
