package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Savings goal handler functions

func getGoals(c *gin.Context) {
	c.JSON(http.StatusOK, app.Goals())
}

func createGoal(c *gin.Context) {
	var g SavingsGoal
	if err := c.ShouldBindJSON(&g); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	created, err := app.AddGoal(g)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, created)
}

// updateGoal replaces every field of the goal except its id.
func updateGoal(c *gin.Context) {
	var g SavingsGoal
	if err := c.ShouldBindJSON(&g); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	g.ID = c.Param("id")

	updated, found, err := app.UpdateGoal(g)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Goal not found"})
		return
	}

	c.JSON(http.StatusOK, updated)
}

// @Summary Contribute to goal
// @Description Add a signed delta to the goal's running amount. Overshooting
// the target is allowed; completion is derived, not stored.
// @Tags goals
// @Accept json
// @Produce json
// @Param id path string true "Goal ID"
// @Param contribution body ContributionRequest true "Signed contribution delta"
// @Success 200 {object} SavingsGoal
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Failure 404 {object} map[string]interface{} "Goal not found"
// @Router /api/goals/{id}/contribute [post]
func contributeToGoal(c *gin.Context) {
	var req ContributionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	goal, found, err := app.UpdateGoalAmount(c.Param("id"), req.Delta)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Goal not found"})
		return
	}

	c.JSON(http.StatusOK, goal)
}

func deleteGoal(c *gin.Context) {
	deleted := app.DeleteGoal(c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"message": "Goal deleted", "deleted": deleted})
}
