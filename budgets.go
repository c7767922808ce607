package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Budget handler functions

func getBudgets(c *gin.Context) {
	c.JSON(http.StatusOK, app.Budgets())
}

// @Summary Save budget
// @Description Upsert a monthly spending limit keyed by category. Saving an
// existing category replaces its limit in place, never duplicates it.
// @Tags budgets
// @Accept json
// @Produce json
// @Param budget body Budget true "Budget data"
// @Success 200 {object} Budget
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Router /api/budgets [put]
func saveBudget(c *gin.Context) {
	var b Budget
	if err := c.ShouldBindJSON(&b); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := app.SaveBudget(b); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, b)
}

func deleteBudget(c *gin.Context) {
	deleted := app.DeleteBudget(c.Param("category"))
	c.JSON(http.StatusOK, gin.H{"message": "Budget deleted", "deleted": deleted})
}
