package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Investment handler functions. Holdings live inside the settings aggregate;
// the manual investment_amount scalar is a separate figure on purpose.

func getInvestments(c *gin.Context) {
	c.JSON(http.StatusOK, app.Investments())
}

func createInvestment(c *gin.Context) {
	var inv Investment
	if err := c.ShouldBindJSON(&inv); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	created, err := app.AddInvestment(inv)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, created)
}

func updateInvestment(c *gin.Context) {
	var inv Investment
	if err := c.ShouldBindJSON(&inv); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	inv.ID = c.Param("id")

	updated, found, err := app.UpdateInvestment(inv)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Investment not found"})
		return
	}

	c.JSON(http.StatusOK, updated)
}

func deleteInvestment(c *gin.Context) {
	deleted := app.DeleteInvestment(c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"message": "Investment deleted", "deleted": deleted})
}

// setInvestmentAmount sets the manual aggregate figure, not derived from the
// holdings collection.
func setInvestmentAmount(c *gin.Context) {
	var req AmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := app.SetInvestmentAmount(req.Amount); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"investment_amount": req.Amount})
}
