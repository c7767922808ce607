package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// @Summary Export data
// @Description One-way JSON dump of transactions and settings. There is no
// import path; the filename embeds the export date.
// @Tags export
// @Produce json
// @Success 200 {object} ExportPayload
// @Router /api/export [get]
func exportData(c *gin.Context) {
	filename := fmt.Sprintf("montra-export-%s.json", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.JSON(http.StatusOK, app.ExportData())
}
