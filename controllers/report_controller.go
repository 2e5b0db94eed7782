package controllers

import (
	"strconv"
	"time"

	"orderboard/pkg/resp"
	"orderboard/services"

	"github.com/gin-gonic/gin"
)

type ReportController struct {
	Reports *services.ReportService
}

func NewReportController(reports *services.ReportService) *ReportController {
	return &ReportController{Reports: reports}
}

// GET /api/reports?startDate=&endDate=&limit=
func (rc *ReportController) List(c *gin.Context) {
	var start, end *time.Time
	if v := c.Query("startDate"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			resp.BadRequest(c, "startDate must be RFC3339")
			return
		}
		start = &t
	}
	if v := c.Query("endDate"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			resp.BadRequest(c, "endDate must be RFC3339")
			return
		}
		end = &t
	}
	limit, _ := strconv.Atoi(c.Query("limit"))

	reports, err := rc.Reports.List(start, end, limit)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"count": len(reports), "items": reports})
}

// GET /api/reports/date/:date
func (rc *ReportController) ByDate(c *gin.Context) {
	sum, err := rc.Reports.ByDate(c.Param("date"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, sum)
}
