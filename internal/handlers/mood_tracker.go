package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// moodTracker renders the report page. The chart itself is fetched by the
// browser from the chart route, so the image never exists on disk.
func (h *Handler) moodTracker(c *gin.Context) {
	ident := identity(c)

	days, err := h.services.MoodReport.DailyAverages(c.Request.Context(), ident.UserID)
	if err != nil {
		h.logAndError(c, "mood_report_failed", err, "user_id", ident.UserID)
		return
	}

	c.HTML(http.StatusOK, "mood_tracker.html", gin.H{
		"Name":    ident.Name,
		"HasData": len(days) > 0,
	})
}

// moodChart streams a freshly rendered PNG for the authenticated user.
// Concurrent requests each get their own buffer; there is no shared file.
func (h *Handler) moodChart(c *gin.Context) {
	ident := identity(c)

	days, err := h.services.MoodReport.DailyAverages(c.Request.Context(), ident.UserID)
	if err != nil {
		h.logAndError(c, "mood_chart_data_failed", err, "user_id", ident.UserID)
		return
	}

	img, err := h.services.MoodReport.RenderChart(days)
	if err != nil {
		h.logAndError(c, "mood_chart_render_failed", err, "user_id", ident.UserID)
		return
	}

	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, "image/png", img)
}
