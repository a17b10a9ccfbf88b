package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"daily_companion/internal/mood"
	"daily_companion/internal/service"

	"github.com/gin-gonic/gin"
)

const msgBadMoodValue = "Please choose a mood on the slider."

type entryInput struct {
	Title     string `form:"title"`
	Text      string `form:"text"`
	MoodValue int    `form:"mood_slider"`
}

type entryUpdateInput struct {
	entryInput
	EntryID int64 `form:"entry_id"`
}

// journal shows the user's entries stacked, most recent first.
func (h *Handler) journal(c *gin.Context) {
	ident := identity(c)

	entries, err := h.services.Journal.List(c.Request.Context(), ident.UserID)
	if err != nil {
		h.logAndError(c, "journal_list_failed", err, "user_id", ident.UserID)
		return
	}

	c.HTML(http.StatusOK, "journal.html", gin.H{
		"Name":    ident.Name,
		"Entries": entries,
		"Flashes": h.sessions.TakeFlashes(c.Writer, c.Request),
	})
}

func (h *Handler) newEntry(c *gin.Context) {
	c.HTML(http.StatusOK, "new_entry.html", gin.H{
		"Name":    identity(c).Name,
		"Flashes": h.sessions.TakeFlashes(c.Writer, c.Request),
	})
}

// entryIDParam parses the :entry_id path segment; a garbled id is a 404.
func entryIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("entry_id"), 10, 64)
	if err != nil {
		c.String(http.StatusNotFound, "Not Found")
		c.Abort()
		return 0, false
	}
	return id, true
}

// openEntry fetches one entry for editing, slider pre-positioned from the
// stored mood symbol.
func (h *Handler) openEntry(c *gin.Context) {
	ident := identity(c)
	id, ok := entryIDParam(c)
	if !ok {
		return
	}

	view, err := h.services.Journal.Get(c.Request.Context(), ident.UserID, id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.String(http.StatusNotFound, "Not Found")
			return
		}
		h.logAndError(c, "journal_get_failed", err, "user_id", ident.UserID, "entry_id", id)
		return
	}

	c.HTML(http.StatusOK, "open_entry.html", gin.H{
		"Name":  ident.Name,
		"Entry": view,
	})
}

func (h *Handler) insertNewEntry(c *gin.Context) {
	ident := identity(c)

	var in entryInput
	_ = c.ShouldBind(&in)

	_, err := h.services.Journal.Create(c.Request.Context(), ident.UserID, service.EntryInput{
		Title:     in.Title,
		Text:      in.Text,
		MoodValue: in.MoodValue,
	})
	if err != nil {
		if errors.Is(err, mood.ErrInvalidValue) {
			_ = h.sessions.Flash(c.Writer, c.Request, msgBadMoodValue)
			c.Redirect(http.StatusSeeOther, "/new_entry")
			return
		}
		h.logAndError(c, "journal_create_failed", err, "user_id", ident.UserID)
		return
	}
	c.Redirect(http.StatusSeeOther, "/journal")
}

func (h *Handler) updateEntry(c *gin.Context) {
	ident := identity(c)

	var in entryUpdateInput
	_ = c.ShouldBind(&in)

	_, err := h.services.Journal.Update(c.Request.Context(), ident.UserID, in.EntryID, service.EntryInput{
		Title:     in.Title,
		Text:      in.Text,
		MoodValue: in.MoodValue,
	})
	if err != nil {
		switch {
		case errors.Is(err, mood.ErrInvalidValue):
			_ = h.sessions.Flash(c.Writer, c.Request, msgBadMoodValue)
			c.Redirect(http.StatusSeeOther, "/journal")
		case errors.Is(err, service.ErrNotFound):
			c.String(http.StatusNotFound, "Not Found")
		default:
			h.logAndError(c, "journal_update_failed", err, "user_id", ident.UserID, "entry_id", in.EntryID)
		}
		return
	}
	c.Redirect(http.StatusSeeOther, "/journal")
}

func (h *Handler) deleteEntry(c *gin.Context) {
	ident := identity(c)
	id, ok := entryIDParam(c)
	if !ok {
		return
	}

	if err := h.services.Journal.Delete(c.Request.Context(), ident.UserID, id); err != nil {
		h.logAndError(c, "journal_delete_failed", err, "user_id", ident.UserID, "entry_id", id)
		return
	}
	c.Redirect(http.StatusFound, "/journal")
}
