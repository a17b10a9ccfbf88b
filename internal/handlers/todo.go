package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"daily_companion/internal/service"

	"github.com/gin-gonic/gin"
)

const msgMissingTask = "Please provide a task."

type todoInput struct {
	Task string `form:"todoitem"`
}

// homepage lists the user's todos split by completion.
func (h *Handler) homepage(c *gin.Context) {
	ident := identity(c)

	lists, err := h.services.Todos.List(c.Request.Context(), ident.UserID)
	if err != nil {
		h.logAndError(c, "todo_list_failed", err, "user_id", ident.UserID)
		return
	}

	c.HTML(http.StatusOK, "home.html", gin.H{
		"Name":       ident.Name,
		"Incomplete": lists.Incomplete,
		"Complete":   lists.Complete,
		"Flashes":    h.sessions.TakeFlashes(c.Writer, c.Request),
	})
}

func (h *Handler) addTodo(c *gin.Context) {
	ident := identity(c)

	var in todoInput
	_ = c.ShouldBind(&in)
	if strings.TrimSpace(in.Task) == "" {
		_ = h.sessions.Flash(c.Writer, c.Request, msgMissingTask)
		c.Redirect(http.StatusSeeOther, "/homepage")
		return
	}

	if _, err := h.services.Todos.Add(c.Request.Context(), ident.UserID, in.Task); err != nil {
		h.logAndError(c, "todo_add_failed", err, "user_id", ident.UserID)
		return
	}
	c.Redirect(http.StatusSeeOther, "/homepage")
}

// todoIDParam parses the :todoid path segment; a garbled id is a 404.
func todoIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("todoid"), 10, 64)
	if err != nil {
		c.String(http.StatusNotFound, "Not Found")
		c.Abort()
		return 0, false
	}
	return id, true
}

func (h *Handler) deleteTodo(c *gin.Context) {
	ident := identity(c)
	id, ok := todoIDParam(c)
	if !ok {
		return
	}

	if err := h.services.Todos.Delete(c.Request.Context(), ident.UserID, id); err != nil {
		h.logAndError(c, "todo_delete_failed", err, "user_id", ident.UserID, "todo_id", id)
		return
	}
	c.Redirect(http.StatusFound, "/homepage")
}

func (h *Handler) completeTodo(c *gin.Context) {
	ident := identity(c)
	id, ok := todoIDParam(c)
	if !ok {
		return
	}

	if _, err := h.services.Todos.ToggleComplete(c.Request.Context(), ident.UserID, id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.String(http.StatusNotFound, "Not Found")
			return
		}
		h.logAndError(c, "todo_toggle_failed", err, "user_id", ident.UserID, "todo_id", id)
		return
	}
	c.Redirect(http.StatusFound, "/homepage")
}
