package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/GriffinCanCode/WebDesk/backend/internal/shared/types"
	"github.com/GriffinCanCode/WebDesk/backend/internal/shared/utils"
)

// ListIcons lists desktop icons
func (h *Handlers) ListIcons(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"icons": h.desk.Icons()})
}

// SelectIcon selects a desktop icon
func (h *Handlers) SelectIcon(c *gin.Context) {
	id, ok := param(c, "id")
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"applied": h.desk.SelectIcon(id), "id": id})
}

// OpenIcon handles a desktop icon double-click
func (h *Handlers) OpenIcon(c *gin.Context) {
	id, ok := param(c, "id")
	if !ok {
		return
	}
	s, applied := h.desk.OpenIcon(id)
	body := gin.H{"applied": applied, "id": id}
	if applied {
		body["window"] = s
	}
	c.JSON(http.StatusOK, body)
}

// DragIcon commits a desktop icon drag release
func (h *Handlers) DragIcon(c *gin.Context) {
	id, ok := param(c, "id")
	if !ok {
		return
	}
	var req types.DragRequest
	if !bind(c, &req) {
		return
	}
	c.JSON(http.StatusOK, gin.H{"applied": h.desk.DragIcon(id, req.Point()), "id": id})
}

// FolderItems lists a Finder window's items, filtered by ?q=
func (h *Handlers) FolderItems(c *gin.Context) {
	win, ok := param(c, "window")
	if !ok {
		return
	}
	q := c.Query("q")
	if err := utils.ValidateSearch(q); err != nil {
		badRequest(c, err)
		return
	}

	items, found := h.desk.FolderItems(win, q)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "no folder window " + win})
		return
	}
	c.JSON(http.StatusOK, gin.H{"window": win, "items": items})
}

// SelectFolderItem selects an item inside a Finder window
func (h *Handlers) SelectFolderItem(c *gin.Context) {
	win, ok := param(c, "window")
	if !ok {
		return
	}
	id, ok := param(c, "id")
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"applied": h.desk.SelectFolderItem(win, id), "id": id})
}

// OpenFolderItem handles a double-click inside a Finder window
func (h *Handlers) OpenFolderItem(c *gin.Context) {
	win, ok := param(c, "window")
	if !ok {
		return
	}
	id, ok := param(c, "id")
	if !ok {
		return
	}
	s, applied := h.desk.OpenFolderItem(win, id)
	body := gin.H{"applied": applied, "id": id}
	if applied {
		body["window"] = s
	}
	c.JSON(http.StatusOK, body)
}

// DragFolderItem commits a drag inside a Finder window
func (h *Handlers) DragFolderItem(c *gin.Context) {
	win, ok := param(c, "window")
	if !ok {
		return
	}
	id, ok := param(c, "id")
	if !ok {
		return
	}
	var req types.DragRequest
	if !bind(c, &req) {
		return
	}
	c.JSON(http.StatusOK, gin.H{"applied": h.desk.DragFolderItem(win, id, req.Point()), "id": id})
}

// ListDock lists dock entries with indicators
func (h *Handlers) ListDock(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"dock": h.desk.Dock()})
}

// ActivateDock performs a dock click
func (h *Handlers) ActivateDock(c *gin.Context) {
	id, ok := param(c, "id")
	if !ok {
		return
	}

	res, err := h.desk.ActivateDock(id)
	if err != nil {
		h.notFoundOrError(c, err, gin.H{"id": id})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"applied":  res.Launched,
		"id":       id,
		"launched": res.Launched,
		"navigate": res.Navigate,
	})
}

// ListMenus returns the menu bar with enablement
func (h *Handlers) ListMenus(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"menus": h.desk.Menus()})
}

// InvokeMenu fires a menu entry
func (h *Handlers) InvokeMenu(c *gin.Context) {
	var req types.MenuRequest
	if !bind(c, &req) {
		return
	}

	applied, err := h.desk.InvokeMenu(req.Menu, req.Label)
	if err != nil {
		h.notFoundOrError(c, err, gin.H{"menu": req.Menu, "label": req.Label})
		return
	}
	c.JSON(http.StatusOK, gin.H{"applied": applied, "menu": req.Menu, "label": req.Label})
}

// SearchLaunchpad filters launcher apps by ?q=
func (h *Handlers) SearchLaunchpad(c *gin.Context) {
	q := c.Query("q")
	if err := utils.ValidateSearch(q); err != nil {
		badRequest(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"query": q, "apps": h.desk.Launchpad(q)})
}

// LaunchFromLaunchpad opens a launcher app by name
func (h *Handlers) LaunchFromLaunchpad(c *gin.Context) {
	var req types.LaunchpadRequest
	if !bind(c, &req) {
		return
	}

	s, err := h.desk.LaunchFromLaunchpad(req.Name)
	if err != nil {
		h.notFoundOrError(c, err, gin.H{"name": req.Name})
		return
	}
	c.JSON(http.StatusOK, gin.H{"applied": true, "window": s})
}
