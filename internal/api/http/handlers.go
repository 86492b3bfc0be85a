package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/WebDesk/backend/internal/domain/desktop"
	"github.com/GriffinCanCode/WebDesk/backend/internal/shared/types"
	"github.com/GriffinCanCode/WebDesk/backend/internal/shared/utils"
)

// Version is reported by the root endpoint
const Version = "0.3.0"

// Handlers contains all HTTP handlers
type Handlers struct {
	desk *desktop.Desktop
	log  *zap.Logger
}

// NewHandlers creates a new handler set
func NewHandlers(desk *desktop.Desktop, log *zap.Logger) *Handlers {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handlers{desk: desk, log: log.Named("http")}
}

// Register mounts every route on r
func (h *Handlers) Register(r gin.IRouter) {
	r.GET("/", h.Root)
	r.GET("/health", h.Health)

	r.GET("/desktop", h.GetDesktop)
	r.PUT("/desktop/bounds", h.SetBounds)
	r.POST("/desktop/deselect", h.DeselectAll)

	r.GET("/windows", h.ListWindows)
	r.POST("/windows", h.LaunchWindow)
	r.POST("/windows/:id/focus", h.windowCommand(h.desk.Focus))
	r.POST("/windows/:id/minimize", h.windowCommand(h.desk.Minimize))
	r.POST("/windows/:id/maximize", h.windowCommand(h.desk.Maximize))
	r.POST("/windows/:id/drag", h.DragWindow)
	r.PUT("/windows/:id/title", h.SetTitle)
	r.DELETE("/windows/:id", h.windowCommand(h.desk.Close))

	r.GET("/icons", h.ListIcons)
	r.POST("/icons/:id/select", h.SelectIcon)
	r.POST("/icons/:id/open", h.OpenIcon)
	r.POST("/icons/:id/drag", h.DragIcon)

	r.GET("/folders/:window/items", h.FolderItems)
	r.POST("/folders/:window/items/:id/select", h.SelectFolderItem)
	r.POST("/folders/:window/items/:id/open", h.OpenFolderItem)
	r.POST("/folders/:window/items/:id/drag", h.DragFolderItem)

	r.GET("/dock", h.ListDock)
	r.POST("/dock/:id/activate", h.ActivateDock)

	r.GET("/menus", h.ListMenus)
	r.POST("/menus/invoke", h.InvokeMenu)

	r.GET("/launchpad", h.SearchLaunchpad)
	r.POST("/launchpad/launch", h.LaunchFromLaunchpad)
}

// Root handles the service banner
func (h *Handlers) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "online",
		"service": "WebDesk desktop service",
		"version": Version,
	})
}

// Health handles detailed health check
func (h *Handlers) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"version": h.desk.Version(),
		"windows": h.desk.Stats(),
	})
}

// GetDesktop returns the full snapshot
func (h *Handlers) GetDesktop(c *gin.Context) {
	c.JSON(http.StatusOK, h.desk.Snapshot())
}

// SetBounds records the browser's desktop surface rectangle
func (h *Handlers) SetBounds(c *gin.Context) {
	var req types.BoundsRequest
	if !bind(c, &req) {
		return
	}

	applied := h.desk.SetBounds(req.Rect())
	c.JSON(http.StatusOK, gin.H{"applied": applied, "bounds": h.desk.Bounds()})
}

// DeselectAll handles a click on the bare desktop
func (h *Handlers) DeselectAll(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"applied": h.desk.DeselectAll()})
}

// ListWindows lists open windows in paint order
func (h *Handlers) ListWindows(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"windows": h.desk.Windows(),
		"stats":   h.desk.Stats(),
	})
}

// LaunchWindow opens a window or refocuses the one with the same id
func (h *Handlers) LaunchWindow(c *gin.Context) {
	var req types.LaunchRequest
	if !bind(c, &req) {
		return
	}
	if err := utils.ValidateID(req.ID, "id", true); err != nil {
		badRequest(c, err)
		return
	}
	if err := utils.ValidateTitle(req.Title); err != nil {
		badRequest(c, err)
		return
	}
	if req.Size != nil && (req.Size.Width <= 0 || req.Size.Height <= 0) {
		badRequest(c, errors.New("size must be positive"))
		return
	}

	s, applied := h.desk.Launch(req)
	c.JSON(http.StatusOK, gin.H{"applied": applied, "window": s})
}

// windowCommand adapts an id-only desktop command
func (h *Handlers) windowCommand(fn func(id string) bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := param(c, "id")
		if !ok {
			return
		}
		c.JSON(http.StatusOK, gin.H{"applied": fn(id), "id": id})
	}
}

// DragWindow commits a window drag release
func (h *Handlers) DragWindow(c *gin.Context) {
	id, ok := param(c, "id")
	if !ok {
		return
	}
	var req types.DragRequest
	if !bind(c, &req) {
		return
	}

	applied := h.desk.DragWindow(id, req.Point())
	s, _ := h.desk.Window(id)
	c.JSON(http.StatusOK, gin.H{"applied": applied, "id": id, "position": s.Position})
}

// SetTitle renames a window
func (h *Handlers) SetTitle(c *gin.Context) {
	id, ok := param(c, "id")
	if !ok {
		return
	}
	var req types.TitleRequest
	if !bind(c, &req) {
		return
	}
	if err := utils.ValidateTitle(req.Title); err != nil {
		badRequest(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"applied": h.desk.SetTitle(id, req.Title), "id": id})
}

func bind(c *gin.Context, v any) bool {
	if err := c.ShouldBindJSON(v); err != nil {
		badRequest(c, err)
		return false
	}
	return true
}

func param(c *gin.Context, name string) (string, bool) {
	v := c.Param(name)
	if err := utils.ValidateID(v, name, true); err != nil {
		badRequest(c, err)
		return "", false
	}
	return v, true
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}

// notFoundOrError reports unknown targets as a no-op and anything else as 500
func (h *Handlers) notFoundOrError(c *gin.Context, err error, extra gin.H) {
	if desktop.IsNotFound(err) {
		body := gin.H{"applied": false, "reason": err.Error()}
		for k, v := range extra {
			body[k] = v
		}
		c.JSON(http.StatusOK, body)
		return
	}
	h.log.Error("command failed", zap.String("path", c.FullPath()), zap.Error(err))
	_ = c.Error(err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
