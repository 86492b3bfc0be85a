package ws

import (
	"errors"
	"fmt"
	"net/http"
	"slices"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/WebDesk/backend/internal/domain/desktop"
	"github.com/GriffinCanCode/WebDesk/backend/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/WebDesk/backend/internal/shared/types"
	"github.com/GriffinCanCode/WebDesk/backend/internal/shared/utils"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = pongWait * 9 / 10
	sendBuffer = 16
)

// Reply is a server → client message
type Reply struct {
	Type     string            `json:"type"`
	Command  string            `json:"command,omitempty"`
	Applied  *bool             `json:"applied,omitempty"`
	Window   any               `json:"window,omitempty"`
	Navigate string            `json:"navigate,omitempty"`
	Message  string            `json:"message,omitempty"`
	Snapshot *desktop.Snapshot `json:"snapshot,omitempty"`
}

func ack(command string, applied bool) Reply {
	return Reply{Type: "ack", Command: command, Applied: &applied}
}

func errorReply(command string, err error) Reply {
	return Reply{Type: "error", Command: command, Message: err.Error()}
}

// Handler manages WebSocket connections
type Handler struct {
	desk     *desktop.Desktop
	log      *zap.Logger
	metrics  *monitoring.Metrics
	upgrader websocket.Upgrader
}

// NewHandler creates a WebSocket handler. An empty origin list or "*"
// accepts any origin.
func NewHandler(desk *desktop.Desktop, log *zap.Logger, metrics *monitoring.Metrics, origins []string) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	h := &Handler{desk: desk, log: log.Named("ws"), metrics: metrics}
	h.upgrader = websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			if origin == "" || len(origins) == 0 || slices.Contains(origins, "*") {
				return true
			}
			return slices.Contains(origins, origin)
		},
	}
	return h
}

// HandleConnection upgrades the request and serves one client
func (h *Handler) HandleConnection(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	connID := uuid.NewString()
	log := h.log.With(zap.String("conn_id", connID))
	log.Debug("client connected")
	if h.metrics != nil {
		h.metrics.IncWSConnections()
		defer h.metrics.DecWSConnections()
	}

	sub, cancel := h.desk.Subscribe()
	defer cancel()

	replies := make(chan Reply, sendBuffer)
	done := make(chan struct{})
	go func() {
		defer close(done)
		h.writeLoop(conn, sub, replies, log)
		// Unblocks the reader once nothing more can be written
		conn.Close()
	}()

	h.readLoop(conn, replies, log)
	close(replies)
	<-done
	log.Debug("client disconnected")
}

func (h *Handler) readLoop(conn *websocket.Conn, replies chan<- Reply, log *zap.Logger) {
	conn.SetReadLimit(utils.MaxMessageSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		var msg types.WSMessage
		if err := conn.ReadJSON(&msg); err != nil {
			var closeErr *websocket.CloseError
			if !errors.As(err, &closeErr) {
				log.Debug("websocket read ended", zap.Error(err))
			}
			return
		}
		h.record("in", msg.Type)

		select {
		case replies <- h.Dispatch(msg):
		default:
			log.Warn("reply dropped, client too slow", zap.String("type", msg.Type))
		}
	}
}

// writeLoop owns every write on conn
func (h *Handler) writeLoop(conn *websocket.Conn, sub <-chan uint64, replies <-chan Reply, log *zap.Logger) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	write := func(r Reply) bool {
		_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteJSON(r); err != nil {
			log.Debug("websocket write failed", zap.Error(err))
			return false
		}
		h.record("out", r.Type)
		return true
	}

	if !write(h.snapshot()) {
		return
	}

	for {
		select {
		case r, ok := <-replies:
			if !ok {
				return
			}
			if !write(r) {
				return
			}
		case _, ok := <-sub:
			if !ok {
				_ = conn.WriteControl(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseGoingAway, "desktop closed"),
					time.Now().Add(writeWait))
				return
			}
			if !write(h.snapshot()) {
				return
			}
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				return
			}
		}
	}
}

func (h *Handler) snapshot() Reply {
	snap := h.desk.Snapshot()
	return Reply{Type: "snapshot", Snapshot: &snap}
}

func (h *Handler) record(direction, msgType string) {
	if h.metrics != nil {
		h.metrics.RecordWSMessage(direction, msgType)
	}
}

// Dispatch runs one client command against the desktop
func (h *Handler) Dispatch(msg types.WSMessage) Reply {
	point := types.Point{X: msg.X, Y: msg.Y}

	switch msg.Type {
	case "ping":
		return Reply{Type: "pong"}

	case "launch":
		req := types.LaunchRequest{ID: msg.ID, Title: msg.Title, Icon: msg.Icon, Size: msg.Size}
		if msg.Content != nil {
			req.Content = *msg.Content
		}
		if err := utils.ValidateID(req.ID, "id", true); err != nil {
			return errorReply(msg.Type, err)
		}
		if err := utils.ValidateTitle(req.Title); err != nil {
			return errorReply(msg.Type, err)
		}
		s, applied := h.desk.Launch(req)
		r := ack(msg.Type, applied)
		r.Window = s
		return r

	case "deselect_all":
		return ack(msg.Type, h.desk.DeselectAll())

	case "menu":
		applied, err := h.desk.InvokeMenu(msg.Menu, msg.Label)
		if err != nil && !desktop.IsNotFound(err) {
			return errorReply(msg.Type, err)
		}
		return ack(msg.Type, applied)
	}

	if !slices.Contains(idCommands, msg.Type) {
		return errorReply(msg.Type, fmt.Errorf("unknown message type %q", msg.Type))
	}
	// Remaining commands all target an id
	if err := utils.ValidateID(msg.ID, "id", true); err != nil {
		return errorReply(msg.Type, err)
	}

	switch msg.Type {
	case "focus":
		return ack(msg.Type, h.desk.Focus(msg.ID))
	case "close":
		return ack(msg.Type, h.desk.Close(msg.ID))
	case "minimize":
		return ack(msg.Type, h.desk.Minimize(msg.ID))
	case "maximize":
		return ack(msg.Type, h.desk.Maximize(msg.ID))
	case "drag_window":
		return ack(msg.Type, h.desk.DragWindow(msg.ID, point))
	case "select_icon":
		return ack(msg.Type, h.desk.SelectIcon(msg.ID))
	case "drag_icon":
		return ack(msg.Type, h.desk.DragIcon(msg.ID, point))
	case "open_icon":
		s, applied := h.desk.OpenIcon(msg.ID)
		r := ack(msg.Type, applied)
		if applied {
			r.Window = s
		}
		return r
	case "dock":
		res, err := h.desk.ActivateDock(msg.ID)
		if err != nil {
			if desktop.IsNotFound(err) {
				return ack(msg.Type, false)
			}
			return errorReply(msg.Type, err)
		}
		r := ack(msg.Type, res.Launched)
		r.Navigate = res.Navigate
		return r
	}
	return errorReply(msg.Type, fmt.Errorf("unhandled message type %q", msg.Type))
}

var idCommands = []string{
	"focus", "close", "minimize", "maximize", "drag_window",
	"select_icon", "drag_icon", "open_icon", "dock",
}
