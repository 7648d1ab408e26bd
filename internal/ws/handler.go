package ws

import (
	"context"
	"net/http"
	"strconv"
	"sync"
	"time"

	gamesvc "pokerhost/internal/service/game"
	"pokerhost/internal/service/settlement"
	appErr "pokerhost/pkg/errors"
	"pokerhost/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// Handler serves the read-only live summary feed: each subscriber gets the
// freshly computed game summary after every mutation. Clients never write
// game state over this connection.
type Handler struct {
	gameSvc       *gamesvc.Service
	settlementSvc *settlement.Service

	mu   sync.Mutex
	subs map[int64]map[*client]struct{}
}

func NewHandler(gameSvc *gamesvc.Service, settlementSvc *settlement.Service) *Handler {
	return &Handler{
		gameSvc:       gameSvc,
		settlementSvc: settlementSvc,
		subs:          make(map[int64]map[*client]struct{}),
	}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins for dev
	},
}

type feedMessage struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

func (h *Handler) HandleGameWS(c *gin.Context) {
	gameIDStr := c.Param("id")
	gameID, err := strconv.ParseInt(gameIDStr, 10, 64)
	if err != nil || gameID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid game id"})
		return
	}

	if _, err := h.gameSvc.Get(c.Request.Context(), gameID); err != nil {
		if err == appErr.ErrGameNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "game not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load game"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.Log.Error("Failed to upgrade websocket", zap.Error(err))
		return
	}

	logger.Log.Info("New summary feed subscriber", zap.Int64("gameID", gameID))

	cl := newClient(conn, gameID)
	h.subscribe(cl)
	defer h.unsubscribe(cl)

	// Push the current state before streaming updates.
	if sum, err := h.settlementSvc.Summary(c.Request.Context(), gameID); err == nil {
		cl.push(feedMessage{Type: "summary", Data: sum})
	}
	cl.run()
}

// Notify recomputes the summary for a game and pushes it to every
// subscriber. Called by the API layer after each successful mutation.
func (h *Handler) Notify(ctx context.Context, gameID int64) {
	h.settlementSvc.Invalidate(ctx, gameID)

	h.mu.Lock()
	n := len(h.subs[gameID])
	h.mu.Unlock()
	if n == 0 {
		return
	}

	sum, err := h.settlementSvc.Summary(ctx, gameID)
	if err != nil {
		logger.Log.Warn("failed to compute summary for feed",
			zap.Int64("gameID", gameID), zap.Error(err))
		return
	}

	msg := feedMessage{Type: "summary", Data: sum}
	h.mu.Lock()
	for cl := range h.subs[gameID] {
		cl.push(msg)
	}
	h.mu.Unlock()
}

func (h *Handler) subscribe(cl *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.subs[cl.gameID] == nil {
		h.subs[cl.gameID] = make(map[*client]struct{})
	}
	h.subs[cl.gameID][cl] = struct{}{}
}

func (h *Handler) unsubscribe(cl *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.subs[cl.gameID], cl)
	if len(h.subs[cl.gameID]) == 0 {
		delete(h.subs, cl.gameID)
	}
}

type client struct {
	conn      *websocket.Conn
	gameID    int64
	outbound  chan feedMessage
	done      chan struct{}
	closeOnce sync.Once
	pingEvery time.Duration
}

func newClient(conn *websocket.Conn, gameID int64) *client {
	conn.SetReadLimit(1 << 16)
	conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})
	return &client{
		conn:      conn,
		gameID:    gameID,
		outbound:  make(chan feedMessage, 8),
		done:      make(chan struct{}),
		pingEvery: 25 * time.Second,
	}
}

func (c *client) push(msg feedMessage) {
	select {
	case c.outbound <- msg:
	default:
		// Slow subscriber: drop the update, the next one supersedes it.
	}
}

func (c *client) run() {
	go c.writePump()
	c.readPump()
}

// readPump only drains the connection; inbound payloads are ignored because
// the feed is one-way.
func (c *client) readPump() {
	defer func() {
		c.closeOnce.Do(func() { close(c.done) })
		c.conn.Close()
	}()

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			logger.Log.Info("WS read closed", zap.Error(err), zap.Int64("gameID", c.gameID))
			return
		}
	}
}

func (c *client) writePump() {
	ticker := time.NewTicker(c.pingEvery)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case msg := <-c.outbound:
			c.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := c.conn.WriteJSON(msg); err != nil {
				logger.Log.Info("WS write error", zap.Error(err), zap.Int64("gameID", c.gameID))
				return
			}
		case <-ticker.C:
			if err := c.conn.WriteControl(websocket.PingMessage, []byte("ping"), time.Now().Add(5*time.Second)); err != nil {
				return
			}
		case <-c.done:
			return
		}
	}
}
