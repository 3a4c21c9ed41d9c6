package http

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"sudoku-deduce/internal/core"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// streamHandler upgrades the connection and runs the weighted_solvers
// order to exhaustion, writing each strategy's Actions over the socket as
// they are produced instead of waiting for the whole run to finish: the
// wire realization of spec.md §5's "driver consumes Actions" data flow.
func streamHandler(c *gin.Context) {
	token := c.Query("token")
	claims, err := verifySessionToken(cfg.JWTSecret, token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	snap, err := store.Load(claims.SnapshotID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no such session board"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Error().Err(err).Msg("websocket upgrade failed")
		return
	}
	defer conn.Close()

	field := snap.Field
	for {
		actions, err := stepOnce(field)
		if err != nil {
			writeStreamMessage(conn, gin.H{"type": "error", "error": err.Error()})
			return
		}
		if len(actions) == 0 {
			break
		}
		for _, a := range actions {
			if writeErr := writeStreamMessage(conn, streamAction(a)); writeErr != nil {
				log.Info().Err(writeErr).Msg("stream client disconnected")
				return
			}
		}
	}

	if err := persistStep(field, claims.SnapshotID); err != nil {
		log.Error().Err(err).Msg("persist streamed solve run")
	}
	writeStreamMessage(conn, gin.H{"type": "done", "board": field.String()})
}

func streamAction(a core.Action) gin.H {
	pos := a.Position()
	return gin.H{
		"type":   "action",
		"kind":   a.Kind.String(),
		"digit":  a.Digit,
		"row":    pos.Row(),
		"col":    pos.Column(),
		"reason": a.Reason,
	}
}

func writeStreamMessage(conn *websocket.Conn, msg gin.H) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	return conn.WriteMessage(websocket.TextMessage, data)
}
