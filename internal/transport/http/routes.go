package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"sudoku-deduce/internal/core"
	"sudoku-deduce/internal/storage"
	"sudoku-deduce/internal/strategy"
	"sudoku-deduce/pkg/config"
	"sudoku-deduce/pkg/constants"
)

var (
	cfg   *config.Config
	store storage.Store
)

// RegisterRoutes wires the deduction core's HTTP surface: session
// issuance, one-step and run-to-completion solving, board validation,
// and a websocket that streams each Action as it is produced.
func RegisterRoutes(r *gin.Engine, c *config.Config, s storage.Store) {
	cfg = c
	store = s

	r.GET("/health", healthHandler)

	api := r.Group("/api")
	{
		api.POST("/session", sessionHandler)
		api.POST("/board/validate", validateHandler)
		api.POST("/solve/next", solveNextHandler)
		api.POST("/solve/all", solveAllHandler)
		api.GET("/solve/stream", streamHandler)
	}
}

func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"version": constants.APIVersion,
	})
}

// sessionRequest carries the board a client wants to start solving.
type sessionRequest struct {
	Board string `json:"board" binding:"required"`
}

// sessionHandler parses the board, saves it as a snapshot, and mints a
// JWT the client presents to every subsequent solve call.
func sessionHandler(c *gin.Context) {
	var req sessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	field, err := core.NewFieldFromString(req.Board)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	snap := storage.NewSnapshot(field)
	if err := store.Save(snap); err != nil {
		log.Error().Err(err).Msg("save initial snapshot")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not persist board"})
		return
	}

	now := time.Now()
	token, err := issueSessionToken(cfg.JWTSecret, SessionClaimsInput{
		SnapshotID: snap.ID,
		IssuedAt:   now,
		ExpiresAt:  now.Add(constants.SessionTokenExpiry),
	})
	if err != nil {
		log.Error().Err(err).Msg("issue session token")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not issue session"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "snapshot_id": snap.ID})
}

// validateRequest carries a standalone board string, no session needed.
type validateRequest struct {
	Board string `json:"board" binding:"required"`
}

func validateHandler(c *gin.Context) {
	var req validateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := core.NewFieldFromString(req.Board); err != nil {
		c.JSON(http.StatusOK, gin.H{"valid": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"valid": true})
}

type solveRequest struct {
	Token string `json:"token" binding:"required"`
}

// solveNextHandler runs weighted_solvers order once: the first strategy
// whose lazy sequence is non-empty, applied in full, ends the step.
func solveNextHandler(c *gin.Context) {
	field, claims, ok := loadSession(c)
	if !ok {
		return
	}

	actions, err := stepOnce(field)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	if err := persistStep(field, claims.SnapshotID); err != nil {
		log.Error().Err(err).Msg("persist solve step")
	}

	c.JSON(http.StatusOK, gin.H{
		"actions": renderActions(actions),
		"board":   field.String(),
	})
}

// solveAllHandler runs the weighted_solvers order to exhaustion: repeated
// passes over every strategy, applying each Action found, until a full
// pass over the whole registry produces nothing.
func solveAllHandler(c *gin.Context) {
	field, claims, ok := loadSession(c)
	if !ok {
		return
	}

	var all []core.Action
	for {
		actions, err := stepOnce(field)
		if err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error(), "actions": renderActions(all)})
			return
		}
		if len(actions) == 0 {
			break
		}
		all = append(all, actions...)
	}
	if err := persistStep(field, claims.SnapshotID); err != nil {
		log.Error().Err(err).Msg("persist solve run")
	}

	c.JSON(http.StatusOK, gin.H{
		"actions": renderActions(all),
		"board":   field.String(),
	})
}

// stepOnce tries each registered strategy in weight order, applies the
// first non-empty sequence it finds to field, and returns what it
// applied. An empty, nil-error result means the driver has stalled.
func stepOnce(field *core.Field) ([]core.Action, error) {
	for _, entry := range strategy.WeightedStrategies {
		actions, err := entry.Run(field, strategy.Selection{}, nil)
		if err != nil {
			return nil, err
		}
		if len(actions) == 0 {
			continue
		}
		for _, a := range actions {
			// A strategy can report the same assignment from more than one
			// group; once applied, the repeat is redundant, not an error.
			if a.Kind == core.SetValue && field.GetCell(a.CellIndex).Value == a.Digit {
				continue
			}
			if err := field.Apply(a); err != nil {
				return nil, err
			}
		}
		return actions, nil
	}
	return nil, nil
}

func persistStep(field *core.Field, snapshotID string) error {
	return store.Save(storage.Snapshot{ID: snapshotID, Field: field})
}

func loadSession(c *gin.Context) (*core.Field, *SessionClaims, bool) {
	var req solveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, nil, false
	}

	claims, err := verifySessionToken(cfg.JWTSecret, req.Token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return nil, nil, false
	}

	snap, err := store.Load(claims.SnapshotID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no such session board"})
		return nil, nil, false
	}
	return snap.Field, claims, true
}

func renderActions(actions []core.Action) []gin.H {
	out := make([]gin.H, 0, len(actions))
	for _, a := range actions {
		pos := a.Position()
		out = append(out, gin.H{
			"kind":   a.Kind.String(),
			"digit":  a.Digit,
			"row":    pos.Row(),
			"col":    pos.Column(),
			"reason": a.Reason,
		})
	}
	return out
}
