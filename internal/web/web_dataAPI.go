package web

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-while/go-bootstrapcdn/internal/models"
)

// dataJSON serves /data/bootstrapcdn.json. The snapshot and its serialized
// bytes are computed once per process; every response afterwards serves the
// identical frozen byte slice. A fresh snapshot appears only after restart.
func (s *WebServer) dataJSON(c *gin.Context) {
	s.snapshotOnce.Do(func() {
		snap, err := models.BuildSnapshot(s.Config)
		if err != nil {
			s.snapshotErr = err
			return
		}
		buf, err := json.Marshal(snap)
		if err != nil {
			s.snapshotErr = err
			return
		}
		s.snapshotJSON = buf
		log.Printf("[WEB]: data snapshot computed (%d bytes)", len(buf))
	})

	if s.snapshotErr != nil {
		log.Printf("[ERROR]: data snapshot: %v", s.snapshotErr)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "data derivation failed"})
		return
	}
	c.Data(http.StatusOK, "application/json", s.snapshotJSON)
}
