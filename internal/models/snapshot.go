// Package models contains the data structures served by the web layer.
package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-while/go-bootstrapcdn/internal/config"
)

// ErrDerivation marks a snapshot that could not be derived because the
// configuration is structurally incomplete. Partial data is never emitted.
var ErrDerivation = errors.New("snapshot derivation failed")

// BootstrapAssets holds the asset URLs of one Bootstrap release.
type BootstrapAssets struct {
	CSS string `json:"css"`
	JS  string `json:"js"`
}

// Snapshot is the JSON summary served at /data/bootstrapcdn.json.
// It is computed at most once per process and frozen afterwards; a fresh
// timestamp only appears after a process restart.
type Snapshot struct {
	Timestamp   int64                      `json:"timestamp"`
	Bootstrap   map[string]BootstrapAssets `json:"bootstrap"`
	Fontawesome map[string]string          `json:"fontawesome"`
}

// BuildSnapshot derives the snapshot from the immutable site config.
func BuildSnapshot(cfg *config.SiteConfig) (*Snapshot, error) {
	snap := &Snapshot{
		Timestamp:   time.Now().UnixMilli(),
		Bootstrap:   make(map[string]BootstrapAssets, len(cfg.Bootstrap)),
		Fontawesome: make(map[string]string, len(cfg.Fontawesome)),
	}
	for _, rec := range cfg.Bootstrap {
		if rec.Version == "" || rec.CSSComplete == "" || rec.Javascript == "" {
			return nil, fmt.Errorf("%w: incomplete bootstrap record (version=%q)", ErrDerivation, rec.Version)
		}
		snap.Bootstrap[rec.Version] = BootstrapAssets{CSS: rec.CSSComplete, JS: rec.Javascript}
	}
	for _, rec := range cfg.Fontawesome {
		if rec.Version == "" || rec.CSSComplete == "" {
			return nil, fmt.Errorf("%w: incomplete fontawesome record (version=%q)", ErrDerivation, rec.Version)
		}
		snap.Fontawesome[rec.Version] = rec.CSSComplete
	}
	return snap, nil
}
