// Web server for the BootstrapCDN site
package main

import (
	"flag"
	"log"

	"github.com/go-while/go-bootstrapcdn/internal/config"
	"github.com/go-while/go-bootstrapcdn/internal/web"
	prof "github.com/go-while/go-cpu-mem-profiler"
)

var (
	// command-line flags
	configPath string
	webport    int
	modeStr    string
	forceSSL   bool
	profAddr   string
)

var Prof *prof.Profiler

var appVersion = "-unset-"

func main() {
	config.AppVersion = appVersion

	flag.StringVar(&configPath, "config", "./config/_config.yml", "path to YAML site configuration")
	flag.IntVar(&webport, "webport", 0, "override listen port from config")
	flag.StringVar(&modeStr, "mode", "development", "deployment mode: development or production")
	flag.BoolVar(&forceSSL, "forcessl", false, "send strict-transport-security headers (TLS terminated upstream, production only)")
	flag.StringVar(&profAddr, "prof", "", "pprof web listen address (e.g. :6060), disabled if empty")
	flag.Parse()

	log.Printf("Starting go-bootstrapcdn web server (version: %s)", appVersion)

	// Config load happens exactly once, before any socket is opened.
	// A broken config must never reach the serving state.
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("[WEB]: config load failed: %v", err)
	}
	if webport > 0 {
		cfg.Port = webport
	}

	if profAddr != "" {
		Prof = prof.NewProf()
		go Prof.PprofWeb(profAddr)
	}

	mode := config.ParseMode(modeStr)
	log.Printf("[WEB]: mode=%s port=%d bootstrap=%d fontawesome=%d", mode, cfg.Port, len(cfg.Bootstrap), len(cfg.Fontawesome))

	server := web.NewServer(cfg, mode, forceSSL)
	if err := server.Start(); err != nil {
		log.Fatalf("[WEB]: server failed: %v", err)
	}
}
