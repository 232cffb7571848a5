package main

import (
	"log"

	"bookworm-backend/internal/infrastructure/keepalive"
)

// scheduler runs the periodic keepalive ping alongside the task worker.
type scheduler struct {
	pinger *keepalive.Pinger
}

func setupScheduler(publicURL string) *scheduler {
	pinger := keepalive.New(publicURL)

	if err := pinger.Start(); err != nil {
		log.Fatalf("[Scheduler] Failed to start: %v", err)
	}

	return &scheduler{pinger: pinger}
}

func (s *scheduler) Shutdown() {
	log.Println("[Scheduler] Shutting down...")
	s.pinger.Stop()
	log.Println("[Scheduler] ✓ Stopped")
}
