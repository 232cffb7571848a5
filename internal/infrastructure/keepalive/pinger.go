package keepalive

import (
	"fmt"
	"net/http"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

// Pinger issues a GET against the public health endpoint every 14
// minutes so free-tier hosting doesn't spin the service down. Failures
// are logged and otherwise ignored.
type Pinger struct {
	cron   *cron.Cron
	url    string
	client *http.Client
}

func New(publicURL string) *Pinger {
	return &Pinger{
		cron:   cron.New(),
		url:    fmt.Sprintf("%s/api/health", publicURL),
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

func (p *Pinger) Start() error {
	if _, err := p.cron.AddFunc("*/14 * * * *", p.ping); err != nil {
		return fmt.Errorf("register keepalive schedule: %w", err)
	}
	p.cron.Start()
	log.Info().Str("url", p.url).Msg("Keepalive pinger started")
	return nil
}

func (p *Pinger) Stop() {
	ctx := p.cron.Stop()
	<-ctx.Done()
	log.Info().Msg("Keepalive pinger stopped")
}

func (p *Pinger) ping() {
	resp, err := p.client.Get(p.url)
	if err != nil {
		log.Error().Err(err).Str("url", p.url).Msg("Keepalive ping failed")
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusOK {
		log.Info().Str("url", p.url).Msg("Keepalive ping OK")
	} else {
		log.Warn().Int("status", resp.StatusCode).Str("url", p.url).Msg("Keepalive ping returned non-200")
	}
}
