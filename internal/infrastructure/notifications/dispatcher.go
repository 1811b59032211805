// Package notifications delivers signed webhook events to registered endpoints.
package notifications

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"gatewaysim/internal/domain/entities"
	"gatewaysim/internal/usecase/interfaces"

	"github.com/google/uuid"
)

const (
	// deliveryTimeout bounds each individual POST; a slow recipient cannot
	// block the others beyond its own timeout.
	deliveryTimeout = 5 * time.Second
	// maxConcurrentDeliveries bounds the fan-out.
	maxConcurrentDeliveries = 8
	// maxLoggedBody is how much of a recipient's response body gets journaled.
	maxLoggedBody = 512
)

// envelope is the provider-shaped webhook payload.
type envelope struct {
	ID          string       `json:"id"`
	LiveMode    bool         `json:"live_mode"`
	Type        string       `json:"type"`
	DateCreated time.Time    `json:"date_created"`
	UserID      int64        `json:"user_id"`
	APIVersion  string       `json:"api_version"`
	Action      string       `json:"action"`
	Data        envelopeData `json:"data"`
}

type envelopeData struct {
	ID string `json:"id"`
}

// Dispatcher fans gateway events out to every interested endpoint.
//
// Delivery is best-effort: each attempt (success or failure) is appended to
// the capped delivery journal, and nothing is ever reported back to the
// triggering operation. Recipients are posted concurrently and joined before
// Notify returns.
type Dispatcher struct {
	webhookRepo   interfaces.IWebhookRepository
	logRepo       interfaces.IWebhookLogRepository
	secret        string
	loopbackAlias string
	client        *http.Client
}

var _ interfaces.IEventNotifier = (*Dispatcher)(nil)

func NewDispatcher(webhookRepo interfaces.IWebhookRepository, logRepo interfaces.IWebhookLogRepository, secret, loopbackAlias string) *Dispatcher {
	return &Dispatcher{
		webhookRepo:   webhookRepo,
		logRepo:       logRepo,
		secret:        secret,
		loopbackAlias: loopbackAlias,
		client:        &http.Client{Timeout: deliveryTimeout},
	}
}

// Notify builds the signed envelope for event/action and posts it to every
// matching registration plus the subject's own notification_url.
func (d *Dispatcher) Notify(ctx context.Context, event, action, resourceID, notificationURL string) {
	recipients := d.resolveRecipients(ctx, event, notificationURL)
	if len(recipients) == 0 {
		return
	}

	env := envelope{
		ID:          uuid.NewString(),
		LiveMode:    false,
		Type:        resourceTypeFor(event),
		DateCreated: time.Now().UTC(),
		UserID:      1,
		APIVersion:  "v1",
		Action:      action,
		Data:        envelopeData{ID: resourceID},
	}
	body, err := json.Marshal(env)
	if err != nil {
		log.Printf("[webhook][dispatcher] envelope marshal failed event=%s err=%v", event, err)
		return
	}
	signature := d.sign(body)

	sem := make(chan struct{}, maxConcurrentDeliveries)
	var wg sync.WaitGroup
	for _, target := range recipients {
		wg.Add(1)
		sem <- struct{}{}
		go func(target string) {
			defer wg.Done()
			defer func() { <-sem }()
			d.deliver(ctx, target, event, resourceID, body, signature)
		}(target)
	}
	wg.Wait()
}

// resolveRecipients returns the de-duplicated target set for an event.
func (d *Dispatcher) resolveRecipients(ctx context.Context, event, notificationURL string) []string {
	var targets []string
	regs, err := d.webhookRepo.List(ctx)
	if err != nil {
		// Registrations being unreadable must not fail the trigger either.
		log.Printf("[webhook][dispatcher] listing registrations failed event=%s err=%v", event, err)
	} else {
		for _, reg := range regs {
			if reg.Matches(event) {
				targets = append(targets, reg.URL)
			}
		}
	}
	if notificationURL != "" {
		targets = append(targets, notificationURL)
	}

	seen := make(map[string]struct{}, len(targets))
	unique := make([]string, 0, len(targets))
	for _, t := range targets {
		normalized := d.normalizeLoopback(t)
		if _, dup := seen[normalized]; dup {
			continue
		}
		seen[normalized] = struct{}{}
		unique = append(unique, normalized)
	}
	return unique
}

// normalizeLoopback rewrites localhost-style hosts to the container-reachable
// alias so a consumer running on the docker host still receives events.
func (d *Dispatcher) normalizeLoopback(raw string) string {
	if d.loopbackAlias == "" {
		return raw
	}
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	host := u.Hostname()
	if host != "localhost" && host != "127.0.0.1" && host != "0.0.0.0" {
		return raw
	}
	if port := u.Port(); port != "" {
		u.Host = d.loopbackAlias + ":" + port
	} else {
		u.Host = d.loopbackAlias
	}
	return u.String()
}

func (d *Dispatcher) deliver(ctx context.Context, target, event, resourceID string, body []byte, signature string) {
	entry := entities.WebhookDeliveryLog{
		ID:          uuid.NewString(),
		URL:         target,
		Event:       event,
		ResourceID:  resourceID,
		DateCreated: time.Now().UTC(),
	}

	reqCtx, cancel := context.WithTimeout(ctx, deliveryTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodPost, target, bytes.NewReader(body))
	if err != nil {
		entry.Error = err.Error()
		d.journal(entry)
		return
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Gateway-Signature", signature)
	req.Header.Set("X-Delivery-Id", uuid.NewString())

	resp, err := d.client.Do(req)
	if err != nil {
		entry.Error = err.Error()
		d.journal(entry)
		return
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxLoggedBody))
	entry.StatusCode = resp.StatusCode
	entry.ResponseBody = strings.TrimSpace(string(respBody))
	entry.Success = resp.StatusCode >= 200 && resp.StatusCode < 300
	if !entry.Success {
		entry.Error = "non-2xx response"
	}
	d.journal(entry)
}

func (d *Dispatcher) journal(entry entities.WebhookDeliveryLog) {
	if entry.Success {
		log.Printf("[webhook][dispatcher] delivered url=%s event=%s status=%d", entry.URL, entry.Event, entry.StatusCode)
	} else {
		log.Printf("[webhook][dispatcher] delivery failed url=%s event=%s status=%d err=%s", entry.URL, entry.Event, entry.StatusCode, entry.Error)
	}
	if err := d.logRepo.Append(context.Background(), entry); err != nil {
		log.Printf("[webhook][dispatcher] journal append failed url=%s err=%v", entry.URL, err)
	}
}

func (d *Dispatcher) sign(body []byte) string {
	mac := hmac.New(sha256.New, []byte(d.secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

func resourceTypeFor(event string) string {
	if strings.HasPrefix(event, entities.ResourceTypePayment) {
		return entities.ResourceTypePayment
	}
	return entities.ResourceTypePreapproval
}
