package relay

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/dmisol/florix/defs"
	"github.com/valyala/fasthttp"
	"go.uber.org/atomic"
)

const (
	SendGridEndpoint = "https://api.sendgrid.com/v3/mail/send"

	defaultTimeout = 10 * time.Second
)

var ErrNotConfigured = errors.New("relay: mail provider not configured")

// Mailer delivers a message or reports why it could not.
type Mailer interface {
	Send(ctx context.Context, m *defs.Message) error
}

// ProviderError is a non-2xx answer from the provider.
type ProviderError struct {
	Status int
	Body   string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("relay: provider answered %d: %s", e.Status, e.Body)
}

func NewRelay(ctx context.Context, conf defs.MailConf) (r *Relay) {
	r = &Relay{
		Client:   &fasthttp.Client{Name: "florix"},
		conf:     conf,
		endpoint: conf.Endpoint,
		timeout:  time.Duration(conf.Timeout) * time.Second,
		sent:     atomic.NewInt64(0),
		failed:   atomic.NewInt64(0),
	}
	if r.endpoint == "" {
		r.endpoint = SendGridEndpoint
	}
	if r.timeout <= 0 {
		r.timeout = defaultTimeout
	}
	r.Context, r.CancelFunc = context.WithCancel(ctx)

	go func() {
		<-r.Context.Done()
		r.Client.CloseIdleConnections()
	}()
	return
}

// Relay posts messages to the SendGrid v3 API.
type Relay struct {
	*fasthttp.Client

	context.Context
	context.CancelFunc

	conf     defs.MailConf
	endpoint string
	timeout  time.Duration

	sent, failed *atomic.Int64
}

func (r *Relay) Configured() bool {
	return r.conf.Key != ""
}

func (r *Relay) Sent() int64   { return r.sent.Load() }
func (r *Relay) Failed() int64 { return r.failed.Load() }

func (r *Relay) Send(ctx context.Context, m *defs.Message) (err error) {
	if !r.Configured() {
		return ErrNotConfigured
	}
	if err = r.Context.Err(); err != nil {
		return fmt.Errorf("relay: closed: %w", err)
	}
	if err = ctx.Err(); err != nil {
		return err
	}
	defer func() {
		if err != nil {
			r.failed.Inc()
			r.Println("delivery failed", m.ID, err)
			return
		}
		r.sent.Inc()
	}()

	body, err := json.Marshal(newPayload(m))
	if err != nil {
		return fmt.Errorf("relay: encode: %w", err)
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(r.endpoint)
	req.Header.SetMethod(fasthttp.MethodPost)
	req.Header.SetContentType("application/json")
	req.Header.Set("Authorization", "Bearer "+r.conf.Key)
	req.SetBody(body)

	deadline := time.Now().Add(r.timeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}
	if err = r.Client.DoDeadline(req, resp, deadline); err != nil {
		return fmt.Errorf("relay: post: %w", err)
	}

	if code := resp.StatusCode(); code < 200 || code > 299 {
		return &ProviderError{Status: code, Body: string(resp.Body())}
	}
	return nil
}

func (r *Relay) Close() {
	r.Println("closing")
	r.CancelFunc()
}

func (r *Relay) Println(i ...interface{}) {
	log.Println("relay", i)
}
