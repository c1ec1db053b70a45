package relay

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"sync"
	"testing"
	"time"

	"github.com/dmisol/florix/defs"
	"github.com/valyala/fasthttp"
	"github.com/valyala/fasthttp/fasthttputil"
)

// fakeProvider stands in for the SendGrid API.
type fakeProvider struct {
	mu     sync.Mutex
	status int
	auth   string
	got    []payload
}

func (f *fakeProvider) handle(ctx *fasthttp.RequestCtx) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.auth = string(ctx.Request.Header.Peek("Authorization"))
	var p payload
	if err := json.Unmarshal(ctx.PostBody(), &p); err != nil {
		ctx.Error(err.Error(), fasthttp.StatusBadRequest)
		return
	}
	f.got = append(f.got, p)
	if f.status != 0 {
		ctx.Error(`{"errors":[{"message":"rejected"}]}`, f.status)
		return
	}
	ctx.SetStatusCode(fasthttp.StatusAccepted)
}

func startProvider(t *testing.T, f *fakeProvider, conf defs.MailConf) *Relay {
	ln := fasthttputil.NewInmemoryListener()
	srv := &fasthttp.Server{Handler: f.handle}
	go srv.Serve(ln)
	t.Cleanup(func() { ln.Close() })

	conf.Endpoint = "http://sendgrid.test/v3/mail/send"
	r := NewRelay(context.Background(), conf)
	r.Client.Dial = func(addr string) (net.Conn, error) { return ln.Dial() }
	t.Cleanup(r.Close)
	return r
}

func testMessage() *defs.Message {
	return defs.NewMessage("id-1", "info@example.com", "site@example.com", &defs.ContactRequest{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Comment:   "hello\nthere",
	})
}

func TestRelaySend(t *testing.T) {
	f := &fakeProvider{}
	r := startProvider(t, f, defs.MailConf{Key: "SG.key"})

	if err := r.Send(context.Background(), testMessage()); err != nil {
		t.Fatal(err)
	}
	if r.Sent() != 1 || r.Failed() != 0 {
		t.Fatalf("counters sent=%d failed=%d", r.Sent(), r.Failed())
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.auth != "Bearer SG.key" {
		t.Fatalf("authorization %q", f.auth)
	}
	if len(f.got) != 1 {
		t.Fatalf("expected one delivery, got %d", len(f.got))
	}
	p := f.got[0]
	if p.From.Email != "site@example.com" || p.Personalizations[0].To[0].Email != "info@example.com" {
		t.Fatalf("addresses %+v", p)
	}
	if p.Subject != "Website contact from Ada Lovelace" || len(p.Content) != 2 {
		t.Fatalf("payload %+v", p)
	}
	if p.Personalizations[0].CustomArgs["message_id"] != "id-1" {
		t.Fatalf("custom args %+v", p.Personalizations[0].CustomArgs)
	}
}

func TestRelayProviderRejects(t *testing.T) {
	f := &fakeProvider{status: fasthttp.StatusUnauthorized}
	r := startProvider(t, f, defs.MailConf{Key: "SG.bad"})

	err := r.Send(context.Background(), testMessage())
	var pe *ProviderError
	if !errors.As(err, &pe) || pe.Status != fasthttp.StatusUnauthorized {
		t.Fatalf("expected provider error, got %v", err)
	}
	if r.Failed() != 1 {
		t.Fatalf("failed counter %d", r.Failed())
	}
}

func TestRelayNotConfigured(t *testing.T) {
	r := NewRelay(context.Background(), defs.MailConf{})
	defer r.Close()

	if err := r.Send(context.Background(), testMessage()); !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
	if r.Failed() != 0 {
		t.Fatalf("missing configuration is not a delivery failure")
	}
}

func TestRelayClosed(t *testing.T) {
	r := NewRelay(context.Background(), defs.MailConf{Key: "k"})
	r.Close()

	if err := r.Send(context.Background(), testMessage()); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected canceled, got %v", err)
	}
}

func TestRelayUnreachable(t *testing.T) {
	r := NewRelay(context.Background(), defs.MailConf{Key: "k", Endpoint: "http://sendgrid.test/v3/mail/send"})
	defer r.Close()
	r.Client.Dial = func(addr string) (net.Conn, error) { return nil, errors.New("no route") }

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := r.Send(ctx, testMessage()); err == nil {
		t.Fatalf("expected dial error")
	}
	if r.Failed() != 1 {
		t.Fatalf("failed counter %d", r.Failed())
	}
}
