package dummyclient

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/dmisol/florix/anim"
	"github.com/dmisol/florix/defs"
	"github.com/valyala/fasthttp"
)

const (
	defaultTimeout = 10 * time.Second
)

// Client talks to a running site the way the browser does.
type Client struct {
	*fasthttp.Client
	Base string // e.g. http://localhost:3000
}

func NewClient(base string) *Client {
	return &Client{Client: &fasthttp.Client{Name: "dummyclient"}, Base: base}
}

// Submit posts a contact form and returns the status and raw reply.
func (c *Client) Submit(ctx context.Context, req defs.ContactRequest) (status int, body []byte, err error) {
	b, err := json.Marshal(req)
	if err != nil {
		return 0, nil, err
	}
	return c.do(ctx, fasthttp.MethodPost, "/api/contact", b)
}

// Choreography fetches the tuning table the mascot runs on.
func (c *Client) Choreography(ctx context.Context) (*anim.Choreography, error) {
	status, body, err := c.do(ctx, fasthttp.MethodGet, "/api/choreography", nil)
	if err != nil {
		return nil, err
	}
	if status != fasthttp.StatusOK {
		return nil, fmt.Errorf("dummyclient: choreography: status %d", status)
	}
	var ch anim.Choreography
	if err = json.Unmarshal(body, &ch); err != nil {
		return nil, err
	}
	return &ch, nil
}

// Get fetches a page.
func (c *Client) Get(ctx context.Context, path string) (status int, body []byte, err error) {
	return c.do(ctx, fasthttp.MethodGet, path, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body []byte) (status int, reply []byte, err error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(c.Base + path)
	req.Header.SetMethod(method)
	if body != nil {
		req.Header.SetContentType("application/json")
		req.SetBody(body)
	}

	deadline, ok := ctx.Deadline()
	if !ok {
		deadline = time.Now().Add(defaultTimeout)
	}
	if err = c.Client.DoDeadline(req, resp, deadline); err != nil {
		log.Println("dummyclient", method, path, err)
		return
	}
	return resp.StatusCode(), append([]byte(nil), resp.Body()...), nil
}
