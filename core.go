package florix

import (
	"context"
	"encoding/json"
	"html/template"
	"log"
	"net"
	"strings"
	"sync"
	"time"

	"github.com/dmisol/florix/anim"
	"github.com/dmisol/florix/defs"
	"github.com/dmisol/florix/relay"
	"github.com/valyala/fasthttp"
)

const (
	maxBody = 64 << 10

	readTimeout  = 10 * time.Second
	writeTimeout = 30 * time.Second
)

// NewSite loads the yaml configuration at confPath (may be empty) and prepares
// the mail relay and the choreography table.
func NewSite(ctx context.Context, confPath string) (s *Site, err error) {
	conf, err := defs.LoadSiteConf(confPath)
	if err != nil {
		return nil, err
	}
	s = &Site{
		SiteConf: conf,
		choreo:   anim.DefaultChoreography(),
	}
	s.Context, s.CancelFunc = context.WithCancel(ctx)

	if s.pages, err = parsePages(); err != nil {
		s.CancelFunc()
		return nil, err
	}

	s.relay = relay.NewRelay(s.Context, conf.Mail)
	s.Mailer = s.relay

	switch {
	case conf.Choreography != "" && conf.Watch:
		if s.watcher, err = anim.NewWatcher(conf.Choreography, s.setChoreography); err != nil {
			s.CancelFunc()
			return nil, err
		}
		s.choreo = s.watcher.Current()
	case conf.Choreography != "":
		if s.choreo, err = anim.LoadChoreography(conf.Choreography); err != nil {
			s.CancelFunc()
			return nil, err
		}
	}
	return s, nil
}

type Site struct {
	*defs.SiteConf

	context.Context
	context.CancelFunc

	// Mailer delivers contact messages, the SendGrid relay unless replaced
	Mailer relay.Mailer

	relay   *relay.Relay
	watcher *anim.Watcher
	pages   map[string]*template.Template

	mu     sync.Mutex
	choreo *anim.Choreography
}

func (s *Site) setChoreography(c *anim.Choreography) {
	s.mu.Lock()
	s.choreo = c
	s.mu.Unlock()
}

func (s *Site) CurrentChoreography() *anim.Choreography {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.choreo
}

// Handler routes every request of the site.
func (s *Site) Handler(r *fasthttp.RequestCtx) {
	path := string(r.Path())
	if len(path) > 1 {
		path = strings.TrimSuffix(path, "/")
	}

	switch path {
	case "/api/contact":
		if !r.IsPost() {
			s.methodNotAllowed(r, fasthttp.MethodPost)
			return
		}
		s.contact(r)
		return
	case "/api/choreography":
		if !r.IsGet() && !r.IsHead() {
			s.methodNotAllowed(r, fasthttp.MethodGet)
			return
		}
		writeJSON(r, fasthttp.StatusOK, s.CurrentChoreography())
		return
	case "/healthz":
		writeJSON(r, fasthttp.StatusOK, map[string]interface{}{
			"ok":     true,
			"sent":   s.relay.Sent(),
			"failed": s.relay.Failed(),
		})
		return
	}

	if !r.IsGet() && !r.IsHead() {
		s.methodNotAllowed(r, fasthttp.MethodGet)
		return
	}
	s.page(r, path)
}

func (s *Site) methodNotAllowed(r *fasthttp.RequestCtx, allow string) {
	r.Response.Header.Set("Allow", allow)
	writeJSON(r, fasthttp.StatusMethodNotAllowed, errorBody{"Method not allowed"})
}

type errorBody struct {
	Error string `json:"error"`
}

func writeJSON(r *fasthttp.RequestCtx, status int, v interface{}) {
	b, err := json.Marshal(v)
	if err != nil {
		r.Error("can't encode response", fasthttp.StatusInternalServerError)
		return
	}
	r.SetStatusCode(status)
	r.SetContentType("application/json")
	r.SetBody(b)
}

// Serve blocks until ln fails or the site is closed.
func (s *Site) Serve(ln net.Listener) error {
	srv := &fasthttp.Server{
		Handler:            s.Handler,
		Name:               "florix",
		ReadTimeout:        readTimeout,
		WriteTimeout:       writeTimeout,
		MaxRequestBodySize: maxBody,
	}
	go func() {
		<-s.Context.Done()
		if err := srv.Shutdown(); err != nil {
			s.Println("shutdown", err)
		}
	}()
	s.Println("serving", ln.Addr())
	return srv.Serve(ln)
}

func (s *Site) ListenAndServe() error {
	ln, err := net.Listen("tcp", s.Addr)
	if err != nil {
		return err
	}
	return s.Serve(ln)
}

func (s *Site) Close() {
	if s.watcher != nil {
		s.watcher.Close()
	}
	s.relay.Close()
	s.CancelFunc()
}

func (s *Site) Println(i ...interface{}) {
	log.Println("site", i)
}
