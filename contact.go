package florix

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/dmisol/florix/defs"
	"github.com/dmisol/florix/relay"
	"github.com/google/uuid"
	"github.com/valyala/fasthttp"
)

const (
	errInvalidBody   = "Invalid request body"
	errMissingFields = "Missing required fields"
	errNotConfigured = defs.EnvSendGridKey + " not configured"
	errSendFailed    = "Failed to send message"
)

// POST /api/contact
func (s *Site) contact(r *fasthttp.RequestCtx) {
	var req defs.ContactRequest
	if err := json.Unmarshal(r.PostBody(), &req); err != nil {
		writeJSON(r, fasthttp.StatusBadRequest, errorBody{errInvalidBody})
		return
	}
	if !req.Complete() {
		writeJSON(r, fasthttp.StatusBadRequest, errorBody{errMissingFields})
		return
	}
	if s.SiteConf.Mail.Key == "" {
		s.Println("contact rejected:", errNotConfigured)
		writeJSON(r, fasthttp.StatusInternalServerError, errorBody{errNotConfigured})
		return
	}

	m := defs.NewMessage(uuid.NewString(), s.SiteConf.Mail.Recipient(), s.SiteConf.Mail.Sender(), &req)

	ctx, cancel := context.WithTimeout(s.Context, writeTimeout)
	defer cancel()
	if err := s.Mailer.Send(ctx, m); err != nil {
		s.Println("contact", m.ID, "failed:", err)
		if errors.Is(err, relay.ErrNotConfigured) {
			writeJSON(r, fasthttp.StatusInternalServerError, errorBody{errNotConfigured})
			return
		}
		writeJSON(r, fasthttp.StatusInternalServerError, errorBody{errSendFailed})
		return
	}

	s.Println("contact", m.ID, "delivered to", m.To)
	writeJSON(r, fasthttp.StatusOK, map[string]bool{"ok": true})
}
