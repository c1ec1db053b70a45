package relay

import "github.com/dmisol/florix/defs"

// v3 mail/send body
type payload struct {
	Personalizations []personalization `json:"personalizations"`
	From             address           `json:"from"`
	Subject          string            `json:"subject"`
	Content          []content         `json:"content"`
}

type personalization struct {
	To         []address         `json:"to"`
	CustomArgs map[string]string `json:"custom_args,omitempty"`
}

type address struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

type content struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

func newPayload(m *defs.Message) *payload {
	p := &payload{
		Personalizations: []personalization{{To: []address{{Email: m.To}}}},
		From:             address{Email: m.From},
		Subject:          m.Subject,
		Content: []content{
			{Type: "text/plain", Value: m.Text},
			{Type: "text/html", Value: m.HTML},
		},
	}
	if m.ID != "" {
		p.Personalizations[0].CustomArgs = map[string]string{"message_id": m.ID}
	}
	return p
}
