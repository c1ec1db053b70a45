package defs

import (
	"fmt"
	"html"
	"strings"
)

// ContactRequest is the body posted by the contact form.
type ContactRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Mobile    string `json:"mobile"`
	Email     string `json:"email"`
	Comment   string `json:"comment"`
}

// Complete reports whether the required fields are present. Mobile is optional.
func (r *ContactRequest) Complete() bool {
	return r.FirstName != "" && r.LastName != "" && r.Email != "" && r.Comment != ""
}

// Message is what gets handed to the mail provider.
type Message struct {
	ID      string
	To      string
	From    string
	Subject string
	Text    string
	HTML    string
}

func NewMessage(id, to, from string, r *ContactRequest) *Message {
	name := r.FirstName + " " + r.LastName
	text := fmt.Sprintf("New contact request:\n\nName: %s\nEmail: %s\nMobile: %s\n\nMessage:\n%s",
		name, r.Email, r.Mobile, r.Comment)

	var b strings.Builder
	b.WriteString("<h2>New contact request</h2>\n")
	fmt.Fprintf(&b, "<p><strong>Name:</strong> %s</p>\n", html.EscapeString(name))
	fmt.Fprintf(&b, "<p><strong>Email:</strong> %s</p>\n", html.EscapeString(r.Email))
	fmt.Fprintf(&b, "<p><strong>Mobile:</strong> %s</p>\n", html.EscapeString(r.Mobile))
	b.WriteString("<h3>Message</h3>\n")
	fmt.Fprintf(&b, "<p>%s</p>", strings.ReplaceAll(html.EscapeString(r.Comment), "\n", "<br />"))

	return &Message{
		ID:      id,
		To:      to,
		From:    from,
		Subject: "Website contact from " + name,
		Text:    text,
		HTML:    b.String(),
	}
}
