package mail

import (
	"bytes"
	"fmt"
	"html"
	htmltemplate "html/template"
	"strings"
	texttemplate "text/template"
	"time"

	"github.com/microcosm-cc/bluemonday"

	"github.com/cbcberry/berrysite/internal/visitor"
)

// DefaultSource labels contact submissions that do not name a source.
const DefaultSource = "CBC Homepage"

// CareersSource labels application submissions.
const CareersSource = "CBC Homepage - Careers Section"

// ContactNotice is the internal notification for a contact form submission.
type ContactNotice struct {
	Name        string
	Email       string
	Company     string
	Phone       string
	Region      string
	Message     string
	Source      string
	SubmittedAt time.Time
	Visitor     visitor.Info
}

// ApplicationNotice is the internal notification for a job application.
type ApplicationNotice struct {
	Name        string
	Email       string
	Phone       string
	Position    string
	Message     string
	ResumeName  string
	Resume      []byte
	SubmittedAt time.Time
	IP          string
}

// Senders names the addresses used for each kind of message.
type Senders struct {
	To          []string
	ContactFrom string
	CareersFrom string
	ConfirmFrom string
}

// Composer renders notices into messages.
type Composer struct {
	senders  Senders
	strict   *bluemonday.Policy
	ugc      *bluemonday.Policy
	htmlTmpl *htmltemplate.Template
	textTmpl *texttemplate.Template
}

// NewComposer parses the message templates.
func NewComposer(s Senders) (*Composer, error) {
	c := &Composer{
		senders: s,
		strict:  bluemonday.StrictPolicy(),
		ugc:     bluemonday.UGCPolicy(),
	}

	funcs := htmltemplate.FuncMap{"body": c.messageHTML}
	h, err := htmltemplate.New("mail").Funcs(funcs).Parse(htmlTemplates)
	if err != nil {
		return nil, fmt.Errorf("parsing html mail templates: %w", err)
	}
	t, err := texttemplate.New("mail").Funcs(texttemplate.FuncMap{"plain": c.plain}).Parse(textTemplates)
	if err != nil {
		return nil, fmt.Errorf("parsing text mail templates: %w", err)
	}
	c.htmlTmpl = h
	c.textTmpl = t
	return c, nil
}

// Contact builds the internal notification for n.
func (c *Composer) Contact(n ContactNotice) (Message, error) {
	if n.Source == "" {
		n.Source = DefaultSource
	}
	subject := "New Contact: " + c.plain(n.Name)
	if n.Company != "" {
		subject += " from " + c.plain(n.Company)
	}
	data := struct {
		ContactNotice
		Submitted string
	}{n, formatTime(n.SubmittedAt)}

	return c.render("contact", data, Message{
		From:    c.senders.ContactFrom,
		To:      c.senders.To,
		ReplyTo: n.Email,
		Subject: subject,
	})
}

// Application builds the internal notification for n, attaching the resume
// when one was uploaded.
func (c *Composer) Application(n ApplicationNotice) (Message, error) {
	data := struct {
		ApplicationNotice
		Submitted string
		Source    string
	}{n, formatTime(n.SubmittedAt), CareersSource}

	msg := Message{
		From:    c.senders.CareersFrom,
		To:      c.senders.To,
		ReplyTo: n.Email,
		Subject: fmt.Sprintf("Job Application: %s - %s", c.plain(n.Name), c.plain(n.Position)),
	}
	if n.ResumeName != "" && len(n.Resume) > 0 {
		msg.Attachments = []Attachment{{Filename: n.ResumeName, Content: n.Resume}}
	}
	return c.render("application", data, msg)
}

// Confirmation builds the acknowledgement sent to the applicant.
func (c *Composer) Confirmation(n ApplicationNotice) (Message, error) {
	return c.render("confirmation", n, Message{
		From:    c.senders.ConfirmFrom,
		To:      []string{n.Email},
		Subject: "Application Received - California Berry Cultivars",
	})
}

func (c *Composer) render(name string, data any, msg Message) (Message, error) {
	var hb, tb bytes.Buffer
	if err := c.htmlTmpl.ExecuteTemplate(&hb, name, data); err != nil {
		return Message{}, fmt.Errorf("rendering %s html: %w", name, err)
	}
	if err := c.textTmpl.ExecuteTemplate(&tb, name, data); err != nil {
		return Message{}, fmt.Errorf("rendering %s text: %w", name, err)
	}
	msg.HTML = hb.String()
	msg.Text = strings.TrimSpace(tb.String()) + "\n"
	return msg, nil
}

// messageHTML turns free text into paragraph HTML with line breaks.
func (c *Composer) messageHTML(s string) htmltemplate.HTML {
	escaped := htmltemplate.HTMLEscapeString(s)
	escaped = strings.ReplaceAll(escaped, "\r\n", "\n")
	escaped = strings.ReplaceAll(escaped, "\n", "<br>")
	return htmltemplate.HTML(c.ugc.Sanitize(escaped))
}

// plain strips any markup from user text for headers and the text part.
func (c *Composer) plain(s string) string {
	return strings.TrimSpace(html.UnescapeString(c.strict.Sanitize(s)))
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		t = time.Now()
	}
	return t.UTC().Format("Jan 2, 2006 3:04 PM MST")
}
