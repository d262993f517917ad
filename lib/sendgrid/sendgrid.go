package sendgrid

import (
	"github.com/pkg/errors"
	sendgrid "github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// Sendgrid wraps the sendgrid client with the configured sender and the
// template catalogue. Templates are keyed by template name, then language.
type Sendgrid struct {
	client    *sendgrid.Client
	from      string
	templates map[string]map[string]string
}

// NewSendgrid constructor
func NewSendgrid(key, from string, templates map[string]map[string]string) Sendgrid {
	return Sendgrid{
		client:    sendgrid.NewSendClient(key),
		from:      from,
		templates: templates,
	}
}

// SendEmail delivers the given template to one recipient with the params
// bound as dynamic template data. Unknown template/language pairs fall back
// to the "en" variant before failing.
func (s Sendgrid) SendEmail(email, language, template string, params map[string]string) error {
	templateID, err := s.templateID(template, language)
	if err != nil {
		return err
	}

	message := mail.NewV3Mail()
	message.SetFrom(mail.NewEmail("", s.from))
	message.SetTemplateID(templateID)

	p := mail.NewPersonalization()
	p.AddTos(mail.NewEmail("", email))
	for key, value := range params {
		p.SetDynamicTemplateData(key, value)
	}
	message.AddPersonalizations(p)

	resp, err := s.client.Send(message)
	if err != nil {
		return errors.Wrap(err, "sendgrid")
	}
	if resp.StatusCode >= 400 {
		return errors.Errorf("sendgrid: unexpected status %d", resp.StatusCode)
	}
	return nil
}

func (s Sendgrid) templateID(template, language string) (string, error) {
	langs, ok := s.templates[template]
	if !ok {
		return "", errors.Errorf("sendgrid: unknown template %q", template)
	}
	if id, ok := langs[language]; ok {
		return id, nil
	}
	if id, ok := langs["en"]; ok {
		return id, nil
	}
	return "", errors.Errorf("sendgrid: no %q variant for template %q", language, template)
}
