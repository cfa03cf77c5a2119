package rod

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/bnema/webclicker/internal/adapters/markup"
	"github.com/bnema/webclicker/internal/domain"
	"github.com/bnema/webclicker/internal/ports"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/input"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

const settleDuration = 500 * time.Millisecond

// Session owns one Chrome process and its single page.
type Session struct {
	browser   *rod.Browser
	chrome    *launcher.Launcher
	page      *rod.Page
	timeout   time.Duration
	selectors domain.Selectors
	logger    *slog.Logger

	closeOnce sync.Once
	closeErr  error
}

var _ ports.Session = (*Session)(nil)

func (s *Session) Navigate(ctx context.Context, url string) error {
	p, done := s.scoped(ctx)
	defer done()

	if err := p.Navigate(url); err != nil {
		return fmt.Errorf("navigate to %s: %w", url, err)
	}
	if err := p.WaitLoad(); err != nil {
		return fmt.Errorf("wait for %s to load: %w", url, err)
	}

	return nil
}

func (s *Session) HasLoginForm(ctx context.Context) (bool, error) {
	doc, err := s.snapshot(ctx)
	if err != nil {
		return false, err
	}
	return doc.HasLoginForm(), nil
}

func (s *Session) SubmitLogin(ctx context.Context, creds domain.Credentials) error {
	p, done := s.scoped(ctx)
	defer done()

	inputs, err := p.Elements("input")
	if err != nil {
		return fmt.Errorf("query login inputs: %w", err)
	}

	var usernameField, passwordField *rod.Element
	for _, in := range inputs {
		attrs := markup.InputAttrs{
			Type:        attribute(in, "type"),
			Name:        attribute(in, "name"),
			Placeholder: attribute(in, "placeholder"),
		}
		switch markup.ClassifyInput(s.selectors, attrs) {
		case markup.InputUsername:
			if usernameField == nil {
				usernameField = in
			}
		case markup.InputPassword:
			if passwordField == nil {
				passwordField = in
			}
		}
	}
	if usernameField == nil || passwordField == nil {
		return domain.ErrLoginFormNotFound
	}

	if err := usernameField.Input(creds.Username); err != nil {
		return fmt.Errorf("fill username: %w", err)
	}
	if err := passwordField.Input(creds.Password); err != nil {
		return fmt.Errorf("fill password: %w", err)
	}

	submit, err := s.findSubmit(p)
	if err != nil {
		return err
	}
	if submit != nil {
		err = submit.Click(proto.InputMouseButtonLeft, 1)
	} else {
		s.logger.Debug("no login button found, submitting with enter")
		err = passwordField.Type(input.Enter)
	}
	if err != nil {
		return fmt.Errorf("submit login form: %w", err)
	}

	// Pages holding a long-poll open never settle; the caller re-checks the
	// form to decide whether the login worked.
	if err := p.WaitStable(settleDuration); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		s.logger.Debug("page did not settle after login", "error", err)
	}

	return nil
}

func (s *Session) findSubmit(p *rod.Page) (*rod.Element, error) {
	candidates, err := p.Elements(`button, input[type="submit"]`)
	if err != nil {
		return nil, fmt.Errorf("query login buttons: %w", err)
	}

	for _, candidate := range candidates {
		label, _ := candidate.Text()
		if strings.TrimSpace(label) == "" {
			label = attribute(candidate, "value")
		}
		if markup.IsSubmitLabel(s.selectors, label) {
			return candidate, nil
		}
	}

	return nil, nil
}

func (s *Session) PollActive(ctx context.Context) (bool, error) {
	doc, err := s.snapshot(ctx)
	if err != nil {
		return false, err
	}
	return doc.PollActive(), nil
}

func (s *Session) Choices(ctx context.Context) ([]ports.ChoiceHandle, error) {
	p, done := s.scoped(ctx)
	defer done()

	elements, err := p.Elements(markup.ChoiceSelector(s.selectors))
	if err != nil {
		return nil, fmt.Errorf("query choice elements: %w", err)
	}

	if len(elements) == 0 {
		elements, err = s.letterButtons(p)
		if err != nil {
			return nil, err
		}
	}

	handles := make([]ports.ChoiceHandle, 0, len(elements))
	for _, el := range elements {
		text, err := el.Text()
		if err != nil {
			s.logger.Debug("skip unreadable choice element", "error", err)
			continue
		}
		label := markup.ChoiceLabel(attributePtr(el, s.selectors.ChoiceAttr), text)
		if label == "" {
			continue
		}
		handles = append(handles, &choiceHandle{
			el:      el,
			choice:  domain.Choice{Index: len(handles), Label: label},
			timeout: s.timeout,
		})
	}

	return handles, nil
}

func (s *Session) letterButtons(p *rod.Page) (rod.Elements, error) {
	buttons, err := p.Elements("button")
	if err != nil {
		return nil, fmt.Errorf("query buttons: %w", err)
	}

	matched := make(rod.Elements, 0, len(buttons))
	for _, button := range buttons {
		text, err := button.Text()
		if err != nil {
			continue
		}
		if s.selectors.IsChoiceLabel(strings.TrimSpace(text)) {
			matched = append(matched, button)
		}
	}

	return matched, nil
}

// Close releases the page, the browser and the Chrome process. It is safe to
// call more than once.
func (s *Session) Close() error {
	s.closeOnce.Do(func() {
		if err := s.browser.Close(); err != nil {
			s.closeErr = fmt.Errorf("close browser: %w", err)
			s.chrome.Kill()
		}
		s.chrome.Cleanup()
	})
	return s.closeErr
}

func (s *Session) snapshot(ctx context.Context) (*markup.Document, error) {
	p, done := s.scoped(ctx)
	defer done()

	html, err := p.HTML()
	if err != nil {
		return nil, fmt.Errorf("read page html: %w", err)
	}

	return markup.Parse(html, s.selectors)
}

func (s *Session) scoped(ctx context.Context) (*rod.Page, func()) {
	p := s.page.Context(ctx).Timeout(s.timeout)
	return p, func() { p.CancelTimeout() }
}

type choiceHandle struct {
	el      *rod.Element
	choice  domain.Choice
	timeout time.Duration
}

func (h *choiceHandle) Choice() domain.Choice {
	return h.choice
}

func (h *choiceHandle) Click(ctx context.Context) error {
	el := h.el.Context(ctx).Timeout(h.timeout)
	defer el.CancelTimeout()

	return el.Click(proto.InputMouseButtonLeft, 1)
}

func attributePtr(el *rod.Element, name string) *string {
	if name == "" {
		return nil
	}
	value, err := el.Attribute(name)
	if err != nil {
		return nil
	}
	return value
}

func attribute(el *rod.Element, name string) string {
	if value := attributePtr(el, name); value != nil {
		return *value
	}
	return ""
}
