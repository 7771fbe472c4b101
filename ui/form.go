package ui

import (
	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/starfield/contact"
	"github.com/pthm-cable/starfield/site"
)

// Maximum field lengths accepted by the text boxes.
const (
	emailCap   = 128
	messageCap = 1024
)

// ContactForm draws the contact form with raygui widgets and feeds edits
// back into the form model.
type ContactForm struct {
	renderer    *Renderer
	editEmail   bool
	editMessage bool
}

// NewContactForm creates the form widget.
func NewContactForm() *ContactForm {
	return &ContactForm{renderer: NewRenderer()}
}

// Editing reports whether a text box currently has keyboard focus.
func (c *ContactForm) Editing() bool {
	return c.editEmail || c.editMessage
}

// Draw renders the form at its page layout offset by scrollY. submit is
// called when the send button is pressed.
func (c *ContactForm) Draw(layout site.FormLayout, scrollY, screenH float32, form *contact.Form, submit func()) {
	bounds := toScreen(layout.Bounds, scrollY)
	if bounds.Y > screenH || bounds.Y+bounds.Height < 0 {
		c.editEmail, c.editMessage = false, false
		return
	}
	theme := c.renderer.Theme

	email := toScreen(layout.Email, scrollY)
	rl.DrawText("YOUR EMAIL", int32(email.X), int32(email.Y)-20, theme.FontSize, theme.LabelColor)
	c.drawFieldFrame(email, c.editEmail)
	text := form.Email
	if gui.TextBox(inset(email), &text, emailCap, c.editEmail) {
		c.editEmail = !c.editEmail
		if c.editEmail {
			c.editMessage = false
		}
	}
	if text != form.Email {
		form.SetEmail(text)
	}

	message := toScreen(layout.Message, scrollY)
	rl.DrawText("MESSAGE", int32(message.X), int32(message.Y)-20, theme.FontSize, theme.LabelColor)
	c.drawFieldFrame(message, c.editMessage)
	text = form.Message
	if gui.TextBox(inset(message), &text, messageCap, c.editMessage) {
		c.editMessage = !c.editMessage
		if c.editMessage {
			c.editEmail = false
		}
	}
	if text != form.Message {
		form.SetMessage(text)
	}

	status := toScreen(layout.Status, scrollY)
	switch {
	case form.Err() != nil:
		rl.DrawText(form.Err().Error(), int32(status.X), int32(status.Y), theme.HeaderFontSize, theme.ErrorText)
	case form.State() == contact.Success:
		rl.DrawText("Redirecting to email client...", int32(status.X), int32(status.Y), theme.HeaderFontSize, theme.SuccessText)
	}

	button := toScreen(layout.Submit, scrollY)
	label := "Send Message"
	submitting := form.State() == contact.Submitting
	if submitting {
		label = "Sending..."
		gui.Disable()
	}
	if gui.Button(button, label) && !submitting {
		c.editEmail, c.editMessage = false, false
		submit()
	}
	if submitting {
		gui.Enable()
	}
}

// drawFieldFrame draws the underlay and border behind a text box.
func (c *ContactForm) drawFieldFrame(r rl.Rectangle, focused bool) {
	theme := c.renderer.Theme
	border := theme.InputBorder
	if focused {
		border = theme.InputFocus
	}
	rl.DrawRectangleRec(r, theme.InputBg)
	rl.DrawRectangleLinesEx(r, 1, border)
}

func toScreen(r site.Rect, scrollY float32) rl.Rectangle {
	return rl.Rectangle{X: r.X, Y: r.Y - scrollY, Width: r.W, Height: r.H}
}

func inset(r rl.Rectangle) rl.Rectangle {
	return rl.Rectangle{X: r.X + 4, Y: r.Y + 4, Width: r.Width - 8, Height: r.Height - 8}
}
