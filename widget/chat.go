package widget

import "strings"

// ChatPanel is which part of the floating chat overlay is showing.
type ChatPanel string

const (
	ChatClosed  ChatPanel = "closed"
	ChatOptions ChatPanel = "options"
	ChatWidget  ChatPanel = "widget"
)

// Chat is the floating chat overlay: one panel at a time plus the message
// being typed in the widget.
type Chat struct {
	Panel ChatPanel
	Draft string
}

// ParseChat restores a chat from the "panel" and "draft" query values.
func ParseChat(panel, draft string) Chat {
	c := Chat{Panel: ChatClosed, Draft: draft}
	switch p := ChatPanel(panel); p {
	case ChatOptions, ChatWidget:
		c.Panel = p
	}
	return c
}

// ToggleOptions opens the options list, or closes it when already open.
func (c Chat) ToggleOptions() Chat {
	if c.Panel == ChatOptions {
		c.Panel = ChatClosed
	} else {
		c.Panel = ChatOptions
	}
	return c
}

// OpenWidget shows the message widget, hiding the options list.
func (c Chat) OpenWidget() Chat {
	c.Panel = ChatWidget
	return c
}

// Close hides the overlay. The draft is kept.
func (c Chat) Close() Chat {
	c.Panel = ChatClosed
	return c
}

// SetDraft replaces the message being typed.
func (c Chat) SetDraft(s string) Chat {
	c.Draft = s
	return c
}

// Send hands the draft to link and resets the overlay. A blank draft is
// not sent and leaves the chat unchanged.
func (c Chat) Send(link func(text string) string) (Chat, string, bool) {
	if strings.TrimSpace(c.Draft) == "" {
		return c, "", false
	}
	url := link(c.Draft)
	return Chat{Panel: ChatClosed}, url, true
}

// OptionsOpen reports whether the options list is showing.
func (c Chat) OptionsOpen() bool { return c.Panel == ChatOptions }

// WidgetOpen reports whether the message widget is showing.
func (c Chat) WidgetOpen() bool { return c.Panel == ChatWidget }
