package widget

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func echoLink(text string) string { return "link:" + text }

func TestChatPanelsAreExclusive(t *testing.T) {
	c := ParseChat("", "")
	steps := []func(Chat) Chat{
		Chat.ToggleOptions,
		Chat.OpenWidget,
		Chat.ToggleOptions,
		Chat.ToggleOptions,
		Chat.Close,
		Chat.OpenWidget,
	}
	for _, step := range steps {
		c = step(c)
		assert.False(t, c.OptionsOpen() && c.WidgetOpen())
	}
	assert.True(t, c.WidgetOpen())
}

func TestChatToggleOptions(t *testing.T) {
	c := Chat{Panel: ChatClosed}.ToggleOptions()
	assert.Equal(t, ChatOptions, c.Panel)
	assert.Equal(t, ChatClosed, c.ToggleOptions().Panel)
}

func TestChatSend(t *testing.T) {
	c := Chat{Panel: ChatWidget, Draft: "Hello, I need help"}
	next, url, ok := c.Send(echoLink)
	assert.True(t, ok)
	assert.Equal(t, "link:Hello, I need help", url)
	assert.Equal(t, Chat{Panel: ChatClosed}, next)
}

func TestChatSendBlankIsNoop(t *testing.T) {
	for _, draft := range []string{"", "   ", "\n\t"} {
		c := Chat{Panel: ChatWidget, Draft: draft}
		next, url, ok := c.Send(echoLink)
		assert.False(t, ok)
		assert.Empty(t, url)
		assert.Equal(t, c, next)
	}
}

func TestParseChat(t *testing.T) {
	assert.Equal(t, Chat{Panel: ChatWidget, Draft: "hi"}, ParseChat("widget", "hi"))
	assert.Equal(t, Chat{Panel: ChatClosed}, ParseChat("other", ""))
	assert.Equal(t, "quick", ParseChat("widget", "").SetDraft("quick").Draft)
}
