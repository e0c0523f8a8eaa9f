package memory

// Roles used in the conversation log. The environment's replies are logged
// under RoleUser: from the model's point of view the environment speaks on
// the user side of the chat.
const (
	RoleSystem    = "system"
	RoleAssistant = "assistant"
	RoleUser      = "user"
)

// Message is one chat turn.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Conversation is the ordered turn history for one session.
type Conversation struct {
	msgs []Message
}

// NewConversation returns a log seeded with systemPrompt as turn zero, or an
// empty log when systemPrompt is empty.
func NewConversation(systemPrompt string) *Conversation {
	c := &Conversation{}
	if systemPrompt != "" {
		c.msgs = append(c.msgs, Message{Role: RoleSystem, Content: systemPrompt})
	}
	return c
}

func (c *Conversation) Append(role, content string) {
	c.msgs = append(c.msgs, Message{Role: role, Content: content})
}

// History returns a copy of the full turn sequence, oldest first.
func (c *Conversation) History() []Message {
	out := make([]Message, len(c.msgs))
	copy(out, c.msgs)
	return out
}

func (c *Conversation) Len() int {
	return len(c.msgs)
}

// Clear discards all turns. When newSystemPrompt is non-empty it becomes the
// fresh turn zero; otherwise an existing leading system turn is carried over
// verbatim.
func (c *Conversation) Clear(newSystemPrompt string) {
	var system *Message
	if newSystemPrompt != "" {
		system = &Message{Role: RoleSystem, Content: newSystemPrompt}
	} else if len(c.msgs) > 0 && c.msgs[0].Role == RoleSystem {
		first := c.msgs[0]
		system = &first
	}

	c.msgs = nil
	if system != nil {
		c.msgs = append(c.msgs, *system)
	}
}
