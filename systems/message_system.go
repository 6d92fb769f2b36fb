package systems

// MessageType classifies a log message so the frontend can color it
type MessageType int

const (
	MessageTypeNormal MessageType = iota
	MessageTypeCombat
	MessageTypeItem
	MessageTypeAlert
)

// LogEntry is one line of the game log
type LogEntry struct {
	Text string
	Type MessageType
}

// GameLog stores the narrative messages shown to the player
type GameLog struct {
	Messages    []LogEntry
	MaxMessages int
}

// NewGameLog creates a new game log keeping at most capacity messages
func NewGameLog(capacity int) *GameLog {
	if capacity <= 0 {
		capacity = 100
	}
	return &GameLog{
		Messages:    []LogEntry{},
		MaxMessages: capacity,
	}
}

// Add adds a normal message to the log
func (gl *GameLog) Add(message string) {
	gl.AddTyped(message, MessageTypeNormal)
}

// AddCombat adds a combat message
func (gl *GameLog) AddCombat(message string) {
	gl.AddTyped(message, MessageTypeCombat)
}

// AddItem adds an item-related message
func (gl *GameLog) AddItem(message string) {
	gl.AddTyped(message, MessageTypeItem)
}

// AddAlert adds an important alert
func (gl *GameLog) AddAlert(message string) {
	gl.AddTyped(message, MessageTypeAlert)
}

// AddTyped adds a message of the given type
func (gl *GameLog) AddTyped(message string, messageType MessageType) {
	gl.Messages = append(gl.Messages, LogEntry{Text: message, Type: messageType})

	// Truncate if we have too many messages
	if len(gl.Messages) > gl.MaxMessages {
		gl.Messages = gl.Messages[len(gl.Messages)-gl.MaxMessages:]
	}
}

// RecentMessages gets the n most recent messages, newest first
func (gl *GameLog) RecentMessages(n int) []LogEntry {
	if n > len(gl.Messages) {
		n = len(gl.Messages)
	}

	result := make([]LogEntry, n)
	for i := 0; i < n; i++ {
		result[i] = gl.Messages[len(gl.Messages)-1-i]
	}

	return result
}

// Last returns the text of the newest message, or "" if the log is empty
func (gl *GameLog) Last() string {
	if len(gl.Messages) == 0 {
		return ""
	}
	return gl.Messages[len(gl.Messages)-1].Text
}

// Contains reports whether any message has exactly this text
func (gl *GameLog) Contains(text string) bool {
	for _, m := range gl.Messages {
		if m.Text == text {
			return true
		}
	}
	return false
}

// Clear clears all messages
func (gl *GameLog) Clear() {
	gl.Messages = []LogEntry{}
}
