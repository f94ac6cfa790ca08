package hed

import "time"

// StatusCategory selects the style a message is rendered with.
type StatusCategory int

const (
	StatusNormal StatusCategory = iota
	StatusSearch
	StatusError
)

// statusTTL is how long a normal message stays on the message bar.
const statusTTL = 5 * time.Second

// StatusMessage is a single line shown on the message bar.
type StatusMessage struct {
	Text       string
	Category   StatusCategory
	At         time.Time
	Persistent bool
}

func statusInfo(text string) StatusMessage {
	return StatusMessage{Text: text, Category: StatusNormal, At: time.Now()}
}

// statusSearch messages stick around until the search mode ends.
func statusSearch(text string) StatusMessage {
	return StatusMessage{Text: text, Category: StatusSearch, At: time.Now(), Persistent: true}
}

func statusError(text string) StatusMessage {
	return StatusMessage{Text: text, Category: StatusError, At: time.Now(), Persistent: true}
}

// Expired reports whether the message should be dropped from the bar.
func (m StatusMessage) Expired(now time.Time) bool {
	if m.Persistent {
		return false
	}
	return now.Sub(m.At) > statusTTL
}
