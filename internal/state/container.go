// Package state holds the in-memory reactive state that both
// synchronization units publish to and that the UI layer subscribes to.
//
// A [Container] is created once per authenticated session and cleared
// entirely on sign-out; it is never shared across users. The UI reads
// through accessor methods and subscribes to change notifications; all
// mutation goes through the synchronization services, never direct field
// assignment.
package state

import (
	"sync"

	"github.com/atharva-again/samvaad/models"
)

// EventKind identifies which part of the container changed.
type EventKind int

const (
	EventConversations EventKind = iota
	EventMessages
	EventFiles
	EventFlags
)

// Event is one change notification delivered to subscribers.
type Event struct {
	Kind EventKind
}

// CollisionKind classifies a detected upload duplicate.
type CollisionKind int

const (
	// CollisionName means an existing record already carries the
	// candidate's filename (content differs).
	CollisionName CollisionKind = iota
	// CollisionContent means an existing record already carries the
	// candidate's content digest under a different name.
	CollisionContent
)

// PendingDuplicate is an upload candidate held back because it collided
// with an existing record. It stays queued until the user chooses to
// replace the existing record or keep both.
type PendingDuplicate struct {
	Upload     models.FileUpload
	Digest     string
	Kind       CollisionKind
	ExistingID string
}

// Flags are the fine-grained loading/error indicators exposed to the UI.
type Flags struct {
	LoadingConversations bool
	LoadingMessages      bool
	LoadingFiles         bool
	Generating           bool

	ConversationsError string
	MessagesError      string
	FilesError         string
}

// Container is the observable state of one authenticated session.
type Container struct {
	mu sync.RWMutex

	userID string

	conversations []models.Conversation
	activeID      string
	messages      []models.Message

	files      []models.FileRecord
	duplicates []PendingDuplicate

	selection     map[string]struct{}
	fileSelection map[string]struct{}

	flags Flags

	subs []chan Event
}

// NewContainer builds an empty container scoped to userID.
func NewContainer(userID string) *Container {
	return &Container{
		userID:        userID,
		selection:     make(map[string]struct{}),
		fileSelection: make(map[string]struct{}),
	}
}

// UserID returns the id of the user this container belongs to.
func (c *Container) UserID() string {
	return c.userID
}

// Subscribe returns a channel receiving one Event per state change. Slow
// subscribers miss events rather than blocking mutations.
func (c *Container) Subscribe() <-chan Event {
	c.mu.Lock()
	defer c.mu.Unlock()

	ch := make(chan Event, 16)
	c.subs = append(c.subs, ch)
	return ch
}

func (c *Container) emit(kind EventKind) {
	for _, ch := range c.subs {
		select {
		case ch <- Event{Kind: kind}:
		default:
		}
	}
}

// Reset clears every field of the container. Called on sign-out.
func (c *Container) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.conversations = nil
	c.activeID = ""
	c.messages = nil
	c.files = nil
	c.duplicates = nil
	c.selection = make(map[string]struct{})
	c.fileSelection = make(map[string]struct{})
	c.flags = Flags{}

	c.emit(EventConversations)
	c.emit(EventMessages)
	c.emit(EventFiles)
	c.emit(EventFlags)
}
