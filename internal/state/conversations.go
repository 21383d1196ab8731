package state

import (
	"sort"

	"github.com/atharva-again/samvaad/models"
)

// Conversations returns a copy of the current conversation list.
func (c *Container) Conversations() []models.Conversation {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return cloneConversations(c.conversations)
}

// SetConversations replaces the conversation list and re-sorts it.
func (c *Container) SetConversations(items []models.Conversation) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.conversations = cloneConversations(items)
	sortConversations(c.conversations)
	c.emit(EventConversations)
}

// ConversationSnapshot is a deep copy of everything an optimistic list
// mutation can touch: the list itself, the active pointer, and the open
// conversation's messages.
type ConversationSnapshot struct {
	Conversations []models.Conversation
	ActiveID      string
	Messages      []models.Message
}

// SnapshotConversations captures the conversation state for rollback. The
// snapshot is taken at call time, so a later RestoreConversations brings the
// container back to exactly this state, the active pointer and message list
// included.
func (c *Container) SnapshotConversations() ConversationSnapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return ConversationSnapshot{
		Conversations: cloneConversations(c.conversations),
		ActiveID:      c.activeID,
		Messages:      cloneMessages(c.messages),
	}
}

// RestoreConversations replaces the conversation state with a previously
// taken snapshot verbatim, without re-sorting: the snapshot already carries
// the order the user last saw.
func (c *Container) RestoreConversations(snapshot ConversationSnapshot) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.conversations = cloneConversations(snapshot.Conversations)
	c.activeID = snapshot.ActiveID
	c.messages = cloneMessages(snapshot.Messages)
	c.emit(EventConversations)
	c.emit(EventMessages)
}

// UpsertConversation inserts conv or overwrites the entry with the same id,
// then re-sorts the list.
func (c *Container) UpsertConversation(conv models.Conversation) {
	c.mu.Lock()
	defer c.mu.Unlock()

	replaced := false
	for i := range c.conversations {
		if c.conversations[i].ID == conv.ID {
			c.conversations[i] = conv
			replaced = true
			break
		}
	}
	if !replaced {
		c.conversations = append(c.conversations, conv)
	}

	sortConversations(c.conversations)
	c.emit(EventConversations)
}

// PatchConversation applies a partial update to the entry with the given id
// and re-sorts, so a pin change moves the entry immediately.
func (c *Container) PatchConversation(id string, patch models.ConversationPatch) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.conversations {
		if c.conversations[i].ID != id {
			continue
		}
		if patch.Title != nil {
			c.conversations[i].Title = *patch.Title
		}
		if patch.IsPinned != nil {
			c.conversations[i].IsPinned = *patch.IsPinned
		}
		break
	}

	sortConversations(c.conversations)
	c.emit(EventConversations)
}

// RemoveConversations drops every entry whose id is in ids. When the active
// conversation is removed, the active pointer and message list are cleared
// too.
func (c *Container) RemoveConversations(ids ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	drop := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		drop[id] = struct{}{}
	}

	kept := c.conversations[:0]
	for _, conv := range c.conversations {
		if _, ok := drop[conv.ID]; !ok {
			kept = append(kept, conv)
		}
	}
	c.conversations = kept

	if _, ok := drop[c.activeID]; ok {
		c.activeID = ""
		c.messages = nil
		c.emit(EventMessages)
	}

	c.emit(EventConversations)
}

// ReconcileConversationID rewrites every reference to provisionalID — the
// list entry, the active pointer, and message parent ids — to serverID in
// one step. A single logical rename, not delete+insert, so the UI never
// observes the entry disappearing.
func (c *Container) ReconcileConversationID(provisionalID, serverID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.conversations {
		if c.conversations[i].ID == provisionalID {
			c.conversations[i].ID = serverID
			break
		}
	}
	if c.activeID == provisionalID {
		c.activeID = serverID
	}
	for i := range c.messages {
		if c.messages[i].ConversationID == provisionalID {
			c.messages[i].ConversationID = serverID
		}
	}

	c.emit(EventConversations)
	c.emit(EventMessages)
}

// ActiveConversationID returns the id of the currently open conversation,
// or an empty string when none is open.
func (c *Container) ActiveConversationID() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.activeID
}

// SetActiveConversationID points the container at another conversation.
func (c *Container) SetActiveConversationID(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.activeID = id
	c.emit(EventConversations)
}

// Messages returns a copy of the active conversation's message list in
// insertion order.
func (c *Container) Messages() []models.Message {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return cloneMessages(c.messages)
}

// SetMessages replaces the active message list, preserving the given order.
func (c *Container) SetMessages(msgs []models.Message) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.messages = cloneMessages(msgs)
	c.emit(EventMessages)
}

// AppendMessage adds msg to the end of the active message list. Messages
// are never re-sorted after insertion.
func (c *Container) AppendMessage(msg models.Message) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.messages = append(c.messages, msg)
	c.emit(EventMessages)
}

// RemoveMessage drops the message with the given id from the active list.
func (c *Container) RemoveMessage(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	kept := c.messages[:0]
	for _, msg := range c.messages {
		if msg.ID != id {
			kept = append(kept, msg)
		}
	}
	c.messages = kept
	c.emit(EventMessages)
}

// TruncateMessagesAt keeps only the messages before index and returns the
// ids of the retained prefix, in order.
func (c *Container) TruncateMessagesAt(index int) []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	if index < 0 {
		index = 0
	}
	if index > len(c.messages) {
		index = len(c.messages)
	}

	c.messages = c.messages[:index]
	keep := make([]string, 0, index)
	for _, msg := range c.messages {
		keep = append(keep, msg.ID)
	}

	c.emit(EventMessages)
	return keep
}

// ToggleConversationSelected flips id in or out of the batch-delete
// selection set.
func (c *Container) ToggleConversationSelected(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.selection[id]; ok {
		delete(c.selection, id)
	} else {
		c.selection[id] = struct{}{}
	}
	c.emit(EventConversations)
}

// SelectedConversations returns the ids currently selected for batch
// operations.
func (c *Container) SelectedConversations() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	ids := make([]string, 0, len(c.selection))
	for id := range c.selection {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// ClearConversationSelection empties the selection set. Called on batch
// commit regardless of outcome, so already-deleted items are never
// re-offered.
func (c *Container) ClearConversationSelection() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.selection = make(map[string]struct{})
	c.emit(EventConversations)
}

// sortConversations orders pinned items before unpinned ones, secondarily
// by last-update time descending.
func sortConversations(items []models.Conversation) {
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].IsPinned != items[j].IsPinned {
			return items[i].IsPinned
		}
		return items[i].UpdatedAt.After(items[j].UpdatedAt)
	})
}

func cloneConversations(items []models.Conversation) []models.Conversation {
	if items == nil {
		return nil
	}
	out := make([]models.Conversation, len(items))
	copy(out, items)
	return out
}

func cloneMessages(items []models.Message) []models.Message {
	if items == nil {
		return nil
	}
	out := make([]models.Message, len(items))
	for i, msg := range items {
		if len(msg.Sources) > 0 {
			sources := make([]models.Source, len(msg.Sources))
			copy(sources, msg.Sources)
			msg.Sources = sources
		}
		out[i] = msg
	}
	return out
}
