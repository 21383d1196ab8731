package state

import (
	"sort"

	"github.com/atharva-again/samvaad/models"
)

// Files returns a copy of the current file list.
func (c *Container) Files() []models.FileRecord {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return cloneFiles(c.files)
}

// SetFiles replaces the file list wholesale (full-sync result).
func (c *Container) SetFiles(items []models.FileRecord) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.files = cloneFiles(items)
	c.emit(EventFiles)
}

// UpsertFile inserts rec or overwrites the entry with the same id.
func (c *Container) UpsertFile(rec models.FileRecord) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.files {
		if c.files[i].ID == rec.ID {
			c.files[i] = rec
			c.emit(EventFiles)
			return
		}
	}

	c.files = append(c.files, rec)
	c.emit(EventFiles)
}

// ReplaceFile swaps the entry with oldID for rec in place, keeping list
// position. Used when a provisional upload is confirmed under a
// server-assigned id. Queued duplicates that collided with the provisional
// record are re-pointed at the confirmed id.
func (c *Container) ReplaceFile(oldID string, rec models.FileRecord) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.duplicates {
		if c.duplicates[i].ExistingID == oldID {
			c.duplicates[i].ExistingID = rec.ID
		}
	}

	for i := range c.files {
		if c.files[i].ID == oldID {
			c.files[i] = rec
			c.emit(EventFiles)
			return
		}
	}

	c.files = append(c.files, rec)
	c.emit(EventFiles)
}

// RemoveFiles drops every entry whose id is in ids and clears any selection
// referencing them.
func (c *Container) RemoveFiles(ids ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	drop := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		drop[id] = struct{}{}
		delete(c.fileSelection, id)
	}

	kept := c.files[:0]
	for _, rec := range c.files {
		if _, ok := drop[rec.ID]; !ok {
			kept = append(kept, rec)
		}
	}
	c.files = kept
	c.emit(EventFiles)
}

// FindFileByName returns the record carrying filename, if any. Both synced
// and still-uploading records count: a candidate colliding with an in-flight
// twin is a collision all the same. Error-status records do not block a
// re-upload under the same name.
func (c *Container) FindFileByName(filename string) (models.FileRecord, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, rec := range c.files {
		if rec.Status != models.StatusError && rec.Filename == filename {
			return rec, true
		}
	}
	return models.FileRecord{}, false
}

// FindFileByDigest returns the record carrying the content digest, if any.
// Synced and uploading records both count, error-status records do not.
func (c *Container) FindFileByDigest(digest string) (models.FileRecord, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if digest == "" {
		return models.FileRecord{}, false
	}
	for _, rec := range c.files {
		if rec.Status != models.StatusError && rec.ContentHash == digest {
			return rec, true
		}
	}
	return models.FileRecord{}, false
}

// QueueDuplicate parks a colliding upload candidate until the user resolves
// it. Conflicts are never auto-resolved.
func (c *Container) QueueDuplicate(dup PendingDuplicate) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.duplicates = append(c.duplicates, dup)
	c.emit(EventFiles)
}

// PendingDuplicates returns the queued collisions awaiting a user decision.
func (c *Container) PendingDuplicates() []PendingDuplicate {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]PendingDuplicate, len(c.duplicates))
	copy(out, c.duplicates)
	return out
}

// TakeDuplicate removes and returns the queued duplicate for filename.
func (c *Container) TakeDuplicate(filename string) (PendingDuplicate, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, dup := range c.duplicates {
		if dup.Upload.Filename == filename {
			c.duplicates = append(c.duplicates[:i], c.duplicates[i+1:]...)
			c.emit(EventFiles)
			return dup, true
		}
	}
	return PendingDuplicate{}, false
}

// ToggleFileSelected flips id in or out of the file selection set.
func (c *Container) ToggleFileSelected(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.fileSelection[id]; ok {
		delete(c.fileSelection, id)
	} else {
		c.fileSelection[id] = struct{}{}
	}
	c.emit(EventFiles)
}

// SelectedFiles returns the file ids currently selected.
func (c *Container) SelectedFiles() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	ids := make([]string, 0, len(c.fileSelection))
	for id := range c.fileSelection {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// ClearFileSelection empties the file selection set.
func (c *Container) ClearFileSelection() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.fileSelection = make(map[string]struct{})
	c.emit(EventFiles)
}

// Flags returns a copy of the current loading/error indicators.
func (c *Container) Flags() Flags {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.flags
}

// UpdateFlags applies fn to the flags under the container lock.
func (c *Container) UpdateFlags(fn func(*Flags)) {
	c.mu.Lock()
	defer c.mu.Unlock()

	fn(&c.flags)
	c.emit(EventFlags)
}

func cloneFiles(items []models.FileRecord) []models.FileRecord {
	if items == nil {
		return nil
	}
	out := make([]models.FileRecord, len(items))
	copy(out, items)
	return out
}
