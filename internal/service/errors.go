package service

import "errors"

var (
	// ErrRolledBack wraps a transport failure that forced an optimistic
	// mutation to be reverted. The container has already been restored to
	// its pre-mutation snapshot when this is returned.
	ErrRolledBack = errors.New("optimistic mutation rolled back")

	// ErrFileTooLarge marks an upload candidate rejected client-side
	// before any hashing or network work.
	ErrFileTooLarge = errors.New("file exceeds upload size ceiling")

	// ErrProcessingFailed marks an upload whose bytes the server accepted
	// but whose downstream processing failed. The record stays visible in
	// error status.
	ErrProcessingFailed = errors.New("server-side processing failed")

	// ErrNoPendingDuplicate is returned when a duplicate resolution
	// addresses a filename that is not queued.
	ErrNoPendingDuplicate = errors.New("no pending duplicate for filename")

	// ErrMessageNotFound is returned when an edit addresses a message id
	// absent from the active conversation.
	ErrMessageNotFound = errors.New("message not found in active conversation")

	// ErrNoActiveConversation is returned when an operation requires an
	// open conversation and none is active.
	ErrNoActiveConversation = errors.New("no active conversation")
)
