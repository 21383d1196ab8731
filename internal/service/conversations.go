package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/atharva-again/samvaad/internal/adapter"
	"github.com/atharva-again/samvaad/internal/logger"
	"github.com/atharva-again/samvaad/internal/state"
	"github.com/atharva-again/samvaad/internal/store"
	"github.com/atharva-again/samvaad/models"
)

// maxTitleLen bounds the title derived from the first message of a new
// conversation.
const maxTitleLen = 60

type conversationService struct {
	container *state.Container
	storages  *store.ClientStorages
	gateway   adapter.Gateway
	ids       IDGenerator

	persona    string
	strictMode bool

	mu          sync.Mutex
	listFetched bool
	loading     map[string]bool
	sendGen     uint64
	cancelSend  context.CancelFunc
}

// NewConversationService wires a ConversationService for the container's
// user. Persona and strictMode are forwarded with every send.
func NewConversationService(container *state.Container, storages *store.ClientStorages, gateway adapter.Gateway, ids IDGenerator, persona string, strictMode bool) ConversationService {
	return &conversationService{
		container:  container,
		storages:   storages,
		gateway:    gateway,
		ids:        ids,
		persona:    persona,
		strictMode: strictMode,
		loading:    make(map[string]bool),
	}
}

func (s *conversationService) SendMessage(ctx context.Context, text string) error {
	log := logger.FromContext(ctx)
	userID := s.container.UserID()
	now := time.Now().UTC()

	convID := s.container.ActiveConversationID()
	provisionalID := ""
	if convID == "" {
		provisionalID = s.ids.Generate()
		convID = provisionalID

		conv := models.Conversation{
			ID:        provisionalID,
			Title:     truncateTitle(text),
			Mode:      models.ModeText,
			CreatedAt: now,
			UpdatedAt: now,
		}
		s.container.UpsertConversation(conv)
		s.container.SetActiveConversationID(provisionalID)
		s.container.SetMessages(nil)

		if err := s.storages.Conversations.Save(ctx, userID, conv); err != nil {
			log.Warn().Err(err).Str("conversation_id", provisionalID).Msg("failed to cache provisional conversation")
		}
	}

	userMsg := models.Message{
		ID:             s.ids.Generate(),
		ConversationID: convID,
		Role:           models.RoleUser,
		Content:        text,
		CreatedAt:      now,
	}
	assistantMsgID := s.ids.Generate()

	s.container.AppendMessage(userMsg)
	s.container.UpdateFlags(func(f *state.Flags) {
		f.Generating = true
		f.MessagesError = ""
	})
	if err := s.storages.Messages.Append(ctx, userID, userMsg); err != nil {
		log.Warn().Err(err).Str("message_id", userMsg.ID).Msg("failed to cache user message")
	}
	s.setActivePointer(ctx, convID)

	callCtx, gen := s.beginSend(ctx)
	defer s.endSend(gen)

	resp, err := s.gateway.SendMessage(callCtx, models.SendMessageRequest{
		Text:               text,
		ConversationID:     convID,
		Persona:            s.persona,
		StrictMode:         s.strictMode,
		UserMessageID:      userMsg.ID,
		AssistantMessageID: assistantMsgID,
	})

	// A superseded call must not apply its late response: another send has
	// already taken ownership of the message list.
	if s.isSuperseded(gen) {
		return nil
	}

	if err != nil {
		if errors.Is(err, context.Canceled) {
			s.container.UpdateFlags(func(f *state.Flags) { f.Generating = false })
			return nil
		}
		s.rollbackSend(ctx, userID, provisionalID, userMsg.ID, err)
		return fmt.Errorf("send message: %w", err)
	}
	if !resp.Success {
		sendErr := errors.New(resp.Error)
		s.rollbackSend(ctx, userID, provisionalID, userMsg.ID, sendErr)
		return fmt.Errorf("send message rejected: %w", sendErr)
	}

	serverID := resp.ConversationID
	if serverID == "" {
		serverID = convID
	}
	if provisionalID != "" && serverID != provisionalID {
		s.container.ReconcileConversationID(provisionalID, serverID)
		if err = s.storages.Conversations.ReconcileID(ctx, userID, provisionalID, serverID); err != nil {
			log.Warn().Err(err).
				Str("provisional_id", provisionalID).
				Str("server_id", serverID).
				Msg("failed to reconcile conversation id in cache")
		}
	}

	assistantMsg := models.Message{
		ID:             assistantMsgID,
		ConversationID: serverID,
		Role:           models.RoleAssistant,
		Content:        resp.ResponseText,
		Sources:        resp.Sources,
		CreatedAt:      time.Now().UTC(),
	}
	s.container.AppendMessage(assistantMsg)
	s.container.UpdateFlags(func(f *state.Flags) { f.Generating = false })

	if err = s.storages.Messages.Append(ctx, userID, assistantMsg); err != nil {
		log.Warn().Err(err).Str("message_id", assistantMsgID).Msg("failed to cache assistant message")
	}
	s.bumpConversation(ctx, userID, serverID)

	return nil
}

func (s *conversationService) StopGeneration() {
	s.mu.Lock()
	cancel := s.cancelSend
	s.mu.Unlock()

	if cancel != nil {
		cancel()
	}
}

func (s *conversationService) LoadCached(ctx context.Context) error {
	userID := s.container.UserID()

	items, err := s.storages.Conversations.GetAll(ctx, userID)
	if err != nil {
		return fmt.Errorf("load cached conversations: %w", err)
	}
	if len(items) > 0 {
		s.container.SetConversations(items)
	}

	uiState, err := s.storages.UIState.Get(ctx, userID)
	if err != nil {
		return fmt.Errorf("load cached ui state: %w", err)
	}
	if uiState.ActiveConversationID != "" {
		s.container.SetActiveConversationID(uiState.ActiveConversationID)
		msgs, err := s.storages.Messages.GetForConversation(ctx, userID, uiState.ActiveConversationID)
		if err != nil {
			return fmt.Errorf("load cached messages: %w", err)
		}
		s.container.SetMessages(msgs)
	}

	return nil
}

func (s *conversationService) LoadConversations(ctx context.Context, force bool) error {
	s.mu.Lock()
	if s.listFetched && !force {
		s.mu.Unlock()
		return nil
	}
	s.mu.Unlock()

	s.container.UpdateFlags(func(f *state.Flags) {
		f.LoadingConversations = true
		f.ConversationsError = ""
	})

	items, err := s.gateway.ListConversations(ctx)
	if err != nil {
		s.container.UpdateFlags(func(f *state.Flags) {
			f.LoadingConversations = false
			f.ConversationsError = err.Error()
		})
		return fmt.Errorf("list conversations: %w", err)
	}

	s.mu.Lock()
	s.listFetched = true
	s.mu.Unlock()

	s.container.SetConversations(items)
	s.container.UpdateFlags(func(f *state.Flags) { f.LoadingConversations = false })

	userID := s.container.UserID()
	if err = s.storages.Conversations.ReplaceAll(ctx, userID, items); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Msg("failed to refresh conversation cache")
	}

	return nil
}

func (s *conversationService) LoadConversation(ctx context.Context, id string) error {
	s.mu.Lock()
	if s.loading[id] {
		s.mu.Unlock()
		return nil
	}
	s.loading[id] = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		delete(s.loading, id)
		s.mu.Unlock()
	}()

	log := logger.FromContext(ctx)
	userID := s.container.UserID()

	s.container.SetActiveConversationID(id)
	s.setActivePointer(ctx, id)

	if cached, err := s.storages.Messages.GetForConversation(ctx, userID, id); err == nil && len(cached) > 0 {
		s.container.SetMessages(cached)
	}

	s.container.UpdateFlags(func(f *state.Flags) {
		f.LoadingMessages = true
		f.MessagesError = ""
	})

	detail, err := s.gateway.GetConversation(ctx, id)
	if err != nil {
		// Previously loaded messages stay untouched on failure.
		s.container.UpdateFlags(func(f *state.Flags) {
			f.LoadingMessages = false
			f.MessagesError = err.Error()
		})
		return fmt.Errorf("get conversation: %w", err)
	}

	s.container.SetMessages(detail.Messages)
	s.container.UpsertConversation(detail.Conversation)
	s.container.UpdateFlags(func(f *state.Flags) { f.LoadingMessages = false })

	if err = s.storages.Messages.ReplaceForConversation(ctx, userID, id, detail.Messages); err != nil {
		log.Warn().Err(err).Str("conversation_id", id).Msg("failed to refresh message cache")
	}
	if err = s.storages.Conversations.Save(ctx, userID, detail.Conversation); err != nil {
		log.Warn().Err(err).Str("conversation_id", id).Msg("failed to refresh conversation cache")
	}

	return nil
}

func (s *conversationService) EditMessage(ctx context.Context, messageID string) error {
	convID := s.container.ActiveConversationID()
	if convID == "" {
		return ErrNoActiveConversation
	}

	index := -1
	for i, msg := range s.container.Messages() {
		if msg.ID == messageID {
			index = i
			break
		}
	}
	if index < 0 {
		return ErrMessageNotFound
	}

	keepIDs := s.container.TruncateMessagesAt(index)

	userID := s.container.UserID()
	if err := s.storages.Messages.ReplaceForConversation(ctx, userID, convID, s.container.Messages()); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("conversation_id", convID).Msg("failed to truncate message cache")
	}

	if err := s.gateway.TruncateMessages(ctx, convID, keepIDs); err != nil {
		// The local truncation stands: it is the user's rewrite intent.
		return fmt.Errorf("truncate messages: %w", err)
	}

	return nil
}

func (s *conversationService) Rename(ctx context.Context, id, title string) error {
	patch := models.ConversationPatch{Title: &title}

	return s.withRollback(ctx,
		func() { s.container.PatchConversation(id, patch) },
		func(cctx context.Context) error { return s.gateway.PatchConversation(cctx, id, patch) },
		func(cctx context.Context) error {
			return s.storages.Conversations.Patch(cctx, s.container.UserID(), id, patch)
		},
	)
}

func (s *conversationService) SetPinned(ctx context.Context, id string, pinned bool) error {
	patch := models.ConversationPatch{IsPinned: &pinned}

	return s.withRollback(ctx,
		func() { s.container.PatchConversation(id, patch) },
		func(cctx context.Context) error { return s.gateway.PatchConversation(cctx, id, patch) },
		func(cctx context.Context) error {
			return s.storages.Conversations.Patch(cctx, s.container.UserID(), id, patch)
		},
	)
}

func (s *conversationService) Delete(ctx context.Context, id string) error {
	wasActive := s.container.ActiveConversationID() == id

	return s.withRollback(ctx,
		func() { s.container.RemoveConversations(id) },
		func(cctx context.Context) error { return s.gateway.DeleteConversation(cctx, id) },
		func(cctx context.Context) error {
			if wasActive {
				s.setActivePointer(cctx, "")
			}
			return s.storages.Conversations.Delete(cctx, s.container.UserID(), id)
		},
	)
}

func (s *conversationService) DeleteSelected(ctx context.Context) error {
	ids := s.container.SelectedConversations()

	// Selection is cleared whether the batch commits or rolls back, so
	// already-deleted items are never re-offered.
	defer s.container.ClearConversationSelection()

	if len(ids) == 0 {
		return nil
	}

	activeID := s.container.ActiveConversationID()
	wasActive := false
	for _, id := range ids {
		if id == activeID {
			wasActive = true
			break
		}
	}

	return s.withRollback(ctx,
		func() { s.container.RemoveConversations(ids...) },
		func(cctx context.Context) error { return s.gateway.DeleteConversations(cctx, ids) },
		func(cctx context.Context) error {
			if wasActive {
				s.setActivePointer(cctx, "")
			}
			return s.storages.Conversations.DeleteBatch(cctx, s.container.UserID(), ids)
		},
	)
}

// withRollback is the snapshot/apply/commit-or-revert wrapper around every
// optimistic list mutation. The container mutation happens synchronously;
// the remote call follows; on remote failure the pre-mutation snapshot is
// restored verbatim and the returned error wraps [ErrRolledBack]. The local
// cache is only written through after the remote commit, so a rollback never
// has to touch it.
func (s *conversationService) withRollback(ctx context.Context, apply func(), remote func(context.Context) error, writeThrough func(context.Context) error) error {
	snapshot := s.container.SnapshotConversations()
	apply()

	if err := remote(ctx); err != nil {
		s.container.RestoreConversations(snapshot)
		return errors.Join(ErrRolledBack, err)
	}

	if err := writeThrough(ctx); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Msg("failed to write conversation mutation through to cache")
	}
	return nil
}

// beginSend registers a new outbound send, cancelling and superseding any
// call still in flight.
func (s *conversationService) beginSend(ctx context.Context) (context.Context, uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancelSend != nil {
		s.cancelSend()
	}

	callCtx, cancel := context.WithCancel(ctx)
	s.cancelSend = cancel
	s.sendGen++
	return callCtx, s.sendGen
}

func (s *conversationService) endSend(gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen == s.sendGen && s.cancelSend != nil {
		s.cancelSend()
		s.cancelSend = nil
	}
}

func (s *conversationService) isSuperseded(gen uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return gen != s.sendGen
}

func (s *conversationService) rollbackSend(ctx context.Context, userID, provisionalID, userMsgID string, cause error) {
	log := logger.FromContext(ctx)

	s.container.RemoveMessage(userMsgID)
	if err := s.storages.Messages.Delete(ctx, userID, userMsgID); err != nil {
		log.Warn().Err(err).Str("message_id", userMsgID).Msg("failed to remove cached user message")
	}

	if provisionalID != "" {
		s.container.RemoveConversations(provisionalID)
		if err := s.storages.Conversations.Delete(ctx, userID, provisionalID); err != nil {
			log.Warn().Err(err).Str("conversation_id", provisionalID).Msg("failed to remove cached provisional conversation")
		}
		s.setActivePointer(ctx, "")
	}

	s.container.UpdateFlags(func(f *state.Flags) {
		f.Generating = false
		f.MessagesError = cause.Error()
	})
}

// bumpConversation refreshes the list entry's update time and message count
// after a confirmed exchange.
func (s *conversationService) bumpConversation(ctx context.Context, userID, convID string) {
	for _, conv := range s.container.Conversations() {
		if conv.ID != convID {
			continue
		}
		conv.UpdatedAt = time.Now().UTC()
		conv.MessageCount = len(s.container.Messages())
		s.container.UpsertConversation(conv)
		if err := s.storages.Conversations.Save(ctx, userID, conv); err != nil {
			logger.FromContext(ctx).Warn().Err(err).Str("conversation_id", convID).Msg("failed to refresh conversation row")
		}
		return
	}
}

func (s *conversationService) setActivePointer(ctx context.Context, convID string) {
	userID := s.container.UserID()

	uiState, err := s.storages.UIState.Get(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Warn().Err(err).Msg("failed to read persisted ui state")
		return
	}
	uiState.ActiveConversationID = convID
	if err = s.storages.UIState.Save(ctx, userID, uiState); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Msg("failed to persist active conversation pointer")
	}
}

func truncateTitle(text string) string {
	runes := []rune(text)
	if len(runes) <= maxTitleLen {
		return text
	}
	return string(runes[:maxTitleLen])
}
