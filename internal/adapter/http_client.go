package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/atharva-again/samvaad/models"
)

// HTTPGatewayConfig carries the settings needed to construct the HTTP
// gateway implementation.
type HTTPGatewayConfig struct {
	BaseURL string
	Token   string
	Timeout time.Duration
}

type httpGateway struct {
	client *resty.Client

	mu    sync.RWMutex
	token string
}

// NewHTTPGateway builds a [Gateway] backed by a resty HTTP client. An empty
// timeout falls back to 15 seconds.
func NewHTTPGateway(cfg HTTPGatewayConfig) Gateway {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &httpGateway{client: cli, token: strings.TrimSpace(cfg.Token)}
}

func (h *httpGateway) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpGateway) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpGateway) SendMessage(ctx context.Context, req models.SendMessageRequest) (models.SendMessageResponse, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/chat/messages")
	if err != nil {
		return models.SendMessageResponse{}, fmt.Errorf("send message request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SendMessageResponse{}, err
	}

	var out models.SendMessageResponse
	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return models.SendMessageResponse{}, fmt.Errorf("decode send message response: %w", err)
	}
	return out, nil
}

func (h *httpGateway) ListConversations(ctx context.Context) ([]models.Conversation, error) {
	resp, err := h.authedRequest(ctx).Get("/api/conversations")
	if err != nil {
		return nil, fmt.Errorf("list conversations request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var items []models.Conversation
	if err = json.Unmarshal(resp.Body(), &items); err != nil {
		return nil, fmt.Errorf("decode conversations response: %w", err)
	}
	return items, nil
}

func (h *httpGateway) CreateConversation(ctx context.Context, title string, mode models.ConversationMode) (models.Conversation, error) {
	body := map[string]any{"title": title, "mode": mode}

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post("/api/conversations")
	if err != nil {
		return models.Conversation{}, fmt.Errorf("create conversation request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Conversation{}, err
	}

	var out models.Conversation
	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return models.Conversation{}, fmt.Errorf("decode create conversation response: %w", err)
	}
	return out, nil
}

func (h *httpGateway) GetConversation(ctx context.Context, id string) (models.ConversationDetail, error) {
	resp, err := h.authedRequest(ctx).Get("/api/conversations/" + id)
	if err != nil {
		return models.ConversationDetail{}, fmt.Errorf("get conversation request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ConversationDetail{}, err
	}

	var out models.ConversationDetail
	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return models.ConversationDetail{}, fmt.Errorf("decode conversation response: %w", err)
	}
	return out, nil
}

func (h *httpGateway) PatchConversation(ctx context.Context, id string, patch models.ConversationPatch) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(patch).
		Patch("/api/conversations/" + id)
	if err != nil {
		return fmt.Errorf("patch conversation request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpGateway) DeleteConversation(ctx context.Context, id string) error {
	resp, err := h.authedRequest(ctx).Delete("/api/conversations/" + id)
	if err != nil {
		return fmt.Errorf("delete conversation request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpGateway) DeleteConversations(ctx context.Context, ids []string) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string][]string{"ids": ids}).
		Post("/api/conversations/batch-delete")
	if err != nil {
		return fmt.Errorf("batch delete conversations request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpGateway) TruncateMessages(ctx context.Context, conversationID string, keepIDs []string) error {
	req := models.TruncateRequest{ConversationID: conversationID, KeepIDs: keepIDs}

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/conversations/" + conversationID + "/truncate")
	if err != nil {
		return fmt.Errorf("truncate messages request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpGateway) ListFiles(ctx context.Context) ([]models.FileRecord, error) {
	resp, err := h.authedRequest(ctx).Get("/api/files")
	if err != nil {
		return nil, fmt.Errorf("list files request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var items []models.FileRecord
	if err = json.Unmarshal(resp.Body(), &items); err != nil {
		return nil, fmt.Errorf("decode files response: %w", err)
	}
	return items, nil
}

func (h *httpGateway) UploadFile(ctx context.Context, upload models.FileUpload) (models.UploadFileResponse, error) {
	resp, err := h.authedRequest(ctx).
		SetFileReader("file", upload.Filename, bytes.NewReader(upload.Data)).
		SetFormData(map[string]string{"file_type": upload.FileType}).
		Post("/api/files")
	if err != nil {
		return models.UploadFileResponse{}, fmt.Errorf("upload file request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UploadFileResponse{}, err
	}

	var out models.UploadFileResponse
	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return models.UploadFileResponse{}, fmt.Errorf("decode upload response: %w", err)
	}
	return out, nil
}

func (h *httpGateway) DeleteFile(ctx context.Context, id string) error {
	resp, err := h.authedRequest(ctx).Delete("/api/files/" + id)
	if err != nil {
		return fmt.Errorf("delete file request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpGateway) DeleteFiles(ctx context.Context, ids []string) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string][]string{"ids": ids}).
		Post("/api/files/batch-delete")
	if err != nil {
		return fmt.Errorf("batch delete files request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpGateway) RenameFile(ctx context.Context, id string, name string) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"filename": name}).
		Patch("/api/files/" + id)
	if err != nil {
		return fmt.Errorf("rename file request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpGateway) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))

	switch resp.StatusCode() {
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusConflict:
		return ErrConflict
	}

	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}
	return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
}
