package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/aws/aws-lambda-go/events"
	"github.com/google/uuid"

	"portfolio-assistant/internal/domain"
	"portfolio-assistant/internal/usecase"
)

const (
	correlationHeader       = "X-Correlation-Id"
	defaultMaxMessageLength = 2000
	contactSuccessMessage   = "Form submitted successfully"
)

type ChatResponder interface {
	Respond(ctx context.Context, in usecase.RespondInput) usecase.RespondOutput
}

type ContactSubmitter interface {
	Submit(ctx context.Context, in usecase.ContactInput) error
}

type Handler struct {
	chat             ChatResponder
	contact          ContactSubmitter
	maxMessageLength int
}

type Option func(*Handler)

func WithMaxMessageLength(n int) Option {
	return func(h *Handler) {
		if n > 0 {
			h.maxMessageLength = n
		}
	}
}

func NewHandler(chat ChatResponder, contact ContactSubmitter, opts ...Option) (*Handler, error) {
	if chat == nil {
		return nil, errors.New("handler: chat responder must not be nil")
	}
	if contact == nil {
		return nil, errors.New("handler: contact submitter must not be nil")
	}
	h := &Handler{chat: chat, contact: contact, maxMessageLength: defaultMaxMessageLength}
	for _, opt := range opts {
		opt(h)
	}
	return h, nil
}

type historyTurn struct {
	Sender string `json:"sender"`
	Text   string `json:"text"`
}

type chatRequest struct {
	Message             string        `json:"message"`
	ConversationHistory []historyTurn `json:"conversationHistory"`
}

type chatResponse struct {
	Response string `json:"response"`
}

type contactRequest struct {
	Form           string                `json:"form"`
	SubmissionData []domain.ContactField `json:"submissionData"`
	RecaptchaToken string                `json:"recaptchaToken"`
}

type contactResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// Handle serves API Gateway proxy events for POST .../chat and POST .../contact.
func (h *Handler) Handle(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	correlationID := headerValue(req.Headers, correlationHeader)
	if correlationID == "" {
		correlationID = uuid.NewString()
	}
	logger := slog.With("correlation_id", correlationID)

	path := strings.TrimRight(req.Path, "/")
	var (
		status int
		body   any
	)
	switch {
	case strings.HasSuffix(path, "/chat"):
		status, body = h.routeChat(ctx, logger, req)
	case strings.HasSuffix(path, "/contact"):
		status, body = h.routeContact(ctx, logger, req)
	default:
		status, body = http.StatusNotFound, errorResponse{Error: "NOT_FOUND", Message: "unknown route"}
	}
	return jsonResponse(status, correlationID, body), nil
}

func (h *Handler) routeChat(ctx context.Context, logger *slog.Logger, req events.APIGatewayProxyRequest) (int, any) {
	if req.HTTPMethod != http.MethodPost {
		return http.StatusMethodNotAllowed, errorResponse{Error: "METHOD_NOT_ALLOWED"}
	}
	body, err := eventBody(req)
	if err != nil {
		logger.Info("rejected chat request", "err", err)
		return http.StatusBadRequest, errorResponse{Error: string(usecase.ErrorInvalidInput), Message: "malformed_body"}
	}
	in, err := h.decodeChat(body)
	if err != nil {
		logger.Info("rejected chat request", "err", err)
		return errorStatus(err), errorBody(err)
	}
	out := h.chat.Respond(ctx, in)
	logger.Info("chat request served",
		"source", string(out.Source),
		"language", string(out.Language),
		"history", len(in.History),
	)
	return http.StatusOK, chatResponse{Response: out.Response}
}

func (h *Handler) decodeChat(body string) (usecase.RespondInput, error) {
	var payload chatRequest
	if err := json.Unmarshal([]byte(body), &payload); err != nil {
		return usecase.RespondInput{}, &usecase.Error{Code: usecase.ErrorInvalidInput, Reason: "malformed_body", Err: err}
	}
	message := strings.TrimSpace(payload.Message)
	if message == "" {
		return usecase.RespondInput{}, &usecase.Error{Code: usecase.ErrorInvalidInput, Reason: "empty_message"}
	}
	if utf8.RuneCountInString(message) > h.maxMessageLength {
		return usecase.RespondInput{}, &usecase.Error{Code: usecase.ErrorInvalidInput, Reason: "message_too_long"}
	}

	history := make([]domain.ConversationTurn, 0, len(payload.ConversationHistory))
	for _, turn := range payload.ConversationHistory {
		sender, ok := domain.ParseSender(turn.Sender)
		if !ok {
			return usecase.RespondInput{}, &usecase.Error{Code: usecase.ErrorInvalidInput, Reason: "invalid_history_sender"}
		}
		history = append(history, domain.ConversationTurn{Sender: sender, Text: turn.Text})
	}
	return usecase.RespondInput{Message: message, History: history}, nil
}

func (h *Handler) routeContact(ctx context.Context, logger *slog.Logger, req events.APIGatewayProxyRequest) (int, any) {
	if req.HTTPMethod != http.MethodPost {
		return http.StatusMethodNotAllowed, contactResponse{Error: "METHOD_NOT_ALLOWED"}
	}
	body, err := eventBody(req)
	if err != nil {
		logger.Info("rejected contact request", "err", err)
		return http.StatusBadRequest, contactResponse{Error: string(usecase.ErrorInvalidInput), Message: "malformed_body"}
	}
	var payload contactRequest
	if err := json.Unmarshal([]byte(body), &payload); err != nil {
		logger.Info("rejected contact request", "err", err)
		return http.StatusBadRequest, contactResponse{Error: string(usecase.ErrorInvalidInput), Message: "malformed_body"}
	}

	err = h.contact.Submit(ctx, usecase.ContactInput{
		Form:           payload.Form,
		Fields:         payload.SubmissionData,
		RecaptchaToken: payload.RecaptchaToken,
	})
	if err != nil {
		status := errorStatus(err)
		if status >= http.StatusInternalServerError {
			logger.Error("contact submission failed", "err", err)
		} else {
			logger.Info("contact submission rejected", "err", err)
		}
		eb := errorBody(err)
		return status, contactResponse{Error: eb.Error, Message: eb.Message}
	}
	return http.StatusOK, contactResponse{Success: true, Message: contactSuccessMessage}
}

// eventBody returns the raw request body, decoding it when API Gateway
// delivered it base64 encoded.
func eventBody(req events.APIGatewayProxyRequest) (string, error) {
	if !req.IsBase64Encoded {
		return req.Body, nil
	}
	raw, err := base64.StdEncoding.DecodeString(req.Body)
	if err != nil {
		return "", fmt.Errorf("handler: decode base64 body: %w", err)
	}
	return string(raw), nil
}

func errorStatus(err error) int {
	var ue *usecase.Error
	if !errors.As(err, &ue) {
		return http.StatusInternalServerError
	}
	switch ue.Code {
	case usecase.ErrorInvalidInput, usecase.ErrorVerificationFailed:
		return http.StatusBadRequest
	case usecase.ErrorRateLimited:
		return http.StatusTooManyRequests
	case usecase.ErrorUpstream:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func errorBody(err error) errorResponse {
	var ue *usecase.Error
	if !errors.As(err, &ue) {
		return errorResponse{Error: string(usecase.ErrorInternal)}
	}
	return errorResponse{Error: string(ue.Code), Message: ue.Reason}
}

func headerValue(headers map[string]string, name string) string {
	for k, v := range headers {
		if strings.EqualFold(k, name) {
			return strings.TrimSpace(v)
		}
	}
	return ""
}

func jsonResponse(status int, correlationID string, body any) events.APIGatewayProxyResponse {
	raw, err := json.Marshal(body)
	if err != nil {
		status = http.StatusInternalServerError
		raw = []byte(`{"error":"INTERNAL_ERROR"}`)
	}
	return events.APIGatewayProxyResponse{
		StatusCode: status,
		Headers: map[string]string{
			"Content-Type":    "application/json",
			correlationHeader: correlationID,
		},
		Body: string(raw),
	}
}
