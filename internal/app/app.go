// Package app wires configuration into the chat and contact services shared by
// the Lambda and CLI entrypoints.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awsssm "github.com/aws/aws-sdk-go-v2/service/ssm"

	"portfolio-assistant/handler"
	"portfolio-assistant/internal/config"
	"portfolio-assistant/internal/fallback"
	"portfolio-assistant/internal/integrations/openai"
	"portfolio-assistant/internal/integrations/paramstore"
	"portfolio-assistant/internal/integrations/recaptcha"
	"portfolio-assistant/internal/integrations/resend"
	"portfolio-assistant/internal/usecase"
)

const (
	resendTokenParam     = "resend-token"
	recaptchaSecretParam = "recaptcha-secret"
)

type App struct {
	Chat    *usecase.ChatService
	Contact *usecase.ContactService
	Handler *handler.Handler
}

// NewLogger returns the JSON logger used by every entrypoint.
func NewLogger(level slog.Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// ParamStore returns an SSM-backed getter, or nil when no prefix is configured.
func ParamStore(ctx context.Context, cfg config.Config) (paramstore.Getter, error) {
	if !cfg.UsesParamStore() {
		return nil, nil
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("app: load AWS config: %w", err)
	}
	client, err := paramstore.New(awsssm.NewFromConfig(awsCfg))
	if err != nil {
		return nil, fmt.Errorf("app: create SSM client: %w", err)
	}
	return client, nil
}

// New builds the services. getter may be nil, in which case every secret must
// come from cfg.
func New(cfg config.Config, getter paramstore.Getter) (*App, error) {
	openaiOpts := []openai.Option{
		openai.WithAPIKey(cfg.OpenAIAPIKey),
		openai.WithBaseURL(cfg.OpenAIBaseURL),
		openai.WithModel(cfg.OpenAIModel),
	}
	chatOpts := []usecase.ChatOption{
		usecase.WithMaxContextItems(cfg.MaxContextItems),
		usecase.WithGenerateTimeout(cfg.GenerateTimeout),
	}
	if getter != nil {
		openaiOpts = append(openaiOpts, openai.WithParamStore(getter, cfg.ParamPrefix))
		chatOpts = append(chatOpts, usecase.WithParams(getter, cfg.ParamPrefix))
	}

	generator, err := openai.NewClient(openaiOpts...)
	if err != nil {
		return nil, err
	}
	if !generator.Configured() {
		slog.Warn("no OpenAI key source configured, every reply will use the fallback corpus")
	}
	chat, err := usecase.NewChatService(generator, fallback.DefaultCorpus(), chatOpts...)
	if err != nil {
		return nil, err
	}

	notifier := resend.NewNotifier(
		secret(cfg.ResendAPIKey, getter, cfg.ParamPrefix, resendTokenParam),
		resend.WithFrom(cfg.ResendFromEmail),
		resend.WithRecipient(cfg.NotificationEmail),
	)
	contactOpts := []usecase.ContactOption{usecase.WithRecipient(cfg.NotificationEmail)}
	if s := secret(cfg.RecaptchaSecretKey, getter, cfg.ParamPrefix, recaptchaSecretParam); s.Configured() {
		verifier, err := recaptcha.NewClient(s, recaptcha.WithMinScore(cfg.RecaptchaMinScore))
		if err != nil {
			return nil, err
		}
		contactOpts = append(contactOpts, usecase.WithVerifier(verifier))
	} else {
		slog.Warn("reCAPTCHA secret not configured, contact submissions are not bot-checked")
	}
	contact, err := usecase.NewContactService(notifier, contactOpts...)
	if err != nil {
		return nil, err
	}

	h, err := handler.NewHandler(chat, contact, handler.WithMaxMessageLength(cfg.MaxMessageLength))
	if err != nil {
		return nil, err
	}
	return &App{Chat: chat, Contact: contact, Handler: h}, nil
}

func secret(static string, getter paramstore.Getter, prefix, name string) *paramstore.Secret {
	if getter == nil {
		return paramstore.NewSecret(static, nil, "")
	}
	return paramstore.NewSecret(static, getter, paramstore.Join(prefix, name))
}
