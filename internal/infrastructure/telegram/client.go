// Package telegram envía mensajes con la Bot API (sendMessage, parse_mode Markdown).
package telegram

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"

	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/application/ports"
)

// DefaultBaseURL API pública de Telegram.
const DefaultBaseURL = "https://api.telegram.org"

var _ ports.Notifier = (*Client)(nil)

// Client bot de notificaciones. Sin token queda deshabilitado y SendMessage no hace nada.
type Client struct {
	endpoint string
	token    string
	http     *http.Client
	log      zerolog.Logger
}

// NewClient crea el cliente. baseURL vacío usa DefaultBaseURL.
func NewClient(baseURL, token string, log zerolog.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		endpoint: strings.TrimRight(baseURL, "/") + "/bot%s/%s",
		token:    token,
		http:     &http.Client{Timeout: 10 * time.Second},
		log:      log,
	}
}

// Enabled indica si hay token configurado.
func (c *Client) Enabled() bool { return c.token != "" }

// ctxDoer ata cada petición del bot al contexto de la llamada.
type ctxDoer struct {
	ctx  context.Context
	http *http.Client
}

func (d ctxDoer) Do(req *http.Request) (*http.Response, error) {
	return d.http.Do(req.WithContext(d.ctx))
}

// bot arma el BotAPI sin getMe: el token se valida en el primer envío.
func (c *Client) bot(ctx context.Context) *tgbotapi.BotAPI {
	b := &tgbotapi.BotAPI{Token: c.token, Client: ctxDoer{ctx: ctx, http: c.http}}
	b.SetAPIEndpoint(c.endpoint)
	return b
}

// nuevoMensaje acepta un chat numérico o un @canal.
func nuevoMensaje(chatID, text string) tgbotapi.MessageConfig {
	msg := tgbotapi.NewMessage(0, text)
	if id, err := strconv.ParseInt(chatID, 10, 64); err == nil {
		msg.ChatID = id
	} else {
		msg.ChannelUsername = chatID
	}
	msg.ParseMode = tgbotapi.ModeMarkdown
	return msg
}

// SendMessage publica text en chatID. Sin token o chat se omite sin error.
func (c *Client) SendMessage(ctx context.Context, chatID, text string) error {
	if !c.Enabled() || chatID == "" {
		c.log.Debug().Msg("telegram: sin credenciales, mensaje omitido")
		return nil
	}
	if _, err := c.bot(ctx).Send(nuevoMensaje(chatID, text)); err != nil {
		var apiErr *tgbotapi.Error
		if errors.As(err, &apiErr) {
			return fmt.Errorf("telegram: código %d: %s", apiErr.Code, apiErr.Message)
		}
		return fmt.Errorf("telegram: enviar: %w", err)
	}
	return nil
}
