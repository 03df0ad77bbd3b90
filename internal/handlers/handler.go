package handlers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/engr-razib/BrandingAssetGenerator/internal/archive"
	"github.com/engr-razib/BrandingAssetGenerator/internal/batch"
	"github.com/engr-razib/BrandingAssetGenerator/internal/brand"
	"github.com/engr-razib/BrandingAssetGenerator/internal/catalog"
	"github.com/engr-razib/BrandingAssetGenerator/internal/session"
	"github.com/engr-razib/BrandingAssetGenerator/internal/telegram"
)

const (
	regeneratePrefix = "rg:"
	archivePrefix    = "zip:"
)

// Messenger is the part of the Telegram client the bot talks through.
type Messenger interface {
	SendText(chatID int64, text string) error
	SendTextWithButtons(chatID int64, text string, buttons ...telegram.Button) error
	SendPhoto(chatID int64, name string, data []byte, caption string, buttons ...telegram.Button) error
	SendDocument(chatID int64, name string, data []byte, caption string) error
	SendUploading(chatID int64)
	AnswerCallback(callbackID, text string)
}

type Options struct {
	Telegram     Messenger
	Orchestrator *batch.Orchestrator
	Sessions     *session.Store
	Logger       *slog.Logger
	Now          func() time.Time
}

type Handler struct {
	tg       Messenger
	orch     *batch.Orchestrator
	sessions *session.Store
	logger   *slog.Logger
	now      func() time.Time
}

func New(opts Options) *Handler {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	now := opts.Now
	if now == nil {
		now = time.Now
	}

	return &Handler{
		tg:       opts.Telegram,
		orch:     opts.Orchestrator,
		sessions: opts.Sessions,
		logger:   logger,
		now:      now,
	}
}

func (h *Handler) HandleUpdate(ctx context.Context, update telegram.Update) error {
	if update.CallbackQuery != nil {
		return h.handleCallback(ctx, update.CallbackQuery)
	}
	if update.Message == nil || update.Message.Chat == nil {
		return nil
	}

	msg := update.Message
	chatID := msg.Chat.ID

	if msg.IsCommand() {
		return h.handleCommand(ctx, chatID, msg)
	}

	if strings.TrimSpace(msg.Text) != "" {
		return h.tg.SendText(chatID, "Start your brief with /logo, /banner or /social. See /help.")
	}
	return nil
}

func (h *Handler) handleCommand(ctx context.Context, chatID int64, msg *tgbotapi.Message) error {
	args := strings.TrimSpace(msg.CommandArguments())

	switch cmd := strings.ToLower(msg.Command()); cmd {
	case "start", "help":
		return h.tg.SendText(chatID, usage)
	case "logo", "banner", "social", "poster":
		category, _ := brand.ParseCategory(cmd)
		return h.generate(ctx, chatID, category, args)
	case "sizes":
		category, err := brand.ParseCategory(args)
		if err != nil {
			return h.tg.SendText(chatID, "Usage: /sizes logo|banner|social")
		}
		return h.tg.SendText(chatID, sizeList(category))
	case "sample":
		category, err := brand.ParseCategory(args)
		if err != nil {
			return h.tg.SendText(chatID, "Usage: /sample logo|banner|social")
		}
		sample, ok := catalog.RandomSample(category)
		if !ok {
			return h.tg.SendText(chatID, "No samples for this category.")
		}
		return h.tg.SendText(chatID, "/"+commandFor(category)+"\n"+FormatBrief(category, sample))
	default:
		return h.tg.SendText(chatID, "❌ Unknown command. Use /help.")
	}
}

func (h *Handler) generate(ctx context.Context, chatID int64, category brand.Category, text string) error {
	brief, err := ParseBrief(category, text)
	if err != nil {
		return h.tg.SendText(chatID, "❌ "+err.Error())
	}
	if err := brief.Form.Validate(); err != nil {
		return h.tg.SendText(chatID, "❌ Please add a description of your brand. See /help.")
	}

	h.tg.SendUploading(chatID)
	_ = h.tg.SendText(chatID, fmt.Sprintf("🎨 Generating %d image(s), please wait...", len(brief.Sizes)))

	b := h.orch.NewBatch(brief.Form, category, brief.Sizes)
	h.sessions.Put(chatKey(chatID), b)

	res := h.orch.Run(ctx, b)

	for _, item := range res.Items {
		if err := h.sendItem(chatID, item); err != nil {
			h.logger.Error("send image failed", "chat_id", chatID, "item_id", item.ID, "err", err)
		}
	}

	if errors.Is(res.Err(), batch.ErrAllFailed) {
		return h.tg.SendText(chatID, "❌ "+res.Message())
	}

	summary := fmt.Sprintf("✅ %d of %d image(s) ready.", len(res.Items), res.Total)
	if msg := res.Message(); msg != "" {
		summary += "\n" + msg
	}
	return h.tg.SendTextWithButtons(chatID, summary, telegram.Button{Text: "📦 Download ZIP", Data: archivePrefix + b.ID})
}

func (h *Handler) sendItem(chatID int64, item batch.ItemView) error {
	return h.tg.SendPhoto(chatID, archive.EntryName(item.SizeLabel), item.Payload, item.SizeLabel,
		telegram.Button{Text: "🔄 Regenerate", Data: regeneratePrefix + item.ID},
	)
}

func (h *Handler) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) error {
	if cb.Message == nil || cb.Message.Chat == nil {
		h.tg.AnswerCallback(cb.ID, "")
		return nil
	}
	chatID := cb.Message.Chat.ID

	switch {
	case strings.HasPrefix(cb.Data, regeneratePrefix):
		return h.regenerate(ctx, chatID, cb.ID, strings.TrimPrefix(cb.Data, regeneratePrefix))
	case strings.HasPrefix(cb.Data, archivePrefix):
		return h.sendArchive(chatID, cb.ID, strings.TrimPrefix(cb.Data, archivePrefix))
	default:
		h.tg.AnswerCallback(cb.ID, "")
		return nil
	}
}

// regenerate refreshes one image of the chat's current batch. Buttons of
// superseded batches no longer resolve to an item.
func (h *Handler) regenerate(ctx context.Context, chatID int64, callbackID, itemID string) error {
	b, ok := h.sessions.Current(chatKey(chatID))
	if !ok {
		h.tg.AnswerCallback(callbackID, expired)
		return nil
	}
	if _, found := b.Item(itemID); !found {
		h.tg.AnswerCallback(callbackID, expired)
		return nil
	}

	h.tg.AnswerCallback(callbackID, "🔄 Regenerating...")
	h.tg.SendUploading(chatID)

	view, err := h.orch.RegenerateItem(ctx, b, itemID)
	var itemErr *batch.ItemError
	switch {
	case err == nil:
		return h.sendItem(chatID, view)
	case errors.Is(err, batch.ErrItemInFlight):
		return h.tg.SendText(chatID, "⏳ This image is already being regenerated.")
	case errors.As(err, &itemErr):
		return h.tg.SendText(chatID, fmt.Sprintf("❌ Failed to regenerate image for %s: %v. Please try again.", itemErr.SizeLabel, itemErr.Err))
	default:
		h.logger.Error("regenerate failed", "chat_id", chatID, "err", err)
		return h.tg.SendText(chatID, "❌ An unknown error occurred during regeneration.")
	}
}

func (h *Handler) sendArchive(chatID int64, callbackID, batchID string) error {
	b, err := h.sessions.Lookup(chatKey(chatID), batchID)
	if err != nil {
		h.tg.AnswerCallback(callbackID, expired)
		return nil
	}

	data, err := archive.Build(b.Ready())
	if errors.Is(err, archive.ErrNothingToArchive) {
		h.tg.AnswerCallback(callbackID, "Nothing to download yet.")
		return nil
	}
	if err != nil {
		h.tg.AnswerCallback(callbackID, "❌ Could not build the archive.")
		return err
	}

	h.tg.AnswerCallback(callbackID, "📦 Preparing ZIP...")
	return h.tg.SendDocument(chatID, archive.FileName(h.now()), data, "")
}

func chatKey(chatID int64) string {
	return "chat:" + strconv.FormatInt(chatID, 10)
}

func sizeList(category brand.Category) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Sizes for /%s (use sizes: 1,3,5):\n", commandFor(category))
	n := 0
	for _, g := range catalog.Groups(category) {
		fmt.Fprintf(&b, "\n%s\n", g.Name)
		for _, s := range g.Sizes {
			n++
			fmt.Fprintf(&b, "%d. %s\n", n, s.Label())
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

const expired = "⌛ This batch has expired. Send a new brief."

const usage = "🎨 Branding Asset Generator\n\n" +
	"Send a brief after a command, one field per line:\n\n" +
	"/banner\n" +
	"headline: Grand Opening\n" +
	"slogan: Fresh bread every morning\n" +
	"cta: Visit us\n" +
	"sizes: 1,2\n" +
	"description: A cosy neighbourhood bakery\n\n" +
	"Commands:\n" +
	"/logo, /banner, /social - generate assets\n" +
	"/sizes <category> - numbered size list\n" +
	"/sample <category> - example brief\n" +
	"/help - this message\n\n" +
	"Fields: brand, headline, slogan, features, cta, description, sizes. " +
	"Lines without a field name are added to the description."
