package recordcmd

import (
	"context"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/goliatone/go-fields/internal/commands"
	"github.com/goliatone/go-fields/pkg/interfaces"
	"github.com/goliatone/go-fields/record"
	"github.com/google/uuid"
)

const (
	upsertTranslationMessageType = "fields.record.translation.upsert"
	deleteTranslationMessageType = "fields.record.translation.delete"
)

// UpsertTranslationCommand writes one locale's localized values for a record.
type UpsertTranslationCommand struct {
	RecordID  uuid.UUID      `json:"record_id"`
	Locale    string         `json:"locale"`
	Title     string         `json:"title,omitempty"`
	Fields    map[string]any `json:"fields,omitempty"`
	UpdatedBy uuid.UUID      `json:"updated_by,omitempty"`
}

// Type implements command.Message.
func (UpsertTranslationCommand) Type() string { return upsertTranslationMessageType }

// Validate ensures the message carries the required fields before reaching
// handlers.
func (m UpsertTranslationCommand) Validate() error {
	errs := validation.Errors{}
	if m.RecordID == uuid.Nil {
		errs["record_id"] = validation.NewError("fields.record.translation.record_id_required", "record_id is required")
	}
	if strings.TrimSpace(m.Locale) == "" {
		errs["locale"] = validation.NewError("fields.record.translation.locale_required", "locale is required")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpsertTranslationHandler writes translations via the record service using
// the shared command handler foundation.
type UpsertTranslationHandler struct {
	inner *commands.Handler[UpsertTranslationCommand]
}

// NewUpsertTranslationHandler constructs a handler wired to the provided
// record service.
func NewUpsertTranslationHandler(service record.Service, logger interfaces.Logger, opts ...commands.HandlerOption[UpsertTranslationCommand]) *UpsertTranslationHandler {
	exec := func(ctx context.Context, msg UpsertTranslationCommand) error {
		_, err := service.UpsertTranslation(ctx, record.UpsertTranslationRequest{
			RecordID:  msg.RecordID,
			Locale:    msg.Locale,
			Title:     msg.Title,
			Fields:    msg.Fields,
			UpdatedBy: msg.UpdatedBy,
		})
		return err
	}

	handlerOpts := []commands.HandlerOption[UpsertTranslationCommand]{
		commands.WithLogger[UpsertTranslationCommand](logger),
		commands.WithOperation[UpsertTranslationCommand]("record.translation.upsert"),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &UpsertTranslationHandler{
		inner: commands.NewHandler[UpsertTranslationCommand](exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[UpsertTranslationCommand].Execute.
func (h *UpsertTranslationHandler) Execute(ctx context.Context, msg UpsertTranslationCommand) error {
	return h.inner.Execute(ctx, msg)
}

// DeleteTranslationCommand drops one locale's side row for a record.
type DeleteTranslationCommand struct {
	RecordID  uuid.UUID `json:"record_id"`
	Locale    string    `json:"locale"`
	DeletedBy uuid.UUID `json:"deleted_by,omitempty"`
}

// Type implements command.Message.
func (DeleteTranslationCommand) Type() string { return deleteTranslationMessageType }

func (m DeleteTranslationCommand) Validate() error {
	errs := validation.Errors{}
	if m.RecordID == uuid.Nil {
		errs["record_id"] = validation.NewError("fields.record.translation.record_id_required", "record_id is required")
	}
	if strings.TrimSpace(m.Locale) == "" {
		errs["locale"] = validation.NewError("fields.record.translation.locale_required", "locale is required")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// DeleteTranslationHandler removes translations via the record service.
type DeleteTranslationHandler struct {
	inner *commands.Handler[DeleteTranslationCommand]
}

func NewDeleteTranslationHandler(service record.Service, logger interfaces.Logger, opts ...commands.HandlerOption[DeleteTranslationCommand]) *DeleteTranslationHandler {
	exec := func(ctx context.Context, msg DeleteTranslationCommand) error {
		return service.DeleteTranslation(ctx, record.DeleteTranslationRequest{
			RecordID:  msg.RecordID,
			Locale:    msg.Locale,
			DeletedBy: msg.DeletedBy,
		})
	}

	handlerOpts := []commands.HandlerOption[DeleteTranslationCommand]{
		commands.WithLogger[DeleteTranslationCommand](logger),
		commands.WithOperation[DeleteTranslationCommand]("record.translation.delete"),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &DeleteTranslationHandler{
		inner: commands.NewHandler[DeleteTranslationCommand](exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[DeleteTranslationCommand].Execute.
func (h *DeleteTranslationHandler) Execute(ctx context.Context, msg DeleteTranslationCommand) error {
	return h.inner.Execute(ctx, msg)
}
