// Package submission models the customer-facing ticket wizard: pick a
// business, fill the form, submit. The flow is linear; the only backward
// step is from the form to the business picker, which discards any entered
// values.
package submission

import (
	"bytes"
	"context"
	"errors"
	"path"
	"strings"
	"time"

	"github.com/Avraham885/Customers-Services/internal/blob"
	"github.com/Avraham885/Customers-Services/internal/models"
	"github.com/Avraham885/Customers-Services/internal/store"

	"github.com/google/uuid"
)

type Stage string

const (
	StageSelectingBusiness Stage = "selecting-business"
	StageFillingForm       Stage = "filling-form"
	StageSubmitted         Stage = "submitted"
)

var ErrInvalidStage = errors.New("action not allowed in current stage")

type Attachment struct {
	Filename    string
	ContentType string
	Data        []byte
}

type Form struct {
	CustomerName  string
	CustomerPhone string
	CustomerEmail string
	Category      string
	Description   string
	Attachment    *Attachment
}

// TicketCreator is the slice of the store the wizard needs.
type TicketCreator interface {
	CreateTicket(ctx context.Context, input store.CreateTicketInput) (models.Ticket, error)
}

type Wizard struct {
	stage        Stage
	businessID   string
	businessName string
	form         Form
}

func NewWizard() *Wizard {
	return &Wizard{stage: StageSelectingBusiness}
}

func (w *Wizard) Stage() Stage {
	return w.stage
}

func (w *Wizard) Form() Form {
	return w.form
}

func (w *Wizard) BusinessID() string {
	return w.businessID
}

func (w *Wizard) SelectBusiness(businessID, name string) error {
	if w.stage != StageSelectingBusiness {
		return ErrInvalidStage
	}
	if businessID == "" {
		return store.ErrValidation
	}
	w.businessID = businessID
	w.businessName = name
	w.stage = StageFillingForm
	return nil
}

// Back returns to the business picker and discards the in-progress form.
// There is no draft persistence.
func (w *Wizard) Back() error {
	if w.stage != StageFillingForm {
		return ErrInvalidStage
	}
	w.form = Form{}
	w.businessID = ""
	w.businessName = ""
	w.stage = StageSelectingBusiness
	return nil
}

func (w *Wizard) SetForm(form Form) error {
	if w.stage != StageFillingForm {
		return ErrInvalidStage
	}
	w.form = form
	return nil
}

// Submit validates the form, uploads the attachment when present, and
// creates the ticket. Validation failures happen before any remote call.
// Any failure leaves the wizard in the form stage with the entered values
// intact. If the attachment upload succeeds but the insert fails, the
// uploaded object is left behind; the writes are not transactional and the
// orphan is an accepted cost of keeping the flow simple.
func (w *Wizard) Submit(ctx context.Context, creator TicketCreator, storage blob.Storage) (models.Ticket, error) {
	if w.stage != StageFillingForm {
		return models.Ticket{}, ErrInvalidStage
	}

	input := store.CreateTicketInput{
		BusinessID:    w.businessID,
		CustomerName:  strings.TrimSpace(w.form.CustomerName),
		CustomerPhone: strings.TrimSpace(w.form.CustomerPhone),
		CustomerEmail: strings.TrimSpace(w.form.CustomerEmail),
		Category:      strings.TrimSpace(w.form.Category),
		Description:   strings.TrimSpace(w.form.Description),
		CreatedAt:     time.Now().UTC(),
	}
	if err := store.ValidateTicketInput(input); err != nil {
		return models.Ticket{}, err
	}

	if w.form.Attachment != nil {
		url, err := storage.Upload(ctx, ObjectName(w.form.Attachment.Filename), w.form.Attachment.ContentType, bytes.NewReader(w.form.Attachment.Data))
		if err != nil {
			return models.Ticket{}, err
		}
		input.ImageURL = url
	}

	ticket, err := creator.CreateTicket(ctx, input)
	if err != nil {
		return models.Ticket{}, err
	}

	w.stage = StageSubmitted
	return ticket, nil
}

// ObjectName builds a collision-resistant storage key, keeping only the
// original file extension.
func ObjectName(filename string) string {
	ext := strings.ToLower(path.Ext(filename))
	return uuid.NewString() + ext
}
