// Package form models one inquiry form instance as an explicit state
// machine instead of ambient mutable UI state. Each product or service
// dialog owns an independent Form; nothing is shared between instances.
//
// One submission cycle:
//
//	Idle -> Validating -> (invalid) Idle with error
//	                   -> (valid)   Submitting -> Succeeded -> Idle
//	                                           -> (failed)   Idle with error
//
// There is no automatic retry transition; control always returns to the
// user for a fresh attempt.
package form

import (
	"context"
	"time"

	"techfix-backend/internal/domain"
	"techfix-backend/pkg/email"
	"techfix-backend/pkg/validation"
	"techfix-backend/pkg/whatsapp"
)

// State is the form's position in the submission cycle.
type State string

const (
	StateIdle       State = "idle"
	StateValidating State = "validating"
	StateSubmitting State = "submitting"
	StateSucceeded  State = "succeeded"
)

// Draft is the mutable record bound to the form fields. It is retained
// on failure so the user can correct and retry, and cleared on success.
type Draft struct {
	FullName string
	Email    string
	Phone    string
	Message  string
}

// Submitter performs the actual API call. Satisfied by client.Client.
type Submitter interface {
	SubmitContact(ctx context.Context, req domain.ContactRequest) domain.NotificationResult
	SubmitQuote(ctx context.Context, req domain.QuoteRequest) domain.NotificationResult
}

// Config is per-page configuration: which endpoint the form targets,
// what subject label it carries, and whether a successful submission
// offers the WhatsApp handoff.
type Config struct {
	Kind domain.InquiryKind
	// SubjectLabel is supplied by the calling page: a product name, a
	// service name, or a generic inquiry label.
	SubjectLabel string
	// HandoffNumber enables the post-submission WhatsApp handoff when
	// non-empty (digits with country code).
	HandoffNumber string
	// Opener opens the handoff link; ignored when nil.
	Opener whatsapp.Opener
	// Now is overridable for tests; defaults to time.Now.
	Now func() time.Time
}

// Form coordinates one inquiry form instance.
type Form struct {
	cfg       Config
	submitter Submitter

	draft      Draft
	state      State
	submitting bool
	lastResult *domain.NotificationResult
}

// New creates an idle form.
func New(cfg Config, submitter Submitter) *Form {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &Form{
		cfg:       cfg,
		submitter: submitter,
		state:     StateIdle,
	}
}

// SetFullName updates the draft; called on every keystroke.
func (f *Form) SetFullName(v string) { f.draft.FullName = v }

// SetEmail updates the draft.
func (f *Form) SetEmail(v string) { f.draft.Email = v }

// SetPhone updates the draft.
func (f *Form) SetPhone(v string) { f.draft.Phone = v }

// SetMessage updates the draft.
func (f *Form) SetMessage(v string) { f.draft.Message = v }

// Draft returns a copy of the current draft.
func (f *Form) Draft() Draft { return f.draft }

// State returns the current state.
func (f *Form) State() State { return f.state }

// Submitting reports whether a call is in flight; the submit control is
// disabled while true.
func (f *Form) Submitting() bool { return f.submitting }

// LastResult returns the outcome of the most recent attempt, or nil.
func (f *Form) LastResult() *domain.NotificationResult { return f.lastResult }

// Submit runs one full submission cycle and returns its result. Local
// validation failures never reach the network: a clearly malformed
// payload is not worth a round trip or outbound mail quota.
func (f *Form) Submit(ctx context.Context) domain.NotificationResult {
	if f.submitting {
		return domain.NotificationResult{
			Outcome:     domain.OutcomeUnknownError,
			UserMessage: "A submission is already in progress.",
		}
	}

	f.state = StateValidating
	if msg := validation.CheckDraft(f.draft.FullName, f.draft.Email, f.draft.Phone); msg != "" {
		result := domain.NotificationResult{
			Outcome:     domain.OutcomeValidationError,
			UserMessage: msg,
		}
		f.finish(result)
		return result
	}

	f.submitting = true
	f.state = StateSubmitting
	// The flag must clear on every path, panics included, so the UI can
	// never end up permanently disabled
	defer func() { f.submitting = false }()

	result := f.dispatch(ctx)

	if result.Outcome == domain.OutcomeSuccess {
		f.state = StateSucceeded
		f.offerHandoff()
		f.draft = Draft{}
	}
	f.finish(result)
	return result
}

func (f *Form) dispatch(ctx context.Context) domain.NotificationResult {
	if f.cfg.Kind == domain.KindQuote {
		return f.submitter.SubmitQuote(ctx, domain.QuoteRequest{
			FullName:    f.draft.FullName,
			Email:       f.draft.Email,
			Phone:       f.draft.Phone,
			Message:     f.draft.Message,
			ProductName: f.cfg.SubjectLabel,
		})
	}
	return f.submitter.SubmitContact(ctx, domain.ContactRequest{
		Name:    f.draft.FullName,
		Mobile:  f.draft.Phone,
		Email:   f.draft.Email,
		Service: f.cfg.SubjectLabel,
		Message: f.draft.Message,
	})
}

// offerHandoff opens the pre-filled WhatsApp link when the page enabled
// it. Best-effort: a blocked pop-up or missing opener is not an error
// and never taints the already-completed submission.
func (f *Form) offerHandoff() {
	if f.cfg.HandoffNumber == "" || f.cfg.Opener == nil {
		return
	}

	summary := whatsapp.Summary{
		Name:    f.draft.FullName,
		Email:   f.draft.Email,
		Phone:   f.draft.Phone,
		Message: f.draft.Message,
		SentAt:  email.Timestamp(f.cfg.Now()),
	}
	if f.cfg.Kind == domain.KindQuote {
		summary.ProductName = f.cfg.SubjectLabel
	} else {
		summary.Service = f.cfg.SubjectLabel
	}

	_ = f.cfg.Opener.Open(whatsapp.Link(f.cfg.HandoffNumber, whatsapp.ComposeText(summary)))
}

// finish records the result and returns control to the user.
func (f *Form) finish(result domain.NotificationResult) {
	f.lastResult = &result
	f.state = StateIdle
}
