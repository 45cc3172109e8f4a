// internal/submit/flow.go
package submit

import (
	"context"
	"sync"

	"github.com/google/uuid"

	apperrors "agent-intake/internal/common/errors"
	"agent-intake/internal/common/logger"
	"agent-intake/internal/form"
)

// ReceiptWriter produces the local receipt document for a submitted
// application and returns the path it was saved under.
type ReceiptWriter interface {
	Write(s *form.State) (string, error)
}

// Flow drives one application through
// Editing -> Validating -> Submitting -> Success. Validation is synchronous;
// only the submission step suspends. A busy flag disables (does not queue)
// concurrent submits, and Success is terminal.
type Flow struct {
	store     *form.Store
	submitter *Submitter
	receipts  ReceiptWriter
	logger    logger.Logger

	mu          sync.Mutex
	busy        bool
	phase       Phase
	receiptPath string
	receiptErr  error
}

func NewFlow(store *form.Store, submitter *Submitter, receipts ReceiptWriter, log logger.Logger) *Flow {
	return &Flow{
		store:     store,
		submitter: submitter,
		receipts:  receipts,
		logger:    log,
		phase:     PhaseEditing,
	}
}

// Store exposes the form store for field edits.
func (f *Flow) Store() *form.Store {
	return f.store
}

// Phase returns the current flow phase.
func (f *Flow) Phase() Phase {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.phase
}

// ReceiptPath returns the saved receipt location, empty until Success (or if
// receipt generation failed, which is best-effort).
func (f *Flow) ReceiptPath() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.receiptPath
}

// ReceiptError returns the receipt failure after a successful submission, nil
// when the receipt was saved (or not requested).
func (f *Flow) ReceiptError() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.receiptErr
}

// Submit runs one submit attempt. Invalid forms populate the error map and
// return without touching the network. A submission failure populates only
// the general slot and leaves every field value intact, so the applicant can
// resubmit without re-entering data.
func (f *Flow) Submit(ctx context.Context) error {
	f.mu.Lock()
	if f.phase == PhaseSuccess {
		f.mu.Unlock()
		return apperrors.NewAlreadySubmittedError()
	}
	if f.busy {
		f.mu.Unlock()
		return apperrors.NewSubmissionInFlightError()
	}
	f.busy = true

	attemptID := uuid.NewString()
	log := f.logger.WithFields(map[string]interface{}{"attemptId": attemptID})

	errs := form.Validate(f.store.State())
	if !errs.Valid() {
		f.store.SetErrors(errs)
		f.busy = false
		f.phase = PhaseEditing
		f.mu.Unlock()
		log.Info("validation failed", map[string]interface{}{
			"errorCount": len(errs),
		})
		return apperrors.NewValidationFailedError(len(errs))
	}

	// Valid: clear stale errors (including any previous general error) and
	// move to the submitting phase before releasing the lock.
	f.store.SetErrors(form.ErrorMap{})
	f.phase = PhaseSubmitting
	state := f.store.State()
	f.mu.Unlock()

	err := f.submitter.Submit(ctx, state)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.busy = false

	if err != nil {
		f.phase = PhaseEditing
		f.store.SetGeneralError(generalMessage(err))
		log.Warn("submission failed", map[string]interface{}{
			"error": err.Error(),
		})
		return err
	}

	f.phase = PhaseSuccess
	log.Info("submission accepted", nil)

	if f.receipts != nil {
		path, rerr := f.receipts.Write(state)
		if rerr != nil {
			// Best effort: the backend already accepted the application, so a
			// receipt failure does not roll back the Success state.
			f.receiptErr = apperrors.NewReceiptWriteFailedError(rerr)
			log.WithError(rerr).Warn("receipt generation failed", map[string]interface{}{
				"code": string(apperrors.ErrCodeReceiptWriteFailed),
			})
		} else {
			f.receiptPath = path
			log.Info("receipt saved", map[string]interface{}{
				"path": path,
			})
		}
	}

	return nil
}

// generalMessage derives the applicant-facing message for the general slot.
func generalMessage(err error) string {
	if se, ok := apperrors.AsStandardError(err); ok {
		return se.Message
	}
	return apperrors.GenericSubmissionMessage
}
