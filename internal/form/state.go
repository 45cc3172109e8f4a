// internal/form/state.go
package form

// FileRef is a selected attachment. A nil *FileRef means "no file", which is
// distinct from a text field's empty string.
type FileRef struct {
	Filename string
	Content  []byte
}

// ErrorMap maps a field to a human-readable message. A field appears only
// while its current value fails validation, or, for FieldGeneral, while a
// submission-level failure is outstanding.
type ErrorMap map[Field]string

// Valid reports whether the map has zero entries.
func (m ErrorMap) Valid() bool {
	return len(m) == 0
}

// State holds the current values for one in-progress application. Every text
// field is always present, defaulting to the empty string; attachments are
// absent until selected.
type State struct {
	values map[Field]string
	files  map[Field]*FileRef
	agree  bool
}

// NewState creates an empty State with every text field initialized.
func NewState() *State {
	values := make(map[Field]string, len(stringFields))
	for _, f := range stringFields {
		values[f] = ""
	}
	return &State{
		values: values,
		files:  make(map[Field]*FileRef, len(fileFields)),
	}
}

// Value returns the current value of a text field.
func (s *State) Value(f Field) string {
	return s.values[f]
}

// File returns the attachment for f, or nil if none was selected.
func (s *State) File(f Field) *FileRef {
	return s.files[f]
}

// AgreeTerms returns the consent flag.
func (s *State) AgreeTerms() bool {
	return s.agree
}

func (s *State) setValue(f Field, v string) {
	if IsStringField(f) {
		s.values[f] = v
	}
}

func (s *State) setFile(f Field, ref *FileRef) {
	if !IsFileField(f) {
		return
	}
	if ref == nil {
		delete(s.files, f)
		return
	}
	s.files[f] = ref
}

// Store owns the form state and error map for one application attempt. It is
// the single writer: all mutation goes through its setters, which implement
// the edit-clears-error rule. It is not safe for concurrent use; the flow
// serializes access.
type Store struct {
	state  *State
	errors ErrorMap
}

// NewStore creates a Store with an empty state and no errors.
func NewStore() *Store {
	return &Store{
		state:  NewState(),
		errors: ErrorMap{},
	}
}

// State exposes the current form state.
func (st *Store) State() *State {
	return st.state
}

// Errors returns a copy of the current error map.
func (st *Store) Errors() ErrorMap {
	out := make(ErrorMap, len(st.errors))
	for k, v := range st.errors {
		out[k] = v
	}
	return out
}

// SetField updates a text field and optimistically clears its error. The
// general slot is deliberately left alone (cleared only on the next submit).
func (st *Store) SetField(f Field, v string) {
	st.state.setValue(f, v)
	st.clearFieldError(f)
}

// SetFile updates an attachment (nil removes it) and clears its error.
func (st *Store) SetFile(f Field, ref *FileRef) {
	st.state.setFile(f, ref)
	st.clearFieldError(f)
}

// SetAgreeTerms updates the consent flag and clears its error.
func (st *Store) SetAgreeTerms(v bool) {
	st.state.agree = v
	st.clearFieldError(FieldAgreeTerms)
}

// SetErrors replaces the error map wholesale (each submit attempt recomputes it).
func (st *Store) SetErrors(m ErrorMap) {
	st.errors = make(ErrorMap, len(m))
	for k, v := range m {
		st.errors[k] = v
	}
}

// SetGeneralError populates the reserved general slot.
func (st *Store) SetGeneralError(msg string) {
	st.errors[FieldGeneral] = msg
}

// ClearFieldError removes a single field's error, if any.
func (st *Store) ClearFieldError(f Field) {
	st.clearFieldError(f)
}

func (st *Store) clearFieldError(f Field) {
	delete(st.errors, f)
}
