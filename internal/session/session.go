// Package session implements the editing state machine behind a parameter
// form: the working copy of parameter values, the change/reset transitions,
// the required-field validation pass, and the imperative facade hosts use to
// read or revert state independent of any rendering.
package session

import (
	"fmt"

	"github.com/knobworks/knobs/internal/logger"
	"github.com/knobworks/knobs/internal/schema"
)

// RequiredFieldMessage is the error text attached to empty values.
const RequiredFieldMessage = "Required field"

// ErrorMap maps a parameter id to its validation error message. Absence of a
// key means the parameter has no error.
type ErrorMap map[int]string

// Session owns the working value set for one editing session. It is seeded
// once at construction and is never reseeded: a host supplying a different
// model later does not clobber in-progress edits.
//
// Sessions are single-threaded by contract; all transitions run on the UI
// event loop.
type Session struct {
	params  []schema.Parameter
	colors  []schema.Color
	initial []schema.ParameterValue
	values  []schema.ParameterValue
	errors  ErrorMap
	log     *logger.Logger
}

// New seeds a session from the parameter schema and the initial model: one
// working value per parameter in schema order, taken from the model when a
// matching id exists, else the empty string.
func New(params []schema.Parameter, model schema.Model, log *logger.Logger) *Session {
	initial := make([]schema.ParameterValue, 0, len(params))
	for _, p := range params {
		value, _ := model.ValueFor(p.ID)
		initial = append(initial, schema.ParameterValue{ParamID: p.ID, Value: value})
	}

	s := &Session{
		params:  params,
		colors:  model.Colors,
		initial: initial,
		values:  cloneValues(initial),
		errors:  make(ErrorMap),
		log:     log,
	}
	return s
}

// Parameters returns the schema the session was constructed with.
func (s *Session) Parameters() []schema.Parameter {
	return s.params
}

// Value returns the current working value for a parameter id.
func (s *Session) Value(paramID int) (string, bool) {
	for _, pv := range s.values {
		if pv.ParamID == paramID {
			return pv.Value, true
		}
	}
	return "", false
}

// Change replaces the working value for the matching parameter id, leaving
// all other entries untouched and preserving order. Unknown ids are a no-op:
// ids only ever originate from controls bound to real parameters. Any visible
// error on the changed parameter is cleared optimistically, before the next
// validation pass.
func (s *Session) Change(paramID int, value string) {
	for i := range s.values {
		if s.values[i].ParamID == paramID {
			s.values[i].Value = value
			delete(s.errors, paramID)
			return
		}
	}
}

// Reset restores the working set to the construction-time snapshot,
// discarding all edits and errors.
func (s *Session) Reset() {
	s.values = cloneValues(s.initial)
	s.errors = make(ErrorMap)
}

// Validate recomputes the error map from scratch: a value is invalid iff it
// is the empty string, regardless of the declared parameter type. On success
// the current values are emitted to the diagnostic log sink.
func (s *Session) Validate() (bool, ErrorMap) {
	errs := make(ErrorMap)
	for _, pv := range s.values {
		if pv.Value == "" {
			errs[pv.ParamID] = RequiredFieldMessage
		}
	}
	s.errors = errs

	if len(errs) == 0 {
		s.emitModel()
		return true, errs
	}
	return false, errs
}

// Errors returns the error map as of the last Validate call, minus entries
// cleared by subsequent Changes.
func (s *Session) Errors() ErrorMap {
	return s.errors
}

// GetModel returns a model whose param values are a by-value snapshot of the
// working set and whose colors are the original model's collection, passed
// through unchanged.
func (s *Session) GetModel() schema.Model {
	return schema.Model{
		ParamValues: cloneValues(s.values),
		Colors:      s.colors,
	}
}

func (s *Session) emitModel() {
	if s.log == nil {
		return
	}
	fields := make(map[string]any, len(s.values))
	for _, pv := range s.values {
		fields[fmt.Sprintf("param_%d", pv.ParamID)] = pv.Value
	}
	s.log.WithFields(fields).Info("model validated")
}

func cloneValues(values []schema.ParameterValue) []schema.ParameterValue {
	out := make([]schema.ParameterValue, len(values))
	copy(out, values)
	return out
}
