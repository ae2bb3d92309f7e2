package resource

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ErrValidation marks a submit rejected client-side; no HTTP call was made.
var ErrValidation = errors.New("validation failed")

// Form manages a draft object for create/edit flows. Validation is
// deliberately presence-only (required tags); anything stricter belongs to
// the backend.
type Form[T any] struct {
	draft    T
	defaults T
	editing  bool
	id       int
}

func NewForm[T any](defaults T) *Form[T] {
	return &Form[T]{
		draft:    defaults,
		defaults: defaults,
	}
}

// Draft exposes the mutable draft for field binding.
func (f *Form[T]) Draft() *T {
	return &f.draft
}

// Reset returns the draft to defaults and leaves edit mode.
func (f *Form[T]) Reset() {
	f.draft = f.defaults
	f.editing = false
	f.id = 0
}

// Load populates the draft from an existing record and enters edit mode.
func (f *Form[T]) Load(id int, entity T) {
	f.draft = entity
	f.editing = true
	f.id = id
}

func (f *Form[T]) Editing() bool { return f.editing }

func (f *Form[T]) ID() int { return f.id }

// Validate runs the required-field checks without touching the network.
func (f *Form[T]) Validate() error {
	return checkRequired(f.draft)
}

// Submit validates the draft and delegates to the controller: create in add
// mode, update in edit mode. The form resets only on success, so a failed
// submit loses nothing the user typed.
func (f *Form[T]) Submit(ctx context.Context, c *Controller[T]) error {
	if err := f.Validate(); err != nil {
		return err
	}

	var err error
	if f.editing {
		err = c.Update(ctx, f.id, f.draft)
	} else {
		err = c.Create(ctx, f.draft)
	}
	if err != nil {
		return err
	}

	f.Reset()
	return nil
}

func checkRequired(draft interface{}) error {
	err := validate.Struct(draft)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}

	fields := make([]string, 0, len(verrs))
	for _, ve := range verrs {
		fields = append(fields, ve.Field())
	}
	return fmt.Errorf("%w: please fill in %s", ErrValidation, strings.Join(fields, ", "))
}
