// Package validator wraps go-playground/validator with English translations
// so that handlers can turn struct tag violations into per-field messages.
package validator

import (
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	entranslations "github.com/go-playground/validator/v10/translations/en"
)

// Validator validates request payloads against their validate tags.
type Validator struct {
	validate *validator.Validate
	trans    ut.Translator
}

// New creates a Validator with English default translations registered.
func New() (*Validator, error) {
	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	trans, _ := uni.GetTranslator("en")

	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := entranslations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, err
	}

	return &Validator{validate: validate, trans: trans}, nil
}

// Struct validates s and returns a field -> message map for every violated
// rule, or nil when s is valid.
func (v *Validator) Struct(s any) map[string]string {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return map[string]string{"_": err.Error()}
	}

	fields := make(map[string]string, len(errs))
	for _, fe := range errs {
		fields[fe.Field()] = fe.Translate(v.trans)
	}

	return fields
}
