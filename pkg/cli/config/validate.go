package config

import (
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/notionlog/pkg/domain/model"
)

var (
	validatorOnce sync.Once
	validate      *validator.Validate
	translator    ut.Translator
)

func getValidator() (*validator.Validate, ut.Translator) {
	validatorOnce.Do(func() {
		enLoc := en.New()
		uni := ut.New(enLoc, enLoc)
		translator, _ = uni.GetTranslator("en")

		validate = validator.New(validator.WithRequiredStructEnabled())

		// report flag names, or config file keys, instead of Go field names
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			for _, key := range []string{"flag", "toml"} {
				if tag := fld.Tag.Get(key); tag != "" && tag != "-" {
					return tag
				}
			}
			return fld.Name
		})

		_ = en_translations.RegisterDefaultTranslations(validate, translator)
	})
	return validate, translator
}

// Validate checks every target struct and reports all violations in one error
func Validate(targets ...any) error {
	v, trans := getValidator()

	var messages []string
	for _, target := range targets {
		err := v.Struct(target)
		if err == nil {
			continue
		}

		verrs, ok := err.(validator.ValidationErrors)
		if !ok {
			return goerr.Wrap(err, "failed to validate configuration", goerr.T(model.TagConfig))
		}
		for _, fe := range verrs {
			messages = append(messages, fe.Translate(trans))
		}
	}

	if len(messages) > 0 {
		return goerr.New("invalid configuration: "+strings.Join(messages, "; "),
			goerr.V("errors", messages),
			goerr.T(model.TagConfig),
		)
	}
	return nil
}
