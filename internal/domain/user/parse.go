package user

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

var validate, translator = newValidator()

func newValidator() (*validator.Validate, ut.Translator) {
	v := validator.New()
	v.SetTagName("binding")
	v.RegisterTagNameFunc(func(sf reflect.StructField) string {
		name, _, _ := strings.Cut(sf.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	english := en.New()
	uni := ut.New(english, english)
	trans, _ := uni.GetTranslator("en")
	if err := en_translations.RegisterDefaultTranslations(v, trans); err != nil {
		panic(fmt.Sprintf("user: register validator translations: %v", err))
	}

	return v, trans
}

// DecodeCreate parses a create payload without validating it, so the caller
// can run the duplicate check before the presence check.
func DecodeCreate(body []byte) (CreateUserRequest, error) {
	var req CreateUserRequest
	if err := decodeObject(body, &req); err != nil {
		return CreateUserRequest{}, err
	}

	return req, nil
}

func DecodeUpdate(body []byte) (UpdateUserRequest, error) {
	var req UpdateUserRequest
	if err := decodeObject(body, &req); err != nil {
		return UpdateUserRequest{}, err
	}

	return req, nil
}

func DecodeLogin(body []byte) (LoginRequest, error) {
	var req LoginRequest
	if err := decodeObject(body, &req); err != nil {
		return LoginRequest{}, err
	}

	return req, nil
}

// Validate enforces presence of every required key.
func (r CreateUserRequest) Validate() error {
	err := validate.Struct(r)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	fields := make([]string, 0, len(verrs))
	messages := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fe.Field())
		messages[fe.Field()] = fe.Translate(translator)
	}

	return &ValidationError{Fields: fields, Messages: messages, err: verrs}
}

// decodeObject only accepts a JSON object; null, arrays and scalars are
// malformed even though json.Unmarshal would take some of them.
func decodeObject(body []byte, out any) error {
	if !isJSONObject(body) {
		return fmt.Errorf("%w: body must be a JSON object", ErrMalformedBody)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedBody, err)
	}

	return nil
}

func isJSONObject(body []byte) bool {
	trimmed := bytes.TrimSpace(body)

	return len(trimmed) > 0 && trimmed[0] == '{'
}
