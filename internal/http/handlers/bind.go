package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/geocoder89/staffportal/internal/domain/user"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type FieldError struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Param   string `json:"param,omitempty"`
	Message string `json:"message,omitempty"`
}

// decodeBody reads the raw body and runs decode on it. A body that cannot be
// read or decoded is answered with 400 (413 when over the size cap).
func decodeBody[T any](ctx *gin.Context, decode func([]byte) (T, error)) (T, bool) {
	var zero T

	body, err := ctx.GetRawData()
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			RespondError(ctx, http.StatusRequestEntityTooLarge, "body_too_large", "Request body too large", gin.H{"limit": tooLarge.Limit})
			return zero, false
		}
		RespondBadRequest(ctx, msgInvalidJSON, gin.H{"reason": err.Error()})
		return zero, false
	}

	out, err := decode(body)
	if err != nil {
		RespondBadRequest(ctx, msgInvalidJSON, parseBindError(err, &zero))
		return zero, false
	}

	return out, true
}

func parseBindError(err error, out interface{}) interface{} {
	rootType := baseStructType(out)

	// validator errors (struct bind tags)

	var validatorError validator.ValidationErrors

	if errors.As(err, &validatorError) {
		var translated map[string]string
		var userErr *user.ValidationError
		if errors.As(err, &userErr) {
			translated = userErr.Messages
		}

		fields := make([]FieldError, 0, len(validatorError))

		for _, fieldError := range validatorError {
			field := jsonPathFromValidatorError(rootType, fieldError)
			rule := fieldError.Tag()
			param := fieldError.Param()

			message, ok := translated[fieldError.Field()]
			if !ok {
				message = validationMessage(rule, param)
			}

			fields = append(fields, FieldError{
				Field:   field,
				Rule:    rule,
				Param:   param,
				Message: message,
			})
		}
		return gin.H{"fields": fields}
	}

	var syntaxError *json.SyntaxError

	if errors.As(err, &syntaxError) {
		return gin.H{
			"json":   "invalid_json_syntax",
			"offset": syntaxError.Offset,
		}
	}

	var unmatchedTypeError *json.UnmarshalTypeError

	if errors.As(err, &unmatchedTypeError) {
		field := jsonPathFromDotPath(rootType, unmatchedTypeError.Field)

		if field == "" {
			// the body itself has the wrong shape
			return gin.H{
				"json": "invalid_json_type",
				"fields": []FieldError{
					{Field: "body", Rule: "type", Message: "must be a JSON object"},
				},
			}
		}

		return gin.H{
			"json":  "invalid_json_type",
			"field": field,
			"fields": []FieldError{
				{
					Field:   field,
					Rule:    "type",
					Message: "must be of type " + jsonKind(unmatchedTypeError.Type),
				},
			},
		}
	}

	return gin.H{"reason": err.Error()}
}

// jsonKind names t the way a client sees it, never by its Go type name.
func jsonKind(t reflect.Type) string {
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	if t == nil {
		return "value"
	}

	switch t.Kind() {
	case reflect.Struct, reflect.Map:
		return "object"
	case reflect.Slice, reflect.Array:
		return "array"
	case reflect.String:
		return "string"
	case reflect.Bool:
		return "boolean"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return "number"
	default:
		return "value"
	}
}

func baseStructType(v interface{}) reflect.Type {
	t := reflect.TypeOf(v)

	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	if t != nil && t.Kind() == reflect.Struct {
		return t
	}

	return nil
}

func jsonPathFromValidatorError(rootType reflect.Type, fieldError validator.FieldError) string {
	// StructNamespace is "<StructName>.<Field>[.<NestedField>...]".
	namespace := fieldError.StructNamespace()
	if namespace == "" {
		return fieldError.Field()
	}

	parts := strings.Split(namespace, ".")

	if rootType != nil && parts[0] == rootType.Name() {
		parts = parts[1:]
	}

	if path := mapStructPathToJSONPath(rootType, parts); path != "" {
		return path
	}

	return fieldError.Field()
}

func jsonPathFromDotPath(rootType reflect.Type, dotPath string) string {
	dotPath = strings.TrimSpace(dotPath)
	if dotPath == "" {
		return ""
	}

	return mapStructPathToJSONPath(rootType, strings.Split(dotPath, "."))
}

// mapStructPathToJSONPath walks Go field names through rootType and returns
// the matching json names. Unknown segments are passed through unchanged.
func mapStructPathToJSONPath(rootType reflect.Type, parts []string) string {
	current := rootType
	out := make([]string, 0, len(parts))

	for _, part := range parts {
		if part == "" {
			continue
		}

		jsonName := part
		var next reflect.Type

		for current != nil && current.Kind() == reflect.Pointer {
			current = current.Elem()
		}

		if current != nil && current.Kind() == reflect.Struct {
			if sf, ok := current.FieldByName(part); ok {
				jsonName = jsonNameFromStructField(sf)
				next = sf.Type
			}
		}

		out = append(out, jsonName)
		current = next
	}

	return strings.Join(out, ".")
}

func jsonNameFromStructField(sf reflect.StructField) string {
	name, _, _ := strings.Cut(sf.Tag.Get("json"), ",")
	if name == "" || name == "-" {
		return sf.Name
	}

	return name
}

func validationMessage(rule, param string) string {
	switch rule {
	case "required":
		return "is required"
	default:
		if param != "" {
			return fmt.Sprintf("failed %s validation (%s)", rule, param)
		}
		return "failed " + rule + " validation"
	}
}
