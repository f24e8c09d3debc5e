package request

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"userapi/internal/http/responses"
)

var validate = validator.New()

const (
	invalidPayload  = "Invalid JSON payload."
	jsonContentType = "application/json"
)

// BindAndValidate reads a single JSON object from the body into dst and runs
// validation with tags `validate:"..."`. The request must be sent as
// application/json. Keys match json tags exactly; any other key, including
// a differently cased one, is ignored. On failure it writes the response
// and returns false.
func BindAndValidate[T any](w http.ResponseWriter, r *http.Request, dst *T) bool {
	if !isJSON(r.Header.Get("Content-Type")) {
		responses.WriteBadRequest(w, invalidPayload)
		return false
	}

	dec := json.NewDecoder(r.Body)

	var fields map[string]json.RawMessage
	if err := dec.Decode(&fields); err != nil {
		writeDecodeError(w, err)
		return false
	}

	// Reject trailing data after the JSON value.
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		writeDecodeError(w, err)
		return false
	}

	if err := decodeExact(fields, dst); err != nil {
		responses.WriteBadRequest(w, invalidPayload)
		return false
	}

	if err := validate.Struct(dst); err != nil {
		responses.WriteBadRequest(w, invalidPayload)
		return false
	}

	return true
}

func isJSON(header string) bool {
	mediaType, _, err := mime.ParseMediaType(header)
	if err != nil {
		return false
	}
	return mediaType == jsonContentType || strings.HasSuffix(mediaType, "+json")
}

// decodeExact keeps only keys equal to one of dst's json tags, then decodes
// them. encoding/json alone would fold case.
func decodeExact[T any](fields map[string]json.RawMessage, dst *T) error {
	known := jsonNames(reflect.TypeOf(dst).Elem())

	kept := make(map[string]json.RawMessage, len(fields))
	for k, v := range fields {
		if _, ok := known[k]; ok {
			kept[k] = v
		}
	}

	body, err := json.Marshal(kept)
	if err != nil {
		return err
	}
	return json.NewDecoder(bytes.NewReader(body)).Decode(dst)
}

func jsonNames(t reflect.Type) map[string]struct{} {
	names := make(map[string]struct{})
	if t.Kind() != reflect.Struct {
		return names
	}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		switch name {
		case "-":
			continue
		case "":
			name = f.Name
		}
		names[name] = struct{}{}
	}
	return names
}

func writeDecodeError(w http.ResponseWriter, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		responses.WriteTooLarge(w)
		return
	}
	responses.WriteBadRequest(w, invalidPayload)
}
