package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
)

// MaxRequestBodyBytes caps the size of a decoded JSON request body.
const MaxRequestBodyBytes = 1 << 20

// ErrEmptyBody is returned by DecodeJSON when the request carries no body.
var ErrEmptyBody = errors.New("request body is empty")

// fallbackBody is written when the response itself cannot be encoded, so
// the client still receives JSON.
const fallbackBody = `{"error":"Internal server error"}`

// WriteJSON serializes data to JSON and writes it with statusCode.
//
// It sets "Content-Type: application/json". If marshaling fails, a generic
// JSON error body is sent with 500 Internal Server Error and a wrapped error
// is returned.
//
// Returns the number of body bytes written.
//
// Example usage:
//
//	WriteJSON(w, models.ErrorResponse{Error: "Not found"}, http.StatusNotFound)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = io.WriteString(w, fallbackBody)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// DecodeJSON decodes the request body into dst, reading at most
// MaxRequestBodyBytes. dst must be a non-nil pointer.
//
// The body must hold exactly one JSON value; anything but whitespace after it
// is an error. dst is only assigned once the whole body is accepted, so it is
// left untouched on every error.
func DecodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	rv := reflect.ValueOf(dst)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return errors.New("decode destination must be a non-nil pointer")
	}

	if r.Body == nil || r.Body == http.NoBody {
		return ErrEmptyBody
	}

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, MaxRequestBodyBytes))

	tmp := reflect.New(rv.Elem().Type())
	if err := dec.Decode(tmp.Interface()); err != nil {
		if errors.Is(err, io.EOF) {
			return ErrEmptyBody
		}
		return fmt.Errorf("error decoding JSON body: %w", err)
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return errors.New("request body must contain a single JSON value")
	}

	rv.Elem().Set(tmp.Elem())
	return nil
}
