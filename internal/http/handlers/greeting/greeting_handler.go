package greeting

import (
	"errors"
	"io"
	"net/http"

	"userapi/internal/http/responses"
)

var (
	helloBody = []byte("Hello world!")
	heyBody   = []byte("Hey there!")
)

// Handler serves the stateless routes.
type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// Hello GET /
func (h *Handler) Hello(w http.ResponseWriter, r *http.Request) {
	responses.WriteText(w, http.StatusOK, helloBody)
}

// Hey GET /hey
func (h *Handler) Hey(w http.ResponseWriter, r *http.Request) {
	responses.WriteText(w, http.StatusOK, heyBody)
}

// Echo POST /echo writes the request body back unchanged.
func (h *Handler) Echo(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			responses.WriteTooLarge(w)
			return
		}
		responses.WriteBadRequest(w, "could not read request body")
		return
	}

	responses.WriteText(w, http.StatusOK, body)
}
