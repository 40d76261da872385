package controllers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
)

type detailResponse struct {
	Detail any `json:"detail"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode response: %v", err)
	}
}

func writeDetail(w http.ResponseWriter, status int, detail any) {
	writeJSON(w, status, detailResponse{Detail: detail})
}

// writeError renders validation failures as 422 and anything else as 500.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var verrs ValidationErrors
	if errors.As(err, &verrs) {
		writeDetail(w, http.StatusUnprocessableEntity, verrs)
		return
	}
	log.Printf("%s %s: %v", r.Method, r.URL.Path, err)
	writeDetail(w, http.StatusInternalServerError, err.Error())
}

// NotFound handles requests that match no route.
func NotFound(w http.ResponseWriter, r *http.Request) {
	writeDetail(w, http.StatusNotFound, "Not Found")
}

// MethodNotAllowed handles requests to a known path with an unsupported method.
func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeDetail(w, http.StatusMethodNotAllowed, "Method Not Allowed")
}
