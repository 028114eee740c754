package forms

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/cbcberry/berrysite/internal/visitor"
)

const (
	maxContactBody    = 64 << 10
	multipartOverhead = 1 << 20
	multipartMemory   = 8 << 20
)

// RegisterRoutes mounts the form endpoints under /api on the given router.
func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/api", func(r chi.Router) {
		r.Post("/contact", handleContact(svc))
		r.Post("/apply", handleApply(svc))
	})
}

func handleContact(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ContactRequest
		if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxContactBody)).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: msgInvalidBody})
			return
		}

		if _, err := svc.SubmitContact(r.Context(), req, visitor.FromRequest(r)); err != nil {
			writeError(w, err, msgContactFailed)
			return
		}
		writeJSON(w, http.StatusOK, Response{Success: true, Message: msgContactOK})
	}
}

func handleApply(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, svc.MaxResume()+multipartOverhead)
		if err := r.ParseMultipartForm(multipartMemory); err != nil {
			var tooBig *http.MaxBytesError
			if errors.As(err, &tooBig) {
				writeError(w, resumeTooLarge(svc.MaxResume()), msgApplyFailed)
				return
			}
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: msgInvalidBody})
			return
		}
		defer r.MultipartForm.RemoveAll()

		req := ApplicationRequest{
			Name:      r.FormValue("name"),
			Email:     r.FormValue("email"),
			Phone:     r.FormValue("phone"),
			Position:  r.FormValue("position"),
			Message:   r.FormValue("message"),
			Timestamp: r.FormValue("timestamp"),
		}

		file, header, err := r.FormFile("resume")
		switch {
		case err == nil:
			defer file.Close()
			if header.Size > 0 {
				if header.Size > svc.MaxResume() {
					writeError(w, resumeTooLarge(svc.MaxResume()), msgApplyFailed)
					return
				}
				data, err := io.ReadAll(file)
				if err != nil {
					writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: msgInvalidBody})
					return
				}
				req.ResumeName = header.Filename
				req.Resume = data
			}
		case errors.Is(err, http.ErrMissingFile):
		default:
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: msgInvalidBody})
			return
		}

		if _, err := svc.SubmitApplication(r.Context(), req, visitor.FromRequest(r)); err != nil {
			writeError(w, err, msgApplyFailed)
			return
		}
		writeJSON(w, http.StatusOK, Response{Success: true, Message: msgApplyOK})
	}
}

// writeError maps validation failures to 400 with their message and
// everything else to 500 with the generic failure text.
func writeError(w http.ResponseWriter, err error, failure string) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: ve.Message})
		return
	}
	writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: failure})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
