package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-user-keeper/internal/logger"
	"github.com/MKhiriev/go-user-keeper/internal/utils"
	"github.com/MKhiriev/go-user-keeper/models"
)

// malformedBody stands in for a request body that could not be decoded.
const malformedBody = "<malformed body>"

// audit writes the audit entry of the request:
//
//	|DATA : <data> |
//	|DATA : <data> | <outcome>
func (h *Handler) audit(r *http.Request, level models.LogLevel, data, outcome string, err error) {
	message := fmt.Sprintf("|DATA : %s |", data)
	if outcome != "" {
		message += " " + outcome
	}

	h.services.AuditService.Record(r.Context(), level, message, err)
}

// fail audits err and answers with the status and message it maps to.
// Not-found outcomes are recorded without an exception.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, data string, err error) {
	status := statusFromError(err)
	message := messageFromError(err)

	logger.FromRequest(r).Err(err).Int("status", status).Msg("request failed")

	exception := err
	if status == http.StatusNotFound {
		exception = nil
	}

	h.audit(r, levelFromStatus(status), data, message, exception)
	utils.WriteMessage(w, message, status)
}

func dataPagination(pageNumber, pageSize any) string {
	return fmt.Sprintf("pageNumber = %v, pageSize = %v", pageNumber, pageSize)
}

func dataID(id any) string {
	return fmt.Sprintf("ID = %v", id)
}

func dataIDBody(id any, body any) string {
	return fmt.Sprintf("ID = %v, %s", id, dataBody(body))
}

// dataBody renders body as JSON. Callers pass redacted request copies.
func dataBody(body any) string {
	if s, ok := body.(string); ok {
		return s
	}

	b, err := json.Marshal(body)
	if err != nil {
		return malformedBody
	}
	return string(b)
}
