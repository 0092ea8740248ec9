package http

import (
	"net/http"

	"github.com/langlens/account-service/internal/utils"
	"github.com/langlens/account-service/models"
)

// writeMessage sends a {"message": ...} body with the given status. Used
// both for self-service successes and for 4xx business-rule failures.
func writeMessage(w http.ResponseWriter, status int, message string) {
	utils.WriteJSON(w, models.MessageResponse{Message: message}, status)
}

// writeInternalError sends the generic 500 body. Internal detail never
// reaches the client; it is logged upstream instead.
func writeInternalError(w http.ResponseWriter) {
	utils.WriteJSON(w, models.ErrorResponse{Error: msgInternalError}, http.StatusInternalServerError)
}
