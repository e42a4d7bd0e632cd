package handler

import (
	"encoding/json"
	"log"
	"net/http"

	"auth-web-server/internal/apperrors"
	"auth-web-server/internal/model/requestresponse"
)

func sendSuccess(w http.ResponseWriter, statusCode int, code string, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(requestresponse.Success(code, data)); err != nil {
		log.Println("ошибка кодирования ответа:", err)
	}
}

// sendErrorResponse переводит доменную ошибку в конверт ответа.
// Нераспознанные ошибки превращаются в 500 без деталей для клиента.
func sendErrorResponse(w http.ResponseWriter, err error) {
	log.Println(err)

	status, code, message := apperrors.Translate(err)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if encodeErr := json.NewEncoder(w).Encode(requestresponse.Fail(code, message)); encodeErr != nil {
		log.Println("ошибка кодирования ответа:", encodeErr)
	}
}
