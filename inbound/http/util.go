package http

import (
	"encoding/json"
	"errors"
	"github.com/go-playground/validator/v10"
	"net/http"
	"tickto/common/errs"
	"tickto/model"
)

func writeJSONResponse(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if data == nil {
		return
	}

	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

func writeErrorResponse(w http.ResponseWriter, err error) {
	if err == nil {
		return
	}

	w.Header().Set("Content-Type", "application/json")

	var message string
	var data any

	var httpErr *errs.HttpError
	var validationErr validator.ValidationErrors
	var purchaseErr *errs.PurchaseError

	switch {
	case errors.As(err, &httpErr):
		message = httpErr.Message
		data = httpErr.Data
		w.WriteHeader(httpErr.Code)
	case errors.As(err, &validationErr):
		message = "Validation failed"
		w.WriteHeader(http.StatusBadRequest)

		validationErrors := make(map[string]string)
		for _, fieldErr := range validationErr {
			validationErrors[fieldErr.Field()] = fieldErr.Tag()
		}

		data = validationErrors
	case errors.As(err, &purchaseErr):
		message = purchaseErr.Kind.Message()
		data = purchaseErrorData{Kind: string(purchaseErr.Kind), Receipt: purchaseErr.Receipt}
		w.WriteHeader(purchaseErr.Kind.HttpStatus())
	case errors.Is(err, errs.ErrNotFound):
		message = "Not Found"
		w.WriteHeader(http.StatusNotFound)
	default:
		message = "Internal Server Error"
		w.WriteHeader(http.StatusInternalServerError)
	}

	errorResponse := model.ErrorResponse{Error: message, Data: data}
	if err := json.NewEncoder(w).Encode(errorResponse); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

type purchaseErrorData struct {
	Kind    string                `json:"kind"`
	Receipt *model.PaymentReceipt `json:"receipt,omitempty"`
}
