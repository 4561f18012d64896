package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/osse101/questgame/internal/logger"
)

// DecodeAndValidateRequest decodes a JSON request body into req and validates
// it. On failure the error response has already been written and the handler
// should return.
//
// Example usage:
//
//	var req StepRequest
//	if err := DecodeAndValidateRequest(r, w, &req, "Toggle step"); err != nil {
//	    return
//	}
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req interface{}, actionName string) error {
	return decodeAndValidate(r, w, req, actionName, false)
}

// DecodeOptionalRequest is DecodeAndValidateRequest for endpoints whose body may be empty
func DecodeOptionalRequest(r *http.Request, w http.ResponseWriter, req interface{}, actionName string) error {
	return decodeAndValidate(r, w, req, actionName, true)
}

func decodeAndValidate(r *http.Request, w http.ResponseWriter, req interface{}, actionName string, allowEmpty bool) error {
	log := logger.FromContext(r.Context())

	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		if !(allowEmpty && errors.Is(err, io.EOF)) {
			log.Warn(fmt.Sprintf("Failed to decode %s request", actionName), "error", err)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidBody)
			return err
		}
	}

	log.Debug(fmt.Sprintf("%s request decoded", actionName))

	if err := GetValidator().ValidateStruct(req); err != nil {
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidBody,
			Fields: FormatValidationError(err),
		})
		return err
	}

	return nil
}

// GetOptionalIntQueryParam returns the integer value of a query parameter,
// or defaultValue when it is missing or not a number
func GetOptionalIntQueryParam(r *http.Request, paramName string, defaultValue int) int {
	value := r.URL.Query().Get(paramName)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}

// handleRead is the shared shape of snapshot endpoints
func handleRead[RES any](w http.ResponseWriter, r *http.Request, opName string, read func(context.Context) (RES, error)) {
	res, err := read(r.Context())
	if err != nil {
		respondServiceError(w, r, opName, err)
		return
	}
	respondJSON(w, http.StatusOK, res)
}

// handleAction decodes REQ, runs the action, and wraps its result in an ok body
func handleAction[REQ any, RES any](
	w http.ResponseWriter,
	r *http.Request,
	opName string,
	action func(context.Context, REQ) (RES, error),
	responseFactory func(RES) interface{},
) {
	var req REQ
	if err := DecodeAndValidateRequest(r, w, &req, opName); err != nil {
		return
	}

	res, err := action(r.Context(), req)
	if err != nil {
		respondServiceError(w, r, opName, err)
		return
	}

	respondJSON(w, http.StatusOK, responseFactory(res))
}
