package common

import (
	"errors"
	"net/http"

	"github.com/rcdrguez/quickquote-agent-demo/model/enum"
)

// AppError 携带 HTTP 状态码的业务错误
type AppError struct {
	Status  int
	Message string
	Details interface{}
}

func (e *AppError) Error() string {
	return e.Message
}

func NewAppError(message string, status int, details ...interface{}) *AppError {
	e := &AppError{Status: status, Message: message}
	if len(details) > 0 {
		e.Details = details[0]
	}
	return e
}

func NewNotFound(message enum.Msg, details ...interface{}) *AppError {
	return NewAppError(string(message), http.StatusNotFound, details...)
}

// ValidationDetails 字段级的校验详情, 结构与前端约定一致
type ValidationDetails struct {
	FormErrors  []string            `json:"formErrors"`
	FieldErrors map[string][]string `json:"fieldErrors"`
}

// ValidationError 入参不符合工具或接口的 schema
type ValidationError struct {
	Details ValidationDetails
}

func (e *ValidationError) Error() string {
	return string(enum.MsgValidation)
}

func NewValidationError() *ValidationError {
	return &ValidationError{Details: ValidationDetails{
		FormErrors:  []string{},
		FieldErrors: map[string][]string{},
	}}
}

// AddField 追加字段错误
func (e *ValidationError) AddField(field, message string) *ValidationError {
	e.Details.FieldErrors[field] = append(e.Details.FieldErrors[field], message)
	return e
}

// AddForm 追加与具体字段无关的错误
func (e *ValidationError) AddForm(message string) *ValidationError {
	e.Details.FormErrors = append(e.Details.FormErrors, message)
	return e
}

func (e *ValidationError) HasErrors() bool {
	return len(e.Details.FormErrors) > 0 || len(e.Details.FieldErrors) > 0
}

// ErrorBody 统一错误响应体
type ErrorBody struct {
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// Classify 将任意错误映射为状态码与响应体; 第三个返回值表示是否为未预期的错误
func Classify(err error) (int, ErrorBody, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return http.StatusBadRequest, ErrorBody{Message: string(enum.MsgValidation), Details: ve.Details}, false
	}
	var ae *AppError
	if errors.As(err, &ae) {
		return ae.Status, ErrorBody{Message: ae.Message, Details: ae.Details}, false
	}
	return http.StatusInternalServerError, ErrorBody{Message: string(enum.MsgInternal)}, true
}
