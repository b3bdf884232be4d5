package common

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/rcdrguez/quickquote-agent-demo/model/enum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type lineArgs struct {
	Description string  `json:"description" binding:"required"`
	Qty         float64 `json:"qty" binding:"gt=0"`
}

type customerArgs struct {
	Name  string     `json:"name" binding:"required"`
	Email string     `json:"email,omitempty" binding:"omitempty,email"`
	Items []lineArgs `json:"items,omitempty" binding:"omitempty,dive"`
}

type CreateQuoteArgs struct {
	Title string `json:"title" binding:"required"`
}

func TestValidateFieldErrors(t *testing.T) {
	err := Validate(customerArgs{Email: "nope", Items: []lineArgs{{Description: "soporte"}}})

	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, []string{"El nombre es obligatorio"}, ve.Details.FieldErrors["name"])
	assert.Equal(t, []string{"Correo inválido"}, ve.Details.FieldErrors["email"])
	// 嵌套字段归到顶层 items
	assert.Equal(t, []string{"La cantidad debe ser mayor a 0"}, ve.Details.FieldErrors["items"])
	assert.Empty(t, ve.Details.FormErrors)
}

func TestValidateStructSpecificMessage(t *testing.T) {
	err := Validate(CreateQuoteArgs{})

	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, []string{"title es obligatorio"}, ve.Details.FieldErrors["title"])
}

func TestValidateOk(t *testing.T) {
	assert.NoError(t, Validate(customerArgs{Name: "Juan Pérez", Email: "juan@correo.com"}))
}

func TestBindErrorDecodeFailures(t *testing.T) {
	var dst customerArgs

	err := BindError(json.Unmarshal([]byte(`{"name":5}`), &dst))
	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, []string{"Se esperaba string, se recibió number"}, ve.Details.FieldErrors["name"])

	err = BindError(json.Unmarshal([]byte(`{"name":`), &dst))
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, []string{"JSON inválido"}, ve.Details.FormErrors)

	plain := errors.New("boom")
	assert.Same(t, plain, BindError(plain))
	assert.NoError(t, BindError(nil))
}

func TestClassify(t *testing.T) {
	status, body, unexpected := Classify(NewValidationError().AddField("name", "x"))
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, string(enum.MsgValidation), body.Message)
	assert.False(t, unexpected)

	status, body, unexpected = Classify(NewNotFound(enum.MsgQuoteNotFound, map[string]string{"id": "x"}))
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, string(enum.MsgQuoteNotFound), body.Message)
	assert.Equal(t, map[string]string{"id": "x"}, body.Details)
	assert.False(t, unexpected)

	status, body, unexpected = Classify(errors.New("db down"))
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, string(enum.MsgInternal), body.Message)
	assert.Nil(t, body.Details)
	assert.True(t, unexpected)
}
