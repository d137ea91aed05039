package response

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/go-playground/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusOKWithData(t *testing.T) {
	data := CreatedPlanet{PlanetID: 4}
	resp := StatusOKWithData("You added a planet", data)

	assert.Equal(t, StatusOK, resp.Status)
	assert.Equal(t, "You added a planet", resp.Message)
	assert.Equal(t, data, resp.Data)
}

func TestOK_OmitsData(t *testing.T) {
	raw, err := json.Marshal(OK("You deleted a planet"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"OK","message":"You deleted a planet"}`, string(raw))
}

func TestError(t *testing.T) {
	msg := "That planet does not exist"
	resp := Error(msg)

	assert.Equal(t, StatusError, resp.Status)
	assert.Equal(t, msg, resp.Message)
}

func TestLogin(t *testing.T) {
	raw, err := json.Marshal(Login("abc"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"OK","message":"Login Succeeded","access_token":"abc"}`, string(raw))
}

func TestValidationError(t *testing.T) {
	type TestStruct struct {
		Name  string   `validate:"required"`
		Email string   `validate:"email"`
		Mass  *float64 `validate:"required,gte=0"`
	}

	negative := -1.0
	v := validator.New()
	err := v.Struct(TestStruct{Email: "not-an-email", Mass: &negative})
	require.Error(t, err)

	resp := ValidationError(err.(validator.ValidationErrors))

	assert.Equal(t, StatusError, resp.Status)
	assert.Contains(t, resp.Message, "field Name is a required field")
	assert.Contains(t, resp.Message, "field Email must be a valid email")
	assert.Contains(t, resp.Message, "field Mass must be gte 0")
}

func TestValidationError_Finite(t *testing.T) {
	type TestStruct struct {
		Radius float64 `validate:"finite"`
	}

	v := validator.New()
	require.NoError(t, v.RegisterValidation("finite", func(fl validator.FieldLevel) bool {
		return !math.IsInf(fl.Field().Float(), 0)
	}))
	err := v.Struct(TestStruct{Radius: math.Inf(1)})
	require.Error(t, err)

	resp := ValidationError(err.(validator.ValidationErrors))
	assert.Equal(t, "field Radius must be a finite number", resp.Message)
}
