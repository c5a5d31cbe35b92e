package errors_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	pkgErrors "syncnotes/pkg/errors"
)

func TestHTTPError(t *testing.T) {
	err := pkgErrors.NewHTTPError(http.StatusConflict, "already exists")
	assert.Equal(t, http.StatusConflict, err.StatusCode)
	assert.Equal(t, http.StatusConflict, err.Code)
	assert.Equal(t, "http 409 (code 409): already exists", err.Error())

	coded := pkgErrors.NewHTTPErrorWithCode(http.StatusBadGateway, 50201, "upstream failed")
	var target *pkgErrors.HTTPError
	assert.True(t, errors.As(error(coded), &target))
	assert.Equal(t, 50201, target.Code)
	assert.Equal(t, http.StatusBadGateway, target.StatusCode)
}
