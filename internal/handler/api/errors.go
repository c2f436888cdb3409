package api

import (
	"net/http"

	"netcard-manager/internal/domain/card"
	"netcard-manager/internal/handler/httperr"
	"netcard-manager/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type cardErrorMapping struct {
	target error
	status int
	msg    string
}

var cardErrorMappings = []cardErrorMapping{
	{card.ErrNotFound, http.StatusNotFound, "Card not found"},
	{card.ErrInvalidSerial, http.StatusNotFound, "Card not found"},
	{card.ErrAlreadyActive, http.StatusConflict, "Card is already active"},
	{card.ErrNotActive, http.StatusConflict, "Card is not active"},
	{card.ErrNothingToActivate, http.StatusConflict, "Card has no remaining time"},
	{card.ErrNoRemainingBalance, http.StatusConflict, "Card has no remaining balance"},
	{card.ErrInvalidCount, http.StatusBadRequest, "Count must be between 1 and 100"},
	{card.ErrInvalidValue, http.StatusBadRequest, "Value must be one of 200, 500, 1000"},
	{card.ErrSerialSpaceExhausted, http.StatusServiceUnavailable, "Could not allocate serial numbers"},
}

func abortWithCardError(c *gin.Context, err error) {
	for _, m := range cardErrorMappings {
		if errs.Is(err, m.target) {
			httperr.AbortWithError(c, m.status, err, m.msg, nil)
			return
		}
	}
	httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
}
