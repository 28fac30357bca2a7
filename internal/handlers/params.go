package handlers

import (
	"errors"
	"math"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/emilythestrangee/news-api/backend/internal/apperr"
	"github.com/emilythestrangee/news-api/backend/internal/models"
)

func idParam(c *gin.Context, name string) (int, error) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil {
		return 0, apperr.BadRequest(err)
	}
	return id, nil
}

func bindJSON(c *gin.Context, dst any) error {
	if err := c.ShouldBindJSON(dst); err != nil {
		return apperr.BadRequest(err)
	}
	return nil
}

// incVotes reads inc_votes from the body. Absent or falsy values are a
// missing field; anything that is not a whole number is a bad request.
func incVotes(c *gin.Context) (int, error) {
	var req models.VoteRequest
	if err := bindJSON(c, &req); err != nil {
		return 0, err
	}

	switch v := req.IncVotes.(type) {
	case nil:
		return 0, apperr.MissingField("inc_votes")
	case bool:
		if !v {
			return 0, apperr.MissingField("inc_votes")
		}
	case string:
		if v == "" {
			return 0, apperr.MissingField("inc_votes")
		}
	case float64:
		if v == 0 {
			return 0, apperr.MissingField("inc_votes")
		}
		if v == math.Trunc(v) && math.Abs(v) <= math.MaxInt32 {
			return int(v), nil
		}
	}
	return 0, apperr.BadRequest(errors.New("inc_votes must be a whole number"))
}
