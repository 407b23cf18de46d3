package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/JonnyWalker81/mindjournal/backend/internal/apierror"
	"github.com/JonnyWalker81/mindjournal/backend/internal/logger"
	"github.com/JonnyWalker81/mindjournal/backend/internal/middleware"
)

// currentUser returns the authenticated user, writing a 401 when the auth middleware
// did not run.
func currentUser(c *gin.Context) (string, bool) {
	id := c.GetString(middleware.ContextUserID)
	if id == "" {
		apierror.WriteProblem(c, apierror.NewUnauthorizedError(apierror.GetRequestID(c), "user not authenticated"))
		return "", false
	}
	return id, true
}

// pathID returns the UUID path parameter name in canonical form, writing a 400 for
// anything the store would reject as malformed.
func pathID(c *gin.Context, name, field string) (string, bool) {
	raw := c.Param(name)
	id, err := uuid.Parse(raw)
	if err != nil {
		apierror.WriteProblem(c, apierror.NewInvalidUUIDError(apierror.GetRequestID(c), field, raw))
		return "", false
	}
	return id.String(), true
}

// respondError maps err to a problem response. Server side failures are logged
// with their cause since the response hides it.
func respondError(c *gin.Context, resource string, err error) {
	problem := apierror.FromError(apierror.GetRequestID(c), resource, err)
	if problem.Status >= http.StatusInternalServerError {
		logger.Ctx(c.Request.Context()).Error("request failed",
			logger.String("resource", resource),
			logger.Int("status", problem.Status),
			logger.Err(err),
		)
	}
	apierror.WriteProblem(c, problem)
}

// respondBindError writes the problem for a body that failed to bind.
func respondBindError(c *gin.Context, err error) {
	apierror.WriteProblem(c, apierror.FromBindError(apierror.GetRequestID(c), err))
}

// respondBadQuery writes a 400 naming the offending query parameter.
func respondBadQuery(c *gin.Context, err error) {
	apierror.WriteProblem(c, apierror.NewBadRequestError(apierror.GetRequestID(c), err.Error(), "Please check your input and try again"))
}

// intQuery parses an optional integer query parameter, returning 0 when absent.
// Range checks belong to the services.
func intQuery(c *gin.Context, name string) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer", name)
	}
	return n, nil
}

// floatQuery parses an optional float query parameter, returning def when absent.
func floatQuery(c *gin.Context, name string, def float64) (float64, error) {
	raw := c.Query(name)
	if raw == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number", name)
	}
	return f, nil
}

// dateQuery accepts RFC 3339 timestamps or plain dates, which are read as UTC midnight.
func dateQuery(c *gin.Context, name string) (*time.Time, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	for _, layout := range []string{time.RFC3339, time.DateOnly} {
		if t, err := time.Parse(layout, raw); err == nil {
			t = t.UTC()
			return &t, nil
		}
	}
	return nil, fmt.Errorf("%s must be a date (YYYY-MM-DD) or RFC 3339 timestamp", name)
}

// bindOptionalJSON binds the body when one was sent. An empty body leaves req untouched.
func bindOptionalJSON(c *gin.Context, req any) error {
	if c.Request.Body == nil || c.Request.ContentLength == 0 {
		return nil
	}
	if err := c.ShouldBindJSON(req); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
