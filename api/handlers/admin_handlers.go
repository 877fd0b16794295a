package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"atelier-cms/services"
)

// The admin CRUD surface is the same shape for every content collection, so
// the handlers are generic over the schema input and DTO types. Updates are
// full-record writes carrying the record's version for the optimistic
// concurrency check; a stale version maps to 409 in writeError.

// HandleList serves the admin listing for one collection.
func HandleList[R any](list func(context.Context) ([]R, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := list(c.Request.Context())
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

// HandleCreate validates and inserts one record, returning 201 with the
// created record including its assigned id.
func HandleCreate[I, R any](create func(context.Context, I) (*R, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in I
		if err := c.ShouldBindJSON(&in); err != nil {
			writeBindError(c, err)
			return
		}
		out, err := create(c.Request.Context(), in)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusCreated, out)
	}
}

// HandleUpdate applies a full-record update. The body is the entity input
// plus a top-level "version" field read separately so the input types stay
// free of transport concerns.
func HandleUpdate[I, R any](update func(ctx context.Context, id string, version int64, in I) (*R, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			writeBindError(c, err)
			return
		}
		var in I
		if err := json.Unmarshal(body, &in); err != nil {
			writeBindError(c, err)
			return
		}
		var meta struct {
			Version int64 `json:"version"`
		}
		if err := json.Unmarshal(body, &meta); err != nil {
			writeBindError(c, err)
			return
		}

		out, err := update(c.Request.Context(), c.Param("id"), meta.Version, in)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// HandleDelete removes one record by id.
func HandleDelete(remove func(context.Context, string) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := remove(c.Request.Context(), c.Param("id")); err != nil {
			writeError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// ListContactMessagesHandler serves the admin inbox, newest first.
func ListContactMessagesHandler(svc *services.ContactService) gin.HandlerFunc {
	return HandleList(svc.List)
}

// ListSubscribersHandler serves the newsletter audience, newest first.
func ListSubscribersHandler(svc *services.SubscriberService) gin.HandlerFunc {
	return HandleList(svc.List)
}
