package handlers

import (
	"context"
	"net/http"

	"church-portal/internal/api/interfaces"
	"church-portal/internal/api/models"
	"church-portal/internal/auth"

	"github.com/gin-gonic/gin"
)

type recordStore[T any] interface {
	List(ctx context.Context) ([]T, error)
	GetByID(ctx context.Context, id string) (*T, error)
	Create(ctx context.Context, record *T) error
	Update(ctx context.Context, record *T) error
	Delete(ctx context.Context, id string) error
}

type recordRequest[T any] interface {
	Validate(create bool) *models.APIError
	Apply(record *T)
}

// recordChecker is implemented by requests with rules that span fields a
// patch may not carry together. It runs on the merged record.
type recordChecker[T any] interface {
	Check(record *T) *models.APIError
}

func checkRecord[T any](req any, record *T) *models.APIError {
	if rc, ok := req.(recordChecker[T]); ok {
		return rc.Check(record)
	}
	return nil
}

// resource wires one table to the five CRUD handlers. Every handler checks
// the session and role before reading the body or touching the store.
type resource[T any, R any, PR interface {
	*R
	recordRequest[T]
}] struct {
	name     string
	store    func(interfaces.Services) recordStore[T]
	id       func(*T) string
	setOwner func(*T, string)
}

func (r resource[T, R, PR]) list(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := requirePermission(c, services, auth.OpRead); !ok {
			return
		}

		records, err := r.store(services).List(c.Request.Context())
		if err != nil {
			respondStoreError(c, services, err, "list "+r.name)
			return
		}
		if records == nil {
			records = []T{}
		}
		respondOK(c, http.StatusOK, records, "")
	}
}

func (r resource[T, R, PR]) get(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := requirePermission(c, services, auth.OpRead); !ok {
			return
		}

		record, err := r.store(services).GetByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondStoreError(c, services, err, "get "+r.name)
			return
		}
		respondOK(c, http.StatusOK, record, "")
	}
}

func (r resource[T, R, PR]) create(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		claim, ok := requirePermission(c, services, auth.OpCreate)
		if !ok {
			return
		}

		req := PR(new(R))
		if err := c.ShouldBindJSON(req); err != nil {
			respondError(c, models.NewAPIError(models.ErrCodeInvalidRequest,
				"Invalid request body", http.StatusBadRequest).WithDetails(err.Error()))
			return
		}
		if apiErr := req.Validate(true); apiErr != nil {
			respondError(c, apiErr)
			return
		}

		record := new(T)
		req.Apply(record)
		if apiErr := checkRecord(req, record); apiErr != nil {
			respondError(c, apiErr)
			return
		}
		r.setOwner(record, claim.UserID)

		if err := r.store(services).Create(c.Request.Context(), record); err != nil {
			respondStoreError(c, services, err, "create "+r.name)
			return
		}

		recordAudit(c, services, claim, r.name+"_created", r.name, r.id(record))
		respondOK(c, http.StatusCreated, record, "Record created successfully")
	}
}

func (r resource[T, R, PR]) update(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		claim, ok := requirePermission(c, services, auth.OpUpdate)
		if !ok {
			return
		}

		req := PR(new(R))
		if err := c.ShouldBindJSON(req); err != nil {
			respondError(c, models.NewAPIError(models.ErrCodeInvalidRequest,
				"Invalid request body", http.StatusBadRequest).WithDetails(err.Error()))
			return
		}
		if apiErr := req.Validate(false); apiErr != nil {
			respondError(c, apiErr)
			return
		}

		store := r.store(services)
		record, err := store.GetByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondStoreError(c, services, err, "get "+r.name)
			return
		}

		req.Apply(record)
		if apiErr := checkRecord(req, record); apiErr != nil {
			respondError(c, apiErr)
			return
		}
		if err := store.Update(c.Request.Context(), record); err != nil {
			respondStoreError(c, services, err, "update "+r.name)
			return
		}

		recordAudit(c, services, claim, r.name+"_updated", r.name, r.id(record))
		respondOK(c, http.StatusOK, record, "Record updated successfully")
	}
}

func (r resource[T, R, PR]) remove(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		claim, ok := requirePermission(c, services, auth.OpDelete)
		if !ok {
			return
		}

		id := c.Param("id")
		if err := r.store(services).Delete(c.Request.Context(), id); err != nil {
			respondStoreError(c, services, err, "delete "+r.name)
			return
		}

		recordAudit(c, services, claim, r.name+"_deleted", r.name, id)
		respondOK(c, http.StatusOK, gin.H{"id": id}, "Record deleted successfully")
	}
}
