package catalog

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"ProductCatalog/pkg/kit"
)

const (
	apiTitle   = "Product Catalog API"
	apiVersion = "2.0.0"

	readyTimeout = 1 * time.Second
)

// Server exposes the catalog over HTTP. Store is shared by all requests;
// every request gets its own Service around it.
type Server struct {
	Store Store
	Log   *zap.Logger

	// WriteLimit, when set, wraps the mutating product routes.
	WriteLimit func(http.Handler) http.Handler
}

func (s *Server) service() *Service {
	return NewService(s.Store)
}

func (s *Server) log() *zap.Logger {
	if s.Log == nil {
		return zap.NewNop()
	}
	return s.Log
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Get("/", s.health)
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })
	r.Get("/readyz", s.ready)
	r.Get("/openapi.yaml", s.openapi)
	r.Get("/docs", s.docs)

	r.Route("/products", func(pr chi.Router) {
		pr.Get("/", s.page)

		pr.Route("/api", func(ar chi.Router) {
			ar.Get("/", s.list)
			ar.Get("/{id}", s.get)

			ar.Group(func(wr chi.Router) {
				if s.WriteLimit != nil {
					wr.Use(s.WriteLimit)
				}
				wr.Post("/", s.create)
				wr.Put("/{id}", s.update)
				wr.Delete("/{id}", s.delete)
			})
		})
	})

	return r
}

func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	kit.WriteJSON(w, http.StatusOK, HealthResponse{
		Status:  "healthy",
		Message: apiTitle + " is running",
		Version: apiVersion,
	})
}

func (s *Server) ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), readyTimeout)
	defer cancel()

	if err := s.Store.Ping(ctx); err != nil {
		s.log().Warn("readyz failed", zap.Error(err))
		kit.WriteError(w, r, http.StatusServiceUnavailable, "not ready", nil)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (s *Server) create(w http.ResponseWriter, r *http.Request) {
	var req ProductCreate
	if err := decodeBody(w, r, &req); err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad json", err.Error())
		return
	}
	if err := validate.Struct(req); err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "validation failed", validationDetail(err))
		return
	}

	p, err := s.service().CreateProduct(r.Context(), req.Name, req.Description, req.Price, req.Category)
	if err != nil {
		s.writeServiceError(w, r, "create product failed", err)
		return
	}
	kit.WriteJSON(w, http.StatusCreated, toResponse(p))
}

func (s *Server) list(w http.ResponseWriter, r *http.Request) {
	products, err := s.service().GetAllProducts(r.Context())
	if err != nil {
		s.writeServiceError(w, r, "list products failed", err)
		return
	}
	kit.WriteJSON(w, http.StatusOK, toResponses(products))
}

func (s *Server) get(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r)
	if !ok {
		return
	}

	p, found, err := s.service().GetProduct(r.Context(), id)
	if err != nil {
		s.writeServiceError(w, r, "get product failed", err, zap.Stringer("id", id))
		return
	}
	if !found {
		kit.WriteError(w, r, http.StatusNotFound, "not found", notFoundDetail(id))
		return
	}
	kit.WriteJSON(w, http.StatusOK, toResponse(p))
}

func (s *Server) update(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r)
	if !ok {
		return
	}

	var req ProductUpdate
	if err := decodeBody(w, r, &req); err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad json", err.Error())
		return
	}
	if err := validate.Struct(req); err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "validation failed", validationDetail(err))
		return
	}

	p, found, err := s.service().UpdateProduct(r.Context(), id, req.Patch())
	if err != nil {
		s.writeServiceError(w, r, "update product failed", err, zap.Stringer("id", id))
		return
	}
	if !found {
		kit.WriteError(w, r, http.StatusNotFound, "not found", notFoundDetail(id))
		return
	}
	kit.WriteJSON(w, http.StatusOK, toResponse(p))
}

func (s *Server) delete(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r)
	if !ok {
		return
	}

	deleted, err := s.service().DeleteProduct(r.Context(), id)
	if err != nil {
		s.writeServiceError(w, r, "delete product failed", err, zap.Stringer("id", id))
		return
	}
	if !deleted {
		kit.WriteError(w, r, http.StatusNotFound, "not found", notFoundDetail(id))
		return
	}
	kit.WriteNoContent(w)
}

func (s *Server) pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	raw := chi.URLParam(r, "id")
	id, err := uuid.Parse(raw)
	if err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "invalid id", map[string]any{"id": raw})
		return uuid.Nil, false
	}
	return id, true
}

func (s *Server) writeServiceError(w http.ResponseWriter, r *http.Request, msg string, err error, fields ...zap.Field) {
	if errors.Is(err, ErrInvalidArgument) {
		kit.WriteError(w, r, http.StatusBadRequest, "invalid argument", err.Error())
		return
	}
	s.log().Error(msg, append(fields, zap.Error(err))...)
	kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
}
