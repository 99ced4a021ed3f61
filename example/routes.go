package main

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/drblury/respweaver/apischema"
	"github.com/drblury/respweaver/info"
	"github.com/drblury/respweaver/jsonutil"
	"github.com/drblury/respweaver/responder"
)

const exportContentType = "application/vnd.respweaver.users+json"

type createUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

func newRouter(resp *responder.Responder, store *userStore) http.Handler {
	infoHandler := info.NewInfoHandler(
		info.WithInfoResponder(resp),
		info.WithInfoProvider(func() any {
			return map[string]string{"service": "users", "version": "1.0.0"}
		}),
		info.WithSwaggerProvider(func(ctx context.Context) ([]byte, error) {
			return apischema.Document(ctx, "Users API", "1.0.0")
		}),
	)

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/status", infoHandler.GetStatus)
	r.Get("/healthz", infoHandler.GetHealthz)
	r.Get("/readyz", infoHandler.GetReadyz)
	r.Get("/version", infoHandler.GetVersion)
	r.Get("/openapi.json", infoHandler.GetOpenAPIJSON)

	r.Route("/users", func(r chi.Router) {
		r.Method(http.MethodGet, "/", resp.Handler(func(req *http.Request) responder.Respondable {
			users := store.list()
			return responder.Of(users).WithHeader("X-Total-Count", strconv.Itoa(len(users)))
		}))
		r.Method(http.MethodGet, "/export", resp.Handler(func(req *http.Request) responder.Respondable {
			return responder.Of(store.list()).WithContentType(exportContentType)
		}))
		r.Method(http.MethodGet, "/{id}", resp.Handler(func(req *http.Request) responder.Respondable {
			id, err := strconv.Atoi(chi.URLParam(req, "id"))
			if err != nil {
				return resp.NewError(http.StatusBadRequest, err)
			}
			u, ok := store.get(id)
			if !ok {
				return responder.NotFound("user not found").WithData(map[string]int{"id": id})
			}
			return responder.Of(u).WithHeader("ETag", etag(u))
		}))
		r.Post("/", func(w http.ResponseWriter, req *http.Request) {
			var body createUserRequest
			if err := jsonutil.Decode(req.Body, &body); err != nil {
				resp.Respond(w, req, responder.BadRequest("malformed request body").WithDetails(err.Error()).WithTraceID(resp.NewTraceID()))
				return
			}
			if body.Name == "" || body.Email == "" {
				resp.Respond(w, req, responder.BadRequest("name and email are required"))
				return
			}
			u, err := store.create(body.Name, body.Email)
			if err != nil {
				resp.HandleErrors(w, req, err)
				return
			}
			resp.Respond(w, req, responder.Of(u).
				WithHeader("Location", "/users/"+strconv.Itoa(u.ID)).
				WithHeader("ETag", etag(u)).
				WithStatus(http.StatusCreated))
		})
	})

	return r
}
