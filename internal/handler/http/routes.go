package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the chi router of the serve API. The middleware order
// matters: the request logger must be attached before session adoption so
// adoption events are traceable, and session adoption must run before any
// handler dispatch.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withRequestLogger)
	router.Use(h.withLogging)
	router.Use(h.withSession)

	router.Get("/status", h.status)
	router.Post("/unlock", h.unlock)
	router.Post("/lock", h.lock)

	router.Get("/list/{objects}", h.listObjects)

	router.Get("/attachment/{id}", h.getAttachment)
	router.Post("/attachment", h.createAttachment)

	router.Post("/confirm/org-member/{id}", h.confirmOrgMember)
	router.Post("/restore/item/{id}", h.restoreItem)
	router.Post("/move/{itemid}/{orgid}", h.moveItem)

	// Generic object verbs go last so the specific routes above win.
	router.Get("/{object}/{id}", h.getObject)
	router.Post("/{object}", h.createObject)
	router.Put("/{object}/{id}", h.editObject)
	router.Delete("/{object}/{id}", h.deleteObject)

	return router
}
