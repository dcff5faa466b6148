package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/maxpoletaev/libgroup/api/model"
)

type GroupsHandler struct {
	source GroupSource
}

func NewGroupsHandler(source GroupSource) *GroupsHandler {
	return &GroupsHandler{
		source: source,
	}
}

func (api *GroupsHandler) Register(r chi.Router) {
	r.Get("/groups", api.getGroups)
	r.Get("/groups/{name}", api.getGroup)
}

func (api *GroupsHandler) getGroups(w http.ResponseWriter, r *http.Request) {
	groups := api.source.Groups()
	respGroups := make([]model.Group, len(groups))

	for i, g := range groups {
		respGroups[i] = toModelGroup(g)
	}

	render.JSON(w, r, model.GetGroupsResponse{
		Groups: respGroups,
	})
}

func (api *GroupsHandler) getGroup(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	g, ok := api.source.Group(name)
	if !ok {
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, model.ErrorResponse{Error: "group not found"})

		return
	}

	render.JSON(w, r, model.GetGroupResponse{
		Group: toModelGroup(g),
	})
}
