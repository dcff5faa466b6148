package model

type GetGroupsResponse struct {
	Groups []Group `json:"groups"`
}

type GetGroupResponse struct {
	Group Group `json:"group"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
