package server

const (
	RouteHealth = "/healthz"
	RouteStatus = "/status"
)
