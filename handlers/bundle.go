package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle aggregates the handler funcs the router mounts.
type HandlerBundle struct {
	// Service directory endpoints.
	AddServiceHandler       gin.HandlerFunc
	UploadServicesHandler   gin.HandlerFunc
	ListServicesHandler     gin.HandlerFunc
	ListServiceTypesHandler gin.HandlerFunc

	// Help resolution endpoint.
	GetHelpHandler gin.HandlerFunc
}
