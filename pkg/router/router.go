// package router wraps http.ServeMux and records enough about each route to
// describe the API as an OpenAPI document
package router

import (
	"net/http"
)

// RouteResponse represents a documented response for a specific HTTP status code
type RouteResponse struct {
	StatusCode  string    // HTTP status code (e.g., "200", "404")
	Description string    // Description of the response
	Schema      any       // Response schema/type (optional)
	Examples    []Example // Example responses (optional)
}

// Example represents an example response for documentation
type Example struct {
	ContentType string // Content type of the example (e.g., "application/json")
	Value       string // Example value as string
}

// QueryParam documents an optional query string parameter
type QueryParam struct {
	Name        string
	Description string
	Type        string // JSON schema type, "string" when empty
}

// RouteInfo stores documentation for a route
type RouteInfo struct {
	Method        string                   // HTTP method (GET, POST, etc.)
	Path          string                   // URL path, with {name} wildcards
	Name          string                   // Friendly name for the endpoint
	Description   string                   // Description of what the endpoint does
	Handler       http.Handler             // The actual handler function
	RequestType   any                      // Example request type (for schema generation)
	ResponseType  any                      // Example success response type (for schema generation)
	SuccessStatus string                   // Status code of the success response, "200" when empty
	QueryParams   []QueryParam             // Documented query parameters
	Responses     map[string]RouteResponse // Map of HTTP status codes to error responses
	Tags          []string                 // Tags for grouping endpoints
}

// Server is an entry of the document's servers list
type Server struct {
	URL         string
	Description string
}

// Tag describes a group of routes
type Tag struct {
	Name        string
	Description string
}

// RouteConfig is a builder for route configuration
type RouteConfig struct {
	router *DocRouter
	info   RouteInfo
}

// DocRouter wraps http.ServeMux to add documentation capabilities
type DocRouter struct {
	title       string
	description string
	version     string

	mux         *http.ServeMux
	handler     http.Handler
	middlewares []func(http.Handler) http.Handler
	routes      []RouteInfo
	servers     []Server
	tags        []Tag
}

// NewDocRouter creates a new documented router
func NewDocRouter(title, description, version string) *DocRouter {
	mux := http.NewServeMux()
	return &DocRouter{
		title:       title,
		description: description,
		version:     version,
		mux:         mux,
		handler:     mux,
		routes:      []RouteInfo{},
	}
}

// WithServer adds a server to the document
func (dr *DocRouter) WithServer(url, description string) *DocRouter {
	dr.servers = append(dr.servers, Server{URL: url, Description: description})
	return dr
}

// WithTag describes a tag used by routes
func (dr *DocRouter) WithTag(name, description string) *DocRouter {
	dr.tags = append(dr.tags, Tag{Name: name, Description: description})
	return dr
}

// Route starts a route configuration chain
func (dr *DocRouter) Route(method, path string, handler http.HandlerFunc) *RouteConfig {
	return &RouteConfig{
		router: dr,
		info: RouteInfo{
			Method:    method,
			Path:      path,
			Handler:   handler,
			Responses: make(map[string]RouteResponse),
		},
	}
}

// WithName adds a name to the route
func (rc *RouteConfig) WithName(name string) *RouteConfig {
	rc.info.Name = name
	return rc
}

// WithDescription adds a description to the route
func (rc *RouteConfig) WithDescription(description string) *RouteConfig {
	rc.info.Description = description
	return rc
}

// WithRequest adds a request type to the route
func (rc *RouteConfig) WithRequest(requestType any) *RouteConfig {
	rc.info.RequestType = requestType
	return rc
}

// WithResponse adds a success response type to the route
func (rc *RouteConfig) WithResponse(responseType any) *RouteConfig {
	rc.info.ResponseType = responseType
	return rc
}

// WithSuccessStatus overrides the "200" status of the success response
func (rc *RouteConfig) WithSuccessStatus(statusCode string) *RouteConfig {
	rc.info.SuccessStatus = statusCode
	return rc
}

// WithQueryParam documents a query parameter of the given JSON schema type
func (rc *RouteConfig) WithQueryParam(name, typ, description string) *RouteConfig {
	rc.info.QueryParams = append(rc.info.QueryParams, QueryParam{Name: name, Type: typ, Description: description})
	return rc
}

// WithErrorResponse adds an error response to the route
func (rc *RouteConfig) WithErrorResponse(statusCode, description string, schema any, examples ...Example) *RouteConfig {
	rc.info.Responses[statusCode] = RouteResponse{
		StatusCode:  statusCode,
		Description: description,
		Schema:      schema,
		Examples:    examples,
	}
	return rc
}

// WithTags adds tags to the route
func (rc *RouteConfig) WithTags(tags ...string) *RouteConfig {
	rc.info.Tags = tags
	return rc
}

// Register finalizes the route configuration and registers it with the router
func (rc *RouteConfig) Register() {
	// Go 1.22 pattern with method
	rc.router.mux.Handle(rc.info.Method+" "+rc.info.Path, rc.info.Handler)
	rc.router.routes = append(rc.router.routes, rc.info)
}

// Routes returns all documented routes in registration order
func (dr *DocRouter) Routes() []RouteInfo {
	return dr.routes
}

// ServeHTTP makes DocRouter implement the http.Handler interface
func (dr *DocRouter) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	dr.handler.ServeHTTP(w, r)
}

// Use wraps every route, registered before or after the call, in the given
// middlewares. The first middleware sees the request first; later calls nest
// inside earlier ones.
func (dr *DocRouter) Use(middleware ...func(http.Handler) http.Handler) {
	dr.middlewares = append(dr.middlewares, middleware...)

	var handler http.Handler = dr.mux
	for i := len(dr.middlewares) - 1; i >= 0; i-- {
		handler = dr.middlewares[i](handler)
	}
	dr.handler = handler
}
