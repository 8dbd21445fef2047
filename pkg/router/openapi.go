package router

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode"
)

const openAPIVersion = "3.0.3"

// OpenAPI builds the OpenAPI document describing every registered route
func (dr *DocRouter) OpenAPI() map[string]any {
	gen := newSchemaGenerator()

	doc := map[string]any{
		"openapi": openAPIVersion,
		"info": map[string]any{
			"title":       dr.title,
			"description": dr.description,
			"version":     dr.version,
		},
		"paths": dr.generatePaths(gen),
	}

	if len(dr.servers) > 0 {
		servers := make([]any, 0, len(dr.servers))
		for _, s := range dr.servers {
			servers = append(servers, map[string]any{"url": s.URL, "description": s.Description})
		}
		doc["servers"] = servers
	}

	if len(dr.tags) > 0 {
		tags := make([]any, 0, len(dr.tags))
		for _, t := range dr.tags {
			tags = append(tags, map[string]any{"name": t.Name, "description": t.Description})
		}
		doc["tags"] = tags
	}

	// generated last so every schema referenced by a path is registered
	doc["components"] = map[string]any{
		"schemas": gen.registry.schemas,
	}

	return doc
}

// OpenAPIJSON renders OpenAPI as indented JSON
func (dr *DocRouter) OpenAPIJSON() ([]byte, error) {
	data, err := json.MarshalIndent(dr.OpenAPI(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal openapi document: %w", err)
	}
	return data, nil
}

// generatePaths creates the paths section of the document
func (dr *DocRouter) generatePaths(gen *schemaGenerator) map[string]any {
	paths := map[string]any{}

	for _, route := range dr.routes {
		pathItem, ok := paths[route.Path].(map[string]any)
		if !ok {
			pathItem = map[string]any{}
			paths[route.Path] = pathItem
		}

		method := strings.ToLower(route.Method)
		operation := map[string]any{
			"summary":     route.Name,
			"operationId": operationID(method, route.Path),
			"responses":   generateResponses(route, gen),
		}

		if route.Description != "" {
			operation["description"] = route.Description
		}

		if len(route.Tags) > 0 {
			operation["tags"] = route.Tags
		}

		parameters := generatePathParameters(extractPathParams(route.Path))
		parameters = append(parameters, generateQueryParameters(route.QueryParams)...)
		if len(parameters) > 0 {
			operation["parameters"] = parameters
		}

		if route.RequestType != nil {
			operation["requestBody"] = map[string]any{
				"description": fmt.Sprintf("request body for %s", route.Name),
				"required":    true,
				"content": map[string]any{
					"application/json": map[string]any{
						"schema": gen.schemaFor(route.RequestType),
					},
				},
			}
		}

		pathItem[method] = operation
	}

	return paths
}

// operationID derives a stable identifier such as "post_timers_id_stop"
func operationID(method, path string) string {
	words := strings.FieldsFunc(path, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	if len(words) == 0 {
		return method + "_root"
	}
	return method + "_" + strings.Join(words, "_")
}

// extractPathParams gets path parameters from a ServeMux pattern path,
// including "{name...}" wildcards
func extractPathParams(path string) []string {
	var params []string

	for _, part := range strings.Split(path, "/") {
		if len(part) > 2 && part[0] == '{' && part[len(part)-1] == '}' {
			name := strings.TrimSuffix(part[1:len(part)-1], "...")
			if name != "$" {
				params = append(params, name)
			}
		}
	}

	return params
}

// generatePathParameters creates parameter objects for path parameters
func generatePathParameters(params []string) []any {
	var parameters []any

	for _, param := range params {
		parameters = append(parameters, map[string]any{
			"name":     param,
			"in":       "path",
			"required": true,
			"schema": map[string]any{
				"type": "string",
			},
			"description": fmt.Sprintf("%s parameter", param),
		})
	}

	return parameters
}

// generateQueryParameters creates parameter objects for optional query parameters
func generateQueryParameters(params []QueryParam) []any {
	var parameters []any

	for _, p := range params {
		typ := p.Type
		if typ == "" {
			typ = "string"
		}
		parameters = append(parameters, map[string]any{
			"name":        p.Name,
			"in":          "query",
			"required":    false,
			"schema":      map[string]any{"type": typ},
			"description": p.Description,
		})
	}

	return parameters
}

// generateResponses documents the success response and every error response
func generateResponses(route RouteInfo, gen *schemaGenerator) map[string]any {
	responses := map[string]any{}

	for statusCode, rr := range route.Responses {
		content := map[string]any{}
		media := func(contentType string) map[string]any {
			if contentType == "" {
				contentType = "application/json"
			}
			m, ok := content[contentType].(map[string]any)
			if !ok {
				m = map[string]any{}
				content[contentType] = m
			}
			return m
		}

		if rr.Schema != nil {
			media("")["schema"] = gen.schemaFor(rr.Schema)
		}

		for i, ex := range rr.Examples {
			m := media(ex.ContentType)
			examples, ok := m["examples"].(map[string]any)
			if !ok {
				examples = map[string]any{}
				m["examples"] = examples
			}
			examples[fmt.Sprintf("example%d", i+1)] = map[string]any{"value": ex.Value}
		}

		response := map[string]any{
			"description": rr.Description,
		}
		if len(content) > 0 {
			response["content"] = content
		}

		responses[statusCode] = response
	}

	success := route.SuccessStatus
	if success == "" {
		success = "200"
	}
	if _, exists := responses[success]; !exists {
		response := map[string]any{
			"description": "successful operation",
		}
		if route.ResponseType != nil {
			response["content"] = map[string]any{
				"application/json": map[string]any{
					"schema": gen.schemaFor(route.ResponseType),
				},
			}
		}
		responses[success] = response
	}

	return responses
}
