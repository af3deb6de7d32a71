// Package docs registers the swagger document for the automation API.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Health Check",
                "responses": {"200": {"description": "API is healthy"}}
            }
        },
        "/ready": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Readiness Check",
                "responses": {"200": {"description": "API is ready"}, "500": {"description": "Catalog unavailable"}}
            }
        },
        "/live": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Liveness Check",
                "responses": {"200": {"description": "API is alive"}}
            }
        },
        "/api/v1/catalog/items": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Catalog"],
                "summary": "List catalog items",
                "parameters": [
                    {"type": "string", "enum": ["regular", "special"], "name": "kind", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Invalid kind"}}
            }
        },
        "/api/v1/catalog/stock": {
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Catalog"],
                "summary": "Set the available quantity of an item",
                "parameters": [
                    {"name": "body", "in": "body", "required": true, "schema": {"type": "object"}}
                ],
                "responses": {"200": {"description": "OK"}, "422": {"description": "Negative quantity"}}
            }
        },
        "/api/v1/view": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Window"],
                "summary": "Current window contents",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/v1/view/purchases": {
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Window"],
                "summary": "Set a purchase quantity cell",
                "parameters": [
                    {"name": "body", "in": "body", "required": true, "schema": {"type": "object"}}
                ],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Row not found"}, "422": {"description": "Quantity outside the dropdown"}}
            }
        },
        "/api/v1/actions/generate-bill": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Actions"],
                "summary": "Press Generate Bill",
                "parameters": [
                    {"name": "body", "in": "body", "required": true, "schema": {"type": "object"}}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/v1/actions/place-order": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Actions"],
                "summary": "Press Place Order",
                "parameters": [
                    {"name": "body", "in": "body", "required": true, "schema": {"type": "object"}}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/v1/actions/update-stock": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Actions"],
                "summary": "Press Update Stock",
                "parameters": [
                    {"name": "body", "in": "body", "required": true, "schema": {"type": "object"}}
                ],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Unknown item"}}
            }
        },
        "/api/v1/actions/exit": {
            "post": {
                "produces": ["application/json"],
                "tags": ["Actions"],
                "summary": "Press Exit",
                "responses": {"200": {"description": "OK"}}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1",
	Host:             "localhost:8080",
	BasePath:         "",
	Schemes:          []string{"http"},
	Title:            "Sweet Delights Bakery API",
	Description:      "Automation surface for the bakery management window.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
