// Package apidocs holds the Swagger document served under /swagger/.
package apidocs

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
        "/": {
            "get": {
                "produces": ["text/plain"],
                "tags": ["greeting"],
                "summary": "Hello",
                "responses": {
                    "200": {"description": "Hello world!", "schema": {"type": "string"}}
                }
            }
        },
        "/hey": {
            "get": {
                "produces": ["text/plain"],
                "tags": ["greeting"],
                "summary": "Hey",
                "responses": {
                    "200": {"description": "Hey there!", "schema": {"type": "string"}}
                }
            }
        },
        "/echo": {
            "post": {
                "consumes": ["*/*"],
                "produces": ["text/plain"],
                "tags": ["greeting"],
                "summary": "Echo the request body",
                "parameters": [
                    {"description": "any bytes", "name": "body", "in": "body", "required": true, "schema": {"type": "string"}}
                ],
                "responses": {
                    "200": {"description": "the request body", "schema": {"type": "string"}},
                    "413": {"description": "request body too large", "schema": {"type": "string"}}
                }
            }
        },
        "/user": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Create a user",
                "parameters": [
                    {"description": "user", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/user.CreateUserRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/user.Response"}},
                    "400": {"description": "Invalid JSON payload.", "schema": {"type": "string"}},
                    "413": {"description": "request body too large", "schema": {"type": "string"}},
                    "500": {"description": "Database connection error / Could not create user", "schema": {"type": "string"}}
                }
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Database liveness",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/health.Response"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/health.Response"}}
                }
            }
        }
    },
    "definitions": {
        "health.Response": {
            "type": "object",
            "properties": {
                "status": {"type": "string", "example": "ok"},
                "db": {"type": "string", "example": "ok"}
            }
        },
        "user.CreateUserRequest": {
            "type": "object",
            "required": ["email", "name"],
            "properties": {
                "name": {"type": "string", "example": "Jane Doe"},
                "email": {"type": "string", "example": "jane@example.com"}
            }
        },
        "user.Response": {
            "type": "object",
            "properties": {
                "id": {"type": "integer", "example": 1},
                "name": {"type": "string", "example": "Jane Doe"},
                "email": {"type": "string", "example": "jane@example.com"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "userapi",
	Description:      "Greeting, echo and user creation endpoints.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
