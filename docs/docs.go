// Package docs registers the Swagger document served at /swagger.
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
        "/api/chat": {
            "post": {
                "description": "Answers a visitor message. Falls back to curated responses when no AI provider can answer.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Chat"],
                "summary": "Chat with the portfolio assistant",
                "parameters": [
                    {
                        "description": "Visitor message",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/http.chatReq"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.chatResp"}},
                    "400": {"description": "Message is required", "schema": {"$ref": "#/definitions/http.errorResp"}},
                    "429": {"description": "Too many requests"}
                }
            }
        },
        "/api/chat/suggestions": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Chat"],
                "summary": "Quick-reply suggestions",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/api/v1/profile/github": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Profile"],
                "summary": "Live GitHub profile and recent repositories",
                "responses": {
                    "200": {"description": "OK"},
                    "503": {"description": "Profile unavailable"}
                }
            }
        },
        "/api/v1/contact": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Contact"],
                "summary": "Send a contact message",
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Invalid request"},
                    "502": {"description": "Delivery failed"},
                    "503": {"description": "Contact form disabled"}
                }
            }
        },
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
                "responses": {"200": {"description": "API is ready"}}
            }
        },
        "/live": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Liveness Check",
                "responses": {"200": {"description": "API is alive"}}
            }
        }
    },
    "definitions": {
        "http.chatReq": {
            "type": "object",
            "properties": {
                "message": {"type": "string", "example": "What projects have you built?"}
            }
        },
        "http.chatResp": {
            "type": "object",
            "properties": {
                "response": {"type": "string"},
                "isFromFallback": {"type": "boolean"},
                "category": {"type": "string"},
                "reason": {"type": "string"}
            }
        },
        "http.errorResp": {
            "type": "object",
            "properties": {
                "error": {"type": "string", "example": "Message is required"}
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
	Title:            "Portfolio Assistant API",
	Description:      "Backend for the portfolio site: chatbot with curated fallback, GitHub profile, contact form.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
