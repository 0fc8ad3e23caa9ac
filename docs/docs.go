// Package docs registers the OpenAPI document served under /swagger/.
// Regenerate with `swag init -g cmd/main.go` after changing handler annotations.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "API Support",
            "email": "support@example.com"
        },
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/health": {
            "get": {
                "description": "Answers without touching the recipe store or the cache.",
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Liveness probe",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"type": "object", "additionalProperties": {"type": "string"}}
                    }
                }
            }
        },
        "/login": {
            "post": {
                "description": "Checks a username/password pair and returns a bearer token valid for two hours.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Log in",
                "parameters": [
                    {
                        "description": "Username and password",
                        "name": "credentials",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/model.LoginRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.LoginResponse"}},
                    "400": {"description": "Malformed request", "schema": {"$ref": "#/definitions/common.AppError"}},
                    "401": {"description": "Invalid username or password", "schema": {"$ref": "#/definitions/common.AppError"}},
                    "500": {"description": "Token could not be issued", "schema": {"$ref": "#/definitions/common.AppError"}}
                }
            }
        },
        "/api/recipes": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Returns every recipe owned by the authenticated user.",
                "produces": ["application/json"],
                "tags": ["recipes"],
                "summary": "List recipes",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/model.Recipe"}}},
                    "401": {"description": "Unauthorized: Invalid or missing token", "schema": {"$ref": "#/definitions/common.AppError"}},
                    "500": {"description": "Internal server error while retrieving recipes", "schema": {"$ref": "#/definitions/common.AppError"}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Stores a new recipe for the authenticated user. Ingredients and tags are trimmed and blank entries dropped.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["recipes"],
                "summary": "Create a recipe",
                "parameters": [
                    {
                        "description": "Recipe fields",
                        "name": "recipe",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/model.RecipeRequest"}
                    }
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/model.Recipe"}},
                    "400": {"description": "Missing title or instructions, or malformed body", "schema": {"$ref": "#/definitions/common.AppError"}},
                    "401": {"description": "Unauthorized: Invalid or missing token", "schema": {"$ref": "#/definitions/common.AppError"}},
                    "500": {"description": "Internal server error while saving the recipe", "schema": {"$ref": "#/definitions/common.AppError"}}
                }
            }
        },
        "/api/recipes/{id}": {
            "put": {
                "security": [{"BearerAuth": []}],
                "description": "Replaces title, ingredients, instructions and tags. The favorite flag is kept.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["recipes"],
                "summary": "Update a recipe",
                "parameters": [
                    {"type": "string", "description": "Recipe ID", "name": "id", "in": "path", "required": true},
                    {
                        "description": "Recipe fields",
                        "name": "recipe",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/model.RecipeRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.Recipe"}},
                    "400": {"description": "Missing title or instructions, or malformed body", "schema": {"$ref": "#/definitions/common.AppError"}},
                    "401": {"description": "Unauthorized: Invalid or missing token", "schema": {"$ref": "#/definitions/common.AppError"}},
                    "404": {"description": "Recipe not found", "schema": {"$ref": "#/definitions/common.AppError"}},
                    "500": {"description": "Internal server error while updating the recipe", "schema": {"$ref": "#/definitions/common.AppError"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["recipes"],
                "summary": "Delete a recipe",
                "parameters": [
                    {"type": "string", "description": "Recipe ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "401": {"description": "Unauthorized: Invalid or missing token", "schema": {"$ref": "#/definitions/common.AppError"}},
                    "404": {"description": "Recipe not found", "schema": {"$ref": "#/definitions/common.AppError"}},
                    "500": {"description": "Internal server error while deleting the recipe", "schema": {"$ref": "#/definitions/common.AppError"}}
                }
            }
        },
        "/api/recipes/{id}/favorite": {
            "patch": {
                "security": [{"BearerAuth": []}],
                "description": "Flips the favorite flag of a recipe and returns the updated recipe.",
                "produces": ["application/json"],
                "tags": ["recipes"],
                "summary": "Toggle favorite",
                "parameters": [
                    {"type": "string", "description": "Recipe ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.Recipe"}},
                    "401": {"description": "Unauthorized: Invalid or missing token", "schema": {"$ref": "#/definitions/common.AppError"}},
                    "404": {"description": "Recipe not found", "schema": {"$ref": "#/definitions/common.AppError"}},
                    "500": {"description": "Internal server error while updating the recipe", "schema": {"$ref": "#/definitions/common.AppError"}}
                }
            }
        }
    },
    "definitions": {
        "common.AppError": {
            "type": "object",
            "properties": {
                "code": {"type": "integer"},
                "message": {"type": "string"}
            }
        },
        "model.LoginRequest": {
            "type": "object",
            "required": ["password", "username"],
            "properties": {
                "password": {"type": "string"},
                "username": {"type": "string"}
            }
        },
        "model.LoginResponse": {
            "type": "object",
            "properties": {
                "token": {"type": "string"}
            }
        },
        "model.Recipe": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "ingredients": {"type": "array", "items": {"type": "string"}},
                "instructions": {"type": "string"},
                "isFavorite": {"type": "boolean"},
                "tags": {"type": "array", "items": {"type": "string"}},
                "title": {"type": "string"},
                "userId": {"type": "string"}
            }
        },
        "model.RecipeRequest": {
            "type": "object",
            "required": ["ingredients", "instructions", "title"],
            "properties": {
                "ingredients": {"type": "array", "items": {"type": "string"}},
                "instructions": {"type": "string"},
                "tags": {"type": "array", "items": {"type": "string"}},
                "title": {"type": "string"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8000",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Recipe API",
	Description:      "Personal recipe manager with per-user recipe storage and bearer-token authentication.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
