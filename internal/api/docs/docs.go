// Package docs registers the OpenAPI document served at /swagger/*.
// Keep it in sync with the godoc annotations on the router handlers.
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
        "/machines": {
            "get": {
                "produces": ["application/json"],
                "tags": ["machines"],
                "summary": "List machine sessions",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/session.Info"}}}
                }
            },
            "post": {
                "description": "Builds a machine from a YAML definition or a structured config (built-in parity when both are empty) and loads the input.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["machines"],
                "summary": "Create a machine session",
                "parameters": [
                    {"description": "Machine definition", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.CreateMachineRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/session.Info"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/machines/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["machines"],
                "summary": "Get a machine session",
                "parameters": [
                    {"type": "string", "description": "Session ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/session.Info"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            },
            "delete": {
                "tags": ["machines"],
                "summary": "Delete a machine session",
                "parameters": [
                    {"type": "string", "description": "Session ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/machines/{id}/step": {
            "post": {
                "description": "Halted machines return the same terminal status without changing.",
                "produces": ["application/json"],
                "tags": ["machines"],
                "summary": "Execute one step",
                "parameters": [
                    {"type": "string", "description": "Session ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.StepResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/machines/{id}/run": {
            "post": {
                "description": "Steps the machine up to limit times and records the outcome in run history.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["machines"],
                "summary": "Run until halt or limit",
                "parameters": [
                    {"type": "string", "description": "Session ID", "name": "id", "in": "path", "required": true},
                    {"description": "Step limit", "name": "request", "in": "body", "schema": {"$ref": "#/definitions/dto.RunRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.RunResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/machines/{id}/load": {
            "post": {
                "description": "Resets the tape to the input plus blank padding, the head to 0 and the state to start.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["machines"],
                "summary": "Load new input",
                "parameters": [
                    {"type": "string", "description": "Session ID", "name": "id", "in": "path", "required": true},
                    {"description": "Input", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.LoadRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/session.Info"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/machines/{id}/diagram": {
            "get": {
                "produces": ["text/plain"],
                "tags": ["machines"],
                "summary": "Render the machine as DOT",
                "parameters": [
                    {"type": "string", "description": "Session ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "string"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/tokenize": {
            "post": {
                "description": "Splits text with the scanning tokenizer, tags the tokens and records the result.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["tokenizer"],
                "summary": "Tokenize and tag text",
                "parameters": [
                    {"description": "Text to tokenize", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.TokenizeRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.TokenizeResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/diagram/tokenizer": {
            "get": {
                "produces": ["text/plain"],
                "tags": ["tokenizer"],
                "summary": "Tokenizer state diagram",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "string"}}
                }
            }
        },
        "/runs": {
            "get": {
                "description": "Newest first, offset paginated.",
                "produces": ["application/json"],
                "tags": ["runs"],
                "summary": "List recorded runs",
                "parameters": [
                    {"type": "integer", "default": 1, "description": "Page number", "name": "page", "in": "query"},
                    {"type": "integer", "default": 20, "description": "Page size", "name": "size", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/pagination.OffsetResult-domain_Run"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/runs/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["runs"],
                "summary": "Get a recorded run",
                "parameters": [
                    {"type": "string", "description": "Run ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Run"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "domain.Run": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "definition": {"type": "string"},
                "session_id": {"type": "string"},
                "input": {"type": "string"},
                "status": {"type": "string", "enum": ["Continue", "Accepted", "Rejected"]},
                "steps": {"type": "integer"},
                "final_state": {"type": "string"},
                "tape": {"type": "array", "items": {"type": "string"}},
                "created_at": {"type": "string"}
            }
        },
        "dto.CreateMachineRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "definition": {"type": "string", "description": "YAML machine definition"},
                "config": {"$ref": "#/definitions/machine.Config"},
                "input": {"type": "string"}
            }
        },
        "dto.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "title": {"type": "string"}
            }
        },
        "dto.LoadRequest": {
            "type": "object",
            "properties": {
                "input": {"type": "string"}
            }
        },
        "dto.RunRequest": {
            "type": "object",
            "properties": {
                "limit": {"type": "integer"}
            }
        },
        "dto.RunResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string"},
                "taken": {"type": "integer"},
                "elapsed_ms": {"type": "number"},
                "session": {"$ref": "#/definitions/session.Info"},
                "run": {"$ref": "#/definitions/domain.Run"}
            }
        },
        "dto.StepResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string"},
                "session": {"$ref": "#/definitions/session.Info"}
            }
        },
        "dto.TokenizeRequest": {
            "type": "object",
            "properties": {
                "text": {"type": "string"},
                "trace": {"type": "boolean"}
            }
        },
        "dto.TokenizeResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "tokens": {"type": "array", "items": {"type": "string"}},
                "pos": {"type": "array", "items": {"$ref": "#/definitions/tagging.Tagged"}},
                "entities": {"type": "array", "items": {"$ref": "#/definitions/tagging.Tagged"}},
                "snapshots": {"type": "array", "items": {"$ref": "#/definitions/tokenizer.Snapshot"}}
            }
        },
        "machine.Config": {
            "type": "object",
            "properties": {
                "states": {"type": "array", "items": {"type": "string"}},
                "input_symbols": {"type": "array", "items": {"type": "string"}},
                "tape_symbols": {"type": "array", "items": {"type": "string"}},
                "blank": {"type": "string"},
                "start": {"type": "string"},
                "accept": {"type": "array", "items": {"type": "string"}},
                "rules": {"type": "array", "items": {"$ref": "#/definitions/machine.Rule"}}
            }
        },
        "machine.Rule": {
            "type": "object",
            "properties": {
                "state": {"type": "string"},
                "read": {"type": "string"},
                "next": {"type": "string"},
                "write": {"type": "string"},
                "move": {"type": "string", "enum": ["L", "R"]}
            }
        },
        "machine.Snapshot": {
            "type": "object",
            "properties": {
                "status": {"type": "string"},
                "state": {"type": "string"},
                "head": {"type": "integer"},
                "tape": {"type": "array", "items": {"type": "string"}},
                "window": {"type": "string"},
                "window_head": {"type": "integer"},
                "steps": {"type": "integer"}
            }
        },
        "pagination.OffsetResult-domain_Run": {
            "type": "object",
            "properties": {
                "items": {"type": "array", "items": {"$ref": "#/definitions/domain.Run"}},
                "total": {"type": "integer"},
                "page": {"type": "integer"},
                "size": {"type": "integer"},
                "has_more": {"type": "boolean"}
            }
        },
        "session.Info": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "input": {"type": "string"},
                "created_at": {"type": "string"},
                "snapshot": {"$ref": "#/definitions/machine.Snapshot"}
            }
        },
        "tagging.Tagged": {
            "type": "object",
            "properties": {
                "token": {"type": "string"},
                "tag": {"type": "string"}
            }
        },
        "tokenizer.Snapshot": {
            "type": "object",
            "properties": {
                "head": {"type": "integer"},
                "state": {"type": "string", "enum": ["START", "READING_TOKEN"]},
                "symbol": {"type": "string"},
                "current_token": {"type": "string"},
                "tokens": {"type": "array", "items": {"type": "string"}}
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
	Title:            "Turing NLP API",
	Description:      "Step-wise Turing machine sessions, a scanning tokenizer with POS and entity tagging, and recorded run history",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
