package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Lotus Arcana Moderation API",
        "description": "Submission, moderation and catalog backend for Lotus Arcana",
        "version": "1.0.0"
    },
    "basePath": "/api/v1",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Drafts", "description": "Public submission intake"},
        {"name": "Moderation", "description": "Admin review queue"},
        {"name": "Catalog", "description": "Approved course catalog"},
        {"name": "Admin Session", "description": "Admin session gate"},
        {"name": "Exports", "description": "Catalog snapshots"}
    ],
    "paths": {
        "/drafts": {
            "post": {
                "tags": ["Drafts"],
                "summary": "Submit a video draft for moderation",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/SubmitDraftRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/courses": {
            "get": {
                "tags": ["Catalog"],
                "summary": "List approved courses",
                "parameters": [
                    {"name": "category", "in": "query", "type": "string", "enum": ["easy", "medium", "hard"]},
                    {"name": "search", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/courses/{id}/views": {
            "post": {
                "tags": ["Catalog"],
                "summary": "Increment the view counter",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not found"}
                }
            }
        },
        "/admin/session": {
            "post": {
                "tags": ["Admin Session"],
                "summary": "Exchange the admin access key for a session token",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateSessionRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "401": {"description": "Invalid access key"}
                }
            },
            "get": {
                "tags": ["Admin Session"],
                "summary": "Check session validity",
                "responses": {
                    "200": {"description": "OK"},
                    "401": {"description": "Unauthorized"}
                }
            },
            "delete": {
                "tags": ["Admin Session"],
                "summary": "Clear the session cookie",
                "responses": {
                    "204": {"description": "No Content"}
                }
            }
        },
        "/admin/drafts": {
            "get": {
                "tags": ["Moderation"],
                "summary": "List drafts awaiting review",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/admin/drafts/{id}/approve": {
            "post": {
                "tags": ["Moderation"],
                "summary": "Approve a pending draft",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Draft not found"},
                    "409": {"description": "Draft already published"}
                }
            }
        },
        "/admin/drafts/{id}/reject": {
            "post": {
                "tags": ["Moderation"],
                "summary": "Reject a pending draft",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/admin/maintenance/drafts/purge": {
            "post": {
                "tags": ["Moderation"],
                "summary": "Sweep drafts already published to the catalog",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/admin/courses": {
            "get": {
                "tags": ["Catalog"],
                "summary": "List all catalog rows",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/admin/courses/{id}": {
            "delete": {
                "tags": ["Catalog"],
                "summary": "Delete a published course",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not found"}
                }
            }
        },
        "/admin/export/courses": {
            "get": {
                "tags": ["Exports"],
                "summary": "Download the catalog as CSV or PDF",
                "parameters": [
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"]}
                ],
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        }
    },
    "definitions": {
        "QuizQuestion": {
            "type": "object",
            "properties": {
                "question": {"type": "string"},
                "options": {"type": "array", "items": {"type": "string"}},
                "correct_answer": {"type": "integer"},
                "explanation": {"type": "string"}
            },
            "required": ["question", "options", "correct_answer"]
        },
        "SubmitDraftRequest": {
            "type": "object",
            "properties": {
                "title": {"type": "string"},
                "description": {"type": "string"},
                "video_url": {"type": "string"},
                "thumbnail_url": {"type": "string"},
                "category": {"type": "string", "enum": ["easy", "medium", "hard"]},
                "duration": {"type": "string"},
                "quiz_questions": {"type": "array", "items": {"$ref": "#/definitions/QuizQuestion"}}
            },
            "required": ["title", "description", "video_url", "category", "duration"]
        },
        "CreateSessionRequest": {
            "type": "object",
            "properties": {
                "access_key": {"type": "string"}
            },
            "required": ["access_key"]
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"},
                "meta": {"type": "object"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
