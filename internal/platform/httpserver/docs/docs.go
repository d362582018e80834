// Package docs holds the generated OpenAPI document served at /swagger/.
// Regenerate with: swag init -g internal/platform/httpserver/server.go -o internal/platform/httpserver/docs
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
        "/api/contestant/v1/records": {
            "get": {
                "produces": ["application/json"],
                "tags": ["contestant-lifecycle"],
                "summary": "Read the full contestant workspace snapshot",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/contestant/v1/onboarding": {
            "get": {
                "produces": ["application/json"],
                "tags": ["contestant-lifecycle"],
                "summary": "Read the onboarding record",
                "responses": {"200": {"description": "OK"}}
            },
            "patch": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["contestant-lifecycle"],
                "summary": "Shallow-merge a patch into the onboarding record",
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}
            }
        },
        "/api/contestant/v1/compliance": {
            "get": {
                "produces": ["application/json"],
                "tags": ["contestant-lifecycle"],
                "summary": "Read the compliance record",
                "responses": {"200": {"description": "OK"}}
            },
            "patch": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["contestant-lifecycle"],
                "summary": "Shallow-merge a patch into the compliance record",
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}
            }
        },
        "/api/contestant/v1/profile": {
            "get": {
                "produces": ["application/json"],
                "tags": ["contestant-lifecycle"],
                "summary": "Read the public profile",
                "responses": {"200": {"description": "OK"}}
            },
            "patch": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["contestant-lifecycle"],
                "summary": "Shallow-merge a patch into the public profile",
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}
            }
        },
        "/api/contestant/v1/media": {
            "get": {
                "produces": ["application/json"],
                "tags": ["contestant-lifecycle"],
                "summary": "List media assets",
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["contestant-lifecycle"],
                "summary": "Append a media asset in pending review status",
                "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}
            }
        },
        "/api/contestant/v1/readiness": {
            "get": {
                "produces": ["application/json"],
                "tags": ["contestant-lifecycle"],
                "summary": "Compute the completion checklist and score",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/contestant/v1/publishing": {
            "get": {
                "produces": ["application/json"],
                "tags": ["contestant-lifecycle"],
                "summary": "Read the publishing state",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/contestant/v1/submission-status": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["contestant-lifecycle"],
                "summary": "Contestant-driven submission status transition",
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}
            }
        },
        "/api/contestant/v1/admin-review": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["contestant-lifecycle"],
                "summary": "Admin review action: approve, reject or reopen",
                "parameters": [{"type": "string", "name": "Idempotency-Key", "in": "header"}],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "409": {"description": "Conflict"}}
            }
        },
        "/api/contestant/v1/change-requests": {
            "get": {
                "produces": ["application/json"],
                "tags": ["contestant-lifecycle"],
                "summary": "List change requests, newest first",
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["contestant-lifecycle"],
                "summary": "Queue an edit proposal against a locked record",
                "parameters": [{"type": "string", "name": "Idempotency-Key", "in": "header"}],
                "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}
            }
        },
        "/api/contestant/v1/change-requests/{request_id}/review": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["contestant-lifecycle"],
                "summary": "Resolve a pending change request exactly once",
                "parameters": [
                    {"type": "string", "name": "request_id", "in": "path", "required": true},
                    {"type": "string", "name": "Idempotency-Key", "in": "header"}
                ],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}, "409": {"description": "Conflict"}}
            }
        },
        "/api/contestant/v1/audit": {
            "get": {
                "produces": ["application/json"],
                "tags": ["contestant-lifecycle"],
                "summary": "List the bounded audit trail, newest first",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/contestant/v1/profile-versions": {
            "get": {
                "produces": ["application/json"],
                "tags": ["contestant-lifecycle"],
                "summary": "List the profile version ledger, newest first",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/contestant/v1/visibility/{slug}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["contestant-lifecycle"],
                "summary": "Check whether a public slug may be served",
                "parameters": [{"type": "string", "name": "slug", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/partnerships/v1/offers": {
            "get": {
                "produces": ["application/json"],
                "tags": ["partnerships"],
                "summary": "List sponsor offers with negotiation threads",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/partnerships/v1/offers/{offer_id}": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["partnerships"],
                "summary": "Apply a negotiation action and/or thread a message",
                "parameters": [{"type": "string", "name": "offer_id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            }
        },
        "/api/security/v1/cases": {
            "get": {
                "produces": ["application/json"],
                "tags": ["moderation-safety"],
                "summary": "List security cases",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/security/v1/cases/{case_id}": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["moderation-safety"],
                "summary": "Relabel and/or annotate a security case",
                "parameters": [{"type": "string", "name": "case_id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            }
        }
    }
}`

var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Starcast Contestant Lifecycle API",
	Description:      "Contestant workspace store: content records, readiness, publishing workflow, change requests, sponsor offers and security cases.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
