// Package docs registers the OpenAPI document served under /swagger.
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
        "/jobs": {
            "get": {
                "description": "List jobs, optionally filtered. All filters are combined with AND.",
                "produces": ["application/json"],
                "tags": ["jobs"],
                "summary": "Search jobs",
                "parameters": [
                    {"type": "string", "description": "Case-insensitive substring of the title", "name": "title", "in": "query"},
                    {"type": "integer", "description": "Minimum salary, inclusive", "name": "minSalary", "in": "query"},
                    {"type": "boolean", "description": "Only jobs offering non-zero equity", "name": "hasEquity", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.JobListResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            },
            "post": {
                "description": "Create a job posting for an existing company",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["jobs"],
                "summary": "Create a new job",
                "parameters": [
                    {"description": "Job to create", "name": "job", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.CreateJobRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.JobEnvelope"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/jobs/{id}": {
            "get": {
                "description": "Get a single job together with its company",
                "produces": ["application/json"],
                "tags": ["jobs"],
                "summary": "Get a job by ID",
                "parameters": [
                    {"type": "integer", "description": "Job ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.JobEnvelope"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            },
            "patch": {
                "description": "Change any of title, salary and equity. Omitted fields keep their value.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["jobs"],
                "summary": "Partially update a job",
                "parameters": [
                    {"type": "integer", "description": "Job ID", "name": "id", "in": "path", "required": true},
                    {"description": "Fields to change", "name": "job", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.UpdateJobRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.JobEnvelope"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            },
            "delete": {
                "description": "Delete a job by its ID",
                "produces": ["application/json"],
                "tags": ["jobs"],
                "summary": "Delete a job",
                "parameters": [
                    {"type": "integer", "description": "Job ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.DeleteJobResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "dto.CompanyResponse": {
            "type": "object",
            "properties": {
                "description": {"type": "string"},
                "handle": {"type": "string"},
                "logoUrl": {"type": "string"},
                "name": {"type": "string"},
                "numEmployees": {"type": "integer"}
            }
        },
        "dto.CreateJobRequest": {
            "type": "object",
            "properties": {
                "companyHandle": {"type": "string"},
                "equity": {"type": "string"},
                "salary": {"type": "integer"},
                "title": {"type": "string"}
            }
        },
        "dto.DeleteJobResponse": {
            "type": "object",
            "properties": {
                "deleted": {"type": "integer"}
            }
        },
        "dto.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"}
            }
        },
        "dto.JobEnvelope": {
            "type": "object",
            "properties": {
                "job": {"$ref": "#/definitions/dto.JobResponse"}
            }
        },
        "dto.JobListResponse": {
            "type": "object",
            "properties": {
                "jobs": {"type": "array", "items": {"$ref": "#/definitions/dto.JobResponse"}}
            }
        },
        "dto.JobResponse": {
            "type": "object",
            "properties": {
                "company": {"$ref": "#/definitions/dto.CompanyResponse"},
                "companyHandle": {"type": "string"},
                "equity": {"type": "string"},
                "id": {"type": "integer"},
                "salary": {"type": "integer"},
                "title": {"type": "string"}
            }
        },
        "dto.UpdateJobRequest": {
            "type": "object",
            "properties": {
                "equity": {"type": "string"},
                "salary": {"type": "integer"},
                "title": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Jobly Jobs API",
	Description:      "Create, search, update and delete job postings.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
