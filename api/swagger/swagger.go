package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "School Management API",
        "description": "Administrative REST API for the school management system",
        "version": "1.0.0"
    },
    "basePath": "/",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Auth", "description": "Authentication"},
        {"name": "Catalogos", "description": "Reference data (tipos de documento, roles, areas, grados)"},
        {"name": "Personas", "description": "Usuarios, docentes, acudientes, estudiantes"},
        {"name": "Academico", "description": "Grupos, matriculas, evaluaciones, calificaciones"},
        {"name": "Legacy", "description": "English-named roster kept for compatibility"}
    ],
    "paths": {
        "/health": {
            "get": {
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/metrics": {
            "get": {
                "summary": "Prometheus metrics",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/api/auth/login": {
            "post": {
                "tags": ["Auth"],
                "summary": "Authenticate a usuario",
                "parameters": [
                    {"name": "credentials", "in": "body", "required": true, "schema": {"$ref": "#/definitions/LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/LoginResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/api/tipos-documento": {
            "get": {"tags": ["Catalogos"], "summary": "List document types", "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["Catalogos"], "summary": "Create document type", "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/ErrorResponse"}}}}
        },
        "/api/roles": {
            "get": {"tags": ["Catalogos"], "summary": "List roles", "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["Catalogos"], "summary": "Create role", "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/ErrorResponse"}}}}
        },
        "/api/areas": {
            "get": {"tags": ["Catalogos"], "summary": "List knowledge areas", "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["Catalogos"], "summary": "Create knowledge area", "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/ErrorResponse"}}}}
        },
        "/api/grados": {
            "get": {"tags": ["Catalogos"], "summary": "List grade levels", "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["Catalogos"], "summary": "Create grade level", "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/ErrorResponse"}}}}
        },
        "/api/usuarios": {
            "get": {"tags": ["Personas"], "summary": "List accounts", "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["Personas"], "summary": "Create account", "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/ErrorResponse"}}}}
        },
        "/api/docentes": {
            "get": {"tags": ["Personas"], "summary": "List teachers", "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["Personas"], "summary": "Create teacher", "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/ErrorResponse"}}}}
        },
        "/api/acudientes": {
            "get": {"tags": ["Personas"], "summary": "List guardians", "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["Personas"], "summary": "Create guardian", "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/ErrorResponse"}}}}
        },
        "/api/acudientes/{id}": {
            "delete": {"tags": ["Personas"], "summary": "Soft-delete guardian", "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer"}], "responses": {"204": {"description": "No Content"}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/ErrorResponse"}}}}
        },
        "/api/estudiantes": {
            "get": {"tags": ["Personas"], "summary": "List students", "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["Personas"], "summary": "Create student", "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/ErrorResponse"}}}}
        },
        "/api/estudiantes/{id}": {
            "delete": {"tags": ["Personas"], "summary": "Soft-delete student", "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer"}], "responses": {"204": {"description": "No Content"}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/ErrorResponse"}}}}
        },
        "/api/asignaturas": {
            "get": {"tags": ["Academico"], "summary": "List subjects", "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["Academico"], "summary": "Create subject", "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/ErrorResponse"}}}}
        },
        "/api/grupos": {
            "get": {"tags": ["Academico"], "summary": "List class groups", "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["Academico"], "summary": "Create class group", "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/ErrorResponse"}}}}
        },
        "/api/matriculas": {
            "get": {"tags": ["Academico"], "summary": "List enrollments", "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["Academico"], "summary": "Create enrollment", "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/ErrorResponse"}}}}
        },
        "/api/evaluaciones": {
            "get": {"tags": ["Academico"], "summary": "List assessments", "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["Academico"], "summary": "Create assessment", "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/ErrorResponse"}}}}
        },
        "/api/calificaciones": {
            "get": {"tags": ["Academico"], "summary": "List scores", "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["Academico"], "summary": "Create score", "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/ErrorResponse"}}}}
        },
        "/api/grado-asignaturas": {
            "get": {"tags": ["Academico"], "summary": "List grade-subject assignments", "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["Academico"], "summary": "Create grade-subject assignment", "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/ErrorResponse"}}}}
        },
        "/api/docente-asignaturas": {
            "get": {"tags": ["Academico"], "summary": "List teacher-subject links", "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["Academico"], "summary": "Create teacher-subject link", "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/ErrorResponse"}}}}
        },
        "/api/acudiente-estudiantes": {
            "get": {"tags": ["Personas"], "summary": "List guardianships", "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["Personas"], "summary": "Create guardianship", "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/ErrorResponse"}}}}
        },
        "/api/students": {
            "get": {"tags": ["Legacy"], "summary": "List legacy students", "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["Legacy"], "summary": "Create legacy student", "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/ErrorResponse"}}}}
        }
    },
    "definitions": {
        "LoginRequest": {
            "type": "object",
            "required": ["username", "password"],
            "properties": {
                "username": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "LoginResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "username": {"type": "string"},
                "nombres": {"type": "string"},
                "apellidos": {"type": "string"},
                "rol": {"type": "object", "properties": {"id": {"type": "integer"}, "nombre": {"type": "string"}}},
                "token": {"type": "string"}
            }
        },
        "ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"}
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
