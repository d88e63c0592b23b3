// Package docs registra la especificación OpenAPI servida en /swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/personnel/login": {
            "post": {
                "tags": ["personnel"],
                "summary": "Login de personal",
                "responses": {
                    "200": {"description": "token emitido"},
                    "401": {"description": "credenciales inválidas"}
                }
            }
        },
        "/personnel/signup": {
            "post": {
                "tags": ["personnel"],
                "summary": "Registrar personal",
                "responses": {
                    "201": {"description": "creado"},
                    "409": {"description": "email ya registrado"}
                }
            }
        },
        "/users/login": {
            "post": {
                "tags": ["users"],
                "summary": "Login de dueño",
                "responses": {
                    "200": {"description": "token emitido"},
                    "401": {"description": "credenciales inválidas"}
                }
            }
        },
        "/users/signup": {
            "post": {
                "tags": ["users"],
                "summary": "Registrar dueño",
                "responses": {
                    "201": {"description": "creado"},
                    "409": {"description": "email ya registrado"}
                }
            }
        },
        "/pets": {
            "get": {
                "tags": ["pets"],
                "summary": "Listar mascotas",
                "responses": {"200": {"description": "ok"}}
            },
            "post": {
                "tags": ["pets"],
                "summary": "Registrar mascota",
                "responses": {
                    "201": {"description": "creada"},
                    "409": {"description": "RFID ya registrado"}
                }
            }
        },
        "/pets/rfid/{rfidCode}": {
            "get": {
                "tags": ["pets"],
                "summary": "Lookup de mascota por RFID",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Código RFID de 5 dígitos",
                        "name": "rfidCode",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {"description": "payload desnormalizado con historia de vacunación"},
                    "400": {"description": "RFID is incorrect, should be 5 digits"},
                    "401": {"description": "sin credencial o credencial inválida"},
                    "404": {"description": "pet not found"},
                    "500": {"description": "Server error"}
                }
            }
        },
        "/pets/{petID}/vaccinations": {
            "post": {
                "tags": ["pets"],
                "summary": "Agregar entrada de vacunación",
                "responses": {
                    "200": {"description": "ok"},
                    "404": {"description": "pet not found"}
                }
            }
        },
        "/visits": {
            "get": {
                "tags": ["visits"],
                "summary": "Listar visitas",
                "responses": {"200": {"description": "ok"}}
            },
            "post": {
                "tags": ["visits"],
                "summary": "Crear visita",
                "responses": {"201": {"description": "creada"}}
            }
        }
    }
}`

var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "Pet Registry API",
	Description:      "Registro de mascotas con lookup por RFID y atribución de personal.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
