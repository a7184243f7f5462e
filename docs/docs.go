// Package docs holds the OpenAPI description of the JSON endpoints served by swagger UI.
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
        "/api/cafes": {
            "get": {
                "description": "Returns the map projection of every cafe matching the filters, ordered by name, plus every known location.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "cafes"
                ],
                "summary": "List cafe map markers",
                "parameters": [
                    {
                        "type": "string",
                        "description": "any non-empty value requires WiFi",
                        "name": "wifi",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "any non-empty value requires sockets",
                        "name": "sockets",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "any non-empty value requires that calls are allowed",
                        "name": "calls",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "exact location",
                        "name": "location",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.CafesResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/health": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "health"
                ],
                "summary": "Liveness probe",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "handler.CafesResponse": {
            "type": "object",
            "properties": {
                "cafes": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.MapMarker"
                    }
                },
                "count": {
                    "type": "integer"
                },
                "locations": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                }
            }
        },
        "handler.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {
                    "type": "string"
                }
            }
        },
        "models.MapMarker": {
            "type": "object",
            "properties": {
                "can_take_calls": {
                    "type": "boolean"
                },
                "has_sockets": {
                    "type": "boolean"
                },
                "has_wifi": {
                    "type": "boolean"
                },
                "id": {
                    "type": "integer"
                },
                "lat": {
                    "type": "number"
                },
                "lng": {
                    "type": "number"
                },
                "location": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                }
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
	Title:            "WorkBrew API",
	Description:      "Read-only JSON view of the WorkBrew cafe directory.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
