// Package docs holds the OpenAPI document served under /swagger.
// Keep it in step with the handler annotations (swag init -g cmd/api/main.go).
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
		"/health": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"system"
				],
				"summary": "Liveness probe",
				"responses": {
					"200": {
						"description": "OK"
					}
				}
			}
		},
		"/genetic-tests": {
			"post": {
				"produces": [
					"application/json"
				],
				"tags": [
					"genetics"
				],
				"summary": "Order a genetic test kit",
				"responses": {
					"201": {
						"description": "Created"
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/respond.ErrorBody"
						}
					}
				},
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"description": "Dev mode only: caller user id",
						"name": "X-Debug-User-ID",
						"in": "header"
					},
					{
						"name": "payload",
						"in": "body",
						"required": true,
						"schema": {
							"type": "object"
						}
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/genetic-tests/sample-report": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"genetics"
				],
				"summary": "Sample genetic report",
				"responses": {
					"200": {
						"description": "OK"
					}
				}
			}
		},
		"/genetic-tests/{testID}/status": {
			"post": {
				"produces": [
					"application/json"
				],
				"tags": [
					"genetics"
				],
				"summary": "Advance a genetic test",
				"responses": {
					"200": {
						"description": "OK"
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/respond.ErrorBody"
						}
					}
				},
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"name": "testID",
						"in": "path",
						"required": true
					},
					{
						"type": "string",
						"description": "Dev mode only: caller user id",
						"name": "X-Debug-User-ID",
						"in": "header"
					},
					{
						"name": "payload",
						"in": "body",
						"required": true,
						"schema": {
							"type": "object"
						}
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/me/genetic-test": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"genetics"
				],
				"summary": "Latest genetic test of the caller",
				"responses": {
					"200": {
						"description": "OK"
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/respond.ErrorBody"
						}
					}
				},
				"parameters": [
					{
						"type": "string",
						"description": "Dev mode only: caller user id",
						"name": "X-Debug-User-ID",
						"in": "header"
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/me/recommendations": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"genetics"
				],
				"summary": "Latest supplement recommendation of the caller",
				"responses": {
					"200": {
						"description": "OK"
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/respond.ErrorBody"
						}
					}
				},
				"parameters": [
					{
						"type": "string",
						"description": "Dev mode only: caller user id",
						"name": "X-Debug-User-ID",
						"in": "header"
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/users/{userID}/recommendations": {
			"post": {
				"produces": [
					"application/json"
				],
				"tags": [
					"genetics"
				],
				"summary": "Record a recommendation for a user",
				"responses": {
					"201": {
						"description": "Created"
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/respond.ErrorBody"
						}
					}
				},
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"name": "userID",
						"in": "path",
						"required": true
					},
					{
						"type": "string",
						"description": "Dev mode only: caller user id",
						"name": "X-Debug-User-ID",
						"in": "header"
					},
					{
						"name": "payload",
						"in": "body",
						"required": true,
						"schema": {
							"type": "object"
						}
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/users/{userID}/test-results": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"genetics"
				],
				"summary": "Ingredient test results of a user",
				"responses": {
					"200": {
						"description": "OK"
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/respond.ErrorBody"
						}
					}
				},
				"parameters": [
					{
						"type": "string",
						"name": "userID",
						"in": "path",
						"required": true
					},
					{
						"type": "string",
						"description": "Dev mode only: caller user id",
						"name": "X-Debug-User-ID",
						"in": "header"
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			},
			"post": {
				"produces": [
					"application/json"
				],
				"tags": [
					"genetics"
				],
				"summary": "Record an ingredient test result",
				"responses": {
					"201": {
						"description": "Created"
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/respond.ErrorBody"
						}
					}
				},
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"name": "userID",
						"in": "path",
						"required": true
					},
					{
						"type": "string",
						"description": "Dev mode only: caller user id",
						"name": "X-Debug-User-ID",
						"in": "header"
					},
					{
						"name": "payload",
						"in": "body",
						"required": true,
						"schema": {
							"type": "object"
						}
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/supplements": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"catalog"
				],
				"summary": "List supplements",
				"responses": {
					"200": {
						"description": "OK"
					}
				}
			},
			"post": {
				"produces": [
					"application/json"
				],
				"tags": [
					"catalog"
				],
				"summary": "Add a supplement",
				"responses": {
					"201": {
						"description": "Created"
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/respond.ErrorBody"
						}
					}
				},
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"description": "Dev mode only: caller user id",
						"name": "X-Debug-User-ID",
						"in": "header"
					},
					{
						"name": "payload",
						"in": "body",
						"required": true,
						"schema": {
							"type": "object"
						}
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/ingredients": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"catalog"
				],
				"summary": "List ingredients",
				"responses": {
					"200": {
						"description": "OK"
					}
				}
			},
			"post": {
				"produces": [
					"application/json"
				],
				"tags": [
					"catalog"
				],
				"summary": "Add an ingredient",
				"responses": {
					"201": {
						"description": "Created"
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/respond.ErrorBody"
						}
					}
				},
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"description": "Dev mode only: caller user id",
						"name": "X-Debug-User-ID",
						"in": "header"
					},
					{
						"name": "payload",
						"in": "body",
						"required": true,
						"schema": {
							"type": "object"
						}
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/me/profile": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"profiles"
				],
				"summary": "Current profile of the caller",
				"responses": {
					"200": {
						"description": "OK"
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/respond.ErrorBody"
						}
					}
				},
				"parameters": [
					{
						"type": "string",
						"description": "Dev mode only: caller user id",
						"name": "X-Debug-User-ID",
						"in": "header"
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/subscriptions": {
			"post": {
				"produces": [
					"application/json"
				],
				"tags": [
					"subscriptions"
				],
				"summary": "Start a monthly subscription",
				"responses": {
					"201": {
						"description": "Created"
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/respond.ErrorBody"
						}
					}
				},
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"description": "Dev mode only: caller user id",
						"name": "X-Debug-User-ID",
						"in": "header"
					},
					{
						"name": "payload",
						"in": "body",
						"required": true,
						"schema": {
							"type": "object"
						}
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/me/subscription": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"subscriptions"
				],
				"summary": "Active subscription of the caller",
				"responses": {
					"200": {
						"description": "OK"
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/respond.ErrorBody"
						}
					}
				},
				"parameters": [
					{
						"type": "string",
						"description": "Dev mode only: caller user id",
						"name": "X-Debug-User-ID",
						"in": "header"
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/subscriptions/{subscriptionID}/status": {
			"patch": {
				"produces": [
					"application/json"
				],
				"tags": [
					"subscriptions"
				],
				"summary": "Pause, resume or cancel a subscription",
				"responses": {
					"200": {
						"description": "OK"
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/respond.ErrorBody"
						}
					}
				},
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"name": "subscriptionID",
						"in": "path",
						"required": true
					},
					{
						"type": "string",
						"description": "Dev mode only: caller user id",
						"name": "X-Debug-User-ID",
						"in": "header"
					},
					{
						"name": "payload",
						"in": "body",
						"required": true,
						"schema": {
							"type": "object"
						}
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/subscriptions/{subscriptionID}/deliveries": {
			"post": {
				"produces": [
					"application/json"
				],
				"tags": [
					"subscriptions"
				],
				"summary": "Schedule a delivery for a subscription",
				"responses": {
					"201": {
						"description": "Created"
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/respond.ErrorBody"
						}
					}
				},
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"name": "subscriptionID",
						"in": "path",
						"required": true
					},
					{
						"type": "string",
						"description": "Dev mode only: caller user id",
						"name": "X-Debug-User-ID",
						"in": "header"
					},
					{
						"name": "payload",
						"in": "body",
						"required": true,
						"schema": {
							"type": "object"
						}
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/deliveries/{deliveryID}/status": {
			"patch": {
				"produces": [
					"application/json"
				],
				"tags": [
					"subscriptions"
				],
				"summary": "Advance a delivery",
				"description": "Fulfilment side: any authenticated caller may advance a delivery. Statuses only move forward.",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "object"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/respond.ErrorBody"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/respond.ErrorBody"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/respond.ErrorBody"
						}
					},
					"409": {
						"description": "Conflict",
						"schema": {
							"$ref": "#/definitions/respond.ErrorBody"
						}
					}
				},
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"description": "Delivery id",
						"name": "deliveryID",
						"in": "path",
						"required": true
					},
					{
						"type": "string",
						"description": "Dev mode only: caller user id",
						"name": "X-Debug-User-ID",
						"in": "header"
					},
					{
						"description": "New status and optional tracking number",
						"name": "payload",
						"in": "body",
						"required": true,
						"schema": {
							"type": "object"
						}
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/me/deliveries": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"subscriptions"
				],
				"summary": "Deliveries across the caller's subscriptions",
				"responses": {
					"200": {
						"description": "OK"
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/respond.ErrorBody"
						}
					}
				},
				"parameters": [
					{
						"type": "string",
						"description": "Dev mode only: caller user id",
						"name": "X-Debug-User-ID",
						"in": "header"
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/pricing": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"subscriptions"
				],
				"summary": "Plan pricing",
				"responses": {
					"200": {
						"description": "OK"
					}
				}
			}
		},
		"/me/weights": {
			"post": {
				"produces": [
					"application/json"
				],
				"tags": [
					"analytics"
				],
				"summary": "Record a weight measurement",
				"responses": {
					"201": {
						"description": "Created"
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/respond.ErrorBody"
						}
					}
				},
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"description": "Dev mode only: caller user id",
						"name": "X-Debug-User-ID",
						"in": "header"
					},
					{
						"name": "payload",
						"in": "body",
						"required": true,
						"schema": {
							"type": "object"
						}
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			},
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"analytics"
				],
				"summary": "Weight history of the caller",
				"responses": {
					"200": {
						"description": "OK"
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/respond.ErrorBody"
						}
					}
				},
				"parameters": [
					{
						"type": "string",
						"description": "Dev mode only: caller user id",
						"name": "X-Debug-User-ID",
						"in": "header"
					},
					{
						"type": "integer",
						"description": "Window in days (default 90)",
						"name": "days",
						"in": "query"
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/feedback": {
			"post": {
				"produces": [
					"application/json"
				],
				"tags": [
					"analytics"
				],
				"summary": "Rate a supplement",
				"responses": {
					"201": {
						"description": "Created"
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/respond.ErrorBody"
						}
					}
				},
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"description": "Dev mode only: caller user id",
						"name": "X-Debug-User-ID",
						"in": "header"
					},
					{
						"name": "payload",
						"in": "body",
						"required": true,
						"schema": {
							"type": "object"
						}
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/me/progress-report": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"analytics"
				],
				"summary": "Progress report of the caller",
				"responses": {
					"200": {
						"description": "OK"
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/respond.ErrorBody"
						}
					}
				},
				"parameters": [
					{
						"type": "string",
						"description": "Dev mode only: caller user id",
						"name": "X-Debug-User-ID",
						"in": "header"
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/testimonials": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"analytics"
				],
				"summary": "Customer testimonials",
				"responses": {
					"200": {
						"description": "OK"
					}
				}
			}
		}
	},
	"definitions": {
		"respond.ErrorBody": {
			"type": "object",
			"properties": {
				"error": {
					"type": "string"
				}
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
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "genefit API",
	Description:      "Genetic test kits, supplement subscriptions and weight tracking.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
