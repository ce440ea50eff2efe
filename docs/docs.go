// Package docs holds the swagger description served at /swagger/.
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
        "/api/v1/dashboard": {
            "get": {
                "produces": ["application/json"],
                "tags": ["dashboard"],
                "summary": "Evaluate the dashboard",
                "parameters": [
                    {"type": "string", "name": "zones", "in": "query", "description": "Comma-separated zone inclusion set"},
                    {"type": "string", "name": "vehicles", "in": "query", "description": "Comma-separated vehicle type inclusion set"},
                    {"type": "string", "name": "agg", "in": "query", "description": "Aggregation method: average, sum, or max"},
                    {"type": "boolean", "name": "raw", "in": "query", "description": "Include the filtered raw table"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.DashboardResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/api/v1/filters": {
            "get": {
                "produces": ["application/json"],
                "tags": ["dashboard"],
                "summary": "List selectable filter values",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.FiltersResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/api/v1/table": {
            "get": {
                "produces": ["application/json"],
                "tags": ["dashboard"],
                "summary": "Fetch the raw table",
                "parameters": [
                    {"type": "string", "name": "zones", "in": "query", "description": "Comma-separated zone inclusion set"},
                    {"type": "string", "name": "vehicles", "in": "query", "description": "Comma-separated vehicle type inclusion set"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.Table"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/api/v1/export.xlsx": {
            "get": {
                "produces": ["application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"],
                "tags": ["dashboard"],
                "summary": "Export the dashboard as a workbook",
                "parameters": [
                    {"type": "string", "name": "zones", "in": "query", "description": "Comma-separated zone inclusion set"},
                    {"type": "string", "name": "vehicles", "in": "query", "description": "Comma-separated vehicle type inclusion set"},
                    {"type": "string", "name": "agg", "in": "query", "description": "Aggregation method: average, sum, or max"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "file"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/api/v1/refresh": {
            "post": {
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Force a reload",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.RefreshResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/api/v1/refreshes": {
            "get": {
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "List recent reloads",
                "parameters": [
                    {"type": "integer", "name": "limit", "in": "query", "description": "Maximum entries"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/store.Refresh"}}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "handler.ChartsResponse": {
            "type": "object",
            "properties": {
                "freight": {"$ref": "#/definitions/engine.ChartConfig"},
                "tat": {"$ref": "#/definitions/engine.ChartConfig"},
                "trends": {"$ref": "#/definitions/engine.ChartConfig"}
            }
        },
        "handler.DashboardResponse": {
            "type": "object",
            "properties": {
                "selection": {"$ref": "#/definitions/model.Selection"},
                "method": {"type": "string"},
                "rowCount": {"type": "integer"},
                "aggregated": {"$ref": "#/definitions/model.Table"},
                "charts": {"$ref": "#/definitions/handler.ChartsResponse"},
                "raw": {"$ref": "#/definitions/model.Table"}
            }
        },
        "handler.ErrorResponse": {
            "type": "object",
            "properties": {"error": {"type": "string"}}
        },
        "handler.FiltersResponse": {
            "type": "object",
            "properties": {
                "zones": {"type": "array", "items": {"type": "string"}},
                "vehicles": {"type": "array", "items": {"type": "string"}},
                "methods": {"type": "array", "items": {"type": "string"}}
            }
        },
        "handler.RefreshResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string"},
                "rows": {"type": "integer"},
                "generation": {"type": "integer"}
            }
        },
        "engine.ChartConfig": {
            "type": "object",
            "properties": {
                "kind": {"type": "string"},
                "title": {"type": "string"},
                "xLabel": {"type": "string"},
                "yLabel": {"type": "string"},
                "series": {"type": "array", "items": {"$ref": "#/definitions/engine.ChartSeries"}}
            }
        },
        "engine.ChartSeries": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "color": {"type": "string"},
                "markers": {"type": "boolean"},
                "points": {"type": "array", "items": {"$ref": "#/definitions/engine.ChartPoint"}}
            }
        },
        "engine.ChartPoint": {
            "type": "object",
            "properties": {
                "x": {"type": "string"},
                "y": {"type": "number"}
            }
        },
        "model.Selection": {
            "type": "object",
            "properties": {
                "zones": {"type": "array", "items": {"type": "string"}},
                "vehicles": {"type": "array", "items": {"type": "string"}}
            }
        },
        "model.Table": {
            "type": "object",
            "properties": {
                "columns": {"type": "array", "items": {"type": "string"}},
                "rows": {"type": "array", "items": {"$ref": "#/definitions/model.Row"}}
            }
        },
        "model.Row": {
            "type": "object",
            "properties": {
                "cells": {"type": "object", "additionalProperties": {"type": "string"}},
                "measures": {"type": "object", "additionalProperties": {"type": "number"}}
            }
        },
        "store.Refresh": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "trigger": {"type": "string"},
                "status": {"type": "string"},
                "rowCount": {"type": "integer"},
                "durationMs": {"type": "integer"},
                "error": {"type": "string"},
                "createdAt": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Freight Dashboard API",
	Description:      "Freight and turnaround-time trends over a spreadsheet range.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
