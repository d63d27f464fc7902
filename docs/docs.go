// Package docs регистрирует OpenAPI-описание HTTP API витрины для swag.
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
        "/header": {
            "get": {
                "produces": ["application/json"],
                "tags": ["storefront"],
                "summary": "Шапка сайта",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/http.HeaderResponse"}
                    }
                }
            }
        },
        "/shoes": {
            "get": {
                "produces": ["application/json"],
                "tags": ["shoes"],
                "summary": "Карточки витрины",
                "parameters": [
                    {
                        "enum": ["on-sale", "new-release", "default"],
                        "type": "string",
                        "description": "Фильтр варианта",
                        "name": "variant",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/http.ListShoesResponse"}
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {"$ref": "#/definitions/http.ErrorResponse"}
                    }
                }
            },
            "post": {
                "description": "Создает или обновляет модель обуви в каталоге. Событие публикуется только при изменении данных.",
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["shoes"],
                "summary": "Регистрация или обновление товара",
                "parameters": [
                    {"type": "string", "description": "Идентификатор в URL", "name": "slug", "in": "formData", "required": true},
                    {"type": "string", "description": "Название", "name": "name", "in": "formData", "required": true},
                    {"type": "number", "description": "Цена в долларах", "name": "price", "in": "formData", "required": true},
                    {"type": "number", "description": "Цена со скидкой", "name": "sale_price", "in": "formData"},
                    {"type": "string", "description": "Дата выхода (RFC3339 или YYYY-MM-DD)", "name": "release_date", "in": "formData"},
                    {"type": "integer", "description": "Количество расцветок", "name": "num_of_colors", "in": "formData"},
                    {"type": "file", "description": "Изображение", "name": "image", "in": "formData"}
                ],
                "responses": {
                    "200": {
                        "description": "Изменений нет",
                        "schema": {"$ref": "#/definitions/http.RegisterShoeResponse"}
                    },
                    "201": {
                        "description": "Товар изменен, событие создано",
                        "schema": {"$ref": "#/definitions/http.RegisterShoeResponse"}
                    },
                    "400": {
                        "description": "Ошибка валидации",
                        "schema": {"$ref": "#/definitions/http.ErrorResponse"}
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {"$ref": "#/definitions/http.ErrorResponse"}
                    }
                }
            }
        },
        "/shoes/{slug}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["shoes"],
                "summary": "Карточка товара",
                "parameters": [
                    {"type": "string", "description": "Slug товара", "name": "slug", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/shoecard.Card"}
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {"$ref": "#/definitions/http.ErrorResponse"}
                    }
                }
            }
        }
    },
    "definitions": {
        "http.ErrorResponse": {
            "type": "object",
            "properties": {
                "code": {"type": "integer"},
                "message": {"type": "string"}
            }
        },
        "http.HeaderResponse": {
            "type": "object",
            "properties": {
                "links": {"type": "array", "items": {"$ref": "#/definitions/http.NavLinkJSON"}},
                "promo": {"type": "string"}
            }
        },
        "http.NavLinkJSON": {
            "type": "object",
            "properties": {
                "accent": {"type": "boolean"},
                "href": {"type": "string"},
                "label": {"type": "string"}
            }
        },
        "http.ListShoesResponse": {
            "type": "object",
            "properties": {
                "cards": {"type": "array", "items": {"$ref": "#/definitions/shoecard.Card"}},
                "count": {"type": "integer"}
            }
        },
        "http.RegisterShoeResponse": {
            "type": "object",
            "properties": {
                "changed": {"type": "boolean"},
                "event_id": {"type": "string"}
            }
        },
        "shoecard.Card": {
            "type": "object",
            "properties": {
                "color_info": {"type": "string"},
                "href": {"type": "string"},
                "image_src": {"type": "string"},
                "name": {"type": "string"},
                "price": {"type": "string"},
                "price_struck": {"type": "boolean"},
                "sale_price": {"type": "string"},
                "slug": {"type": "string"},
                "tag": {"type": "string"},
                "variant": {"type": "string", "enum": ["on-sale", "new-release", "default"]}
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
	Title:            "Storefront API",
	Description:      "Каталог обуви и карточки витрины.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
