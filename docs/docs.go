// Package docs holds the OpenAPI document served under /swagger.
// Regenerate with `swag init -g cmd/shaderinspector/docs.go` after changing handler annotations.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "shaderinspector maintainers"
        },
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/compile": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["compile"],
                "summary": "Compile a document from its declaration block",
                "parameters": [
                    {
                        "description": "Document and optional shader selection",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/types.CompileRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/types.CompileResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/types.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/types.ErrorResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/types.ErrorResponse"}}
                }
            }
        },
        "/compile/interactive": {
            "post": {
                "description": "Stands in for the interactive prompts. The declaration is written back into the document when addShaderDeclarationsOnInteractiveCompile is enabled.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["compile"],
                "summary": "Compile with an explicit declaration",
                "parameters": [
                    {
                        "description": "Document and declaration",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/types.InteractiveCompileRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/types.CompileResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/types.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/types.ErrorResponse"}}
                }
            }
        },
        "/repeat": {
            "post": {
                "produces": ["application/json"],
                "tags": ["compile"],
                "summary": "Repeat the last compile",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/types.CompileResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/types.ErrorResponse"}}
                }
            }
        },
        "/declarations": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["declarations"],
                "summary": "Record a declaration in the document's block",
                "parameters": [
                    {
                        "description": "Document and declaration",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/types.DeclarationRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/types.EditResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/types.ErrorResponse"}}
                }
            }
        },
        "/declarations/sample": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["declarations"],
                "summary": "Insert a sample declaration block",
                "parameters": [
                    {
                        "description": "Document and compiler (dxc or fxc)",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/types.SampleDeclarationRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/types.EditResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/types.ErrorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/types.ErrorResponse"}}
                }
            }
        },
        "/output": {
            "get": {
                "produces": ["application/json"],
                "tags": ["output"],
                "summary": "Current output surface content",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/types.OutputResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/types.ErrorResponse"}}
                }
            },
            "delete": {
                "tags": ["output"],
                "summary": "Dispose the output surface",
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/types.ErrorResponse"}}
                }
            }
        },
        "/compilers": {
            "get": {
                "produces": ["application/json"],
                "tags": ["info"],
                "summary": "Report where each compiler resolves",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/types.CompilersResponse"}}
                }
            }
        }
    },
    "definitions": {
        "types.Document": {
            "type": "object",
            "properties": {
                "path": {"type": "string", "example": "/home/user/shaders/lighting.hlsl"},
                "text": {"type": "string", "example": "float4 main() : SV_Target { return 1; }"},
                "dirty": {"type": "boolean", "example": false},
                "name": {"type": "string", "example": "Untitled-1"},
                "language_id": {"type": "string", "example": "hlsl"}
            }
        },
        "types.Declaration": {
            "type": "object",
            "properties": {
                "ShaderName": {"type": "string", "example": "Lighting"},
                "ShaderCompiler": {"type": "string", "example": "dxc"},
                "ShaderType": {"type": "string", "example": "ps"},
                "ShaderModel": {"type": "string", "example": "6_6"},
                "EntryPoint": {"type": "string", "example": "main"},
                "Defines": {"type": "array", "items": {"type": "string"}},
                "Optimization": {"type": "string", "example": "3"},
                "AdditionalArgs": {"type": "array", "items": {"type": "string"}}
            }
        },
        "types.Edit": {
            "type": "object",
            "properties": {
                "start": {"type": "integer", "example": 0},
                "end": {"type": "integer", "example": 0},
                "text": {"type": "string"}
            }
        },
        "types.CompileRequest": {
            "type": "object",
            "properties": {
                "document": {"$ref": "#/definitions/types.Document"},
                "shader": {"type": "string", "example": "Lighting"}
            }
        },
        "types.InteractiveCompileRequest": {
            "type": "object",
            "properties": {
                "document": {"$ref": "#/definitions/types.Document"},
                "declaration": {"$ref": "#/definitions/types.Declaration"}
            }
        },
        "types.DeclarationRequest": {
            "type": "object",
            "properties": {
                "document": {"$ref": "#/definitions/types.Document"},
                "declaration": {"$ref": "#/definitions/types.Declaration"}
            }
        },
        "types.SampleDeclarationRequest": {
            "type": "object",
            "properties": {
                "document": {"$ref": "#/definitions/types.Document"},
                "compiler": {"type": "string", "example": "dxc"}
            }
        },
        "types.CompileResponse": {
            "type": "object",
            "properties": {
                "invocation": {"type": "string", "example": "5f0c6a7e-5d55-4e2a-9a43-5b8e2f1c9d10"},
                "shader_name": {"type": "string", "example": "Lighting"},
                "compiler_path": {"type": "string", "example": "/opt/vulkan/bin/dxc"},
                "args": {"type": "array", "items": {"type": "string"}},
                "output": {"type": "string"},
                "text": {"type": "string"},
                "failed": {"type": "boolean", "example": false},
                "duration_ms": {"type": "integer", "example": 412},
                "edit": {"$ref": "#/definitions/types.Edit"}
            }
        },
        "types.EditResponse": {
            "type": "object",
            "properties": {
                "edit": {"$ref": "#/definitions/types.Edit"},
                "text": {"type": "string"}
            }
        },
        "types.OutputResponse": {
            "type": "object",
            "properties": {
                "title": {"type": "string", "example": "Lighting"},
                "text": {"type": "string"},
                "html": {"type": "string"},
                "reveals": {"type": "integer", "example": 2},
                "updated_unix": {"type": "integer", "example": 1700000000}
            }
        },
        "types.CompilerStatus": {
            "type": "object",
            "properties": {
                "compiler": {"type": "string", "example": "dxc"},
                "found": {"type": "boolean", "example": true},
                "path": {"type": "string", "example": "/opt/vulkan/bin/dxc"},
                "source": {"type": "string", "example": "vulkan-sdk"},
                "error": {"type": "string"}
            }
        },
        "types.CompilersResponse": {
            "type": "object",
            "properties": {
                "compilers": {"type": "array", "items": {"$ref": "#/definitions/types.CompilerStatus"}}
            }
        },
        "types.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string", "example": "invalid JSON body"},
                "code": {"type": "integer", "example": 400}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "shaderinspector API",
	Description:      "Local daemon that compiles HLSL shaders with dxc or fxc for an editor host.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
