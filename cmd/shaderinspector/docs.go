package main

// General API documentation for swaggo. Regenerate docs/ with `swag init -g cmd/shaderinspector/docs.go`.
//
// @title           shaderinspector API
// @version         1.0
// @description     Local HTTP API for compiling HLSL shaders with dxc or fxc from in-file declarations.
//
// @contact.name   shaderinspector maintainers
//
// @license.name   MIT
// @license.url    https://opensource.org/licenses/MIT
//
// @BasePath  /
//
// @schemes http
