// Package shader models the shader declaration block embedded in HLSL source
// and the pure transformations around it:
//
//   - declaration.go: locating and decoding the BEGIN/END_SHADER_DECLARATIONS block.
//   - defaults.go: FillDefaults merges configured defaults into a declaration.
//   - args.go: BuildArgs turns a merged declaration into a compiler argv.
//   - writer.go: WriteDeclaration/InsertSample compute text edits that record declarations.
//   - errors.go: error types and IsXxx helpers.
//
// Nothing here performs I/O; locating compilers and running them lives in
// the locator and inspector packages.
package shader
