package httpapi

import (
	"errors"
	"io/fs"
	"net/http"

	"shaderinspector/internal/inspector"
	"shaderinspector/internal/shader"
	"shaderinspector/pkg/types"
)

type handlers struct {
	svc Service
}

// compile godoc
// @Summary      Compile a document from its declaration block
// @Tags         compile
// @Accept       json
// @Produce      json
// @Param        request  body      types.CompileRequest  true  "Document and optional shader selection"
// @Success      200      {object}  types.CompileResponse
// @Failure      400      {object}  types.ErrorResponse
// @Failure      404      {object}  types.ErrorResponse
// @Failure      422      {object}  types.ErrorResponse
// @Router       /compile [post]
func (h *handlers) compile(w http.ResponseWriter, r *http.Request) {
	var req types.CompileRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	doc, err := documentFrom(req.Document)
	if err != nil {
		writeError(w, err)
		return
	}
	ctx, cancel := compileContext(r)
	defer cancel()

	// Without a block there is nobody to prompt, so no interactive fallback.
	var p inspector.Prompter
	if shader.HasDeclarations(doc.Text()) {
		p = inspector.ChoicePrompter{Choice: req.Shader}
	}
	res, err := h.svc.CompileDocument(ctx, doc, p)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, compileResponse(res, nil))
}

// compileInteractive godoc
// @Summary      Compile with an explicit declaration
// @Description  Stands in for the interactive prompts. The declaration is written back into the document when addShaderDeclarationsOnInteractiveCompile is enabled.
// @Tags         compile
// @Accept       json
// @Produce      json
// @Param        request  body      types.InteractiveCompileRequest  true  "Document and declaration"
// @Success      200      {object}  types.CompileResponse
// @Failure      400      {object}  types.ErrorResponse
// @Failure      404      {object}  types.ErrorResponse
// @Router       /compile/interactive [post]
func (h *handlers) compileInteractive(w http.ResponseWriter, r *http.Request) {
	var req types.InteractiveCompileRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Declaration.ShaderName == "" {
		writeJSONError(w, http.StatusBadRequest, "declaration.ShaderName is required")
		return
	}
	doc, err := documentFrom(req.Document)
	if err != nil {
		writeError(w, err)
		return
	}
	if lang := doc.LanguageID(); lang != inspector.LanguageHLSL {
		writeError(w, inspector.ErrWrongLanguage(lang))
		return
	}
	ctx, cancel := compileContext(r)
	defer cancel()

	res, edit, err := h.svc.CompileAndDeclare(ctx, doc, declarationFrom(req.Declaration))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, compileResponse(res, edit))
}

// repeat godoc
// @Summary      Repeat the last compile
// @Tags         compile
// @Produce      json
// @Success      200  {object}  types.CompileResponse
// @Failure      404  {object}  types.ErrorResponse
// @Router       /repeat [post]
func (h *handlers) repeat(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := compileContext(r)
	defer cancel()
	res, err := h.svc.RepeatLast(ctx)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, compileResponse(res, nil))
}

// declare godoc
// @Summary      Record a declaration in the document's block
// @Tags         declarations
// @Accept       json
// @Produce      json
// @Param        request  body      types.DeclarationRequest  true  "Document and declaration"
// @Success      200      {object}  types.EditResponse
// @Failure      400      {object}  types.ErrorResponse
// @Router       /declarations [post]
func (h *handlers) declare(w http.ResponseWriter, r *http.Request) {
	var req types.DeclarationRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	doc, err := documentFrom(req.Document)
	if err != nil {
		writeError(w, err)
		return
	}
	edit, err := h.svc.Declare(doc, declarationFrom(req.Declaration))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, types.EditResponse{Edit: editPayload(edit), Text: doc.Text()})
}

// sample godoc
// @Summary      Insert a sample declaration block
// @Tags         declarations
// @Accept       json
// @Produce      json
// @Param        request  body      types.SampleDeclarationRequest  true  "Document and compiler (dxc or fxc)"
// @Success      200      {object}  types.EditResponse
// @Failure      400      {object}  types.ErrorResponse
// @Failure      409      {object}  types.ErrorResponse
// @Router       /declarations/sample [post]
func (h *handlers) sample(w http.ResponseWriter, r *http.Request) {
	var req types.SampleDeclarationRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Compiler == "" {
		writeJSONError(w, http.StatusBadRequest, "compiler is required")
		return
	}
	doc, err := documentFrom(req.Document)
	if err != nil {
		writeError(w, err)
		return
	}
	edit, err := h.svc.AddDeclaration(r.Context(), doc, req.Compiler, nil)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, types.EditResponse{Edit: editPayload(edit), Text: doc.Text()})
}

// output godoc
// @Summary      Current output surface content
// @Tags         output
// @Produce      json
// @Success      200  {object}  types.OutputResponse
// @Failure      404  {object}  types.ErrorResponse
// @Router       /output [get]
func (h *handlers) output(w http.ResponseWriter, r *http.Request) {
	c, reveals, at, ok := h.svc.Output()
	if !ok {
		writeJSONError(w, http.StatusNotFound, "no output surface")
		return
	}
	if r.URL.Query().Get("format") == "html" {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(c.HTML))
		return
	}
	writeJSON(w, http.StatusOK, types.OutputResponse{
		Title:       c.Title,
		Text:        c.Text,
		HTML:        c.HTML,
		Reveals:     reveals,
		UpdatedUnix: at.Unix(),
	})
}

// closeOutput godoc
// @Summary      Dispose the output surface
// @Tags         output
// @Success      204
// @Failure      404  {object}  types.ErrorResponse
// @Router       /output [delete]
func (h *handlers) closeOutput(w http.ResponseWriter, r *http.Request) {
	if !h.svc.CloseOutput() {
		writeJSONError(w, http.StatusNotFound, "no output surface")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// compilers godoc
// @Summary      Report where each compiler resolves
// @Tags         info
// @Produce      json
// @Success      200  {object}  types.CompilersResponse
// @Router       /compilers [get]
func (h *handlers) compilers(w http.ResponseWriter, r *http.Request) {
	reports := h.svc.Compilers(r.Context())
	out := types.CompilersResponse{Compilers: make([]types.CompilerStatus, 0, len(reports))}
	for _, rep := range reports {
		out.Compilers = append(out.Compilers, types.CompilerStatus{
			Compiler: rep.Compiler,
			Found:    rep.Found,
			Path:     rep.Path,
			Source:   string(rep.Source),
			Error:    rep.Error,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

type statusError struct {
	code int
	msg  string
}

func (e statusError) Error() string   { return e.msg }
func (e statusError) StatusCode() int { return e.code }

// languageDoc overrides the language a document reports.
type languageDoc struct {
	inspector.Document
	lang string
}

func (d languageDoc) LanguageID() string { return d.lang }

func documentFrom(p types.Document) (inspector.Document, error) {
	var doc inspector.Document
	switch {
	case p.Path == "":
		text := ""
		if p.Text != nil {
			text = *p.Text
		}
		return inspector.NewMemoryDocument(p.Name, p.LanguageID, text), nil
	case p.Text != nil:
		doc = inspector.NewFileDocument(p.Path, *p.Text, p.Dirty)
	default:
		fd, err := inspector.OpenFile(p.Path)
		if errors.Is(err, fs.ErrNotExist) {
			return nil, statusError{code: http.StatusNotFound, msg: "document not found: " + p.Path}
		}
		if err != nil {
			return nil, statusError{code: http.StatusBadRequest, msg: err.Error()}
		}
		doc = fd
	}
	if p.LanguageID != "" && p.LanguageID != doc.LanguageID() {
		return languageDoc{Document: doc, lang: p.LanguageID}, nil
	}
	return doc, nil
}

func declarationFrom(d types.Declaration) shader.Declaration {
	return shader.Declaration{
		ShaderName:     d.ShaderName,
		ShaderCompiler: d.ShaderCompiler,
		ShaderType:     d.ShaderType,
		ShaderModel:    d.ShaderModel,
		EntryPoint:     d.EntryPoint,
		Defines:        d.Defines,
		Optimization:   d.Optimization,
		AdditionalArgs: d.AdditionalArgs,
	}
}

func editPayload(e shader.Edit) types.Edit {
	return types.Edit{Start: e.Start, End: e.End, Text: e.Text}
}

func compileResponse(res inspector.Result, edit *shader.Edit) types.CompileResponse {
	out := types.CompileResponse{
		Invocation:   res.Invocation,
		ShaderName:   res.ShaderName,
		CompilerPath: res.CompilerPath,
		Args:         res.Args,
		Output:       res.Output,
		Text:         res.Text,
		Failed:       res.Failed,
		DurationMS:   res.Duration.Milliseconds(),
	}
	if edit != nil {
		e := editPayload(*edit)
		out.Edit = &e
	}
	return out
}
