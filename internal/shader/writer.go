package shader

import (
	"bytes"
	"encoding/json"
	"strings"
)

// Edit replaces text[Start:End] with Text.
type Edit struct {
	Start int    `json:"start"`
	End   int    `json:"end"`
	Text  string `json:"text"`
}

// Apply returns text with the edit applied.
func (e Edit) Apply(text string) string {
	return text[:e.Start] + e.Text + text[e.End:]
}

// WriteDeclaration computes the edit that records d in text. Without an
// existing block a new commented block is inserted at offset zero; otherwise d
// is appended to the existing Shaders list and only the sentinel span is replaced.
// Keys the Declaration type does not know are kept on existing entries.
// indent is the number of spaces per level; zero or less indents with tabs.
func WriteDeclaration(text string, d Declaration, indent int) (Edit, error) {
	entry, err := encodeJSON(d, "")
	if err != nil {
		return Edit{}, err
	}
	span, ok := FindDeclarationSpan(text)
	if !ok {
		block, err := renderBlock(rawBlock{}, []json.RawMessage{entry}, indent)
		if err != nil {
			return Edit{}, err
		}
		return Edit{Start: 0, End: 0, Text: "/*\n" + block + "\n*/\n"}, nil
	}
	if _, err := ParseDeclarations(text); err != nil && !IsNoDeclarations(err) {
		return Edit{}, err
	}
	blk, shaders, err := parseRawBlock(text)
	if err != nil {
		return Edit{}, err
	}
	block, err := renderBlock(blk, append(shaders, entry), indent)
	if err != nil {
		return Edit{}, err
	}
	return Edit{Start: span.Start, End: span.End, Text: block}, nil
}

// rawBlock holds the top-level keys of a block verbatim.
type rawBlock map[string]json.RawMessage

func parseRawBlock(text string) (rawBlock, []json.RawMessage, error) {
	m := declarationRe.FindStringSubmatch(text)
	if m == nil {
		return rawBlock{}, nil, nil
	}
	var blk rawBlock
	if err := json.Unmarshal([]byte(m[declarationRe.SubexpIndex("ShaderJson")]), &blk); err != nil {
		return nil, nil, ErrMalformedDeclaration("parsing shader declaration JSON failed", err)
	}
	if blk == nil {
		blk = rawBlock{}
	}
	var shaders []json.RawMessage
	if raw, ok := blk["Shaders"]; ok {
		if err := json.Unmarshal(raw, &shaders); err != nil {
			return nil, nil, ErrMalformedDeclaration("parsing shader declaration JSON failed", err)
		}
	}
	return blk, shaders, nil
}

func renderBlock(blk rawBlock, shaders []json.RawMessage, indent int) (string, error) {
	unit := "\t"
	if indent > 0 {
		unit = strings.Repeat(" ", indent)
	}
	list, err := encodeJSON(shaders, "")
	if err != nil {
		return "", err
	}
	blk["Shaders"] = list
	b, err := encodeJSON(blk, unit)
	if err != nil {
		return "", err
	}
	return BeginMarker + "\n" + string(b) + "\n" + EndMarker, nil
}

// encodeJSON marshals v without HTML escaping so defines like A=x<y stay
// readable in the source file.
func encodeJSON(v any, indent string) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if indent != "" {
		enc.SetIndent("", indent)
	}
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

const sampleDXCDeclaration = `/*
BEGIN_SHADER_DECLARATIONS
{
	"Shaders":
	[
		{
			"ShaderName": "SampleShader",
			"ShaderCompiler": "dxc",
			"ShaderType": "ps",
			"ShaderModel": "6_6",
			"EntryPoint": "main",
			"Defines": [
				"SampleDefine"
				],
			"Optimization": "3",
			"AdditionalArgs": [
				"-HV 2018",
				"-all-resources-bound",
				"-enable-16bit-types"
				]
		}
	]
}
END_SHADER_DECLARATIONS
*/
`

const sampleFXCDeclaration = `/*
BEGIN_SHADER_DECLARATIONS
{
	"Shaders":
	[
		{
			"ShaderName": "SampleShader",
			"ShaderCompiler": "fxc",
			"ShaderType": "ps",
			"ShaderModel": "5_0",
			"EntryPoint": "main",
			"Defines": [
				"SampleDefine"
				],
			"Optimization": "3",
			"AdditionalArgs": []
		}
	]
}
END_SHADER_DECLARATIONS
*/
`

// SampleDeclaration returns a starter block for the given compiler.
func SampleDeclaration(compiler string) (string, error) {
	switch compiler {
	case CompilerDXC:
		return sampleDXCDeclaration, nil
	case CompilerFXC:
		return sampleFXCDeclaration, nil
	default:
		return "", ErrUnsupportedCompiler(compiler)
	}
}

// InsertSample computes the edit inserting a starter block at the top of text.
func InsertSample(text, compiler string) (Edit, error) {
	if HasDeclarations(text) {
		return Edit{}, ErrDeclarationExists()
	}
	sample, err := SampleDeclaration(compiler)
	if err != nil {
		return Edit{}, err
	}
	return Edit{Start: 0, End: 0, Text: sample}, nil
}
