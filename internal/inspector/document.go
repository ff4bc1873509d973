package inspector

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"shaderinspector/internal/shader"
)

// LanguageHLSL is the only language the inspector compiles.
const LanguageHLSL = "hlsl"

// Document is the editor buffer a compile reads from.
type Document interface {
	// FileName is the backing path, or a display name for untitled buffers.
	FileName() string
	LanguageID() string
	Text() string
	// IsUntitled reports a buffer with no backing file.
	IsUntitled() bool
	// IsDirty reports unsaved changes in a file-backed buffer.
	IsDirty() bool
	Save() error
	Apply(edit shader.Edit) error
}

// LanguageForPath maps a file extension to a language id.
func LanguageForPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".hlsl", ".hlsli", ".fx", ".fxh", ".usf", ".ush":
		return LanguageHLSL
	case ".glsl", ".vert", ".frag", ".comp":
		return "glsl"
	case ".wgsl":
		return "wgsl"
	default:
		return "plaintext"
	}
}

// FileDocument is a buffer backed by a file on disk.
type FileDocument struct {
	mu     sync.Mutex
	path   string
	text   string
	loaded bool
	dirty  bool
}

// OpenFile reads path into a clean document.
func OpenFile(path string) (*FileDocument, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return &FileDocument{path: path, text: string(b), loaded: true}, nil
}

// NewFileDocument wraps editor-held text for path. dirty marks text as not
// yet written to path.
func NewFileDocument(path, text string, dirty bool) *FileDocument {
	return &FileDocument{path: path, text: text, loaded: true, dirty: dirty}
}

// lazyFileDocument refers to path without reading it until needed.
func lazyFileDocument(path string) *FileDocument { return &FileDocument{path: path} }

func (d *FileDocument) FileName() string   { return d.path }
func (d *FileDocument) LanguageID() string { return LanguageForPath(d.path) }
func (d *FileDocument) IsUntitled() bool   { return false }

func (d *FileDocument) IsDirty() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.dirty
}

func (d *FileDocument) Text() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.loaded {
		if b, err := os.ReadFile(d.path); err == nil {
			d.text = string(b)
			d.loaded = true
		}
	}
	return d.text
}

// Save writes the buffer to its file.
func (d *FileDocument) Save() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.loaded {
		return nil
	}
	if err := os.WriteFile(d.path, []byte(d.text), 0o644); err != nil {
		return err
	}
	d.dirty = false
	return nil
}

// Apply edits the buffer and marks it dirty; call Save to persist.
func (d *FileDocument) Apply(edit shader.Edit) error {
	text := d.Text()
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := checkEdit(edit, text); err != nil {
		return err
	}
	d.text = edit.Apply(text)
	d.loaded = true
	d.dirty = true
	return nil
}

// MemoryDocument is an untitled buffer with no file behind it.
type MemoryDocument struct {
	mu   sync.Mutex
	name string
	lang string
	text string
}

// NewMemoryDocument creates an untitled buffer. An empty lang means HLSL.
func NewMemoryDocument(name, lang, text string) *MemoryDocument {
	if name == "" {
		name = "Untitled-1"
	}
	if lang == "" {
		lang = LanguageHLSL
	}
	return &MemoryDocument{name: name, lang: lang, text: text}
}

func (d *MemoryDocument) FileName() string   { return d.name }
func (d *MemoryDocument) LanguageID() string { return d.lang }
func (d *MemoryDocument) IsUntitled() bool   { return true }
func (d *MemoryDocument) IsDirty() bool      { return false }

func (d *MemoryDocument) Text() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.text
}

func (d *MemoryDocument) Save() error { return errors.New("untitled document has no file to save to") }

func (d *MemoryDocument) Apply(edit shader.Edit) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := checkEdit(edit, d.text); err != nil {
		return err
	}
	d.text = edit.Apply(d.text)
	return nil
}

func checkEdit(e shader.Edit, text string) error {
	if e.Start < 0 || e.End < e.Start || e.End > len(text) {
		return fmt.Errorf("edit range [%d,%d) outside document of length %d", e.Start, e.End, len(text))
	}
	return nil
}
