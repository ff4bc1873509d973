package inspector

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"shaderinspector/internal/shader"
)

type lastRecord struct {
	FileName     string             `json:"file_name"`
	Untitled     bool               `json:"untitled"`
	LanguageID   string             `json:"language_id"`
	Text         string             `json:"text,omitempty"`
	Declaration  shader.Declaration `json:"declaration"`
	RecordedUnix int64              `json:"recorded_unix"`
}

func (s *Session) loadLast() {
	if s.statePath == "" {
		return
	}
	f, err := os.Open(s.statePath)
	if err != nil {
		return
	}
	defer f.Close()
	var rec lastRecord
	if err := json.NewDecoder(f).Decode(&rec); err != nil {
		s.log.Debug().Err(err).Str("path", s.statePath).Msg("ignoring unreadable compile state")
		return
	}
	var doc Document
	if rec.Untitled {
		doc = NewMemoryDocument(rec.FileName, rec.LanguageID, rec.Text)
	} else {
		doc = lazyFileDocument(rec.FileName)
	}
	s.last = &Request{Document: doc, Declaration: rec.Declaration}
}

func (s *Session) saveLast(req Request) {
	if s.statePath == "" {
		return
	}
	rec := lastRecord{
		FileName:     req.Document.FileName(),
		Untitled:     req.Document.IsUntitled(),
		LanguageID:   req.Document.LanguageID(),
		Declaration:  req.Declaration,
		RecordedUnix: time.Now().Unix(),
	}
	if rec.Untitled {
		rec.Text = req.Document.Text()
	}
	b, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return
	}
	if err := os.MkdirAll(filepath.Dir(s.statePath), 0o755); err != nil {
		s.log.Warn().Err(err).Str("path", s.statePath).Msg("cannot create state directory")
		return
	}
	if err := os.WriteFile(s.statePath, b, 0o644); err != nil {
		s.log.Warn().Err(err).Str("path", s.statePath).Msg("cannot persist last compile")
	}
}
