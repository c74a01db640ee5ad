package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/docfold/mdconvert/internal/converter"
	"github.com/docfold/mdconvert/internal/document"
)

type convertedDocument struct {
	ID      string         `json:"id"`
	Content string         `json:"content"`
	Meta    map[string]any `json:"meta"`
}

// handleConvert accepts a multipart upload of one Markdown file plus option
// form fields and returns the converted document. Absent option fields fall
// back to the server's configured defaults.
func (s *Server) handleConvert(w http.ResponseWriter, r *http.Request) {
	// Limit total request size.
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes+1024*1024) // extra 1MB for form overhead

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		jsonError(w, "invalid multipart form: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if err != nil {
		jsonError(w, "file is required: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer file.Close()

	filename := sanitizeFilename(header.Filename)
	if !isMarkdownFilename(filename) {
		jsonError(w, fmt.Sprintf("unsupported file type: %s", filepath.Ext(filename)), http.StatusBadRequest)
		return
	}

	data, err := io.ReadAll(io.LimitReader(file, s.cfg.MaxUploadBytes+1))
	if err != nil {
		jsonError(w, "failed to read file", http.StatusInternalServerError)
		return
	}
	if int64(len(data)) > s.cfg.MaxUploadBytes {
		jsonError(w, fmt.Sprintf("file exceeds max size (%d bytes)", s.cfg.MaxUploadBytes), http.StatusRequestEntityTooLarge)
		return
	}

	call, err := callOptionsFromForm(r)
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}

	docs, err := s.conv.ConvertBytes(data, filename, call)
	if err != nil {
		s.log.Error("convert failed", "filename", filename, "error", err)
		jsonError(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"documents": toResponse(docs),
	})
}

// callOptionsFromForm builds per-call overrides from optional form values.
func callOptionsFromForm(r *http.Request) (converter.CallOptions, error) {
	var call converter.CallOptions

	for field, dst := range map[string]**bool{
		"remove_code_snippets":    &call.RemoveCodeSnippets,
		"extract_headlines":       &call.ExtractHeadlines,
		"add_frontmatter_to_meta": &call.AddFrontmatterToMeta,
	} {
		v := r.FormValue(field)
		if v == "" {
			continue
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return call, fmt.Errorf("invalid %s: %q", field, v)
		}
		*dst = &b
	}

	if v := r.FormValue("encoding"); v != "" {
		call.Encoding = &v
	}
	if v := r.FormValue("id_hash_keys"); v != "" {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				call.IDHashKeys = append(call.IDHashKeys, part)
			}
		}
	}
	if v := r.FormValue("meta"); v != "" {
		meta := map[string]any{}
		if err := json.Unmarshal([]byte(v), &meta); err != nil {
			return call, fmt.Errorf("invalid meta: %s", err)
		}
		call.Meta = meta
	}

	return call, nil
}

func toResponse(docs []document.Document) []convertedDocument {
	out := make([]convertedDocument, 0, len(docs))
	for _, d := range docs {
		out = append(out, convertedDocument{
			ID:      d.ID(),
			Content: d.Content,
			Meta:    d.Meta,
		})
	}
	return out
}

func isMarkdownFilename(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".md", ".markdown":
		return true
	}
	return false
}

// sanitizeFilename strips any path components from an uploaded filename.
func sanitizeFilename(name string) string {
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, "..", "")
	if name == "" || name == "." || name == "/" {
		name = "upload.md"
	}
	return name
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
