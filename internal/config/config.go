package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/docfold/mdconvert/internal/converter"
)

type Config struct {
	Port string

	// Auth
	APIKey string

	// Upload limits
	MaxUploadBytes int64

	// Converter defaults, overridable per request.
	RemoveCodeSnippets   bool
	ExtractHeadlines     bool
	AddFrontmatterToMeta bool
	IDHashKeys           []string
	Encoding             string
}

func Load() Config {
	cfg := Config{
		Port: envOr("PORT", "8091"),

		APIKey: os.Getenv("MDCONVERT_API_KEY"),

		MaxUploadBytes: envInt64("MAX_UPLOAD_BYTES", 10485760), // 10MB

		RemoveCodeSnippets:   envBool("REMOVE_CODE_SNIPPETS", true),
		ExtractHeadlines:     envBool("EXTRACT_HEADLINES", false),
		AddFrontmatterToMeta: envBool("ADD_FRONTMATTER_TO_META", false),
		IDHashKeys:           envList("ID_HASH_KEYS"),
		Encoding:             envOr("SOURCE_ENCODING", "utf-8"),
	}

	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = 10485760
	}

	return cfg
}

func (c Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("MDCONVERT_API_KEY is required")
	}
	return nil
}

// ConverterOptions maps the configured defaults onto converter options.
func (c Config) ConverterOptions() converter.Options {
	return converter.Options{
		RemoveCodeSnippets:   c.RemoveCodeSnippets,
		ExtractHeadlines:     c.ExtractHeadlines,
		AddFrontmatterToMeta: c.AddFrontmatterToMeta,
		IDHashKeys:           c.IDHashKeys,
		Encoding:             c.Encoding,
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func envList(key string) []string {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
