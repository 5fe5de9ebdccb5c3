package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"

	"github.com/procurehq/procurement-tracker/internal/extraction"
)

// Namespace prefixes one cache class from another in a shared backend.
const Namespace = "extract:v1:"

// keyPayload is the canonical serialization the digest is computed over.
// Field order is fixed by the struct, so identical triples always serialize
// identically.
type keyPayload struct {
	Text     string `json:"text"`
	DocType  string `json:"doc_type"`
	Template string `json:"template"`
}

// Key derives the content-addressed cache key for a request: sha256 over the
// canonical serialization of the trimmed triple, truncated to 128 bits of
// hex, namespaced by the cache class.
//
// Only leading/trailing whitespace is normalized. Two requests that differ in
// internal whitespace or formatting hash to different keys; that is a
// documented product decision, not a bug.
func Key(req extraction.Request) string {
	payload, _ := json.Marshal(keyPayload{
		Text:     strings.TrimSpace(req.NormalizedText),
		DocType:  strings.TrimSpace(req.DocumentType),
		Template: strings.TrimSpace(req.PromptTemplateID),
	})
	sum := sha256.Sum256(payload)
	return Namespace + hex.EncodeToString(sum[:16])
}
