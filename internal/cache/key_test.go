package cache

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/procurehq/procurement-tracker/internal/extraction"
)

func TestKeyDeterministic(t *testing.T) {
	req := extraction.Request{
		NormalizedText:   "Invoice INV-100\nTotal: 99.00 EUR",
		DocumentType:     "Invoice",
		PromptTemplateID: "procurement-extract-v1",
	}
	assert.Equal(t, Key(req), Key(req))
	assert.True(t, strings.HasPrefix(Key(req), Namespace))
	// namespace + 128-bit hex digest
	assert.Len(t, Key(req), len(Namespace)+32)
}

func TestKeyTrimsOuterWhitespaceOnly(t *testing.T) {
	base := extraction.Request{
		NormalizedText:   "Total: 99.00 EUR",
		DocumentType:     "Invoice",
		PromptTemplateID: "procurement-extract-v1",
	}
	padded := base
	padded.NormalizedText = "  \n" + base.NormalizedText + "\t "
	assert.Equal(t, Key(base), Key(padded), "leading/trailing whitespace must not change the key")

	internal := base
	internal.NormalizedText = "Total:  99.00 EUR"
	assert.NotEqual(t, Key(base), Key(internal), "internal whitespace is part of the identity")
}

func TestKeyVariesAcrossTriple(t *testing.T) {
	base := extraction.Request{
		NormalizedText:   "Total: 99.00 EUR",
		DocumentType:     "Invoice",
		PromptTemplateID: "procurement-extract-v1",
	}

	otherType := base
	otherType.DocumentType = "Contract"
	assert.NotEqual(t, Key(base), Key(otherType))

	otherTemplate := base
	otherTemplate.PromptTemplateID = "procurement-extract-v2"
	assert.NotEqual(t, Key(base), Key(otherTemplate))
}
