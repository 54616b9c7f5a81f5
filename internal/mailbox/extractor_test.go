package mailbox

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func extract(t *testing.T, bodyStructure string) ([]AttachmentCandidate, *Diagnostic) {
	t.Helper()
	e := NewExtractor(nil)
	return e.ExtractAttachments(FetchRecord{UID: 42, BodyStructure: bodyStructure})
}

func TestExtractStructuredPDF(t *testing.T) {
	cands, diag := extract(t, mixedWithPDF)
	require.Nil(t, diag)
	require.Len(t, cands, 1)

	c := cands[0]
	assert.Equal(t, uint32(42), c.SourceUID)
	assert.Equal(t, "application", c.MimeType)
	assert.Equal(t, "pdf", c.Subtype)
	assert.Equal(t, "fp-2024-001.pdf", c.Filename)
	assert.Equal(t, "2", c.Section)
	assert.Equal(t, "base64", c.Encoding)
	assert.Equal(t, int64(48230), c.DeclaredSize)
	assert.InDelta(t, 0.9, c.Confidence, 0.001)
}

func TestExtractPlainMessageNoCandidates(t *testing.T) {
	cands, diag := extract(t, simpleLeaf)
	assert.Nil(t, diag, "a parseable message with no documents is not an anomaly")
	assert.Empty(t, cands)
}

func TestExtractByDispositionWithoutKnownMedia(t *testing.T) {
	// unfamiliar media type, but disposition says attachment
	raw := `(("text" "plain" NIL NIL NIL "7bit" 10 1)` +
		`("application" "x-custom" NIL NIL NIL "base64" 500 NIL ("attachment" ("filename" "ticket.ofd"))) "mixed")`
	cands, diag := extract(t, raw)
	require.Nil(t, diag)
	require.Len(t, cands, 1)
	assert.Equal(t, "ticket.ofd", cands[0].Filename)
}

func TestExtractByFilenameExtensionOnly(t *testing.T) {
	// inline image with a document extension in the name parameter
	raw := `(("text" "plain" NIL NIL NIL "7bit" 10 1)` +
		`("image" "tiff" ("name" "scan.jpg") NIL NIL "base64" 900 NIL) "mixed")`
	cands, diag := extract(t, raw)
	require.Nil(t, diag)
	require.Len(t, cands, 1)
	assert.Equal(t, "scan.jpg", cands[0].Filename)
}

func TestExtractDecodesEncodedFilename(t *testing.T) {
	raw := `(("text" "plain" NIL NIL NIL "7bit" 10 1)` +
		`("application" "pdf" ("name" "=?utf-8?B?5Y+R56WoLnBkZg==?=") NIL NIL "base64" 900) "mixed")`
	cands, diag := extract(t, raw)
	require.Nil(t, diag)
	require.Len(t, cands, 1)
	assert.Equal(t, "发票.pdf", cands[0].Filename)
}

func TestExtractNestedSectionPaths(t *testing.T) {
	raw := `((("text" "plain" NIL NIL NIL "7bit" 10 1)` +
		`("text" "html" NIL NIL NIL "7bit" 10 1) "alternative")` +
		`("application" "pdf" ("name" "inner.pdf") NIL NIL "base64" 100) "mixed")`
	cands, diag := extract(t, raw)
	require.Nil(t, diag)
	require.Len(t, cands, 1)
	assert.Equal(t, "2", cands[0].Section)
}

func TestRecoveryFromMalformedDescriptor(t *testing.T) {
	// unbalanced parens, but the attachment shape is still visible
	raw := `(("text" "plain" ("charset" "gbk") NIL NIL "7bit" 99 3` +
		`("application" "pdf" NIL NIL NIL "base64" 123 NIL ("attachment" ("filename" "invoice.pdf"))`
	cands, diag := extract(t, raw)
	require.Nil(t, diag)
	require.Len(t, cands, 1)

	c := cands[0]
	assert.Equal(t, "invoice.pdf", c.Filename)
	assert.Empty(t, c.Section, "recovered candidates have no part path")
	assert.Equal(t, raw, c.RawDescriptor)
	assert.Less(t, c.Confidence, float32(0.5))
}

func TestRecoveryAttachmentPatternTrustedWithoutExtension(t *testing.T) {
	// explicit attachment disposition wins even with an unknown extension
	raw := `broken ("attachment" ("filename" "voucher.dat")) trailing`
	cands, diag := extract(t, raw)
	require.Nil(t, diag)
	require.Len(t, cands, 1)
	assert.Equal(t, "voucher.dat", cands[0].Filename)
}

func TestRecoveryNamePatternRequiresExtension(t *testing.T) {
	// a bare name parameter without a document extension stays out
	raw := `broken ( "name" "readme.txt" more "name" "fare.pdf"`
	cands, diag := extract(t, raw)
	require.Nil(t, diag)
	require.Len(t, cands, 1)
	assert.Equal(t, "fare.pdf", cands[0].Filename)
}

func TestRecoveryCollapsesDuplicateFilenames(t *testing.T) {
	raw := `broken ("attachment" ("filename" "same.pdf")) "name" "SAME.PDF" junk`
	cands, diag := extract(t, raw)
	require.Nil(t, diag)
	assert.Len(t, cands, 1)
}

func TestRecoveryDecodesEncodedWord(t *testing.T) {
	raw := `broken "filename" =?utf-8?B?5Y+R56WoLnBkZg==?= junk`
	cands, diag := extract(t, raw)
	require.Nil(t, diag)
	require.Len(t, cands, 1)
	assert.Equal(t, "发票.pdf", cands[0].Filename)
}

func TestUnrecoverableYieldsDiagnosticNotError(t *testing.T) {
	cands, diag := extract(t, `%%% total garbage %%%`)
	assert.Empty(t, cands)
	require.NotNil(t, diag)
	assert.Equal(t, uint32(42), diag.UID)
	assert.Contains(t, diag.Reason, "unparseable body structure")
}

func TestExtractIsRepeatable(t *testing.T) {
	for range 3 {
		cands, diag := extract(t, mixedWithPDF)
		require.Nil(t, diag)
		require.Len(t, cands, 1)
	}
}
