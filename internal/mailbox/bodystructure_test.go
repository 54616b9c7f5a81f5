package mailbox

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const simpleLeaf = `("text" "plain" ("charset" "utf-8") NIL NIL "7bit" 2279 48)`

const mixedWithPDF = `(("text" "plain" ("charset" "utf-8") NIL NIL "7bit" 120 4)` +
	`("application" "pdf" ("name" "fp-2024-001.pdf") NIL NIL "base64" 48230 NIL ` +
	`("attachment" ("filename" "fp-2024-001.pdf")) NIL) "mixed" ("boundary" "b1") NIL NIL)`

func TestParseSimpleLeaf(t *testing.T) {
	p, err := ParseBodyStructure(simpleLeaf)
	require.NoError(t, err)
	assert.Equal(t, "text", p.Type)
	assert.Equal(t, "plain", p.Subtype)
	assert.Equal(t, "utf-8", p.Params["charset"])
	assert.Equal(t, "7bit", p.Encoding)
	assert.Equal(t, int64(2279), p.Size)
	assert.Empty(t, p.Children)
}

func TestParseMultipartMixed(t *testing.T) {
	p, err := ParseBodyStructure(mixedWithPDF)
	require.NoError(t, err)
	assert.Equal(t, "multipart", p.Type)
	assert.Equal(t, "mixed", p.Subtype)
	require.Len(t, p.Children, 2)

	pdf := p.Children[1]
	assert.Equal(t, "application", pdf.Type)
	assert.Equal(t, "pdf", pdf.Subtype)
	assert.Equal(t, "fp-2024-001.pdf", pdf.Params["name"])
	assert.Equal(t, "base64", pdf.Encoding)
	assert.Equal(t, int64(48230), pdf.Size)
	assert.Equal(t, "attachment", pdf.Disposition)
	assert.Equal(t, "fp-2024-001.pdf", pdf.DispositionParams["filename"])
}

func TestParseNestedMultipart(t *testing.T) {
	raw := `((("text" "plain" ("charset" "utf-8") NIL NIL "7bit" 10 1)` +
		`("text" "html" ("charset" "utf-8") NIL NIL "quoted-printable" 20 1) "alternative")` +
		`("image" "png" ("name" "stamp.png") NIL NIL "base64" 512) "mixed")`
	p, err := ParseBodyStructure(raw)
	require.NoError(t, err)
	require.Len(t, p.Children, 2)
	alt := p.Children[0]
	assert.Equal(t, "multipart", alt.Type)
	assert.Equal(t, "alternative", alt.Subtype)
	require.Len(t, alt.Children, 2)
	assert.Equal(t, "html", alt.Children[1].Subtype)
	assert.Equal(t, "png", p.Children[1].Subtype)
}

func TestParseQuotedEscapes(t *testing.T) {
	raw := `("application" "pdf" ("name" "report \"final\".pdf") NIL NIL "base64" 99)`
	p, err := ParseBodyStructure(raw)
	require.NoError(t, err)
	assert.Equal(t, `report "final".pdf`, p.Params["name"])
}

func TestParseCaseInsensitiveNIL(t *testing.T) {
	raw := `("TEXT" "PLAIN" nil NIL Nil "7BIT" 5 1)`
	p, err := ParseBodyStructure(raw)
	require.NoError(t, err)
	assert.Equal(t, "text", p.Type)
	assert.Nil(t, p.Params)
}

func TestParseErrorsCarryRawText(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"unmatched open", `(("text" "plain" ("charset" "utf-8") NIL NIL "7bit" 10 1) "mixed"`},
		{"unmatched close", `"text" "plain") NIL`},
		{"unterminated quote", `("text" "plain NIL NIL NIL "7bit" 10)`},
		{"trailing garbage", simpleLeaf + ` overflow`},
		{"trailing quoted string", simpleLeaf + ` "overflow"`},
		{"short leaf", `("application" "pdf" NIL)`},
		{"empty", ``},
		{"bare atom", `pdf`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseBodyStructure(tc.raw)
			require.Error(t, err)
			var pe *ParseError
			require.ErrorAs(t, err, &pe)
			assert.Equal(t, tc.raw, pe.Raw, "recovery needs the original text")
		})
	}
}

func TestParseMultipartWithoutSubtypeIsAmbiguous(t *testing.T) {
	raw := `(("text" "plain" NIL NIL NIL "7bit" 10 1)("text" "html" NIL NIL NIL "7bit" 10 1))`
	_, err := ParseBodyStructure(raw)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ambiguous top-level type")
}

func TestParseUnwrappedMultipart(t *testing.T) {
	// some servers omit the outer wrapping parens
	raw := `("text" "plain" NIL NIL NIL "7bit" 10 1)("application" "pdf" ("name" "a.pdf") NIL NIL "base64" 77) "mixed"`
	p, err := ParseBodyStructure(raw)
	require.NoError(t, err)
	assert.Equal(t, "mixed", p.Subtype)
	require.Len(t, p.Children, 2)
	assert.Equal(t, "a.pdf", p.Children[1].Params["name"])
}

func TestDecodeHeaderValue(t *testing.T) {
	// utf-8 B-encoded Chinese filename
	assert.Equal(t, "发票.pdf", DecodeHeaderValue("=?utf-8?B?5Y+R56WoLnBkZg==?="))
	// Q-encoded with underscores for spaces
	assert.Equal(t, "taxi receipt.pdf", DecodeHeaderValue("=?utf-8?Q?taxi_receipt.pdf?="))
	// plain value untouched
	assert.Equal(t, "plain.pdf", DecodeHeaderValue("plain.pdf"))
	// undecodable stays raw rather than becoming empty
	garbled := "=?x-unknown-charset?X?zzzz?="
	assert.Equal(t, garbled, DecodeHeaderValue(garbled))
}
