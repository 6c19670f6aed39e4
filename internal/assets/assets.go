package assets

import _ "embed"

// ResumePDF is the one-page résumé document. The bytes are written out
// verbatim and never parsed; the xref offsets inside are known to be off.
//
//go:embed blake-carter-resume.pdf
var ResumePDF []byte
