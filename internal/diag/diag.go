// Package diag is the CLI-facing message catalog shared by cmd/ebnfc and
// example/calc: status lines and banner errors are looked up by a
// stable ID here rather than formatted inline, so the wording lives in
// one place and can grow additional locales without touching either
// command's Go source.
package diag

import (
	_ "embed"

	"github.com/nicksnyder/go-i18n/i18n"
)

//go:embed catalog.en.json
var enCatalog []byte

// T translates a message ID against the embedded "en" catalog, filling
// in {{.Field}} placeholders from args (go-i18n's usual
// map[string]interface{} / struct template data).
var T i18n.TranslateFunc

func init() {
	if err := i18n.ParseTranslationFileBytes("catalog.en.json", enCatalog); err != nil {
		panic("diag: invalid embedded catalog: " + err.Error())
	}
	T = i18n.MustTfunc("en")
}

// Message IDs. Kept as constants so a typo is a compile error, not a
// silently-missing translation.
const (
	NoInput        = "no_input"
	CompileFailed  = "compile_failed"
	CompileOK      = "compile_ok"
	ParseNoMatch   = "parse_no_match"
	ParseMismatch  = "parse_mismatch"
	ParsePremature = "parse_premature"
)
