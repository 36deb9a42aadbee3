package langkeys

import "golang.org/x/text/language"

// Scripts resolves the default script of a language subtag.
type Scripts interface {
	DefaultScript(language string) (string, bool)
}

// StaticScripts maps language subtags to ISO 15924 script codes.
type StaticScripts map[string]string

// DefaultScripts covers the minority languages spellers ship for, where CLDR
// data is missing or disagrees with what Office expects.
var DefaultScripts = StaticScripts{
	"bxr": "Cyrl",
	"ckb": "Arab",
	"crk": "Cans",
	"fit": "Latn",
	"fkv": "Latn",
	"ikt": "Latn",
	"izh": "Latn",
	"kca": "Cyrl",
	"koi": "Cyrl",
	"kpv": "Cyrl",
	"krl": "Latn",
	"liv": "Latn",
	"lud": "Latn",
	"mdf": "Cyrl",
	"mhr": "Cyrl",
	"mns": "Cyrl",
	"mrj": "Cyrl",
	"myv": "Cyrl",
	"nio": "Cyrl",
	"olo": "Latn",
	"rmf": "Latn",
	"rmy": "Latn",
	"se":  "Latn",
	"sjd": "Cyrl",
	"sje": "Latn",
	"sju": "Latn",
	"sma": "Latn",
	"smj": "Latn",
	"smn": "Latn",
	"sms": "Latn",
	"udm": "Cyrl",
	"vep": "Latn",
	"vot": "Latn",
	"vro": "Latn",
	"yrk": "Cyrl",
}

func (t StaticScripts) DefaultScript(lang string) (string, bool) {
	s, ok := t[lang]
	return s, ok
}

// CLDRScripts uses the CLDR likely-subtags data bundled with x/text.
type CLDRScripts struct{}

func (CLDRScripts) DefaultScript(lang string) (string, bool) {
	base, err := language.ParseBase(lang)
	if err != nil {
		return "", false
	}
	tag, err := language.Compose(base)
	if err != nil {
		return "", false
	}
	script, conf := tag.Script()
	if conf == language.No {
		return "", false
	}
	return script.String(), true
}

// ChainScripts returns the first answer from its members.
type ChainScripts []Scripts

func (c ChainScripts) DefaultScript(lang string) (string, bool) {
	for _, s := range c {
		if script, ok := s.DefaultScript(lang); ok {
			return script, true
		}
	}
	return "", false
}
