package langkeys

import "strings"

// LCIDs resolves a Windows locale identifier for a tag's parts. Empty script
// or region means the subtag is absent.
type LCIDs interface {
	LCID(language, script, region string) (uint32, bool)
}

// StaticLCIDs is the built-in table of Windows specific-culture identifiers.
// Neutral (language only) cultures are not listed, so bare tags always get
// fallback keys.
type StaticLCIDs map[string]uint32

// DefaultLCIDs is the table used by New.
var DefaultLCIDs = StaticLCIDs{
	"af-ZA":      0x0436,
	"am-ET":      0x045E,
	"ar-SA":      0x0401,
	"ar-EG":      0x0C01,
	"az-Cyrl-AZ": 0x082C,
	"az-Latn-AZ": 0x042C,
	"ba-RU":      0x046D,
	"be-BY":      0x0423,
	"bg-BG":      0x0402,
	"bn-IN":      0x0445,
	"br-FR":      0x047E,
	"bs-Cyrl-BA": 0x201A,
	"bs-Latn-BA": 0x141A,
	"ca-ES":      0x0403,
	"co-FR":      0x0483,
	"cs-CZ":      0x0405,
	"cy-GB":      0x0452,
	"da-DK":      0x0406,
	"de-AT":      0x0C07,
	"de-CH":      0x0807,
	"de-DE":      0x0407,
	"de-LI":      0x1407,
	"de-LU":      0x1007,
	"dsb-DE":     0x082E,
	"el-GR":      0x0408,
	"en-AU":      0x0C09,
	"en-CA":      0x1009,
	"en-GB":      0x0809,
	"en-IE":      0x1809,
	"en-IN":      0x4009,
	"en-NZ":      0x1409,
	"en-US":      0x0409,
	"en-ZA":      0x1C09,
	"es-ES":      0x0C0A,
	"es-MX":      0x080A,
	"es-US":      0x540A,
	"et-EE":      0x0425,
	"eu-ES":      0x042D,
	"fa-IR":      0x0429,
	"fi-FI":      0x040B,
	"fil-PH":     0x0464,
	"fo-FO":      0x0438,
	"fr-BE":      0x080C,
	"fr-CA":      0x0C0C,
	"fr-CH":      0x100C,
	"fr-FR":      0x040C,
	"fy-NL":      0x0462,
	"ga-IE":      0x083C,
	"gd-GB":      0x0491,
	"gl-ES":      0x0456,
	"gn-PY":      0x0474,
	"gsw-FR":     0x0484,
	"ha-Latn-NG": 0x0468,
	"haw-US":     0x0475,
	"he-IL":      0x040D,
	"hi-IN":      0x0439,
	"hr-HR":      0x041A,
	"hsb-DE":     0x042E,
	"hu-HU":      0x040E,
	"hy-AM":      0x042B,
	"id-ID":      0x0421,
	"ig-NG":      0x0470,
	"is-IS":      0x040F,
	"it-CH":      0x0810,
	"it-IT":      0x0410,
	"iu-Cans-CA": 0x045D,
	"iu-Latn-CA": 0x085D,
	"ja-JP":      0x0411,
	"ka-GE":      0x0437,
	"kk-KZ":      0x043F,
	"kl-GL":      0x046F,
	"km-KH":      0x0453,
	"ko-KR":      0x0412,
	"ky-KG":      0x0440,
	"lb-LU":      0x046E,
	"lt-LT":      0x0427,
	"lv-LV":      0x0426,
	"mi-NZ":      0x0481,
	"mk-MK":      0x042F,
	"mn-MN":      0x0450,
	"moh-CA":     0x047C,
	"ms-MY":      0x043E,
	"mt-MT":      0x043A,
	"nb-NO":      0x0414,
	"ne-NP":      0x0461,
	"nl-BE":      0x0813,
	"nl-NL":      0x0413,
	"nn-NO":      0x0814,
	"oc-FR":      0x0482,
	"pl-PL":      0x0415,
	"pt-BR":      0x0416,
	"pt-PT":      0x0816,
	"quz-PE":     0x0C6B,
	"rm-CH":      0x0417,
	"ro-RO":      0x0418,
	"ru-RU":      0x0419,
	"rw-RW":      0x0487,
	"sah-RU":     0x0485,
	"se-FI":      0x0C3B,
	"se-NO":      0x043B,
	"se-SE":      0x083B,
	"sk-SK":      0x041B,
	"sl-SI":      0x0424,
	"sma-NO":     0x183B,
	"sma-SE":     0x1C3B,
	"smj-NO":     0x103B,
	"smj-SE":     0x143B,
	"smn-FI":     0x243B,
	"sms-FI":     0x203B,
	"sq-AL":      0x041C,
	"sr-Cyrl-BA": 0x1C1A,
	"sr-Cyrl-ME": 0x301A,
	"sr-Cyrl-RS": 0x281A,
	"sr-Latn-BA": 0x181A,
	"sr-Latn-ME": 0x2C1A,
	"sr-Latn-RS": 0x241A,
	"sv-FI":      0x081D,
	"sv-SE":      0x041D,
	"sw-KE":      0x0441,
	"ta-IN":      0x0449,
	"tg-Cyrl-TJ": 0x0428,
	"th-TH":      0x041E,
	"tk-TM":      0x0442,
	"tn-ZA":      0x0432,
	"tr-TR":      0x041F,
	"tt-RU":      0x0444,
	"ug-CN":      0x0480,
	"uk-UA":      0x0422,
	"uz-Cyrl-UZ": 0x0843,
	"uz-Latn-UZ": 0x0443,
	"vi-VN":      0x042A,
	"wo-SN":      0x0488,
	"xh-ZA":      0x0434,
	"yo-NG":      0x046A,
	"zh-CN":      0x0804,
	"zh-HK":      0x0C04,
	"zh-SG":      0x1004,
	"zh-TW":      0x0404,
	"zu-ZA":      0x0435,
}

func (t StaticLCIDs) LCID(language, script, region string) (uint32, bool) {
	parts := []string{language}
	if script != "" {
		parts = append(parts, script)
	}
	if region != "" {
		parts = append(parts, region)
	}
	id, ok := t[strings.Join(parts, "-")]
	return id, ok
}
