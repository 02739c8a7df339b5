package definitions

// Months maps Icelandic month names (full, abbreviated with period, abbreviated without) to 1-12.
var Months = map[string]int{
	"janúar": 1,
	"febrúar": 2,
	"mars": 3,
	"apríl": 4,
	"maí": 5,
	"júní": 6,
	"júlí": 7,
	"ágúst": 8,
	"september": 9,
	"október": 10,
	"nóvember": 11,
	"desember": 12,
	"jan.": 1,
	"feb.": 2,
	"mar.": 3,
	"apr.": 4,
	"jún.": 6,
	"júl.": 7,
	"ág.": 8,
	"ágú.": 8,
	"sep.": 9,
	"sept.": 9,
	"okt.": 10,
	"nóv.": 11,
	"des.": 12,
	"jan": 1,
	"feb": 2,
	"mar": 3,
	"apr": 4,
	"jún": 6,
	"júl": 7,
	"ág": 8,
	"ágú": 8,
	"sep": 9,
	"sept": 9,
	"okt": 10,
	"nóv": 11,
	"des": 12,
}

// DaysOfMonth maps spelled-out Icelandic ordinal day words to their numeric day value.
var DaysOfMonth = map[string]int{
	"fyrsti": 1,
	"fyrsta": 1,
	"annar": 2,
	"annan": 2,
	"þriðji": 3,
	"þriðja": 3,
	"fjórði": 4,
	"fjórða": 4,
	"fimmti": 5,
	"fimmta": 5,
	"sjötti": 6,
	"sjötta": 6,
	"sjöundi": 7,
	"sjöunda": 7,
	"áttundi": 8,
	"áttunda": 8,
	"níundi": 9,
	"níunda": 9,
	"tíundi": 10,
	"tíunda": 10,
	"ellefti": 11,
	"ellefta": 11,
	"tólfti": 12,
	"tólfta": 12,
	"þrettándi": 13,
	"þrettánda": 13,
	"fjórtándi": 14,
	"fjórtánda": 14,
	"fimmtándi": 15,
	"fimmtánda": 15,
	"sextándi": 16,
	"sextánda": 16,
	"sautjándi": 17,
	"sautjánda": 17,
	"átjándi": 18,
	"átjánda": 18,
	"nítjándi": 19,
	"nítjánda": 19,
	"tuttugasti": 20,
	"tuttugasta": 20,
	"þrítugasti": 30,
	"þrítugasta": 30,
}

// OrdinalErrors maps a kludgy ordinal surface form ("1sti") to its canonical spelled-out word ("fyrsti"), for handle_kludgy_ordinals=MODIFY.
var OrdinalErrors = map[string]string{
	"1sti": "fyrsti",
	"1sta": "fyrsta",
	"1stu": "fyrstu",
	"3ji": "þriðji",
	"3ja": "þriðja",
	"3ju": "þriðju",
	"4ði": "fjórði",
	"4ða": "fjórða",
	"4ðu": "fjórðu",
	"5ti": "fimmti",
	"5ta": "fimmta",
	"5tu": "fimmtu",
	"2svar": "tvisvar",
	"3svar": "þrisvar",
	"2ja": "tveggja",
	"4ra": "fjögurra",
}

// OrdinalNumbers maps a kludgy ordinal surface form to its integer value, for handle_kludgy_ordinals=TRANSLATE.
var OrdinalNumbers = map[string]int{
	"1sti": 1,
	"1sta": 1,
	"1stu": 1,
	"3ji": 3,
	"3ja": 3,
	"3ju": 3,
	"4ði": 4,
	"4ða": 4,
	"4ðu": 4,
	"5ti": 5,
	"5ta": 5,
	"5tu": 5,
}

// AmountAbbrev maps an ISK amount suffix ("kr.", "m.kr.", ...) to its multiplier.
var AmountAbbrev = map[string]float64{
	"kr.": 1,
	"kr": 1,
	"krónur": 1,
	"þ.kr.": 1000,
	"þ.kr": 1000,
	"þús.kr.": 1000,
	"þús.kr": 1000,
	"m.kr.": 1000000,
	"m.kr": 1000000,
	"mkr.": 1000000,
	"mkr": 1000000,
	"millj.kr.": 1000000,
	"millj.kr": 1000000,
	"mljó.kr.": 1000000,
	"mljó.kr": 1000000,
	"ma.kr.": 1000000000,
	"ma.kr": 1000000000,
	"mö.kr.": 1000000000,
	"mö.kr": 1000000000,
	"mlja.kr.": 1000000000,
	"mlja.kr": 1000000000,
}

// CurrencySymbols maps a currency symbol rune (as a string) to its ISO 4217 code.
var CurrencySymbols = map[string]string{
	"$": "USD",
	"€": "EUR",
	"£": "GBP",
	"¥": "JPY",
	"₽": "RUB",
}

// TopLevelDomains is the set of top-level domains recognized by the URL/DOMAIN/EMAIL sub-lexers.
var TopLevelDomains = map[string]bool{
	"com": true,
	"org": true,
	"net": true,
	"edu": true,
	"gov": true,
	"mil": true,
	"int": true,
	"arpa": true,
	"eu": true,
	"biz": true,
	"info": true,
	"xyz": true,
	"online": true,
	"site": true,
	"tech": true,
	"top": true,
	"space": true,
	"news": true,
	"pro": true,
	"club": true,
	"loan": true,
	"win": true,
	"vip": true,
	"icu": true,
	"app": true,
	"blog": true,
	"shop": true,
	"work": true,
	"ltd": true,
	"mobi": true,
	"live": true,
	"store": true,
	"gdn": true,
	"ac": true,
	"ad": true,
	"ae": true,
	"af": true,
	"ag": true,
	"ai": true,
	"al": true,
	"am": true,
	"ao": true,
	"aq": true,
	"ar": true,
	"as": true,
	"at": true,
	"au": true,
	"aw": true,
	"ax": true,
	"az": true,
	"ba": true,
	"bb": true,
	"bd": true,
	"be": true,
	"bf": true,
	"bg": true,
	"bh": true,
	"bi": true,
	"bj": true,
	"bm": true,
	"bn": true,
	"bo": true,
	"br": true,
	"bs": true,
	"bt": true,
	"bw": true,
	"by": true,
	"bz": true,
	"ca": true,
	"cc": true,
	"cd": true,
	"cf": true,
	"cg": true,
	"ch": true,
	"ci": true,
	"ck": true,
	"cl": true,
	"cm": true,
	"cn": true,
	"co": true,
	"cr": true,
	"cu": true,
	"cv": true,
	"cw": true,
	"cx": true,
	"cy": true,
	"cz": true,
	"de": true,
	"dj": true,
	"dk": true,
	"dm": true,
	"do": true,
	"dz": true,
	"ec": true,
	"ee": true,
	"eg": true,
	"er": true,
	"es": true,
	"et": true,
	"eu": true,
	"fi": true,
	"fj": true,
	"fk": true,
	"fm": true,
	"fo": true,
	"fr": true,
	"ga": true,
	"gd": true,
	"ge": true,
	"gf": true,
	"gg": true,
	"gh": true,
	"gi": true,
	"gl": true,
	"gm": true,
	"gn": true,
	"gp": true,
	"gq": true,
	"gr": true,
	"gs": true,
	"gt": true,
	"gu": true,
	"gw": true,
	"gy": true,
	"hk": true,
	"hm": true,
	"hn": true,
	"hr": true,
	"ht": true,
	"hu": true,
	"id": true,
	"ie": true,
	"il": true,
	"im": true,
	"in": true,
	"io": true,
	"iq": true,
	"ir": true,
	"is": true,
	"it": true,
	"je": true,
	"jm": true,
	"jo": true,
	"jp": true,
	"ke": true,
	"kg": true,
	"kh": true,
	"ki": true,
	"km": true,
	"kn": true,
	"kp": true,
	"kr": true,
	"kw": true,
	"ky": true,
	"kz": true,
	"la": true,
	"lb": true,
	"lc": true,
	"li": true,
	"lk": true,
	"lr": true,
	"ls": true,
	"lt": true,
	"lu": true,
	"lv": true,
	"ly": true,
	"ma": true,
	"mc": true,
	"md": true,
	"me": true,
	"mg": true,
	"mh": true,
	"mk": true,
	"ml": true,
	"mm": true,
	"mn": true,
	"mo": true,
	"mp": true,
	"mq": true,
	"mr": true,
	"ms": true,
	"mt": true,
	"mu": true,
	"mv": true,
	"mw": true,
	"mx": true,
	"my": true,
	"mz": true,
	"na": true,
	"nc": true,
	"ne": true,
	"nf": true,
	"ng": true,
	"ni": true,
	"nl": true,
	"no": true,
	"np": true,
	"nr": true,
	"nu": true,
	"nz": true,
	"om": true,
	"pa": true,
	"pe": true,
	"pf": true,
	"pg": true,
	"ph": true,
	"pk": true,
	"pl": true,
	"pm": true,
	"pn": true,
	"pr": true,
	"ps": true,
	"pt": true,
	"pw": true,
	"py": true,
	"qa": true,
	"re": true,
	"ro": true,
	"rs": true,
	"ru": true,
	"rw": true,
	"sa": true,
	"sb": true,
	"sc": true,
	"sd": true,
	"se": true,
	"sg": true,
	"sh": true,
	"si": true,
	"sk": true,
	"sl": true,
	"sm": true,
	"sn": true,
	"so": true,
	"sr": true,
	"ss": true,
	"st": true,
	"sv": true,
	"sx": true,
	"sy": true,
	"sz": true,
	"tc": true,
	"td": true,
	"tf": true,
	"tg": true,
	"th": true,
	"tj": true,
	"tk": true,
	"tl": true,
	"tm": true,
	"tn": true,
	"to": true,
	"tr": true,
	"tt": true,
	"tv": true,
	"tw": true,
	"tz": true,
	"ua": true,
	"ug": true,
	"uk": true,
	"us": true,
	"uy": true,
	"uz": true,
	"va": true,
	"vc": true,
	"ve": true,
	"vg": true,
	"vi": true,
	"vn": true,
	"vu": true,
	"wf": true,
	"ws": true,
	"ye": true,
	"yt": true,
	"za": true,
	"zm": true,
	"zw": true,
}
