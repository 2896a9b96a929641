package textnorm

import "strings"

// Verlan and argot vocabulary mapped to standard French. Keys are the
// dialect forms as they appear in lyrics.
var verlanDict = map[string]string{
	"meuf": "femme", "keuf": "flic", "teuf": "fete", "chelou": "louche",
	"ouf": "fou", "cimer": "merci", "zarbi": "bizarre", "relou": "lourd",
	"beur": "arabe", "rebeu": "arabe", "trom": "metro", "reum": "mere",
	"reup": "pere", "reuf": "frere", "reus": "soeur", "teci": "cite",
	"tess": "cite", "zyva": "vas-y", "ziva": "vas-y", "vazy": "vas-y",
	"pécho": "choper", "chanmé": "méchant", "venère": "énervé",
	"cainri": "ricain", "feuj": "juif", "renoi": "noir", "reblan": "blanc",
	"cefran": "francais", "céfran": "francais", "keum": "mec",
	"zonmai": "maison", "zicmu": "musique",

	// double verlan
	"meufeu": "femme", "feumeu": "femme", "beubar": "barbe",

	// argot
	"thune": "argent", "oseille": "argent", "biff": "argent", "ble": "argent",
	"blé": "argent", "fric": "argent", "pognon": "argent", "moula": "argent",
	"moulaga": "argent", "liasse": "argent", "gadji": "fille", "go": "fille",
	"gova": "fille", "daronne": "mere", "daron": "pere", "deter": "determiné",
	"gow": "fille", "hess": "misere", "lass": "fille", "narvalo": "fou",
	"paro": "fou", "pera": "pere", "rageux": "jaloux", "seum": "rage",
	"shlag": "dechet", "tieks": "quartier", "tise": "alcool", "wesh": "salut",
	"zbeul": "bordel", "zouz": "fille",

	// rap specific
	"bendo": "quartier", "block": "quartier", "bail": "truc", "bails": "trucs",
	"bicrave": "vendre", "crari": "faire", "dalle": "rien", "dead": "mort",
	"dinguerie": "folie", "igo": "ami", "kiffer": "aimer", "lover": "draguer",
	"poucave": "balance", "ratpi": "parti", "sah": "frere", "tarba": "tabasser",
	"tchip": "mepris", "validé": "approuvé",
}

// Arabic and Maghrebi loanwords common in French rap.
var arabicSlang = map[string]string{
	"wallah": "je jure", "starfoullah": "pardon dieu", "hamdoulah": "grace a dieu",
	"inshallah": "si dieu veut", "mashallah": "grace a dieu", "haram": "interdit",
	"halal": "permis", "khouya": "frere", "khoya": "frere", "akhi": "frere",
	"sahbi": "ami", "chouf": "regarde", "hchouma": "honte", "miskine": "pauvre",
	"meskin": "pauvre", "kif": "plaisir", "bled": "pays", "bleda": "village",
	"bezef": "beaucoup", "zhar": "chance", "nif": "orgueil", "baraka": "benediction",
	"zerma": "genre",
}

var allSlang = func() map[string]string {
	merged := make(map[string]string, len(verlanDict)+len(arabicSlang))
	for k, v := range verlanDict {
		merged[k] = v
	}
	for k, v := range arabicSlang {
		merged[k] = v
	}
	return merged
}()

const slangTrimSet = ",.!?;:'\"()[]"

// NormalizeSlang canonicalizes verlan/argot to standard French token by
// token, preserving the capitalization of the first letter. When
// preserveOriginalForPhonetics is true the surface form is kept unchanged
// so rhyme detection still sees the sounds the artist wrote.
func NormalizeSlang(text string, preserveOriginalForPhonetics bool) string {
	words := strings.Fields(text)
	out := make([]string, 0, len(words))
	for _, word := range words {
		lower := strings.Trim(strings.ToLower(word), slangTrimSet)
		replacement, ok := allSlang[lower]
		if !ok || preserveOriginalForPhonetics {
			out = append(out, word)
			continue
		}
		if first := []rune(word); len(first) > 0 && first[0] >= 'A' && first[0] <= 'Z' {
			replacement = strings.ToUpper(replacement[:1]) + replacement[1:]
		}
		out = append(out, replacement)
	}
	return strings.Join(out, " ")
}

// SlangWords lists the slang terms found in text, in order of appearance.
func SlangWords(text string) []string {
	var found []string
	for _, word := range strings.Fields(strings.ToLower(text)) {
		w := strings.Trim(word, slangTrimSet)
		if _, ok := allSlang[w]; ok {
			found = append(found, w)
		}
	}
	return found
}

// SlangDensity is the ratio of slang words to total words, in [0,1].
func SlangDensity(text string) float64 {
	words := strings.Fields(strings.ToLower(text))
	if len(words) == 0 {
		return 0
	}
	count := 0
	for _, word := range words {
		if _, ok := allSlang[strings.Trim(word, slangTrimSet)]; ok {
			count++
		}
	}
	return float64(count) / float64(len(words))
}
