package corpus

import (
	"fmt"
	"strings"
)

// Transliteration selects the writing system corpus text is converted to.
// The corpus itself is stored in SEDRA transcription.
type Transliteration int

const (
	// SEDRA leaves the text untouched.
	SEDRA Transliteration = iota
	// WIT converts to the WIT/CALAP transcription (the default).
	WIT
	// Syriac converts to Syriac script.
	Syriac
)

var (
	toWIT    = maketrans("AOKY;CEI/XW", ">WXVJK<PYQC")
	toSyriac = maketrans("ABGDHOZKY;CLMNSEI/XRWT", "ܐܒܓܕܗܘܙܚܛܝܟܠܡܢܣܥܦܨܩܪܫܬ")
)

// maketrans builds a one-pass character replacer mapping from[i] → to[i].
func maketrans(from, to string) *strings.Replacer {
	src, dst := []rune(from), []rune(to)
	if len(src) != len(dst) {
		panic("corpus: maketrans tables differ in length")
	}
	pairs := make([]string, 0, 2*len(src))
	for i := range src {
		pairs = append(pairs, string(src[i]), string(dst[i]))
	}
	return strings.NewReplacer(pairs...)
}

// Apply converts s from SEDRA transcription.
func (t Transliteration) Apply(s string) string {
	switch t {
	case WIT:
		return toWIT.Replace(s)
	case Syriac:
		return toSyriac.Replace(s)
	}
	return s
}

func (t Transliteration) String() string {
	switch t {
	case WIT:
		return "wit"
	case Syriac:
		return "syriac"
	}
	return "sedra"
}

// ParseTransliteration accepts "sedra" (or ""/"none"), "wit" and "syriac".
func ParseTransliteration(s string) (Transliteration, error) {
	switch strings.ToLower(s) {
	case "", "none", "sedra":
		return SEDRA, nil
	case "wit":
		return WIT, nil
	case "syriac", "syr":
		return Syriac, nil
	}
	return SEDRA, fmt.Errorf("unknown transliteration %q", s)
}

// UnmarshalText implements encoding.TextUnmarshaler for configuration files.
func (t *Transliteration) UnmarshalText(b []byte) error {
	v, err := ParseTransliteration(string(b))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (t Transliteration) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}
