package graphics

import (
	"strings"

	"golang.org/x/text/encoding/unicode"

	"github.com/grantdozier/LCR-Area-Calculations-Module/contentstream"
)

// textCollector accumulates text showing operators into one plain
// string for the page. Positioning operators become separators so that
// tokens like `SCALE: 1"=20'` survive as readable runs.
type textCollector struct {
	sb strings.Builder
}

func (t *textCollector) write(raw string) {
	t.sb.WriteString(decodeTextString(raw))
}

// breakRun inserts a separator between positioned text runs.
func (t *textCollector) breakRun() {
	s := t.sb.String()
	if len(s) > 0 && !strings.HasSuffix(s, " ") && !strings.HasSuffix(s, "\n") {
		t.sb.WriteByte('\n')
	}
}

func (t *textCollector) writeArray(arr []contentstream.Operand) {
	for _, el := range arr {
		switch el.Kind {
		case contentstream.KindString:
			t.write(el.Str)
		case contentstream.KindNumber:
			// Large negative adjustments are inter-word gaps.
			if el.Num < -100 {
				t.sb.WriteByte(' ')
			}
		}
	}
}

func (t *textCollector) text() string {
	return t.sb.String()
}

// decodeTextString converts raw PDF string bytes to readable text.
// BOM-prefixed UTF-16BE strings are decoded properly; anything else is
// taken byte-for-byte as Latin-1, which covers the WinAnsi range the
// scale notes use.
func decodeTextString(raw string) string {
	if strings.HasPrefix(raw, "\xfe\xff") {
		dec := unicode.UTF16(unicode.BigEndian, unicode.ExpectBOM).NewDecoder()
		if decoded, err := dec.String(raw); err == nil {
			return decoded
		}
	}
	var sb strings.Builder
	sb.Grow(len(raw))
	for i := 0; i < len(raw); i++ {
		sb.WriteRune(rune(raw[i]))
	}
	return sb.String()
}
