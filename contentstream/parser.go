package contentstream

import (
	"bytes"
	"fmt"
	"strconv"
)

// OperandKind discriminates the operand shapes kept by the parser.
type OperandKind int

const (
	// KindNumber is an integer or real number.
	KindNumber OperandKind = iota
	// KindName is a /Name token, stored without the slash.
	KindName
	// KindString is a literal (...) or hex <...> string, raw bytes.
	KindString
	// KindArray is a [...] array of operands.
	KindArray
	// KindBool is true or false.
	KindBool
	// KindNull is the null object.
	KindNull
)

// Operand is one operand of a content stream operation.
type Operand struct {
	Kind OperandKind
	Num  float64
	Str  string
	Arr  []Operand
	Bool bool
}

// Operation is a single content stream operation: an operator plus the
// operands that preceded it.
type Operation struct {
	Operator string
	Operands []Operand
}

// Float returns operand i as a float64. The second result is false when
// the index is out of range or the operand is not a number.
func (op Operation) Float(i int) (float64, bool) {
	if i < 0 || i >= len(op.Operands) || op.Operands[i].Kind != KindNumber {
		return 0, false
	}
	return op.Operands[i].Num, true
}

// Floats returns all operands as float64s, or false if any operand is
// not a number.
func (op Operation) Floats() ([]float64, bool) {
	out := make([]float64, len(op.Operands))
	for i := range op.Operands {
		v, ok := op.Float(i)
		if !ok {
			return nil, false
		}
		out[i] = v
	}
	return out, true
}

// String returns operand i as string bytes when it is a string operand.
func (op Operation) String(i int) (string, bool) {
	if i < 0 || i >= len(op.Operands) || op.Operands[i].Kind != KindString {
		return "", false
	}
	return op.Operands[i].Str, true
}

// Parser parses a decoded content stream into operations.
type Parser struct {
	data  []byte
	pos   int
	ops   []Operation
	stack []Operand
}

// NewParser creates a parser for the given decoded stream data.
func NewParser(data []byte) *Parser {
	return &Parser{data: data}
}

// Parse consumes the whole stream and returns its operations in order.
// Unrecognized constructs are reported as errors with their byte
// offset; a stream that fails to parse fails its page.
func (p *Parser) Parse() ([]Operation, error) {
	for {
		p.skipWhitespaceAndComments()
		if p.pos >= len(p.data) {
			break
		}
		if err := p.parseNext(); err != nil {
			return nil, err
		}
	}
	return p.ops, nil
}

// Parse is a convenience wrapper around NewParser(data).Parse().
func Parse(data []byte) ([]Operation, error) {
	return NewParser(data).Parse()
}

func (p *Parser) parseNext() error {
	c := p.data[p.pos]

	if isRegular(c) && !isNumberStart(c) {
		op, err := p.parseOperator()
		if err != nil {
			return err
		}
		if op == "BI" {
			// Inline image: skip through the EI marker. The pipeline
			// never consumes raster content from the stream.
			p.skipInlineImage()
			return nil
		}
		p.ops = append(p.ops, Operation{
			Operator: op,
			Operands: p.takeStack(),
		})
		return nil
	}

	operand, err := p.parseOperand()
	if err != nil {
		return err
	}
	p.stack = append(p.stack, operand)
	return nil
}

func (p *Parser) takeStack() []Operand {
	operands := make([]Operand, len(p.stack))
	copy(operands, p.stack)
	p.stack = p.stack[:0]
	return operands
}

func (p *Parser) parseOperator() (string, error) {
	start := p.pos
	var buf bytes.Buffer
	for p.pos < len(p.data) {
		c := p.data[p.pos]
		if isRegular(c) {
			buf.WriteByte(c)
			p.pos++
		} else {
			break
		}
	}
	op := buf.String()
	if op == "" {
		return "", fmt.Errorf("empty operator at offset %d", start)
	}

	// true/false/null are objects, not operators.
	switch op {
	case "true":
		p.stack = append(p.stack, Operand{Kind: KindBool, Bool: true})
		return p.nextOperatorAfterKeyword()
	case "false":
		p.stack = append(p.stack, Operand{Kind: KindBool})
		return p.nextOperatorAfterKeyword()
	case "null":
		p.stack = append(p.stack, Operand{Kind: KindNull})
		return p.nextOperatorAfterKeyword()
	}
	return op, nil
}

// nextOperatorAfterKeyword resumes scanning after a keyword object was
// pushed instead of an operator.
func (p *Parser) nextOperatorAfterKeyword() (string, error) {
	p.skipWhitespaceAndComments()
	if p.pos >= len(p.data) {
		return "", fmt.Errorf("stream ends after keyword object")
	}
	if c := p.data[p.pos]; isRegular(c) && !isNumberStart(c) {
		return p.parseOperator()
	}
	operand, err := p.parseOperand()
	if err != nil {
		return "", err
	}
	p.stack = append(p.stack, operand)
	return p.nextOperatorAfterKeyword()
}

func (p *Parser) parseOperand() (Operand, error) {
	c := p.data[p.pos]

	switch {
	case isNumberStart(c):
		return p.parseNumber()
	case c == '/':
		return p.parseName()
	case c == '(':
		return p.parseLiteralString()
	case c == '<' && p.peek(1) == '<':
		return p.parseDictAsNull()
	case c == '<':
		return p.parseHexString()
	case c == '[':
		return p.parseArray()
	}
	return Operand{}, fmt.Errorf("unexpected byte %q at offset %d", c, p.pos)
}

func (p *Parser) parseNumber() (Operand, error) {
	start := p.pos
	if c := p.data[p.pos]; c == '+' || c == '-' {
		p.pos++
	}
	sawDot := false
	for p.pos < len(p.data) {
		c := p.data[p.pos]
		if c >= '0' && c <= '9' {
			p.pos++
		} else if c == '.' && !sawDot {
			sawDot = true
			p.pos++
		} else {
			break
		}
	}
	text := string(p.data[start:p.pos])
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return Operand{}, fmt.Errorf("bad number %q at offset %d", text, start)
	}
	return Operand{Kind: KindNumber, Num: v}, nil
}

func (p *Parser) parseName() (Operand, error) {
	p.pos++ // skip '/'
	var buf bytes.Buffer
	for p.pos < len(p.data) {
		c := p.data[p.pos]
		if isWhitespace(c) || isDelimiter(c) {
			break
		}
		if c == '#' && p.pos+2 < len(p.data) && isHex(p.data[p.pos+1]) && isHex(p.data[p.pos+2]) {
			buf.WriteByte(hexVal(p.data[p.pos+1])<<4 | hexVal(p.data[p.pos+2]))
			p.pos += 3
			continue
		}
		buf.WriteByte(c)
		p.pos++
	}
	return Operand{Kind: KindName, Str: buf.String()}, nil
}

func (p *Parser) parseLiteralString() (Operand, error) {
	p.pos++ // skip '('
	var buf bytes.Buffer
	depth := 1

	for p.pos < len(p.data) && depth > 0 {
		c := p.data[p.pos]
		switch {
		case c == '\\' && p.pos+1 < len(p.data):
			p.pos++
			next := p.data[p.pos]
			switch next {
			case 'n':
				buf.WriteByte('\n')
				p.pos++
			case 'r':
				buf.WriteByte('\r')
				p.pos++
			case 't':
				buf.WriteByte('\t')
				p.pos++
			case 'b':
				buf.WriteByte('\b')
				p.pos++
			case 'f':
				buf.WriteByte('\f')
				p.pos++
			case '(', ')', '\\':
				buf.WriteByte(next)
				p.pos++
			case '\r':
				p.pos++
				if p.pos < len(p.data) && p.data[p.pos] == '\n' {
					p.pos++
				}
			case '\n':
				p.pos++
			case '0', '1', '2', '3', '4', '5', '6', '7':
				v := int(next - '0')
				p.pos++
				for i := 0; i < 2 && p.pos < len(p.data); i++ {
					d := p.data[p.pos]
					if d < '0' || d > '7' {
						break
					}
					v = v*8 + int(d-'0')
					p.pos++
				}
				buf.WriteByte(byte(v & 0xff))
			default:
				buf.WriteByte(next)
				p.pos++
			}
		case c == '(':
			depth++
			buf.WriteByte(c)
			p.pos++
		case c == ')':
			depth--
			if depth > 0 {
				buf.WriteByte(c)
			}
			p.pos++
		default:
			buf.WriteByte(c)
			p.pos++
		}
	}

	if depth != 0 {
		return Operand{}, fmt.Errorf("unterminated string")
	}
	return Operand{Kind: KindString, Str: buf.String()}, nil
}

func (p *Parser) parseHexString() (Operand, error) {
	p.pos++ // skip '<'
	var buf bytes.Buffer
	var hi byte
	haveHi := false

	for p.pos < len(p.data) {
		c := p.data[p.pos]
		p.pos++
		if c == '>' {
			if haveHi {
				// Odd digit count: trailing zero assumed.
				buf.WriteByte(hi << 4)
			}
			return Operand{Kind: KindString, Str: buf.String()}, nil
		}
		if isWhitespace(c) {
			continue
		}
		if !isHex(c) {
			return Operand{}, fmt.Errorf("bad hex digit %q at offset %d", c, p.pos-1)
		}
		if haveHi {
			buf.WriteByte(hi<<4 | hexVal(c))
			haveHi = false
		} else {
			hi = hexVal(c)
			haveHi = true
		}
	}
	return Operand{}, fmt.Errorf("unterminated hex string")
}

func (p *Parser) parseArray() (Operand, error) {
	p.pos++ // skip '['
	var arr []Operand
	for {
		p.skipWhitespaceAndComments()
		if p.pos >= len(p.data) {
			return Operand{}, fmt.Errorf("unterminated array")
		}
		if p.data[p.pos] == ']' {
			p.pos++
			return Operand{Kind: KindArray, Arr: arr}, nil
		}
		elem, err := p.parseOperand()
		if err != nil {
			return Operand{}, err
		}
		arr = append(arr, elem)
	}
}

// parseDictAsNull consumes a << ... >> dictionary and yields a null
// operand. Dictionaries only appear as arguments to operators the
// pipeline ignores (gs, BDC), so their content is irrelevant but their
// extent must be consumed correctly.
func (p *Parser) parseDictAsNull() (Operand, error) {
	p.pos += 2 // skip '<<'
	depth := 1
	for p.pos < len(p.data) && depth > 0 {
		switch {
		case p.data[p.pos] == '<' && p.peek(1) == '<':
			depth++
			p.pos += 2
		case p.data[p.pos] == '>' && p.peek(1) == '>':
			depth--
			p.pos += 2
		case p.data[p.pos] == '(':
			if _, err := p.parseLiteralString(); err != nil {
				return Operand{}, err
			}
		default:
			p.pos++
		}
	}
	if depth != 0 {
		return Operand{}, fmt.Errorf("unterminated dictionary")
	}
	return Operand{Kind: KindNull}, nil
}

// skipInlineImage advances past inline image data up to and including
// the EI marker.
func (p *Parser) skipInlineImage() {
	for p.pos+1 < len(p.data) {
		if p.data[p.pos] == 'E' && p.data[p.pos+1] == 'I' &&
			(p.pos == 0 || isWhitespace(p.data[p.pos-1])) {
			p.pos += 2
			p.stack = p.stack[:0]
			return
		}
		p.pos++
	}
	p.pos = len(p.data)
	p.stack = p.stack[:0]
}

func (p *Parser) skipWhitespaceAndComments() {
	for p.pos < len(p.data) {
		c := p.data[p.pos]
		if isWhitespace(c) {
			p.pos++
			continue
		}
		if c == '%' {
			for p.pos < len(p.data) && p.data[p.pos] != '\n' && p.data[p.pos] != '\r' {
				p.pos++
			}
			continue
		}
		return
	}
}

func (p *Parser) peek(ahead int) byte {
	if p.pos+ahead < len(p.data) {
		return p.data[p.pos+ahead]
	}
	return 0
}

func isWhitespace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n' || c == '\f' || c == 0
}

func isDelimiter(c byte) bool {
	return c == '(' || c == ')' || c == '<' || c == '>' ||
		c == '[' || c == ']' || c == '{' || c == '}' ||
		c == '/' || c == '%'
}

func isRegular(c byte) bool {
	return !isWhitespace(c) && !isDelimiter(c)
}

func isNumberStart(c byte) bool {
	return c == '+' || c == '-' || c == '.' || (c >= '0' && c <= '9')
}

func isHex(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func hexVal(c byte) byte {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	default:
		return c - 'A' + 10
	}
}
