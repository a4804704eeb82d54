package edit

// Parser turns a stream of raw input bytes into normalized KeyEvents. It
// is a small pushdown automaton: most bytes resolve in a single step,
// but CSI/SS3 and Windows scan-code sequences need a handful of
// follow-up reads from the same Backend.
type Parser struct {
	r ByteReader
}

// NewParser returns a Parser that pulls follow-up bytes from r.
func NewParser(r ByteReader) *Parser {
	return &Parser{r: r}
}

// Next reads and classifies one keystroke starting from first. If the
// event is KeyChar, the caller still owns decoding the character itself
// via ParseChar — Next does not consume UTF-8 continuation bytes.
func (p *Parser) Next(first byte) (KeyEvent, error) {
	switch first {
	case 3:
		return keyEvent(KeyInterrupt, ModNone), nil
	case 9:
		return keyEvent(KeyTab, ModNone), nil
	case 10, 13:
		return keyEvent(KeyEnter, ModNone), nil
	case 23:
		return keyEvent(KeyBackspace, ModCtrl), nil
	case 8, 127:
		return keyEvent(KeyBackspace, ModNone), nil
	case 27:
		return p.parsePOSIXEscape()
	case 224:
		return p.parseWindowsEscape()
	}

	if isControlByte(first) {
		return keyEvent(KeyUnknown, ModNone), nil
	}
	return charEvent(ModNone), nil
}

// isControlByte reports whether b is an ASCII control character other
// than the ones already special-cased in Next.
func isControlByte(b byte) bool {
	return b < 0x20 || b == 0x7f
}

// parsePOSIXEscape implements the CSI/SS3 grammar of spec.md §4.E,
// canonicalized on the xterm modifier table: 2=Shift, 3=Alt, 5=Ctrl,
// 6=Ctrl+Shift (spec open question #2).
func (p *Parser) parsePOSIXEscape() (KeyEvent, error) {
	b, err := p.r.ReadByte()
	if err != nil {
		return KeyEvent{}, err
	}

	if b != '[' && b != 'O' {
		return charEvent(ModAlt), nil
	}

	b, err = p.r.ReadByte()
	if err != nil {
		return KeyEvent{}, err
	}

	var mod Modifier
	modRead := false

	if b == '1' {
		semi, err := p.r.ReadByte()
		if err != nil {
			return KeyEvent{}, err
		}
		if semi != ';' {
			return keyEvent(KeyUnknown, ModNone), nil
		}

		digit, err := p.r.ReadByte()
		if err != nil {
			return KeyEvent{}, err
		}
		mod = xtermModifier(digit)
		modRead = true

		b, err = p.r.ReadByte()
		if err != nil {
			return KeyEvent{}, err
		}
	}

	switch b {
	case 'A':
		return keyEvent(KeyUp, mod), nil
	case 'B':
		return keyEvent(KeyDown, mod), nil
	case 'C':
		return keyEvent(KeyRight, mod), nil
	case 'D':
		return keyEvent(KeyLeft, mod), nil
	case 'F':
		return keyEvent(KeyEnd, mod), nil
	case 'H':
		return keyEvent(KeyHome, mod), nil
	case '3':
		return p.finishDelete(mod, modRead)
	default:
		return keyEvent(KeyUnknown, ModNone), nil
	}
}

// finishDelete consumes the trailing "~" (or "<mod>~") of a CSI Delete
// sequence ("\x1b[3~" or "\x1b[3;<mod>~"), unless the modifier-introducer
// form ("\x1b[1;<mod>~" variant for Delete does not apply here) already
// supplied the modifier.
func (p *Parser) finishDelete(mod Modifier, modRead bool) (KeyEvent, error) {
	b, err := p.r.ReadByte()
	if err != nil {
		return KeyEvent{}, err
	}

	if !modRead && b == ';' {
		digit, err := p.r.ReadByte()
		if err != nil {
			return KeyEvent{}, err
		}
		mod = xtermModifier(digit)
		b, err = p.r.ReadByte()
		if err != nil {
			return KeyEvent{}, err
		}
	}

	if b != '~' {
		return keyEvent(KeyUnknown, ModNone), nil
	}
	return keyEvent(KeyDelete, mod), nil
}

// xtermModifier canonicalizes an xterm CSI modifier digit.
func xtermModifier(digit byte) Modifier {
	switch digit {
	case '2':
		return ModShift
	case '3':
		return ModAlt
	case '5':
		return ModCtrl
	case '6':
		return ModCtrl | ModShift
	default:
		return ModNone
	}
}

// parseWindowsEscape handles the single follow-on scan-code byte that
// follows a leading 224 (0xE0) byte on Windows consoles.
func (p *Parser) parseWindowsEscape() (KeyEvent, error) {
	b, err := p.r.ReadByte()
	if err != nil {
		return KeyEvent{}, err
	}

	switch b {
	case 72:
		return keyEvent(KeyUp, ModNone), nil
	case 75:
		return keyEvent(KeyLeft, ModNone), nil
	case 77:
		return keyEvent(KeyRight, ModNone), nil
	case 71:
		return keyEvent(KeyHome, ModNone), nil
	case 79:
		return keyEvent(KeyEnd, ModNone), nil
	case 80:
		return keyEvent(KeyDown, ModNone), nil
	case 83:
		return keyEvent(KeyDelete, ModNone), nil
	case 115:
		return keyEvent(KeyLeft, ModCtrl), nil
	case 116:
		return keyEvent(KeyRight, ModCtrl), nil
	case 147:
		return keyEvent(KeyDelete, ModCtrl), nil
	default:
		return keyEvent(KeyUnknown, ModNone), nil
	}
}
