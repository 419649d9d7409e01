package key

// Stroke is a key press that produces a character on a US layout, with or
// without Shift held.
type Stroke struct {
	Key   Key
	Shift bool
}

// runeToKey maps printable ASCII (and \n, \r, \t) to the key that types it.
var runeToKey = map[rune]Key{
	// Lowercase letters
	'a': A, 'b': B, 'c': C, 'd': D, 'e': E, 'f': F, 'g': G,
	'h': H, 'i': I, 'j': J, 'k': K, 'l': L, 'm': M, 'n': N,
	'o': O, 'p': P, 'q': Q, 'r': R, 's': S, 't': T, 'u': U,
	'v': V, 'w': W, 'x': X, 'y': Y, 'z': Z,

	// Uppercase letters (same keys, need shift)
	'A': A, 'B': B, 'C': C, 'D': D, 'E': E, 'F': F, 'G': G,
	'H': H, 'I': I, 'J': J, 'K': K, 'L': L, 'M': M, 'N': N,
	'O': O, 'P': P, 'Q': Q, 'R': R, 'S': S, 'T': T, 'U': U,
	'V': V, 'W': W, 'X': X, 'Y': Y, 'Z': Z,

	// Numbers (top row)
	'1': Num1, '2': Num2, '3': Num3, '4': Num4, '5': Num5,
	'6': Num6, '7': Num7, '8': Num8, '9': Num9, '0': Num0,

	// Shifted number row symbols
	'!': Num1, '@': Num2, '#': Num3, '$': Num4, '%': Num5,
	'^': Num6, '&': Num7, '*': Num8, '(': Num9, ')': Num0,

	'-':  Minus,
	'=':  Equal,
	'[':  LeftBracket,
	']':  RightBracket,
	'\\': Backslash,
	';':  Semicolon,
	'\'': Apostrophe,
	'`':  Grave,
	',':  Comma,
	'.':  Period,
	'/':  Slash,

	'_': Minus,
	'+': Equal,
	'{': LeftBracket,
	'}': RightBracket,
	'|': Backslash,
	':': Semicolon,
	'"': Apostrophe,
	'~': Grave,
	'<': Comma,
	'>': Period,
	'?': Slash,

	' ':  Space,
	'\n': Return,
	'\r': Return,
	'\t': Tab,
}

var shiftRunes = map[rune]bool{
	'A': true, 'B': true, 'C': true, 'D': true, 'E': true, 'F': true, 'G': true,
	'H': true, 'I': true, 'J': true, 'K': true, 'L': true, 'M': true, 'N': true,
	'O': true, 'P': true, 'Q': true, 'R': true, 'S': true, 'T': true, 'U': true,
	'V': true, 'W': true, 'X': true, 'Y': true, 'Z': true,

	'!': true, '@': true, '#': true, '$': true, '%': true,
	'^': true, '&': true, '*': true, '(': true, ')': true,

	'_': true, '+': true, '{': true, '}': true, '|': true,
	':': true, '"': true, '~': true, '<': true, '>': true, '?': true,
}

// StrokeFor returns the stroke that types r, or false if r cannot be typed
// with logical keys alone.
func StrokeFor(r rune) (Stroke, bool) {
	k, ok := runeToKey[r]
	if !ok {
		return Stroke{}, false
	}
	return Stroke{Key: k, Shift: shiftRunes[r]}, true
}

// Strokes converts s, returning the index of the first rune that has no
// stroke. The result is nil in that case.
func Strokes(s string) ([]Stroke, int) {
	out := make([]Stroke, 0, len(s))
	for i, r := range s {
		st, ok := StrokeFor(r)
		if !ok {
			return nil, i
		}
		out = append(out, st)
	}
	return out, -1
}
