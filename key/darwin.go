package key

// macOS virtual key codes (CGKeyCode, kVK_* in HIToolbox/Events.h). These
// are positional ANSI codes, not characters.
var darwinTable = map[Key]Mapping{
	Num0: {Code: 0x1d}, Num1: {Code: 0x12}, Num2: {Code: 0x13}, Num3: {Code: 0x14}, Num4: {Code: 0x15},
	Num5: {Code: 0x17}, Num6: {Code: 0x16}, Num7: {Code: 0x1a}, Num8: {Code: 0x1c}, Num9: {Code: 0x19},

	A: {Code: 0x00}, B: {Code: 0x0b}, C: {Code: 0x08}, D: {Code: 0x02}, E: {Code: 0x0e}, F: {Code: 0x03},
	G: {Code: 0x05}, H: {Code: 0x04}, I: {Code: 0x22}, J: {Code: 0x26}, K: {Code: 0x28}, L: {Code: 0x25},
	M: {Code: 0x2e}, N: {Code: 0x2d}, O: {Code: 0x1f}, P: {Code: 0x23}, Q: {Code: 0x0c}, R: {Code: 0x0f},
	S: {Code: 0x01}, T: {Code: 0x11}, U: {Code: 0x20}, V: {Code: 0x09}, W: {Code: 0x0d}, X: {Code: 0x07},
	Y: {Code: 0x10}, Z: {Code: 0x06},

	Add:      {Code: 0x45}, // kVK_ANSI_KeypadPlus
	Subtract: {Code: 0x4e}, // kVK_ANSI_KeypadMinus
	Multiply: {Code: 0x43}, // kVK_ANSI_KeypadMultiply
	Divide:   {Code: 0x4b}, // kVK_ANSI_KeypadDivide
	OEM2:     {Code: 0x77, Approximate: true, Note: "placeholder slot, sends End"},

	Tab:        {Code: 0x30},
	CapsLock:   {Code: 0x39},
	Shift:      {Code: 0x38},
	Control:    {Code: 0x3b},
	Alt:        {Code: 0x3a}, // kVK_Option
	Space:      {Code: 0x31},
	Backspace:  {Code: 0x33}, // kVK_Delete
	Return:     {Code: 0x24},
	Escape:     {Code: 0x35},
	UpArrow:    {Code: 0x7e},
	DownArrow:  {Code: 0x7d},
	LeftArrow:  {Code: 0x7b},
	RightArrow: {Code: 0x7c},
	Meta:       {Code: 0x37}, // kVK_Command

	F1: {Code: 0x7a}, F2: {Code: 0x78}, F3: {Code: 0x63}, F4: {Code: 0x76},
	F5: {Code: 0x60}, F6: {Code: 0x61}, F7: {Code: 0x62}, F8: {Code: 0x64},
	F9: {Code: 0x65}, F10: {Code: 0x6d}, F11: {Code: 0x67}, F12: {Code: 0x6f},

	Home:         {Code: 0x73},
	End:          {Code: 0x77},
	PageUp:       {Code: 0x74},
	PageDown:     {Code: 0x79},
	Delete:       {Code: 0x75}, // kVK_ForwardDelete
	Insert:       {Code: 0x72, Approximate: true, Note: "no Insert on Mac keyboards, sends Help"},
	Minus:        {Code: 0x1b},
	Equal:        {Code: 0x18},
	LeftBracket:  {Code: 0x21},
	RightBracket: {Code: 0x1e},
	Backslash:    {Code: 0x2a},
	Semicolon:    {Code: 0x29},
	Apostrophe:   {Code: 0x27},
	Grave:        {Code: 0x32},
	Comma:        {Code: 0x2b},
	Period:       {Code: 0x2f},
	Slash:        {Code: 0x2c},
}
