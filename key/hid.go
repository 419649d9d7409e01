package key

// USB HID keyboard/keypad usage IDs (usage page 0x07). Modifiers use the
// 0xE0-0xE7 usages; report encoders turn those into modifier bits.
var hidTable = map[Key]Mapping{
	Num0: {Code: 0x27}, Num1: {Code: 0x1e}, Num2: {Code: 0x1f}, Num3: {Code: 0x20}, Num4: {Code: 0x21},
	Num5: {Code: 0x22}, Num6: {Code: 0x23}, Num7: {Code: 0x24}, Num8: {Code: 0x25}, Num9: {Code: 0x26},

	A: {Code: 0x04}, B: {Code: 0x05}, C: {Code: 0x06}, D: {Code: 0x07}, E: {Code: 0x08}, F: {Code: 0x09},
	G: {Code: 0x0a}, H: {Code: 0x0b}, I: {Code: 0x0c}, J: {Code: 0x0d}, K: {Code: 0x0e}, L: {Code: 0x0f},
	M: {Code: 0x10}, N: {Code: 0x11}, O: {Code: 0x12}, P: {Code: 0x13}, Q: {Code: 0x14}, R: {Code: 0x15},
	S: {Code: 0x16}, T: {Code: 0x17}, U: {Code: 0x18}, V: {Code: 0x19}, W: {Code: 0x1a}, X: {Code: 0x1b},
	Y: {Code: 0x1c}, Z: {Code: 0x1d},

	Add:      {Code: 0x57},
	Subtract: {Code: 0x56},
	Multiply: {Code: 0x55},
	Divide:   {Code: 0x54},
	OEM2:     {Code: 0x4d, Approximate: true, Note: "placeholder slot, sends End"},

	Tab:        {Code: 0x2b},
	CapsLock:   {Code: 0x39},
	Shift:      {Code: 0xe1}, // LeftShift
	Control:    {Code: 0xe0}, // LeftControl
	Alt:        {Code: 0xe2}, // LeftAlt
	Space:      {Code: 0x2c},
	Backspace:  {Code: 0x2a},
	Return:     {Code: 0x28},
	Escape:     {Code: 0x29},
	UpArrow:    {Code: 0x52},
	DownArrow:  {Code: 0x51},
	LeftArrow:  {Code: 0x50},
	RightArrow: {Code: 0x4f},
	Meta:       {Code: 0xe3}, // LeftGUI

	F1: {Code: 0x3a}, F2: {Code: 0x3b}, F3: {Code: 0x3c}, F4: {Code: 0x3d},
	F5: {Code: 0x3e}, F6: {Code: 0x3f}, F7: {Code: 0x40}, F8: {Code: 0x41},
	F9: {Code: 0x42}, F10: {Code: 0x43}, F11: {Code: 0x44}, F12: {Code: 0x45},

	Home:         {Code: 0x4a},
	End:          {Code: 0x4d},
	PageUp:       {Code: 0x4b},
	PageDown:     {Code: 0x4e},
	Delete:       {Code: 0x4c},
	Insert:       {Code: 0x49},
	Minus:        {Code: 0x2d},
	Equal:        {Code: 0x2e},
	LeftBracket:  {Code: 0x2f},
	RightBracket: {Code: 0x30},
	Backslash:    {Code: 0x31},
	Semicolon:    {Code: 0x33},
	Apostrophe:   {Code: 0x34},
	Grave:        {Code: 0x35},
	Comma:        {Code: 0x36},
	Period:       {Code: 0x37},
	Slash:        {Code: 0x38},
}
