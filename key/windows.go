package key

// Windows virtual-key codes (VK_*).
var windowsTable = map[Key]Mapping{
	Num0: {Code: 0x30}, Num1: {Code: 0x31}, Num2: {Code: 0x32}, Num3: {Code: 0x33}, Num4: {Code: 0x34},
	Num5: {Code: 0x35}, Num6: {Code: 0x36}, Num7: {Code: 0x37}, Num8: {Code: 0x38}, Num9: {Code: 0x39},

	A: {Code: 0x41}, B: {Code: 0x42}, C: {Code: 0x43}, D: {Code: 0x44}, E: {Code: 0x45}, F: {Code: 0x46},
	G: {Code: 0x47}, H: {Code: 0x48}, I: {Code: 0x49}, J: {Code: 0x4a}, K: {Code: 0x4b}, L: {Code: 0x4c},
	M: {Code: 0x4d}, N: {Code: 0x4e}, O: {Code: 0x4f}, P: {Code: 0x50}, Q: {Code: 0x51}, R: {Code: 0x52},
	S: {Code: 0x53}, T: {Code: 0x54}, U: {Code: 0x55}, V: {Code: 0x56}, W: {Code: 0x57}, X: {Code: 0x58},
	Y: {Code: 0x59}, Z: {Code: 0x5a},

	Add:      {Code: 0x6b},
	Subtract: {Code: 0x6d},
	Multiply: {Code: 0x6a},
	Divide:   {Code: 0x6f},
	OEM2:     {Code: 0x23, Approximate: true, Note: "placeholder slot, sends VK_END"},

	Tab:        {Code: 0x09},
	CapsLock:   {Code: 0x14}, // VK_CAPITAL
	Shift:      {Code: 0x10},
	Control:    {Code: 0x11},
	Alt:        {Code: 0x12}, // VK_MENU
	Space:      {Code: 0x20},
	Backspace:  {Code: 0x08},
	Return:     {Code: 0x0d},
	Escape:     {Code: 0x1b},
	UpArrow:    {Code: 0x26},
	DownArrow:  {Code: 0x28},
	LeftArrow:  {Code: 0x25},
	RightArrow: {Code: 0x27},
	Meta:       {Code: 0x5b}, // VK_LWIN

	F1: {Code: 0x70}, F2: {Code: 0x71}, F3: {Code: 0x72}, F4: {Code: 0x73},
	F5: {Code: 0x74}, F6: {Code: 0x75}, F7: {Code: 0x76}, F8: {Code: 0x77},
	F9: {Code: 0x78}, F10: {Code: 0x79}, F11: {Code: 0x7a}, F12: {Code: 0x7b},

	Home:         {Code: 0x24},
	End:          {Code: 0x23},
	PageUp:       {Code: 0x21}, // VK_PRIOR
	PageDown:     {Code: 0x22}, // VK_NEXT
	Delete:       {Code: 0x2e},
	Insert:       {Code: 0x2d},
	Minus:        {Code: 0xbd}, // VK_OEM_MINUS
	Equal:        {Code: 0xbb}, // VK_OEM_PLUS
	LeftBracket:  {Code: 0xdb}, // VK_OEM_4
	RightBracket: {Code: 0xdd}, // VK_OEM_6
	Backslash:    {Code: 0xdc}, // VK_OEM_5
	Semicolon:    {Code: 0xba}, // VK_OEM_1
	Apostrophe:   {Code: 0xde}, // VK_OEM_7
	Grave:        {Code: 0xc0}, // VK_OEM_3
	Comma:        {Code: 0xbc},
	Period:       {Code: 0xbe},
	Slash:        {Code: 0xbf}, // VK_OEM_2
}
