package key

// X keysyms (X11/keysymdef.h). Letters use the lower-case keysym, which is
// what the core protocol reports in column 0 of a keycode.
var x11Table = map[Key]Mapping{
	Num0: {Code: 0x30}, Num1: {Code: 0x31}, Num2: {Code: 0x32}, Num3: {Code: 0x33}, Num4: {Code: 0x34},
	Num5: {Code: 0x35}, Num6: {Code: 0x36}, Num7: {Code: 0x37}, Num8: {Code: 0x38}, Num9: {Code: 0x39},

	A: {Code: 0x61}, B: {Code: 0x62}, C: {Code: 0x63}, D: {Code: 0x64}, E: {Code: 0x65}, F: {Code: 0x66},
	G: {Code: 0x67}, H: {Code: 0x68}, I: {Code: 0x69}, J: {Code: 0x6a}, K: {Code: 0x6b}, L: {Code: 0x6c},
	M: {Code: 0x6d}, N: {Code: 0x6e}, O: {Code: 0x6f}, P: {Code: 0x70}, Q: {Code: 0x71}, R: {Code: 0x72},
	S: {Code: 0x73}, T: {Code: 0x74}, U: {Code: 0x75}, V: {Code: 0x76}, W: {Code: 0x77}, X: {Code: 0x78},
	Y: {Code: 0x79}, Z: {Code: 0x7a},

	Add:      {Code: 0xffab}, // KP_Add
	Subtract: {Code: 0xffad}, // KP_Subtract
	Multiply: {Code: 0xffaa}, // KP_Multiply
	Divide:   {Code: 0xffaf}, // KP_Divide
	OEM2:     {Code: 0xff57, Approximate: true, Note: "placeholder slot, sends End"},

	Tab:        {Code: 0xff09},
	CapsLock:   {Code: 0xffe5},
	Shift:      {Code: 0xffe1}, // Shift_L
	Control:    {Code: 0xffe3}, // Control_L
	Alt:        {Code: 0xffe9}, // Alt_L
	Space:      {Code: 0x20},
	Backspace:  {Code: 0xff08},
	Return:     {Code: 0xff0d},
	Escape:     {Code: 0xff1b},
	UpArrow:    {Code: 0xff52},
	DownArrow:  {Code: 0xff54},
	LeftArrow:  {Code: 0xff51},
	RightArrow: {Code: 0xff53},
	Meta:       {Code: 0xffeb}, // Super_L

	F1: {Code: 0xffbe}, F2: {Code: 0xffbf}, F3: {Code: 0xffc0}, F4: {Code: 0xffc1},
	F5: {Code: 0xffc2}, F6: {Code: 0xffc3}, F7: {Code: 0xffc4}, F8: {Code: 0xffc5},
	F9: {Code: 0xffc6}, F10: {Code: 0xffc7}, F11: {Code: 0xffc8}, F12: {Code: 0xffc9},

	Home:         {Code: 0xff50},
	End:          {Code: 0xff57},
	PageUp:       {Code: 0xff55}, // Prior
	PageDown:     {Code: 0xff56}, // Next
	Delete:       {Code: 0xffff},
	Insert:       {Code: 0xff63},
	Minus:        {Code: '-'},
	Equal:        {Code: '='},
	LeftBracket:  {Code: '['},
	RightBracket: {Code: ']'},
	Backslash:    {Code: '\\'},
	Semicolon:    {Code: ';'},
	Apostrophe:   {Code: '\''},
	Grave:        {Code: '`'},
	Comma:        {Code: ','},
	Period:       {Code: '.'},
	Slash:        {Code: '/'},
}
