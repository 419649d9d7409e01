package key

// Linux input-event codes, KEY_* from linux/input-event-codes.h.
var evdevTable = map[Key]Mapping{
	Num0: {Code: 11}, Num1: {Code: 2}, Num2: {Code: 3}, Num3: {Code: 4}, Num4: {Code: 5},
	Num5: {Code: 6}, Num6: {Code: 7}, Num7: {Code: 8}, Num8: {Code: 9}, Num9: {Code: 10},

	A: {Code: 30}, B: {Code: 48}, C: {Code: 46}, D: {Code: 32}, E: {Code: 18}, F: {Code: 33},
	G: {Code: 34}, H: {Code: 35}, I: {Code: 23}, J: {Code: 36}, K: {Code: 37}, L: {Code: 38},
	M: {Code: 50}, N: {Code: 49}, O: {Code: 24}, P: {Code: 25}, Q: {Code: 16}, R: {Code: 19},
	S: {Code: 31}, T: {Code: 20}, U: {Code: 22}, V: {Code: 47}, W: {Code: 17}, X: {Code: 45},
	Y: {Code: 21}, Z: {Code: 44},

	Add:      {Code: 78}, // KEY_KPPLUS
	Subtract: {Code: 74}, // KEY_KPMINUS
	Multiply: {Code: 55}, // KEY_KPASTERISK
	Divide:   {Code: 98}, // KEY_KPSLASH
	OEM2:     {Code: 107, Approximate: true, Note: "placeholder slot, sends End"},

	Tab:        {Code: 15},
	CapsLock:   {Code: 58},
	Shift:      {Code: 42}, // KEY_LEFTSHIFT
	Control:    {Code: 29}, // KEY_LEFTCTRL
	Alt:        {Code: 56}, // KEY_LEFTALT
	Space:      {Code: 57},
	Backspace:  {Code: 14},
	Return:     {Code: 28},
	Escape:     {Code: 1},
	UpArrow:    {Code: 103},
	DownArrow:  {Code: 108},
	LeftArrow:  {Code: 105},
	RightArrow: {Code: 106},
	Meta:       {Code: 125}, // KEY_LEFTMETA

	F1: {Code: 59}, F2: {Code: 60}, F3: {Code: 61}, F4: {Code: 62}, F5: {Code: 63}, F6: {Code: 64},
	F7: {Code: 65}, F8: {Code: 66}, F9: {Code: 67}, F10: {Code: 68}, F11: {Code: 87}, F12: {Code: 88},

	Home:         {Code: 102},
	End:          {Code: 107},
	PageUp:       {Code: 104},
	PageDown:     {Code: 109},
	Delete:       {Code: 111},
	Insert:       {Code: 110},
	Minus:        {Code: 12},
	Equal:        {Code: 13},
	LeftBracket:  {Code: 26},
	RightBracket: {Code: 27},
	Backslash:    {Code: 43},
	Semicolon:    {Code: 39},
	Apostrophe:   {Code: 40},
	Grave:        {Code: 41},
	Comma:        {Code: 51},
	Period:       {Code: 52},
	Slash:        {Code: 53},
}
