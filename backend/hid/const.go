package hid

// Modifier bits of byte 0 of a keyboard report.
const (
	ModLeftCtrl   = 0x01
	ModLeftShift  = 0x02
	ModLeftAlt    = 0x04
	ModLeftGUI    = 0x08 // Windows/Command key
	ModRightCtrl  = 0x10
	ModRightShift = 0x20
	ModRightAlt   = 0x40
	ModRightGUI   = 0x80
)

// UsageErrorRollOver fills every key slot of a boot report when more keys
// are held than it can carry.
const UsageErrorRollOver = 0x01

// Modifier usages (keyboard/keypad page). A report carries these as bits,
// never in the key bitmap.
const (
	UsageLeftCtrl   = 0xE0
	UsageLeftShift  = 0xE1
	UsageLeftAlt    = 0xE2
	UsageLeftGUI    = 0xE3
	UsageRightCtrl  = 0xE4
	UsageRightShift = 0xE5
	UsageRightAlt   = 0xE6
	UsageRightGUI   = 0xE7
)

// Mouse button bits of byte 0 of a mouse report.
const (
	BtnLeft    = 0x01
	BtnRight   = 0x02
	BtnMiddle  = 0x04
	BtnBack    = 0x08
	BtnForward = 0x10
)

// modifierBit returns the report bit for a modifier usage.
func modifierBit(usage uint8) (uint8, bool) {
	if usage < UsageLeftCtrl || usage > UsageRightGUI {
		return 0, false
	}
	return 1 << (usage - UsageLeftCtrl), true
}
