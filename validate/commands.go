package validate

// commandClass groups the builtin string commands by how they behave in a
// string. Only parameter commands consume an argument position.
type commandClass int

const (
	classParameter commandClass = iota
	classColour
	classFont
	classControl
)

// builtinCommands is the set of string commands OpenTTD language files may
// use, keyed by name. The empty name is the line break {} and the name "{"
// is the brace escape {{}.
var builtinCommands = map[string]commandClass{
	"":  classControl,
	"{": classControl,

	// Argument-consuming commands.
	"NUM":             classParameter,
	"ZEROFILL_NUM":    classParameter,
	"COMMA":           classParameter,
	"HEX":             classParameter,
	"BYTES":           classParameter,
	"STRING":          classParameter,
	"RAW_STRING":      classParameter,
	"STRING1":         classParameter,
	"STRING2":         classParameter,
	"STRING3":         classParameter,
	"STRING4":         classParameter,
	"STRING5":         classParameter,
	"STRING6":         classParameter,
	"STRING7":         classParameter,
	"CURRENCY_LONG":   classParameter,
	"CURRENCY_SHORT":  classParameter,
	"VELOCITY":        classParameter,
	"POWER":           classParameter,
	"POWER_TO_WEIGHT": classParameter,
	"VOLUME_LONG":     classParameter,
	"VOLUME_SHORT":    classParameter,
	"WEIGHT_LONG":     classParameter,
	"WEIGHT_SHORT":    classParameter,
	"FORCE":           classParameter,
	"HEIGHT":          classParameter,
	"DATE_TINY":       classParameter,
	"DATE_SHORT":      classParameter,
	"DATE_LONG":       classParameter,
	"DATE_ISO":        classParameter,
	"WAYPOINT":        classParameter,
	"STATION":         classParameter,
	"DEPOT":           classParameter,
	"TOWN":            classParameter,
	"INDUSTRY":        classParameter,
	"CARGO_LONG":      classParameter,
	"CARGO_SHORT":     classParameter,
	"CARGO_TINY":      classParameter,
	"CARGO_LIST":      classParameter,
	"ENGINE":          classParameter,
	"VEHICLE":         classParameter,
	"GROUP":           classParameter,
	"SIGN":            classParameter,
	"COMPANY":         classParameter,
	"COMPANY_NUM":     classParameter,
	"PRESIDENT_NAME":  classParameter,
	"COLOUR":          classParameter,

	// Text colours.
	"BLACK":       classColour,
	"BLUE":        classColour,
	"SILVER":      classColour,
	"GOLD":        classColour,
	"RED":         classColour,
	"PURPLE":      classColour,
	"LTBROWN":     classColour,
	"ORANGE":      classColour,
	"GREEN":       classColour,
	"YELLOW":      classColour,
	"DKGREEN":     classColour,
	"CREAM":       classColour,
	"BROWN":       classColour,
	"WHITE":       classColour,
	"LTBLUE":      classColour,
	"GRAY":        classColour,
	"DKBLUE":      classColour,
	"PUSH_COLOUR": classColour,
	"POP_COLOUR":  classColour,

	// Font sizes.
	"TINY_FONT": classFont,
	"BIG_FONT":  classFont,

	// Symbols and other non-argument commands.
	"NBSP":              classControl,
	"COPYRIGHT":         classControl,
	"REV":               classControl,
	"TRAIN":             classControl,
	"LORRY":             classControl,
	"BUS":               classControl,
	"PLANE":             classControl,
	"SHIP":              classControl,
	"UP_ARROW":          classControl,
	"DOWN_ARROW":        classControl,
	"SMALL_UP_ARROW":    classControl,
	"SMALL_DOWN_ARROW":  classControl,
	"RIGHT_ARROW":       classControl,
	"SMALL_LEFT_ARROW":  classControl,
	"SMALL_RIGHT_ARROW": classControl,
	"CHECKMARK":         classControl,
	"CROSS":             classControl,
}

// displayCommand renders a command name the way it is written in a string,
// {NUM}, with the special names coming out as {} and {{}.
func displayCommand(name string) string {
	return "{" + name + "}"
}
