package render

// Charset is the set of runes a border is drawn with.
type Charset struct {
	H, V, TL, TR, BL, BR rune
}

var (
	SingleLine = Charset{H: '─', V: '│', TL: '┌', TR: '┐', BL: '└', BR: '┘'}
	DoubleLine = Charset{H: '═', V: '║', TL: '╔', TR: '╗', BL: '╚', BR: '╝'}
	Rounded    = Charset{H: '─', V: '│', TL: '╭', TR: '╮', BL: '╰', BR: '╯'}
	ASCII      = Charset{H: '-', V: '|', TL: '+', TR: '+', BL: '+', BR: '+'}
)

var charsets = map[string]Charset{
	"single":  SingleLine,
	"double":  DoubleLine,
	"rounded": Rounded,
	"ascii":   ASCII,
}

// CharsetByName looks up a charset by its config name.
func CharsetByName(name string) (Charset, bool) {
	cs, ok := charsets[name]
	return cs, ok
}
