package cap

type Kind int

const (
	KindShortFlag Kind = iota
	KindLongFlag
	KindPositional
)

func (k Kind) String() string {
	switch k {
	case KindShortFlag:
		return "short flag"
	case KindLongFlag:
		return "long flag"
	case KindPositional:
		return "positional"
	default:
		return "unknown"
	}
}

// NoChar is the ShortFlag.Char of a bare "-" argument
const NoChar byte = 0

// Token is one classified command-line item. It's implemented by ShortFlag, LongFlag and Positional only,
// so a type switch over these three types is exhaustive.
type Token interface {
	// String returns the text the token was read from
	String() string
	Kind() Kind
	isToken()
}

// ShortFlag is a single-character flag: "-x", "-x=val" or one member of a "-xyz" cluster.
// Attached is empty if the flag has no "=" value.
type ShortFlag struct {
	Char     byte
	Attached string
}

func (f ShortFlag) HasAttached() bool {
	return f.Attached != ""
}

func (f ShortFlag) Kind() Kind {
	return KindShortFlag
}

func (f ShortFlag) String() string {
	if f.Char == NoChar {
		return "-"
	}
	if f.HasAttached() {
		return "-" + string(f.Char) + "=" + f.Attached
	}
	return "-" + string(f.Char)
}

func (ShortFlag) isToken() {}

// LongFlag is a "--name" or "--name=value" argument.
// Name holds everything after "--" including the "=value" part, only Name[:NameLength] is the flag name.
// Terminated means there was no "=" in the argument.
type LongFlag struct {
	Name       string
	NameLength int
	Terminated bool
	Attached   string
}

// FlagName returns the flag name without the "=value" part
func (f LongFlag) FlagName() string {
	return f.Name[:f.NameLength]
}

func (f LongFlag) HasAttached() bool {
	return f.Attached != ""
}

func (f LongFlag) Kind() Kind {
	return KindLongFlag
}

func (f LongFlag) String() string {
	return "--" + f.Name
}

func (LongFlag) isToken() {}

// Positional is any argument that doesn't start with "-"
type Positional struct {
	Value string
}

func (p Positional) Kind() Kind {
	return KindPositional
}

func (p Positional) String() string {
	return p.Value
}

func (Positional) isToken() {}
