package cap

import "strings"

// Parse classifies a single argument outside of iteration.
// It never unpacks merged short flags: for "-xyz" it returns only ShortFlag{Char: 'x'},
// and there is no way to get 'y' and 'z' from it. Use Tokenizer to read whole clusters.
func Parse(arg string) Token {
	token, _ := parseArg(arg)
	return token
}

// parseArg classifies arg and returns the unread tail of a merged short flags cluster
// ("yz" for "-xyz"), empty if arg is not a cluster.
func parseArg(arg string) (token Token, cluster string) {
	if strings.HasPrefix(arg, "--") {
		return parseLongFlag(arg[2:]), ""
	}
	if strings.HasPrefix(arg, "-") {
		flag, rest := parseShortFlags(arg[1:])
		return flag, rest
	}
	return Positional{Value: arg}, ""
}

func parseLongFlag(nameValue string) LongFlag {
	res := LongFlag{
		Name: nameValue,
	}
	equalsSignIndex := strings.IndexByte(nameValue, '=')
	if equalsSignIndex < 0 {
		res.NameLength = len(nameValue)
		res.Terminated = true
		return res
	}
	res.NameLength = equalsSignIndex
	res.Attached = nameValue[equalsSignIndex+1:]
	return res
}

// parseShortFlags reads the first flag of chars (the part of a short flag argument after "-" or
// the rest of a cluster) and returns the chars left for the following flags
func parseShortFlags(chars string) (flag ShortFlag, rest string) {
	if chars == "" { // bare "-"
		return ShortFlag{Char: NoChar}, ""
	}
	flag.Char = chars[0]
	switch {
	case len(chars) == 1:
		return flag, ""
	case chars[1] == '=':
		flag.Attached = chars[2:]
		return flag, ""
	default:
		return flag, chars[1:]
	}
}
