// Package cap splits command-line arguments into short flags ("-x", "-x=val", "-xyz"),
// long flags ("--name", "--name=val") and positional arguments.
// It has no notion of known flags: any argument is classified, nothing is an error.
package cap

import "iter"

// Tokenizer reads command-line arguments one token at a time.
// Tokens reference the strings of the args slice, so it should not be modified while iterating.
// Tokenizer is not safe for concurrent use.
type Tokenizer struct {
	args  []string
	index int
	// cluster is the unread tail of the merged short flags argument at args[index-1].
	// Non-empty cluster means the next token comes from it and index stays as is
	cluster  string
	resolved resolvedValue
}

// resolvedValue remembers the positional consumed by ValueOf for the token last returned by Next
type resolvedValue struct {
	token Token
	value string
}

// New creates a Tokenizer over args. The program name at args[0] (if any) is classified as
// a regular argument, pass os.Args[1:] to skip it.
func New(args []string) *Tokenizer {
	return &Tokenizer{
		args: args,
	}
}

// Next returns the next token and advances the Tokenizer.
// It returns false when all arguments are read, and keeps returning false after that.
func (t *Tokenizer) Next() (Token, bool) {
	t.resolved = resolvedValue{}
	return t.advance(true)
}

// Peek returns the token Next would return without advancing the Tokenizer
func (t *Tokenizer) Peek() (Token, bool) {
	return t.advance(false)
}

// All returns an iterator over the tokens left. Breaking the loop leaves the rest of the tokens
// to the following Next calls. ValueOf can be called inside the loop.
func (t *Tokenizer) All() iter.Seq[Token] {
	return func(yield func(Token) bool) {
		for {
			token, ok := t.Next()
			if !ok || !yield(token) {
				return
			}
		}
	}
}

// ValueOf returns the value of a flag token: the attached "=value" if there is one, otherwise
// the following positional argument, which gets consumed. It returns false for positional tokens
// and for flags followed by another flag or by the end of arguments, consuming nothing.
// Calling it again for the token last returned by Next returns the same value without consuming
// another argument.
func (t *Tokenizer) ValueOf(token Token) (string, bool) {
	switch token := token.(type) {
	case ShortFlag:
		if token.HasAttached() {
			return token.Attached, true
		}
	case LongFlag:
		if token.HasAttached() {
			return token.Attached, true
		}
	default:
		return "", false
	}

	if t.resolved.token != nil && t.resolved.token == token {
		return t.resolved.value, true
	}
	next, ok := t.Peek()
	if !ok {
		return "", false
	}
	positional, isPositional := next.(Positional)
	if !isPositional {
		return "", false
	}
	t.advance(true)
	t.resolved = resolvedValue{
		token: token,
		value: positional.Value,
	}
	return positional.Value, true
}

func (t *Tokenizer) advance(consume bool) (Token, bool) {
	if t.cluster != "" {
		flag, rest := parseShortFlags(t.cluster)
		if consume {
			t.cluster = rest
		}
		return flag, true
	}

	if t.index >= len(t.args) {
		return nil, false
	}

	token, cluster := parseArg(t.args[t.index])
	if consume {
		t.cluster = cluster
		t.index++
	}
	return token, true
}
