package palmdoc

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/kr/pretty"
)

// tokenKind identifies a decoded stream token.
type tokenKind int

const (
	tokLiteral tokenKind = iota
	tokRun
	tokBackRef
	tokQuotedSpace
)

// token is one control-byte token of an encoded stream, positioned in the decoded output.
type token struct {
	Kind tokenKind
	At   int // output offset of the first byte produced
	Len  int // bytes produced
	Dist int // back-references only
}

// tokenize walks a well-formed stream and lists its tokens.
func tokenize(t *testing.T, enc []byte) []token {
	t.Helper()

	var toks []token
	at := 0
	for i := 0; i < len(enc); {
		c := enc[i]
		switch {
		case c >= 1 && c <= 8:
			if i+1+int(c) > len(enc) {
				t.Fatalf("literal run at %d overruns stream of %d bytes", i, len(enc))
			}
			toks = append(toks, token{Kind: tokRun, At: at, Len: int(c)})
			at += int(c)
			i += 1 + int(c)
		case c <= 0x7F:
			toks = append(toks, token{Kind: tokLiteral, At: at, Len: 1})
			at++
			i++
		case c <= 0xBF:
			if i+1 >= len(enc) {
				t.Fatalf("back-reference at %d is truncated", i)
			}
			code := (int(c)<<8 | int(enc[i+1])) & 0x3FFF
			tok := token{Kind: tokBackRef, At: at, Len: code&7 + 3, Dist: code >> 3}
			toks = append(toks, tok)
			at += tok.Len
			i += 2
		default:
			toks = append(toks, token{Kind: tokQuotedSpace, At: at, Len: 2})
			at += 2
			i++
		}
	}

	return toks
}

// backRefs filters the back-reference tokens of toks.
func backRefs(toks []token) []token {
	var refs []token
	for _, tok := range toks {
		if tok.Kind == tokBackRef {
			refs = append(refs, tok)
		}
	}

	return refs
}

var loremWords = []string{
	"lorem", "ipsum", "dolor", "sit", "amet", "consectetur", "adipiscing", "elit",
	"sed", "do", "eiusmod", "tempor", "incididunt", "ut", "labore", "et", "dolore",
	"magna", "aliqua", "Ut", "enim", "ad", "minim", "veniam", "quis", "nostrud",
	"exercitation", "ullamco", "laboris", "nisi", "aliquip", "ex", "ea", "commodo",
	"consequat", "Duis", "aute", "irure", "in", "reprehenderit", "voluptate",
	"velit", "esse", "cillum", "fugiat", "nulla", "pariatur", "Excepteur", "sint",
	"occaecat", "cupidatat", "non", "proident", "sunt", "culpa", "qui", "officia",
	"deserunt", "mollit", "anim", "id", "est", "laborum",
}

// loremIpsum returns n bytes of deterministic pseudo-Latin text.
func loremIpsum(n int) []byte {
	rng := rand.New(rand.NewSource(int64(n)))
	var buf bytes.Buffer
	buf.WriteString("Lorem ipsum dolor sit amet")
	for buf.Len() < n {
		if rng.Intn(12) == 0 {
			buf.WriteString(". ")
		} else {
			buf.WriteByte(' ')
		}
		buf.WriteString(loremWords[rng.Intn(len(loremWords))])
	}

	return buf.Bytes()[:n]
}

// randomBytes returns n bytes from a seeded source.
func randomBytes(seed int64, n int) []byte {
	rng := rand.New(rand.NewSource(seed))
	p := make([]byte, n)
	_, _ = rng.Read(p)
	return p
}

// requireBytes fails the test with a short structural diff when got != want.
func requireBytes(t *testing.T, got, want []byte, what string) {
	t.Helper()

	if bytes.Equal(got, want) {
		return
	}

	diff := pretty.Diff(got, want)
	if len(diff) > 8 {
		diff = append(diff[:8], "...")
	}
	t.Fatalf("%s mismatch: got %d bytes, want %d\n%# v", what, len(got), len(want), pretty.Formatter(diff))
}
