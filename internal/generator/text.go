package generator

import (
	"math/rand/v2"
	"strings"

	"github.com/brianvoe/gofakeit/v7"
)

// textIncrement is the PCG stream selector of the text source.
const textIncrement = 0x2545f4914f6cdd1d

// Text synthesizes localized strings. Implementations are seeded once and are
// not safe for concurrent use.
type Text interface {
	ProductName() string
	FullName() string
	CompanyName() string
	Sentences(n int) string
	Digit() int
}

// TextFactory creates a Text for a locale chain seeded with seed.
type TextFactory func(chain Chain, seed uint32) (Text, error)

// NewFakerText is the default TextFactory: gofakeit over a PCG source, with the
// chain's lexicons taking precedence over gofakeit's English data.
func NewFakerText(chain Chain, seed uint32) (Text, error) {
	if len(chain) == 0 {
		return nil, ErrUnknownLocale
	}
	src := rand.NewPCG(uint64(seed), textIncrement)
	return &fakerText{faker: gofakeit.NewFaker(src, false), chain: chain}, nil
}

type fakerText struct {
	faker *gofakeit.Faker
	chain Chain
}

func (t *fakerText) pick(words []string) string {
	return words[t.faker.IntRange(0, len(words)-1)]
}

func (t *fakerText) ProductName() string {
	adjectives := t.chain.words(func(l Lexicon) []string { return l.Adjectives })
	materials := t.chain.words(func(l Lexicon) []string { return l.Materials })
	products := t.chain.words(func(l Lexicon) []string { return l.Products })
	if adjectives == nil || materials == nil || products == nil {
		return t.faker.ProductName()
	}
	if t.chain.Primary().Lexicon.Unspaced {
		return t.pick(adjectives) + t.pick(materials) + t.pick(products)
	}
	return t.pick(adjectives) + " " + t.pick(materials) + " " + t.pick(products)
}

func (t *fakerText) firstName() string {
	if w := t.chain.words(func(l Lexicon) []string { return l.FirstNames }); w != nil {
		return t.pick(w)
	}
	return t.faker.FirstName()
}

func (t *fakerText) lastName() string {
	if w := t.chain.words(func(l Lexicon) []string { return l.LastNames }); w != nil {
		return t.pick(w)
	}
	return t.faker.LastName()
}

func (t *fakerText) FullName() string {
	first, last := t.firstName(), t.lastName()
	if t.chain.Primary().Lexicon.FamilyNameFirst {
		return last + " " + first
	}
	return first + " " + last
}

func (t *fakerText) CompanyName() string {
	suffixes := t.chain.words(func(l Lexicon) []string { return l.CompanySuffixes })
	if suffixes == nil {
		return t.faker.Company()
	}
	return t.lastName() + " " + t.pick(suffixes)
}

func (t *fakerText) Sentences(n int) string {
	words := t.chain.words(func(l Lexicon) []string { return l.LoremWords })
	unspaced := t.chain.Primary().Lexicon.Unspaced
	sentences := make([]string, 0, n)
	for i := 0; i < n; i++ {
		count := t.faker.IntRange(3, 10)
		if words == nil {
			sentences = append(sentences, t.faker.LoremIpsumSentence(count))
			continue
		}
		picked := make([]string, count)
		for j := range picked {
			picked[j] = t.pick(words)
		}
		if unspaced {
			sentences = append(sentences, strings.Join(picked, "")+"。")
			continue
		}
		first := []rune(picked[0])
		picked[0] = strings.ToUpper(string(first[:1])) + string(first[1:])
		sentences = append(sentences, strings.Join(picked, " ")+".")
	}
	if unspaced {
		return strings.Join(sentences, "")
	}
	return strings.Join(sentences, " ")
}

func (t *fakerText) Digit() int {
	return t.faker.IntRange(0, 9)
}
