package content

import (
	"math/rand"
	"strings"
	"sync/atomic"
	"time"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Rand is the random source threaded through generation. *math/rand.Rand
// satisfies it. Implementations are not expected to be goroutine-safe.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// NewRand returns a seeded source; equal seeds reproduce equal output.
func NewRand(seed int64) Rand {
	return rand.New(rand.NewSource(seed))
}

// RandSource hands out one Rand per generation call.
type RandSource func() Rand

// NewRandSource returns a RandSource. A zero seed draws each Rand from the
// clock; any other seed yields the sequence seed, seed+1, seed+2, ... so a
// run of calls is reproducible.
func NewRandSource(seed int64) RandSource {
	if seed == 0 {
		return func() Rand { return NewRand(time.Now().UnixNano()) }
	}
	var n atomic.Int64
	return func() Rand { return NewRand(seed + n.Add(1) - 1) }
}

// Stage is one rewrite step of the humanization pipeline.
type Stage interface {
	Name() string
	Apply(text string, rng Rand) string
}

// StageFunc adapts a function to Stage.
type StageFunc struct {
	StageName string
	Fn        func(text string, rng Rand) string
}

func (s StageFunc) Name() string { return s.StageName }

func (s StageFunc) Apply(text string, rng Rand) string { return s.Fn(text, rng) }

// Pipeline applies its stages left to right.
type Pipeline []Stage

// Humanize runs text through every stage in order.
func (p Pipeline) Humanize(text string, rng Rand) string {
	for _, stage := range p {
		text = stage.Apply(text, rng)
	}
	return text
}

// DefaultPipeline returns the four stages in their fixed order.
func DefaultPipeline() Pipeline {
	return Pipeline{
		StageFunc{StageName: "vary_sentence_beginnings", Fn: VarySentenceBeginnings},
		StageFunc{StageName: "add_transitional_phrases", Fn: AddTransitionalPhrases},
		StageFunc{StageName: "vary_sentence_lengths", Fn: VarySentenceLengths},
		StageFunc{StageName: "add_natural_touches", Fn: AddNaturalTouches},
	}
}

const (
	sentenceBoundary = ". "
	clauseComma      = "، "
	connectiveThat   = "أن "

	transitionProbability = 0.3
	naturalTouchChance    = 0.2
)

var sentenceStarters = []string{
	"من جانب آخر، ",
	"في هذا السياق، ",
	"بالإضافة إلى ذلك، ",
	"علاوة على ما سبق، ",
	"في ضوء ما تقدم، ",
	"انطلاقاً من هذا المفهوم، ",
	"تجدر الإشارة إلى أن ",
	"من المهم ملاحظة أن ",
	"في الواقع، ",
	"على نحو مماثل، ",
}

// Each phrase keeps its leading space; it is spliced in right after the comma.
var transitionPhrases = []string{
	" وفي هذا الإطار",
	" مما يعني",
	" الأمر الذي يشير إلى",
	" وهو ما يؤكد",
	" في حين أن",
	" بينما نجد أن",
}

var naturalPhrases = []string{
	"يمكن القول إن",
	"من الواضح أن",
	"لا شك في أن",
	"من المؤكد أن",
	"يبدو جلياً أن",
	"من البديهي أن",
}

// VarySentenceBeginnings prefixes every third sentence, starting with the
// second, with a random connector unless it already opens with one.
func VarySentenceBeginnings(text string, rng Rand) string {
	sentences := strings.Split(text, sentenceBoundary)
	for i := 1; i < len(sentences); i += 3 {
		s := sentences[i]
		if s == "" || hasStarter(s) {
			continue
		}
		starter := sentenceStarters[rng.Intn(len(sentenceStarters))]
		sentences[i] = starter + lowerFirst(s)
	}
	return strings.Join(sentences, sentenceBoundary)
}

// AddTransitionalPhrases splices each transition, with probability 0.3,
// after the first clause comma of the text as it stands at that point.
func AddTransitionalPhrases(text string, rng Rand) string {
	for _, phrase := range transitionPhrases {
		if rng.Float64() < transitionProbability {
			text = strings.Replace(text, clauseComma, "،"+phrase+" ", 1)
		}
	}
	return text
}

// VarySentenceLengths is the identity. It keeps the stage slot for a future
// length-balancing rewrite.
func VarySentenceLengths(text string, _ Rand) string {
	return text
}

// AddNaturalTouches replaces, with probability 0.2 per phrase, the first
// remaining "أن " with an emphatic lead-in.
func AddNaturalTouches(text string, rng Rand) string {
	for _, phrase := range naturalPhrases {
		if rng.Float64() < naturalTouchChance {
			text = strings.Replace(text, connectiveThat, phrase+" ", 1)
		}
	}
	return text
}

func hasStarter(s string) bool {
	for _, starter := range sentenceStarters {
		if strings.HasPrefix(s, starter) {
			return true
		}
	}
	return false
}

func lowerFirst(s string) string {
	_, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	// Casers carry state; build one per call so generation stays goroutine-safe.
	return cases.Lower(language.Und).String(s[:size]) + s[size:]
}
