// Package sentiment scores text with the VADER lexicon method: summed
// word valences adjusted for boosters, negation, contrastive "but"
// clauses, ALL-CAPS and punctuation emphasis, normalized to [-1, 1].
package sentiment

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"
)

const (
	// Empirically derived mean sentiment intensity rating increase for
	// booster words.
	boostIncr = 0.293
	boostDecr = -0.293

	// Rating increase for ALL-CAPS emphasis when casing is mixed.
	capsIncr = 0.733

	// NegScalar flips a valence that falls under negation.
	NegScalar = -0.74

	// Normalization constant approximating the max expected raw score.
	normAlpha = 15.0

	negationLookback = 3
)

var punctuationChars = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

var negations = map[string]bool{
	"aint": true, "arent": true, "cannot": true, "cant": true, "couldnt": true,
	"darent": true, "didnt": true, "doesnt": true, "aren't": true, "can't": true,
	"couldn't": true, "daren't": true, "didn't": true, "doesn't": true,
	"ain't": true, "dont": true, "hadnt": true, "hasnt": true, "havent": true,
	"isnt": true, "mightnt": true, "mustnt": true, "neither": true,
	"don't": true, "hadn't": true, "hasn't": true, "haven't": true,
	"isn't": true, "mightn't": true, "mustn't": true, "neednt": true,
	"needn't": true, "never": true, "none": true, "nope": true, "nor": true,
	"not": true, "nothing": true, "nowhere": true, "oughtnt": true,
	"shant": true, "shouldnt": true, "uhuh": true, "wasnt": true,
	"werent": true, "oughtn't": true, "shan't": true, "shouldn't": true,
	"uh-uh": true, "wasn't": true, "weren't": true, "without": true,
	"wont": true, "wouldnt": true, "won't": true, "wouldn't": true,
	"rarely": true, "seldom": true, "despite": true,
}

// Degree adverbs that intensify or dampen the following word.
var boosters = map[string]float64{
	"absolutely": boostIncr, "amazingly": boostIncr, "awfully": boostIncr,
	"completely": boostIncr, "considerably": boostIncr, "decidedly": boostIncr,
	"deeply": boostIncr, "effing": boostIncr, "enormously": boostIncr,
	"entirely": boostIncr, "especially": boostIncr, "exceptionally": boostIncr,
	"extremely": boostIncr, "fabulously": boostIncr, "flipping": boostIncr,
	"flippin": boostIncr, "fricking": boostIncr, "frickin": boostIncr,
	"frigging": boostIncr, "friggin": boostIncr, "fully": boostIncr,
	"fucking": boostIncr, "greatly": boostIncr, "hella": boostIncr,
	"highly": boostIncr, "hugely": boostIncr, "incredibly": boostIncr,
	"intensely": boostIncr, "majorly": boostIncr, "more": boostIncr,
	"most": boostIncr, "particularly": boostIncr, "purely": boostIncr,
	"quite": boostIncr, "really": boostIncr, "remarkably": boostIncr,
	"so": boostIncr, "substantially": boostIncr, "thoroughly": boostIncr,
	"totally": boostIncr, "tremendously": boostIncr, "uber": boostIncr,
	"unbelievably": boostIncr, "unusually": boostIncr, "utterly": boostIncr,
	"very": boostIncr,
	"almost": boostDecr, "barely": boostDecr, "hardly": boostDecr,
	"just enough": boostDecr, "kind of": boostDecr, "kinda": boostDecr,
	"kindof": boostDecr, "kind-of": boostDecr, "less": boostDecr,
	"little": boostDecr, "marginally": boostDecr, "occasionally": boostDecr,
	"partly": boostDecr, "scarcely": boostDecr, "slightly": boostDecr,
	"somewhat": boostDecr, "sort of": boostDecr, "sorta": boostDecr,
	"sortof": boostDecr, "sort-of": boostDecr,
}

// Special-case idioms containing lexicon words.
var specialCaseIdioms = map[string]float64{
	"the shit": 3, "the bomb": 3, "bad ass": 1.5, "yeah right": -2,
	"kiss of death": -1.5,
}

// Analyzer holds a loaded sentiment lexicon. It is read-only after
// construction and safe to share.
type Analyzer struct {
	lexicon map[string]float64
	emoji   map[string]string
}

// NewAnalyzer loads the lexicon file at lexiconPath, and optionally an
// emoji description lexicon at emojiPath (empty path skips it). Both
// files are tab-separated, one entry per line.
func NewAnalyzer(lexiconPath, emojiPath string) (*Analyzer, error) {
	a := &Analyzer{}

	lexicon, err := loadLexicon(lexiconPath)
	if err != nil {
		return nil, fmt.Errorf("loading lexicon %s: %w", lexiconPath, err)
	}
	a.lexicon = lexicon

	if emojiPath != "" {
		emoji, err := loadEmojiLexicon(emojiPath)
		if err != nil {
			return nil, fmt.Errorf("loading emoji lexicon %s: %w", emojiPath, err)
		}
		a.emoji = emoji
	}

	return a, nil
}

// LexiconSize returns the number of words in the loaded lexicon.
func (a *Analyzer) LexiconSize() int {
	return len(a.lexicon)
}

// EmojiLexiconSize returns the number of loaded emoji entries.
func (a *Analyzer) EmojiLexiconSize() int {
	return len(a.emoji)
}

func loadLexicon(path string) (map[string]float64, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	lexicon := make(map[string]float64)
	for i, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) < 2 {
			return nil, fmt.Errorf("line %d: expected word<TAB>measure, got %q", i+1, line)
		}
		measure, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: parsing measure: %w", i+1, err)
		}
		lexicon[fields[0]] = measure
	}
	return lexicon, nil
}

func loadEmojiLexicon(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	emoji := make(map[string]string)
	for i, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) < 2 {
			return nil, fmt.Errorf("line %d: expected emoji<TAB>description, got %q", i+1, line)
		}
		emoji[fields[0]] = fields[1]
	}
	return emoji, nil
}

// Compound returns the compound polarity score of text in [-1, 1].
// Deterministic for a fixed lexicon; empty text scores 0.
func (a *Analyzer) Compound(text string) float64 {
	if a.emoji != nil {
		text = a.replaceEmoji(text)
	}

	words := wordsAndEmoticons(text)
	if len(words) == 0 {
		return 0
	}
	capDiff := allCapDifferential(words)

	sentiments := make([]float64, 0, len(words))
	for i, item := range words {
		lower := strings.ToLower(item)

		// Boosters carry no valence of their own; they modify neighbors.
		if _, ok := boosters[lower]; ok {
			sentiments = append(sentiments, 0)
			continue
		}
		if lower == "kind" && i+1 < len(words) && strings.ToLower(words[i+1]) == "of" {
			sentiments = append(sentiments, 0)
			continue
		}

		sentiments = append(sentiments, a.wordValence(words, i, capDiff))
	}

	sentiments = butCheck(words, sentiments)
	return a.scoreValence(sentiments, text)
}

// replaceEmoji swaps known emoji tokens for their text descriptions.
func (a *Analyzer) replaceEmoji(text string) string {
	fields := strings.Fields(text)
	for i, f := range fields {
		if desc, ok := a.emoji[f]; ok {
			fields[i] = desc
		}
	}
	return strings.Join(fields, " ")
}

// wordValence computes the adjusted valence of words[i], looking back
// up to three positions for boosters, negations, and idioms.
func (a *Analyzer) wordValence(words []string, i int, capDiff bool) float64 {
	item := words[i]
	lower := strings.ToLower(item)

	valence, ok := a.lexicon[lower]
	if !ok {
		return 0
	}

	// "no" before another lexicon word acts as a negation, not a score.
	if lower == "no" && i+1 < len(words) {
		if _, next := a.lexicon[strings.ToLower(words[i+1])]; next {
			return 0
		}
	}

	if capDiff && isAllCaps(item) {
		if valence > 0 {
			valence += capsIncr
		} else {
			valence -= capsIncr
		}
	}

	for dist := 0; dist < negationLookback && i > dist; dist++ {
		prev := words[i-(dist+1)]
		if _, inLexicon := a.lexicon[strings.ToLower(prev)]; inLexicon {
			continue
		}

		scalar := scalarIncDec(prev, valence, capDiff)
		if scalar != 0 {
			// Boosters further away contribute less.
			switch dist {
			case 1:
				scalar *= 0.95
			case 2:
				scalar *= 0.9
			}
		}
		valence += scalar
		valence = negationCheck(valence, words, dist, i)
		if dist == 2 {
			valence = specialIdiomsCheck(valence, words, i)
		}
	}

	return a.leastCheck(valence, words, i)
}

// scalarIncDec returns the booster adjustment the preceding word
// applies to a valence.
func scalarIncDec(word string, valence float64, capDiff bool) float64 {
	scalar, ok := boosters[strings.ToLower(word)]
	if !ok {
		return 0
	}
	if valence < 0 {
		scalar = -scalar
	}
	if capDiff && isAllCaps(word) {
		if valence > 0 {
			scalar += capsIncr
		} else {
			scalar -= capsIncr
		}
	}
	return scalar
}

// negated reports whether the word is a negation marker.
func negated(word string) bool {
	lower := strings.ToLower(word)
	return negations[lower] || strings.Contains(lower, "n't")
}

// negationCheck adjusts valence for negation patterns at the given
// lookback distance.
func negationCheck(valence float64, words []string, dist, i int) float64 {
	lowered := func(idx int) string { return strings.ToLower(words[idx]) }

	switch dist {
	case 0:
		if negated(words[i-1]) {
			valence *= NegScalar
		}
	case 1:
		if lowered(i-2) == "never" && (lowered(i-1) == "so" || lowered(i-1) == "this") {
			valence *= 1.25
		} else if lowered(i-2) == "without" && lowered(i-1) == "doubt" {
			// "without doubt X" is emphatic, not negated
		} else if negated(words[i-2]) {
			valence *= NegScalar
		}
	case 2:
		if lowered(i-3) == "never" &&
			(lowered(i-2) == "so" || lowered(i-2) == "this" ||
				lowered(i-1) == "so" || lowered(i-1) == "this") {
			valence *= 1.25
		} else if lowered(i-3) == "without" &&
			(lowered(i-2) == "doubt" || lowered(i-1) == "doubt") {
			// emphatic, not negated
		} else if negated(words[i-3]) {
			valence *= NegScalar
		}
	}
	return valence
}

// specialIdiomsCheck applies fixed valences for idioms spanning the
// trigram window around words[i].
func specialIdiomsCheck(valence float64, words []string, i int) float64 {
	join := func(parts ...string) string {
		lowered := make([]string, len(parts))
		for j, p := range parts {
			lowered[j] = strings.ToLower(p)
		}
		return strings.Join(lowered, " ")
	}

	sequences := []string{
		join(words[i-1], words[i]),
		join(words[i-2], words[i-1], words[i]),
		join(words[i-2], words[i-1]),
		join(words[i-3], words[i-2], words[i-1]),
		join(words[i-3], words[i-2]),
	}
	for _, seq := range sequences {
		if v, ok := specialCaseIdioms[seq]; ok {
			valence = v
			break
		}
	}

	if i+1 < len(words) {
		if v, ok := specialCaseIdioms[join(words[i], words[i+1])]; ok {
			valence = v
		}
	}
	if i+2 < len(words) {
		if v, ok := specialCaseIdioms[join(words[i], words[i+1], words[i+2])]; ok {
			valence = v
		}
	}

	return valence
}

// leastCheck dampens a word preceded by "least", except in "at least"
// and "very least".
func (a *Analyzer) leastCheck(valence float64, words []string, i int) float64 {
	if i == 0 {
		return valence
	}
	prev := strings.ToLower(words[i-1])
	if _, inLexicon := a.lexicon[prev]; inLexicon || prev != "least" {
		return valence
	}
	if i > 1 {
		before := strings.ToLower(words[i-2])
		if before == "at" || before == "very" {
			return valence
		}
	}
	return valence * NegScalar
}

// butCheck shifts emphasis to the clause after a contrastive "but".
func butCheck(words []string, sentiments []float64) []float64 {
	butIndex := -1
	for i, w := range words {
		if strings.ToLower(w) == "but" {
			butIndex = i
			break
		}
	}
	if butIndex < 0 {
		return sentiments
	}
	for i := range sentiments {
		if i < butIndex {
			sentiments[i] *= 0.5
		} else if i > butIndex {
			sentiments[i] *= 1.5
		}
	}
	return sentiments
}

// scoreValence sums the per-word valences, applies punctuation
// emphasis, and normalizes the result into [-1, 1].
func (a *Analyzer) scoreValence(sentiments []float64, text string) float64 {
	if len(sentiments) == 0 {
		return 0
	}
	sum := floats.Sum(sentiments)
	if sum == 0 {
		return 0
	}

	punct := amplifyExclamation(text) + amplifyQuestion(text)
	if sum > 0 {
		sum += punct
	} else {
		sum -= punct
	}
	return normalize(sum)
}

// amplifyExclamation adds emphasis for up to four exclamation points.
func amplifyExclamation(text string) float64 {
	count := strings.Count(text, "!")
	if count > 4 {
		count = 4
	}
	return float64(count) * 0.292
}

// amplifyQuestion adds emphasis for repeated question marks.
func amplifyQuestion(text string) float64 {
	count := strings.Count(text, "?")
	if count <= 1 {
		return 0
	}
	if count <= 3 {
		return float64(count) * 0.18
	}
	return 0.96
}

// normalize maps a raw score into [-1, 1] using the alpha constant.
func normalize(score float64) float64 {
	normalized := score / math.Sqrt(score*score+normAlpha)
	if normalized < -1 {
		return -1
	}
	if normalized > 1 {
		return 1
	}
	return normalized
}

// wordsAndEmoticons splits text into tokens, trimming surrounding
// punctuation from words while leaving emoticons intact. Single-rune
// tokens are dropped.
func wordsAndEmoticons(text string) []string {
	var out []string
	for _, tok := range strings.Fields(text) {
		if len([]rune(tok)) <= 1 {
			continue
		}
		stripped := strings.Trim(tok, punctuationChars)
		if len([]rune(stripped)) > 1 {
			out = append(out, stripped)
		} else {
			out = append(out, tok)
		}
	}
	return out
}

// isAllCaps reports whether a word is fully upper-case and contains at
// least one letter.
func isAllCaps(word string) bool {
	hasLetter := false
	for _, r := range word {
		if r >= 'a' && r <= 'z' {
			return false
		}
		if r >= 'A' && r <= 'Z' {
			hasLetter = true
		}
	}
	return hasLetter
}

// allCapDifferential reports whether some but not all tokens are
// ALL CAPS, the signal that capitalization is used for emphasis.
func allCapDifferential(words []string) bool {
	allCaps := 0
	for _, w := range words {
		if w == strings.ToUpper(w) {
			allCaps++
		}
	}
	diff := len(words) - allCaps
	return diff > 0 && diff < len(words)
}
