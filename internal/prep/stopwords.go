package prep

// baseStopwords is the standard English stopword list.
var baseStopwords = []string{
	"i", "me", "my", "myself", "we", "our", "ours", "ourselves", "you",
	"you're", "you've", "you'll", "you'd", "your", "yours", "yourself",
	"yourselves", "he", "him", "his", "himself", "she", "she's", "her",
	"hers", "herself", "it", "it's", "its", "itself", "they", "them",
	"their", "theirs", "themselves", "what", "which", "who", "whom",
	"this", "that", "that'll", "these", "those", "am", "is", "are",
	"was", "were", "be", "been", "being", "have", "has", "had", "having",
	"do", "does", "did", "doing", "a", "an", "the", "and", "but", "if",
	"or", "because", "as", "until", "while", "of", "at", "by", "for",
	"with", "about", "against", "between", "into", "through", "during",
	"before", "after", "above", "below", "to", "from", "up", "down",
	"in", "out", "on", "off", "over", "under", "again", "further",
	"then", "once", "here", "there", "when", "where", "why", "how",
	"all", "any", "both", "each", "few", "more", "most", "other",
	"some", "such", "no", "nor", "not", "only", "own", "same", "so",
	"than", "too", "very", "s", "t", "can", "will", "just", "don",
	"don't", "should", "should've", "now", "d", "ll", "m", "o", "re",
	"ve", "y", "ain", "aren", "aren't", "couldn", "couldn't", "didn",
	"didn't", "doesn", "doesn't", "hadn", "hadn't", "hasn", "hasn't",
	"haven", "haven't", "isn", "isn't", "ma", "mightn", "mightn't",
	"mustn", "mustn't", "needn", "needn't", "shan", "shan't", "shouldn",
	"shouldn't", "wasn", "wasn't", "weren", "weren't", "won", "won't",
	"wouldn", "wouldn't",
}

// defaultKeepWords are removed from the stopword set: negations and the
// intensifiers, modals, quantifiers and connectives that carry polarity
// or scope information the scorer and negation compacter need.
var defaultKeepWords = []string{
	"shan't", "wouldn't", "shouldn't", "wasn't", "aren't", "not",
	"mightn't", "no", "doesn't", "hasn't", "won't", "isn't", "out",
	"don't", "didn't", "needn't", "mustn't", "hadn't", "couldn't",
	"off", "nor",
	"very", "to",
	"should", "can", "will",
	"if",
	"which", "who", "this", "those", "that", "these", "whom",
	"each", "most", "few", "all", "some", "more", "any",
	"before", "between", "during", "against", "after",
}

// negationTokens open a NEG_ compacting window over the following tokens.
var negationTokens = map[string]bool{
	"won't": true, "n't": true, "out": true, "without": true, "no": true,
	"don't": true, "mightn't": true, "isn't": true, "doesn't": true,
	"shouldn't": true, "can't": true, "wouldn't": true, "hadn't": true,
	"nor": true, "off": true, "cannot": true, "needn't": true,
	"never": true, "shan't": true, "didn't": true, "couldn't": true,
	"mustn't": true, "not": true, "aren't": true, "hasn't": true,
	"wasn't": true,
}

// buildStopwords assembles the effective stopword set from the base
// list, the default keep list, and per-config additions/removals.
func buildStopwords(extra, keep []string) map[string]bool {
	set := make(map[string]bool, len(baseStopwords))
	for _, w := range baseStopwords {
		set[w] = true
	}
	for _, w := range defaultKeepWords {
		delete(set, w)
	}
	for _, w := range extra {
		set[w] = true
	}
	for _, w := range keep {
		delete(set, w)
	}
	return set
}
