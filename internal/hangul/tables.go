package hangul

// JamoIndex is a position in one of the canonical orderings used by the
// Unicode syllable decomposition algorithm.
type JamoIndex uint8

const (
	SyllableBase = 0xAC00
	SyllableLast = 0xD7A3

	InitialCount = 19
	MedialCount  = 21
	FinalCount   = 28
)

var (
	choList  = []rune{'ㄱ', 'ㄲ', 'ㄴ', 'ㄷ', 'ㄸ', 'ㄹ', 'ㅁ', 'ㅂ', 'ㅃ', 'ㅅ', 'ㅆ', 'ㅇ', 'ㅈ', 'ㅉ', 'ㅊ', 'ㅋ', 'ㅌ', 'ㅍ', 'ㅎ'}
	jungList = []rune{'ㅏ', 'ㅐ', 'ㅑ', 'ㅒ', 'ㅓ', 'ㅔ', 'ㅕ', 'ㅖ', 'ㅗ', 'ㅘ', 'ㅙ', 'ㅚ', 'ㅛ', 'ㅜ', 'ㅝ', 'ㅞ', 'ㅟ', 'ㅠ', 'ㅡ', 'ㅢ', 'ㅣ'}
	jongList = []rune{0, 'ㄱ', 'ㄲ', 'ㄳ', 'ㄴ', 'ㄵ', 'ㄶ', 'ㄷ', 'ㄹ', 'ㄺ', 'ㄻ', 'ㄼ', 'ㄽ', 'ㄾ', 'ㄿ', 'ㅀ', 'ㅁ', 'ㅂ', 'ㅄ', 'ㅅ', 'ㅆ', 'ㅇ', 'ㅈ', 'ㅊ', 'ㅋ', 'ㅌ', 'ㅍ', 'ㅎ'}
)

var (
	doubleInitial = map[[2]rune]rune{
		{'ㄱ', 'ㄱ'}: 'ㄲ',
		{'ㄷ', 'ㄷ'}: 'ㄸ',
		{'ㅂ', 'ㅂ'}: 'ㅃ',
		{'ㅈ', 'ㅈ'}: 'ㅉ',
		{'ㅅ', 'ㅅ'}: 'ㅆ',
	}
	doubleMedial = map[[2]rune]rune{
		{'ㅗ', 'ㅏ'}: 'ㅘ',
		{'ㅗ', 'ㅐ'}: 'ㅙ',
		{'ㅗ', 'ㅣ'}: 'ㅚ',
		{'ㅜ', 'ㅓ'}: 'ㅝ',
		{'ㅜ', 'ㅔ'}: 'ㅞ',
		{'ㅜ', 'ㅣ'}: 'ㅟ',
		{'ㅡ', 'ㅣ'}: 'ㅢ',
	}
	// Consonant clusters only. Tense ㄲ and ㅆ are single letters and move
	// to the next syllable whole.
	clusterFinal = map[[2]rune]rune{
		{'ㄱ', 'ㅅ'}: 'ㄳ',
		{'ㄴ', 'ㅈ'}: 'ㄵ',
		{'ㄴ', 'ㅎ'}: 'ㄶ',
		{'ㄹ', 'ㄱ'}: 'ㄺ',
		{'ㄹ', 'ㅁ'}: 'ㄻ',
		{'ㄹ', 'ㅂ'}: 'ㄼ',
		{'ㄹ', 'ㅅ'}: 'ㄽ',
		{'ㄹ', 'ㅌ'}: 'ㄾ',
		{'ㄹ', 'ㅍ'}: 'ㄿ',
		{'ㄹ', 'ㅎ'}: 'ㅀ',
		{'ㅂ', 'ㅅ'}: 'ㅄ',
	}
)

var (
	choseongIndex  = buildIndex(choList)
	jungseongIndex = buildIndex(jungList)
	jongseongIndex = buildIndex(jongList)
)

// finalSplit holds the simple remainder (a final index) and the split-off
// consonant (an initial index) for every cluster final.
type finalSplit struct {
	remainder JamoIndex
	initial   JamoIndex
}

var (
	initialMerge = mergeTable(doubleInitial, choseongIndex, choseongIndex)
	initialBase  = baseTable(doubleInitial, choseongIndex, choseongIndex)
	medialMerge  = mergeTable(doubleMedial, jungseongIndex, jungseongIndex)
	medialBase   = baseTable(doubleMedial, jungseongIndex, jungseongIndex)
	finalSplits  = buildFinalSplits(clusterFinal)
	finalInitial = buildFinalInitial()
)

func buildIndex(list []rune) map[rune]JamoIndex {
	idx := make(map[rune]JamoIndex, len(list))
	for i, ch := range list {
		if ch == 0 {
			continue
		}
		idx[ch] = JamoIndex(i)
	}
	return idx
}

func mergeTable(src map[[2]rune]rune, pairIndex, resultIndex map[rune]JamoIndex) map[[2]JamoIndex]JamoIndex {
	dst := make(map[[2]JamoIndex]JamoIndex, len(src))
	for pair, value := range src {
		dst[[2]JamoIndex{pairIndex[pair[0]], pairIndex[pair[1]]}] = resultIndex[value]
	}
	return dst
}

func baseTable(src map[[2]rune]rune, pairIndex, resultIndex map[rune]JamoIndex) map[JamoIndex]JamoIndex {
	dst := make(map[JamoIndex]JamoIndex, len(src))
	for pair, value := range src {
		dst[resultIndex[value]] = pairIndex[pair[0]]
	}
	return dst
}

func buildFinalSplits(src map[[2]rune]rune) map[JamoIndex]finalSplit {
	dst := make(map[JamoIndex]finalSplit, len(src))
	for pair, value := range src {
		dst[jongseongIndex[value]] = finalSplit{
			remainder: jongseongIndex[pair[0]],
			initial:   choseongIndex[pair[1]],
		}
	}
	return dst
}

func buildFinalInitial() map[JamoIndex]JamoIndex {
	dst := make(map[JamoIndex]JamoIndex)
	for i, ch := range jongList {
		if lead, ok := choseongIndex[ch]; ok {
			dst[JamoIndex(i)] = lead
		}
	}
	return dst
}

// InitialRune returns the compatibility jamo displayed for a lone initial.
func InitialRune(idx JamoIndex) rune {
	if int(idx) >= InitialCount {
		return 0
	}
	return choList[idx]
}

// MedialRune returns the compatibility jamo displayed for a lone medial.
func MedialRune(idx JamoIndex) rune {
	if int(idx) >= MedialCount {
		return 0
	}
	return jungList[idx]
}

// FinalRune returns the compatibility jamo for a final; index 0 has none.
func FinalRune(idx JamoIndex) rune {
	if int(idx) >= FinalCount {
		return 0
	}
	return jongList[idx]
}

func InitialIndex(ch rune) (JamoIndex, bool) {
	idx, ok := choseongIndex[ch]
	return idx, ok
}

func MedialIndex(ch rune) (JamoIndex, bool) {
	idx, ok := jungseongIndex[ch]
	return idx, ok
}

// FinalIndex never reports index 0: the empty final has no jamo.
func FinalIndex(ch rune) (JamoIndex, bool) {
	idx, ok := jongseongIndex[ch]
	return idx, ok
}

// MergeMedial looks up the compound vowel formed by typing incoming after
// existing.
func MergeMedial(existing, incoming JamoIndex) (JamoIndex, bool) {
	merged, ok := medialMerge[[2]JamoIndex{existing, incoming}]
	return merged, ok
}

// MergeInitial looks up the tense initial formed by doubling a consonant.
func MergeInitial(existing, incoming JamoIndex) (JamoIndex, bool) {
	merged, ok := initialMerge[[2]JamoIndex{existing, incoming}]
	return merged, ok
}

// SplitFinal returns the simple final left behind and the initial carried to
// the next syllable when a cluster final is broken by a vowel.
func SplitFinal(final JamoIndex) (remainder, initial JamoIndex, ok bool) {
	split, ok := finalSplits[final]
	return split.remainder, split.initial, ok
}

// ReduceMedial returns the base vowel of a compound vowel.
func ReduceMedial(medial JamoIndex) (JamoIndex, bool) {
	base, ok := medialBase[medial]
	return base, ok
}

func ReduceInitial(initial JamoIndex) (JamoIndex, bool) {
	base, ok := initialBase[initial]
	return base, ok
}

// FinalAsInitial maps a simple final onto the same consonant as an initial.
// Cluster finals have no such mapping.
func FinalAsInitial(final JamoIndex) (JamoIndex, bool) {
	lead, ok := finalInitial[final]
	return lead, ok
}

// Syllable computes the precomposed syllable for the given indices.
func Syllable(initial, medial, final JamoIndex) rune {
	return rune(SyllableBase + (int(initial)*MedialCount+int(medial))*FinalCount + int(final))
}

// SplitSyllable is the inverse of Syllable.
func SplitSyllable(ch rune) (initial, medial, final JamoIndex, ok bool) {
	if ch < SyllableBase || ch > SyllableLast {
		return 0, 0, 0, false
	}
	code := int(ch - SyllableBase)
	final = JamoIndex(code % FinalCount)
	medial = JamoIndex((code / FinalCount) % MedialCount)
	initial = JamoIndex(code / (FinalCount * MedialCount))
	return initial, medial, final, true
}
