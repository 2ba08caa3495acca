package hangul

import (
	"testing"

	"golang.org/x/text/unicode/norm"
)

func TestSyllableMatchesNFC(t *testing.T) {
	count := 0
	for cho := 0; cho < InitialCount; cho++ {
		for jung := 0; jung < MedialCount; jung++ {
			for jong := 0; jong < FinalCount; jong++ {
				conjoining := []rune{rune(0x1100 + cho), rune(0x1161 + jung)}
				if jong > 0 {
					conjoining = append(conjoining, rune(0x11A7+jong))
				}
				want := norm.NFC.String(string(conjoining))
				got := Syllable(JamoIndex(cho), JamoIndex(jung), JamoIndex(jong))
				if string(got) != want {
					t.Fatalf("syllable(%d,%d,%d) = %q, NFC gives %q", cho, jung, jong, got, want)
				}
				count++
			}
		}
	}
	if count != 11172 {
		t.Fatalf("expected 11172 syllables, got %d", count)
	}
}

func TestSplitSyllableInvertsSyllable(t *testing.T) {
	for ch := rune(SyllableBase); ch <= SyllableLast; ch++ {
		cho, jung, jong, ok := SplitSyllable(ch)
		if !ok {
			t.Fatalf("expected %q to split", ch)
		}
		if back := Syllable(cho, jung, jong); back != ch {
			t.Fatalf("round trip of %q gave %q", ch, back)
		}
	}
	if _, _, _, ok := SplitSyllable('A'); ok {
		t.Fatalf("expected latin letter not to split")
	}
}

func TestCompatibilityRunes(t *testing.T) {
	if InitialRune(0) != 'ㄱ' || InitialRune(18) != 'ㅎ' {
		t.Fatalf("unexpected initial table ends")
	}
	if MedialRune(0) != 'ㅏ' || MedialRune(20) != 'ㅣ' {
		t.Fatalf("unexpected medial table ends")
	}
	if FinalRune(0) != 0 || FinalRune(1) != 'ㄱ' || FinalRune(27) != 'ㅎ' {
		t.Fatalf("unexpected final table ends")
	}
	if InitialRune(InitialCount) != 0 || MedialRune(MedialCount) != 0 || FinalRune(FinalCount) != 0 {
		t.Fatalf("expected out-of-range lookups to yield no rune")
	}
}

func TestMergeMedial(t *testing.T) {
	o, _ := MedialIndex('ㅗ')
	a, _ := MedialIndex('ㅏ')
	wa, _ := MedialIndex('ㅘ')

	merged, ok := MergeMedial(o, a)
	if !ok || merged != wa {
		t.Fatalf("expected ㅗ+ㅏ to merge into ㅘ, got %c (ok=%v)", MedialRune(merged), ok)
	}
	if _, ok := MergeMedial(a, o); ok {
		t.Fatalf("expected ㅏ+ㅗ not to merge")
	}
	base, ok := ReduceMedial(wa)
	if !ok || base != o {
		t.Fatalf("expected ㅘ to reduce to ㅗ, got %c", MedialRune(base))
	}
}

func TestSplitFinal(t *testing.T) {
	lg, _ := FinalIndex('ㄺ')
	l, _ := FinalIndex('ㄹ')
	g, _ := InitialIndex('ㄱ')

	remainder, initial, ok := SplitFinal(lg)
	if !ok || remainder != l || initial != g {
		t.Fatalf("expected ㄺ to split into ㄹ + ㄱ, got %c + %c", FinalRune(remainder), InitialRune(initial))
	}

	for _, tense := range []rune{'ㄲ', 'ㅆ', 'ㄴ'} {
		idx, _ := FinalIndex(tense)
		if _, _, ok := SplitFinal(idx); ok {
			t.Fatalf("expected %c to move whole rather than split", tense)
		}
	}
}

func TestFinalAsInitial(t *testing.T) {
	for _, ch := range []rune{'ㄱ', 'ㄲ', 'ㄴ', 'ㄷ', 'ㄹ', 'ㅁ', 'ㅂ', 'ㅅ', 'ㅆ', 'ㅇ', 'ㅈ', 'ㅊ', 'ㅋ', 'ㅌ', 'ㅍ', 'ㅎ'} {
		final, _ := FinalIndex(ch)
		initial, ok := FinalAsInitial(final)
		if !ok || InitialRune(initial) != ch {
			t.Fatalf("expected final %c to map onto initial %c", ch, ch)
		}
	}
	cluster, _ := FinalIndex('ㄳ')
	if _, ok := FinalAsInitial(cluster); ok {
		t.Fatalf("expected cluster final to have no initial form")
	}
}

func TestNewJamoRoles(t *testing.T) {
	g := MustJamo('ㄱ', RoleAuto)
	if !g.Is(RoleInitial) || !g.Is(RoleFinal) || g.Is(RoleMedial) {
		t.Fatalf("expected ㄱ to be initial and final candidate, got %s", g)
	}
	dd := MustJamo('ㄸ', RoleAuto)
	if dd.Is(RoleFinal) {
		t.Fatalf("expected ㄸ not to be a final candidate")
	}
	a := MustJamo('ㅏ', RoleAuto)
	if a.Roles() != RoleMedial {
		t.Fatalf("expected ㅏ to be medial only, got %s", a.Roles())
	}
	if _, err := NewJamo('ㄸ', RoleFinal); err == nil {
		t.Fatalf("expected ㄸ as final to be rejected")
	}
	if _, err := NewJamo('x', RoleAuto); err == nil {
		t.Fatalf("expected latin letter to be rejected")
	}
}
