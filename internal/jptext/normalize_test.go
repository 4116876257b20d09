package jptext

import "testing"

func TestNormalize_WidthFolding(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"fullwidth ascii", "ＡＢＣ１２３！", "ABC123!"},
		{"fullwidth space collapsed", "駅から　　徒歩５分", "駅から 徒歩5分"},
		{"dash variants", "東京—大阪–間", "東京-大阪-間"},
		{"middle dot variants", "ルイ·ヴィトン", "ルイ・ヴィトン"},
		{"square meters", "７５．２㎡", "75.2m2"},
		{"long vowel mark survives", "マンション", "マンション"},
		{"trim", "  広い物件です  ", "広い物件です"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.input); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"ＳＲＣ造・地上２０階建て　総戸数１５０戸",
		"山手線「目黒」駅から徒歩約５分—駅近です。",
		"  multiple   spaces\tand\nnewlines  ",
		"",
		"既に正規化済みのテキストです。",
	}

	for _, input := range inputs {
		once := Normalize(input)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: once=%q twice=%q", input, once, twice)
		}
	}
}

func TestNormalizeWalkPhrase(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"駅から徒歩5分です", "駅から徒歩約5分です"},
		{"駅から徒歩約5分です", "駅から徒歩約5分です"},
		{"徒歩１０分", "徒歩約10分"},
		{"徒歩圏内", "徒歩圏内"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := NormalizeWalkPhrase(tt.input); got != tt.want {
			t.Errorf("NormalizeWalkPhrase(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}

	// Idempotence
	for _, tt := range tests {
		once := NormalizeWalkPhrase(tt.input)
		if twice := NormalizeWalkPhrase(once); twice != once {
			t.Errorf("NormalizeWalkPhrase not idempotent for %q", tt.input)
		}
	}
}

func TestFoldDigits(t *testing.T) {
	if got := FoldDigits("１２３abc４５"); got != "123abc45" {
		t.Errorf("FoldDigits = %q", got)
	}
}
