package extract

import "testing"

func TestExtract_FullListing(t *testing.T) {
	extractor := NewFactExtractor()

	html := `
	<html>
	<head><script>var x = "総戸数999戸";</script></head>
	<body>
		<p>山手線「目黒」駅から徒歩５分の好立地。</p>
		<p>総戸数150戸、鉄骨鉄筋コンクリート造、地上20階建て。</p>
		<p>2005年3月築。</p>
		<p>分譲会社：三井不動産レジデンシャル株式会社</p>
		<p>施工会社：鹿島建設株式会社</p>
		<p>管理会社：三井不動産レジデンシャルサービス株式会社</p>
	</body>
	</html>
	`

	facts := extractor.Extract(html)

	if facts.Line != "山手" {
		t.Errorf("Line = %q, want 山手", facts.Line)
	}
	if facts.Station != "目黒" {
		t.Errorf("Station = %q, want 目黒", facts.Station)
	}
	if facts.WalkMinutes == nil || *facts.WalkMinutes != 5 {
		t.Errorf("WalkMinutes = %v, want 5", facts.WalkMinutes)
	}
	if facts.UnitCount == nil || *facts.UnitCount != 150 {
		t.Errorf("UnitCount = %v, want 150 (script content must be skipped)", facts.UnitCount)
	}
	if facts.Structure != "鉄骨鉄筋コンクリート造" {
		t.Errorf("Structure = %q", facts.Structure)
	}
	if facts.FloorCount == nil || *facts.FloorCount != 20 {
		t.Errorf("FloorCount = %v, want 20", facts.FloorCount)
	}
	if facts.BuiltDate != "2005年3月築" {
		t.Errorf("BuiltDate = %q, want 2005年3月築", facts.BuiltDate)
	}
	if facts.Developer != "三井不動産レジデンシャル株式会社" {
		t.Errorf("Developer = %q", facts.Developer)
	}
	if facts.Builder != "鹿島建設株式会社" {
		t.Errorf("Builder = %q", facts.Builder)
	}
	if facts.Manager != "三井不動産レジデンシャルサービス株式会社" {
		t.Errorf("Manager = %q", facts.Manager)
	}
}

func TestExtract_StructurePriority(t *testing.T) {
	extractor := NewFactExtractor()

	// Steel-reinforced wins when both terms appear.
	facts := extractor.Extract("一部鉄筋コンクリート造、主要部は鉄骨鉄筋コンクリート造です。")
	if facts.Structure != "鉄骨鉄筋コンクリート造" {
		t.Errorf("Structure = %q, want SRC to take priority", facts.Structure)
	}

	facts = extractor.Extract("RC造のマンションです。")
	if facts.Structure != "鉄筋コンクリート造" {
		t.Errorf("Structure = %q, want RC canonical phrase", facts.Structure)
	}

	facts = extractor.Extract("SRC造のタワーです。")
	if facts.Structure != "鉄骨鉄筋コンクリート造" {
		t.Errorf("Structure = %q, want SRC canonical phrase", facts.Structure)
	}
}

func TestExtract_FullWidthDigits(t *testing.T) {
	extractor := NewFactExtractor()

	facts := extractor.Extract("「新宿」駅より徒歩約１２分。総戸数３０戸。地上９階。１９９８年築。")

	if facts.WalkMinutes == nil || *facts.WalkMinutes != 12 {
		t.Errorf("WalkMinutes = %v, want 12", facts.WalkMinutes)
	}
	if facts.UnitCount == nil || *facts.UnitCount != 30 {
		t.Errorf("UnitCount = %v, want 30", facts.UnitCount)
	}
	if facts.FloorCount == nil || *facts.FloorCount != 9 {
		t.Errorf("FloorCount = %v, want 9", facts.FloorCount)
	}
	if facts.BuiltDate != "1998年築" {
		t.Errorf("BuiltDate = %q, want 1998年築", facts.BuiltDate)
	}
}

func TestExtract_MissingFieldsStayAbsent(t *testing.T) {
	extractor := NewFactExtractor()

	facts := extractor.Extract("緑豊かな住宅街にある静かな物件です。")
	if !facts.IsEmpty() {
		t.Errorf("Expected all fields absent, got %+v", facts)
	}

	// Empty and junk input must not fail or fabricate.
	if !extractor.Extract("").IsEmpty() {
		t.Error("Empty input must yield empty facts")
	}
	if !extractor.Extract("<div><<<broken").IsEmpty() {
		t.Error("Broken markup must yield empty facts")
	}
}

func TestExtract_BuiltDateOutOfRangeIgnored(t *testing.T) {
	extractor := NewFactExtractor()

	facts := extractor.Extract("1890年築の洋館を再現。")
	if facts.BuiltDate != "" {
		t.Errorf("BuiltDate = %q, want absent for out-of-range year", facts.BuiltDate)
	}
}

func TestStripHTML_PlainTextPassthrough(t *testing.T) {
	text := "プレーンテキストのままです。"
	if got := StripHTML(text); got != text {
		t.Errorf("StripHTML(%q) = %q", text, got)
	}
}
