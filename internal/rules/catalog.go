package rules

import (
	"regexp"

	"github.com/masashitakano917-maker/apt-explain-sub000/internal/model"
)

// baseCatalog is always applied, regardless of scope.
//
// ID prefixes group the rules: dantei-* (断定表現), yuii-* (優位性の主張),
// saijo-* (最上級表現), tokusen-* (選別表現), yasusa-* (価格の安さ),
// goni-n-* (優良誤認の定型), shohyo-* (商標).
var baseCatalog = []Rule{
	// 断定表現: unconditional guarantees the code forbids.
	{ID: "dantei-kanzen", Label: "完全", Category: model.CategoryBanned, Severity: model.SeverityError, kind: kindTerm, Term: "完全", Message: "断定表現「完全」は使用できません"},
	{ID: "dantei-kanpeki", Label: "完ぺき", Category: model.CategoryBanned, Severity: model.SeverityError, kind: kindTerm, Term: "完ぺき", Message: "断定表現「完ぺき」は使用できません"},
	{ID: "dantei-zettai", Label: "絶対", Category: model.CategoryBanned, Severity: model.SeverityError, kind: kindTerm, Term: "絶対", Message: "断定表現「絶対」は使用できません"},
	{ID: "dantei-banzen", Label: "万全", Category: model.CategoryBanned, Severity: model.SeverityError, kind: kindTerm, Term: "万全", Message: "断定表現「万全」は使用できません"},

	// 優位性の主張: first or best-in-class claims.
	{ID: "yuii-nihon-ichi", Label: "日本一", Category: model.CategoryBanned, Severity: model.SeverityError, kind: kindTerm, Term: "日本一", Message: "優位性を示す「日本一」は使用できません"},
	{ID: "yuii-nihon-hatsu", Label: "日本初", Category: model.CategoryBanned, Severity: model.SeverityError, kind: kindTerm, Term: "日本初", Message: "優位性を示す「日本初」は使用できません"},
	{ID: "yuii-gyokai-ichi", Label: "業界一", Category: model.CategoryBanned, Severity: model.SeverityError, kind: kindTerm, Term: "業界一", Message: "優位性を示す「業界一」は使用できません"},
	{ID: "yuii-gyokai-hatsu", Label: "業界初", Category: model.CategoryBanned, Severity: model.SeverityError, kind: kindTerm, Term: "業界初", Message: "優位性を示す「業界初」は使用できません"},
	{ID: "yuii-tosha-dake", Label: "当社だけ", Category: model.CategoryBanned, Severity: model.SeverityError, kind: kindTerm, Term: "当社だけ", Message: "優位性を示す「当社だけ」は使用できません"},
	{ID: "yuii-batsugun", Label: "抜群", Category: model.CategoryBanned, Severity: model.SeverityError, kind: kindTerm, Term: "抜群", Message: "優位性を示す「抜群」は使用できません"},
	{ID: "yuii-tagui", Label: "他に類を見ない", Category: model.CategoryBanned, Severity: model.SeverityError, kind: kindTerm, Term: "他に類を見ない", Message: "優位性を示す「他に類を見ない」は使用できません"},

	// 最上級表現.
	{ID: "saijo-saiko", Label: "最高", Category: model.CategoryBanned, Severity: model.SeverityError, kind: kindTerm, Term: "最高", Message: "最上級表現「最高」は使用できません"},
	{ID: "saijo-saikokyu", Label: "最高級", Category: model.CategoryBanned, Severity: model.SeverityError, kind: kindTerm, Term: "最高級", Message: "最上級表現「最高級」は使用できません"},
	{ID: "saijo-kiwami", Label: "極上", Category: model.CategoryBanned, Severity: model.SeverityWarn, kind: kindTerm, Term: "極上", Message: "最上級表現「極上」は根拠の提示が必要です"},
	{ID: "saijo-ichiryu", Label: "一流", Category: model.CategoryBanned, Severity: model.SeverityError, kind: kindTerm, Term: "一流", Message: "最上級表現「一流」は使用できません"},

	// 選別表現.
	{ID: "tokusen-tokusen", Label: "特選", Category: model.CategoryBanned, Severity: model.SeverityError, kind: kindTerm, Term: "特選", Message: "選別表現「特選」は使用できません"},
	{ID: "tokusen-gensen", Label: "厳選", Category: model.CategoryBanned, Severity: model.SeverityError, kind: kindTerm, Term: "厳選", Message: "選別表現「厳選」は使用できません"},

	// 価格の安さ.
	{ID: "yasusa-kakuyasu", Label: "格安", Category: model.CategoryBanned, Severity: model.SeverityError, kind: kindTerm, Term: "格安", Message: "安さを強調する「格安」は使用できません"},
	{ID: "yasusa-gekiyasu", Label: "激安", Category: model.CategoryBanned, Severity: model.SeverityError, kind: kindTerm, Term: "激安", Message: "安さを強調する「激安」は使用できません"},
	{ID: "yasusa-hakaku", Label: "破格", Category: model.CategoryBanned, Severity: model.SeverityError, kind: kindTerm, Term: "破格", Message: "安さを強調する「破格」は使用できません"},
	{ID: "yasusa-horidashi", Label: "掘出し物", Category: model.CategoryBanned, Severity: model.SeverityError, kind: kindTerm, Term: "掘出", Message: "安さを強調する「掘出」は使用できません"},
	{ID: "yasusa-kaidoku", Label: "買得", Category: model.CategoryBanned, Severity: model.SeverityError, kind: kindTerm, Term: "買得", Message: "安さを強調する「買得」は使用できません"},

	// 優良誤認: hype wording that needs substantiation (flagged, not removed).
	{ID: "gonin-ninki", Label: "人気の", Category: model.CategoryMisleading, Severity: model.SeverityWarn, kind: kindTerm, Term: "人気の", Message: "「人気の」には客観的な裏付けが必要です"},
	{ID: "gonin-wadai", Label: "話題の", Category: model.CategoryMisleading, Severity: model.SeverityWarn, kind: kindTerm, Term: "話題の", Message: "「話題の」には客観的な裏付けが必要です"},

	// 優良誤認: predicate patterns.
	{
		ID: "gonin-shisan-kachi", Label: "資産価値の上昇示唆", Category: model.CategoryMisleading, Severity: model.SeverityError,
		kind:    kindPattern,
		Pattern: regexp.MustCompile(`(?:資産価値|将来価値)[がはも]?(?:必ず)?(?:上が|高ま|向上)|値上がり(?:必至|確実|期待)`),
		Message: "将来の値上がりを示唆する表現は使用できません",
	},
	{
		ID: "gonin-niju-kakaku", Label: "二重価格表示", Category: model.CategoryMisleading, Severity: model.SeverityError,
		kind:    kindPattern,
		Pattern: regexp.MustCompile(`[0-9０-９][0-9０-９,，]*\s*万?円\s*[→⇒↓]\s*[0-9０-９][0-9０-９,，]*\s*万?円`),
		Message: "二重価格表示は使用できません",
	},
	{
		ID: "gonin-hyaku-percent", Label: "100%表示", Category: model.CategoryMisleading, Severity: model.SeverityError,
		kind:    kindPattern,
		Pattern: regexp.MustCompile(`(?:100|１００)\s*[%％]`),
		Message: "「100%」の断定表示は使用できません",
	},

	// 商標: third-party brand names need permission; human judgment.
	{ID: "shohyo-disney", Label: "ディズニー", Category: model.CategoryTrademark, Severity: model.SeverityWarn, kind: kindTerm, Term: "ディズニー", Message: "第三者の商標「ディズニー」の使用には許諾確認が必要です"},
	{ID: "shohyo-usj", Label: "ユニバーサル・スタジオ", Category: model.CategoryTrademark, Severity: model.SeverityWarn, kind: kindTerm, Term: "ユニバーサル・スタジオ", Message: "第三者の商標「ユニバーサル・スタジオ」の使用には許諾確認が必要です"},
	{ID: "shohyo-starbucks", Label: "スターバックス", Category: model.CategoryTrademark, Severity: model.SeverityWarn, kind: kindTerm, Term: "スターバックス", Message: "第三者の商標「スターバックス」の使用には許諾確認が必要です"},
	{ID: "shohyo-costco", Label: "コストコ", Category: model.CategoryTrademark, Severity: model.SeverityWarn, kind: kindTerm, Term: "コストコ", Message: "第三者の商標「コストコ」の使用には許諾確認が必要です"},
	{ID: "shohyo-ikea", Label: "イケア", Category: model.CategoryTrademark, Severity: model.SeverityWarn, kind: kindTerm, Term: "イケア", Message: "第三者の商標「イケア」の使用には許諾確認が必要です"},
}

// unitDisclosureCatalog applies only to whole-building copy: building-level
// marketing must never leak detail that identifies or describes an individual
// unit.
var unitDisclosureCatalog = []Rule{
	{ID: "juko-kado-heya", Label: "角部屋", Category: model.CategoryUnitDisclosure, Severity: model.SeverityError, BuildingOnly: true, kind: kindTerm, Term: "角部屋", Message: "棟全体の紹介文に住戸を特定する「角部屋」は記載できません"},
	{ID: "juko-kado-juko", Label: "角住戸", Category: model.CategoryUnitDisclosure, Severity: model.SeverityError, BuildingOnly: true, kind: kindTerm, Term: "角住戸", Message: "棟全体の紹介文に住戸を特定する「角住戸」は記載できません"},
	{
		ID: "juko-muki", Label: "方位", Category: model.CategoryUnitDisclosure, Severity: model.SeverityError, BuildingOnly: true,
		kind:    kindPattern,
		Pattern: regexp.MustCompile(`(?:南東|南西|北東|北西|南|北|東|西)向き`),
		Message: "棟全体の紹介文に住戸の方位は記載できません",
	},
	{
		ID: "juko-kai-bubun", Label: "階数指定", Category: model.CategoryUnitDisclosure, Severity: model.SeverityError, BuildingOnly: true,
		kind:    kindPattern,
		Pattern: regexp.MustCompile(`[0-9０-９]{1,2}階部分|最上階|高層階`),
		Message: "棟全体の紹介文に特定の階の記載はできません",
	},
	{
		ID: "juko-menseki-m2", Label: "専有面積", Category: model.CategoryUnitDisclosure, Severity: model.SeverityError, BuildingOnly: true,
		kind:    kindPattern,
		Pattern: regexp.MustCompile(`[0-9０-９]+(?:[.．][0-9０-９]+)?\s*(?:m2|㎡|平米|平方メートル)`),
		Message: "棟全体の紹介文に専有面積は記載できません",
	},
	{
		ID: "juko-menseki-jo", Label: "畳数", Category: model.CategoryUnitDisclosure, Severity: model.SeverityError, BuildingOnly: true,
		kind:    kindPattern,
		Pattern: regexp.MustCompile(`[0-9０-９]+(?:[.．][0-9０-９]+)?\s*[畳帖]`),
		Message: "棟全体の紹介文に畳数は記載できません",
	},
	{
		ID: "juko-madori", Label: "間取り", Category: model.CategoryUnitDisclosure, Severity: model.SeverityError, BuildingOnly: true,
		kind:    kindPattern,
		Pattern: regexp.MustCompile(`[0-9０-９]\s*(?:S?LDK|Ｓ?ＬＤＫ|DK|ＤＫ)`),
		Message: "棟全体の紹介文に間取りは記載できません",
	},
}
