package model

// FactField identifies one of the fixed fact slots extracted from a source document
type FactField string

const (
	FieldStationWalk FactField = "station_walk" // line + station + walk minutes
	FieldUnitCount   FactField = "unit_count"   // 総戸数
	FieldStructure   FactField = "structure"    // 鉄筋コンクリート造 / 鉄骨鉄筋コンクリート造
	FieldFloorCount  FactField = "floor_count"  // 地上N階
	FieldBuiltDate   FactField = "built_date"   // 築年月 (matched text, digits half-width)
	FieldDeveloper   FactField = "developer"    // 分譲会社
	FieldBuilder     FactField = "builder"      // 施工会社
	FieldManager     FactField = "manager"      // 管理会社
)

// Canonical structure phrases. Steel-reinforced takes priority when both appear.
const (
	StructureRC  = "鉄筋コンクリート造"
	StructureSRC = "鉄骨鉄筋コンクリート造"
)

// Facts holds the authoritative structured values extracted from one source
// document. Each field is independently optional: a pointer/empty value means
// the field failed to match, never a guessed default. A Facts value is produced
// once per document and is read-only afterwards; re-extraction replaces it
// wholesale.
type Facts struct {
	Line        string `json:"line,omitempty"`         // railway line without 線, e.g. "山手"
	Station     string `json:"station,omitempty"`      // station name without 駅
	WalkMinutes *int   `json:"walk_minutes,omitempty"` // minutes on foot from the station
	UnitCount   *int   `json:"unit_count,omitempty"`
	Structure   string `json:"structure,omitempty"`
	FloorCount  *int   `json:"floor_count,omitempty"`
	BuiltDate   string `json:"built_date,omitempty"`
	Developer   string `json:"developer,omitempty"`
	Builder     string `json:"builder,omitempty"`
	Manager     string `json:"manager,omitempty"`
}

// Has reports whether the given field was extracted.
func (f Facts) Has(field FactField) bool {
	switch field {
	case FieldStationWalk:
		return f.Station != ""
	case FieldUnitCount:
		return f.UnitCount != nil
	case FieldStructure:
		return f.Structure != ""
	case FieldFloorCount:
		return f.FloorCount != nil
	case FieldBuiltDate:
		return f.BuiltDate != ""
	case FieldDeveloper:
		return f.Developer != ""
	case FieldBuilder:
		return f.Builder != ""
	case FieldManager:
		return f.Manager != ""
	default:
		return false
	}
}

// IsEmpty reports whether no field at all was extracted.
func (f Facts) IsEmpty() bool {
	for _, field := range AllFactFields {
		if f.Has(field) {
			return false
		}
	}
	return true
}

// AllFactFields lists every fact slot in a stable order.
var AllFactFields = []FactField{
	FieldStationWalk,
	FieldUnitCount,
	FieldStructure,
	FieldFloorCount,
	FieldBuiltDate,
	FieldDeveloper,
	FieldBuilder,
	FieldManager,
}

// IntPtr returns a pointer to n. Convenience for building Facts literals.
func IntPtr(n int) *int {
	return &n
}
