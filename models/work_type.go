package models

// Built-in work type identifiers. Administrators may add custom types on top
// of these; custom types are carried as opaque labels and do not affect
// scoring.
const (
	WorkTypeResearch   = "research"
	WorkTypeTextbook   = "textbook"
	WorkTypeCreative   = "creative"
	WorkTypeSocial     = "social"
	WorkTypeIndustry   = "industry"
	WorkTypeTeaching   = "teaching"
	WorkTypePolicy     = "policy"
	WorkTypeInnovation = "innovation"
)

// WorkType is one entry in the work_types collection.
type WorkType struct {
	ID       string `json:"id"`
	Label    string `json:"label"`
	IsCustom bool   `json:"is_custom,omitempty"`
}

// BuiltinWorkTypes returns the standard work types with their Thai labels,
// used to seed an empty work_types collection.
func BuiltinWorkTypes() []WorkType {
	return []WorkType{
		{ID: WorkTypeResearch, Label: "บทความงานวิจัย"},
		{ID: WorkTypeTextbook, Label: "ตำราหรือหนังสือ"},
		{ID: WorkTypeCreative, Label: "งานสร้างสรรค์"},
		{ID: WorkTypeSocial, Label: "ผลงานรับใช้ท้องถิ่นและสังคม"},
		{ID: WorkTypeIndustry, Label: "ผลงานวิชาการเพื่ออุตสาหกรรม"},
		{ID: WorkTypeTeaching, Label: "ผลงานการสอน"},
		{ID: WorkTypePolicy, Label: "ผลงานวิชาการเพื่อพัฒนานโยบายสาธารณะ"},
		{ID: WorkTypeInnovation, Label: "ผลงานนวัตกรรม"},
	}
}

// MergedLevelType reports whether the type scores through the shared A+/A/B
// level table.
func MergedLevelType(workType string) bool {
	switch workType {
	case WorkTypeSocial, WorkTypeIndustry, WorkTypeTeaching, WorkTypePolicy, WorkTypeInnovation:
		return true
	}
	return false
}
