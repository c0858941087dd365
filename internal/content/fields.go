package content

// FallbackFieldName is used for field codes outside the fixed table.
const FallbackFieldName = "التخصص العلمي"

var fieldNames = map[string]string{
	"education":   "التربية وعلم النفس",
	"business":    "إدارة الأعمال",
	"engineering": "الهندسة",
	"medicine":    "الطب",
	"law":         "القانون",
	"literature":  "الأدب واللغة",
	"science":     "العلوم الطبيعية",
	"social":      "العلوم الاجتماعية",
}

// ResolveFieldName maps a field-of-study code to its display name.
func ResolveFieldName(code string) string {
	if name, ok := fieldNames[code]; ok {
		return name
	}
	return FallbackFieldName
}
