package model

import "strings"

// Controlled diagnosis vocabulary stored in the database.
const (
	DiagnosisNormal           = "normal"
	DiagnosisTuberculosis     = "tuberculosis"
	DiagnosisLungCancer       = "lung_cancer"
	DiagnosisOtherAbnormality = "other_abnormality"
	DiagnosisInconclusive     = "inconclusive"
)

// NormalizeDiagnosis maps a free-text model label or radiologist entry onto
// the controlled vocabulary. Unrecognized labels land in other_abnormality.
func NormalizeDiagnosis(label string) string {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "normal", "no finding", "negative":
		return DiagnosisNormal
	case "tuberculosis", "tb", "positive":
		return DiagnosisTuberculosis
	case "adenocarcinoma", "squamous_cell_carcinoma", "squamous_cell",
		"large_cell_carcinoma", "large_cell", "lung_cancer", "malignant",
		"benign":
		return DiagnosisLungCancer
	case "inconclusive", "uncertain", "unknown":
		return DiagnosisInconclusive
	default:
		return DiagnosisOtherAbnormality
	}
}

var examTypeDisplay = map[string]string{
	"xray":       "X-ray",
	"ct":         "CT",
	"mri":        "MRI",
	"pet":        "PET",
	"ultrasound": "Ultrasound",
}

// DisplayExamType maps a stored examination_type enum onto its UI spelling.
func DisplayExamType(v string) string {
	if d, ok := examTypeDisplay[v]; ok {
		return d
	}
	return v
}

// DisplayCapitalize upper-cases the first letter of a stored enum value
// (body regions, urgency levels) for display.
func DisplayCapitalize(v string) string {
	if v == "" {
		return v
	}
	return strings.ToUpper(v[:1]) + v[1:]
}

var diagnosisDisplay = map[string]string{
	DiagnosisNormal:           "Normal",
	DiagnosisTuberculosis:     "Tuberculosis",
	DiagnosisLungCancer:       "Lung Cancer",
	DiagnosisOtherAbnormality: "Other Abnormality",
	DiagnosisInconclusive:     "Inconclusive",
}

// DisplayDiagnosis maps a stored diagnosis_class value onto its UI spelling.
func DisplayDiagnosis(v string) string {
	if d, ok := diagnosisDisplay[strings.ToLower(v)]; ok {
		return d
	}
	return v
}
