package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeDiagnosis(t *testing.T) {
	tests := []struct {
		label string
		want  string
	}{
		{"Normal", DiagnosisNormal},
		{"no finding", DiagnosisNormal},
		{"negative", DiagnosisNormal},
		{"Tuberculosis", DiagnosisTuberculosis},
		{"TB", DiagnosisTuberculosis},
		{"positive", DiagnosisTuberculosis},
		{"adenocarcinoma", DiagnosisLungCancer},
		{"Squamous_Cell_Carcinoma", DiagnosisLungCancer},
		{"large_cell", DiagnosisLungCancer},
		{"malignant", DiagnosisLungCancer},
		{"benign", DiagnosisLungCancer},
		{"inconclusive", DiagnosisInconclusive},
		{"Unknown", DiagnosisInconclusive},
		{"uncertain", DiagnosisInconclusive},
		{"pleural effusion", DiagnosisOtherAbnormality},
		{"", DiagnosisOtherAbnormality},
		{"  tb  ", DiagnosisTuberculosis},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeDiagnosis(tt.label), "label %q", tt.label)
	}
}

func TestDisplayExamType(t *testing.T) {
	assert.Equal(t, "X-ray", DisplayExamType("xray"))
	assert.Equal(t, "CT", DisplayExamType("ct"))
	assert.Equal(t, "MRI", DisplayExamType("mri"))
	assert.Equal(t, "Ultrasound", DisplayExamType("ultrasound"))
	assert.Equal(t, "mammogram", DisplayExamType("mammogram"))
}

func TestDisplayCapitalize(t *testing.T) {
	assert.Equal(t, "Chest", DisplayCapitalize("chest"))
	assert.Equal(t, "Emergent", DisplayCapitalize("emergent"))
	assert.Equal(t, "", DisplayCapitalize(""))
}

func TestDisplayDiagnosis(t *testing.T) {
	assert.Equal(t, "Lung Cancer", DisplayDiagnosis("lung_cancer"))
	assert.Equal(t, "Tuberculosis", DisplayDiagnosis("tuberculosis"))
	assert.Equal(t, "Other Abnormality", DisplayDiagnosis("other_abnormality"))
	assert.Equal(t, "something else", DisplayDiagnosis("something else"))
}

func TestTextArrayScan(t *testing.T) {
	var a TextArray
	assert.NoError(t, a.Scan([]byte(`["cough","fever"]`)))
	assert.Equal(t, TextArray{"cough", "fever"}, a)

	var empty TextArray
	assert.NoError(t, empty.Scan(nil))
	assert.Nil(t, empty)
	assert.Equal(t, []string{}, empty.OrEmpty())

	var fromString TextArray
	assert.NoError(t, fromString.Scan(`["a"]`))
	assert.Equal(t, TextArray{"a"}, fromString)

	assert.Error(t, a.Scan(42))
}
