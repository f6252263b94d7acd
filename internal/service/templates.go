package service

import (
	"fmt"
	"strings"

	"medscanapi/internal/model"
)

// reportSections are the prefilled sections of a draft diagnostic report.
type reportSections struct {
	Title           string
	Indication      string
	Technique       string
	Findings        string
	Impression      string
	Recommendations string
}

// reportTemplate picks the draft template matching the predicted class. The
// text is patient-facing and deliberately avoids jargon; radiologists edit it
// before publishing.
func reportTemplate(examinationType, predictedClass string) reportSections {
	exam := model.DisplayExamType(examinationType)
	switch strings.ToLower(predictedClass) {
	case "tuberculosis":
		return tuberculosisTemplate(exam)
	case "adenocarcinoma", "squamous_cell_carcinoma", "large_cell_carcinoma", "lung_cancer":
		return lungCancerTemplate(exam)
	case "other_abnormality":
		return abnormalityTemplate(exam)
	case "inconclusive":
		return inconclusiveTemplate(exam)
	default:
		return normalTemplate(exam)
	}
}

func tuberculosisTemplate(exam string) reportSections {
	return reportSections{
		Title:      fmt.Sprintf("%s - Chest", exam),
		Indication: "Evaluation for respiratory symptoms including cough, fever, and night sweats.",
		Technique:  fmt.Sprintf("%s of the chest performed with standard imaging protocol.", exam),
		Findings: "Bilateral infiltrates identified in both upper lung zones. A cavity measuring 2.5 cm is present " +
			"in the right upper lobe. Multiple small nodules are scattered throughout both lungs. Small fluid " +
			"collections noted around the lungs. Enlarged lymph nodes visible in the chest.",
		Impression: `Imaging findings are consistent with active tuberculosis infection affecting both lungs.

The pattern shows:
- Upper lobe disease with cavity formation
- Widespread small nodules suggesting infection spread
- Lymph node enlargement
- Fluid around the lungs`,
		Recommendations: `IMMEDIATE NEXT STEPS:
1. Start isolation precautions to prevent spread to others
2. Sputum testing needed to confirm TB bacteria
3. Blood tests including HIV screening
4. Begin TB medication treatment (4 medications typically)
5. Infectious disease doctor consultation

FOLLOW-UP CARE:
- Repeat chest X-ray in 2 months to check treatment response
- Monthly check-ups during treatment
- Liver function monitoring due to medications
- Contact tracing for close contacts

IMPORTANT: TB is treatable with 6-9 months of medication. Completing the full treatment course is essential.`,
	}
}

func lungCancerTemplate(exam string) reportSections {
	return reportSections{
		Title:      fmt.Sprintf("%s - Chest", exam),
		Indication: "Evaluation of abnormal chest imaging findings.",
		Technique:  fmt.Sprintf("Contrast-enhanced %s of the chest performed.", exam),
		Findings: "A 3.2 cm mass with irregular borders identified in the right upper lung. The mass shows areas " +
			"of tissue death in the center. Several enlarged lymph nodes detected in the chest, measuring up to " +
			"2.1 cm. Small amount of fluid present around the right lung.",
		Impression: `Findings are highly concerning for lung cancer.

Key findings:
- 3.2 cm lung mass in right upper lobe with irregular borders
- Enlarged lymph nodes in the chest
- Preliminary staging suggests locally advanced disease
- Additional testing needed for complete evaluation`,
		Recommendations: `URGENT NEXT STEPS (Within 1-2 Weeks):
1. Biopsy procedure to confirm diagnosis and determine cancer type
2. PET scan to evaluate full extent of disease
3. Brain MRI to check for spread
4. Blood tests and additional CT scans
5. Appointments with cancer specialists (oncology, surgery)

ADDITIONAL TESTING:
- Molecular testing on biopsy sample (guides treatment options)
- Lung function tests
- Heart evaluation

TREATMENT PLANNING:
- Multidisciplinary cancer team review
- Treatment options may include surgery, chemotherapy, radiation, or targeted therapy
- Early supportive care consultation

IMPORTANT: Many treatment options are available. The next step is confirming the diagnosis with a biopsy.`,
	}
}

func normalTemplate(exam string) reportSections {
	return reportSections{
		Title:      fmt.Sprintf("%s - Chest", exam),
		Indication: "Routine health screening.",
		Technique:  fmt.Sprintf("%s of the chest performed.", exam),
		Findings: "Both lungs are clear with normal appearance. No masses, nodules, or suspicious areas " +
			"identified. Heart size is normal. No fluid around the lungs. Bones visible on the image show no " +
			"abnormalities.",
		Impression: `Normal chest imaging study.

No abnormalities detected.`,
		Recommendations: `FOLLOW-UP:
- No immediate imaging follow-up needed
- Continue routine health check-ups with your primary doctor

WHEN TO RETURN:
Contact your doctor if you develop:
- Persistent cough lasting more than 3 weeks
- Chest pain or shortness of breath
- Coughing up blood
- Unexplained weight loss or fever

PREVENTIVE CARE:
- Avoid tobacco and secondhand smoke
- Stay current with vaccinations
- Maintain healthy lifestyle with regular exercise`,
	}
}

func abnormalityTemplate(exam string) reportSections {
	return reportSections{
		Title:      fmt.Sprintf("%s - Chest", exam),
		Indication: "Evaluation of chest symptoms.",
		Technique:  fmt.Sprintf("%s of the chest performed.", exam),
		Findings: "An area of increased density identified in the right lower lung. No masses or cavities seen. " +
			"No fluid around the lungs. Lymph nodes appear normal in size.",
		Impression: `Abnormal finding in the right lower lung.

Most likely possibilities:
- Pneumonia (lung infection)
- Inflammation
- Atypical infection

Does not show features of tuberculosis or cancer.`,
		Recommendations: `IMMEDIATE CARE:
1. Antibiotic treatment if infection suspected
2. Blood tests to check infection markers
3. Symptom monitoring

FOLLOW-UP:
- Repeat chest X-ray in 4-6 weeks to confirm clearing
- Earlier imaging if symptoms worsen
- Return if fever persists or breathing difficulty develops

MONITORING:
- Track temperature and symptoms
- Seek immediate care if condition worsens`,
	}
}

func inconclusiveTemplate(exam string) reportSections {
	return reportSections{
		Title:      fmt.Sprintf("%s - Chest", exam),
		Indication: "Follow-up evaluation needed for unclear findings.",
		Technique:  fmt.Sprintf("%s of the chest performed.", exam),
		Findings: "Subtle opacity noted in the right upper lung area. The finding is difficult to fully " +
			"characterize on this study. Remaining lung fields appear clear. Heart and other structures appear " +
			"normal.",
		Impression: `Findings require additional evaluation.

The subtle opacity could represent:
- Minor infection or inflammation
- Normal variant or overlapping structures
- Early stage process requiring monitoring

Cannot definitively rule out or confirm abnormality on current images.`,
		Recommendations: `ADDITIONAL IMAGING NEEDED:
1. CT scan recommended for better evaluation
   OR
2. Repeat chest X-ray in 1-2 weeks
3. Comparison with any prior imaging if available

CLINICAL CORRELATION:
- Discuss symptoms with your doctor
- Physical examination findings
- Review your medical history

TIMING:
- Additional imaging within 1-2 weeks recommended
- Sooner if you have symptoms`,
	}
}
