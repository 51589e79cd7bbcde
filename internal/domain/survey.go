package domain

import (
	"slices"
	"strings"
)

// SelectionSeparator joins multi-select survey answers into stored text.
const SelectionSeparator = ", "

// Survey option catalogues, in the order the form renders them.
var (
	DestinationOptions = []string{
		"Mediterranean Cruise",
		"European River Cruise",
		"English Countryside",
		"Canadian Rockies",
		"New Zealand",
		"Japan Cultural Tour",
		"Alaska Scenic Route",
		"Australian Outback",
	}

	BudgetOptions = []string{
		"Under $2,000 per person",
		"$2,000 - $3,500 per person",
		"$3,500 - $5,000 per person",
		"Over $5,000 per person",
	}

	TravelStyleOptions = []string{
		"Luxury accommodations",
		"Cultural immersion",
		"Nature & scenery",
		"Historical sites",
		"Culinary experiences",
		"Photography focused",
		"Relaxed pace",
		"Educational tours",
	}

	AccessibilityOptions = []string{
		"Wheelchair accessibility",
		"Limited walking distances",
		"Hearing assistance",
		"Visual assistance",
		"Dietary restrictions",
		"Medical support needed",
		"None needed",
	}
)

// JoinSelections flattens selected options into the stored delimited form,
// preserving the order they were selected in. No selection yields "".
func JoinSelections(selected []string) string {
	return strings.Join(selected, SelectionSeparator)
}

// Flatten converts the answers into the record stored in interest_survey.
func (a SurveyAnswers) Flatten() SurveyResponse {
	return SurveyResponse{
		Email:              a.Email,
		Destinations:       JoinSelections(a.Destinations),
		BudgetRange:        a.BudgetRange,
		TravelStyle:        JoinSelections(a.TravelStyle),
		AccessibilityNeeds: JoinSelections(a.AccessibilityNeeds),
		AdditionalComments: a.AdditionalComments,
	}
}

// Selected reports whether option appears in selected. Templates use it to
// re-check boxes when a failed submission is re-rendered.
func Selected(selected []string, option string) bool {
	return slices.Contains(selected, option)
}
