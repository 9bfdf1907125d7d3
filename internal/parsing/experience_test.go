package parsing

import (
	"testing"

	"github.com/jonathan/resume-parser/internal/taxonomy"
	"github.com/jonathan/resume-parser/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func experienceZone(lines ...string) types.TextZone {
	return types.NewTextZone(map[types.ZoneLabel][]string{types.ZoneExperience: lines}, 1)
}

func TestExtractYearsOfExperience_DateMath(t *testing.T) {
	zones := experienceZone(
		"Software Engineer | Acme | Jan 2022 - Present",
		"Junior Developer | Initech | Jan 2020 - Dec 2021",
	)

	got, skipped := ExtractYearsOfExperience(zones, "", fixedNow)
	assert.Empty(t, skipped)
	assert.InDelta(t, 4.3, got.Value, 0.1)
	assert.Equal(t, 90, got.Confidence)
}

func TestExtractYearsOfExperience_WholeTextWithoutZone(t *testing.T) {
	text := "Intern at Infosys (Jun 2023 - Dec 2023)"

	got, _ := ExtractYearsOfExperience(types.NewTextZone(nil, 0), text, fixedNow)
	assert.InDelta(t, 0.5, got.Value, 1e-9)
	assert.Equal(t, 90, got.Confidence)
}

func TestExtractYearsOfExperience_PhraseFallback(t *testing.T) {
	tests := []struct {
		name string
		text string
		want float64
	}{
		{"years of experience", "Backend engineer with 5+ years of experience in Go", 5},
		{"experience colon", "Total Experience: 3.5 years", 3.5},
		{"years in software", "7 years in software delivery", 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := ExtractYearsOfExperience(types.NewTextZone(nil, 0), tt.text, fixedNow)
			assert.InDelta(t, tt.want, got.Value, 1e-9)
			assert.Equal(t, 75, got.Confidence)
		})
	}
}

func TestExtractYearsOfExperience_Nothing(t *testing.T) {
	got, skipped := ExtractYearsOfExperience(types.NewTextZone(nil, 0), "13/2019 - 2020", fixedNow)
	assert.Zero(t, got.Value)
	assert.Zero(t, got.Confidence)
	assert.Len(t, skipped, 1)
}

func TestExtractWorkExperience(t *testing.T) {
	tax := taxonomy.MustDefault()
	zones := experienceZone(
		"Software Engineer | Flipkart | Jan 2021 - Present",
		"- Built order tracking microservices in Go",
		"- Reduced latency by 30%",
		"",
		"Data Analyst Intern",
		"Mu Sigma",
		"Jun 2019 - Dec 2020",
		"Analyzed sales data.",
	)

	entries := ExtractWorkExperience(zones, tax)
	require.Len(t, entries, 2)

	assert.Equal(t, types.WorkExperienceEntry{
		Title:       "Software Engineer",
		Company:     "Flipkart",
		Duration:    "Jan 2021 - Present",
		Description: []string{"Built order tracking microservices in Go", "Reduced latency by 30%"},
	}, entries[0])

	assert.Equal(t, types.WorkExperienceEntry{
		Title:       "Data Analyst Intern",
		Company:     "Mu Sigma",
		Duration:    "Jun 2019 - Dec 2020",
		Description: []string{"Analyzed sales data."},
	}, entries[1])
}

func TestExtractWorkExperience_Separators(t *testing.T) {
	tax := taxonomy.MustDefault()

	tests := []struct {
		line        string
		wantTitle   string
		wantCompany string
	}{
		{"Backend Developer – Zomato", "Backend Developer", "Zomato"},
		{"Product Manager - Swiggy", "Product Manager", "Swiggy"},
		{"Software Engineer at Google", "Software Engineer", "Google"},
		{"Consultant for Deloitte", "Consultant", "Deloitte"},
		{"Research Intern, IISc Bangalore", "Research Intern", "IISc Bangalore"},
		{"Senior Engineer", "Senior Engineer", ""},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			entries := ExtractWorkExperience(experienceZone(tt.line), tax)
			require.Len(t, entries, 1)
			assert.Equal(t, tt.wantTitle, entries[0].Title)
			assert.Equal(t, tt.wantCompany, entries[0].Company)
			assert.NotNil(t, entries[0].Description)
		})
	}
}

func TestExtractWorkExperience_CompanyAboveTitle(t *testing.T) {
	tax := taxonomy.MustDefault()
	zones := experienceZone(
		"Google",
		"Software Engineer",
		"Jan 2020 - Present",
		"- Worked on search ranking",
		"Microsoft",
		"SDE Intern",
		"May 2019 - Jul 2019",
	)

	entries := ExtractWorkExperience(zones, tax)
	require.Len(t, entries, 2)
	assert.Equal(t, "Google", entries[0].Company)
	assert.Equal(t, []string{"Worked on search ranking"}, entries[0].Description)
	assert.Equal(t, "SDE Intern", entries[1].Title)
	assert.Equal(t, "Microsoft", entries[1].Company)
	assert.Equal(t, "May 2019 - Jul 2019", entries[1].Duration)
}

func TestExtractWorkExperience_CompanyBelowTitleWins(t *testing.T) {
	tax := taxonomy.MustDefault()
	zones := experienceZone(
		"Software Engineer | Acme Corp",
		"Jan 2020 - Dec 2021",
		"Optimized database queries by 40%",
		"Senior Developer",
		"Globex Inc",
		"Jan 2022 - Present",
	)

	entries := ExtractWorkExperience(zones, tax)
	require.Len(t, entries, 2)
	assert.Equal(t, "Acme Corp", entries[0].Company)
	assert.Equal(t, []string{"Optimized database queries by 40%"}, entries[0].Description)

	assert.Equal(t, types.WorkExperienceEntry{
		Title:       "Senior Developer",
		Company:     "Globex Inc",
		Duration:    "Jan 2022 - Present",
		Description: []string{},
	}, entries[1])
}

func TestExtractWorkExperience_CompanyAboveOnlyAsFallback(t *testing.T) {
	tax := taxonomy.MustDefault()
	zones := experienceZone(
		"Data Analyst | Mu Sigma",
		"Dashboards and reporting",
		"Backend Developer",
		"- Built payment APIs in Go",
	)

	entries := ExtractWorkExperience(zones, tax)
	require.Len(t, entries, 2)
	assert.Empty(t, entries[0].Description, "the line above a company-less title names its company")
	assert.Equal(t, "Dashboards and reporting", entries[1].Company)
	assert.Equal(t, []string{"Built payment APIs in Go"}, entries[1].Description)
}

func TestExtractWorkExperience_TitleRules(t *testing.T) {
	tax := taxonomy.MustDefault()
	zones := experienceZone(
		"Led the migration to Kubernetes for the platform team lead",
		"Machine Learning Engineer",
		"Cloud architecture overview for the data platform",
		"Worked with the lead engineer.",
		"• Senior developer mentoring program",
	)

	entries := ExtractWorkExperience(zones, tax)
	require.Len(t, entries, 1, "only the keyword line without verb, period or bullet opens an entry")
	assert.Equal(t, "Machine Learning Engineer", entries[0].Title)
	assert.Equal(t, []string{
		"Cloud architecture overview for the data platform",
		"Worked with the lead engineer.",
		"Senior developer mentoring program",
	}, entries[0].Description)
}

func TestExtractWorkExperience_NoZone(t *testing.T) {
	entries := ExtractWorkExperience(types.NewTextZone(nil, 0), taxonomy.MustDefault())
	assert.NotNil(t, entries)
	assert.Empty(t, entries)
}

func TestCurrentRole(t *testing.T) {
	t.Run("open-ended position", func(t *testing.T) {
		got := CurrentRole([]types.WorkExperienceEntry{
			{Title: "Intern", Duration: "Jan 2019 - Jun 2019"},
			{Title: "Engineer", Duration: "Jul 2019 - Present"},
		})
		assert.Equal(t, "Engineer", got.Value)
		assert.Equal(t, 80, got.Confidence)
	})

	t.Run("first listed", func(t *testing.T) {
		got := CurrentRole([]types.WorkExperienceEntry{
			{Title: "Analyst", Duration: "2018 - 2020"},
			{Title: "Intern"},
		})
		assert.Equal(t, "Analyst", got.Value)
		assert.Equal(t, 60, got.Confidence)
	})

	t.Run("none", func(t *testing.T) {
		got := CurrentRole(nil)
		assert.Empty(t, got.Value)
		assert.Zero(t, got.Confidence)
	})
}
